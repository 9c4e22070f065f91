package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traffic-exchange/internal/adapter/memory"
	"traffic-exchange/internal/core/domain"
	"traffic-exchange/internal/core/port"
)

type campaignFixture struct {
	store     *memory.Store
	campaigns *CampaignUseCase
	profiles  *ProfileUseCase
	ledger    *LedgerUseCase
}

func newCampaignFixture(t *testing.T, profiles ...domain.Profile) campaignFixture {
	t.Helper()
	store := memory.New()
	seedStore(t, store, profiles, nil)
	return campaignFixture{
		store:     store,
		campaigns: NewCampaignUseCase(store, store, discardLogger()),
		profiles:  NewProfileUseCase(store, store, ProfileOptions{}, discardLogger()),
		ledger:    NewLedgerUseCase(store, discardLogger()),
	}
}

func createReq(credits int64) port.CreateCampaignReq {
	return port.CreateCampaignReq{Title: "My blog", URL: "https://blog.example.com", Credits: credits}
}

func TestCreateCampaignDebitsOwner(t *testing.T) {
	f := newCampaignFixture(t, newProfile("owner", domain.RoleFree, 50))
	ctx := context.Background()

	camp, err := f.campaigns.Create(ctx, "owner", createReq(20))
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignActive, camp.Status)
	assert.Equal(t, int64(20), camp.CreditsAllocated)

	p, err := f.store.GetProfile(ctx, "owner")
	require.NoError(t, err)
	assert.Equal(t, int64(30), p.CreditBalance)

	txs, err := f.store.ListTransactions(ctx, "owner", 1)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, domain.ReasonCampaignAllocation, txs[0].Reason)
	assert.Equal(t, int64(-20), txs[0].Amount)
	requireConsistent(t, f.profiles, "owner")
}

func TestCreateCampaignRejections(t *testing.T) {
	tests := []struct {
		name string
		req  port.CreateCampaignReq
		want error
	}{
		{name: "not enough credits", req: createReq(500), want: port.ErrInsufficientCredits},
		{name: "zero credits", req: createReq(0), want: port.ErrInvalidInput},
		{name: "blank title", req: port.CreateCampaignReq{Title: "  ", URL: "https://x.io", Credits: 1}, want: port.ErrInvalidInput},
		{name: "bad scheme", req: port.CreateCampaignReq{Title: "t", URL: "ftp://x.io", Credits: 1}, want: port.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCampaignFixture(t, newProfile("owner", domain.RoleFree, 50))
			_, err := f.campaigns.Create(context.Background(), "owner", tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCreateCampaignHonoursRoleLimit(t *testing.T) {
	f := newCampaignFixture(t, newProfile("owner", domain.RoleFree, 100))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := f.campaigns.Create(ctx, "owner", createReq(5))
		require.NoError(t, err)
	}
	_, err := f.campaigns.Create(ctx, "owner", createReq(5))
	assert.ErrorIs(t, err, port.ErrCampaignLimitReached)

	p, err := f.store.GetProfile(ctx, "owner")
	require.NoError(t, err)
	assert.Equal(t, int64(85), p.CreditBalance)
}

func TestPauseResumeCampaign(t *testing.T) {
	f := newCampaignFixture(t, newProfile("owner", domain.RoleFree, 10), newProfile("visitor", domain.RoleFree, 0))
	ctx := context.Background()
	camp, err := f.campaigns.Create(ctx, "owner", createReq(10))
	require.NoError(t, err)

	_, err = f.campaigns.Pause(ctx, "visitor", camp.ID)
	assert.ErrorIs(t, err, port.ErrForbidden)

	paused, err := f.campaigns.Pause(ctx, "owner", camp.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignPaused, paused.Status)

	_, err = f.ledger.RecordVisit(ctx, "visitor", camp.ID)
	assert.ErrorIs(t, err, port.ErrCampaignInactive)

	available, err := f.campaigns.ListAvailable(ctx, "visitor", 0)
	require.NoError(t, err)
	assert.Empty(t, available)

	resumed, err := f.campaigns.Resume(ctx, "owner", camp.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignActive, resumed.Status)

	available, err = f.campaigns.ListAvailable(ctx, "visitor", 0)
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, camp.ID, available[0].ID)

	own, err := f.campaigns.ListAvailable(ctx, "owner", 0)
	require.NoError(t, err)
	assert.Empty(t, own)
}

func TestAddCreditsReopensCompletedCampaign(t *testing.T) {
	f := newCampaignFixture(t, newProfile("owner", domain.RoleFree, 10), newProfile("visitor", domain.RoleFree, 0))
	ctx := context.Background()
	camp, err := f.campaigns.Create(ctx, "owner", createReq(1))
	require.NoError(t, err)

	receipt, err := f.ledger.RecordVisit(ctx, "visitor", camp.ID)
	require.NoError(t, err)
	require.True(t, receipt.CampaignCompleted)

	_, err = f.campaigns.Resume(ctx, "owner", camp.ID)
	assert.ErrorIs(t, err, port.ErrCampaignInactive)

	topped, err := f.campaigns.AddCredits(ctx, "owner", camp.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignActive, topped.Status)
	assert.Equal(t, int64(5), topped.CreditsAllocated)
	assert.Equal(t, int64(4), topped.Remaining())

	_, err = f.campaigns.AddCredits(ctx, "owner", camp.ID, 100)
	assert.ErrorIs(t, err, port.ErrInsufficientCredits)

	_, err = f.ledger.RecordVisit(ctx, "visitor", camp.ID)
	require.NoError(t, err)
	requireConsistent(t, f.profiles, "owner", "visitor")
}

func TestDeleteCampaignRefundsUnspent(t *testing.T) {
	f := newCampaignFixture(t, newProfile("owner", domain.RoleFree, 10), newProfile("visitor", domain.RoleFree, 0))
	ctx := context.Background()
	camp, err := f.campaigns.Create(ctx, "owner", createReq(10))
	require.NoError(t, err)
	_, err = f.ledger.RecordVisit(ctx, "visitor", camp.ID)
	require.NoError(t, err)

	require.NoError(t, f.campaigns.Delete(ctx, "owner", camp.ID))

	p, err := f.store.GetProfile(ctx, "owner")
	require.NoError(t, err)
	assert.Equal(t, int64(9), p.CreditBalance)

	_, err = f.store.GetCampaign(ctx, camp.ID)
	assert.ErrorIs(t, err, port.ErrNotFound)

	mine, err := f.campaigns.ListMine(ctx, "owner")
	require.NoError(t, err)
	assert.Empty(t, mine)

	_, err = f.ledger.RecordVisit(ctx, "visitor", camp.ID)
	assert.ErrorIs(t, err, port.ErrCampaignInactive)

	assert.ErrorIs(t, f.campaigns.Delete(ctx, "owner", camp.ID), port.ErrNotFound)
	requireConsistent(t, f.profiles, "owner", "visitor")
}

func TestGetCampaignVisibility(t *testing.T) {
	f := newCampaignFixture(t,
		newProfile("owner", domain.RoleFree, 50),
		newProfile("other", domain.RoleFree, 0),
	)
	ctx := context.Background()
	camp, err := f.campaigns.Create(ctx, "owner", createReq(20))
	require.NoError(t, err)

	got, err := f.campaigns.Get(ctx, "other", camp.ID)
	require.NoError(t, err)
	assert.Equal(t, camp.ID, got.ID)
	assert.Equal(t, int64(20), got.Remaining())

	_, err = f.campaigns.Pause(ctx, "owner", camp.ID)
	require.NoError(t, err)

	got, err = f.campaigns.Get(ctx, "owner", camp.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignPaused, got.Status)

	_, err = f.campaigns.Get(ctx, "other", camp.ID)
	assert.ErrorIs(t, err, port.ErrNotFound, "paused campaigns are hidden from visitors")

	require.NoError(t, f.campaigns.Delete(ctx, "owner", camp.ID))
	_, err = f.campaigns.Get(ctx, "owner", camp.ID)
	assert.ErrorIs(t, err, port.ErrNotFound)

	_, err = f.campaigns.Get(ctx, "owner", "missing")
	assert.ErrorIs(t, err, port.ErrNotFound)
	_, err = f.campaigns.Get(ctx, "owner", "")
	assert.ErrorIs(t, err, port.ErrInvalidInput)
}
