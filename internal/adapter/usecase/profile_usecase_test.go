package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traffic-exchange/internal/adapter/memory"
	"traffic-exchange/internal/core/domain"
	"traffic-exchange/internal/core/port"
)

func TestEnsureProfileIsIdempotent(t *testing.T) {
	store := memory.New()
	profiles := NewProfileUseCase(store, store, ProfileOptions{SignupBonus: 25}, discardLogger())
	ctx := context.Background()
	req := port.EnsureProfileReq{UserID: "u1", Email: "u1@example.com", DisplayName: "U1"}

	first, err := profiles.EnsureProfile(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleFree, first.Role)
	assert.Equal(t, int64(25), first.CreditBalance)
	assert.Equal(t, 1.0, first.CreditMultiplier)
	assert.Equal(t, 3, first.CampaignLimit)

	second, err := profiles.EnsureProfile(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(25), second.CreditBalance)

	txs, err := profiles.ListTransactions(ctx, "u1", 0)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, domain.ReasonSignupBonus, txs[0].Reason)
	requireConsistent(t, profiles, "u1")

	_, err = profiles.EnsureProfile(ctx, port.EnsureProfileReq{UserID: " "})
	assert.ErrorIs(t, err, port.ErrInvalidInput)
}

func TestSetRoleUpdatesDerivedLimits(t *testing.T) {
	store := memory.New(memory.WithClock(func() time.Time { return testNow }))
	seedStore(t, store, []domain.Profile{newProfile("u1", domain.RoleFree, 0)}, nil)
	profiles := NewProfileUseCase(store, store, ProfileOptions{}, discardLogger())
	ctx := context.Background()

	p, err := profiles.SetRole(ctx, "u1", domain.RolePremium)
	require.NoError(t, err)
	assert.Equal(t, domain.RolePremium, p.Role)
	assert.Equal(t, 1.2, p.CreditMultiplier)
	assert.Equal(t, 20, p.CampaignLimit)
	assert.Equal(t, testNow, p.UpdatedAt)

	stored, err := profiles.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, *p, *stored)

	_, err = profiles.SetRole(ctx, "u1", domain.Role("owner"))
	assert.ErrorIs(t, err, port.ErrInvalidInput)

	_, err = profiles.SetRole(ctx, "ghost", domain.RoleAdmin)
	assert.ErrorIs(t, err, port.ErrNotFound)
}

func TestAdjustCreditsKeepsBalanceNonNegative(t *testing.T) {
	clock := testNow
	store := memory.New(memory.WithClock(func() time.Time { return clock }))
	seedStore(t, store, []domain.Profile{newProfile("u1", domain.RoleFree, 10)}, nil)
	profiles := NewProfileUseCase(store, store, ProfileOptions{}, discardLogger())
	ctx := context.Background()

	clock = testNow.Add(time.Minute)
	p, err := profiles.AdjustCredits(ctx, "u1", -4)
	require.NoError(t, err)
	assert.Equal(t, int64(6), p.CreditBalance)
	assert.Equal(t, clock, p.UpdatedAt)

	stored, err := profiles.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, *p, *stored)

	_, err = profiles.AdjustCredits(ctx, "u1", -7)
	assert.ErrorIs(t, err, port.ErrInsufficientCredits)

	_, err = profiles.AdjustCredits(ctx, "u1", 0)
	assert.ErrorIs(t, err, port.ErrInvalidInput)

	p, err = profiles.AdjustCredits(ctx, "u1", 15)
	require.NoError(t, err)
	assert.Equal(t, int64(21), p.CreditBalance)
	requireConsistent(t, profiles, "u1")
}

func TestReconcileDetectsDrift(t *testing.T) {
	store := memory.New()
	seedStore(t, store, []domain.Profile{newProfile("u1", domain.RoleFree, 10)}, nil)
	profiles := NewProfileUseCase(store, store, ProfileOptions{}, discardLogger())
	ctx := context.Background()

	// A balance change without a ledger row is exactly what Reconcile is for.
	err := store.InTx(ctx, func(ctx context.Context, tx port.LedgerTx) error {
		_, err := tx.IncrementBalance(ctx, "u1", 3)
		return err
	})
	require.NoError(t, err)

	rec, err := profiles.Reconcile(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, rec.Consistent)
	assert.Equal(t, int64(13), rec.Balance)
	assert.Equal(t, int64(10), rec.LedgerSum)
}
