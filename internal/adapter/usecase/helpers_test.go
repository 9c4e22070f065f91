package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"traffic-exchange/internal/adapter/memory"
	"traffic-exchange/internal/core/domain"
	"traffic-exchange/internal/core/policy"
	"traffic-exchange/internal/core/port"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newProfile(id string, role domain.Role, balance int64) domain.Profile {
	return domain.Profile{
		ID:               id,
		Email:            id + "@example.com",
		Role:             role,
		CreditBalance:    balance,
		CreditMultiplier: policy.CreditMultiplierForRole(role),
		CampaignLimit:    policy.CampaignLimitForRole(role),
		CreatedAt:        testNow.Add(-48 * time.Hour),
	}
}

func newCampaign(id, owner string, allocated, spent int64, status domain.CampaignStatus) domain.Campaign {
	return domain.Campaign{
		ID:               id,
		OwnerID:          owner,
		Title:            "campaign " + id,
		URL:              "https://example.com/" + id,
		CreditsAllocated: allocated,
		CreditsSpent:     spent,
		Status:           status,
		CreatedAt:        testNow.Add(-time.Hour),
	}
}

// seedStore inserts profiles and campaigns directly. Balances are seeded
// through opening ledger entries so reconciliation holds from the start.
func seedStore(t *testing.T, store *memory.Store, profiles []domain.Profile, campaigns []domain.Campaign) {
	t.Helper()
	err := store.InTx(context.Background(), func(ctx context.Context, tx port.LedgerTx) error {
		for _, p := range profiles {
			balance := p.CreditBalance
			p.CreditBalance = 0
			if _, err := tx.InsertProfile(ctx, &p); err != nil {
				return err
			}
			if balance == 0 {
				continue
			}
			if err := appendAndApply(ctx, tx, &domain.CreditTransaction{
				ID:        "seed-" + p.ID,
				UserID:    p.ID,
				Amount:    balance,
				Reason:    domain.ReasonAdminAdjustment,
				CreatedAt: p.CreatedAt,
			}); err != nil {
				return err
			}
		}
		for _, c := range campaigns {
			if err := tx.InsertCampaign(ctx, &c); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)
}

func requireConsistent(t *testing.T, profiles *ProfileUseCase, userIDs ...string) {
	t.Helper()
	for _, id := range userIDs {
		rec, err := profiles.Reconcile(context.Background(), id)
		require.NoError(t, err)
		require.Truef(t, rec.Consistent, "user %s: balance %d, ledger %d", id, rec.Balance, rec.LedgerSum)
	}
}
