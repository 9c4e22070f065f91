package db

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"traffic-exchange/internal/core/domain"
	"traffic-exchange/internal/core/policy"
	"traffic-exchange/internal/core/port"
)

// Seed inserts demo profiles and campaigns through store. Ids are derived
// from stable names so running it twice changes nothing. Every starting
// balance is booked as a ledger entry, so reconciliation holds for seeded
// data too.
func Seed(ctx context.Context, store port.LedgerStore) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC()

	roles := []domain.Role{domain.RoleAdmin, domain.RolePremium, domain.RoleFree, domain.RoleFree, domain.RoleFree}
	return store.InTx(ctx, func(ctx context.Context, tx port.LedgerTx) error {
		for i, role := range roles {
			id := fmt.Sprintf("demo-user-%d", i+1)
			created, err := tx.InsertProfile(ctx, &domain.Profile{
				ID:               id,
				Email:            fmt.Sprintf("%s@example.com", id),
				DisplayName:      fmt.Sprintf("Demo User %d", i+1),
				Role:             role,
				CreditMultiplier: policy.CreditMultiplierForRole(role),
				CampaignLimit:    policy.CampaignLimitForRole(role),
				CreatedAt:        now,
				UpdatedAt:        now,
			})
			if err != nil {
				return err
			}
			if !created {
				continue
			}
			if err = book(ctx, tx, id, 100, domain.ReasonSignupBonus, now); err != nil {
				return err
			}

			// every demo user funds a couple of campaigns
			for j := 1; j <= 2; j++ {
				target := fmt.Sprintf("https://example.com/%s/site-%d", id, j)
				campaignID := uuid.NewSHA1(uuid.NameSpaceURL, []byte(target)).String()
				if _, err = tx.LockCampaign(ctx, campaignID); err == nil {
					continue
				} else if !errors.Is(err, port.ErrNotFound) {
					return err
				}
				credits := int64(10 + r.Intn(30))
				err = tx.InsertCampaign(ctx, &domain.Campaign{
					ID:               campaignID,
					OwnerID:          id,
					Title:            fmt.Sprintf("Site %d of %s", j, id),
					URL:              target,
					CreditsAllocated: credits,
					Status:           domain.CampaignActive,
					CreatedAt:        now,
					UpdatedAt:        now,
				})
				if err != nil {
					return err
				}
				if err = book(ctx, tx, id, -credits, domain.ReasonCampaignAllocation, now); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func book(ctx context.Context, tx port.LedgerTx, userID string, amount int64, reason domain.TransactionReason, at time.Time) error {
	if err := tx.AppendTransaction(ctx, &domain.CreditTransaction{
		ID:        uuid.NewString(),
		UserID:    userID,
		Amount:    amount,
		Reason:    reason,
		CreatedAt: at,
	}); err != nil {
		return err
	}
	_, err := tx.IncrementBalance(ctx, userID, amount)
	return err
}
