package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"traffic-exchange/internal/core/domain"
	"traffic-exchange/internal/core/policy"
	"traffic-exchange/internal/core/port"
)

// ProfileOptions tunes profile creation.
type ProfileOptions struct {
	// SignupBonus is credited once, when a profile is first created.
	SignupBonus int64
}

// ProfileUseCase owns profiles, their ledger history and the admin
// operations on both.
type ProfileUseCase struct {
	store  port.LedgerStore
	query  port.QueryRepository
	opts   ProfileOptions
	logger *slog.Logger

	now   func() time.Time
	newID func() string
}

func NewProfileUseCase(store port.LedgerStore, query port.QueryRepository, opts ProfileOptions, logger *slog.Logger) *ProfileUseCase {
	return &ProfileUseCase{
		store:  store,
		query:  query,
		opts:   opts,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// EnsureProfile creates the profile of an authenticated user on first
// sight and returns the stored profile. Calling it again is harmless.
func (u *ProfileUseCase) EnsureProfile(ctx context.Context, req port.EnsureProfileReq) (*domain.Profile, error) {
	if strings.TrimSpace(req.UserID) == "" {
		return nil, fmt.Errorf("ensure profile: %w", port.ErrInvalidInput)
	}

	var (
		profile *domain.Profile
		created bool
	)
	err := u.store.InTx(ctx, func(ctx context.Context, tx port.LedgerTx) error {
		now := u.now().UTC()
		var err error
		created, err = tx.InsertProfile(ctx, &domain.Profile{
			ID:               req.UserID,
			Email:            req.Email,
			DisplayName:      req.DisplayName,
			Role:             domain.RoleFree,
			CreditMultiplier: policy.CreditMultiplierForRole(domain.RoleFree),
			CampaignLimit:    policy.CampaignLimitForRole(domain.RoleFree),
			CreatedAt:        now,
			UpdatedAt:        now,
		})
		if err != nil {
			return fmt.Errorf("insert profile: %w", err)
		}
		if created && u.opts.SignupBonus > 0 {
			if err := appendAndApply(ctx, tx, &domain.CreditTransaction{
				ID:        u.newID(),
				UserID:    req.UserID,
				Amount:    u.opts.SignupBonus,
				Reason:    domain.ReasonSignupBonus,
				CreatedAt: now,
			}); err != nil {
				return err
			}
		}
		profile, err = tx.LockProfile(ctx, req.UserID)
		return err
	})
	if err != nil {
		return nil, storeError("ensure profile", err)
	}
	if created {
		u.logger.InfoContext(ctx, "profile created", slog.String("user_id", req.UserID))
	}
	return profile, nil
}

func (u *ProfileUseCase) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	p, err := u.query.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

// ListTransactions returns the newest ledger entries of userID first.
func (u *ProfileUseCase) ListTransactions(ctx context.Context, userID string, limit int) ([]domain.CreditTransaction, error) {
	txs, err := u.query.ListTransactions(ctx, userID, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txs, nil
}

// SetRole changes the role of a profile and the multiplier and campaign
// limit that come with it. Existing campaigns are left alone even when
// they exceed the new limit.
func (u *ProfileUseCase) SetRole(ctx context.Context, userID string, role domain.Role) (*domain.Profile, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("set role: %w", port.ErrInvalidInput)
	}
	var profile *domain.Profile
	err := u.store.InTx(ctx, func(ctx context.Context, tx port.LedgerTx) error {
		p, err := tx.LockProfile(ctx, userID)
		if err != nil {
			return fmt.Errorf("lock profile: %w", err)
		}
		if err := tx.SetRole(ctx, p.ID, role, policy.CreditMultiplierForRole(role), policy.CampaignLimitForRole(role)); err != nil {
			return fmt.Errorf("update role: %w", err)
		}
		// the store stamps updated_at, so return the row as written
		profile, err = tx.LockProfile(ctx, userID)
		return err
	})
	if err != nil {
		return nil, storeError("set role", err)
	}
	u.logger.InfoContext(ctx, "role changed", slog.String("user_id", userID), slog.String("role", string(role)))
	return profile, nil
}

// AdjustCredits books an admin correction of amount credits. The balance
// may not drop below zero.
func (u *ProfileUseCase) AdjustCredits(ctx context.Context, userID string, amount int64) (*domain.Profile, error) {
	if amount == 0 {
		return nil, fmt.Errorf("adjust credits: %w", port.ErrInvalidInput)
	}
	var profile *domain.Profile
	err := u.store.InTx(ctx, func(ctx context.Context, tx port.LedgerTx) error {
		p, err := tx.LockProfile(ctx, userID)
		if err != nil {
			return fmt.Errorf("lock profile: %w", err)
		}
		if p.CreditBalance+amount < 0 {
			return port.ErrInsufficientCredits
		}
		if err := tx.AppendTransaction(ctx, &domain.CreditTransaction{
			ID:        u.newID(),
			UserID:    userID,
			Amount:    amount,
			Reason:    domain.ReasonAdminAdjustment,
			CreatedAt: u.now().UTC(),
		}); err != nil {
			return fmt.Errorf("append transaction: %w", err)
		}
		if _, err := tx.IncrementBalance(ctx, userID, amount); err != nil {
			return fmt.Errorf("update balance: %w", err)
		}
		profile, err = tx.LockProfile(ctx, userID)
		return err
	})
	if err != nil {
		return nil, storeError("adjust credits", err)
	}
	u.logger.InfoContext(ctx, "credits adjusted", slog.String("user_id", userID), slog.Int64("amount", amount))
	return profile, nil
}

// Reconcile compares the cached balance of userID with the sum of its
// ledger. The two reads are not taken in one snapshot, so a visit landing
// in between can report a transient mismatch.
func (u *ProfileUseCase) Reconcile(ctx context.Context, userID string) (*port.Reconciliation, error) {
	p, err := u.query.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("reconcile: %w", err)
	}
	sum, err := u.query.SumTransactions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("reconcile: %w", err)
	}
	rec := &port.Reconciliation{
		UserID:     userID,
		Balance:    p.CreditBalance,
		LedgerSum:  sum,
		Consistent: p.CreditBalance == sum,
	}
	if !rec.Consistent {
		u.logger.WarnContext(ctx, "balance drift",
			slog.String("user_id", userID),
			slog.Int64("balance", p.CreditBalance),
			slog.Int64("ledger_sum", sum),
		)
	}
	return rec, nil
}
