package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"traffic-exchange/internal/core/domain"
)

func (s *Store) GetProfile(ctx context.Context, id string) (*domain.Profile, error) {
	p, err := scanProfile(s.pool.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", notFound(err))
	}
	return &p, nil
}

func (s *Store) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	c, err := scanCampaign(s.pool.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE id = $1 AND status <> 'deleted'`, id))
	if err != nil {
		return nil, fmt.Errorf("get campaign: %w", notFound(err))
	}
	return &c, nil
}

func (s *Store) ListCampaignsByOwner(ctx context.Context, ownerID string) ([]domain.Campaign, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+campaignColumns+`
		FROM campaigns
		WHERE owner_id = $1 AND status <> 'deleted'
		ORDER BY created_at DESC, id`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	return pgx.CollectRows(rows, collectCampaign)
}

func (s *Store) ListAvailableCampaigns(ctx context.Context, visitorID string, limit int) ([]domain.Campaign, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+campaignColumns+`
		FROM campaigns
		WHERE status = 'active'
		  AND credits_spent < credits_allocated
		  AND owner_id <> $1
		ORDER BY created_at, id
		LIMIT $2`, visitorID, limit)
	if err != nil {
		return nil, fmt.Errorf("list available campaigns: %w", err)
	}
	return pgx.CollectRows(rows, collectCampaign)
}

func (s *Store) ListTransactions(ctx context.Context, userID string, limit int) ([]domain.CreditTransaction, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+transactionColumns+`
		FROM credit_transactions
		WHERE user_id = $1
		ORDER BY created_at DESC, id
		LIMIT $2`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return pgx.CollectRows(rows, collectTransaction)
}

func (s *Store) SumTransactions(ctx context.Context, userID string) (int64, error) {
	var sum int64
	err := s.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0)::bigint FROM credit_transactions WHERE user_id = $1`,
		userID).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("sum transactions: %w", err)
	}
	return sum, nil
}
