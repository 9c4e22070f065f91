package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"traffic-exchange/internal/core/domain"
	"traffic-exchange/internal/core/port"
)

// RecentVisits joins the campaign owner onto every visit so self-visits can
// be detected without a second query.
func (s *Store) RecentVisits(ctx context.Context, since time.Time, limit int) ([]domain.VisitActivity, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT v.id, v.visitor_id, v.campaign_id, v.attempt, v.is_valid, v.credits_earned,
		       v.duration_seconds, v.fraud_score, v.started_at, v.completed_at, c.owner_id
		FROM visits v
		JOIN campaigns c ON c.id = v.campaign_id
		WHERE v.started_at >= $1
		ORDER BY v.started_at DESC, v.id
		LIMIT $2`, since, limit)
	if err != nil {
		return nil, fmt.Errorf("recent visits: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.VisitActivity, error) {
		var a domain.VisitActivity
		err := row.Scan(
			&a.ID,
			&a.VisitorID,
			&a.CampaignID,
			&a.Attempt,
			&a.IsValid,
			&a.CreditsEarned,
			&a.DurationSeconds,
			&a.FraudScore,
			&a.StartedAt,
			&a.CompletedAt,
			&a.CampaignOwnerID,
		)
		return a, err
	})
}

func (s *Store) RecentProfiles(ctx context.Context, since time.Time, limit int) ([]domain.Profile, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+profileColumns+`
		FROM profiles
		WHERE created_at >= $1
		ORDER BY created_at DESC, id
		LIMIT $2`, since, limit)
	if err != nil {
		return nil, fmt.Errorf("recent profiles: %w", err)
	}
	return pgx.CollectRows(rows, collectProfile)
}

func (s *Store) RecentTransactions(ctx context.Context, since time.Time, limit int) ([]domain.CreditTransaction, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+transactionColumns+`
		FROM credit_transactions
		WHERE created_at >= $1
		ORDER BY created_at DESC, id
		LIMIT $2`, since, limit)
	if err != nil {
		return nil, fmt.Errorf("recent transactions: %w", err)
	}
	return pgx.CollectRows(rows, collectTransaction)
}

func (s *Store) ListReviews(ctx context.Context) ([]domain.FraudReview, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+reviewColumns+` FROM fraud_reviews ORDER BY user_id, category`)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return pgx.CollectRows(rows, collectReview)
}

// SaveReview upserts the disposition for (user, category).
func (s *Store) SaveReview(ctx context.Context, r domain.FraudReview) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO fraud_reviews (`+reviewColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, category) DO UPDATE
		SET status = EXCLUDED.status,
		    note = EXCLUDED.note,
		    reviewed_by = EXCLUDED.reviewed_by,
		    reviewed_at = EXCLUDED.reviewed_at`,
		r.UserID, r.Category, r.Status, r.Note, r.ReviewedBy, r.ReviewedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation {
		return fmt.Errorf("save review: %w", port.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("save review: %w", err)
	}
	return nil
}
