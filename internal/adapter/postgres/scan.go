package postgres

import (
	"github.com/jackc/pgx/v5"

	"traffic-exchange/internal/core/domain"
)

const (
	profileColumns = `id, email, display_name, role, credit_balance, credit_multiplier,
	campaign_limit, created_at, updated_at`
	campaignColumns = `id, owner_id, title, url, credits_allocated, credits_spent,
	status, created_at, updated_at`
	visitColumns = `id, visitor_id, campaign_id, attempt, is_valid, credits_earned,
	duration_seconds, fraud_score, started_at, completed_at`
	transactionColumns = `id, user_id, amount, reason, visit_id, created_at`
	reviewColumns      = `user_id, category, status, note, reviewed_by, reviewed_at`
)

func scanProfile(row pgx.Row) (domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(
		&p.ID,
		&p.Email,
		&p.DisplayName,
		&p.Role,
		&p.CreditBalance,
		&p.CreditMultiplier,
		&p.CampaignLimit,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(
		&c.ID,
		&c.OwnerID,
		&c.Title,
		&c.URL,
		&c.CreditsAllocated,
		&c.CreditsSpent,
		&c.Status,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

func scanVisit(row pgx.Row) (domain.Visit, error) {
	var v domain.Visit
	err := row.Scan(
		&v.ID,
		&v.VisitorID,
		&v.CampaignID,
		&v.Attempt,
		&v.IsValid,
		&v.CreditsEarned,
		&v.DurationSeconds,
		&v.FraudScore,
		&v.StartedAt,
		&v.CompletedAt,
	)
	return v, err
}

func scanTransaction(row pgx.Row) (domain.CreditTransaction, error) {
	var t domain.CreditTransaction
	err := row.Scan(&t.ID, &t.UserID, &t.Amount, &t.Reason, &t.VisitID, &t.CreatedAt)
	return t, err
}

func scanReview(row pgx.Row) (domain.FraudReview, error) {
	var r domain.FraudReview
	err := row.Scan(&r.UserID, &r.Category, &r.Status, &r.Note, &r.ReviewedBy, &r.ReviewedAt)
	return r, err
}

func collectProfile(row pgx.CollectableRow) (domain.Profile, error) {
	return scanProfile(row)
}

func collectCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	return scanCampaign(row)
}

func collectTransaction(row pgx.CollectableRow) (domain.CreditTransaction, error) {
	return scanTransaction(row)
}

func collectReview(row pgx.CollectableRow) (domain.FraudReview, error) {
	return scanReview(row)
}
