package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"traffic-exchange/internal/core/domain"
	"traffic-exchange/internal/core/port"
)

// ledgerTx is the port.LedgerTx of one serializable transaction. Lock*
// methods take FOR UPDATE row locks; balances and spend only change
// through in-place increments.
type ledgerTx struct {
	tx pgx.Tx
}

func (t *ledgerTx) LockProfile(ctx context.Context, id string) (*domain.Profile, error) {
	p, err := scanProfile(t.tx.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (t *ledgerTx) LockCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	c, err := scanCampaign(t.tx.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

func (t *ledgerTx) LockVisit(ctx context.Context, id string) (*domain.Visit, error) {
	v, err := scanVisit(t.tx.QueryRow(ctx,
		`SELECT `+visitColumns+` FROM visits WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, notFound(err)
	}
	return &v, nil
}

func (t *ledgerTx) InsertProfile(ctx context.Context, p *domain.Profile) (bool, error) {
	tag, err := t.tx.Exec(ctx, `
		INSERT INTO profiles (id, email, display_name, role, credit_balance, credit_multiplier,
		                      campaign_limit, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING`,
		p.ID, p.Email, p.DisplayName, p.Role, p.CreditBalance, p.CreditMultiplier,
		p.CampaignLimit, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return false, fmt.Errorf("insert profile: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (t *ledgerTx) SetRole(ctx context.Context, userID string, role domain.Role, multiplier float64, campaignLimit int) error {
	tag, err := t.tx.Exec(ctx, `
		UPDATE profiles
		SET role = $2, credit_multiplier = $3, campaign_limit = $4, updated_at = now()
		WHERE id = $1`,
		userID, role, multiplier, campaignLimit)
	if err != nil {
		return fmt.Errorf("set role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

func (t *ledgerTx) IncrementBalance(ctx context.Context, userID string, delta int64) (int64, error) {
	var balance int64
	err := t.tx.QueryRow(ctx, `
		UPDATE profiles
		SET credit_balance = credit_balance + $2, updated_at = now()
		WHERE id = $1
		RETURNING credit_balance`,
		userID, delta).Scan(&balance)
	if err != nil {
		return 0, notFound(err)
	}
	return balance, nil
}

func (t *ledgerTx) CountOpenCampaigns(ctx context.Context, ownerID string) (int, error) {
	var n int
	err := t.tx.QueryRow(ctx, `
		SELECT count(*) FROM campaigns
		WHERE owner_id = $1 AND status IN ('active', 'paused')`, ownerID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count campaigns: %w", err)
	}
	return n, nil
}

func (t *ledgerTx) InsertCampaign(ctx context.Context, c *domain.Campaign) error {
	_, err := t.tx.Exec(ctx, `
		INSERT INTO campaigns (id, owner_id, title, url, credits_allocated, credits_spent,
		                       status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		c.ID, c.OwnerID, c.Title, c.URL, c.CreditsAllocated, c.CreditsSpent,
		c.Status, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert campaign: %w", err)
	}
	return nil
}

func (t *ledgerTx) UpdateCampaign(ctx context.Context, c *domain.Campaign) error {
	tag, err := t.tx.Exec(ctx, `
		UPDATE campaigns
		SET title = $2, url = $3, credits_allocated = $4, status = $5, updated_at = $6
		WHERE id = $1`,
		c.ID, c.Title, c.URL, c.CreditsAllocated, c.Status, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update campaign: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// IncrementSpent debits the campaign and flips it to completed in the same
// statement once the allocation is used up.
func (t *ledgerTx) IncrementSpent(ctx context.Context, campaignID string, delta int64) (domain.CampaignStatus, error) {
	var status domain.CampaignStatus
	err := t.tx.QueryRow(ctx, `
		UPDATE campaigns
		SET credits_spent = credits_spent + $2,
		    status = CASE
		        WHEN status = 'active' AND credits_spent + $2 >= credits_allocated THEN 'completed'
		        ELSE status
		    END,
		    updated_at = now()
		WHERE id = $1
		RETURNING status`,
		campaignID, delta).Scan(&status)
	if err != nil {
		return "", notFound(err)
	}
	return status, nil
}

func (t *ledgerTx) CountVisits(ctx context.Context, visitorID, campaignID string) (int, error) {
	var n int
	err := t.tx.QueryRow(ctx,
		`SELECT count(*) FROM visits WHERE visitor_id = $1 AND campaign_id = $2`,
		visitorID, campaignID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count visits: %w", err)
	}
	return n, nil
}

func (t *ledgerTx) InsertVisit(ctx context.Context, v *domain.Visit) error {
	_, err := t.tx.Exec(ctx, `
		INSERT INTO visits (id, visitor_id, campaign_id, attempt, is_valid, credits_earned,
		                    duration_seconds, fraud_score, started_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		v.ID, v.VisitorID, v.CampaignID, v.Attempt, v.IsValid, v.CreditsEarned,
		v.DurationSeconds, v.FraudScore, v.StartedAt, v.CompletedAt)
	if err != nil {
		return fmt.Errorf("insert visit: %w", err)
	}
	return nil
}

func (t *ledgerTx) UpdateVisitMetadata(ctx context.Context, v *domain.Visit) error {
	tag, err := t.tx.Exec(ctx, `
		UPDATE visits
		SET duration_seconds = $2, fraud_score = $3, is_valid = $4, completed_at = $5
		WHERE id = $1`,
		v.ID, v.DurationSeconds, v.FraudScore, v.IsValid, v.CompletedAt)
	if err != nil {
		return fmt.Errorf("update visit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

func (t *ledgerTx) AppendTransaction(ctx context.Context, e *domain.CreditTransaction) error {
	_, err := t.tx.Exec(ctx, `
		INSERT INTO credit_transactions (id, user_id, amount, reason, visit_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		e.ID, e.UserID, e.Amount, e.Reason, e.VisitID, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("append transaction: %w", err)
	}
	return nil
}
