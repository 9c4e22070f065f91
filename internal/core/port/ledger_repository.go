package port

import (
	"context"

	"traffic-exchange/internal/core/domain"
)

// LedgerStore runs units of work atomically. Implementations must make the
// whole of fn visible or none of it, and must serialize concurrent units
// touching the same campaign or profile rows.
type LedgerStore interface {
	// InTx runs fn inside one transaction. If fn returns an error the
	// transaction is rolled back and that error is returned.
	InTx(ctx context.Context, fn func(ctx context.Context, tx LedgerTx) error) error
}

// LedgerTx is the set of store operations available inside a unit of work.
// Lock* methods return ErrNotFound for missing rows and hold the row until
// the unit of work ends. Callers lock campaigns before profiles.
type LedgerTx interface {
	LockProfile(ctx context.Context, id string) (*domain.Profile, error)
	LockCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	LockVisit(ctx context.Context, id string) (*domain.Visit, error)

	// InsertProfile creates p unless a profile with the same id exists. It
	// reports whether a row was created.
	InsertProfile(ctx context.Context, p *domain.Profile) (bool, error)
	// SetRole updates the role and the values derived from it.
	SetRole(ctx context.Context, userID string, role domain.Role, multiplier float64, campaignLimit int) error
	// IncrementBalance adds delta to the profile balance and returns the
	// new balance. It never reads-modifies-writes.
	IncrementBalance(ctx context.Context, userID string, delta int64) (int64, error)

	CountOpenCampaigns(ctx context.Context, ownerID string) (int, error)
	InsertCampaign(ctx context.Context, c *domain.Campaign) error
	// UpdateCampaign stores status and allocation changes of c.
	UpdateCampaign(ctx context.Context, c *domain.Campaign) error
	// IncrementSpent adds delta to credits_spent and marks the campaign
	// completed once the allocation is used up. It returns the new status.
	IncrementSpent(ctx context.Context, campaignID string, delta int64) (domain.CampaignStatus, error)

	CountVisits(ctx context.Context, visitorID, campaignID string) (int, error)
	InsertVisit(ctx context.Context, v *domain.Visit) error
	UpdateVisitMetadata(ctx context.Context, v *domain.Visit) error

	AppendTransaction(ctx context.Context, t *domain.CreditTransaction) error
}

// QueryRepository serves the read side outside of units of work.
type QueryRepository interface {
	GetProfile(ctx context.Context, id string) (*domain.Profile, error)
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	ListCampaignsByOwner(ctx context.Context, ownerID string) ([]domain.Campaign, error)
	// ListAvailableCampaigns returns active campaigns with budget left that
	// visitorID does not own, oldest first.
	ListAvailableCampaigns(ctx context.Context, visitorID string, limit int) ([]domain.Campaign, error)
	ListTransactions(ctx context.Context, userID string, limit int) ([]domain.CreditTransaction, error)
	// SumTransactions returns the sum of all ledger amounts of userID.
	SumTransactions(ctx context.Context, userID string) (int64, error)
}
