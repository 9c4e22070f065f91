package port

import (
	"context"
	"time"

	"traffic-exchange/internal/core/domain"
)

// FraudRepository reads the bounded windows analysed by the fraud
// heuristics and stores admin dispositions.
type FraudRepository interface {
	RecentVisits(ctx context.Context, since time.Time, limit int) ([]domain.VisitActivity, error)
	RecentProfiles(ctx context.Context, since time.Time, limit int) ([]domain.Profile, error)
	RecentTransactions(ctx context.Context, since time.Time, limit int) ([]domain.CreditTransaction, error)
	ListReviews(ctx context.Context) ([]domain.FraudReview, error)
	SaveReview(ctx context.Context, r domain.FraudReview) error
}

// ReportCache keeps the last fraud report for a short while. Get returns
// (nil, nil) on a miss.
type ReportCache interface {
	Get(ctx context.Context) (*FraudReport, error)
	Set(ctx context.Context, report *FraudReport) error
	Invalidate(ctx context.Context) error
}
