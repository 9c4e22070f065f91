package port

import (
	"context"
	"time"

	"traffic-exchange/internal/core/domain"
)

// LedgerUseCase records visits and credits visitors. It is the primary port
// for everything that moves credits because of a visit.
type LedgerUseCase interface {
	// RecordVisit checks that visitorID may visit campaignID and, in one
	// atomic step, stores the visit, credits the visitor and debits the
	// campaign. Rejections are ErrNotFound, ErrSelfVisitForbidden,
	// ErrCampaignInactive, ErrCampaignExhausted and ErrAttemptCapReached, in
	// that order of precedence. Storage failures wrap ErrTransactionFailure.
	RecordVisit(ctx context.Context, visitorID, campaignID string) (*VisitReceipt, error)

	// CompleteVisit stores duration and fraud score of a visit owned by
	// callerID. It never changes credits or budgets.
	CompleteVisit(ctx context.Context, callerID string, req CompleteVisitReq) (*domain.Visit, error)
}

// CampaignUseCase manages campaigns on behalf of their owners.
type CampaignUseCase interface {
	Create(ctx context.Context, ownerID string, req CreateCampaignReq) (*domain.Campaign, error)
	ListMine(ctx context.Context, ownerID string) ([]domain.Campaign, error)
	ListAvailable(ctx context.Context, visitorID string, limit int) ([]domain.Campaign, error)
	Get(ctx context.Context, callerID, campaignID string) (*domain.Campaign, error)
	Pause(ctx context.Context, ownerID, campaignID string) (*domain.Campaign, error)
	Resume(ctx context.Context, ownerID, campaignID string) (*domain.Campaign, error)
	AddCredits(ctx context.Context, ownerID, campaignID string, credits int64) (*domain.Campaign, error)
	Delete(ctx context.Context, ownerID, campaignID string) error
}

// ProfileUseCase covers profiles, their credit history and the admin
// operations on them.
type ProfileUseCase interface {
	EnsureProfile(ctx context.Context, req EnsureProfileReq) (*domain.Profile, error)
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	ListTransactions(ctx context.Context, userID string, limit int) ([]domain.CreditTransaction, error)
	SetRole(ctx context.Context, userID string, role domain.Role) (*domain.Profile, error)
	AdjustCredits(ctx context.Context, userID string, amount int64) (*domain.Profile, error)
	Reconcile(ctx context.Context, userID string) (*Reconciliation, error)
}

// FraudUseCase produces the advisory fraud report for admins.
type FraudUseCase interface {
	// Analyze fails as a whole with ErrAnalysisUnavailable if any read fails.
	Analyze(ctx context.Context) (*FraudReport, error)
	ReviewFinding(ctx context.Context, adminID string, req ReviewFindingReq) (*domain.FraudReview, error)
}

// VisitReceipt is the outcome of a recorded visit.
type VisitReceipt struct {
	VisitID           string
	Attempt           int
	CreditsEarned     int64
	Balance           int64
	CampaignCompleted bool
}

type CompleteVisitReq struct {
	VisitID         string
	DurationSeconds int
	FraudScore      int
}

type CreateCampaignReq struct {
	Title   string
	URL     string
	Credits int64
}

type EnsureProfileReq struct {
	UserID      string
	Email       string
	DisplayName string
}

type ReviewFindingReq struct {
	UserID   string
	Category domain.FindingCategory
	Status   domain.ReviewStatus
	Note     string
}

// Reconciliation compares a cached balance with the sum of its ledger.
type Reconciliation struct {
	UserID     string
	Balance    int64
	LedgerSum  int64
	Consistent bool
}

// FraudReport is the admin fraud dashboard payload.
type FraudReport struct {
	Findings    []domain.FraudFinding
	Stats       domain.FraudStats
	WindowStart time.Time
	GeneratedAt time.Time
}
