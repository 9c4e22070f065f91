package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"traffic-exchange/internal/core/domain"
	"traffic-exchange/internal/core/policy"
	"traffic-exchange/internal/core/port"
)

// LedgerUseCase records visits and moves the credits they earn. Every
// credit change happens inside a single store unit of work so a visit, its
// ledger entry, the visitor balance and the campaign spend are either all
// written or none are.
type LedgerUseCase struct {
	store  port.LedgerStore
	logger *slog.Logger

	now   func() time.Time
	newID func() string
}

// NewLedgerUseCase creates a ledger usecase on top of store.
func NewLedgerUseCase(store port.LedgerStore, logger *slog.Logger) *LedgerUseCase {
	return &LedgerUseCase{
		store:  store,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// RecordVisit checks the visit preconditions in a fixed order and, when all
// hold, inserts the visit, credits the visitor and debits the campaign.
func (u *LedgerUseCase) RecordVisit(ctx context.Context, visitorID, campaignID string) (receipt *port.VisitReceipt, err error) {
	ctx, span := tracer.Start(ctx, "ledger.RecordVisit", trace.WithAttributes(
		attribute.String("visitor.id", visitorID),
		attribute.String("campaign.id", campaignID),
	))
	defer func() { finishSpan(span, err) }()

	if visitorID == "" || campaignID == "" {
		return nil, fmt.Errorf("record visit: %w", port.ErrInvalidInput)
	}

	err = u.store.InTx(ctx, func(ctx context.Context, tx port.LedgerTx) error {
		camp, err := tx.LockCampaign(ctx, campaignID)
		if err != nil {
			return fmt.Errorf("lock campaign: %w", err)
		}
		if camp.OwnerID == visitorID {
			return port.ErrSelfVisitForbidden
		}
		if camp.Status != domain.CampaignActive {
			return port.ErrCampaignInactive
		}
		if camp.Remaining() < policy.CampaignDebitPerVisit {
			return port.ErrCampaignExhausted
		}

		visitor, err := tx.LockProfile(ctx, visitorID)
		if err != nil {
			return fmt.Errorf("lock visitor: %w", err)
		}
		prior, err := tx.CountVisits(ctx, visitorID, campaignID)
		if err != nil {
			return fmt.Errorf("count visits: %w", err)
		}
		if prior >= policy.MaxVisitsForRole(visitor.Role) {
			return port.ErrAttemptCapReached
		}

		now := u.now().UTC()
		earned := policy.CreditsEarned(visitor.CreditMultiplier)
		visit := &domain.Visit{
			ID:            u.newID(),
			VisitorID:     visitorID,
			CampaignID:    campaignID,
			Attempt:       prior + 1,
			IsValid:       true,
			CreditsEarned: earned,
			StartedAt:     now,
		}
		if err := tx.InsertVisit(ctx, visit); err != nil {
			return fmt.Errorf("insert visit: %w", err)
		}
		entry := &domain.CreditTransaction{
			ID:        u.newID(),
			UserID:    visitorID,
			Amount:    earned,
			Reason:    domain.ReasonVisitEarned,
			VisitID:   &visit.ID,
			CreatedAt: now,
		}
		if err := tx.AppendTransaction(ctx, entry); err != nil {
			return fmt.Errorf("append transaction: %w", err)
		}
		balance, err := tx.IncrementBalance(ctx, visitorID, earned)
		if err != nil {
			return fmt.Errorf("credit visitor: %w", err)
		}
		status, err := tx.IncrementSpent(ctx, campaignID, policy.CampaignDebitPerVisit)
		if err != nil {
			return fmt.Errorf("debit campaign: %w", err)
		}

		receipt = &port.VisitReceipt{
			VisitID:           visit.ID,
			Attempt:           visit.Attempt,
			CreditsEarned:     earned,
			Balance:           balance,
			CampaignCompleted: status == domain.CampaignCompleted,
		}
		return nil
	})
	if err != nil {
		return nil, storeError("record visit", err)
	}

	u.logger.InfoContext(ctx, "visit recorded",
		slog.String("visit_id", receipt.VisitID),
		slog.String("visitor_id", visitorID),
		slog.String("campaign_id", campaignID),
		slog.Int("attempt", receipt.Attempt),
		slog.Int64("credits", receipt.CreditsEarned),
	)
	if receipt.CampaignCompleted {
		u.logger.InfoContext(ctx, "campaign completed", slog.String("campaign_id", campaignID))
	}
	return receipt, nil
}

// CompleteVisit stores the duration and fraud score reported for a visit.
// A score at or above policy.InvalidFraudScore marks the visit invalid but
// does not claw back credits.
func (u *LedgerUseCase) CompleteVisit(ctx context.Context, callerID string, req port.CompleteVisitReq) (visit *domain.Visit, err error) {
	ctx, span := tracer.Start(ctx, "ledger.CompleteVisit", trace.WithAttributes(
		attribute.String("visit.id", req.VisitID),
	))
	defer func() { finishSpan(span, err) }()

	if req.VisitID == "" || req.DurationSeconds < 0 || req.FraudScore < 0 || req.FraudScore > 100 {
		return nil, fmt.Errorf("complete visit: %w", port.ErrInvalidInput)
	}

	err = u.store.InTx(ctx, func(ctx context.Context, tx port.LedgerTx) error {
		v, err := tx.LockVisit(ctx, req.VisitID)
		if err != nil {
			return fmt.Errorf("lock visit: %w", err)
		}
		if v.VisitorID != callerID {
			return port.ErrForbidden
		}
		if v.IsCompleted() {
			return port.ErrVisitAlreadyCompleted
		}
		duration, score := req.DurationSeconds, req.FraudScore
		completed := u.now().UTC()
		v.DurationSeconds = &duration
		v.FraudScore = &score
		v.CompletedAt = &completed
		v.IsValid = policy.VisitValid(score)
		if err := tx.UpdateVisitMetadata(ctx, v); err != nil {
			return fmt.Errorf("update visit: %w", err)
		}
		visit = v
		return nil
	})
	if err != nil {
		return nil, storeError("complete visit", err)
	}

	if !visit.IsValid {
		u.logger.WarnContext(ctx, "visit flagged invalid",
			slog.String("visit_id", visit.ID),
			slog.String("visitor_id", visit.VisitorID),
			slog.Int("fraud_score", req.FraudScore),
		)
	}
	return visit, nil
}
