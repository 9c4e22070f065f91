package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"traffic-exchange/internal/core/domain"
	"traffic-exchange/internal/core/policy"
	"traffic-exchange/internal/core/port"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
	maxTitleLength   = 120
)

// CampaignUseCase manages the campaigns a profile owns. Allocating credits
// to a campaign moves them out of the owner's balance through the ledger;
// deleting a campaign refunds what it did not spend.
type CampaignUseCase struct {
	store  port.LedgerStore
	query  port.QueryRepository
	logger *slog.Logger

	now   func() time.Time
	newID func() string
}

func NewCampaignUseCase(store port.LedgerStore, query port.QueryRepository, logger *slog.Logger) *CampaignUseCase {
	return &CampaignUseCase{
		store:  store,
		query:  query,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Create opens a campaign for ownerID funded with req.Credits from the
// owner's balance.
func (u *CampaignUseCase) Create(ctx context.Context, ownerID string, req port.CreateCampaignReq) (*domain.Campaign, error) {
	ctx, span := tracer.Start(ctx, "campaign.Create")
	var err error
	defer func() { finishSpan(span, err) }()

	req.Title = strings.TrimSpace(req.Title)
	if err = validateCampaign(req); err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}

	var camp *domain.Campaign
	err = u.store.InTx(ctx, func(ctx context.Context, tx port.LedgerTx) error {
		owner, err := tx.LockProfile(ctx, ownerID)
		if err != nil {
			return fmt.Errorf("lock owner: %w", err)
		}
		if err := u.checkCampaignLimit(ctx, tx, owner); err != nil {
			return err
		}
		if owner.CreditBalance < req.Credits {
			return port.ErrInsufficientCredits
		}

		now := u.now().UTC()
		camp = &domain.Campaign{
			ID:               u.newID(),
			OwnerID:          ownerID,
			Title:            req.Title,
			URL:              req.URL,
			CreditsAllocated: req.Credits,
			Status:           domain.CampaignActive,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if err := tx.InsertCampaign(ctx, camp); err != nil {
			return fmt.Errorf("insert campaign: %w", err)
		}
		return u.moveCredits(ctx, tx, ownerID, -req.Credits, domain.ReasonCampaignAllocation, now)
	})
	if err != nil {
		err = storeError("create campaign", err)
		return nil, err
	}

	u.logger.InfoContext(ctx, "campaign created",
		slog.String("campaign_id", camp.ID),
		slog.String("owner_id", ownerID),
		slog.Int64("credits", camp.CreditsAllocated),
	)
	return camp, nil
}

func (u *CampaignUseCase) ListMine(ctx context.Context, ownerID string) ([]domain.Campaign, error) {
	camps, err := u.query.ListCampaignsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	return camps, nil
}

// ListAvailable returns campaigns visitorID can currently earn from.
func (u *CampaignUseCase) ListAvailable(ctx context.Context, visitorID string, limit int) ([]domain.Campaign, error) {
	camps, err := u.query.ListAvailableCampaigns(ctx, visitorID, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list available campaigns: %w", err)
	}
	return camps, nil
}

// Get returns a single campaign. Owners see their campaigns in any state
// short of deleted; everyone else sees only active ones.
func (u *CampaignUseCase) Get(ctx context.Context, callerID, campaignID string) (*domain.Campaign, error) {
	if campaignID == "" {
		return nil, fmt.Errorf("get campaign: %w", port.ErrInvalidInput)
	}
	camp, err := u.query.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	if camp.OwnerID != callerID && camp.Status != domain.CampaignActive {
		return nil, fmt.Errorf("get campaign: %w", port.ErrNotFound)
	}
	return camp, nil
}

// Pause stops an active campaign from receiving visits. Pausing a paused
// campaign is a no-op.
func (u *CampaignUseCase) Pause(ctx context.Context, ownerID, campaignID string) (*domain.Campaign, error) {
	return u.transition(ctx, "pause campaign", ownerID, campaignID, func(ctx context.Context, tx port.LedgerTx, c *domain.Campaign) (bool, error) {
		switch c.Status {
		case domain.CampaignPaused:
			return false, nil
		case domain.CampaignActive:
			c.Status = domain.CampaignPaused
			return true, nil
		default:
			return false, port.ErrCampaignInactive
		}
	})
}

// Resume reopens a paused campaign. Resuming an active campaign is a no-op.
func (u *CampaignUseCase) Resume(ctx context.Context, ownerID, campaignID string) (*domain.Campaign, error) {
	return u.transition(ctx, "resume campaign", ownerID, campaignID, func(ctx context.Context, tx port.LedgerTx, c *domain.Campaign) (bool, error) {
		switch c.Status {
		case domain.CampaignActive:
			return false, nil
		case domain.CampaignPaused:
			if c.Remaining() <= 0 {
				return false, port.ErrCampaignExhausted
			}
			c.Status = domain.CampaignActive
			return true, nil
		default:
			return false, port.ErrCampaignInactive
		}
	})
}

// AddCredits moves credits from the owner's balance into the campaign. A
// completed campaign becomes active again.
func (u *CampaignUseCase) AddCredits(ctx context.Context, ownerID, campaignID string, credits int64) (*domain.Campaign, error) {
	if credits <= 0 {
		return nil, fmt.Errorf("add credits: %w", port.ErrInvalidInput)
	}
	return u.transition(ctx, "add credits", ownerID, campaignID, func(ctx context.Context, tx port.LedgerTx, c *domain.Campaign) (bool, error) {
		if c.Status == domain.CampaignDeleted {
			return false, port.ErrCampaignInactive
		}
		owner, err := tx.LockProfile(ctx, ownerID)
		if err != nil {
			return false, fmt.Errorf("lock owner: %w", err)
		}
		if c.Status == domain.CampaignCompleted {
			if err := u.checkCampaignLimit(ctx, tx, owner); err != nil {
				return false, err
			}
			c.Status = domain.CampaignActive
		}
		if owner.CreditBalance < credits {
			return false, port.ErrInsufficientCredits
		}
		c.CreditsAllocated += credits
		return true, u.moveCredits(ctx, tx, ownerID, -credits, domain.ReasonCampaignAllocation, u.now().UTC())
	})
}

// Delete closes a campaign for good and refunds its unspent allocation.
func (u *CampaignUseCase) Delete(ctx context.Context, ownerID, campaignID string) error {
	_, err := u.transition(ctx, "delete campaign", ownerID, campaignID, func(ctx context.Context, tx port.LedgerTx, c *domain.Campaign) (bool, error) {
		if c.Status == domain.CampaignDeleted {
			return false, port.ErrNotFound
		}
		refund := c.Remaining()
		c.Status = domain.CampaignDeleted
		c.CreditsAllocated = c.CreditsSpent
		if refund <= 0 {
			return true, nil
		}
		if _, err := tx.LockProfile(ctx, ownerID); err != nil {
			return false, fmt.Errorf("lock owner: %w", err)
		}
		return true, u.moveCredits(ctx, tx, ownerID, refund, domain.ReasonCampaignRefund, u.now().UTC())
	})
	return err
}

// transition locks the campaign, checks ownership and lets apply mutate it.
// The campaign is written back only when apply reports a change.
func (u *CampaignUseCase) transition(
	ctx context.Context,
	op, ownerID, campaignID string,
	apply func(ctx context.Context, tx port.LedgerTx, c *domain.Campaign) (bool, error),
) (camp *domain.Campaign, err error) {
	ctx, span := tracer.Start(ctx, "campaign."+strings.ReplaceAll(op, " ", "_"))
	defer func() { finishSpan(span, err) }()

	err = u.store.InTx(ctx, func(ctx context.Context, tx port.LedgerTx) error {
		c, err := tx.LockCampaign(ctx, campaignID)
		if err != nil {
			return fmt.Errorf("lock campaign: %w", err)
		}
		if c.OwnerID != ownerID {
			return port.ErrForbidden
		}
		changed, err := apply(ctx, tx, c)
		if err != nil {
			return err
		}
		if changed {
			c.UpdatedAt = u.now().UTC()
			if err := tx.UpdateCampaign(ctx, c); err != nil {
				return fmt.Errorf("update campaign: %w", err)
			}
		}
		camp = c
		return nil
	})
	if err != nil {
		return nil, storeError(op, err)
	}
	u.logger.InfoContext(ctx, op,
		slog.String("campaign_id", camp.ID),
		slog.String("status", string(camp.Status)),
	)
	return camp, nil
}

func (u *CampaignUseCase) checkCampaignLimit(ctx context.Context, tx port.LedgerTx, owner *domain.Profile) error {
	open, err := tx.CountOpenCampaigns(ctx, owner.ID)
	if err != nil {
		return fmt.Errorf("count campaigns: %w", err)
	}
	limit := owner.CampaignLimit
	if limit <= 0 {
		limit = policy.CampaignLimitForRole(owner.Role)
	}
	if open >= limit {
		return port.ErrCampaignLimitReached
	}
	return nil
}

// moveCredits appends a ledger entry and applies it to the balance in the
// same unit of work.
func (u *CampaignUseCase) moveCredits(ctx context.Context, tx port.LedgerTx, userID string, amount int64, reason domain.TransactionReason, at time.Time) error {
	return appendAndApply(ctx, tx, &domain.CreditTransaction{
		ID:        u.newID(),
		UserID:    userID,
		Amount:    amount,
		Reason:    reason,
		CreatedAt: at,
	})
}

func appendAndApply(ctx context.Context, tx port.LedgerTx, entry *domain.CreditTransaction) error {
	if err := tx.AppendTransaction(ctx, entry); err != nil {
		return fmt.Errorf("append transaction: %w", err)
	}
	if _, err := tx.IncrementBalance(ctx, entry.UserID, entry.Amount); err != nil {
		return fmt.Errorf("update balance: %w", err)
	}
	return nil
}

func validateCampaign(req port.CreateCampaignReq) error {
	if req.Title == "" || len(req.Title) > maxTitleLength || req.Credits <= 0 {
		return port.ErrInvalidInput
	}
	u, err := url.Parse(req.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return port.ErrInvalidInput
	}
	return nil
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultListLimit
	case limit > maxListLimit:
		return maxListLimit
	}
	return limit
}
