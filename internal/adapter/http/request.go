package httpadapter

import (
	"time"

	"traffic-exchange/internal/core/domain"
	"traffic-exchange/internal/core/port"
)

// Request bodies. Pointers mark fields whose zero value is meaningful and
// must still be sent.

type ensureProfileRequest struct {
	Email       string `json:"email" validate:"omitempty,email"`
	DisplayName string `json:"display_name" validate:"max=80"`
}

type createCampaignRequest struct {
	Title   string `json:"title" validate:"required,max=120"`
	URL     string `json:"url" validate:"required,http_url"`
	Credits int64  `json:"credits" validate:"required,gt=0"`
}

type addCreditsRequest struct {
	Credits int64 `json:"credits" validate:"required,gt=0"`
}

type completeVisitRequest struct {
	DurationSeconds *int `json:"duration_seconds" validate:"required,gte=0"`
	FraudScore      *int `json:"fraud_score" validate:"required,gte=0,lte=100"`
}

type setRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=free premium admin"`
}

type adjustCreditsRequest struct {
	Amount int64 `json:"amount" validate:"required"`
}

type reviewRequest struct {
	UserID   string `json:"user_id" validate:"required"`
	Category string `json:"category" validate:"required,oneof=rapid_visits bot_duration self_visit new_account_high_balance high_failure_rate rapid_credit_accumulation"`
	Status   string `json:"status" validate:"required,oneof=pending blocked false_positive"`
	Note     string `json:"note" validate:"max=500"`
}

// Response bodies.

type profileResponse struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	DisplayName      string    `json:"display_name"`
	Role             string    `json:"role"`
	CreditBalance    int64     `json:"credit_balance"`
	CreditMultiplier float64   `json:"credit_multiplier"`
	CampaignLimit    int       `json:"campaign_limit"`
	CreatedAt        time.Time `json:"created_at"`
}

func toProfileResponse(p *domain.Profile) profileResponse {
	return profileResponse{
		ID:               p.ID,
		Email:            p.Email,
		DisplayName:      p.DisplayName,
		Role:             string(p.Role),
		CreditBalance:    p.CreditBalance,
		CreditMultiplier: p.CreditMultiplier,
		CampaignLimit:    p.CampaignLimit,
		CreatedAt:        p.CreatedAt,
	}
}

type campaignResponse struct {
	ID               string    `json:"id"`
	OwnerID          string    `json:"owner_id"`
	Title            string    `json:"title"`
	URL              string    `json:"url"`
	CreditsAllocated int64     `json:"credits_allocated"`
	CreditsSpent     int64     `json:"credits_spent"`
	CreditsRemaining int64     `json:"credits_remaining"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func toCampaignResponse(c *domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:               c.ID,
		OwnerID:          c.OwnerID,
		Title:            c.Title,
		URL:              c.URL,
		CreditsAllocated: c.CreditsAllocated,
		CreditsSpent:     c.CreditsSpent,
		CreditsRemaining: c.Remaining(),
		Status:           string(c.Status),
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func toCampaignResponses(cs []domain.Campaign) []campaignResponse {
	out := make([]campaignResponse, 0, len(cs))
	for i := range cs {
		out = append(out, toCampaignResponse(&cs[i]))
	}
	return out
}

type transactionResponse struct {
	ID        string    `json:"id"`
	Amount    int64     `json:"amount"`
	Reason    string    `json:"reason"`
	VisitID   *string   `json:"visit_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toTransactionResponses(ts []domain.CreditTransaction) []transactionResponse {
	out := make([]transactionResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, transactionResponse{
			ID:        t.ID,
			Amount:    t.Amount,
			Reason:    string(t.Reason),
			VisitID:   t.VisitID,
			CreatedAt: t.CreatedAt,
		})
	}
	return out
}

type receiptResponse struct {
	VisitID           string `json:"visit_id"`
	Attempt           int    `json:"attempt"`
	CreditsEarned     int64  `json:"credits_earned"`
	Balance           int64  `json:"balance"`
	CampaignCompleted bool   `json:"campaign_completed"`
}

type visitResponse struct {
	ID              string     `json:"id"`
	CampaignID      string     `json:"campaign_id"`
	Attempt         int        `json:"attempt"`
	IsValid         bool       `json:"is_valid"`
	CreditsEarned   int64      `json:"credits_earned"`
	DurationSeconds *int       `json:"duration_seconds"`
	FraudScore      *int       `json:"fraud_score"`
	StartedAt       time.Time  `json:"started_at"`
	CompletedAt     *time.Time `json:"completed_at"`
}

func toVisitResponse(v *domain.Visit) visitResponse {
	return visitResponse{
		ID:              v.ID,
		CampaignID:      v.CampaignID,
		Attempt:         v.Attempt,
		IsValid:         v.IsValid,
		CreditsEarned:   v.CreditsEarned,
		DurationSeconds: v.DurationSeconds,
		FraudScore:      v.FraudScore,
		StartedAt:       v.StartedAt,
		CompletedAt:     v.CompletedAt,
	}
}

type reconciliationResponse struct {
	UserID     string `json:"user_id"`
	Balance    int64  `json:"balance"`
	LedgerSum  int64  `json:"ledger_sum"`
	Consistent bool   `json:"consistent"`
}

type findingResponse struct {
	UserID      string     `json:"user_id"`
	Category    string     `json:"category"`
	Severity    string     `json:"severity"`
	Description string     `json:"description"`
	Score       int        `json:"score"`
	DetectedAt  time.Time  `json:"detected_at"`
	Status      string     `json:"status"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`
}

type fraudStatsResponse struct {
	TotalFindings  int     `json:"total_findings"`
	BlockedLast24h int     `json:"blocked_last_24h"`
	FalsePositives int     `json:"false_positives"`
	AverageScore   float64 `json:"average_score"`
}

type fraudReportResponse struct {
	Findings    []findingResponse  `json:"findings"`
	Stats       fraudStatsResponse `json:"stats"`
	WindowStart time.Time          `json:"window_start"`
	GeneratedAt time.Time          `json:"generated_at"`
}

func toFraudReportResponse(r *port.FraudReport) fraudReportResponse {
	findings := make([]findingResponse, 0, len(r.Findings))
	for _, f := range r.Findings {
		findings = append(findings, findingResponse{
			UserID:      f.UserID,
			Category:    string(f.Category),
			Severity:    string(f.Severity),
			Description: f.Description,
			Score:       f.Score,
			DetectedAt:  f.DetectedAt,
			Status:      string(f.Status),
			ReviewedAt:  f.ReviewedAt,
		})
	}
	return fraudReportResponse{
		Findings: findings,
		Stats: fraudStatsResponse{
			TotalFindings:  r.Stats.TotalFindings,
			BlockedLast24h: r.Stats.BlockedLast24h,
			FalsePositives: r.Stats.FalsePositives,
			AverageScore:   r.Stats.AverageScore,
		},
		WindowStart: r.WindowStart,
		GeneratedAt: r.GeneratedAt,
	}
}

type reviewResponse struct {
	UserID     string    `json:"user_id"`
	Category   string    `json:"category"`
	Status     string    `json:"status"`
	Note       string    `json:"note,omitempty"`
	ReviewedBy string    `json:"reviewed_by"`
	ReviewedAt time.Time `json:"reviewed_at"`
}
