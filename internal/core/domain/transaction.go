package domain

import "time"

// TransactionReason explains why a credit transaction was written.
type TransactionReason string

const (
	ReasonVisitEarned        TransactionReason = "visit_earned"
	ReasonCampaignAllocation TransactionReason = "campaign_allocation"
	ReasonCampaignRefund     TransactionReason = "campaign_refund"
	ReasonAdminAdjustment    TransactionReason = "admin_adjustment"
	ReasonSignupBonus        TransactionReason = "signup_bonus"
)

// CreditTransaction is an append-only ledger entry. Amount is signed:
// positive credits the user, negative debits them.
type CreditTransaction struct {
	ID        string
	UserID    string
	Amount    int64
	Reason    TransactionReason
	VisitID   *string
	CreatedAt time.Time
}
