package domain

import "time"

// Visit is one attempt by a visitor to earn credit from a campaign. Attempt
// is the 1-based ordinal of the attempt for the (visitor, campaign) pair.
// DurationSeconds, FraudScore and CompletedAt are nil until the visit is
// completed.
type Visit struct {
	ID              string
	VisitorID       string
	CampaignID      string
	Attempt         int
	IsValid         bool
	CreditsEarned   int64
	DurationSeconds *int
	FraudScore      *int
	StartedAt       time.Time
	CompletedAt     *time.Time
}

// IsCompleted reports whether the completion metadata has been recorded.
func (v *Visit) IsCompleted() bool {
	return v.CompletedAt != nil
}

// VisitActivity is a visit joined with the owner of the visited campaign,
// as read for fraud analysis.
type VisitActivity struct {
	Visit
	CampaignOwnerID string
}
