package domain

import "time"

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	CampaignActive    CampaignStatus = "active"
	CampaignPaused    CampaignStatus = "paused"
	CampaignCompleted CampaignStatus = "completed"
	CampaignDeleted   CampaignStatus = "deleted"
)

// Campaign is a user-owned request for traffic to URL. Budgets are whole
// credits; CreditsSpent never exceeds CreditsAllocated.
type Campaign struct {
	ID               string
	OwnerID          string
	Title            string
	URL              string
	CreditsAllocated int64
	CreditsSpent     int64
	Status           CampaignStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Remaining returns the unspent part of the allocation.
func (c *Campaign) Remaining() int64 {
	return c.CreditsAllocated - c.CreditsSpent
}

// IsOpen reports whether the campaign still counts against its owner's
// campaign limit.
func (c *Campaign) IsOpen() bool {
	return c.Status == CampaignActive || c.Status == CampaignPaused
}
