// Package policy holds every role-dependent rule of the exchange in one
// place so the ledger, the campaign flows and the admin surface agree.
package policy

import (
	"math"

	"traffic-exchange/internal/core/domain"
)

const (
	// BaseVisitCredit is the credit award of a visit before the multiplier.
	BaseVisitCredit = 1
	// CampaignDebitPerVisit is what a campaign pays for one visit,
	// whatever the visitor's multiplier.
	CampaignDebitPerVisit = 1
	// InvalidFraudScore is the client fraud score from which a completed
	// visit is marked invalid.
	InvalidFraudScore = 70
)

// MaxVisitsForRole returns how many times a visitor with role may earn
// credit from the same campaign.
func MaxVisitsForRole(role domain.Role) int {
	switch role {
	case domain.RolePremium, domain.RoleAdmin:
		return 10
	default:
		return 3
	}
}

// CreditMultiplierForRole returns the scalar applied to the base award.
func CreditMultiplierForRole(role domain.Role) float64 {
	if role == domain.RolePremium {
		return 1.2
	}
	return 1.0
}

// CampaignLimitForRole returns how many open campaigns a profile may own.
func CampaignLimitForRole(role domain.Role) int {
	switch role {
	case domain.RolePremium:
		return 20
	case domain.RoleAdmin:
		return 100
	default:
		return 3
	}
}

// CreditsEarned returns the award of one visit. The result is floored:
// fractional bonus credits are dropped, never rounded up.
func CreditsEarned(multiplier float64) int64 {
	if multiplier <= 0 {
		return 0
	}
	return int64(math.Floor(BaseVisitCredit * multiplier))
}

// VisitValid reports whether a completed visit with the given client fraud
// score counts as valid.
func VisitValid(fraudScore int) bool {
	return fraudScore < InvalidFraudScore
}
