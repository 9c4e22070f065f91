package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"traffic-exchange/internal/core/domain"
)

func TestMaxVisitsForRole(t *testing.T) {
	assert.Equal(t, 3, MaxVisitsForRole(domain.RoleFree))
	assert.Equal(t, 10, MaxVisitsForRole(domain.RolePremium))
	assert.Equal(t, 10, MaxVisitsForRole(domain.RoleAdmin))
	assert.Equal(t, 3, MaxVisitsForRole(domain.Role("unknown")))
}

func TestCreditMultiplierOnlyAboveOneForPremium(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleFree, domain.RoleAdmin, domain.Role("")} {
		assert.Equal(t, 1.0, CreditMultiplierForRole(role), role)
	}
	assert.Equal(t, 1.2, CreditMultiplierForRole(domain.RolePremium))
}

func TestCreditsEarnedFloors(t *testing.T) {
	cases := []struct {
		multiplier float64
		want       int64
	}{
		{1.0, 1},
		{1.2, 1},
		{1.99, 1},
		{2.0, 2},
		{0, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CreditsEarned(tc.multiplier), "multiplier %v", tc.multiplier)
	}
}

func TestCampaignLimitForRole(t *testing.T) {
	assert.Equal(t, 3, CampaignLimitForRole(domain.RoleFree))
	assert.Equal(t, 20, CampaignLimitForRole(domain.RolePremium))
	assert.Equal(t, 100, CampaignLimitForRole(domain.RoleAdmin))
}

func TestVisitValid(t *testing.T) {
	assert.True(t, VisitValid(0))
	assert.True(t, VisitValid(69))
	assert.False(t, VisitValid(70))
}
