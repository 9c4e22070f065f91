package domain

import "time"

// Role is the subscription level of a profile. It drives every per-role
// limit through the policy package.
type Role string

const (
	RoleFree    Role = "free"
	RolePremium Role = "premium"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleFree, RolePremium, RoleAdmin:
		return true
	}
	return false
}

// Profile is the account of a user of the exchange. CreditBalance is a
// materialized cache of the user's credit transactions and is only ever
// changed by atomic increments in the same transaction as the ledger row.
type Profile struct {
	ID               string
	Email            string
	DisplayName      string
	Role             Role
	CreditBalance    int64
	CreditMultiplier float64
	CampaignLimit    int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsAdmin reports whether the profile may use the admin surface.
func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}
