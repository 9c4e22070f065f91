package configs

// Ledger holds credit economy settings that are not role dependent.
type Ledger struct {
	// SignupBonus is credited to every new profile. Zero disables it.
	SignupBonus int64 `env:"SIGNUP_BONUS" envDefault:"0"`
}
