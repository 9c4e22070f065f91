package configs

// Auth configures verification of the bearer tokens issued by the external
// identity provider. Tokens are HS256 signed with Secret; Issuer and
// Audience are checked only when set.
type Auth struct {
	Secret   string `env:"JWT_SECRET,notEmpty"`
	Issuer   string `env:"ISSUER"`
	Audience string `env:"AUDIENCE"`
}
