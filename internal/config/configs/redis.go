package configs

// Redis configures the optional Redis connection used for the fraud report
// cache and the distributed visit rate limiter. An empty URL disables
// Redis; the report is then computed on every request and rate limiting
// falls back to a per-process limiter.
type Redis struct {
	URL          string `env:"URL"`
	PoolSize     int    `env:"POOL_SIZE" envDefault:"10"`
	MinIdleConns int    `env:"MIN_IDLE_CONNS" envDefault:"2"`
}

// Enabled reports whether a Redis URL was configured.
func (c Redis) Enabled() bool {
	return c.URL != ""
}
