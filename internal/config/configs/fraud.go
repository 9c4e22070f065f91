package configs

import "time"

// Fraud bounds the activity window read by the fraud report and how long a
// generated report is cached.
type Fraud struct {
	Window   time.Duration `env:"WINDOW" envDefault:"720h"`
	RowLimit int           `env:"ROW_LIMIT" envDefault:"500"`
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"1m"`
}
