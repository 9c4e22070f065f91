package configs

import "time"

// RateLimit bounds how fast a single user may record visits.
type RateLimit struct {
	Requests int           `env:"REQUESTS" envDefault:"30"`
	Window   time.Duration `env:"WINDOW" envDefault:"1m"`
	Burst    int           `env:"BURST" envDefault:"10"`
}
