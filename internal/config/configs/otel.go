package configs

// Otel configures trace export over OTLP/gRPC. When disabled spans are
// still created but never leave the process.
type Otel struct {
	Enabled     bool    `env:"ENABLED" envDefault:"false"`
	Endpoint    string  `env:"ENDPOINT" envDefault:"localhost:4317"`
	ServiceName string  `env:"SERVICE_NAME" envDefault:"traffic-exchange"`
	Insecure    bool    `env:"INSECURE" envDefault:"true"`
	SampleRate  float64 `env:"SAMPLE_RATE" envDefault:"1"`
}
