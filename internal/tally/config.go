package tally

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the Tally gateway connection settings, read once at startup.
type Config struct {
	// URL is the Tally HTTP gateway endpoint. Requests are posted to it
	// directly, with no path segments.
	URL string `env:"TALLY_URL" envDefault:"http://localhost:9000"`
	// TimeoutMS is the request timeout in milliseconds.
	TimeoutMS int    `env:"TALLY_TIMEOUT" envDefault:"30000"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Timeout returns the configured request timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}
