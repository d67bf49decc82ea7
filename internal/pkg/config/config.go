package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	LogLevel       string  `env:"LOG_LEVEL" envDefault:"info"`
	PostgresURL    string  `env:"POSTGRES_URL,required"`
	AMQPURL        string  `env:"AMQP_URL,required"`
	APIServerAddr  string  `env:"API_SERVER_ADDR" envDefault:":8080"`
	AdminAddr      string  `env:"ADMIN_ADDR" envDefault:":9091"`
	PrefetchCount  int     `env:"PREFETCH_COUNT" envDefault:"10"`
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"200"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"50"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	// Attempt to load .env file for local development.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
