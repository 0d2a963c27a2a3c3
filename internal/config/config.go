package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrMissingAPIKey is returned when no Steam Web API key is available. The
// schema endpoint rejects unauthenticated requests, so this is fatal before
// any network call.
var ErrMissingAPIKey = errors.New("missing STEAM_API_KEY. Please set it in the environment or .env file")

// Config holds all application configuration.
type Config struct {
	// APIKey authenticates against the Steam Web API schema endpoint.
	APIKey string `env:"STEAM_API_KEY"`

	// BaseURL is overridable mainly for tests and API mirrors.
	BaseURL string `env:"STEAM_API_BASE_URL" envDefault:"https://api.steampowered.com"`
}

// Load reads configuration from environment variables, after a best-effort
// load of a .env file from the working directory.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	// envDefault only covers unset variables; a set-but-empty override still
	// falls back.
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.steampowered.com"
	}
	return cfg, nil
}
