// Package config provides configuration loading for the reality engine.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds all runtime settings. Every field can be set through an
// ENGINE_-prefixed environment variable:
//
//	ENGINE_SERVER_ADDR    -> server_addr
//	ENGINE_GEMINI_API_KEY -> gemini_api_key
//	ENGINE_RATE_WINDOW    -> rate_window ("30s", "1m", ...)
type Config struct {
	ServerAddr   string        `koanf:"server_addr"`
	GeminiAPIKey string        `koanf:"gemini_api_key"`
	GeminiModel  string        `koanf:"gemini_model"`
	RedisAddr    string        `koanf:"redis_addr"`
	RateLimit    int           `koanf:"rate_limit"`
	RateWindow   time.Duration `koanf:"rate_window"`
}

// Load reads configuration from the environment, applies defaults and
// validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(env.Provider("ENGINE_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "ENGINE_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.ServerAddr == "" {
		cfg.ServerAddr = ":8080"
	}
	if cfg.GeminiModel == "" {
		cfg.GeminiModel = "gemini-2.0-flash"
	}
	if cfg.GeminiAPIKey == "" {
		// Same variable the hosted engine reads.
		cfg.GeminiAPIKey = os.Getenv("GOOGLE_GENAI_API_KEY")
	}
	if cfg.RateLimit == 0 {
		cfg.RateLimit = 5
	}
	if cfg.RateWindow == 0 {
		cfg.RateWindow = time.Minute
	}
}

// Validate checks settings that would otherwise only fail at request time.
func (c *Config) Validate() error {
	if c.RateLimit < 1 {
		return errors.New("rate_limit must be positive")
	}
	if c.RateWindow < time.Second {
		return errors.New("rate_window must be at least one second")
	}
	return nil
}
