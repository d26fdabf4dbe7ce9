package server

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/iwvelando/mortgage-calculator/internal/logging"
	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config defines runtime parameters for the HTTP server.
type Config struct {
	Address   string          `yaml:"address" validate:"required"`
	Logging   logging.Config  `yaml:"logging"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rateLimit"`
}

// CORSConfig lists the origins allowed to call the API from a browser.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowedOrigins" validate:"dive,required"`
}

// RateLimitConfig configures per-client request limiting. A zero
// RequestsPerSecond disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64       `yaml:"requestsPerSecond" validate:"gte=0"`
	Burst             int           `yaml:"burst" validate:"gte=0"`
	TTL               time.Duration `yaml:"ttl" validate:"gte=0"`
}

// envOverrides are read from the process environment after the YAML file.
type envOverrides struct {
	Port        string   `envconfig:"PORT"`
	LogLevel    string   `envconfig:"MORTGAGE_LOG_LEVEL"`
	LogFormat   string   `envconfig:"MORTGAGE_LOG_FORMAT"`
	CORSOrigins []string `envconfig:"MORTGAGE_CORS_ORIGINS"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Address: constants.DefaultServerAddress,
		CORS:    CORSConfig{AllowedOrigins: []string{constants.DefaultCORSOrigin}},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: constants.DefaultRateLimitPerSecond,
			Burst:             constants.DefaultRateLimitBurst,
			TTL:               constants.DefaultRateLimitTTL,
		},
	}
}

// LoadConfig loads the server configuration from YAML, then applies
// environment overrides (including an optional .env file). If the file does
// not exist, defaults are used without error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read server config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse server config: %w", err)
			}
		}
	}

	// .env is optional
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	cfg.normalize()

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid server config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	var env envOverrides
	if err := envconfig.Process("", &env); err != nil {
		return fmt.Errorf("failed to read environment overrides: %w", err)
	}

	if port := strings.TrimSpace(env.Port); port != "" {
		c.Address = ":" + strings.TrimPrefix(port, ":")
	}
	if env.LogLevel != "" {
		c.Logging.Level = env.LogLevel
	}
	if env.LogFormat != "" {
		c.Logging.Format = env.LogFormat
	}
	if len(env.CORSOrigins) > 0 {
		c.CORS.AllowedOrigins = env.CORSOrigins
	}
	return nil
}

func (c *Config) normalize() {
	if strings.TrimSpace(c.Address) == "" {
		c.Address = constants.DefaultServerAddress
	}

	origins := make([]string, 0, len(c.CORS.AllowedOrigins))
	for _, origin := range c.CORS.AllowedOrigins {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	if len(origins) == 0 {
		origins = []string{constants.DefaultCORSOrigin}
	}
	c.CORS.AllowedOrigins = origins

	if c.RateLimit.RequestsPerSecond > 0 && c.RateLimit.Burst <= 0 {
		c.RateLimit.Burst = constants.DefaultRateLimitBurst
	}
	if c.RateLimit.TTL <= 0 {
		c.RateLimit.TTL = constants.DefaultRateLimitTTL
	}
}
