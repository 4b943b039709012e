// Package config loads the wd configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingBaseURL is returned when no backend address is configured.
var ErrMissingBaseURL = errors.New("WD_API_URL is not set")

// Config aggregates application configuration values.
type Config struct {
	API     APIConfig
	Cache   CacheConfig
	Logging LoggingConfig
	Agent   AgentConfig
}

// APIConfig describes how to reach the REST backend.
type APIConfig struct {
	BaseURL string
	Prefix  string
	Token   string
	Timeout time.Duration
	// DevMode shows raw error details to the user.
	DevMode bool
}

// CacheConfig governs the query cache.
type CacheConfig struct {
	StaleTime time.Duration
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string
	Format        string // text|json
	IncludeCaller bool
}

// AgentConfig selects the model used by the assistant.
type AgentConfig struct {
	Model string
}

const (
	defaultPrefix        = "/api"
	defaultTimeout       = 30 * time.Second
	defaultStaleTime     = 5 * time.Minute
	defaultLoggingLevel  = "warn"
	defaultLoggingFormat = "text"
	defaultModel         = "gemini-2.5-flash"
)

// DotEnvFiles are read, when present, before the environment. Variables
// already set in the environment win.
var DotEnvFiles = []string{".env", ".env.local"}

// Load reads configuration from environment variables, applying defaults.
func Load() (Config, error) {
	if err := loadDotEnv(DotEnvFiles...); err != nil {
		return Config{}, err
	}

	cfg := Config{
		API: APIConfig{
			BaseURL: os.Getenv("WD_API_URL"),
			Prefix:  valueOrDefault("WD_API_PREFIX", defaultPrefix),
			Token:   os.Getenv("WD_API_TOKEN"),
			DevMode: parseBoolWithDefault("WD_DEV_MODE", false),
		},
		Logging: LoggingConfig{
			Level:         valueOrDefault("LOG_LEVEL", defaultLoggingLevel),
			Format:        valueOrDefault("LOG_FORMAT", defaultLoggingFormat),
			IncludeCaller: parseBoolWithDefault("LOG_INCLUDE_CALLER", false),
		},
		Agent: AgentConfig{
			Model: valueOrDefault("GEMINI_MODEL", defaultModel),
		},
	}

	timeout, err := parseDurationWithDefault("WD_API_TIMEOUT", defaultTimeout)
	if err != nil {
		return Config{}, err
	}
	cfg.API.Timeout = timeout

	stale, err := parseDurationWithDefault("WD_STALE_TIME", defaultStaleTime)
	if err != nil {
		return Config{}, err
	}
	cfg.Cache.StaleTime = stale

	return cfg, nil
}

// Validate reports missing mandatory values.
func (c Config) Validate() error {
	if c.API.BaseURL == "" {
		return ErrMissingBaseURL
	}
	return nil
}

func loadDotEnv(files ...string) error {
	for _, file := range files {
		err := godotenv.Load(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("invalid env file %q: %w", file, err)
		}
	}
	return nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBoolWithDefault(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.ParseBool(v)
		if err != nil {
			return fallback
		}
		return val
	}
	return fallback
}

func parseDurationWithDefault(key string, fallback time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %w", key, err)
		}
		return d, nil
	}
	return fallback, nil
}
