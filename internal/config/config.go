package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultAPIURL          = "https://rest.arbeitsagentur.de/jobboerse/jobsuche-service"
	defaultDefaultPageSize = 25
	defaultMaxPageSize     = 100

	// The upstream API rejects page sizes above 100.
	apiPageSizeCeiling = 100
)

// Config contains runtime settings for the MCP server
type Config struct {
	LogLevel string
	Host     string // default 0.0.0.0
	Port     string // default PORT env or 8080
	API      struct {
		BaseURL string
		Key     string // optional, the public default key is used when empty
	}
	DefaultPageSize int
	MaxPageSize     int
	RedisURL        string // optional, enables the job detail cache
}

// Load populates config from a .env file (if present) and environment variables
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		LogLevel:        "info",
		Host:            "0.0.0.0",
		Port:            "8080",
		DefaultPageSize: defaultDefaultPageSize,
		MaxPageSize:     defaultMaxPageSize,
	}
	cfg.API.BaseURL = defaultAPIURL

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if v := os.Getenv("MCP_HOST"); v != "" {
		cfg.Host = v
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}

	if v := os.Getenv("JOBSUCHE_API_URL"); v != "" {
		cfg.API.BaseURL = v
	}

	cfg.API.Key = os.Getenv("JOBSUCHE_API_KEY")
	cfg.RedisURL = os.Getenv("REDIS_URL")

	if v := os.Getenv("JOBSUCHE_DEFAULT_PAGE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("JOBSUCHE_DEFAULT_PAGE_SIZE must be an integer, got %q", v)
		}
		cfg.DefaultPageSize = n
	}

	if v := os.Getenv("JOBSUCHE_MAX_PAGE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("JOBSUCHE_MAX_PAGE_SIZE must be an integer, got %q", v)
		}
		cfg.MaxPageSize = n
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks invariants that must hold before the server starts
func (c Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("API URL cannot be empty")
	}

	if !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		return fmt.Errorf("API URL must start with http:// or https://")
	}

	if c.DefaultPageSize <= 0 {
		return fmt.Errorf("default page size must be greater than 0")
	}

	if c.MaxPageSize <= 0 {
		return fmt.Errorf("max page size must be greater than 0")
	}

	if c.DefaultPageSize > c.MaxPageSize {
		return fmt.Errorf("default page size (%d) cannot exceed max page size (%d)", c.DefaultPageSize, c.MaxPageSize)
	}

	if c.MaxPageSize > apiPageSizeCeiling {
		return fmt.Errorf("max page size cannot exceed %d (API limitation)", apiPageSizeCeiling)
	}

	return nil
}
