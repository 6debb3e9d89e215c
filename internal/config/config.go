// Package config handles application configuration loading from environment
// variables, optionally preloaded from a .env file. It provides a
// centralized Config struct used across the application.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Content backends.
const (
	BackendSanity   = "sanity"
	BackendPostgres = "postgres"
)

const devDBPassword = "changeme"

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host     string
	Port     string
	Env      string // "development", "production", "testing"
	LogLevel string
	SiteURL  string
	// AllowedOrigins may call the API from a browser.
	AllowedOrigins []string

	// Content store
	ContentBackend   string
	SanityProjectID  string
	SanityDataset    string
	SanityAPIVersion string
	SanityToken      string
	SanityUseCDN     bool

	// PostgreSQL mirror, used when ContentBackend is "postgres"
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Valkey (Redis-compatible cache); empty host means in-process cache
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string
	// Revalidate is how long content reads are served from cache.
	Revalidate time.Duration

	// Email delivery
	ResendAPIKey      string
	ResendAudienceID  string
	ResendBaseURL     string
	ContactFromClient string
	ContactFromAdmin  string
	ContactAdminEmail string
	ContactCC         []string

	// Contact endpoint throttling
	ContactRateLimit  int
	ContactRateWindow time.Duration

	// TrustProxy honors forwarding headers for the client address.
	TrustProxy bool
}

// Load reads an optional .env file (or the given files) and then the
// environment. Variables already set in the environment win over the file.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment, applying
// development defaults, and validates it.
func FromEnv() (*Config, error) {
	var errs []error
	duration := func(key string, fallback time.Duration) time.Duration {
		d, err := envDuration(key, fallback)
		if err != nil {
			errs = append(errs, err)
		}
		return d
	}
	integer := func(key string, fallback int) int {
		n, err := envInt(key, fallback)
		if err != nil {
			errs = append(errs, err)
		}
		return n
	}

	env := envOrDefault("APP_ENV", "development")
	siteURL := strings.TrimRight(envOrDefault("SITE_URL", "https://sciallastudioid.com"), "/")
	logLevel := "info"
	if env == "development" {
		logLevel = "debug"
	}

	cfg := &Config{
		Host:           envOrDefault("APP_HOST", "0.0.0.0"),
		Port:           envOrDefault("APP_PORT", "8080"),
		Env:            env,
		LogLevel:       strings.ToLower(envOrDefault("LOG_LEVEL", logLevel)),
		SiteURL:        siteURL,
		AllowedOrigins: envList("CORS_ALLOWED_ORIGINS", []string{siteURL}),

		ContentBackend:   strings.ToLower(envOrDefault("CONTENT_BACKEND", BackendSanity)),
		SanityProjectID:  os.Getenv("SANITY_PROJECT_ID"),
		SanityDataset:    envOrDefault("SANITY_DATASET", "production"),
		SanityAPIVersion: envOrDefault("SANITY_API_VERSION", "2024-01-01"),
		SanityToken:      os.Getenv("SANITY_API_TOKEN"),
		SanityUseCDN:     envOrDefault("SANITY_USE_CDN", "true") == "true",

		DBHost:     envOrDefault("POSTGRES_HOST", "localhost"),
		DBPort:     envOrDefault("POSTGRES_PORT", "5432"),
		DBUser:     envOrDefault("POSTGRES_USER", "sciallastudio"),
		DBPassword: envOrDefault("POSTGRES_PASSWORD", devDBPassword),
		DBName:     envOrDefault("POSTGRES_DB", "sciallastudio"),

		ValkeyHost:     os.Getenv("VALKEY_HOST"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),
		Revalidate:     duration("CONTENT_REVALIDATE", time.Hour),

		ResendAPIKey:      os.Getenv("RESEND_API_KEY"),
		ResendAudienceID:  os.Getenv("RESEND_AUDIENCE_ID"),
		ResendBaseURL:     envOrDefault("RESEND_BASE_URL", "https://api.resend.com"),
		ContactFromClient: envOrDefault("CONTACT_FROM_CLIENT", "Scialla Studio <contact@sciallastudioid.com>"),
		ContactFromAdmin:  envOrDefault("CONTACT_FROM_ADMIN", "Website Contact Form <contact@sciallastudioid.com>"),
		ContactAdminEmail: envOrDefault("CONTACT_ADMIN_EMAIL", "info@sciallastudioid.com"),
		ContactCC:         envList("CONTACT_CC", nil),

		ContactRateLimit:  integer("CONTACT_RATE_LIMIT", 5),
		ContactRateWindow: duration("CONTACT_RATE_WINDOW", 10*time.Minute),
		TrustProxy:        envOrDefault("TRUST_PROXY", "false") == "true",
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	switch c.ContentBackend {
	case BackendSanity:
		if c.SanityProjectID == "" {
			errs = append(errs, errors.New("SANITY_PROJECT_ID is required for the sanity content backend"))
		}
	case BackendPostgres:
		if c.IsProduction() && c.DBPassword == devDBPassword {
			errs = append(errs, errors.New("POSTGRES_PASSWORD must be set in production"))
		}
	default:
		errs = append(errs, fmt.Errorf("CONTENT_BACKEND must be %q or %q, got %q", BackendSanity, BackendPostgres, c.ContentBackend))
	}

	if c.IsProduction() && c.ResendAPIKey == "" {
		errs = append(errs, errors.New("RESEND_API_KEY must be set in production"))
	}
	if c.Revalidate <= 0 {
		errs = append(errs, errors.New("CONTENT_REVALIDATE must be positive"))
	}
	if c.ContactRateLimit <= 0 || c.ContactRateWindow <= 0 {
		errs = append(errs, errors.New("CONTACT_RATE_LIMIT and CONTACT_RATE_WINDOW must be positive"))
	}
	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// EmailConfigured reports whether outbound email can be sent.
func (c *Config) EmailConfigured() bool {
	return c.ResendAPIKey != ""
}

// ValkeyAddr returns host:port, or "" when no Valkey host is configured.
func (c *Config) ValkeyAddr() string {
	if c.ValkeyHost == "" {
		return ""
	}
	return net.JoinHostPort(c.ValkeyHost, c.ValkeyPort)
}

// SlogLevel parses LogLevel.
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return level, nil
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envList splits a comma-separated variable, dropping blanks.
func envList(key string, fallback []string) []string {
	raw := os.Getenv(key)
	if strings.TrimSpace(raw) == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func envInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
