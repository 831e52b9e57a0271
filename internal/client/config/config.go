package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// Mode gates development-only behaviour such as seeding views with sample
// data before any network attempt.
type Mode string

const (
	ModeDevelopment Mode = "development"
	ModeProduction  Mode = "production"
)

var (
	ErrInvalidMode      = errors.New("invalid mode")
	ErrInvalidServerURL = errors.New("invalid server url")
	ErrInvalidDuration  = errors.New("invalid duration")
)

// Config holds runtime settings for the moodkeeper client.
type Config struct {
	ServerURL string
	// JournalPath is the journal API prefix. Deployments have used both
	// "/journal" and "/api/v1/journal".
	JournalPath         string
	Mode                Mode
	DBPath              string
	LogFile             string
	LogLevel            string
	ResourcesTimeout    time.Duration
	OnlineCheckInterval time.Duration
	// RequestsPerSecond throttles outgoing requests; 0 disables throttling.
	RequestsPerSecond float64
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "https://api.moodkeeper.app"
	c.JournalPath = "/journal"
	c.Mode = ModeProduction
	c.DBPath = "moodkeeper.db"
	c.LogFile = "moodkeeper.log"
	c.LogLevel = "info"
	c.ResourcesTimeout = 10 * time.Second
	c.OnlineCheckInterval = 5 * time.Second
	c.RequestsPerSecond = 0
}

// IsDevelopment reports whether development-only behaviour is enabled.
func (c *Config) IsDevelopment() bool {
	return c.Mode == ModeDevelopment
}

// Validate checks the values that cannot be fixed up silently.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeDevelopment, ModeProduction:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMode, c.Mode)
	}

	u, err := url.Parse(c.ServerURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidServerURL, c.ServerURL)
	}

	if c.ResourcesTimeout <= 0 {
		return fmt.Errorf("%w: resources_timeout must be positive, got %s", ErrInvalidDuration, c.ResourcesTimeout)
	}
	if c.OnlineCheckInterval <= 0 {
		return fmt.Errorf("%w: online_check_interval must be positive, got %s", ErrInvalidDuration, c.OnlineCheckInterval)
	}
	return nil
}

// LoadConfig builds a Config from defaults, the optional JSON file, the
// environment and finally args (usually os.Args[1:]). Later sources take
// precedence over earlier ones.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJSON(cfg, args); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
