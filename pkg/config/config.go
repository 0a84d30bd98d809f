package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:vidscope.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Sync SyncConfig `yaml:"sync" json:"sync" jsonschema:"description=Sync pipeline configuration"`

	Upstream UpstreamConfig `yaml:"upstream" json:"upstream" jsonschema:"description=Upstream feed API configuration"`

	Auth struct {
		CronSecret string `yaml:"cron_secret" json:"cron_secret" jsonschema:"description=Shared secret for the sync trigger endpoint (empty disables the check)"`
	} `yaml:"auth" json:"auth" jsonschema:"description=Authentication configuration"`
}

// SyncConfig holds sync pipeline settings
type SyncConfig struct {
	Interval          time.Duration `yaml:"interval" json:"interval" jsonschema:"default=30m,description=Periodic sync interval (0 disables the internal scheduler)"`
	SourceDelay       time.Duration `yaml:"source_delay" json:"source_delay" jsonschema:"default=400ms,description=Delay between per-source fetches to respect upstream rate limits"`
	NotifyTitles      int           `yaml:"notify_titles" json:"notify_titles" jsonschema:"default=5,description=Maximum titles listed in the notification body"`
	NotifyPayloadSize int           `yaml:"notify_payload_size" json:"notify_payload_size" jsonschema:"default=10,description=Maximum items in the notification payload"`
}

// UpstreamConfig holds upstream feed API settings
type UpstreamConfig struct {
	BaseURL           string        `yaml:"base_url" json:"base_url" jsonschema:"required,description=Base URL of the per-creator feed endpoint"`
	Platform          string        `yaml:"platform" json:"platform" jsonschema:"default=video,description=Platform tag stored with persisted videos"`
	UserAgent         string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Mozilla/5.0 (compatible; vidscope/1.0),description=User agent for upstream requests"`
	Referer           string        `yaml:"referer" json:"referer" jsonschema:"description=Referer header for upstream requests"`
	Origin            string        `yaml:"origin" json:"origin" jsonschema:"description=Origin header for upstream requests"`
	DefaultCredential string        `yaml:"default_credential" json:"default_credential" jsonschema:"description=Fallback credential used when an account has none"`
	Timeout           time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=Per-attempt request timeout"`
	MaxRetries        int           `yaml:"max_retries" json:"max_retries" jsonschema:"default=3,description=Extra attempts after the first failed request"`
	BaseDelay         time.Duration `yaml:"base_delay" json:"base_delay" jsonschema:"default=1s,description=Base backoff delay"`
	MaxDelay          time.Duration `yaml:"max_delay" json:"max_delay" jsonschema:"default=10s,description=Backoff delay cap"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:vidscope.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for sync
	if cfg.Sync.Interval == 0 {
		cfg.Sync.Interval = 30 * time.Minute
	}
	if cfg.Sync.SourceDelay == 0 {
		cfg.Sync.SourceDelay = 400 * time.Millisecond
	}
	if cfg.Sync.NotifyTitles == 0 {
		cfg.Sync.NotifyTitles = 5
	}
	if cfg.Sync.NotifyPayloadSize == 0 {
		cfg.Sync.NotifyPayloadSize = 10
	}

	// set defaults for upstream
	if cfg.Upstream.Platform == "" {
		cfg.Upstream.Platform = "video"
	}
	if cfg.Upstream.UserAgent == "" {
		cfg.Upstream.UserAgent = "Mozilla/5.0 (compatible; vidscope/1.0)"
	}
	if cfg.Upstream.Timeout == 0 {
		cfg.Upstream.Timeout = 15 * time.Second
	}
	if cfg.Upstream.MaxRetries == 0 {
		cfg.Upstream.MaxRetries = 3
	}
	if cfg.Upstream.BaseDelay == 0 {
		cfg.Upstream.BaseDelay = time.Second
	}
	if cfg.Upstream.MaxDelay == 0 {
		cfg.Upstream.MaxDelay = 10 * time.Second
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate upstream config
	if cfg.Upstream.BaseURL == "" {
		return fmt.Errorf("upstream.base_url is required")
	}
	if cfg.Upstream.MaxRetries < 0 {
		return fmt.Errorf("upstream.max_retries must be non-negative")
	}
	if cfg.Upstream.BaseDelay > cfg.Upstream.MaxDelay {
		return fmt.Errorf("upstream.base_delay must not exceed upstream.max_delay")
	}
	if cfg.Upstream.Timeout < time.Second {
		return fmt.Errorf("upstream.timeout must be at least 1 second")
	}

	// validate sync config
	if cfg.Sync.SourceDelay < 0 {
		return fmt.Errorf("sync.source_delay must be non-negative")
	}
	if cfg.Sync.NotifyTitles < 1 {
		return fmt.Errorf("sync.notify_titles must be at least 1")
	}
	if cfg.Sync.NotifyPayloadSize < 1 {
		return fmt.Errorf("sync.notify_payload_size must be at least 1")
	}

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetCronSecret returns the shared secret for the sync trigger endpoint
func (c *Config) GetCronSecret() string {
	return c.Auth.CronSecret
}

// GetSyncConfig returns sync pipeline configuration
func (c *Config) GetSyncConfig() SyncConfig {
	return c.Sync
}

// GetUpstreamConfig returns upstream feed API configuration
func (c *Config) GetUpstreamConfig() UpstreamConfig {
	return c.Upstream
}
