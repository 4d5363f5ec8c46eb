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
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:devpulse.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Cache CacheConfig `yaml:"cache" json:"cache" jsonschema:"description=Read-through cache configuration"`

	Sources SourcesConfig `yaml:"sources" json:"sources" jsonschema:"description=External content source configuration"`

	Feed FeedConfig `yaml:"feed" json:"feed" jsonschema:"description=Feed assembly configuration"`
}

// FeedConfig holds feed assembly settings
type FeedConfig struct {
	DefaultPageSize int `yaml:"default_page_size" json:"default_page_size" jsonschema:"default=10,description=Default feed page size"`
	MaxPageSize     int `yaml:"max_page_size" json:"max_page_size" jsonschema:"default=50,description=Maximum feed page size"`
	TrendingDays    int `yaml:"trending_days" json:"trending_days" jsonschema:"default=7,description=Lookback window in days for trending tags"`
	TrendingLimit   int `yaml:"trending_limit" json:"trending_limit" jsonschema:"default=10,description=Number of trending tags returned"`
}

// CacheConfig holds read-through cache settings
type CacheConfig struct {
	Path         string        `yaml:"path" json:"path" jsonschema:"default=devpulse-cache,description=Badger cache directory (ignored when in_memory is set)"`
	InMemory     bool          `yaml:"in_memory" json:"in_memory" jsonschema:"default=false,description=Keep cache entries in memory only"`
	FeedTTL      time.Duration `yaml:"feed_ttl" json:"feed_ttl" jsonschema:"default=5m,description=TTL for feed page reads"`
	TrendingTTL  time.Duration `yaml:"trending_ttl" json:"trending_ttl" jsonschema:"default=30m,description=TTL for trending/aggregate reads"`
	SingleFlight bool          `yaml:"single_flight" json:"single_flight" jsonschema:"default=false,description=Collapse concurrent misses for the same key into one handler call"`
}

// SourceConfig holds per-provider sync settings
type SourceConfig struct {
	Enabled       bool          `yaml:"enabled" json:"enabled" jsonschema:"default=true,description=Enable periodic sync for this source"`
	Interval      time.Duration `yaml:"interval" json:"interval" jsonschema:"description=Sync interval"`
	FetchLimit    int           `yaml:"fetch_limit" json:"fetch_limit" jsonschema:"description=Items requested per sync cycle"`
	MinEngagement int           `yaml:"min_engagement" json:"min_engagement" jsonschema:"description=Minimum points/reactions for an item to be kept"`
	RetentionDays int           `yaml:"retention_days" json:"retention_days" jsonschema:"description=Days before a stored item is pruned"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=Per-fetch HTTP timeout"`
	Token         string        `yaml:"token" json:"token" jsonschema:"description=Optional bearer token to reduce upstream throttling"`
}

// SourcesConfig groups the per-provider settings
type SourcesConfig struct {
	HackerNews SourceConfig `yaml:"hackernews" json:"hackernews" jsonschema:"description=Hacker News source settings"`
	DevTo      SourceConfig `yaml:"devto" json:"devto" jsonschema:"description=Dev.to source settings"`
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

	cfg.SetDefaults()

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

// SetDefaults fills zero-valued fields with their defaults
func (c *Config) SetDefaults() {
	// set defaults for server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if c.Database.DSN == "" {
		c.Database.DSN = "file:devpulse.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	// set defaults for cache
	if c.Cache.Path == "" && !c.Cache.InMemory {
		c.Cache.Path = "devpulse-cache"
	}
	if c.Cache.FeedTTL == 0 {
		c.Cache.FeedTTL = 5 * time.Minute
	}
	if c.Cache.TrendingTTL == 0 {
		c.Cache.TrendingTTL = 30 * time.Minute
	}

	// per-source defaults, retention windows differ per provider
	setSourceDefaults(&c.Sources.HackerNews, 30*time.Minute, 30, 7)
	setSourceDefaults(&c.Sources.DevTo, time.Hour, 25, 14)
	if c.Sources.HackerNews.MinEngagement == 0 {
		c.Sources.HackerNews.MinEngagement = 10
	}
	if c.Sources.DevTo.MinEngagement == 0 {
		c.Sources.DevTo.MinEngagement = 1
	}

	// set defaults for feed
	if c.Feed.DefaultPageSize == 0 {
		c.Feed.DefaultPageSize = 10
	}
	if c.Feed.MaxPageSize == 0 {
		c.Feed.MaxPageSize = 50
	}
	if c.Feed.TrendingDays == 0 {
		c.Feed.TrendingDays = 7
	}
	if c.Feed.TrendingLimit == 0 {
		c.Feed.TrendingLimit = 10
	}
}

func setSourceDefaults(sc *SourceConfig, interval time.Duration, fetchLimit, retentionDays int) {
	if sc.Interval == 0 {
		sc.Interval = interval
	}
	if sc.FetchLimit == 0 {
		sc.FetchLimit = fetchLimit
	}
	if sc.RetentionDays == 0 {
		sc.RetentionDays = retentionDays
	}
	if sc.Timeout == 0 {
		sc.Timeout = 15 * time.Second
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	// validate cache config
	if cfg.Cache.FeedTTL < time.Second {
		return fmt.Errorf("cache.feed_ttl must be at least 1 second")
	}
	if cfg.Cache.TrendingTTL < time.Second {
		return fmt.Errorf("cache.trending_ttl must be at least 1 second")
	}

	// validate source configs
	sources := map[string]SourceConfig{
		"hackernews": cfg.Sources.HackerNews,
		"devto":      cfg.Sources.DevTo,
	}
	for name, sc := range sources {
		if sc.Interval < time.Minute {
			return fmt.Errorf("sources.%s.interval must be at least 1 minute", name)
		}
		if sc.FetchLimit < 1 {
			return fmt.Errorf("sources.%s.fetch_limit must be at least 1", name)
		}
		if sc.RetentionDays < 1 {
			return fmt.Errorf("sources.%s.retention_days must be at least 1 day", name)
		}
		if sc.MinEngagement < 0 {
			return fmt.Errorf("sources.%s.min_engagement must be non-negative", name)
		}
	}

	// validate feed config
	if cfg.Feed.DefaultPageSize < 1 || cfg.Feed.DefaultPageSize > cfg.Feed.MaxPageSize {
		return fmt.Errorf("feed.default_page_size must be between 1 and max_page_size")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetCacheConfig returns cache configuration
func (c *Config) GetCacheConfig() CacheConfig {
	return c.Cache
}

// GetSourcesConfig returns external source configuration
func (c *Config) GetSourcesConfig() SourcesConfig {
	return c.Sources
}

// GetFeedConfig returns feed assembly configuration
func (c *Config) GetFeedConfig() FeedConfig {
	return c.Feed
}
