package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/umputun/swipefeed/pkg/domain"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server  ServerConfig  `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Player  PlayerConfig  `yaml:"player" json:"player" jsonschema:"description=Video player configuration"`
	Catalog CatalogConfig `yaml:"catalog" json:"catalog" jsonschema:"description=Video catalog sources"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
}

// PlayerConfig holds playback flags passed to the rendering layer
type PlayerConfig struct {
	Loop  *bool `yaml:"loop" json:"loop" jsonschema:"default=true,description=Repeat the active video"`
	Muted *bool `yaml:"muted" json:"muted" jsonschema:"default=true,description=Start videos muted (required for autoplay in most browsers)"`
}

// CatalogConfig defines where videos come from. Sources are merged in order: videos, feeds, stores.
type CatalogConfig struct {
	Workers int                `yaml:"workers" json:"workers" jsonschema:"default=4,minimum=1,description=Maximum sources loaded concurrently"`
	Fetch   FetchConfig        `yaml:"fetch" json:"fetch" jsonschema:"description=Remote feed fetch settings"`
	Videos  []domain.VideoItem `yaml:"videos" json:"videos" jsonschema:"description=Inline videos"`
	Feeds   []FeedConfig       `yaml:"feeds" json:"feeds" jsonschema:"description=RSS/Atom/JSON feeds with video enclosures"`
	Stores  []StoreConfig      `yaml:"stores" json:"stores" jsonschema:"description=SQLite databases with a videos table"`
}

// FetchConfig holds remote feed fetch settings
type FetchConfig struct {
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Feed fetch timeout"`
	Retries   int           `yaml:"retries" json:"retries" jsonschema:"default=3,minimum=1,description=Fetch attempts per feed"`
	UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=swipefeed/1.0,description=User agent for HTTP requests"`
}

// FeedConfig defines a single feed source
type FeedConfig struct {
	URL  string `yaml:"url" json:"url" jsonschema:"required,description=Feed URL"`
	Name string `yaml:"name" json:"name" jsonschema:"description=Feed name (defaults to URL)"`
}

// StoreConfig defines a single database source
type StoreConfig struct {
	DSN string `yaml:"dsn" json:"dsn" jsonschema:"required,description=SQLite connection string"`
}

// Default returns configuration with all defaults set and no catalog sources
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
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

	setDefaults(&cfg)

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

func setDefaults(cfg *Config) {
	// server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// player
	if cfg.Player.Loop == nil {
		cfg.Player.Loop = boolPtr(true)
	}
	if cfg.Player.Muted == nil {
		cfg.Player.Muted = boolPtr(true)
	}

	// catalog
	if cfg.Catalog.Workers == 0 {
		cfg.Catalog.Workers = 4
	}
	if cfg.Catalog.Fetch.Timeout == 0 {
		cfg.Catalog.Fetch.Timeout = 30 * time.Second
	}
	if cfg.Catalog.Fetch.Retries == 0 {
		cfg.Catalog.Fetch.Retries = 3
	}
	if cfg.Catalog.Fetch.UserAgent == "" {
		cfg.Catalog.Fetch.UserAgent = "swipefeed/1.0"
	}
	for i := range cfg.Catalog.Feeds {
		if cfg.Catalog.Feeds[i].Name == "" {
			cfg.Catalog.Feeds[i].Name = cfg.Catalog.Feeds[i].URL
		}
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if cfg.Catalog.Workers < 1 {
		return fmt.Errorf("catalog.workers must be at least 1")
	}
	if cfg.Catalog.Fetch.Retries < 1 {
		return fmt.Errorf("catalog.fetch.retries must be at least 1")
	}
	if cfg.Catalog.Fetch.Timeout < time.Second {
		return fmt.Errorf("catalog.fetch.timeout must be at least 1 second")
	}

	for i, v := range cfg.Catalog.Videos {
		if v.URI == "" {
			return fmt.Errorf("catalog.videos[%d].uri is required", i)
		}
		if v.ID < 0 {
			return fmt.Errorf("catalog.videos[%d].id must be non-negative", i)
		}
	}
	for i, f := range cfg.Catalog.Feeds {
		if f.URL == "" {
			return fmt.Errorf("catalog.feeds[%d].url is required", i)
		}
	}
	for i, s := range cfg.Catalog.Stores {
		if s.DSN == "" {
			return fmt.Errorf("catalog.stores[%d].dsn is required", i)
		}
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetPlayerConfig returns playback flags
func (c *Config) GetPlayerConfig() (loop, muted bool) {
	return c.Player.Loop == nil || *c.Player.Loop, c.Player.Muted == nil || *c.Player.Muted
}

func boolPtr(b bool) *bool { return &b }
