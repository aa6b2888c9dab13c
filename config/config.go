package config

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"device-rental-backend/internal/logger"
)

// Config represents the overall application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Logging   logger.Config   `yaml:"logging"`
	Dashboard DashboardConfig `yaml:"dashboard"`
}

// ServerConfig holds the HTTP server configuration.
type ServerConfig struct {
	Port            int           `yaml:"port"`
	RequestIPHeader string        `yaml:"request_ip_header"`
	RateLimitPerSec float64       `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int           `yaml:"rate_limit_burst"`
	CacheTTLSeconds int           `yaml:"cache_ttl_seconds"`
	CacheTTL        time.Duration `yaml:"-"` // derived from CacheTTLSeconds
}

// DashboardConfig selects the fleet the dashboard serves.
type DashboardConfig struct {
	// FleetFile points at a YAML fleet definition. Empty means the
	// built-in sample fleet.
	FleetFile string `yaml:"fleet_file"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the configuration from the given path. A missing or empty
// file is not an error: the dashboard runs on defaults with zero setup.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port <= 0 {
		c.Server.Port = 8080
	}
	if c.Server.RateLimitPerSec <= 0 {
		c.Server.RateLimitPerSec = 5
	}
	if c.Server.RateLimitBurst <= 0 {
		c.Server.RateLimitBurst = 10
	}
	if c.Server.CacheTTLSeconds <= 0 {
		c.Server.CacheTTLSeconds = 60
	}
	// The cached views rebuild from four records in microseconds;
	// nothing warrants retention beyond the hour.
	if c.Server.CacheTTLSeconds > 3600 {
		c.Server.CacheTTLSeconds = 3600
	}
	c.Server.CacheTTL = time.Duration(c.Server.CacheTTLSeconds) * time.Second
}
