// Package config loads the plank settings file. Settings are TOML, looked
// up at --config or ~/.config/plank/config.toml; a missing file yields the
// defaults, so the CLI works out of the box in offline mode.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the full settings tree.
type Config struct {
	Pricing PricingConfig `toml:"pricing"`
	Catalog CatalogConfig `toml:"catalog"`
	Cache   CacheConfig   `toml:"cache"`
}

// PricingConfig configures the authoritative pricing service.
type PricingConfig struct {
	// URL of the quote endpoint. Empty disables the authoritative path;
	// estimates then always come from the local calculation.
	URL string `toml:"url"`

	// TimeoutSeconds bounds one authoritative request.
	TimeoutSeconds int `toml:"timeout_seconds"`
}

// CatalogConfig selects the material catalogue source.
type CatalogConfig struct {
	// Source is "builtin" or "mongo".
	Source string `toml:"source"`

	MongoURI   string `toml:"mongo_uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// CacheConfig selects the quote cache backend.
type CacheConfig struct {
	// Backend is "file", "redis", or "off".
	Backend string `toml:"backend"`

	// Dir is the file backend's directory; empty uses the default
	// ~/.cache/plank.
	Dir string `toml:"dir"`

	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
}

// Default returns the settings used when no file exists.
func Default() Config {
	return Config{
		Pricing: PricingConfig{TimeoutSeconds: 10},
		Catalog: CatalogConfig{Source: "builtin", Database: "plank", Collection: "materials"},
		Cache:   CacheConfig{Backend: "file"},
	}
}

// Load reads the settings file at path, or the default location when path
// is empty. A missing file is not an error; defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, "plank", "config.toml")
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	applyDefaults(&cfg)
	return cfg, nil
}

// applyDefaults fills zero values left by a partial settings file.
func applyDefaults(cfg *Config) {
	if cfg.Pricing.TimeoutSeconds <= 0 {
		cfg.Pricing.TimeoutSeconds = 10
	}
	if cfg.Catalog.Source == "" {
		cfg.Catalog.Source = "builtin"
	}
	if cfg.Catalog.Database == "" {
		cfg.Catalog.Database = "plank"
	}
	if cfg.Catalog.Collection == "" {
		cfg.Catalog.Collection = "materials"
	}
	if cfg.Cache.Backend == "" {
		cfg.Cache.Backend = "file"
	}
}

// CacheDir returns the cache directory, creating nothing.
func (c CacheConfig) CacheDir() (string, error) {
	if c.Dir != "" {
		return c.Dir, nil
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "plank"), nil
}
