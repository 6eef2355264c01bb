package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Catalog.Source != "builtin" {
		t.Errorf("Catalog.Source = %q, want builtin", cfg.Catalog.Source)
	}
	if cfg.Cache.Backend != "file" {
		t.Errorf("Cache.Backend = %q, want file", cfg.Cache.Backend)
	}
	if cfg.Pricing.TimeoutSeconds != 10 {
		t.Errorf("Pricing.TimeoutSeconds = %d, want 10", cfg.Pricing.TimeoutSeconds)
	}
}

func TestLoadPartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[pricing]
url = "https://pricing.example.com/quote"

[cache]
backend = "redis"
redis_addr = "localhost:6379"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Pricing.URL != "https://pricing.example.com/quote" {
		t.Errorf("Pricing.URL = %q", cfg.Pricing.URL)
	}
	if cfg.Pricing.TimeoutSeconds != 10 {
		t.Errorf("Pricing.TimeoutSeconds = %d, want default 10", cfg.Pricing.TimeoutSeconds)
	}
	if cfg.Cache.Backend != "redis" {
		t.Errorf("Cache.Backend = %q, want redis", cfg.Cache.Backend)
	}
	if cfg.Cache.RedisAddr != "localhost:6379" {
		t.Errorf("Cache.RedisAddr = %q", cfg.Cache.RedisAddr)
	}
	if cfg.Catalog.Source != "builtin" {
		t.Errorf("Catalog.Source = %q, want builtin", cfg.Catalog.Source)
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("pricing = ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() on invalid TOML, want error")
	}
}

func TestCacheDirExplicit(t *testing.T) {
	c := CacheConfig{Dir: "/tmp/plank-cache"}
	dir, err := c.CacheDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != "/tmp/plank-cache" {
		t.Errorf("CacheDir() = %q", dir)
	}
}
