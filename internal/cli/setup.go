package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/plankworks/plank/pkg/cache"
	"github.com/plankworks/plank/pkg/catalog"
	"github.com/plankworks/plank/pkg/config"
	"github.com/plankworks/plank/pkg/errors"
	"github.com/plankworks/plank/pkg/pricing"
	"github.com/plankworks/plank/pkg/quote"
	"github.com/plankworks/plank/pkg/session"
)

// appName is the application name used for directories and display.
const appName = "plank"

// builtinMaterials is the offline catalogue used when no live source is
// configured. It mirrors a small cut of the real supplier data so the CLI
// stays usable without a database.
var builtinMaterials = []catalog.Material{
	{ID: "lam-white", Name: "Arctic White Laminate", MaterialType: "laminate", Finish: "matte", SupplierSKU: "LAM-0110", HexCode: "#f4f4f2"},
	{ID: "lam-black", Name: "Graphite Laminate", MaterialType: "laminate", Finish: "satin", SupplierSKU: "LAM-0234", HexCode: "#2b2b2b"},
	{ID: "lino-olive", Name: "Olive Linoleum", MaterialType: "linoleum", Finish: "matte", SupplierSKU: "LIN-4184", HexCode: "#718471",
		MaxLength: "3.6m", MaxWidth: "1.8m", AvailableThicknesses: []string{"16mm", "19mm", "25mm", "30mm"}},
	{ID: "oak-veneer", Name: "Oak Veneer", MaterialType: "veneer", Finish: "matte", SupplierSKU: "VEN-9021", HexCode: "#c9a87b",
		MaxLength: "2400mm", MaxWidth: "1200mm", AvailableThicknesses: []string{"19mm", "25mm", "33mm"}},
}

// newCatalogSource builds the configured catalogue source; "builtin" and
// any unknown value fall back to the in-memory catalogue.
func newCatalogSource(ctx context.Context, cfg config.Config) (catalog.Source, error) {
	logger := loggerFromContext(ctx)
	if cfg.Catalog.Source == "mongo" {
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		return catalog.NewMongoSource(connectCtx, catalog.MongoConfig{
			URI:        cfg.Catalog.MongoURI,
			Database:   cfg.Catalog.Database,
			Collection: cfg.Catalog.Collection,
		}, logger)
	}
	return catalog.NewMemorySource(builtinMaterials), nil
}

// loadMaterials subscribes to the source just long enough to capture one
// snapshot. Commands that need the catalogue once use this instead of a
// standing subscription. Live snapshots are cached so the CLI keeps working
// against the last known catalogue when the database is unreachable.
func loadMaterials(ctx context.Context, cfg config.Config) ([]catalog.Material, error) {
	logger := loggerFromContext(ctx)
	key := cache.SnapshotKey(cfg.Catalog.Source + ":" + cfg.Catalog.MongoURI)

	source, err := newCatalogSource(ctx, cfg)
	if err != nil {
		cached, cacheErr := cachedMaterials(ctx, cfg, key)
		if cacheErr != nil {
			return nil, err
		}
		logger.Warn("catalogue unreachable, using cached snapshot", "err", err)
		return cached, nil
	}

	var snapshot []catalog.Material
	stop, err := source.Subscribe(ctx, func(materials []catalog.Material) {
		if snapshot == nil {
			snapshot = materials
		}
	})
	if err != nil {
		return nil, err
	}
	stop()

	if cfg.Catalog.Source == "mongo" {
		c := newCache(ctx, cfg, false)
		defer c.Close()
		if data, err := json.Marshal(snapshot); err == nil {
			_ = c.Set(ctx, key, data, cache.TTLSnapshot)
		}
	}
	return snapshot, nil
}

// cachedMaterials reads the last stored catalogue snapshot.
func cachedMaterials(ctx context.Context, cfg config.Config, key string) ([]catalog.Material, error) {
	c := newCache(ctx, cfg, false)
	defer c.Close()

	data, hit, err := c.Get(ctx, key)
	if err != nil || !hit {
		return nil, errors.New(errors.ErrCodeNotFound, "no cached catalogue snapshot")
	}
	var materials []catalog.Material
	if err := json.Unmarshal(data, &materials); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "corrupt catalogue snapshot")
	}
	return materials, nil
}

// newCache builds the configured cache backend. Backend construction
// failures degrade to a null cache; a broken cache should not block quoting.
func newCache(ctx context.Context, cfg config.Config, noCache bool) cache.Cache {
	if noCache || cfg.Cache.Backend == "off" {
		return cache.NewNullCache()
	}
	logger := loggerFromContext(ctx)

	if cfg.Cache.Backend == "redis" {
		c, err := cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
		if err != nil {
			logger.Warn("redis cache unavailable, caching disabled", "err", err)
			return cache.NewNullCache()
		}
		return c
	}

	dir, err := cfg.Cache.CacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	c, err := cache.NewFileCache(dir)
	if err != nil {
		logger.Warn("file cache unavailable, caching disabled", "err", err)
		return cache.NewNullCache()
	}
	return c
}

// newRunner assembles the quote runner from the settings. offline skips the
// pricing client even when a URL is configured.
func newRunner(ctx context.Context, cfg config.Config, offline, noCache bool) *quote.Runner {
	var quoter pricing.Quoter
	if !offline && cfg.Pricing.URL != "" {
		client := pricing.NewClient(cfg.Pricing.URL)
		client.SetTimeout(time.Duration(cfg.Pricing.TimeoutSeconds) * time.Second)
		quoter = client
	}
	return quote.NewRunner(newCache(ctx, cfg, noCache), quoter, loggerFromContext(ctx))
}

// draftDir returns the draft directory using the XDG data convention.
func draftDir() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, appName, "drafts"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", appName, "drafts"), nil
}

// openDraftStore opens the default file-backed draft store.
func openDraftStore() (session.Store, error) {
	dir, err := draftDir()
	if err != nil {
		return nil, err
	}
	return session.NewFileStore(dir)
}
