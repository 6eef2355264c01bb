// Package quote orchestrates the full configurator flow shared by the CLI
// and the HTTP API: import an uploaded drawing, resolve the configuration,
// and price it along both estimation paths. Centralizing this keeps upload
// validation, cache keying, and degradation behavior identical at every
// entry point.
package quote

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/plankworks/plank/pkg/cache"
	"github.com/plankworks/plank/pkg/errors"
	"github.com/plankworks/plank/pkg/outline"
	"github.com/plankworks/plank/pkg/pricing"
	"github.com/plankworks/plank/pkg/resolve"
	"github.com/plankworks/plank/pkg/tabletop"
)

// Runner executes configurator operations with caching. It is stateless
// apart from its collaborators; one Runner serves all sessions.
type Runner struct {
	Cache  cache.Cache
	Quoter pricing.Quoter
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching, a nil logger
// falls back to log.Default(). The quoter may be nil for offline use; Quote
// then always degrades to the local estimate.
func NewRunner(c cache.Cache, q pricing.Quoter, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Quoter: q, Logger: logger}
}

// ImportResult is the outcome of a drawing upload.
type ImportResult struct {
	// Outline is nil for attachment-only formats (.dwg).
	Outline *outline.Outline
	// State is the input state with the outline's bounding box committed.
	State resolve.State
}

// Import validates an uploaded drawing, extracts its outline, and locks the
// configuration's dimensions to the outline's bounding box.
//
// Error codes: UNSUPPORTED_FILE_TYPE for unknown extensions,
// UNSUPPORTED_PREVIEW for .dwg (accepted but not parseable), and
// NO_OUTLINE_FOUND when a .dxf contains no usable geometry. In every error
// case the returned state equals the input state - a failed upload never
// moves the configuration.
func (r *Runner) Import(s resolve.State, filename string, data []byte) (ImportResult, error) {
	if err := errors.ValidateUploadName(filename); err != nil {
		return ImportResult{State: s}, err
	}
	if !errors.IsOutlineSource(filename) {
		return ImportResult{State: s}, errors.New(errors.ErrCodeUnsupportedPreview,
			"%s is stored as an attachment; convert to .dxf to drive dimensions from the drawing", filename)
	}

	o := outline.Parse(string(data))
	if o.Bounds == nil {
		return ImportResult{State: s}, errors.New(errors.ErrCodeNoOutlineFound,
			"no usable outline found in %s", filename)
	}

	start := time.Now()
	next := resolve.Apply(s, resolve.CommitOutline{Bounds: *o.Bounds})
	r.Logger.Info("outline imported",
		"file", filename,
		"paths", len(o.Paths),
		"length_mm", next.Config.LengthMm,
		"width_mm", next.Config.WidthMm,
		"duration", time.Since(start))

	return ImportResult{Outline: &o, State: next}, nil
}

// Result carries both estimation paths for one payload.
type Result struct {
	// QuoteID identifies this quote in logs and API responses.
	QuoteID uuid.UUID `json:"quoteId"`

	// Local is the instant estimate, always present.
	Local float64 `json:"local"`

	// Authoritative is the remote price; nil while unavailable.
	Authoritative *float64 `json:"authoritative,omitempty"`

	// Degraded is set with a human-readable message when the remote path
	// failed and the local figure is the best available.
	Degraded string `json:"degraded,omitempty"`

	// CacheHit reports whether the authoritative price came from cache.
	CacheHit bool `json:"cacheHit"`
}

// Quote prices a payload. The local estimate is computed unconditionally;
// the authoritative price is served from cache when the payload is
// unchanged, otherwise fetched from the remote service and cached. Remote
// failure is not an error: the result degrades and carries the message.
func (r *Runner) Quote(ctx context.Context, p tabletop.Payload) Result {
	res := Result{QuoteID: uuid.New(), Local: pricing.Local(p)}
	if r.Quoter == nil {
		res.Degraded = "no pricing service configured"
		return res
	}

	key := cache.QuoteKey(p)
	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		var price float64
		if json.Unmarshal(data, &price) == nil {
			res.Authoritative = &price
			res.CacheHit = true
			return res
		}
	}

	price, err := r.Quoter.Quote(ctx, p)
	if err != nil {
		r.Logger.Warn("authoritative pricing failed", "err", err)
		res.Degraded = errors.UserMessage(err)
		return res
	}

	res.Authoritative = &price
	if data, err := json.Marshal(price); err == nil {
		_ = r.Cache.Set(ctx, key, data, cache.TTLQuote)
	}
	return res
}
