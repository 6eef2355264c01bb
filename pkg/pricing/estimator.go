package pricing

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/plankworks/plank/pkg/errors"
	"github.com/plankworks/plank/pkg/tabletop"
)

// State names the estimator's position in its lifecycle.
type State string

// Estimator states. Every payload change re-enters StateEstimating.
const (
	StateIdle       State = "idle"
	StateEstimating State = "estimating"
	StateSettled    State = "settled"
	StateDegraded   State = "degraded"
)

// Estimate is a published price figure. While Estimating or Degraded the
// price is the local calculation; once Settled it is the authoritative
// remote price. ErrMessage is set only in the Degraded state and never
// clears the retained price.
type Estimate struct {
	State         State
	Price         float64
	Authoritative bool
	ErrMessage    string
}

// DefaultDebounce is the quiet period after the last payload change before
// the authoritative request is issued.
const DefaultDebounce = 250 * time.Millisecond

// DefaultTimeout bounds the authoritative request; expiry is treated like
// any other remote failure.
const DefaultTimeout = 10 * time.Second

// Options configures an [Estimator].
type Options struct {
	// Debounce overrides DefaultDebounce when positive.
	Debounce time.Duration
	// Timeout overrides DefaultTimeout when positive.
	Timeout time.Duration
	// OnEstimate receives every published estimate: the synchronous local
	// figure on each change, then the authoritative or degraded result.
	// The callback runs with the estimator's lock held and must not call
	// back into the estimator.
	OnEstimate func(Estimate)
	// Logger defaults to log.Default().
	Logger *log.Logger
}

// Estimator reconciles local and authoritative pricing for a changing
// configuration. See the package documentation for the full protocol.
type Estimator struct {
	quoter   Quoter
	debounce time.Duration
	timeout  time.Duration
	notify   func(Estimate)
	logger   *log.Logger

	mu      sync.Mutex
	seq     uint64 // id of the newest payload; stale responses carry older ids
	payload tabletop.Payload
	primed  bool
	timer   *time.Timer
	current Estimate
}

// NewEstimator creates an estimator that quotes through q.
func NewEstimator(q Quoter, opts Options) *Estimator {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.OnEstimate == nil {
		opts.OnEstimate = func(Estimate) {}
	}
	return &Estimator{
		quoter:   q,
		debounce: opts.Debounce,
		timeout:  opts.Timeout,
		notify:   opts.OnEstimate,
		logger:   opts.Logger,
		current:  Estimate{State: StateIdle},
	}
}

// Update feeds a new payload into the estimator. An unchanged payload is
// ignored. Otherwise the local estimate is published synchronously, any
// pending authoritative request is superseded, and a fresh debounce window
// starts.
func (e *Estimator) Update(p tabletop.Payload) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.primed && p == e.payload {
		return
	}
	e.payload = p
	e.primed = true
	e.seq++
	id := e.seq

	e.current = Estimate{State: StateEstimating, Price: Local(p)}
	e.notify(e.current)

	// No remote collaborator: the local figure is final.
	if e.quoter == nil {
		e.current.State = StateDegraded
		e.current.ErrMessage = "no pricing service configured"
		e.notify(e.current)
		return
	}

	if e.timer != nil {
		e.timer.Stop()
	}
	e.timer = time.AfterFunc(e.debounce, func() { e.fire(id, p) })
}

// fire issues the authoritative request for payload id. It runs on the
// timer goroutine after the debounce window closes.
func (e *Estimator) fire(id uint64, p tabletop.Payload) {
	ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
	defer cancel()

	price, err := e.quoter.Quote(ctx, p)

	e.mu.Lock()
	defer e.mu.Unlock()

	if id != e.seq {
		// The configuration moved on while this request was in flight.
		e.logger.Debug("discarding superseded quote", "id", id, "current", e.seq)
		return
	}

	if err != nil {
		e.logger.Warn("authoritative pricing failed; keeping local estimate", "err", err)
		e.current = Estimate{
			State:      StateDegraded,
			Price:      e.current.Price,
			ErrMessage: errors.UserMessage(err),
		}
	} else {
		e.current = Estimate{State: StateSettled, Price: price, Authoritative: true}
	}
	e.notify(e.current)
}

// Current returns the most recently published estimate.
func (e *Estimator) Current() Estimate {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current
}

// Close cancels any pending debounce timer. In-flight responses are still
// discarded by sequence check.
func (e *Estimator) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	e.seq++ // orphan any in-flight request
}
