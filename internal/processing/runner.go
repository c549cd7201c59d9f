package processing

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/garrettladley/ecoscan/internal/xslog"
)

const DefaultInterval = 100 * time.Millisecond

var ErrAlreadyStarted = errors.New("processing: runner already started")

// Runner drives a Tracker from a clock ticker outside of the TUI event loop.
type Runner struct {
	tracker  *Tracker
	clock    clockwork.Clock
	interval time.Duration
	logger   *slog.Logger

	onUpdate   func(Snapshot)
	onComplete func()

	startMu sync.Mutex
	started bool
	runCtx  context.Context
	cancel  context.CancelFunc

	// mu serializes tick delivery with Cancel so no callback runs after
	// Cancel returns.
	mu        sync.Mutex
	cancelled bool

	done chan struct{}
}

type RunnerOption func(*Runner)

func WithClock(c clockwork.Clock) RunnerOption {
	return func(r *Runner) {
		r.clock = c
	}
}

func WithInterval(d time.Duration) RunnerOption {
	return func(r *Runner) {
		if d > 0 {
			r.interval = d
		}
	}
}

func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = l
	}
}

// OnUpdate registers fn to receive a snapshot on every tick. fn must not call
// Cancel.
func OnUpdate(fn func(Snapshot)) RunnerOption {
	return func(r *Runner) {
		r.onUpdate = fn
	}
}

// OnComplete registers fn to be called once when the run completes.
func OnComplete(fn func()) RunnerOption {
	return func(r *Runner) {
		r.onComplete = fn
	}
}

func NewRunner(tracker *Tracker, opts ...RunnerOption) *Runner {
	r := &Runner{
		tracker:  tracker,
		clock:    clockwork.NewRealClock(),
		interval: DefaultInterval,
		logger:   slog.Default(),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Runner) Start(ctx context.Context) error {
	r.startMu.Lock()
	defer r.startMu.Unlock()

	if r.started {
		return ErrAlreadyStarted
	}
	r.started = true

	r.mu.Lock()
	cancelled := r.cancelled
	r.mu.Unlock()
	if cancelled {
		close(r.done)
		return nil
	}

	ctx, r.cancel = context.WithCancel(ctx)
	r.runCtx = ctx
	ticker := r.clock.NewTicker(r.interval)

	r.logger.DebugContext(ctx, "processing started",
		xslog.Interval(r.interval),
		xslog.Total(r.tracker.Total()),
	)

	go r.loop(ctx, r.cancel, ticker)
	return nil
}

// Cancel stops tick delivery. It is safe to call more than once and before
// Start.
func (r *Runner) Cancel() {
	r.startMu.Lock()
	cancel := r.cancel
	r.startMu.Unlock()

	if cancel != nil {
		cancel()
	}

	r.mu.Lock()
	r.cancelled = true
	r.mu.Unlock()
}

// Done is closed once the tick loop has exited, after completion or
// cancellation.
func (r *Runner) Done() <-chan struct{} {
	return r.done
}

func (r *Runner) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tracker.Snapshot()
}

func (r *Runner) loop(ctx context.Context, cancel context.CancelFunc, ticker clockwork.Ticker) {
	defer close(r.done)
	defer cancel()
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.DebugContext(ctx, "processing cancelled", xslog.Percent(r.Snapshot().Percent))
			return
		case <-ticker.Chan():
			if finished := r.tick(ctx); finished {
				return
			}
		}
	}
}

func (r *Runner) tick(ctx context.Context) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancelled {
		return true
	}

	snap, completed := r.tracker.Tick(r.interval)
	if r.onUpdate != nil {
		r.onUpdate(snap)
	}
	if !completed {
		return false
	}

	r.cancelled = true
	r.logger.DebugContext(ctx, "processing complete", xslog.Elapsed(snap.Elapsed))
	if r.onComplete != nil {
		r.onComplete()
	}
	return true
}
