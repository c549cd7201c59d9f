package toast

import (
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/garrettladley/ecoscan/internal/xslog"
)

const DefaultTTL = 3 * time.Second

// Queue holds transient notifications. Every entry is removed TTL after it was
// enqueued unless dismissed first. Safe for concurrent use.
type Queue struct {
	clock  clockwork.Clock
	ttl    time.Duration
	logger *slog.Logger
	newID  func() string

	mu      sync.Mutex
	entries []Entry
	timers  map[string]clockwork.Timer
	closed  bool
	changes chan struct{}
}

type Option func(*Queue)

func WithClock(c clockwork.Clock) Option {
	return func(q *Queue) {
		q.clock = c
	}
}

func WithTTL(ttl time.Duration) Option {
	return func(q *Queue) {
		if ttl > 0 {
			q.ttl = ttl
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(q *Queue) {
		q.logger = l
	}
}

func WithIDGenerator(fn func() string) Option {
	return func(q *Queue) {
		q.newID = fn
	}
}

func New(opts ...Option) *Queue {
	q := &Queue{
		clock:   clockwork.NewRealClock(),
		ttl:     DefaultTTL,
		logger:  xslog.Discard(),
		newID:   uuid.NewString,
		timers:  make(map[string]clockwork.Timer),
		changes: make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

func (q *Queue) TTL() time.Duration { return q.ttl }

// Enqueue appends a toast and returns its id. Blank titles are dropped and
// yield an empty id.
func (q *Queue) Enqueue(title string, opts ...EntryOption) string {
	if strings.TrimSpace(title) == "" {
		q.logger.Debug("dropping toast with empty title")
		return ""
	}

	now := q.clock.Now()
	entry := Entry{
		Title:      title,
		InsertedAt: now,
		ExpiresAt:  now.Add(q.ttl),
	}
	for _, opt := range opts {
		opt(&entry)
	}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ""
	}
	entry.ID = q.uniqueIDLocked()
	q.entries = append(q.entries, entry)
	q.notifyLocked()
	q.mu.Unlock()

	// clock methods are called without q.mu held; expiry callbacks take q.mu
	timer := q.clock.AfterFunc(q.ttl, func() { q.expire(entry.ID) })

	q.mu.Lock()
	if q.indexLocked(entry.ID) >= 0 {
		q.timers[entry.ID] = timer
		timer = nil
	}
	q.mu.Unlock()
	if timer != nil {
		timer.Stop()
	}

	q.logger.Debug("toast enqueued",
		xslog.ToastID(entry.ID),
		xslog.Title(entry.Title),
		xslog.Variant(entry.Variant.String()),
		xslog.TTL(q.ttl),
	)
	return entry.ID
}

// Dismiss removes the toast with id. Unknown ids are ignored.
func (q *Queue) Dismiss(id string) {
	q.mu.Lock()
	removed := q.removeLocked(id)
	timer := q.timers[id]
	delete(q.timers, id)
	q.mu.Unlock()

	if timer != nil {
		timer.Stop()
	}
	if removed {
		q.logger.Debug("toast dismissed", xslog.ToastID(id))
	}
}

// Entries returns the live toasts in insertion order. Entries past their TTL
// are never returned, even before their expiry callback has run.
func (q *Queue) Entries() []Entry {
	now := q.clock.Now()

	q.mu.Lock()
	defer q.mu.Unlock()

	live := make([]Entry, 0, len(q.entries))
	for _, e := range q.entries {
		if e.live(now) {
			live = append(live, e)
		}
	}
	return live
}

func (q *Queue) Len() int {
	return len(q.Entries())
}

// Changes is signalled whenever the queue contents change. Signals coalesce;
// receivers should re-read Entries. The channel is closed by Close.
func (q *Queue) Changes() <-chan struct{} {
	return q.changes
}

// Close stops every pending expiry. Later Enqueue calls are ignored.
func (q *Queue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	timers := q.timers
	q.timers = make(map[string]clockwork.Timer)
	q.entries = nil
	close(q.changes)
	q.mu.Unlock()

	for _, t := range timers {
		t.Stop()
	}
}

func (q *Queue) expire(id string) {
	q.mu.Lock()
	removed := q.removeLocked(id)
	delete(q.timers, id)
	q.mu.Unlock()

	if removed {
		q.logger.Debug("toast expired", xslog.ToastID(id))
	}
}

func (q *Queue) uniqueIDLocked() string {
	for {
		id := q.newID()
		if id != "" && q.indexLocked(id) < 0 {
			return id
		}
	}
}

func (q *Queue) indexLocked(id string) int {
	return slices.IndexFunc(q.entries, func(e Entry) bool { return e.ID == id })
}

func (q *Queue) removeLocked(id string) bool {
	i := q.indexLocked(id)
	if i < 0 {
		return false
	}
	q.entries = slices.Delete(q.entries, i, i+1)
	q.notifyLocked()
	return true
}

func (q *Queue) notifyLocked() {
	if q.closed {
		return
	}
	select {
	case q.changes <- struct{}{}:
	default:
	}
}
