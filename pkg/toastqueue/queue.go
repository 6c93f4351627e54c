package toastqueue

import (
	"hash/fnv"
	"sync"
	"time"
)

// Default queue limits. They match the flood-control budget of the
// surrounding habit tracker UI and can be tuned with options.
const (
	DefaultMaxSize         = 50
	DefaultDedupWindow     = 2 * time.Second
	DefaultRateLimit       = 5
	DefaultRateWindow      = 10 * time.Second
	DefaultCleanupInterval = 5 * time.Second
)

// Queue is a bounded priority queue for toasts with per-instance
// deduplication and rate limiting. All mutations are serialized behind one
// mutex; the dedup table and rate window are private to the instance.
type Queue struct {
	mu     sync.Mutex
	items  []*QueuedToast
	hashes map[uint64]time.Time // message hash -> last accepted at
	grants []time.Time          // accepted enqueues inside the rate window

	maxSize         int
	dedupWindow     time.Duration
	rateLimit       int
	rateWindow      time.Duration
	cleanupInterval time.Duration

	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

// Option configures a Queue.
type Option func(*Queue)

// WithMaxSize caps the number of pending toasts.
func WithMaxSize(n int) Option {
	return func(q *Queue) {
		if n > 0 {
			q.maxSize = n
		}
	}
}

// WithDedupWindow sets how long an identical message is suppressed.
func WithDedupWindow(d time.Duration) Option {
	return func(q *Queue) {
		if d > 0 {
			q.dedupWindow = d
		}
	}
}

// WithRateLimit caps accepted enqueues per rolling window.
func WithRateLimit(limit int, window time.Duration) Option {
	return func(q *Queue) {
		if limit > 0 {
			q.rateLimit = limit
		}
		if window > 0 {
			q.rateWindow = window
		}
	}
}

// WithCleanupInterval sets how often stale dedup hashes are pruned.
func WithCleanupInterval(d time.Duration) Option {
	return func(q *Queue) {
		if d > 0 {
			q.cleanupInterval = d
		}
	}
}

// New creates a queue with the given options and starts its janitor.
// Callers must Destroy the queue to release the janitor timer.
func New(opts ...Option) *Queue {
	q := &Queue{
		hashes:          make(map[uint64]time.Time),
		maxSize:         DefaultMaxSize,
		dedupWindow:     DefaultDedupWindow,
		rateLimit:       DefaultRateLimit,
		rateWindow:      DefaultRateWindow,
		cleanupInterval: DefaultCleanupInterval,
		now:             time.Now,
		stop:            make(chan struct{}),
	}

	for _, opt := range opts {
		opt(q)
	}

	go q.janitor()

	return q
}

// Enqueue offers a toast at the given priority. It returns the queued entry
// on acceptance, or nil when the toast is suppressed by deduplication or
// rate limiting. Rejection is silent: it is a policy outcome, not an error.
func (q *Queue) Enqueue(toast Toast, priority Priority) *QueuedToast {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := q.now()
	hash := messageHash(toast.Message)

	if last, seen := q.hashes[hash]; seen && now.Sub(last) < q.dedupWindow {
		return nil
	}

	q.pruneGrants(now)
	if len(q.grants) >= q.rateLimit {
		return nil
	}

	item := &QueuedToast{
		Toast:     toast,
		Priority:  priority,
		Timestamp: now,
		Hash:      hash,
	}

	// Insert immediately before the first entry of strictly lower priority,
	// keeping arrival order among equals.
	pos := len(q.items)
	for i, existing := range q.items {
		if existing.Priority < priority {
			pos = i
			break
		}
	}
	q.items = append(q.items, nil)
	copy(q.items[pos+1:], q.items[pos:])
	q.items[pos] = item

	q.hashes[hash] = now
	q.grants = append(q.grants, now)

	// Overflow drops from the tail: oldest entries of the lowest priority
	// sort last.
	if len(q.items) > q.maxSize {
		for i := q.maxSize; i < len(q.items); i++ {
			q.items[i] = nil
		}
		q.items = q.items[:q.maxSize]
	}

	return item
}

// Dequeue removes and returns the head of the queue, or nil when empty.
func (q *Queue) Dequeue() *QueuedToast {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return nil
	}

	head := q.items[0]
	q.items[0] = nil
	q.items = q.items[1:]
	return head
}

// DequeueN removes and returns up to limit toasts from the head,
// preserving order.
func (q *Queue) DequeueN(limit int) []*QueuedToast {
	q.mu.Lock()
	defer q.mu.Unlock()

	if limit <= 0 || len(q.items) == 0 {
		return nil
	}
	if limit > len(q.items) {
		limit = len(q.items)
	}

	out := make([]*QueuedToast, limit)
	copy(out, q.items[:limit])
	for i := range limit {
		q.items[i] = nil
	}
	q.items = q.items[limit:]
	return out
}

// Size returns the number of pending toasts.
func (q *Queue) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Clear drops all pending toasts. Dedup and rate-limit state survive so a
// cleared queue still suppresses repeats and floods.
func (q *Queue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = nil
}

// Destroy clears the queue and stops the janitor. The queue must not be
// used afterwards.
func (q *Queue) Destroy() {
	q.stopOnce.Do(func() {
		close(q.stop)
	})
	q.Clear()
}

// Stats is a point-in-time snapshot of queue state.
type Stats struct {
	Size          int            `json:"size"`
	RateRemaining int            `json:"rate_remaining"`
	DedupEntries  int            `json:"dedup_entries"`
	ByPriority    map[string]int `json:"by_priority"`
}

// Stats returns current size, remaining rate-limit budget, dedup-table
// size, and per-priority pending counts.
func (q *Queue) Stats() Stats {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.pruneGrants(q.now())

	byPriority := make(map[string]int, 4)
	for _, item := range q.items {
		byPriority[item.Priority.String()]++
	}

	return Stats{
		Size:          len(q.items),
		RateRemaining: q.rateLimit - len(q.grants),
		DedupEntries:  len(q.hashes),
		ByPriority:    byPriority,
	}
}

// pruneGrants drops rate-limit timestamps outside the rolling window.
// Callers must hold q.mu.
func (q *Queue) pruneGrants(now time.Time) {
	cutoff := now.Add(-q.rateWindow)
	kept := q.grants[:0]
	for _, t := range q.grants {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	q.grants = kept
}

// janitor periodically drops dedup hashes older than twice the dedup
// window to bound memory. It runs until Destroy.
func (q *Queue) janitor() {
	ticker := time.NewTicker(q.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-q.stop:
			return
		case <-ticker.C:
			q.mu.Lock()
			cutoff := q.now().Add(-2 * q.dedupWindow)
			for hash, seen := range q.hashes {
				if seen.Before(cutoff) {
					delete(q.hashes, hash)
				}
			}
			q.mu.Unlock()
		}
	}
}

// messageHash digests the message text for deduplication. The exact
// algorithm is not a compatibility requirement; FNV-1a is cheap and
// deterministic.
func messageHash(message string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(message))
	return h.Sum64()
}
