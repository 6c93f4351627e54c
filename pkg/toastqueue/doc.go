// Package toastqueue provides an in-process priority queue for short-lived
// in-app alerts (toasts) with deduplication and rate limiting.
//
// The queue enforces three invariants at all times:
//
//   - Capacity: at most MaxSize (default 50) toasts are pending; overflow
//     drops from the tail, which holds the oldest lowest-priority entries.
//   - Deduplication: an identical message accepted within the dedup window
//     (default 2s) is silently rejected.
//   - Rate limiting: at most RateLimit (default 5) acceptances per rolling
//     rate window (default 10s); excess enqueues are silently rejected.
//
// Dequeue order is priority-major (critical > high > medium > low) and
// arrival-minor: equal-priority toasts keep their enqueue order.
//
// Rejection is a policy decision, not a failure: Enqueue returns nil for a
// rejected toast and never an error. All mutations are serialized behind a
// single mutex per queue instance; a background janitor prunes stale dedup
// hashes until Destroy is called.
//
// # Usage
//
//	q := toastqueue.New()
//	defer q.Destroy()
//
//	queued := q.Enqueue(toastqueue.Toast{Message: "Saved!"}, toastqueue.PriorityMedium)
//	if queued == nil {
//	    // suppressed by dedup or rate limit
//	}
//
//	for _, item := range q.DequeueN(3) {
//	    show(item.Toast)
//	}
package toastqueue
