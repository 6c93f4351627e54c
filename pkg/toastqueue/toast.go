package toastqueue

import "time"

// Variant is the visual style of a toast.
type Variant string

const (
	VariantSuccess     Variant = "success"
	VariantWarning     Variant = "warning"
	VariantInfo        Variant = "info"
	VariantCelebration Variant = "celebration"
	VariantError       Variant = "error"
)

// Priority orders toasts in the queue. Higher values dequeue first.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
	PriorityCritical
)

// String returns the lowercase name of the priority for logs and stats.
func (p Priority) String() string {
	switch p {
	case PriorityCritical:
		return "critical"
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	default:
		return "low"
	}
}

// Effects describes optional sensory feedback triggered when a toast is
// shown. Kinds are opaque to the queue; the effect collaborator interprets
// them.
type Effects struct {
	Sound    string `json:"sound,omitempty"`
	Confetti string `json:"confetti,omitempty"`
	Haptic   bool   `json:"haptic,omitempty"`
}

// Action is an optional call-to-action button on a toast.
type Action struct {
	Label   string `json:"label"`
	Handler func() `json:"-"`
}

// Toast is a single short-lived in-app alert. It is created once and never
// mutated afterwards; Duration 0 means the toast is persistent.
type Toast struct {
	ID        string        `json:"id"`
	Message   string        `json:"message"`
	Variant   Variant       `json:"variant"`
	Duration  time.Duration `json:"duration,omitempty"`
	Icon      string        `json:"icon,omitempty"`
	Effects   *Effects      `json:"effects,omitempty"`
	Action    *Action       `json:"action,omitempty"`
	OnDismiss func()        `json:"-"`
}

// QueuedToast wraps a Toast while it is owned by the queue: from Enqueue
// until it is handed back on dequeue or evicted on overflow.
type QueuedToast struct {
	Toast     Toast     `json:"toast"`
	Priority  Priority  `json:"priority"`
	Timestamp time.Time `json:"timestamp"`
	Hash      uint64    `json:"hash"`
}
