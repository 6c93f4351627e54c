package orchestrator

import (
	"time"

	"github.com/dmitrymomot/habitkit/pkg/strategy"
	"github.com/dmitrymomot/habitkit/pkg/toastqueue"
)

// Channel selects the delivery path(s) for a notification.
type Channel string

const (
	ChannelPush  Channel = "push"
	ChannelToast Channel = "toast"
	ChannelBoth  Channel = "both"
)

// Notification is the channel-agnostic request handed to the
// orchestrator. It is transient: constructed per call and never stored.
type Notification struct {
	Channel Channel `json:"channel"`

	Title   string `json:"title,omitempty"`
	Message string `json:"message"`

	// TaskID links a push request to a habit. The device scheduler can
	// only address task-linked reminders, so a push without it is dropped.
	TaskID string `json:"task_id,omitempty"`

	Priority    *strategy.Priority  `json:"priority,omitempty"`
	Variant     toastqueue.Variant  `json:"variant,omitempty"`
	Icon        string              `json:"icon,omitempty"`
	Effects     *toastqueue.Effects `json:"effects,omitempty"`
	ScheduledAt *time.Time          `json:"scheduled_at,omitempty"`

	// Data is an opaque payload passed through to collaborators.
	Data map[string]any `json:"data,omitempty"`
}

// queuePriority maps a strategy urgency level onto queue ordering.
// A nil priority defaults to medium.
func queuePriority(p *strategy.Priority) toastqueue.Priority {
	if p == nil {
		return toastqueue.PriorityMedium
	}
	switch p.Level {
	case strategy.LevelCritical:
		return toastqueue.PriorityCritical
	case strategy.LevelHigh:
		return toastqueue.PriorityHigh
	case strategy.LevelLow:
		return toastqueue.PriorityLow
	default:
		return toastqueue.PriorityMedium
	}
}

// levelPriority builds a Priority carrying only an urgency level, used by
// the convenience helpers.
func levelPriority(level strategy.Level) *strategy.Priority {
	return &strategy.Priority{Level: level}
}
