package strategy

import "time"

// Level is the urgency of a notification decision.
type Level string

const (
	LevelLow      Level = "low"
	LevelMedium   Level = "medium"
	LevelHigh     Level = "high"
	LevelCritical Level = "critical"
)

// Priority describes how urgently a notification should be delivered and
// which attention channels it may use. Critical alerts are persistent:
// they must not auto-dismiss.
type Priority struct {
	Level      Level `json:"level"`
	Sound      bool  `json:"sound"`
	Vibrate    bool  `json:"vibrate"`
	Persistent bool  `json:"persistent,omitempty"`
}

// Message is the title/body pair a strategy wants delivered.
type Message struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Strategy is the common contract of all notification decision units.
// Implementations are stateless; every method is pure given its Context
// and safe for concurrent use.
type Strategy interface {
	// Name identifies the strategy in logs and stats.
	Name() string

	// ShouldNotify decides whether this strategy wants to notify at all
	// given the snapshot. Suppression (disabled, quiet hours, weekend
	// mode) is a false result, never an error.
	ShouldNotify(c Context) bool

	// Message builds the notification text for the snapshot.
	Message(c Context) Message

	// ScheduleTime returns the instant at which the notification should
	// fire. The result is always strictly after c.Date.
	ScheduleTime(c Context) time.Time

	// Priority returns the delivery urgency for the snapshot.
	Priority(c Context) Priority
}

// basePriority is the default Priority used by strategies that do not
// escalate: medium level, attention channels following global settings.
func basePriority(s Settings) Priority {
	return Priority{
		Level:   LevelMedium,
		Sound:   s.Global.SoundEnabled,
		Vibrate: s.Global.VibrationEnabled,
	}
}
