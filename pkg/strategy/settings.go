package strategy

import (
	"time"

	"github.com/dmitrymomot/habitkit/pkg/timewindow"
)

// RecapDay is the weekday on which the weekly recap fires.
type RecapDay string

const (
	RecapSunday RecapDay = "sunday"
	RecapMonday RecapDay = "monday"
)

// Weekday maps the recap day to a time.Weekday. Unknown values default to
// Sunday, matching the zero-based week used throughout.
func (d RecapDay) Weekday() time.Weekday {
	if d == RecapMonday {
		return time.Monday
	}
	return time.Sunday
}

// GlobalSettings gates all notifications and carries device-wide toggles.
type GlobalSettings struct {
	Enabled          bool                   `json:"enabled"`
	QuietHours       timewindow.QuietHours  `json:"quiet_hours"`
	WeekendMode      timewindow.WeekendMode `json:"weekend_mode"`
	SoundEnabled     bool                   `json:"sound_enabled"`
	VibrationEnabled bool                   `json:"vibration_enabled"`
}

// DailySettings configures the daily summary notification.
type DailySettings struct {
	Enabled           bool   `json:"enabled"`
	Time              string `json:"time"` // "HH:MM"
	SmartMode         bool   `json:"smart_mode"`
	IncludeMotivation bool   `json:"include_motivation"`
}

// StreakSettings configures streak-loss protection alerts.
type StreakSettings struct {
	ProtectionEnabled   bool   `json:"protection_enabled"`
	ProtectionTime      string `json:"protection_time"` // "HH:MM"
	ProtectionThreshold int    `json:"protection_threshold"`
	PriorityBasedAlerts bool   `json:"priority_based_alerts"`
}

// AchievementSettings configures milestone and recap notifications.
type AchievementSettings struct {
	Enabled            bool     `json:"enabled"`
	MilestoneAlerts    bool     `json:"milestone_alerts"`
	WeeklyRecapEnabled bool     `json:"weekly_recap_enabled"`
	WeeklyRecapDay     RecapDay `json:"weekly_recap_day"`
	WeeklyRecapTime    string   `json:"weekly_recap_time"` // "HH:MM"
}

// Settings is an immutable per-evaluation snapshot of the user's
// notification preferences. The settings layer validates time strings
// before constructing a snapshot; strategies assume well-formed input.
type Settings struct {
	Global       GlobalSettings      `json:"global"`
	Daily        DailySettings       `json:"daily"`
	Streaks      StreakSettings      `json:"streaks"`
	Achievements AchievementSettings `json:"achievements"`
}
