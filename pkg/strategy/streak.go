package strategy

import (
	"fmt"
	"math"
	"time"

	"github.com/dmitrymomot/habitkit/pkg/timewindow"
)

// quietHoursOverrideStreak is the streak length above which a protection
// alert ignores quiet hours.
const quietHoursOverrideStreak = 30

// StreakProtection warns when a habit streak is about to reset at
// midnight. Urgency escalates with streak length and shrinking time
// remaining; streaks of 30+ days override quiet hours, and weekend mode
// never silences protection.
type StreakProtection struct{}

// NewStreakProtection creates the streak protection strategy.
func NewStreakProtection() *StreakProtection {
	return &StreakProtection{}
}

func (*StreakProtection) Name() string { return "streak_protection" }

// protectable returns the streaks worth protecting right now: flagged at
// risk, at or above the configured threshold, and not yet completed today.
func protectable(c Context) []StreakSummary {
	var out []StreakSummary
	for _, s := range c.Streaks {
		if !s.AtRisk {
			continue
		}
		if s.CurrentStreak < c.Settings.Streaks.ProtectionThreshold {
			continue
		}
		if _, done := c.CompletedToday[s.TaskID]; done {
			continue
		}
		out = append(out, s)
	}
	return out
}

// maxStreak returns the longest current streak among the given summaries,
// or 0 for an empty slice.
func maxStreak(streaks []StreakSummary) int {
	longest := 0
	for _, s := range streaks {
		if s.CurrentStreak > longest {
			longest = s.CurrentStreak
		}
	}
	return longest
}

// ShouldNotify fires only inside the final 4 hours before midnight when at
// least one protectable streak exists. Quiet hours suppress the alert
// unless a 30+ day streak is on the line.
func (*StreakProtection) ShouldNotify(c Context) bool {
	if !c.Settings.Streaks.ProtectionEnabled {
		return false
	}

	atRisk := protectable(c)
	if len(atRisk) == 0 {
		return false
	}

	if c.HoursUntilMidnight > 4 {
		return false
	}

	if c.Settings.Global.QuietHours.Contains(c.Date) && maxStreak(atRisk) < quietHoursOverrideStreak {
		return false
	}

	return true
}

func (*StreakProtection) Message(c Context) Message {
	atRisk := protectable(c)
	hoursLeft := int(math.Ceil(c.HoursUntilMidnight))

	msg := Message{Title: "Streak Protection"}

	switch len(atRisk) {
	case 0:
		msg.Body = "All streaks are safe today. Keep it up!"
	case 1:
		msg.Body = fmt.Sprintf("Your %d-day %s streak ends in %dh! Complete it now.",
			atRisk[0].CurrentStreak, atRisk[0].TaskName, hoursLeft)
	default:
		names := atRisk[0].TaskName + ", " + atRisk[1].TaskName
		if extra := len(atRisk) - 2; extra > 0 {
			names += fmt.Sprintf(" +%d more", extra)
		}
		msg.Body = fmt.Sprintf("%s at risk! Longest streak: %d days. %dh left.",
			names, maxStreak(atRisk), hoursLeft)
	}

	return msg
}

// ScheduleTime returns the configured protection time, rolled to tomorrow
// when it has already passed.
func (*StreakProtection) ScheduleTime(c Context) time.Time {
	return timewindow.NextDaily(c.Date, c.Settings.Streaks.ProtectionTime)
}

// Priority escalates with the longest protectable streak and the time left
// before midnight. Critical alerts are persistent and force sound and
// vibration on regardless of global settings.
func (*StreakProtection) Priority(c Context) Priority {
	longest := maxStreak(protectable(c))
	hoursLeft := c.HoursUntilMidnight

	p := basePriority(c.Settings)

	switch {
	case longest >= 100 || hoursLeft <= 1:
		p.Level = LevelCritical
		p.Persistent = true
		p.Sound = true
		p.Vibrate = true
	case longest >= 30 || hoursLeft <= 2:
		p.Level = LevelHigh
	case longest >= 7:
		p.Level = LevelMedium
	default:
		p.Level = LevelLow
	}

	return p
}
