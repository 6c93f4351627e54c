package timewindow

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// WeekendMode controls whether notifications fire on weekend days.
type WeekendMode string

const (
	// WeekendOff suppresses all weekend notifications.
	WeekendOff WeekendMode = "off"
	// WeekendReduced is reserved for priority dampening. Its intended effect
	// was never specified upstream, so it currently behaves like WeekendNormal.
	WeekendReduced WeekendMode = "reduced"
	// WeekendNormal delivers weekend notifications unchanged.
	WeekendNormal WeekendMode = "normal"
)

// QuietHours describes a daily time-of-day window during which
// non-overriding notifications are suppressed. Start and End use the
// 24-hour "HH:MM" format. A window with Start > End wraps past midnight.
type QuietHours struct {
	Enabled bool   `json:"enabled"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

// Contains reports whether now falls inside the quiet-hours window.
// A disabled or malformed window never contains anything.
//
// Boundary rules: the start minute is inside the window, the end minute is
// outside. For a wrapping 22:00-08:00 window, 22:00 and 07:59 are quiet,
// 08:00 and 21:59 are not.
func (q QuietHours) Contains(now time.Time) bool {
	if !q.Enabled {
		return false
	}

	start, ok := clockMinutes(q.Start)
	if !ok {
		return false
	}
	end, ok := clockMinutes(q.End)
	if !ok {
		return false
	}

	current := now.Hour()*60 + now.Minute()

	if start > end {
		// Window wraps past midnight.
		return current >= start || current < end
	}
	return current >= start && current < end
}

// SuppressOnWeekend reports whether weekend mode silences notifications at
// the given instant. Only WeekendOff suppresses; WeekendReduced is a
// pass-through identical to WeekendNormal.
func SuppressOnWeekend(mode WeekendMode, isWeekend bool) bool {
	return isWeekend && mode == WeekendOff
}

// ParseClock parses a 24-hour "HH:MM" string into hour and minute.
func ParseClock(s string) (hour, minute int, err error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	return hour, minute, nil
}

// NextDaily returns the next occurrence of the given "HH:MM" time: today at
// that time if it is still strictly in the future, otherwise the same time
// tomorrow. A malformed clock falls back to 24 hours from now.
func NextDaily(now time.Time, clock string) time.Time {
	hour, minute, err := ParseClock(clock)
	if err != nil {
		return now.Add(24 * time.Hour)
	}

	at := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !at.After(now) {
		at = at.AddDate(0, 0, 1)
	}
	return at
}

// NextWeekly returns the next occurrence of the given weekday at the given
// "HH:MM" time. If today is the target weekday but the time has already
// passed, the result rolls forward a full week.
func NextWeekly(now time.Time, weekday time.Weekday, clock string) time.Time {
	hour, minute, err := ParseClock(clock)
	if err != nil {
		hour, minute = 0, 0
	}

	days := (int(weekday) - int(now.Weekday()) + 7) % 7
	at := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	at = at.AddDate(0, 0, days)
	if !at.After(now) {
		at = at.AddDate(0, 0, 7)
	}
	return at
}

// clockMinutes converts "HH:MM" to minutes since midnight.
func clockMinutes(s string) (int, bool) {
	hour, minute, err := ParseClock(s)
	if err != nil {
		return 0, false
	}
	return hour*60 + minute, true
}
