package strategy

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrymomot/habitkit/pkg/timewindow"
)

// streakMilestones are the day counts celebrated in the weekly recap.
var streakMilestones = []int{7, 30, 100}

// WeeklyRecap sends a low-priority weekly review on the configured day.
//
// Known limitation inherited from the original design: the "weekly"
// completion rate is estimated from today's completions rather than a true
// 7-day aggregation, because no weekly log collaborator is in scope.
type WeeklyRecap struct{}

// NewWeeklyRecap creates the weekly recap strategy.
func NewWeeklyRecap() *WeeklyRecap {
	return &WeeklyRecap{}
}

func (*WeeklyRecap) Name() string { return "weekly_recap" }

// ShouldNotify fires only on the configured recap weekday, outside quiet
// hours. There is no quiet-hours override for recaps.
func (*WeeklyRecap) ShouldNotify(c Context) bool {
	if !c.Settings.Achievements.WeeklyRecapEnabled {
		return false
	}
	if c.Date.Weekday() != c.Settings.Achievements.WeeklyRecapDay.Weekday() {
		return false
	}
	if c.Settings.Global.QuietHours.Contains(c.Date) {
		return false
	}
	return true
}

func (*WeeklyRecap) Message(c Context) Message {
	rate := c.CompletionPercent()

	var title, body string
	switch {
	case rate >= 100:
		title = "Perfect Week"
		body = "You completed every habit this week. Incredible!"
	case rate >= 80:
		title = "Great Week"
		body = fmt.Sprintf("You hit %d%% of your habits this week.", rate)
	case rate >= 60:
		title = "Good Progress"
		body = fmt.Sprintf("%d%% completion this week. Keep building!", rate)
	default:
		title = "New Week, New Start"
		body = "Last week is behind you. Let's make this one count."
	}

	if longest := c.LongestStreak(); longest > 0 {
		body += fmt.Sprintf(" Longest active streak: %d days.", longest)
	}

	if milestones := newMilestones(c.Streaks); len(milestones) > 0 {
		body += " Milestones: " + strings.Join(milestones, ", ") + "."
	}

	return Message{Title: title, Body: body}
}

// newMilestones lists streaks that crossed a 7/30/100-day milestone within
// the recapped week.
func newMilestones(streaks []StreakSummary) []string {
	var out []string
	for _, s := range streaks {
		for _, m := range streakMilestones {
			if s.CurrentStreak >= m && s.CurrentStreak-7 < m {
				out = append(out, fmt.Sprintf("%s reached %d days", s.TaskName, m))
				break
			}
		}
	}
	return out
}

// ScheduleTime returns the next occurrence of the configured recap weekday
// and time, rolling forward a full week when it has already passed today.
func (*WeeklyRecap) ScheduleTime(c Context) time.Time {
	return timewindow.NextWeekly(c.Date,
		c.Settings.Achievements.WeeklyRecapDay.Weekday(),
		c.Settings.Achievements.WeeklyRecapTime)
}

// Priority is always low and silent; recaps are informational only.
func (*WeeklyRecap) Priority(Context) Priority {
	return Priority{Level: LevelLow}
}
