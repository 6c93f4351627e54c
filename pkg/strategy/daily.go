package strategy

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/habitkit/pkg/timewindow"
)

// staticDailyBody is the fallback text used when smart mode is off or no
// contextual tier applies.
const staticDailyBody = "Time to log today's habits!"

// DailySummary sends a scheduled once-a-day progress summary. With smart
// mode enabled the message is tiered by today's completion percentage;
// otherwise a static reminder is used.
type DailySummary struct{}

// NewDailySummary creates the daily summary strategy.
func NewDailySummary() *DailySummary {
	return &DailySummary{}
}

func (*DailySummary) Name() string { return "daily_summary" }

// ShouldNotify is false when the daily summary is disabled, during quiet
// hours, or when weekend mode suppresses notifications.
func (*DailySummary) ShouldNotify(c Context) bool {
	if !c.Settings.Daily.Enabled {
		return false
	}
	if c.Settings.Global.QuietHours.Contains(c.Date) {
		return false
	}
	if timewindow.SuppressOnWeekend(c.Settings.Global.WeekendMode, c.IsWeekend) {
		return false
	}
	return true
}

func (*DailySummary) Message(c Context) Message {
	msg := Message{
		Title: "Daily Habit Summary",
		Body:  staticDailyBody,
	}

	if c.Settings.Daily.SmartMode {
		msg.Body = smartDailyBody(c)
	}

	if c.Settings.Daily.IncludeMotivation {
		msg.Body += " " + randomQuote()
	}

	return msg
}

// smartDailyBody tiers the message by completion percentage, falling back
// to at-risk streak warnings and finally the static reminder.
func smartDailyBody(c Context) string {
	completed := c.CompletedCount()
	total := len(c.Tasks)
	percentage := c.CompletionPercent()

	switch {
	case completed == total && total > 0:
		return fmt.Sprintf("Perfect day! All %d habits completed!", total)
	case percentage >= 80:
		return fmt.Sprintf("Great job! %d/%d habits today", completed, total)
	case percentage >= 50:
		return fmt.Sprintf("Good progress! %d/%d habits done.", completed, total)
	case completed > 0:
		return fmt.Sprintf("You've started! %d/%d complete.", completed, total)
	}

	if atRisk := c.AtRiskStreaks(); len(atRisk) > 0 {
		if len(atRisk) == 1 {
			return fmt.Sprintf("Your %d-day %s streak is at risk! Complete it before midnight.",
				atRisk[0].CurrentStreak, atRisk[0].TaskName)
		}
		longest := 0
		for _, s := range atRisk {
			if s.CurrentStreak > longest {
				longest = s.CurrentStreak
			}
		}
		return fmt.Sprintf("%d streaks at risk, including a %d-day one! Don't break the chain.",
			len(atRisk), longest)
	}

	return staticDailyBody
}

// ScheduleTime returns today's configured daily time, rolled to tomorrow
// when it has already passed.
func (*DailySummary) ScheduleTime(c Context) time.Time {
	return timewindow.NextDaily(c.Date, c.Settings.Daily.Time)
}

// Priority escalates to high when any streak is at risk.
func (*DailySummary) Priority(c Context) Priority {
	p := basePriority(c.Settings)
	if len(c.AtRiskStreaks()) > 0 {
		p.Level = LevelHigh
	}
	return p
}
