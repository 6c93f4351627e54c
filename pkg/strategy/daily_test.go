package strategy_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/habitkit/pkg/strategy"
	"github.com/dmitrymomot/habitkit/pkg/timewindow"
)

// noon on a Wednesday, well outside any quiet hours used in tests.
var testDate = time.Date(2025, time.March, 12, 12, 0, 0, 0, time.UTC)

func testSettings() strategy.Settings {
	return strategy.Settings{
		Global: strategy.GlobalSettings{
			Enabled:          true,
			QuietHours:       timewindow.QuietHours{Enabled: true, Start: "22:00", End: "08:00"},
			WeekendMode:      timewindow.WeekendNormal,
			SoundEnabled:     true,
			VibrationEnabled: true,
		},
		Daily: strategy.DailySettings{
			Enabled:   true,
			Time:      "20:00",
			SmartMode: true,
		},
		Streaks: strategy.StreakSettings{
			ProtectionEnabled:   true,
			ProtectionTime:      "21:00",
			ProtectionThreshold: 3,
		},
		Achievements: strategy.AchievementSettings{
			Enabled:            true,
			WeeklyRecapEnabled: true,
			WeeklyRecapDay:     strategy.RecapSunday,
			WeeklyRecapTime:    "18:00",
		},
	}
}

func testContext(mutate func(*strategy.Context)) strategy.Context {
	c := strategy.Context{
		Date: testDate,
		Tasks: []strategy.TaskSummary{
			{ID: "t1", Name: "Meditate"},
			{ID: "t2", Name: "Read"},
			{ID: "t3", Name: "Run"},
		},
		CompletedToday:     map[string]struct{}{},
		Settings:           testSettings(),
		HoursUntilMidnight: 12,
	}
	if mutate != nil {
		mutate(&c)
	}
	return c
}

func TestDailySummary_ShouldNotify(t *testing.T) {
	t.Parallel()

	daily := strategy.NewDailySummary()

	tests := []struct {
		name   string
		mutate func(*strategy.Context)
		want   bool
	}{
		{
			name: "enabled outside quiet hours",
			want: true,
		},
		{
			name: "disabled",
			mutate: func(c *strategy.Context) {
				c.Settings.Daily.Enabled = false
			},
			want: false,
		},
		{
			name: "quiet hours suppress",
			mutate: func(c *strategy.Context) {
				c.Date = time.Date(2025, time.March, 12, 23, 0, 0, 0, time.UTC)
			},
			want: false,
		},
		{
			name: "weekend off suppresses",
			mutate: func(c *strategy.Context) {
				c.Settings.Global.WeekendMode = timewindow.WeekendOff
				c.IsWeekend = true
			},
			want: false,
		},
		{
			name: "weekend reduced passes through",
			mutate: func(c *strategy.Context) {
				c.Settings.Global.WeekendMode = timewindow.WeekendReduced
				c.IsWeekend = true
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, daily.ShouldNotify(testContext(tt.mutate)))
		})
	}
}

func TestDailySummary_Message(t *testing.T) {
	t.Parallel()

	daily := strategy.NewDailySummary()

	t.Run("perfect day", func(t *testing.T) {
		t.Parallel()
		c := testContext(func(c *strategy.Context) {
			c.CompletedToday = map[string]struct{}{"t1": {}, "t2": {}, "t3": {}}
		})
		msg := daily.Message(c)
		assert.Contains(t, msg.Body, "Perfect day")
		assert.Contains(t, msg.Body, "3")
	})

	t.Run("great job tier at 80 percent", func(t *testing.T) {
		t.Parallel()
		c := testContext(func(c *strategy.Context) {
			c.Tasks = append(c.Tasks, []strategy.TaskSummary{
				{ID: "t4", Name: "Write"}, {ID: "t5", Name: "Sleep"},
			}...)
			c.CompletedToday = map[string]struct{}{"t1": {}, "t2": {}, "t3": {}, "t4": {}}
		})
		msg := daily.Message(c)
		assert.Contains(t, msg.Body, "Great job")
		assert.Contains(t, msg.Body, "4/5")
	})

	t.Run("good progress tier at 50 percent", func(t *testing.T) {
		t.Parallel()
		c := testContext(func(c *strategy.Context) {
			c.Tasks = append(c.Tasks, strategy.TaskSummary{ID: "t4", Name: "Write"})
			c.CompletedToday = map[string]struct{}{"t1": {}, "t2": {}}
		})
		msg := daily.Message(c)
		assert.Contains(t, msg.Body, "Good progress")
	})

	t.Run("started tier below 50 percent", func(t *testing.T) {
		t.Parallel()
		c := testContext(func(c *strategy.Context) {
			c.CompletedToday = map[string]struct{}{"t1": {}}
		})
		msg := daily.Message(c)
		assert.Contains(t, msg.Body, "You've started")
		assert.Contains(t, msg.Body, "1/3")
	})

	t.Run("nothing done names single at-risk streak", func(t *testing.T) {
		t.Parallel()
		c := testContext(func(c *strategy.Context) {
			c.Streaks = []strategy.StreakSummary{
				{TaskID: "t2", TaskName: "Read", CurrentStreak: 10, AtRisk: true},
			}
		})
		msg := daily.Message(c)
		assert.Contains(t, msg.Body, "Read")
		assert.Contains(t, msg.Body, "10")
	})

	t.Run("multiple at-risk streaks report count and longest", func(t *testing.T) {
		t.Parallel()
		c := testContext(func(c *strategy.Context) {
			c.Streaks = []strategy.StreakSummary{
				{TaskID: "t1", TaskName: "Meditate", CurrentStreak: 5, AtRisk: true},
				{TaskID: "t2", TaskName: "Read", CurrentStreak: 21, AtRisk: true},
			}
		})
		msg := daily.Message(c)
		assert.Contains(t, msg.Body, "2 streaks at risk")
		assert.Contains(t, msg.Body, "21")
	})

	t.Run("no tasks falls back to static text", func(t *testing.T) {
		t.Parallel()
		c := testContext(func(c *strategy.Context) {
			c.Tasks = nil
		})
		msg := daily.Message(c)
		assert.Contains(t, msg.Body, "Time to log today's habits")
	})

	t.Run("smart mode off always uses static text", func(t *testing.T) {
		t.Parallel()
		c := testContext(func(c *strategy.Context) {
			c.Settings.Daily.SmartMode = false
			c.CompletedToday = map[string]struct{}{"t1": {}, "t2": {}, "t3": {}}
		})
		msg := daily.Message(c)
		assert.Contains(t, msg.Body, "Time to log today's habits")
		assert.NotContains(t, msg.Body, "Perfect day")
	})

	t.Run("motivation appends a quote", func(t *testing.T) {
		t.Parallel()
		c := testContext(func(c *strategy.Context) {
			c.Settings.Daily.SmartMode = false
			c.Settings.Daily.IncludeMotivation = true
		})
		msg := daily.Message(c)
		assert.Greater(t, len(msg.Body), len("Time to log today's habits! "))
	})
}

func TestDailySummary_ScheduleTime(t *testing.T) {
	t.Parallel()

	daily := strategy.NewDailySummary()

	t.Run("later today", func(t *testing.T) {
		t.Parallel()
		c := testContext(nil) // 12:00, scheduled for 20:00
		got := daily.ScheduleTime(c)
		assert.Equal(t, 20, got.Hour())
		assert.Equal(t, c.Date.Day(), got.Day())
		assert.True(t, got.After(c.Date))
	})

	t.Run("passed time rolls to tomorrow", func(t *testing.T) {
		t.Parallel()
		c := testContext(func(c *strategy.Context) {
			c.Settings.Daily.Time = "08:00"
		})
		got := daily.ScheduleTime(c)
		assert.Equal(t, c.Date.Day()+1, got.Day())
		assert.True(t, got.After(c.Date))
	})
}

func TestDailySummary_Priority(t *testing.T) {
	t.Parallel()

	daily := strategy.NewDailySummary()

	t.Run("default medium follows global channels", func(t *testing.T) {
		t.Parallel()
		p := daily.Priority(testContext(nil))
		assert.Equal(t, strategy.LevelMedium, p.Level)
		assert.True(t, p.Sound)
		assert.True(t, p.Vibrate)
	})

	t.Run("at-risk streak escalates to high", func(t *testing.T) {
		t.Parallel()
		c := testContext(func(c *strategy.Context) {
			c.Streaks = []strategy.StreakSummary{
				{TaskID: "t1", TaskName: "Meditate", CurrentStreak: 4, AtRisk: true},
			}
		})
		assert.Equal(t, strategy.LevelHigh, daily.Priority(c).Level)
	})
}
