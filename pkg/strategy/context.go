package strategy

import "time"

// TaskReminder is the per-habit reminder configuration carried on a task
// summary. The engine never schedules from it directly; it is part of the
// snapshot so strategies can reason about per-task preferences.
type TaskReminder struct {
	Enabled bool   `json:"enabled"`
	Time    string `json:"time"` // "HH:MM"
}

// TaskSummary is a read-only view of a habit for strategy evaluation.
type TaskSummary struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Icon           string        `json:"icon,omitempty"`
	Reminder       *TaskReminder `json:"reminder,omitempty"`
	CompletedToday bool          `json:"completed_today"`
}

// StreakSummary is a read-only view of a habit's streak state.
type StreakSummary struct {
	TaskID         string    `json:"task_id"`
	TaskName       string    `json:"task_name"`
	CurrentStreak  int       `json:"current_streak"`
	BestStreak     int       `json:"best_streak"`
	LastCompletion time.Time `json:"last_completion"`
	AtRisk         bool      `json:"at_risk"`
}

// Context is the immutable per-evaluation input assembled by a data
// collaborator. Date doubles as the evaluation instant: strategies never
// call time.Now, which keeps them deterministic. Strategies must not
// mutate a Context.
type Context struct {
	Date               time.Time
	Tasks              []TaskSummary
	Streaks            []StreakSummary
	CompletedToday     map[string]struct{}
	Settings           Settings
	HoursUntilMidnight float64
	IsWeekend          bool
}

// CompletedCount returns the number of habits completed today.
func (c Context) CompletedCount() int {
	return len(c.CompletedToday)
}

// CompletionPercent returns the rounded completion percentage for today,
// or 0 when there are no tasks.
func (c Context) CompletionPercent() int {
	if len(c.Tasks) == 0 {
		return 0
	}
	return int(float64(c.CompletedCount())/float64(len(c.Tasks))*100 + 0.5)
}

// AtRiskStreaks returns every streak flagged at risk, regardless of length.
func (c Context) AtRiskStreaks() []StreakSummary {
	var out []StreakSummary
	for _, s := range c.Streaks {
		if s.AtRisk {
			out = append(out, s)
		}
	}
	return out
}

// LongestStreak returns the maximum current streak across all summaries,
// or 0 when there are none.
func (c Context) LongestStreak() int {
	longest := 0
	for _, s := range c.Streaks {
		if s.CurrentStreak > longest {
			longest = s.CurrentStreak
		}
	}
	return longest
}
