// Package strategy implements the notification decision layer of the habit
// tracker: pluggable policies that decide whether to notify, what to say,
// when to deliver, and how urgently.
//
// Three strategies are provided:
//
//   - DailySummary: a scheduled end-of-day progress summary with tiered
//     messaging and optional motivational quotes.
//   - StreakProtection: urgency-escalating warnings when a habit streak is
//     about to reset at midnight. Long streaks override quiet hours.
//   - WeeklyRecap: a low-priority weekly review with milestone callouts.
//
// Each strategy implements the Strategy interface and is evaluated against
// an immutable Context snapshot assembled by a collaborator. Strategies are
// stateless and pure: the same Context always produces the same decision,
// message, schedule time, and priority. Context.Date is the evaluation
// instant, so callers control the clock.
//
// # Usage
//
//	strategies := []strategy.Strategy{
//	    strategy.NewDailySummary(),
//	    strategy.NewStreakProtection(),
//	    strategy.NewWeeklyRecap(),
//	}
//
//	for _, s := range strategies {
//	    if !s.ShouldNotify(snap) {
//	        continue
//	    }
//	    msg := s.Message(snap)
//	    at := s.ScheduleTime(snap)
//	    prio := s.Priority(snap)
//	    // hand off to the orchestrator
//	}
package strategy
