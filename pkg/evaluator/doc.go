// Package evaluator runs the periodic strategy evaluation loop: on a cron
// schedule it asks a collaborator for a fresh strategy.Context snapshot,
// evaluates every registered notification strategy against it, and
// forwards firing strategies to the orchestrator as toast notifications.
//
// The evaluator owns no policy itself. Whether to notify, what to say,
// and how urgently are strategy decisions; flood control (deduplication,
// rate limiting) is the toast queue's job. Running the loop more often
// than necessary is therefore harmless, which is why the default schedule
// is an every-15-minutes cron expression.
//
// # Usage
//
//	eval, err := evaluator.New(provider, orch,
//	    strategy.NewDailySummary(),
//	    strategy.NewStreakProtection(),
//	    strategy.NewWeeklyRecap(),
//	)
//	if err != nil {
//	    // handle error
//	}
//	if err := eval.Start(); err != nil {
//	    // handle error
//	}
//	defer eval.Stop()
package evaluator
