// Package orchestrator routes unified notification requests to their
// delivery channels: OS-level push reminders via a device-scheduling
// collaborator, and in-app toasts via a rate-limited priority queue that
// is drained on a timer.
//
// The orchestrator is the single entry point for callers that want to
// notify. A request says what to communicate (title, message, variant,
// effects), how urgently, and through which channel: ChannelPush,
// ChannelToast, or ChannelBoth. Delivery is best effort by design: policy
// rejections (deduplication, rate limiting) are silent no-ops, and
// collaborator failures are logged and swallowed, because a missed
// notification is always preferable to a crashed app. Nothing on the
// notify path returns an error to the caller.
//
// # Draining
//
// Accepted toasts are pulled from the queue in small batches (3 by
// default) with a 500ms pause between batches, so a burst of alerts never
// floods the UI. A re-entrancy guard ensures a single drain loop per
// orchestrator; Destroy cancels the pending drain timer and tears down
// the queue.
//
// # Known collaborator limitations
//
// The device scheduler only addresses task-linked reminders. An immediate
// push without a task context cannot be fulfilled and is logged and
// dropped, and Cancel can only target task reminder IDs. Neither is
// papered over here.
//
// # Usage
//
//	orch := orchestrator.New(nil, device,
//	    orchestrator.WithToastPresenter(ui),
//	    orchestrator.WithEffectPlayer(fx),
//	)
//	defer orch.Destroy()
//
//	orch.Success(ctx, "Habit logged!")
//	orch.Celebration(ctx, "30-day streak! Incredible!")
package orchestrator
