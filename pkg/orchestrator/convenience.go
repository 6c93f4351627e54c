package orchestrator

import (
	"context"

	"github.com/dmitrymomot/habitkit/pkg/strategy"
	"github.com/dmitrymomot/habitkit/pkg/toastqueue"
)

// Override tweaks a convenience notification before dispatch. Overrides
// run after defaults are applied, so caller choices always win.
type Override func(*Notification)

// WithIcon overrides the default icon.
func WithIcon(icon string) Override {
	return func(n *Notification) { n.Icon = icon }
}

// WithPriority overrides the default priority.
func WithPriority(p strategy.Priority) Override {
	return func(n *Notification) { n.Priority = &p }
}

// WithEffects overrides the default effects.
func WithEffects(e toastqueue.Effects) Override {
	return func(n *Notification) { n.Effects = &e }
}

// WithTitle sets a title on the toast notification.
func WithTitle(title string) Override {
	return func(n *Notification) { n.Title = title }
}

// Success shows a medium-priority success toast with a haptic tick.
func (o *Orchestrator) Success(ctx context.Context, message string, overrides ...Override) {
	o.convenience(ctx, Notification{
		Message:  message,
		Variant:  toastqueue.VariantSuccess,
		Icon:     "✅",
		Priority: levelPriority(strategy.LevelMedium),
		Effects:  &toastqueue.Effects{Haptic: true},
	}, overrides)
}

// Error shows a high-priority error toast.
func (o *Orchestrator) Error(ctx context.Context, message string, overrides ...Override) {
	o.convenience(ctx, Notification{
		Message:  message,
		Variant:  toastqueue.VariantError,
		Icon:     "❌",
		Priority: levelPriority(strategy.LevelHigh),
		Effects:  &toastqueue.Effects{Haptic: true},
	}, overrides)
}

// Warning shows a medium-priority warning toast.
func (o *Orchestrator) Warning(ctx context.Context, message string, overrides ...Override) {
	o.convenience(ctx, Notification{
		Message:  message,
		Variant:  toastqueue.VariantWarning,
		Icon:     "⚠️",
		Priority: levelPriority(strategy.LevelMedium),
	}, overrides)
}

// Info shows a low-priority informational toast.
func (o *Orchestrator) Info(ctx context.Context, message string, overrides ...Override) {
	o.convenience(ctx, Notification{
		Message:  message,
		Variant:  toastqueue.VariantInfo,
		Icon:     "ℹ️",
		Priority: levelPriority(strategy.LevelLow),
	}, overrides)
}

// Celebration shows a high-priority celebratory toast with confetti,
// milestone sound, and haptics.
func (o *Orchestrator) Celebration(ctx context.Context, message string, overrides ...Override) {
	o.convenience(ctx, Notification{
		Message:  message,
		Variant:  toastqueue.VariantCelebration,
		Icon:     "🎉",
		Priority: levelPriority(strategy.LevelHigh),
		Effects:  &toastqueue.Effects{Sound: "milestone", Confetti: "burst", Haptic: true},
	}, overrides)
}

func (o *Orchestrator) convenience(ctx context.Context, n Notification, overrides []Override) {
	n.Channel = ChannelToast
	for _, override := range overrides {
		override(&n)
	}
	o.Notify(ctx, n)
}
