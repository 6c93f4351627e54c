package orchestrator

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/habitkit/pkg/logger"
	"github.com/dmitrymomot/habitkit/pkg/toastqueue"
)

// Orchestrator routes notification requests to the device scheduler and
// the toast queue, and drains the queue on a timer.
type Orchestrator struct {
	queue     *toastqueue.Queue
	device    DeviceScheduler
	effects   EffectPlayer
	presenter ToastPresenter
	log       *slog.Logger

	drainInterval time.Duration
	drainBatch    int
	toastDuration time.Duration

	mu         sync.Mutex
	drainTimer *time.Timer
	processing bool
	destroyed  bool
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(o *Orchestrator) {
		if log != nil {
			o.log = log
		}
	}
}

// WithEffectPlayer sets the sensory-feedback collaborator.
func WithEffectPlayer(p EffectPlayer) Option {
	return func(o *Orchestrator) {
		if p != nil {
			o.effects = p
		}
	}
}

// WithToastPresenter sets the toast rendering collaborator.
func WithToastPresenter(p ToastPresenter) Option {
	return func(o *Orchestrator) {
		if p != nil {
			o.presenter = p
		}
	}
}

// WithDrainInterval sets the pause between drain batches.
func WithDrainInterval(d time.Duration) Option {
	return func(o *Orchestrator) {
		if d > 0 {
			o.drainInterval = d
		}
	}
}

// WithDrainBatch sets how many toasts one drain step pulls.
func WithDrainBatch(n int) Option {
	return func(o *Orchestrator) {
		if n > 0 {
			o.drainBatch = n
		}
	}
}

// WithToastDuration sets the default on-screen lifetime of non-persistent
// toasts.
func WithToastDuration(d time.Duration) Option {
	return func(o *Orchestrator) {
		if d > 0 {
			o.toastDuration = d
		}
	}
}

// New creates an orchestrator. A nil queue gets a default toastqueue.Queue;
// a nil device scheduler falls back to NoopDeviceScheduler. The
// orchestrator owns the queue from here on and destroys it on Destroy.
func New(queue *toastqueue.Queue, device DeviceScheduler, opts ...Option) *Orchestrator {
	if queue == nil {
		queue = toastqueue.New()
	}
	if device == nil {
		device = NoopDeviceScheduler{}
	}

	o := &Orchestrator{
		queue:         queue,
		device:        device,
		effects:       NoopEffectPlayer{},
		presenter:     NoopToastPresenter{},
		log:           slog.Default(),
		drainInterval: 500 * time.Millisecond,
		drainBatch:    3,
		toastDuration: 4 * time.Second,
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// NewFromConfig creates an orchestrator plus its queue from a Config.
func NewFromConfig(cfg Config, device DeviceScheduler, opts ...Option) *Orchestrator {
	base := []Option{
		WithDrainInterval(cfg.DrainInterval),
		WithDrainBatch(cfg.DrainBatch),
		WithToastDuration(cfg.ToastDuration),
	}
	return New(cfg.NewQueue(), device, append(base, opts...)...)
}

// Notify dispatches a notification to its channel(s). It never returns an
// error: policy rejections are silent and collaborator failures are
// logged and swallowed, so a missed notification never becomes a crash.
// For ChannelBoth the push and toast paths run concurrently; a failure
// in one does not affect the other.
func (o *Orchestrator) Notify(ctx context.Context, n Notification) {
	switch n.Channel {
	case ChannelPush:
		o.sendPush(ctx, n)
	case ChannelToast:
		o.sendToast(n)
	case ChannelBoth:
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			o.sendPush(ctx, n)
		}()
		go func() {
			defer wg.Done()
			o.sendToast(n)
		}()
		wg.Wait()
	default:
		o.log.LogAttrs(ctx, slog.LevelWarn, "unknown notification channel",
			slog.String("channel", string(n.Channel)))
	}
}

// Schedule registers a push notification for a future instant and returns
// the device-assigned identifier. Toasts are always immediate: scheduling
// one logs and returns an empty identifier.
func (o *Orchestrator) Schedule(ctx context.Context, n Notification, at time.Time) string {
	if n.Channel != ChannelPush {
		o.log.LogAttrs(ctx, slog.LevelInfo, "toasts cannot be scheduled, use Notify",
			slog.String("channel", string(n.Channel)))
		return ""
	}
	n.ScheduledAt = &at
	return o.sendPush(ctx, n)
}

// Cancel removes a scheduled task reminder. The device collaborator
// addresses reminders by task ID only; canceling an arbitrary
// notification ID is not supported and will error.
func (o *Orchestrator) Cancel(ctx context.Context, taskID string) error {
	return o.device.CancelTaskReminder(ctx, taskID)
}

// CancelAll removes every scheduled device notification.
func (o *Orchestrator) CancelAll(ctx context.Context) error {
	return o.device.CancelAllNotifications(ctx)
}

// HasPermission reports whether device notifications are currently
// allowed. Collaborator failures are logged and read as "no".
func (o *Orchestrator) HasPermission(ctx context.Context) bool {
	status, err := o.device.Permissions(ctx)
	if err != nil {
		o.log.LogAttrs(ctx, slog.LevelWarn, "failed to read notification permissions",
			logger.Error(err))
		return false
	}
	return status.Granted()
}

// RequestPermission prompts the user for notification permission.
func (o *Orchestrator) RequestPermission(ctx context.Context) (PermissionStatus, error) {
	return o.device.RequestPermissions(ctx)
}

// GetQueueStats returns a snapshot of the toast queue state.
func (o *Orchestrator) GetQueueStats() toastqueue.Stats {
	return o.queue.Stats()
}

// ClearToastQueue drops all pending toasts.
func (o *Orchestrator) ClearToastQueue() {
	o.queue.Clear()
}

// Destroy cancels any pending drain timer, destroys the queue, and resets
// the drain guard. Required for clean shutdown; the orchestrator must not
// be used afterwards.
func (o *Orchestrator) Destroy() {
	o.mu.Lock()
	o.destroyed = true
	if o.drainTimer != nil {
		o.drainTimer.Stop()
		o.drainTimer = nil
	}
	o.processing = false
	o.mu.Unlock()

	o.queue.Destroy()
}

// sendPush forwards a push request to the device scheduler and returns
// the assigned identifier, or "" when the request cannot be fulfilled.
// The scheduler only understands task-linked reminders; an ad-hoc push
// without a task context is a documented collaborator limitation, logged
// and dropped without error.
func (o *Orchestrator) sendPush(ctx context.Context, n Notification) string {
	if n.TaskID == "" {
		o.log.LogAttrs(ctx, slog.LevelDebug, "push without task context cannot be scheduled",
			slog.String("title", n.Title))
		return ""
	}

	at := time.Now()
	if n.ScheduledAt != nil {
		at = *n.ScheduledAt
	}

	id, err := o.device.ScheduleTaskReminder(ctx, TaskRef{ID: n.TaskID, Name: n.Title}, at, "once")
	if err != nil {
		o.log.LogAttrs(ctx, slog.LevelWarn, "device scheduler rejected push",
			logger.TaskID(n.TaskID),
			logger.Error(err))
		return ""
	}
	return id
}

// sendToast realizes the request into a Toast and offers it to the queue.
// Rejection by dedup or rate limit is a silent no-op.
func (o *Orchestrator) sendToast(n Notification) {
	variant := n.Variant
	if variant == "" {
		variant = toastqueue.VariantInfo
	}

	duration := o.toastDuration
	if n.Priority != nil && n.Priority.Persistent {
		duration = 0 // persistent toasts never auto-dismiss
	}

	toast := toastqueue.Toast{
		ID:       uuid.New().String(),
		Message:  n.Message,
		Variant:  variant,
		Duration: duration,
		Icon:     n.Icon,
		Effects:  n.Effects,
	}

	if queued := o.queue.Enqueue(toast, queuePriority(n.Priority)); queued == nil {
		return
	}

	o.startDrain()
}

// startDrain kicks off the drain loop unless one is already running.
func (o *Orchestrator) startDrain() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.processing || o.destroyed {
		return
	}
	o.processing = true
	o.drainTimer = time.AfterFunc(0, o.drainStep)
}

// drainStep shows one batch of toasts and reschedules itself while the
// queue is non-empty. The processing flag guarantees a single loop.
func (o *Orchestrator) drainStep() {
	o.mu.Lock()
	if o.destroyed {
		o.processing = false
		o.mu.Unlock()
		return
	}
	o.drainTimer = nil
	o.mu.Unlock()

	for _, item := range o.queue.DequeueN(o.drainBatch) {
		o.present(item.Toast)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.destroyed {
		o.processing = false
		return
	}
	if o.queue.Size() > 0 {
		o.drainTimer = time.AfterFunc(o.drainInterval, o.drainStep)
		return
	}
	o.processing = false
}

// present hands a toast to the presenter and fires its effects. Effects
// are fire-and-forget; a panicking collaborator is contained here so one
// bad toast never kills the drain loop.
func (o *Orchestrator) present(toast toastqueue.Toast) {
	defer func() {
		if r := recover(); r != nil {
			o.log.LogAttrs(context.Background(), slog.LevelError, "toast collaborator panicked",
				slog.Any("panic", r),
				slog.String("toast_id", toast.ID))
		}
	}()

	o.presenter.Show(toast)

	if toast.Effects == nil {
		return
	}
	if toast.Effects.Sound != "" {
		o.effects.PlaySound(toast.Effects.Sound)
	}
	if toast.Effects.Confetti != "" {
		o.effects.TriggerConfetti(toast.Effects.Confetti)
	}
	if toast.Effects.Haptic {
		o.effects.TriggerHaptic()
	}
}
