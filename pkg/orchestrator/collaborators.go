package orchestrator

import (
	"context"
	"time"

	"github.com/dmitrymomot/habitkit/pkg/toastqueue"
)

// TaskRef identifies the habit a device reminder is linked to.
type TaskRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PermissionStatus is the device notification permission state.
type PermissionStatus struct {
	Status      string `json:"status"` // granted, denied, undetermined
	CanAskAgain bool   `json:"can_ask_again"`
}

// Granted reports whether notifications may be delivered.
func (p PermissionStatus) Granted() bool {
	return p.Status == "granted"
}

// DeviceScheduler is the OS/runtime facility that fires a notification at
// a wall-clock time even while the app is not running. Its addressing
// model is task-id based: only task-linked and the single global daily
// reminder can be scheduled or canceled.
type DeviceScheduler interface {
	ScheduleTaskReminder(ctx context.Context, task TaskRef, at time.Time, frequency string) (string, error)
	CancelTaskReminder(ctx context.Context, taskID string) error
	ScheduleGlobalDailyReminder(ctx context.Context, clock string, enabled bool) (string, error)
	CancelGlobalDailyReminder(ctx context.Context) error
	CancelAllNotifications(ctx context.Context) error
	Permissions(ctx context.Context) (PermissionStatus, error)
	RequestPermissions(ctx context.Context) (PermissionStatus, error)
}

// EffectPlayer triggers sensory feedback. All calls are fire-and-forget:
// implementations log their own failures and never propagate them.
type EffectPlayer interface {
	PlaySound(kind string)
	TriggerHaptic()
	TriggerConfetti(kind string)
}

// ToastPresenter renders a toast on screen. Implementations own dismissal
// timing based on Toast.Duration.
type ToastPresenter interface {
	Show(toast toastqueue.Toast)
}

// NoopDeviceScheduler satisfies DeviceScheduler without doing anything.
// Useful for tests and headless runs.
type NoopDeviceScheduler struct{}

func (NoopDeviceScheduler) ScheduleTaskReminder(context.Context, TaskRef, time.Time, string) (string, error) {
	return "", nil
}

func (NoopDeviceScheduler) CancelTaskReminder(context.Context, string) error { return nil }

func (NoopDeviceScheduler) ScheduleGlobalDailyReminder(context.Context, string, bool) (string, error) {
	return "", nil
}

func (NoopDeviceScheduler) CancelGlobalDailyReminder(context.Context) error { return nil }

func (NoopDeviceScheduler) CancelAllNotifications(context.Context) error { return nil }

func (NoopDeviceScheduler) Permissions(context.Context) (PermissionStatus, error) {
	return PermissionStatus{Status: "granted"}, nil
}

func (NoopDeviceScheduler) RequestPermissions(context.Context) (PermissionStatus, error) {
	return PermissionStatus{Status: "granted"}, nil
}

// NoopEffectPlayer satisfies EffectPlayer without doing anything.
type NoopEffectPlayer struct{}

func (NoopEffectPlayer) PlaySound(string)       {}
func (NoopEffectPlayer) TriggerHaptic()         {}
func (NoopEffectPlayer) TriggerConfetti(string) {}

// NoopToastPresenter satisfies ToastPresenter without doing anything.
type NoopToastPresenter struct{}

func (NoopToastPresenter) Show(toastqueue.Toast) {}
