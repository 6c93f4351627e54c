package orchestrator_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/habitkit/pkg/orchestrator"
	"github.com/dmitrymomot/habitkit/pkg/strategy"
	"github.com/dmitrymomot/habitkit/pkg/toastqueue"
)

func waitForToast(t *testing.T, presenter *recordingPresenter) toastqueue.Toast {
	t.Helper()
	require.Eventually(t, func() bool {
		return len(presenter.shown()) == 1
	}, time.Second, 5*time.Millisecond)
	return presenter.shown()[0]
}

func TestConvenienceDefaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		send        func(o *orchestrator.Orchestrator)
		wantVariant toastqueue.Variant
		wantIcon    string
	}{
		{
			name:        "success",
			send:        func(o *orchestrator.Orchestrator) { o.Success(context.Background(), "saved") },
			wantVariant: toastqueue.VariantSuccess,
			wantIcon:    "✅",
		},
		{
			name:        "error",
			send:        func(o *orchestrator.Orchestrator) { o.Error(context.Background(), "failed") },
			wantVariant: toastqueue.VariantError,
			wantIcon:    "❌",
		},
		{
			name:        "warning",
			send:        func(o *orchestrator.Orchestrator) { o.Warning(context.Background(), "careful") },
			wantVariant: toastqueue.VariantWarning,
			wantIcon:    "⚠️",
		},
		{
			name:        "info",
			send:        func(o *orchestrator.Orchestrator) { o.Info(context.Background(), "fyi") },
			wantVariant: toastqueue.VariantInfo,
			wantIcon:    "ℹ️",
		},
		{
			name:        "celebration",
			send:        func(o *orchestrator.Orchestrator) { o.Celebration(context.Background(), "100 days!") },
			wantVariant: toastqueue.VariantCelebration,
			wantIcon:    "🎉",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			orch, presenter, _ := newTestOrchestrator(t, nil)

			tt.send(orch)

			toast := waitForToast(t, presenter)
			assert.Equal(t, tt.wantVariant, toast.Variant)
			assert.Equal(t, tt.wantIcon, toast.Icon)
		})
	}
}

func TestCelebration_TriggersFullEffects(t *testing.T) {
	t.Parallel()

	orch, presenter, effects := newTestOrchestrator(t, nil)

	orch.Celebration(context.Background(), "30-day streak!")
	waitForToast(t, presenter)

	effects.mu.Lock()
	defer effects.mu.Unlock()
	assert.Equal(t, []string{"milestone"}, effects.sounds)
	assert.Equal(t, []string{"burst"}, effects.confetti)
	assert.Equal(t, 1, effects.haptics)
}

func TestConvenienceOverridesWin(t *testing.T) {
	t.Parallel()

	orch, presenter, effects := newTestOrchestrator(t, nil)

	orch.Success(context.Background(), "quietly saved",
		orchestrator.WithIcon("💾"),
		orchestrator.WithPriority(strategy.Priority{Level: strategy.LevelLow}),
		orchestrator.WithEffects(toastqueue.Effects{}),
	)

	toast := waitForToast(t, presenter)
	assert.Equal(t, "💾", toast.Icon)
	assert.Equal(t, toastqueue.VariantSuccess, toast.Variant)

	effects.mu.Lock()
	defer effects.mu.Unlock()
	assert.Zero(t, effects.haptics, "overridden effects disable the default haptic")
}
