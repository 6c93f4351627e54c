package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/habitkit/pkg/logger"
)

func TestError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.Attr{}, logger.Error(nil))

	attr := logger.Error(errors.New("boom"))
	assert.Equal(t, "error", attr.Key)
}

func TestDomainAttrs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		attr    slog.Attr
		wantKey string
		wantVal string
	}{
		{name: "task id", attr: logger.TaskID("t1"), wantKey: "task_id", wantVal: "t1"},
		{name: "strategy", attr: logger.StrategyName("daily_summary"), wantKey: "strategy", wantVal: "daily_summary"},
		{name: "variant", attr: logger.Variant("success"), wantKey: "variant", wantVal: "success"},
		{name: "priority", attr: logger.PriorityLevel("high"), wantKey: "priority", wantVal: "high"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantKey, tt.attr.Key)
			assert.Equal(t, tt.wantVal, tt.attr.Value.String())
		})
	}

	// Empty values collapse to an empty attribute.
	assert.Equal(t, slog.Attr{}, logger.TaskID(""))
	assert.Equal(t, slog.Attr{}, logger.Variant(""))
}
