package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/habitkit/pkg/config"
	"github.com/dmitrymomot/habitkit/pkg/orchestrator"
)

type testConfig struct {
	Window  time.Duration `env:"TEST_WINDOW" envDefault:"2s"`
	Retries int           `env:"TEST_RETRIES" envDefault:"5"`
}

func TestLoad_Defaults(t *testing.T) {
	config.Reset()

	var cfg testConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, 2*time.Second, cfg.Window)
	assert.Equal(t, 5, cfg.Retries)
}

func TestLoad_EnvOverride(t *testing.T) {
	config.Reset()
	t.Setenv("TEST_WINDOW", "750ms")

	var cfg testConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, 750*time.Millisecond, cfg.Window)
}

func TestLoad_Cached(t *testing.T) {
	config.Reset()
	t.Setenv("TEST_RETRIES", "9")

	var first testConfig
	require.NoError(t, config.Load(&first))
	require.Equal(t, 9, first.Retries)

	// Later environment changes do not affect the cached type.
	t.Setenv("TEST_RETRIES", "1")
	var second testConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, 9, second.Retries)
}

func TestLoad_NilPointer(t *testing.T) {
	config.Reset()

	err := config.Load[testConfig](nil)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestLoad_OrchestratorDefaults(t *testing.T) {
	config.Reset()

	var cfg orchestrator.Config
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, 500*time.Millisecond, cfg.DrainInterval)
	assert.Equal(t, 3, cfg.DrainBatch)
	assert.Equal(t, 50, cfg.QueueSize)
	assert.Equal(t, 2*time.Second, cfg.DedupWindow)
	assert.Equal(t, 5, cfg.RateLimit)
	assert.Equal(t, 10*time.Second, cfg.RateWindow)
}
