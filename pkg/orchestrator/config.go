package orchestrator

import (
	"time"

	"github.com/dmitrymomot/habitkit/pkg/toastqueue"
)

// Config holds the orchestrator and queue tuning knobs. Defaults match
// the flood-control budget of the habit tracker UI.
type Config struct {
	DrainInterval time.Duration `env:"NOTIFY_DRAIN_INTERVAL" envDefault:"500ms"`
	DrainBatch    int           `env:"NOTIFY_DRAIN_BATCH" envDefault:"3"`
	ToastDuration time.Duration `env:"NOTIFY_TOAST_DURATION" envDefault:"4s"`

	QueueSize   int           `env:"NOTIFY_QUEUE_SIZE" envDefault:"50"`
	DedupWindow time.Duration `env:"NOTIFY_DEDUP_WINDOW" envDefault:"2s"`
	RateLimit   int           `env:"NOTIFY_RATE_LIMIT" envDefault:"5"`
	RateWindow  time.Duration `env:"NOTIFY_RATE_WINDOW" envDefault:"10s"`
}

// NewQueue builds a toast queue sized by the config.
func (c Config) NewQueue() *toastqueue.Queue {
	return toastqueue.New(
		toastqueue.WithMaxSize(c.QueueSize),
		toastqueue.WithDedupWindow(c.DedupWindow),
		toastqueue.WithRateLimit(c.RateLimit, c.RateWindow),
	)
}
