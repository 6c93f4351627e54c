package evaluator

import (
	"context"
	"log/slog"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/dmitrymomot/habitkit/pkg/logger"
	"github.com/dmitrymomot/habitkit/pkg/orchestrator"
	"github.com/dmitrymomot/habitkit/pkg/strategy"
	"github.com/dmitrymomot/habitkit/pkg/toastqueue"
)

// Config holds the evaluation loop settings.
type Config struct {
	// CronSpec is a standard 5-field cron expression controlling how often
	// strategies are re-evaluated.
	CronSpec string `env:"EVAL_CRON_SPEC" envDefault:"*/15 * * * *"`
}

// ContextProvider assembles the per-evaluation snapshot from the data
// collaborators (tasks, streaks, completions, settings). The engine never
// queries storage directly.
type ContextProvider interface {
	BuildContext(ctx context.Context) (strategy.Context, error)
}

// Notifier receives notifications for firing strategies. Satisfied by
// *orchestrator.Orchestrator.
type Notifier interface {
	Notify(ctx context.Context, n orchestrator.Notification)
}

// Evaluator periodically builds a context and evaluates all strategies.
type Evaluator struct {
	provider   ContextProvider
	notifier   Notifier
	strategies []strategy.Strategy
	spec       string
	log        *slog.Logger

	mu   sync.Mutex
	cron *cron.Cron
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(e *Evaluator) {
		if log != nil {
			e.log = log
		}
	}
}

// WithCronSpec overrides the evaluation schedule.
func WithCronSpec(spec string) Option {
	return func(e *Evaluator) {
		if spec != "" {
			e.spec = spec
		}
	}
}

// WithConfig applies an env-loaded Config.
func WithConfig(cfg Config) Option {
	return func(e *Evaluator) {
		if cfg.CronSpec != "" {
			e.spec = cfg.CronSpec
		}
	}
}

// New creates an evaluator over the given strategies.
func New(provider ContextProvider, notifier Notifier, strategies []strategy.Strategy, opts ...Option) (*Evaluator, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if notifier == nil {
		return nil, ErrNilNotifier
	}
	if len(strategies) == 0 {
		return nil, ErrNoStrategies
	}

	e := &Evaluator{
		provider:   provider,
		notifier:   notifier,
		strategies: strategies,
		spec:       "*/15 * * * *",
		log:        slog.Default(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// Start schedules the evaluation loop. It fails on an invalid cron spec
// or when the evaluator is already running.
func (e *Evaluator) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cron != nil {
		return ErrAlreadyStarted
	}

	c := cron.New()
	if _, err := c.AddFunc(e.spec, func() {
		e.EvaluateOnce(context.Background())
	}); err != nil {
		return err
	}

	c.Start()
	e.cron = c

	e.log.Info("evaluation loop started", slog.String("cron_spec", e.spec))
	return nil
}

// Stop halts the loop and waits for an in-flight evaluation to finish.
// Stopping a never-started evaluator is a no-op.
func (e *Evaluator) Stop() {
	e.mu.Lock()
	c := e.cron
	e.cron = nil
	e.mu.Unlock()

	if c == nil {
		return
	}
	<-c.Stop().Done()
	e.log.Info("evaluation loop stopped")
}

// EvaluateOnce builds a fresh context and runs every strategy against it,
// forwarding firing strategies to the notifier. It returns the number of
// strategies that fired. Provider failures are logged and count as a
// no-op cycle.
func (e *Evaluator) EvaluateOnce(ctx context.Context) int {
	snap, err := e.provider.BuildContext(ctx)
	if err != nil {
		e.log.LogAttrs(ctx, slog.LevelWarn, "failed to build evaluation context",
			logger.Error(err))
		return 0
	}

	if !snap.Settings.Global.Enabled {
		return 0
	}

	fired := 0
	for _, s := range e.strategies {
		if !s.ShouldNotify(snap) {
			continue
		}

		msg := s.Message(snap)
		prio := s.Priority(snap)

		e.notifier.Notify(ctx, orchestrator.Notification{
			Channel:  orchestrator.ChannelToast,
			Title:    msg.Title,
			Message:  msg.Body,
			Priority: &prio,
			Variant:  variantFor(s.Name()),
		})
		fired++

		e.log.LogAttrs(ctx, slog.LevelDebug, "strategy fired",
			logger.StrategyName(s.Name()),
			logger.PriorityLevel(string(prio.Level)))
	}

	return fired
}

// variantFor maps a strategy to the toast variant it renders with.
func variantFor(name string) toastqueue.Variant {
	switch name {
	case "streak_protection":
		return toastqueue.VariantWarning
	case "weekly_recap":
		return toastqueue.VariantCelebration
	default:
		return toastqueue.VariantInfo
	}
}
