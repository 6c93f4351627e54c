package evaluator

import "errors"

var (
	// ErrNilProvider is returned when no context provider is given.
	ErrNilProvider = errors.New("context provider cannot be nil")

	// ErrNilNotifier is returned when no notifier is given.
	ErrNilNotifier = errors.New("notifier cannot be nil")

	// ErrNoStrategies is returned when the evaluator has nothing to run.
	ErrNoStrategies = errors.New("no strategies registered")

	// ErrAlreadyStarted is returned when Start is called twice.
	ErrAlreadyStarted = errors.New("evaluator already started")
)
