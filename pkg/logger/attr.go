package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// TaskID records the habit/task identifier under the key "task_id".
func TaskID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("task_id", id)
}

// StrategyName records a notification strategy name under "strategy".
func StrategyName(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("strategy", name)
}

// Variant records a toast variant under the key "variant".
func Variant(v string) slog.Attr {
	if v == "" {
		return slog.Attr{}
	}
	return slog.String("variant", v)
}

// PriorityLevel records a notification urgency level under "priority".
func PriorityLevel(level string) slog.Attr {
	if level == "" {
		return slog.Attr{}
	}
	return slog.String("priority", level)
}
