// Package logger builds configured log/slog loggers for the habit
// tracker: JSON output for production log aggregation, tint-colored text
// for development consoles. It also ships typed attribute helpers so
// domain identifiers (task IDs, strategy names, toast variants) are
// logged under consistent keys across packages.
//
// # Usage
//
//	log := logger.New(logger.WithDevelopment("habitkit"))
//	logger.SetAsDefault(log)
//
//	log.Info("toast enqueued",
//	    logger.TaskID(taskID),
//	    logger.Variant("success"),
//	)
package logger
