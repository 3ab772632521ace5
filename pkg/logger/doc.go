// Package logger builds configured log/slog loggers.
//
// It exists so every component in the module creates loggers the same way:
// JSON by default for aggregation, text for development, static attributes
// attached at construction time.
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithAttr(slog.String("component", "watch")),
//	)
//
// Discard returns a no-op logger for use as a library default.
package logger
