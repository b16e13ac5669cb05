package trie

import "log/slog"

var defaultLogger = slog.New(slog.DiscardHandler)

// SetLogHandler replaces the handler of the logger used by tries created
// without WithLogger. The package logs nothing unless a handler is set.
func SetLogHandler(handler slog.Handler) {
	defaultLogger = slog.New(handler)
}

// Logger returns the package default logger.
func Logger() *slog.Logger {
	return defaultLogger
}
