// Package log provides structured logging for the symdiff command based on
// [log/slog].
//
// Loggers are configured at creation time with functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText))
//
// The package also keeps a default logger, reconfigured with [Config] and
// used by the package-level functions such as [Info] and [Error].
//
// # Output Formats
//
// Two output formats are supported: [FormatJSON] (default) and
// [FormatText].
package log
