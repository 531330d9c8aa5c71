// Package cacik holds the host-engine vocabulary shared by the reporter and
// its adapters: feature, scenario and step payloads, raw results, tables and
// the run configuration.
package cacik

// Logger is the interface for structured logging.
// Compatible with *slog.Logger and other structured loggers.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// NoopLogger returns a logger that discards all messages.
func NoopLogger() Logger {
	return &noopLogger{}
}

// noopLogger discards all log messages.
type noopLogger struct{}

func (n *noopLogger) Debug(msg string, args ...any) {}
func (n *noopLogger) Info(msg string, args ...any)  {}
func (n *noopLogger) Warn(msg string, args ...any)  {}
func (n *noopLogger) Error(msg string, args ...any) {}
