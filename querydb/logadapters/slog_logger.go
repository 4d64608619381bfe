package logadapters

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/contrib/bridges/otelslog"

	"github.com/AntonStoeckl/relational-query-go/querydb"
)

// SlogLogger implements querydb.Logger on top of log/slog.
// This is the recommended backend: created through NewSlogBridgeLogger it
// provides automatic trace correlation via the OpenTelemetry slog bridge.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogBridgeLogger creates a logger using the OpenTelemetry slog bridge.
// The logger uses the global OpenTelemetry LoggerProvider and correlates log
// records with the active trace.
func NewSlogBridgeLogger(name string) *SlogLogger {
	return &SlogLogger{logger: otelslog.NewLogger(name)}
}

// NewSlogLoggerWithHandler creates a logger using the provided slog.Handler
// as-is, without OpenTelemetry trace correlation. Use NewSlogBridgeLogger
// for correlation.
func NewSlogLoggerWithHandler(handler slog.Handler) *SlogLogger {
	return &SlogLogger{logger: slog.New(handler)}
}

// Debug logs a debug message.
func (l *SlogLogger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

// Info logs an info message.
func (l *SlogLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

// Warn logs a warning message.
func (l *SlogLogger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

// Error logs an error message.
func (l *SlogLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

// DebugContext logs a debug message with context for trace correlation.
func (l *SlogLogger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.logger.DebugContext(ctx, msg, args...)
}

// Ensure SlogLogger implements querydb.Logger.
var _ querydb.Logger = (*SlogLogger)(nil)
