package oteladapters

import (
	"log/slog"

	"go.opentelemetry.io/contrib/bridges/otelslog"

	"github.com/objtap/object-intercept-go/intercept"
)

// SlogBridgeLogger implements intercept.Logger on top of log/slog. The
// custom-label sink maps to Info with a "label" attribute so structured
// backends keep the label queryable instead of burying it in the message.
type SlogBridgeLogger struct {
	logger *slog.Logger
}

// NewSlogBridgeLogger creates a logger backed by the OpenTelemetry slog
// bridge, using the global LoggerProvider. This is the recommended
// constructor when an OpenTelemetry pipeline is configured.
func NewSlogBridgeLogger(name string) *SlogBridgeLogger {
	return &SlogBridgeLogger{logger: otelslog.NewLogger(name)}
}

// NewSlogBridgeLoggerWithHandler creates a logger over the provided
// slog.Handler as-is, without OpenTelemetry integration.
func NewSlogBridgeLoggerWithHandler(handler slog.Handler) *SlogBridgeLogger {
	return &SlogBridgeLogger{logger: slog.New(handler)}
}

// Debug logs through the debug-level sink.
func (l *SlogBridgeLogger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

// Error logs through the error-level sink.
func (l *SlogBridgeLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

// Log logs through the custom-label sink.
func (l *SlogBridgeLogger) Log(label string, msg string, args ...any) {
	allArgs := append([]any{"label", label}, args...)
	l.logger.Info(msg, allArgs...)
}

// Ensure SlogBridgeLogger implements intercept.Logger.
var _ intercept.Logger = (*SlogBridgeLogger)(nil)
