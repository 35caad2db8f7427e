package oteladapters

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/log"

	"github.com/objtap/object-intercept-go/intercept"
)

// OTelLogger implements intercept.Logger using the OpenTelemetry logging API
// directly. This provides more control over log record creation than the slog
// bridge but requires manual setup of the log.Logger.
type OTelLogger struct {
	logger log.Logger
}

// NewOTelLogger creates a logger emitting OpenTelemetry log records.
func NewOTelLogger(logger log.Logger) *OTelLogger {
	return &OTelLogger{logger: logger}
}

// Debug logs through the debug-level sink.
func (l *OTelLogger) Debug(msg string, args ...any) {
	l.emit(log.SeverityDebug, msg, args...)
}

// Error logs through the error-level sink.
func (l *OTelLogger) Error(msg string, args ...any) {
	l.emit(log.SeverityError, msg, args...)
}

// Log logs through the custom-label sink.
func (l *OTelLogger) Log(label string, msg string, args ...any) {
	allArgs := append([]any{"label", label}, args...)
	l.emit(log.SeverityInfo, msg, allArgs...)
}

// emit creates and emits an OpenTelemetry log record with the given severity.
// args are slog-style alternating key/value pairs; dangling or non-string
// keys are skipped.
func (l *OTelLogger) emit(severity log.Severity, msg string, args ...any) {
	record := log.Record{}
	record.SetSeverity(severity)
	record.SetBody(log.StringValue(msg))

	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}

		record.AddAttributes(log.String(key, stringValue(args[i+1])))
	}

	l.logger.Emit(context.Background(), record)
}

// stringValue converts any value to a string for OpenTelemetry attributes.
func stringValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}

	return slog.AnyValue(v).String()
}

// Ensure OTelLogger implements intercept.Logger.
var _ intercept.Logger = (*OTelLogger)(nil)
