// Package tracelog implements the minimal logging collaborator used as a
// typical observer of the interception layer: a console sink with a bracketed
// label prefix and an instance-level enabled flag.
//
// It is a pure formatting and gating utility with no bearing on the
// interception semantics. Independent Logger instances do not interfere with
// each other; enabling and disabling is an explicit mutation on the instance,
// never ambient state.
package tracelog

import (
	"fmt"
	"io"
	"strings"

	"github.com/objtap/object-intercept-go/intercept"
)

const (
	debugLabel = "debug"
	errorLabel = "error"
)

// Logger formats messages with a bracketed label prefix and conditionally
// emits them to a sink. All output is suppressed while the logger is
// disabled.
type Logger struct {
	out     io.Writer
	enabled bool
}

// New creates a Logger writing to out. A disabled logger swallows everything
// until SetEnabled(true).
func New(out io.Writer, enabled bool) *Logger {
	return &Logger{
		out:     out,
		enabled: enabled,
	}
}

// SetEnabled switches output on or off for this instance.
func (l *Logger) SetEnabled(enabled bool) {
	l.enabled = enabled
}

// Enabled reports whether the logger currently emits output.
func (l *Logger) Enabled() bool {
	return l.enabled
}

// Debug emits a debug-level line: "[debug] msg key=value ...".
func (l *Logger) Debug(msg string, args ...any) {
	l.Log(debugLabel, msg, args...)
}

// Error emits an error-level line: "[error] msg key=value ...".
func (l *Logger) Error(msg string, args ...any) {
	l.Log(errorLabel, msg, args...)
}

// Log emits a line under a custom bracketed label. args are slog-style
// alternating key/value pairs; a trailing odd value is emitted as-is.
func (l *Logger) Log(label string, msg string, args ...any) {
	if !l.enabled {
		return
	}

	var b strings.Builder
	b.WriteString("[")
	b.WriteString(label)
	b.WriteString("] ")
	b.WriteString(msg)

	for i := 0; i < len(args); i += 2 {
		if i+1 < len(args) {
			fmt.Fprintf(&b, " %v=%v", args[i], args[i+1])
		} else {
			fmt.Fprintf(&b, " %v", args[i])
		}
	}

	b.WriteString("\n")

	_, _ = io.WriteString(l.out, b.String())
}

// Ensure Logger implements the collaborator interface the core consumes.
var _ intercept.Logger = (*Logger)(nil)
