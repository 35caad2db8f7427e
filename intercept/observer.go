package intercept

import (
	"fmt"

	"github.com/objtap/object-intercept-go/object"
)

// Logger interface for the minimal logging collaborator a typical observer is
// built on. Implementations format messages with a bracketed label prefix and
// may suppress output entirely when disabled; the core only ever consumes
// them through NewLoggingObserver and attaches no semantics beyond that.
type Logger interface {
	Debug(msg string, args ...any)
	Error(msg string, args ...any)
	Log(label string, msg string, args ...any)
}

// NewLoggingObserver builds an Observer that reports every event through the
// logger's custom-label sink, using the event's label as the prefix. It is a
// pure formatting consumer of the hook and never fails.
func NewLoggingObserver(logger Logger) Observer {
	return func(e OperationEvent) error {
		args := []any{"kind", e.Kind.String()}

		if e.Kind.PropertyScoped() {
			args = append(args, "property", e.Property.String())
		}

		args = append(args, "subject", DescribeSubject(e.Subject))

		logger.Log(e.Label, "operation intercepted", args...)

		return nil
	}
}

// DescribeSubject renders a subject value for log output without following
// object references, so cyclic object graphs stay harmless.
func DescribeSubject(subject object.Value) string {
	switch s := subject.(type) {
	case nil:
		return "<nil>"
	case *object.Object:
		if s == nil {
			return "<nil>"
		}

		switch {
		case s.IsCallable():
			return "<callable>"
		case s.IsConstructible():
			return "<constructor>"
		default:
			return fmt.Sprintf("<object %d own keys>", len(s.OwnKeys()))
		}
	case object.Descriptor:
		if s.IsAccessor() {
			return "<accessor descriptor>"
		}

		return fmt.Sprintf("<data descriptor value=%s>", DescribeSubject(s.Value))
	case []object.Key:
		return fmt.Sprintf("%v", s)
	case string:
		return fmt.Sprintf("%q", s)
	default:
		return fmt.Sprintf("%v", s)
	}
}
