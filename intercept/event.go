package intercept

import (
	"github.com/objtap/object-intercept-go/object"
)

// OperationEvent is the normalized payload delivered to an Observer: one
// event per intercepted operation, constructed fresh and never retained by
// the core.
//
// Property is the zero Key for kinds that are not property-scoped
// (see OperationKind.PropertyScoped). Subject is the operation-kind-specific
// subject value: mutating kinds report the intended payload (the requested
// prototype, the descriptor, the value being set), query kinds report the
// operation's own result.
type OperationEvent struct {
	Label    string
	Kind     OperationKind
	Target   *object.Object
	Property object.Key
	Subject  object.Value
}

// Observer is the hook notified of every intercepted operation, synchronously
// on the calling goroutine, after the default operation has run. A non-nil
// error (or a panic) surfaces to the facade's caller joined with
// ErrObserverFailed; it never suppresses or alters the already-computed
// default result beyond accompanying it with that error.
type Observer func(e OperationEvent) error
