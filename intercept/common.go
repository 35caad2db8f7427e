package intercept

import "errors"

var (
	// ErrNilTarget is returned when Wrap is given a nil target.
	ErrNilTarget = errors.New("nil target supplied")

	// ErrNilObserver is returned when WithObserver is given a nil observer.
	ErrNilObserver = errors.New("nil observer supplied")

	// ErrObserverFailed marks a failure raised by the observer during
	// notification. The default operation has already completed when this
	// error is returned; the observer's own error is joined with it.
	ErrObserverFailed = errors.New("observer notification failed")

	// ErrUnknownOperationKind is returned for OperationKind values outside
	// the closed set.
	ErrUnknownOperationKind = errors.New("unknown operation kind")
)
