// Package testutil provides shared helpers for tests of the interception
// layer: recording/counting observers and unique label generation.
package testutil

import (
	"github.com/objtap/object-intercept-go/intercept"
)

// RecordingObserver captures every event it is notified with, in order.
type RecordingObserver struct {
	events []intercept.OperationEvent
}

// NewRecordingObserver creates an empty RecordingObserver.
func NewRecordingObserver() *RecordingObserver {
	return &RecordingObserver{}
}

// Observe is the intercept.Observer entry point.
func (r *RecordingObserver) Observe(e intercept.OperationEvent) error {
	r.events = append(r.events, e)

	return nil
}

// Events returns the captured events in notification order.
func (r *RecordingObserver) Events() []intercept.OperationEvent {
	return r.events
}

// Count returns how many notifications were delivered.
func (r *RecordingObserver) Count() int {
	return len(r.events)
}
