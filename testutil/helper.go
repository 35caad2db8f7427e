package testutil

import (
	"testing"

	"github.com/google/uuid"
)

// GivenUniqueLabel supplies a collision-free wrap label for tests that run in
// parallel against shared sinks.
func GivenUniqueLabel(t testing.TB) string {
	t.Helper()

	label, err := uuid.NewV7()
	if err != nil {
		t.Fatalf("generating unique label: %v", err)
	}

	return label.String()
}
