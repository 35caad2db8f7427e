// Package promadapters provides a Prometheus adapter for the interception
// layer's observer hook, for users running a Prometheus pipeline instead of
// OpenTelemetry.
package promadapters

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/objtap/object-intercept-go/intercept"
)

// ErrRegisteringCollector is returned when the operations counter cannot be
// registered with the supplied registerer.
var ErrRegisteringCollector = errors.New("registering operations counter failed")

// NewObserver builds an intercept.Observer counting every intercepted
// operation on a CounterVec partitioned by wrap label and operation kind.
// The counter registers with reg immediately; registering two observers on
// the same registerer fails, share one observer instead.
func NewObserver(reg prometheus.Registerer) (intercept.Observer, error) {
	operations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intercept_operations_total",
			Help: "Total number of intercepted object operations",
		},
		[]string{"label", "kind"},
	)

	if err := reg.Register(operations); err != nil {
		return nil, errors.Join(ErrRegisteringCollector, err)
	}

	return func(e intercept.OperationEvent) error {
		operations.WithLabelValues(e.Label, e.Kind.String()).Inc()

		return nil
	}, nil
}
