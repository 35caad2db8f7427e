package oteladapters

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/objtap/object-intercept-go/intercept"
)

// OperationsCounterName is the instrument every operation increments.
const OperationsCounterName = "intercept_operations_total"

// ErrCreatingInstrument is returned when the counter instrument cannot be
// created from the supplied meter.
var ErrCreatingInstrument = errors.New("creating counter instrument failed")

// NewMetricsObserver builds an intercept.Observer that counts every
// intercepted operation on an Int64Counter with {label, kind, property}
// attributes. The meter should come from your OpenTelemetry MeterProvider.
func NewMetricsObserver(meter metric.Meter) (intercept.Observer, error) {
	counter, err := meter.Int64Counter(
		OperationsCounterName,
		metric.WithDescription("Total number of intercepted object operations"),
	)
	if err != nil {
		return nil, errors.Join(ErrCreatingInstrument, err)
	}

	return func(e intercept.OperationEvent) error {
		attrs := []attribute.KeyValue{
			attribute.String("label", e.Label),
			attribute.String("kind", e.Kind.String()),
		}

		if e.Kind.PropertyScoped() {
			attrs = append(attrs, attribute.String("property", e.Property.String()))
		}

		counter.Add(context.Background(), 1, metric.WithAttributes(attrs...))

		return nil
	}, nil
}
