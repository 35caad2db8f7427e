package oteladapters_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/objtap/object-intercept-go/intercept"
	"github.com/objtap/object-intercept-go/intercept/oteladapters"
	"github.com/objtap/object-intercept-go/object"
)

func Test_NewMetricsObserver_Construction(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	meter := provider.Meter("test")

	observer, err := oteladapters.NewMetricsObserver(meter)
	require.NoError(t, err)
	assert.NotNil(t, observer, "NewMetricsObserver should return a non-nil observer")
}

func Test_MetricsObserver_CountsOperationsPerKind(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	meter := provider.Meter("test")

	observer, err := oteladapters.NewMetricsObserver(meter)
	require.NoError(t, err)

	target := object.New()
	facade, err := intercept.Wrap(target, "metered", intercept.WithObserver(observer))
	require.NoError(t, err)

	_, err = facade.Set(object.StringKey("x"), 1)
	require.NoError(t, err)
	_, err = facade.Get(object.StringKey("x"))
	require.NoError(t, err)
	_, err = facade.Get(object.StringKey("x"))
	require.NoError(t, err)

	var resourceMetrics metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &resourceMetrics))

	sum := findCounterMetric(t, resourceMetrics, oteladapters.OperationsCounterName)

	counts := make(map[string]int64)
	for _, dp := range sum.DataPoints {
		kind, ok := dp.Attributes.Value(attribute.Key("kind"))
		require.True(t, ok, "every data point carries a kind attribute")

		label, ok := dp.Attributes.Value(attribute.Key("label"))
		require.True(t, ok)
		assert.Equal(t, "metered", label.AsString())

		counts[kind.AsString()] += dp.Value
	}

	assert.Equal(t, int64(1), counts["set"])
	assert.Equal(t, int64(2), counts["get"])
}

func Test_MetricsObserver_PropertyAttributeOnlyWhenScoped(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	meter := provider.Meter("test")

	observer, err := oteladapters.NewMetricsObserver(meter)
	require.NoError(t, err)

	facade, err := intercept.Wrap(object.New(), "metered", intercept.WithObserver(observer))
	require.NoError(t, err)

	_, err = facade.OwnKeys()
	require.NoError(t, err)

	var resourceMetrics metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &resourceMetrics))

	sum := findCounterMetric(t, resourceMetrics, oteladapters.OperationsCounterName)
	require.Len(t, sum.DataPoints, 1)

	_, hasProperty := sum.DataPoints[0].Attributes.Value(attribute.Key("property"))
	assert.False(t, hasProperty, "non-property-scoped kinds carry no property attribute")
}

func findCounterMetric(t *testing.T, rm metricdata.ResourceMetrics, name string) metricdata.Sum[int64] {
	t.Helper()

	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if m.Name == name {
				sum, ok := m.Data.(metricdata.Sum[int64])
				require.True(t, ok, "metric %s should be an int64 sum", name)
				return sum
			}
		}
	}

	t.Fatalf("metric %s not found", name)

	return metricdata.Sum[int64]{}
}
