// Command tracedobject demonstrates wrapping a dynamic object so every
// operation on it is logged and counted: a console trace log, a structured
// slog observer, and a Prometheus counter all attached to the same facade.
package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/objtap/object-intercept-go/intercept"
	"github.com/objtap/object-intercept-go/intercept/oteladapters"
	"github.com/objtap/object-intercept-go/intercept/promadapters"
	"github.com/objtap/object-intercept-go/intercept/tracelog"
	"github.com/objtap/object-intercept-go/object"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Prometheus pipeline: count every intercepted operation.
	registry := prometheus.NewRegistry()
	counting, err := promadapters.NewObserver(registry)
	if err != nil {
		logger.Error("failed to create prometheus observer", "error", err)
		os.Exit(1)
	}

	go func() {
		http.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		logger.Info("metrics server listening on :2112")

		if listenErr := http.ListenAndServe(":2112", nil); listenErr != nil {
			logger.Error("metrics server stopped", "error", listenErr)
		}
	}()

	// Console trace log plus structured slog output for every event.
	console := tracelog.New(os.Stderr, true)
	structured := intercept.NewLoggingObserver(oteladapters.NewSlogBridgeLoggerWithHandler(slog.NewJSONHandler(os.Stdout, nil)))

	observer := func(e intercept.OperationEvent) error {
		console.Log(e.Label, "operation intercepted",
			"kind", e.Kind.String(),
			"subject", intercept.DescribeSubject(e.Subject),
		)

		if err := structured(e); err != nil {
			return err
		}

		return counting(e)
	}

	cart := object.New()

	facade, err := intercept.Wrap(cart, "checkout-cart", intercept.WithObserver(observer))
	if err != nil {
		logger.Error("failed to wrap target", "error", err)
		os.Exit(1)
	}

	if _, err := facade.Set(object.StringKey("total"), 42); err != nil {
		logger.Error("set failed", "error", err)
		os.Exit(1)
	}

	total, err := facade.Get(object.StringKey("total"))
	if err != nil {
		logger.Error("get failed", "error", err)
		os.Exit(1)
	}

	keys, err := facade.OwnKeys()
	if err != nil {
		logger.Error("ownKeys failed", "error", err)
		os.Exit(1)
	}

	logger.Info("done", "total", total, "keys", len(keys))
}
