package oteladapters_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/objtap/object-intercept-go/intercept"
	"github.com/objtap/object-intercept-go/intercept/oteladapters"
	"github.com/objtap/object-intercept-go/object"
)

func Test_NewSlogBridgeLogger_Construction(t *testing.T) {
	logger := oteladapters.NewSlogBridgeLogger("test")
	assert.NotNil(t, logger, "NewSlogBridgeLogger should return non-nil logger")
}

func Test_SlogBridgeLogger_Sinks(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug, // Capture all levels
	})

	logger := oteladapters.NewSlogBridgeLoggerWithHandler(handler)

	logger.Debug("debug message", "attr", "one")
	logger.Error("error message", "attr", "two")
	logger.Log("checkout", "labeled message", "attr", "three")

	output := buf.String()

	assert.Contains(t, output, "debug message")
	assert.Contains(t, output, "error message")
	assert.Contains(t, output, "labeled message")
	assert.Contains(t, output, `"label":"checkout"`, "custom-label sink keeps the label queryable")
	assert.Contains(t, output, `"attr":"three"`)
}

func Test_SlogBridgeLogger_AsLoggingObserver(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, nil)

	logger := oteladapters.NewSlogBridgeLoggerWithHandler(handler)

	facade, err := intercept.Wrap(object.New(), "orders", intercept.WithObserver(intercept.NewLoggingObserver(logger)))
	require.NoError(t, err)

	_, err = facade.Set(object.StringKey("state"), "shipped")
	require.NoError(t, err)

	output := buf.String()

	assert.Contains(t, output, `"label":"orders"`)
	assert.Contains(t, output, `"kind":"set"`)
	assert.Contains(t, output, `"property":"state"`)
}
