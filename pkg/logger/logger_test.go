package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/sale-prospector/pkg/logger"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  slog.Level
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "DEBUG", want: slog.LevelDebug},
		{input: " warn ", want: slog.LevelWarn},
		{input: "warning", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "", want: slog.LevelInfo},
		{input: "trace", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, logger.ParseLevel(tt.input))
		})
	}
}

func TestNew_ServiceAndVersion(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := logger.New(logger.Options{
		Format:  "json",
		Service: "sale-prospector",
		Version: "v1.2.0",
		Writer:  &buf,
	})
	l.Info("feed computed", "sale_id", "s1")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "sale-prospector", rec["service"])
	assert.Equal(t, "v1.2.0", rec["version"])
	assert.Equal(t, "s1", rec["sale_id"])
	assert.Equal(t, "INFO", rec["level"])
}

func TestNew_TextOmitsEmptyTags(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger.New(logger.Options{Writer: &buf}).Info("hello")

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "msg=hello")
	assert.NotContains(t, out, "service=")
	assert.NotContains(t, out, "version=")
}

func TestNew_LevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := logger.New(logger.Options{Level: "warn", Writer: &buf})

	l.Info("geocode lookup ok")
	assert.Empty(t, buf.String())

	l.Warn("geocode lookup failed")
	assert.Contains(t, buf.String(), "geocode lookup failed")
}
