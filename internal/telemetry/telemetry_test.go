package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/donaldgifford/sale-prospector/internal/config"
)

func TestSetup_Disabled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  *config.TelemetryConfig
	}{
		{name: "nil config"},
		{name: "disabled", cfg: &config.TelemetryConfig{Endpoint: "collector:4317"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			shutdown, err := Setup(context.Background(), tt.cfg, "test")
			require.NoError(t, err)
			require.NotNil(t, shutdown)
			assert.NoError(t, shutdown(context.Background()))
		})
	}
}

// Exporters connect lazily, so setup succeeds without a collector.
func TestSetup_Enabled(t *testing.T) {
	shutdown, err := Setup(context.Background(), &config.TelemetryConfig{
		Enabled:     true,
		Endpoint:    "127.0.0.1:4317",
		ServiceName: "spx-test",
		Insecure:    true,
		Interval:    time.Hour,
	}, "v0.0.1")
	require.NoError(t, err)

	_, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider)
	assert.True(t, ok, "global tracer provider should be the SDK provider")

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	_ = shutdown(ctx)
}

func TestResource(t *testing.T) {
	t.Parallel()

	res := Resource("sale-prospector", "v1.2.3")

	attrs := map[attribute.Key]string{}
	for _, kv := range res.Attributes() {
		attrs[kv.Key] = kv.Value.AsString()
	}
	assert.Equal(t, "sale-prospector", attrs["service.name"])
	assert.Equal(t, "v1.2.3", attrs["service.version"])
}
