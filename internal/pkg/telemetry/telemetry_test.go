package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

func TestNewResource(t *testing.T) {
	t.Run("sets the service name attribute", func(t *testing.T) {
		res, err := newResource("test-service")
		require.NoError(t, err)
		require.NotNil(t, res)

		found := false
		for _, attr := range res.Attributes() {
			if attr.Key == semconv.ServiceNameKey {
				assert.Equal(t, "test-service", attr.Value.AsString())
				found = true
				break
			}
		}
		assert.True(t, found, "service name attribute not found in resource")
	})

	t.Run("accepts an empty service name", func(t *testing.T) {
		res, err := newResource("")
		require.NoError(t, err)
		assert.NotNil(t, res)
	})
}

func TestInit(t *testing.T) {
	// Restore the global providers after the test.
	originalMeterProvider := otel.GetMeterProvider()
	originalTracerProvider := otel.GetTracerProvider()
	defer func() {
		otel.SetMeterProvider(originalMeterProvider)
		otel.SetTracerProvider(originalTracerProvider)
	}()

	t.Run("returns a working shutdown func", func(t *testing.T) {
		ctx := context.Background()

		shutdown, err := Init(ctx, "test-service")
		require.NoError(t, err)
		require.NotNil(t, shutdown)

		// Without a collector, shutdown flushes may fail; it must still
		// return within the deadline instead of hanging.
		shutdownCtx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
		defer cancel()
		_ = shutdown(shutdownCtx)
	})
}
