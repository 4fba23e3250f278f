package telemetry_test

import (
	"context"
	"testing"

	"github.com/mobilitree/backend/internal/infrastructure/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestNewTracerProvider_Disabled(t *testing.T) {
	logger := zaptest.NewLogger(t)
	ctx := context.Background()

	cfg := telemetry.Config{
		Enabled:           false,
		CollectorEndpoint: "localhost:14317",
		SamplingRatio:     1.0,
		ServiceName:       "test-service",
	}

	tp, err := telemetry.NewTracerProvider(ctx, cfg, logger)
	require.NoError(t, err)
	require.NotNil(t, tp)

	assert.False(t, tp.IsEnabled())

	// Shutdown is a no-op when disabled
	assert.NoError(t, tp.Shutdown(ctx))
	assert.NoError(t, tp.ForceFlush(ctx))
}

func TestTracerProvider_DisabledTracerStillUsable(t *testing.T) {
	logger := zaptest.NewLogger(t)
	ctx := context.Background()

	tp, err := telemetry.NewTracerProvider(ctx, telemetry.Config{Enabled: false}, logger)
	require.NoError(t, err)

	tracer := tp.Tracer("test")
	_, span := tracer.Start(ctx, "test-span")
	span.End()
}
