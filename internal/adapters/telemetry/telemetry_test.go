package telemetry_test

import (
	"context"
	"testing"

	"github.com/gunchamalik/wheelhouse/internal/adapters/telemetry"
	"github.com/gunchamalik/wheelhouse/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
)

var (
	_ ports.Tracer = (*telemetry.OTelTracer)(nil)
	_ ports.Tracer = (*telemetry.NoOpTracer)(nil)
	_ ports.Span   = (*telemetry.OTelSpan)(nil)
	_ ports.Span   = (*telemetry.NoOpSpan)(nil)
)

func TestOTelTracer_Start(t *testing.T) {
	tracer := telemetry.NewOTelTracer("wheelhouse-test")

	ctx, span := tracer.Start(context.Background(), "install")
	require.NotNil(t, ctx)
	require.NotNil(t, span)

	// Without a registered provider these are recorded against the global
	// no-op tracer; they must still be safe to call.
	span.SetAttribute("os", "Linux")
	span.SetAttribute("rebuilt", true)
	span.SetAttribute("wheel_count", 2)
	span.SetAttribute("ratio", 0.5)
	span.SetAttribute("wheels", []string{"a.whl"})
	span.SetAttribute("other", struct{}{})
	span.RecordError(zerr.New("build failed"))

	n, err := span.Write([]byte("log line"))
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	span.End()
	tracer.EmitPlan(ctx, []string{"resolve", "fetch", "install"})
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()

	ctx, span := tracer.Start(context.Background(), "install")
	assert.Equal(t, context.Background(), ctx)

	span.SetAttribute("os", "Linux")
	span.RecordError(zerr.New("x"))

	n, err := span.Write([]byte("ignored"))
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	span.End()
	tracer.EmitPlan(ctx, nil)
}
