package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// setupTracingTest creates a test tracer provider with an in-memory span recorder.
func setupTracingTest(t *testing.T) (*tracetest.InMemoryExporter, func()) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
	)

	originalProvider := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)

	// Rebind the package-level tracer to the test provider.
	tracer = otel.Tracer("stencil")

	cleanup := func() {
		otel.SetTracerProvider(originalProvider)
		if err := tp.Shutdown(context.Background()); err != nil {
			t.Logf("Error shutting down tracer provider: %v", err)
		}
	}

	return exporter, cleanup
}

func TestStartPassSpan(t *testing.T) {
	exporter, cleanup := setupTracingTest(t)
	defer cleanup()

	t.Run("creates span with correct name and attributes", func(t *testing.T) {
		ctx := context.Background()
		_, span := StartPassSpan(ctx, "rest-service", "run-123")
		require.NotNil(t, span)

		span.End()

		spans := exporter.GetSpans()
		require.Len(t, spans, 1)

		s := spans[0]
		assert.Equal(t, "stencil.pass", s.Name)

		var archetype, runID string
		for _, attr := range s.Attributes {
			switch attr.Key {
			case "archetype.name":
				archetype = attr.Value.AsString()
			case "run.id":
				runID = attr.Value.AsString()
			}
		}
		assert.Equal(t, "rest-service", archetype)
		assert.Equal(t, "run-123", runID)
	})

	t.Run("returns context with span", func(t *testing.T) {
		exporter.Reset()

		ctx := context.Background()
		newCtx, span := StartPassSpan(ctx, "x", "run-456")
		assert.NotEqual(t, ctx, newCtx)

		span.End()
		require.Len(t, exporter.GetSpans(), 1)
	})
}

func TestStartStepSpan(t *testing.T) {
	exporter, cleanup := setupTracingTest(t)
	defer cleanup()

	t.Run("creates span with step name suffix", func(t *testing.T) {
		_, span := StartStepSpan(context.Background(), "basics")
		require.NotNil(t, span)

		span.End()

		spans := exporter.GetSpans()
		require.Len(t, spans, 1)
		assert.Equal(t, "stencil.step.basics", spans[0].Name)

		var stepName string
		for _, attr := range spans[0].Attributes {
			if attr.Key == "step.name" {
				stepName = attr.Value.AsString()
			}
		}
		assert.Equal(t, "basics", stepName)
	})

	t.Run("child spans have correct parent", func(t *testing.T) {
		exporter.Reset()

		ctx, passSpan := StartPassSpan(context.Background(), "x", "run-1")
		_, stepSpan := StartStepSpan(ctx, "tls")

		stepSpan.End()
		passSpan.End()

		spans := exporter.GetSpans()
		require.Len(t, spans, 2)

		// Exporter records in end order: step first, then pass.
		step, pass := spans[0], spans[1]
		assert.Equal(t, pass.SpanContext.SpanID(), step.Parent.SpanID())
		assert.Equal(t, pass.SpanContext.TraceID(), step.SpanContext.TraceID())
	})
}

func TestEndSpanWithError(t *testing.T) {
	exporter, cleanup := setupTracingTest(t)
	defer cleanup()

	t.Run("nil error sets ok status", func(t *testing.T) {
		_, span := StartPassSpan(context.Background(), "x", "run-1")
		EndSpanWithError(span, nil)

		spans := exporter.GetSpans()
		require.Len(t, spans, 1)
		assert.Equal(t, codes.Ok, spans[0].Status.Code)
	})

	t.Run("error is recorded with error status", func(t *testing.T) {
		exporter.Reset()

		_, span := StartPassSpan(context.Background(), "x", "run-2")
		EndSpanWithError(span, errors.New("guard failed"))

		spans := exporter.GetSpans()
		require.Len(t, spans, 1)
		assert.Equal(t, codes.Error, spans[0].Status.Code)
		assert.Equal(t, "guard failed", spans[0].Status.Description)
		require.NotEmpty(t, spans[0].Events)
	})

	t.Run("nil span is a no-op", func(t *testing.T) {
		EndSpanWithError(nil, errors.New("ignored"))
	})
}

func TestAddSpanEvent(t *testing.T) {
	exporter, cleanup := setupTracingTest(t)
	defer cleanup()

	t.Run("adds event to recording span", func(t *testing.T) {
		ctx, span := StartPassSpan(context.Background(), "x", "run-1")
		AddSpanEvent(ctx, "guard.evaluated", attribute.Bool("included", true))
		span.End()

		spans := exporter.GetSpans()
		require.Len(t, spans, 1)
		require.Len(t, spans[0].Events, 1)
		assert.Equal(t, "guard.evaluated", spans[0].Events[0].Name)
	})

	t.Run("no-op without a span in context", func(t *testing.T) {
		AddSpanEvent(context.Background(), "ignored")
	})
}

func TestSpanManager(t *testing.T) {
	exporter, cleanup := setupTracingTest(t)
	defer cleanup()

	mgr := NewSpanManager()

	ctx, span := mgr.StartPassSpan(context.Background(), "rest-service", "run-1")
	mgr.AddSpanEvent(ctx, "walk.started")
	mgr.EndSpanWithError(span, nil)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "stencil.pass", spans[0].Name)
	require.Len(t, spans[0].Events, 1)
}
