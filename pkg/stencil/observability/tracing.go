package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer is the stencil tracer instance.
// Uses the global OTel tracer provider.
var tracer = otel.Tracer("stencil")

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartPassSpan starts a span for the entire scaffold pass.
	// Returns the context with span and the span itself.
	StartPassSpan(ctx context.Context, archetype, runID string) (context.Context, trace.Span)

	// StartStepSpan starts a span for one step of the walk.
	// The step span should be a child of the pass span.
	StartStepSpan(ctx context.Context, step string) (context.Context, trace.Span)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)

	// AddSpanEvent adds an event to the current span in context.
	AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartPassSpan starts a span for the entire scaffold pass.
func (m *otelSpanManager) StartPassSpan(ctx context.Context, archetype, runID string) (context.Context, trace.Span) {
	return StartPassSpan(ctx, archetype, runID)
}

// StartStepSpan starts a span for one step of the walk.
func (m *otelSpanManager) StartStepSpan(ctx context.Context, step string) (context.Context, trace.Span) {
	return StartStepSpan(ctx, step)
}

// EndSpanWithError completes a span, optionally recording an error.
func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	EndSpanWithError(span, err)
}

// AddSpanEvent adds an event to the current span.
func (m *otelSpanManager) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	AddSpanEvent(ctx, name, attrs...)
}

// Convenience functions that operate on the global tracer.
// These are useful for simple cases where you don't need the interface.

// StartPassSpan starts a span for the entire scaffold pass.
// Uses the global OTel tracer.
func StartPassSpan(ctx context.Context, archetype, runID string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "stencil.pass",
		trace.WithAttributes(
			attribute.String("archetype.name", archetype),
			attribute.String("run.id", runID),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartStepSpan starts a span for one step of the walk.
// Uses the global OTel tracer.
func StartStepSpan(ctx context.Context, step string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "stencil.step."+step,
		trace.WithAttributes(
			attribute.String("step.name", step),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// AddSpanEvent adds an event to the current span in context.
func AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
