package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records stencil metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordPass records a scaffold pass completion.
	RecordPass(ctx context.Context, success bool, duration time.Duration)

	// RecordGuard records a guard evaluation and whether the node was included.
	RecordGuard(ctx context.Context, included bool)

	// RecordPrompt records an input resolution by source ("answers",
	// "default", "prompter", "history").
	RecordPrompt(ctx context.Context, inputType, source string)

	// RecordRender records a rendered output file and its size.
	RecordRender(ctx context.Context, sizeBytes int64)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	passes      metric.Int64Counter
	passLatency metric.Float64Histogram
	guards      metric.Int64Counter
	prompts     metric.Int64Counter
	renders     metric.Int64Counter
	renderSize  metric.Int64Histogram
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("stencil")

	passes, err := meter.Int64Counter("stencil.pass.count",
		metric.WithDescription("Number of scaffold passes"),
	)
	if err != nil {
		return nil, err
	}

	passLatency, err := meter.Float64Histogram("stencil.pass.latency_ms",
		metric.WithDescription("Scaffold pass latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	guards, err := meter.Int64Counter("stencil.guard.evaluations",
		metric.WithDescription("Number of guard evaluations"),
	)
	if err != nil {
		return nil, err
	}

	prompts, err := meter.Int64Counter("stencil.input.resolutions",
		metric.WithDescription("Number of input resolutions"),
	)
	if err != nil {
		return nil, err
	}

	renders, err := meter.Int64Counter("stencil.render.files",
		metric.WithDescription("Number of rendered output files"),
	)
	if err != nil {
		return nil, err
	}

	renderSize, err := meter.Int64Histogram("stencil.render.size_bytes",
		metric.WithDescription("Rendered file size in bytes"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		passes:      passes,
		passLatency: passLatency,
		guards:      guards,
		prompts:     prompts,
		renders:     renders,
		renderSize:  renderSize,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordPass records a scaffold pass completion.
func (m *otelMetrics) RecordPass(ctx context.Context, success bool, duration time.Duration) {
	attrs := []attribute.KeyValue{
		attribute.Bool("success", success),
	}
	m.passes.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.passLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
}

// RecordGuard records a guard evaluation.
func (m *otelMetrics) RecordGuard(ctx context.Context, included bool) {
	m.guards.Add(ctx, 1, metric.WithAttributes(
		attribute.Bool("included", included),
	))
}

// RecordPrompt records an input resolution.
func (m *otelMetrics) RecordPrompt(ctx context.Context, inputType, source string) {
	m.prompts.Add(ctx, 1, metric.WithAttributes(
		attribute.String("input_type", inputType),
		attribute.String("source", source),
	))
}

// RecordRender records a rendered output file.
func (m *otelMetrics) RecordRender(ctx context.Context, sizeBytes int64) {
	m.renders.Add(ctx, 1)
	m.renderSize.Record(ctx, sizeBytes)
}
