package observability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// setupMetricsTest installs a manual-reader meter provider and returns
// the reader plus a cleanup restoring the original provider.
func setupMetricsTest(t *testing.T) (*sdkmetric.ManualReader, func()) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	originalProvider := otel.GetMeterProvider()
	otel.SetMeterProvider(provider)

	cleanup := func() {
		otel.SetMeterProvider(originalProvider)
		if err := provider.Shutdown(context.Background()); err != nil {
			t.Logf("Error shutting down meter provider: %v", err)
		}
	}

	return reader, cleanup
}

// collectMetrics collects all metrics from the reader.
func collectMetrics(t *testing.T, reader *sdkmetric.ManualReader) *metricdata.ResourceMetrics {
	var rm metricdata.ResourceMetrics
	err := reader.Collect(context.Background(), &rm)
	require.NoError(t, err)
	return &rm
}

// findMetric finds a metric by name in the collected data.
func findMetric(rm *metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}

func TestNewMetricsRecorder(t *testing.T) {
	_, cleanup := setupMetricsTest(t)
	defer cleanup()

	recorder := NewMetricsRecorder()
	require.NotNil(t, recorder)
}

func TestRecordPass(t *testing.T) {
	reader, cleanup := setupMetricsTest(t)
	defer cleanup()

	m, err := newOtelMetrics()
	require.NoError(t, err)

	ctx := context.Background()
	m.RecordPass(ctx, true, 120*time.Millisecond)
	m.RecordPass(ctx, false, 40*time.Millisecond)

	rm := collectMetrics(t, reader)

	passes := findMetric(rm, "stencil.pass.count")
	require.NotNil(t, passes, "pass counter not recorded")
	sum, ok := passes.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}
	assert.Equal(t, int64(2), total)

	latency := findMetric(rm, "stencil.pass.latency_ms")
	require.NotNil(t, latency, "pass latency not recorded")
}

func TestRecordGuard(t *testing.T) {
	reader, cleanup := setupMetricsTest(t)
	defer cleanup()

	m, err := newOtelMetrics()
	require.NoError(t, err)

	ctx := context.Background()
	m.RecordGuard(ctx, true)
	m.RecordGuard(ctx, true)
	m.RecordGuard(ctx, false)

	rm := collectMetrics(t, reader)

	guards := findMetric(rm, "stencil.guard.evaluations")
	require.NotNil(t, guards)
	sum, ok := guards.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}
	assert.Equal(t, int64(3), total)
	assert.Len(t, sum.DataPoints, 2, "included and excluded series")
}

func TestRecordPrompt(t *testing.T) {
	reader, cleanup := setupMetricsTest(t)
	defer cleanup()

	m, err := newOtelMetrics()
	require.NoError(t, err)

	ctx := context.Background()
	m.RecordPrompt(ctx, "boolean", "answers")
	m.RecordPrompt(ctx, "text", "prompter")

	rm := collectMetrics(t, reader)

	prompts := findMetric(rm, "stencil.input.resolutions")
	require.NotNil(t, prompts)
	sum, ok := prompts.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	assert.Len(t, sum.DataPoints, 2)
}

func TestRecordRender(t *testing.T) {
	reader, cleanup := setupMetricsTest(t)
	defer cleanup()

	m, err := newOtelMetrics()
	require.NoError(t, err)

	ctx := context.Background()
	m.RecordRender(ctx, 1024)
	m.RecordRender(ctx, 2048)

	rm := collectMetrics(t, reader)

	renders := findMetric(rm, "stencil.render.files")
	require.NotNil(t, renders)

	sizes := findMetric(rm, "stencil.render.size_bytes")
	require.NotNil(t, sizes)
	hist, ok := sizes.Data.(metricdata.Histogram[int64])
	require.True(t, ok)
	require.Len(t, hist.DataPoints, 1)
	assert.Equal(t, int64(3072), hist.DataPoints[0].Sum)
}
