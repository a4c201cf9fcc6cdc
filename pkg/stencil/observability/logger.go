// Package observability provides production-grade observability features
// for stencil: structured logging, metrics, and distributed tracing.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds pass context to a logger.
// Returns a new logger with run_id and node fields.
//
// Example:
//
//	enriched := EnrichLogger(logger, "run-123", "security.tls")
//	enriched.Info("resolving input") // includes run_id, node
func EnrichLogger(logger *slog.Logger, runID, node string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("run_id", runID),
		slog.String("node", node),
	)
}

// LogPassStart logs the start of a scaffold-generation pass.
func LogPassStart(logger *slog.Logger, runID, archetype string) {
	if logger == nil {
		return
	}
	logger.Info("scaffold pass starting",
		slog.String("run_id", runID),
		slog.String("archetype", archetype),
	)
}

// LogPassComplete logs successful pass completion.
func LogPassComplete(logger *slog.Logger, runID string, durationMs float64, included, excluded int) {
	if logger == nil {
		return
	}
	logger.Info("scaffold pass completed",
		slog.String("run_id", runID),
		slog.Float64("duration_ms", durationMs),
		slog.Int("nodes_included", included),
		slog.Int("nodes_excluded", excluded),
	)
}

// LogPassError logs pass failure.
func LogPassError(logger *slog.Logger, runID string, err error, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Error("scaffold pass failed",
		slog.String("run_id", runID),
		slog.String("error", err.Error()),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogGuard logs a guard evaluation outcome.
func LogGuard(logger *slog.Logger, node, expression string, included bool) {
	if logger == nil {
		return
	}
	logger.Debug("guard evaluated",
		slog.String("node", node),
		slog.String("expression", expression),
		slog.Bool("included", included),
	)
}

// LogBind logs a context value bind.
func LogBind(logger *slog.Logger, path, value string) {
	if logger == nil {
		return
	}
	logger.Debug("context value bound",
		slog.String("path", path),
		slog.String("value", value),
	)
}

// LogPrompt logs an input resolution.
func LogPrompt(logger *slog.Logger, path, inputType, source string) {
	if logger == nil {
		return
	}
	logger.Debug("input resolved",
		slog.String("path", path),
		slog.String("input_type", inputType),
		slog.String("source", source),
	)
}

// LogRender logs a rendered output file.
func LogRender(logger *slog.Logger, source, target string) {
	if logger == nil {
		return
	}
	logger.Debug("file rendered",
		slog.String("source", source),
		slog.String("target", target),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Milliseconds())
	}
}
