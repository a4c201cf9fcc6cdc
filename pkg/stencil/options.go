package stencil

import (
	"github.com/stencilframe/stencil/pkg/stencil/observability"
)

// passConfig holds configuration for one interpretation pass.
type passConfig struct {
	prompter    Prompter
	answers     map[string]any
	useDefaults bool

	metrics        observability.MetricsRecorder
	spans          observability.SpanManager
	tracingEnabled bool
}

// defaultPassConfig returns the default pass configuration.
func defaultPassConfig() passConfig {
	return passConfig{
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
}

// PassOption configures interpretation behavior.
type PassOption func(*passConfig)

// WithPrompter sets the prompter used to resolve inputs interactively.
// Without a prompter, inputs resolve only from supplied answers or
// declared defaults.
//
// Example:
//
//	model, err := arch.Interpret(ctx, stencil.WithPrompter(stencil.NewTerminalPrompter()))
func WithPrompter(p Prompter) PassOption {
	return func(c *passConfig) {
		c.prompter = p
	}
}

// WithAnswers supplies pre-resolved answers keyed by context path.
// Answers are consulted before the prompter, so a partially-answered
// pass prompts only for what is missing.
//
// Accepted value shapes match MapPrompter: bool or "true"/"false" for
// boolean inputs, string for text and enum inputs, []string or a
// comma-separated string for list inputs.
func WithAnswers(answers map[string]any) PassOption {
	return func(c *passConfig) {
		if len(answers) == 0 {
			return
		}
		if c.answers == nil {
			c.answers = make(map[string]any, len(answers))
		}
		for k, v := range answers {
			c.answers[k] = v
		}
	}
}

// WithDefaults makes unanswered inputs resolve from their declared
// defaults without prompting. Inputs with neither an answer nor a
// default still fail the pass.
func WithDefaults() PassOption {
	return func(c *passConfig) {
		c.useDefaults = true
	}
}

// WithMetrics sets the metrics recorder for the pass.
// Default: no-op.
func WithMetrics(m observability.MetricsRecorder) PassOption {
	return func(c *passConfig) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithTracing enables OTel span creation for the pass and its steps.
// Configure the global tracer provider before enabling.
func WithTracing() PassOption {
	return func(c *passConfig) {
		c.tracingEnabled = true
		c.spans = observability.NewSpanManager()
	}
}
