package stencil

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/stencilframe/stencil/pkg/stencil/history"
)

// Context provides services and metadata to a scaffold-generation pass.
// It extends context.Context with the engine's collaborators.
//
// Context is immutable after creation.
type Context interface {
	context.Context

	// Logger returns the configured logger.
	// Never returns nil - defaults to slog.Default() if not configured.
	Logger() *slog.Logger

	// History returns the answer history store, or nil if not configured.
	// Callers should check for nil before using.
	History() history.Store

	// RunID returns the unique identifier for this pass.
	// Auto-generated if not configured.
	RunID() string
}

// passContext is the internal implementation of Context.
type passContext struct {
	context.Context

	logger  *slog.Logger
	history history.Store
	runID   string
}

// Logger returns the configured logger.
func (c *passContext) Logger() *slog.Logger {
	return c.logger
}

// History returns the answer history store.
func (c *passContext) History() history.Store {
	return c.history
}

// RunID returns the pass identifier.
func (c *passContext) RunID() string {
	return c.runID
}

// ContextOption configures a Context.
type ContextOption func(*passContext)

// WithLogger sets the logger for the context.
func WithLogger(logger *slog.Logger) ContextOption {
	return func(c *passContext) {
		c.logger = logger
	}
}

// WithHistory sets the answer history store for the context.
// When set, resolved answers are persisted under the run ID after a
// successful pass and can seed a later replay.
func WithHistory(store history.Store) ContextOption {
	return func(c *passContext) {
		c.history = store
	}
}

// WithRunID sets the run identifier for the context.
// If not set, a UUID is auto-generated.
func WithRunID(id string) ContextOption {
	return func(c *passContext) {
		c.runID = id
	}
}

// NewContext creates a pass context from a standard context.
//
// Example:
//
//	ctx := stencil.NewContext(context.Background(),
//	    stencil.WithLogger(myLogger),
//	    stencil.WithRunID("run-123"))
func NewContext(ctx context.Context, opts ...ContextOption) Context {
	pc := &passContext{
		Context: ctx,
		logger:  slog.Default(),
		runID:   uuid.New().String(),
	}

	for _, opt := range opts {
		opt(pc)
	}

	return pc
}
