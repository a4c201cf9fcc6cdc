package stencil

import (
	"context"
	"fmt"
	"time"

	"github.com/stencilframe/stencil/pkg/stencil/expr"
	"github.com/stencilframe/stencil/pkg/stencil/observability"
)

// nodeState tracks one node's progress through a walk.
type nodeState int

const (
	// statePending means the walk has not reached the node yet.
	statePending nodeState = iota

	// stateEvaluatingGuard means the node's guard is being evaluated.
	stateEvaluatingGuard

	// stateIncluded means the node participates in the pass.
	stateIncluded

	// stateExcluded means the guard held false; the node and its whole
	// subtree are skipped.
	stateExcluded
)

// String returns the state name for diagnostics.
func (s nodeState) String() string {
	switch s {
	case statePending:
		return "pending"
	case stateEvaluatingGuard:
		return "evaluating-guard"
	case stateIncluded:
		return "included"
	case stateExcluded:
		return "excluded"
	default:
		return "unknown"
	}
}

// walker carries the mutable state of one interpretation pass.
type walker struct {
	ctx     Context
	spanCtx context.Context
	cfg     passConfig
	scope   *Scope
	model   *Model

	answers  MapPrompter
	included int
	excluded int
}

// Interpret walks the archetype and produces the output model.
//
// The walk is a single depth-first, left-to-right pass. Each node moves
// from pending through guard evaluation to included or excluded; an
// excluded node's subtree is never visited, and a guard that fails to
// evaluate aborts the whole pass with a *GuardError. Input and preset
// nodes bind values into the scope as they are included, so a guard sees
// exactly the values bound by nodes walked before it.
//
// Inputs resolve in precedence order: supplied answers first, then
// declared defaults when WithDefaults is set, then the prompter, then
// the declared default as a final fallback. An input none of those can
// resolve fails the pass with ErrUnanswered.
//
// On success, resolved answers are persisted to the context's history
// store (when one is configured) under the run ID.
func (a *Archetype) Interpret(ctx Context, opts ...PassOption) (*Model, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}

	cfg := defaultPassConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("archetype %q: %w", a.name, err)
	}

	logger := ctx.Logger()
	observability.LogPassStart(logger, ctx.RunID(), a.name)
	done := observability.TimedOperation()
	start := time.Now()

	spanCtx, span := cfg.spans.StartPassSpan(ctx, a.name, ctx.RunID())

	w := &walker{
		ctx:     ctx,
		spanCtx: spanCtx,
		cfg:     cfg,
		scope:   NewScope(),
		model:   &Model{Archetype: a.name, RunID: ctx.RunID()},
	}
	w.answers = MapPrompter{Answers: cfg.answers}

	var walkErr error
	for _, n := range a.root {
		if walkErr = w.walk(n); walkErr != nil {
			break
		}
	}

	cfg.spans.EndSpanWithError(span, walkErr)

	if walkErr != nil {
		observability.LogPassError(logger, ctx.RunID(), walkErr, done())
		cfg.metrics.RecordPass(ctx, false, time.Since(start))
		return nil, walkErr
	}

	w.model.Values = w.scope.Snapshot()

	if store := ctx.History(); store != nil {
		data, err := marshalAnswers(w.model.Values)
		if err == nil {
			err = store.Save(ctx.RunID(), data)
		}
		if err != nil {
			logger.Warn("answer history not saved",
				"run_id", ctx.RunID(), "error", err.Error())
		}
	}

	observability.LogPassComplete(logger, ctx.RunID(), done(), w.included, w.excluded)
	cfg.metrics.RecordPass(ctx, true, time.Since(start))
	return w.model, nil
}

// walk visits one node and, if it is included, its children.
// The node's final state is logged at debug level; on an aborting error
// it records how far the node got.
func (w *walker) walk(n *Node) error {
	state := statePending
	defer func() {
		w.ctx.Logger().Debug("node visited",
			"node", describeNode(n), "state", state.String())
	}()

	if n.If != "" {
		state = stateEvaluatingGuard
		included, guardErr := w.evalGuard(n)
		if guardErr != nil {
			return guardErr
		}
		w.cfg.metrics.RecordGuard(w.spanCtx, included)
		observability.LogGuard(w.ctx.Logger(), describeNode(n), n.If, included)
		if !included {
			state = stateExcluded
			w.excluded++
			return nil
		}
	}

	state = stateIncluded
	w.included++

	if err := w.apply(n); err != nil {
		return err
	}

	// Step nodes walk their children inside their span in apply().
	if n.Kind == KindStep {
		return nil
	}
	return w.walkChildren(n, w.spanCtx)
}

// walkChildren visits a node's children with the given span context.
func (w *walker) walkChildren(n *Node, spanCtx context.Context) error {
	prev := w.spanCtx
	w.spanCtx = spanCtx
	defer func() { w.spanCtx = prev }()

	for _, child := range n.Children {
		if err := w.walk(child); err != nil {
			return err
		}
	}
	return nil
}

// evalGuard evaluates a node's guard against the accumulated scope.
func (w *walker) evalGuard(n *Node) (bool, error) {
	parsed, err := expr.Parse(n.If, w.scope.Resolver())
	if err != nil {
		return false, &GuardError{Node: describeNode(n), Expression: n.If, Err: err}
	}
	result, err := parsed.Eval()
	if err != nil {
		return false, &GuardError{Node: describeNode(n), Expression: n.If, Err: err}
	}
	return result, nil
}

// apply performs an included node's effect on the pass.
func (w *walker) apply(n *Node) error {
	switch n.Kind {
	case KindStep:
		stepCtx, span := w.cfg.spans.StartStepSpan(w.spanCtx, n.Name)
		err := w.walkChildren(n, stepCtx)
		w.cfg.spans.EndSpanWithError(span, err)
		return err

	case KindInput:
		value, source, err := w.resolveInput(n.Path, *n.Input)
		if err != nil {
			return err
		}
		w.cfg.metrics.RecordPrompt(w.spanCtx, n.Input.Type.String(), source)
		observability.LogPrompt(w.ctx.Logger(), n.Path, n.Input.Type.String(), source)
		return w.bind(n.Path, value)

	case KindPreset:
		return w.bind(n.Path, *n.Value)

	case KindOutput:
		w.model.merge(n.Output)
		return nil

	default:
		return fmt.Errorf("node %s: unknown kind %d", describeNode(n), n.Kind)
	}
}

// resolveInput resolves an input's value and reports where it came from.
func (w *walker) resolveInput(path string, spec InputSpec) (expr.Literal, string, error) {
	if _, ok := w.answers.Answers[path]; ok {
		value, err := resolveAnswer(path, spec, w.answers)
		return value, "answers", err
	}

	if w.cfg.useDefaults && spec.Default != nil {
		return *spec.Default, "default", nil
	}

	if w.cfg.prompter != nil {
		value, err := resolveAnswer(path, spec, w.cfg.prompter)
		return value, "prompter", err
	}

	if spec.Default != nil {
		return *spec.Default, "default", nil
	}

	return expr.Literal{}, "", &InputError{Path: path, Err: ErrUnanswered}
}

// bind adds a resolved value to the scope.
func (w *walker) bind(path string, value expr.Literal) error {
	if err := w.scope.Set(path, value); err != nil {
		return err
	}
	observability.LogBind(w.ctx.Logger(), path, value.String())
	return nil
}
