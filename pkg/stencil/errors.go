package stencil

import (
	"errors"
	"fmt"
)

// Sentinel errors for archetype validation.
var (
	// ErrNoName indicates the archetype has no name.
	ErrNoName = errors.New("archetype name not set")

	// ErrDuplicatePath indicates two nodes bind the same context path.
	ErrDuplicatePath = errors.New("context path already bound")

	// ErrNoOptions indicates an enum or list input without options.
	ErrNoOptions = errors.New("input has no options")

	// ErrBadDefault indicates an input default outside its options or
	// of the wrong type.
	ErrBadDefault = errors.New("input default is not a valid answer")

	// ErrBadGuard indicates a guard expression that does not tokenize.
	ErrBadGuard = errors.New("guard expression does not tokenize")

	// ErrMissingPayload indicates a node without the payload its kind requires.
	ErrMissingPayload = errors.New("node payload missing for kind")
)

// Sentinel errors for interpretation.
var (
	// ErrNilContext indicates Interpret() was called with a nil context.
	ErrNilContext = errors.New("context cannot be nil")

	// ErrUnanswered indicates an input that no answer set, prompter, or
	// default could resolve.
	ErrUnanswered = errors.New("input not answered")

	// ErrInvalidAnswer indicates an answer outside the input's contract
	// (not among the options, or of the wrong type).
	ErrInvalidAnswer = errors.New("invalid answer")
)

// GuardError wraps a guard expression failure with the node it gates.
// Any guard failure aborts the whole pass; no partial model is produced.
type GuardError struct {
	// Node describes the guarded node (step name or bound path).
	Node string
	// Expression is the guard string that failed.
	Expression string
	// Err is the underlying expression error.
	Err error
}

// Error implements the error interface.
func (e *GuardError) Error() string {
	return fmt.Sprintf("guard %q on %s: %v", e.Expression, e.Node, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *GuardError) Unwrap() error {
	return e.Err
}

// InputError wraps an answer resolution failure with the input's path.
type InputError struct {
	// Path is the context path the input binds.
	Path string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *InputError) Error() string {
	return fmt.Sprintf("input %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *InputError) Unwrap() error {
	return e.Err
}

// BindError wraps a scope bind failure with the offending path.
type BindError struct {
	// Path is the context path that could not be bound.
	Path string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *BindError) Error() string {
	return fmt.Sprintf("bind %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *BindError) Unwrap() error {
	return e.Err
}

// RenderError wraps a file materialization failure.
type RenderError struct {
	// Source is the scaffold-relative source path.
	Source string
	// Target is the target-relative output path.
	Target string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s -> %s: %v", e.Source, e.Target, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *RenderError) Unwrap() error {
	return e.Err
}
