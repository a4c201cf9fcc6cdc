package expr

import (
	"errors"
	"fmt"
)

// Sentinel errors for expression processing.
// All typed errors below unwrap to one of these for errors.Is checks.
var (
	// ErrEmptyExpression indicates the expression contained no tokens.
	ErrEmptyExpression = errors.New("empty expression")

	// ErrBadToken indicates an unrecognized character sequence.
	ErrBadToken = errors.New("unrecognized token")

	// ErrSyntax indicates a structurally invalid token sequence.
	ErrSyntax = errors.New("syntax error")

	// ErrUnresolvedVariable indicates a ${...} reference absent from the context.
	ErrUnresolvedVariable = errors.New("unresolved variable")

	// ErrTypeMismatch indicates an operator applied to incompatible literal kinds.
	ErrTypeMismatch = errors.New("operand type mismatch")
)

// TokenizeError reports an unrecognized character sequence.
// It is fatal: the whole expression evaluation is aborted.
type TokenizeError struct {
	// Expression is the full input being tokenized.
	Expression string
	// Position is the byte offset where no pattern matched.
	Position int
	// Remainder is the unconsumed input at Position.
	Remainder string
}

// Error implements the error interface.
func (e *TokenizeError) Error() string {
	return fmt.Sprintf("unrecognized token at offset %d: %q", e.Position, e.Remainder)
}

// Unwrap returns ErrBadToken for errors.Is support.
func (e *TokenizeError) Unwrap() error {
	return ErrBadToken
}

// SyntaxError reports a structurally invalid token sequence:
// unbalanced parentheses, a missing operand, or a trailing token.
type SyntaxError struct {
	// Expression is the full input being parsed.
	Expression string
	// Msg describes what the parser expected.
	Msg string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid expression %q: %s", e.Expression, e.Msg)
}

// Unwrap returns ErrSyntax for errors.Is support.
func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

// UnresolvedVariableError reports a variable reference that the supplied
// context could not resolve. There is no null or default substitution.
type UnresolvedVariableError struct {
	// Name is the dotted path of the variable.
	Name string
}

// Error implements the error interface.
func (e *UnresolvedVariableError) Error() string {
	return fmt.Sprintf("unresolved variable: %s", e.Name)
}

// Unwrap returns ErrUnresolvedVariable for errors.Is support.
func (e *UnresolvedVariableError) Unwrap() error {
	return ErrUnresolvedVariable
}

// TypeMismatchError reports an operator applied to literals whose kinds
// violate its contract. It carries the operator symbol and the offending
// operand renderings for diagnostics.
type TypeMismatchError struct {
	// Op is the operator whose contract was violated.
	Op Operator
	// Left is the left (or sole, for unary operators) operand.
	Left Literal
	// Right is the right operand. Unset for unary operators.
	Right Literal
}

// Error implements the error interface.
func (e *TypeMismatchError) Error() string {
	if e.Op == OpNot {
		return fmt.Sprintf("operator %s cannot be applied to %s (%s)",
			e.Op.Symbol(), e.Left, e.Left.Kind())
	}
	return fmt.Sprintf("operator %s cannot be applied to %s (%s) and %s (%s)",
		e.Op.Symbol(), e.Left, e.Left.Kind(), e.Right, e.Right.Kind())
}

// Unwrap returns ErrTypeMismatch for errors.Is support.
func (e *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}
