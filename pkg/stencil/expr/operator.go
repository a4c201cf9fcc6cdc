package expr

// Operator is an operator of the guard expression language.
//
// Operators are a closed set; lookupOperator is the only construction
// path besides the prefix OpNot, mirroring the fixed grammar.
type Operator int

const (
	// OpEqual is the binary == operator.
	OpEqual Operator = iota

	// OpNotEqual is the binary != operator.
	OpNotEqual

	// OpAnd is the binary && operator.
	OpAnd

	// OpOr is the binary || operator.
	OpOr

	// OpContains is the binary contains operator (array contains string).
	OpContains

	// OpNot is the prefix ! operator.
	OpNot
)

// Operator precedence, higher binds tighter.
const (
	precedenceOr       = 3
	precedenceAnd      = 4
	precedenceEquality = 8
	precedenceContains = 9
	precedenceNot      = 13
)

// operatorSymbols is the immutable symbol table, built once and
// read-only thereafter.
var operatorSymbols = map[string]Operator{
	"==":       OpEqual,
	"!=":       OpNotEqual,
	"&&":       OpAnd,
	"||":       OpOr,
	"contains": OpContains,
	"!":        OpNot,
}

// lookupOperator resolves a token value to its operator.
func lookupOperator(symbol string) (Operator, bool) {
	op, ok := operatorSymbols[symbol]
	return op, ok
}

// Symbol returns the canonical textual form of the operator.
func (op Operator) Symbol() string {
	switch op {
	case OpEqual:
		return "=="
	case OpNotEqual:
		return "!="
	case OpAnd:
		return "&&"
	case OpOr:
		return "||"
	case OpContains:
		return "contains"
	case OpNot:
		return "!"
	default:
		return "?"
	}
}

// precedence returns the binding strength of the operator.
func (op Operator) precedence() int {
	switch op {
	case OpOr:
		return precedenceOr
	case OpAnd:
		return precedenceAnd
	case OpEqual, OpNotEqual:
		return precedenceEquality
	case OpContains:
		return precedenceContains
	case OpNot:
		return precedenceNot
	default:
		return 0
	}
}

// apply evaluates a binary operator over two fully-evaluated literals.
//
// Both operands are already values by the time the operator runs, so &&
// and || are strict rather than short-circuiting; literals have no side
// effects, so the distinction is unobservable.
func (op Operator) apply(left, right Literal) (Literal, error) {
	switch op {
	case OpEqual, OpNotEqual:
		if left.Kind() != right.Kind() {
			return Literal{}, &TypeMismatchError{Op: op, Left: left, Right: right}
		}
		eq := left.Equal(right)
		if op == OpNotEqual {
			eq = !eq
		}
		return Bool(eq), nil

	case OpAnd, OpOr:
		if left.Kind() != right.Kind() || left.Kind() != KindBoolean {
			return Literal{}, &TypeMismatchError{Op: op, Left: left, Right: right}
		}
		if op == OpAnd {
			return Bool(left.AsBool() && right.AsBool()), nil
		}
		return Bool(left.AsBool() || right.AsBool()), nil

	case OpContains:
		if left.Kind() != KindArray || right.Kind() != KindString {
			return Literal{}, &TypeMismatchError{Op: op, Left: left, Right: right}
		}
		for _, v := range left.list {
			if v == right.AsString() {
				return Bool(true), nil
			}
		}
		return Bool(false), nil

	default:
		return Literal{}, &TypeMismatchError{Op: op, Left: left, Right: right}
	}
}

// applyUnary evaluates the prefix ! operator over a boolean literal.
func (op Operator) applyUnary(operand Literal) (Literal, error) {
	if op != OpNot || operand.Kind() != KindBoolean {
		return Literal{}, &TypeMismatchError{Op: op, Left: operand}
	}
	return Bool(!operand.AsBool()), nil
}
