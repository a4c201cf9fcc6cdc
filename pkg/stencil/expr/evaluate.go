package expr

// Eval evaluates the tree bottom-up to a single boolean.
//
// Children evaluate before their operator (post-order); the first error
// in any subtree aborts the whole evaluation, never a partial result.
// A top-level non-boolean literal is a type error: guard expressions
// must fold to a boolean.
func (e *Expression) Eval() (bool, error) {
	lit, err := evalNode(e.root)
	if err != nil {
		return false, err
	}
	if lit.Kind() != KindBoolean {
		return false, &SyntaxError{
			Expression: e.source,
			Msg:        "expression folds to " + lit.Kind().String() + ", expected boolean",
		}
	}
	return lit.AsBool(), nil
}

// evalNode folds one subtree to a literal.
func evalNode(n *node) (Literal, error) {
	if n.leaf {
		return n.lit, nil
	}

	left, err := evalNode(n.left)
	if err != nil {
		return Literal{}, err
	}

	if n.op == OpNot {
		return n.op.applyUnary(left)
	}

	// Both operands are evaluated before the operator runs; && and ||
	// are strict, not short-circuiting.
	right, err := evalNode(n.right)
	if err != nil {
		return Literal{}, err
	}
	return n.op.apply(left, right)
}

// Eval parses and evaluates input against vars in one call.
//
// Example:
//
//	ok, err := expr.Eval(`${flag} == true`, map[string]expr.Literal{
//	    "flag": expr.Bool(true),
//	})
func Eval(input string, vars map[string]Literal) (bool, error) {
	e, err := Parse(input, MapResolver(vars))
	if err != nil {
		return false, err
	}
	return e.Eval()
}

// MapResolver adapts a plain map into a Resolver.
// A nil map resolves nothing.
func MapResolver(vars map[string]Literal) Resolver {
	return func(name string) (Literal, bool) {
		lit, ok := vars[name]
		return lit, ok
	}
}
