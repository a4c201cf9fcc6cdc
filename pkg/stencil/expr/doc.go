/*
Package expr implements the guard expression language for scaffold
descriptors.

# Overview

expr provides the pipeline that turns a raw guard string into a boolean:
an ordered-regex tokenizer, a precedence-climbing parser that resolves
${dotted.path} variables against a read-only context, and a post-order
evaluator over typed literals. All three stages are pure functions over
immutable inputs; each evaluation is independent and safe to run
concurrently with others.

# Expression Syntax

	<expr>  := <expr> '||' <expr>
	         | <expr> '&&' <expr>
	         | <expr> '==' <expr> | <expr> '!=' <expr>
	         | <expr> 'contains' <expr>
	         | '!' <expr>
	         | '(' <expr> ')'
	         | <value>
	<value> := true | false | 'string' | "string" | ["a", "b"] | ${dotted.path}

There are no numeric types, no arithmetic, and no string concatenation.

# Precedence

Higher binds tighter:

	!           13
	contains     9
	==  !=       8
	&&           4
	||           3

So `true || false && false` is `true || (false && false)`, which is true.

# Typing

Literals carry one of three kinds: boolean, string, or array (of strings).
Operators enforce their operand kinds strictly:

	==  !=      both operands the same kind
	&&  ||      both operands boolean
	contains    array on the left, string on the right (exact element match)
	!           boolean operand

A violation returns a *TypeMismatchError carrying the operator symbol and
both operand renderings. Nothing is ever coerced.

Because operands are fully-evaluated literals with no side effects, &&
and || are strict rather than short-circuiting. This is intentional.

# Limitations

Array and string literal patterns are greedy but bounded: nested brackets
inside arrays and nested quotes inside strings are not supported.

# Errors

Failures surface as typed error values, never panics:

  - *TokenizeError (errors.Is ErrBadToken): unrecognized input
  - *SyntaxError (ErrSyntax): unbalanced parens, missing operand
  - *UnresolvedVariableError (ErrUnresolvedVariable): unknown ${path}
  - *TypeMismatchError (ErrTypeMismatch): operator contract violation

All are fatal for the expression: there is no recovery or partial result.

# Examples

	vars := map[string]expr.Literal{
	    "app.kind":  expr.String("service"),
	    "features":  expr.Strings([]string{"tls", "metrics"}),
	}
	ok, _ := expr.Eval(`${app.kind} == 'service'`, vars)            // true
	ok, _ = expr.Eval(`${features} contains 'tls'`, vars)           // true
	ok, _ = expr.Eval(`!(${features} contains 'tracing')`, vars)    // true
*/
package expr
