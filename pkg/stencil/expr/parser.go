package expr

import "fmt"

// Resolver looks up a variable by its dotted path, returning the bound
// literal and whether the variable exists. The parser never mutates the
// underlying context.
type Resolver func(name string) (Literal, bool)

// Expression is a parsed expression tree, ready for evaluation.
//
// The tree is scoped to a single evaluation: variables are resolved at
// parse time against the supplied Resolver, so a later context change
// requires re-parsing.
type Expression struct {
	source string
	root   *node
}

// node is a tree node: either a literal leaf or an operator with one
// (unary) or two (binary) children.
type node struct {
	leaf  bool
	lit   Literal
	op    Operator
	left  *node
	right *node
}

// Parse tokenizes and parses input into an expression tree.
//
// Variable tokens resolve through resolve immediately; an unknown name
// fails the parse with a *UnresolvedVariableError. Structural problems
// (empty input, unbalanced parentheses, missing operands) fail with a
// *SyntaxError. Precedence, tightest first: ! > contains > == != > && > ||;
// parenthesized groups always bind before their surroundings.
//
// Example:
//
//	e, err := expr.Parse(`${flag} == true`, func(name string) (expr.Literal, bool) {
//	    if name == "flag" {
//	        return expr.Bool(true), true
//	    }
//	    return expr.Literal{}, false
//	})
func Parse(input string, resolve Resolver) (*Expression, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, ErrEmptyExpression
	}

	p := &parser{source: input, tokens: tokens, resolve: resolve}
	root, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if tok, ok := p.peek(); ok {
		return nil, p.syntaxErrorf("unexpected %s after expression", tok)
	}
	return &Expression{source: input, root: root}, nil
}

// Source returns the raw expression string the tree was parsed from.
func (e *Expression) Source() string {
	return e.source
}

// parser climbs precedence over the token stream.
type parser struct {
	source  string
	tokens  []Token
	pos     int
	resolve Resolver
}

// parseExpr parses an expression whose operators all bind at least as
// tightly as minPrec.
func (p *parser) parseExpr(minPrec int) (*node, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		tok, ok := p.peek()
		if !ok {
			return left, nil
		}

		var op Operator
		switch tok.Type {
		case TokenEquality, TokenBinaryLogical, TokenContains:
			op, ok = lookupOperator(tok.Value)
			if !ok {
				return nil, p.syntaxErrorf("unknown operator %q", tok.Value)
			}
		default:
			return left, nil
		}

		prec := op.precedence()
		if prec < minPrec {
			return left, nil
		}
		p.next()

		// Left-associative: the right side only takes tighter operators.
		right, err := p.parseExpr(prec + 1)
		if err != nil {
			return nil, err
		}
		left = &node{op: op, left: left, right: right}
	}
}

// parsePrimary parses a literal, variable, parenthesized group, or
// prefix-negated operand.
func (p *parser) parsePrimary() (*node, error) {
	tok, ok := p.next()
	if !ok {
		return nil, p.syntaxErrorf("missing operand")
	}

	switch tok.Type {
	case TokenBoolean, TokenString, TokenArray:
		return &node{leaf: true, lit: parseLiteral(tok)}, nil

	case TokenVariable:
		name := variableName(tok.Value)
		if p.resolve == nil {
			return nil, &UnresolvedVariableError{Name: name}
		}
		lit, found := p.resolve(name)
		if !found {
			return nil, &UnresolvedVariableError{Name: name}
		}
		return &node{leaf: true, lit: lit}, nil

	case TokenUnaryLogical:
		operand, err := p.parseExpr(precedenceNot)
		if err != nil {
			return nil, err
		}
		return &node{op: OpNot, left: operand}, nil

	case TokenParenthesis:
		if tok.Value != "(" {
			return nil, p.syntaxErrorf("unbalanced parenthesis")
		}
		inner, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		closing, ok := p.next()
		if !ok || closing.Type != TokenParenthesis || closing.Value != ")" {
			return nil, p.syntaxErrorf("unbalanced parenthesis")
		}
		return inner, nil

	default:
		return nil, p.syntaxErrorf("unexpected %s", tok)
	}
}

// peek returns the next token without consuming it.
func (p *parser) peek() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.pos], true
}

// next consumes and returns the next token.
func (p *parser) next() (Token, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

// syntaxErrorf builds a *SyntaxError for the expression being parsed.
func (p *parser) syntaxErrorf(format string, args ...any) error {
	return &SyntaxError{Expression: p.source, Msg: fmt.Sprintf(format, args...)}
}
