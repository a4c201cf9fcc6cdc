package expr

import (
	"fmt"
	"regexp"
)

// TokenType identifies the lexical class of a token.
type TokenType int

const (
	// TokenSkip matches whitespace between tokens. Skip tokens are
	// consumed during tokenization and never appear in the output.
	TokenSkip TokenType = iota

	// TokenArray is a bracketed list of quoted strings: ["a", "b"].
	// Nested brackets are not supported.
	TokenArray

	// TokenBoolean is a true/false literal, case-insensitive.
	TokenBoolean

	// TokenString is a single- or double-quoted string literal.
	// Nested quotes are not supported.
	TokenString

	// TokenVariable is a ${dotted.path} reference into the context.
	TokenVariable

	// TokenEquality is == or !=.
	TokenEquality

	// TokenBinaryLogical is && or ||.
	TokenBinaryLogical

	// TokenUnaryLogical is the prefix !.
	TokenUnaryLogical

	// TokenContains is the contains keyword.
	TokenContains

	// TokenParenthesis is ( or ).
	TokenParenthesis
)

// tokenPattern pairs a token type with its anchored pattern.
// Patterns are tried in declaration order against the unconsumed prefix
// of the input; the first match wins. Anchoring (^) guarantees strict
// left-to-right tokenization with no backtracking.
type tokenPattern struct {
	typ TokenType
	re  *regexp.Regexp
}

// tokenPatterns is the ordered, immutable match table.
// Order matters: TokenEquality must precede TokenUnaryLogical so that
// "!=" is not split into "!" and "=".
var tokenPatterns = []tokenPattern{
	{TokenSkip, regexp.MustCompile(`^\s+`)},
	{TokenArray, regexp.MustCompile(`^\[[^\]\[]*\]`)},
	{TokenBoolean, regexp.MustCompile(`^(?i:true|false)`)},
	{TokenString, regexp.MustCompile(`^(?:'[^']*'|"[^"]*")`)},
	{TokenVariable, regexp.MustCompile(`^\$\{([\w.-]+)\}`)},
	{TokenEquality, regexp.MustCompile(`^(?:==|!=)`)},
	{TokenBinaryLogical, regexp.MustCompile(`^(?:&&|\|\|)`)},
	{TokenUnaryLogical, regexp.MustCompile(`^!`)},
	{TokenContains, regexp.MustCompile(`^contains`)},
	{TokenParenthesis, regexp.MustCompile(`^[()]`)},
}

// Token is an immutable (type, value) pair produced by Tokenize.
// Value holds the exact matched text, quotes and braces included.
type Token struct {
	Type  TokenType
	Value string
}

// String returns a human-readable description of the token.
func (t Token) String() string {
	return fmt.Sprintf("%s %q", t.Type.name(), t.Value)
}

// name returns the token type name for diagnostics.
func (t TokenType) name() string {
	switch t {
	case TokenSkip:
		return "whitespace"
	case TokenArray:
		return "array"
	case TokenBoolean:
		return "boolean"
	case TokenString:
		return "string"
	case TokenVariable:
		return "variable"
	case TokenEquality:
		return "equality operator"
	case TokenBinaryLogical:
		return "logical operator"
	case TokenUnaryLogical:
		return "unary operator"
	case TokenContains:
		return "contains operator"
	case TokenParenthesis:
		return "parenthesis"
	default:
		return "unknown"
	}
}

// Tokenize splits a raw expression string into tokens.
//
// Each token type's pattern is tried in a fixed priority order against the
// unconsumed prefix; whitespace matches are skipped. Tokenization fails with
// a *TokenizeError when no pattern matches the remaining non-empty input.
//
// Example:
//
//	tokens, err := expr.Tokenize(`${security.tls} == true`)
//	// [variable "${security.tls}", equality operator "==", boolean "true"]
func Tokenize(input string) ([]Token, error) {
	var tokens []Token
	pos := 0

	for pos < len(input) {
		rest := input[pos:]
		matched := false
		for _, tp := range tokenPatterns {
			loc := tp.re.FindStringIndex(rest)
			if loc == nil {
				continue
			}
			if tp.typ != TokenSkip {
				tokens = append(tokens, Token{Type: tp.typ, Value: rest[:loc[1]]})
			}
			pos += loc[1]
			matched = true
			break
		}
		if !matched {
			return nil, &TokenizeError{Expression: input, Position: pos, Remainder: rest}
		}
	}

	return tokens, nil
}

// variableName extracts the dotted path from a variable token value,
// i.e. "${a.b}" becomes "a.b".
func variableName(value string) string {
	return value[2 : len(value)-1]
}
