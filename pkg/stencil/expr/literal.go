package expr

import (
	"fmt"
	"strings"
)

// Kind is the declared type of a Literal.
type Kind int

const (
	// KindBoolean is a true/false value.
	KindBoolean Kind = iota

	// KindString is a string value.
	KindString

	// KindArray is a list of strings.
	KindArray
)

// String returns the kind name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Literal is a typed, immutable operand value.
//
// Operators only combine literals whose kinds satisfy their contract;
// a violation produces a *TypeMismatchError, never a silent coercion.
type Literal struct {
	kind Kind
	b    bool
	s    string
	list []string
}

// Bool creates a boolean literal.
func Bool(v bool) Literal {
	return Literal{kind: KindBoolean, b: v}
}

// String creates a string literal.
func String(v string) Literal {
	return Literal{kind: KindString, s: v}
}

// Strings creates an array literal. The slice is copied.
func Strings(vs []string) Literal {
	list := make([]string, len(vs))
	copy(list, vs)
	return Literal{kind: KindArray, list: list}
}

// Kind returns the declared type of the literal.
func (l Literal) Kind() Kind {
	return l.kind
}

// AsBool returns the boolean value. Only meaningful when Kind is KindBoolean.
func (l Literal) AsBool() bool {
	return l.b
}

// AsString returns the string value. Only meaningful when Kind is KindString.
func (l Literal) AsString() string {
	return l.s
}

// AsList returns a copy of the array value. Only meaningful when Kind is KindArray.
func (l Literal) AsList() []string {
	list := make([]string, len(l.list))
	copy(list, l.list)
	return list
}

// Equal reports whether two literals have the same kind and value.
func (l Literal) Equal(other Literal) bool {
	if l.kind != other.kind {
		return false
	}
	switch l.kind {
	case KindBoolean:
		return l.b == other.b
	case KindString:
		return l.s == other.s
	case KindArray:
		if len(l.list) != len(other.list) {
			return false
		}
		for i := range l.list {
			if l.list[i] != other.list[i] {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders the literal in expression syntax, for diagnostics.
func (l Literal) String() string {
	switch l.kind {
	case KindBoolean:
		return fmt.Sprintf("%t", l.b)
	case KindString:
		return fmt.Sprintf("'%s'", l.s)
	case KindArray:
		quoted := make([]string, len(l.list))
		for i, v := range l.list {
			quoted[i] = fmt.Sprintf("'%s'", v)
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	default:
		return "<invalid>"
	}
}

// parseLiteral converts a literal token into a typed Literal.
func parseLiteral(tok Token) Literal {
	switch tok.Type {
	case TokenBoolean:
		return Bool(strings.EqualFold(tok.Value, "true"))
	case TokenString:
		return String(unquote(tok.Value))
	case TokenArray:
		return Strings(parseArrayBody(tok.Value))
	default:
		// Tokenizer guarantees only literal tokens reach here.
		panic(fmt.Sprintf("expr: not a literal token: %s", tok))
	}
}

// unquote strips the surrounding quote characters from a string token value.
func unquote(v string) string {
	return v[1 : len(v)-1]
}

// parseArrayBody splits the body of "[...]" into trimmed, unquoted elements.
// An empty body yields an empty array.
func parseArrayBody(v string) []string {
	body := strings.TrimSpace(v[1 : len(v)-1])
	if body == "" {
		return nil
	}
	parts := strings.Split(body, ",")
	elems := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if len(p) >= 2 && (p[0] == '\'' || p[0] == '"') && p[len(p)-1] == p[0] {
			p = p[1 : len(p)-1]
		}
		elems = append(elems, p)
	}
	return elems
}
