package stencil

import (
	"sort"

	"github.com/stencilframe/stencil/pkg/stencil/expr"
)

// Scope is the accumulated set of resolved context values available to
// guard evaluations, keyed by dotted path.
//
// Values are immutable once set: the walk resolves each path exactly
// once, and a second bind to the same path is a programming error in the
// descriptor. The scope is owned by the interpreter; guards read it
// through a Resolver and never mutate it.
type Scope struct {
	values map[string]expr.Literal
}

// NewScope creates an empty scope.
func NewScope() *Scope {
	return &Scope{values: make(map[string]expr.Literal)}
}

// Set binds path to value. Returns ErrDuplicatePath if path is already bound.
func (s *Scope) Set(path string, value expr.Literal) error {
	if _, exists := s.values[path]; exists {
		return &BindError{Path: path, Err: ErrDuplicatePath}
	}
	s.values[path] = value
	return nil
}

// Get returns the value bound to path and whether it exists.
func (s *Scope) Get(path string) (expr.Literal, bool) {
	v, ok := s.values[path]
	return v, ok
}

// Len returns the number of bound paths.
func (s *Scope) Len() int {
	return len(s.values)
}

// Resolver returns a read-only view for the expression parser.
func (s *Scope) Resolver() expr.Resolver {
	return func(name string) (expr.Literal, bool) {
		return s.Get(name)
	}
}

// Paths returns all bound paths in sorted order.
func (s *Scope) Paths() []string {
	paths := make([]string, 0, len(s.values))
	for p := range s.values {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Snapshot returns a copy of the bound values.
func (s *Scope) Snapshot() map[string]expr.Literal {
	out := make(map[string]expr.Literal, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}
