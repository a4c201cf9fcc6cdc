package stencil

import (
	"errors"
	"fmt"

	"github.com/stencilframe/stencil/pkg/stencil/expr"
)

// Archetype is a named, versioned scaffold description: a tree of nodes
// that a pass walks to produce a Model.
//
// An archetype is built once (usually by the descriptor package) and can
// be interpreted any number of times; walks never mutate it.
type Archetype struct {
	name    string
	version string
	root    []*Node
}

// NewArchetype creates an archetype from top-level nodes.
//
// Example:
//
//	arch := stencil.NewArchetype("rest-service", "1.0",
//	    stencil.Input("app.name", stencil.InputSpec{Type: stencil.InputText, Prompt: "Application name?"}),
//	    stencil.Output(spec),
//	)
func NewArchetype(name, version string, nodes ...*Node) *Archetype {
	return &Archetype{name: name, version: version, root: nodes}
}

// Name returns the archetype name.
func (a *Archetype) Name() string {
	return a.name
}

// Version returns the archetype version, possibly empty.
func (a *Archetype) Version() string {
	return a.version
}

// Nodes returns the top-level nodes.
func (a *Archetype) Nodes() []*Node {
	return a.root
}

// Validate checks the archetype for structural problems and returns all
// of them joined, or nil if the archetype is well-formed.
//
// Checks:
//   - the archetype has a name
//   - every node carries the payload its kind requires
//   - enum and list inputs declare at least one option
//   - declared defaults match the input type and its options
//   - every guard expression tokenizes
//
// Duplicate context paths are not checked here: branches excluded by
// guards may legitimately bind the same path, so duplicates surface at
// walk time instead.
func (a *Archetype) Validate() error {
	var errs []error

	if a.name == "" {
		errs = append(errs, ErrNoName)
	}

	for _, n := range a.root {
		errs = append(errs, validateNode(n)...)
	}

	return errors.Join(errs...)
}

// validateNode checks one node and its subtree.
func validateNode(n *Node) []error {
	var errs []error

	switch n.Kind {
	case KindStep:
		if n.Name == "" {
			errs = append(errs, fmt.Errorf("step: %w: name not set", ErrMissingPayload))
		}
	case KindInput:
		if n.Input == nil || n.Path == "" {
			errs = append(errs, fmt.Errorf("input %q: %w", n.Path, ErrMissingPayload))
		} else {
			errs = append(errs, validateInput(n.Path, n.Input)...)
		}
	case KindPreset:
		if n.Value == nil || n.Path == "" {
			errs = append(errs, fmt.Errorf("preset %q: %w", n.Path, ErrMissingPayload))
		}
	case KindOutput:
		if n.Output == nil {
			errs = append(errs, fmt.Errorf("output: %w", ErrMissingPayload))
		}
	default:
		errs = append(errs, fmt.Errorf("node %s: unknown kind %d", describeNode(n), n.Kind))
	}

	if n.If != "" {
		if _, err := expr.Tokenize(n.If); err != nil {
			errs = append(errs, fmt.Errorf("node %s: %w: %v", describeNode(n), ErrBadGuard, err))
		}
	}

	for _, child := range n.Children {
		errs = append(errs, validateNode(child)...)
	}

	return errs
}

// validateInput checks an input spec's options and default.
func validateInput(path string, spec *InputSpec) []error {
	var errs []error

	switch spec.Type {
	case InputEnum, InputList:
		if len(spec.Options) == 0 {
			errs = append(errs, fmt.Errorf("input %s: %w", path, ErrNoOptions))
		}
	}

	if spec.Default == nil {
		return errs
	}

	def := *spec.Default
	switch spec.Type {
	case InputBoolean:
		if def.Kind() != expr.KindBoolean {
			errs = append(errs, fmt.Errorf("input %s: %w: default %s is not a boolean", path, ErrBadDefault, def))
		}
	case InputText:
		if def.Kind() != expr.KindString {
			errs = append(errs, fmt.Errorf("input %s: %w: default %s is not a string", path, ErrBadDefault, def))
		}
	case InputEnum:
		if def.Kind() != expr.KindString {
			errs = append(errs, fmt.Errorf("input %s: %w: default %s is not a string", path, ErrBadDefault, def))
		} else if !optionAllowed(spec.Options, def.AsString()) {
			errs = append(errs, fmt.Errorf("input %s: %w: default %s is not one of %v", path, ErrBadDefault, def, spec.Options))
		}
	case InputList:
		if def.Kind() != expr.KindArray {
			errs = append(errs, fmt.Errorf("input %s: %w: default %s is not a list", path, ErrBadDefault, def))
		} else {
			for _, v := range def.AsList() {
				if !optionAllowed(spec.Options, v) {
					errs = append(errs, fmt.Errorf("input %s: %w: default entry %q is not one of %v", path, ErrBadDefault, v, spec.Options))
				}
			}
		}
	}

	return errs
}

// describeNode names a node for diagnostics: bound path, step name, or kind.
func describeNode(n *Node) string {
	switch {
	case n.Path != "":
		return fmt.Sprintf("%s %s", n.Kind, n.Path)
	case n.Name != "":
		return fmt.Sprintf("%s %q", n.Kind, n.Name)
	default:
		return n.Kind.String()
	}
}
