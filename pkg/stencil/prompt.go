package stencil

import (
	"fmt"
	"strings"

	"github.com/stencilframe/stencil/pkg/stencil/expr"
)

// Prompter supplies answers for input nodes during a pass.
//
// Implementations receive the input's context path and spec and return a
// raw answer; the interpreter converts and validates it against the spec
// before binding. Returning an error aborts the pass.
type Prompter interface {
	// Confirm asks a yes/no question.
	Confirm(path string, spec InputSpec) (bool, error)

	// Input asks for a free-form line.
	Input(path string, spec InputSpec) (string, error)

	// Select asks for one of spec.Options.
	Select(path string, spec InputSpec) (string, error)

	// MultiSelect asks for any subset of spec.Options.
	MultiSelect(path string, spec InputSpec) ([]string, error)
}

// MapPrompter answers from a fixed map keyed by context path, for batch
// runs and tests. A missing key is an error: batch runs never fall back
// to interactive prompting.
type MapPrompter struct {
	// Answers maps context paths to raw answers. Accepted value shapes:
	// bool or "true"/"false" strings for boolean inputs, string for text
	// and enum inputs, []string or a comma-separated string for list inputs.
	Answers map[string]any
}

// Confirm implements Prompter.
func (m MapPrompter) Confirm(path string, _ InputSpec) (bool, error) {
	raw, ok := m.Answers[path]
	if !ok {
		return false, &InputError{Path: path, Err: ErrUnanswered}
	}
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		if strings.EqualFold(v, "true") {
			return true, nil
		}
		if strings.EqualFold(v, "false") {
			return false, nil
		}
	}
	return false, &InputError{Path: path, Err: fmt.Errorf("%w: %v is not a boolean", ErrInvalidAnswer, raw)}
}

// Input implements Prompter.
func (m MapPrompter) Input(path string, _ InputSpec) (string, error) {
	raw, ok := m.Answers[path]
	if !ok {
		return "", &InputError{Path: path, Err: ErrUnanswered}
	}
	return fmt.Sprintf("%v", raw), nil
}

// Select implements Prompter.
func (m MapPrompter) Select(path string, _ InputSpec) (string, error) {
	raw, ok := m.Answers[path]
	if !ok {
		return "", &InputError{Path: path, Err: ErrUnanswered}
	}
	return fmt.Sprintf("%v", raw), nil
}

// MultiSelect implements Prompter.
func (m MapPrompter) MultiSelect(path string, _ InputSpec) ([]string, error) {
	raw, ok := m.Answers[path]
	if !ok {
		return nil, &InputError{Path: path, Err: ErrUnanswered}
	}
	switch v := raw.(type) {
	case []string:
		return v, nil
	case string:
		if v == "" {
			return nil, nil
		}
		parts := strings.Split(v, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, fmt.Sprintf("%v", item))
		}
		return out, nil
	}
	return nil, &InputError{Path: path, Err: fmt.Errorf("%w: %v is not a list", ErrInvalidAnswer, raw)}
}

// resolveAnswer turns a raw prompter answer into a typed, validated literal.
func resolveAnswer(path string, spec InputSpec, p Prompter) (expr.Literal, error) {
	switch spec.Type {
	case InputBoolean:
		v, err := p.Confirm(path, spec)
		if err != nil {
			return expr.Literal{}, err
		}
		return expr.Bool(v), nil

	case InputText:
		v, err := p.Input(path, spec)
		if err != nil {
			return expr.Literal{}, err
		}
		return expr.String(v), nil

	case InputEnum:
		v, err := p.Select(path, spec)
		if err != nil {
			return expr.Literal{}, err
		}
		if !optionAllowed(spec.Options, v) {
			return expr.Literal{}, &InputError{
				Path: path,
				Err:  fmt.Errorf("%w: %q is not one of %v", ErrInvalidAnswer, v, spec.Options),
			}
		}
		return expr.String(v), nil

	case InputList:
		vs, err := p.MultiSelect(path, spec)
		if err != nil {
			return expr.Literal{}, err
		}
		for _, v := range vs {
			if !optionAllowed(spec.Options, v) {
				return expr.Literal{}, &InputError{
					Path: path,
					Err:  fmt.Errorf("%w: %q is not one of %v", ErrInvalidAnswer, v, spec.Options),
				}
			}
		}
		return expr.Strings(vs), nil

	default:
		return expr.Literal{}, &InputError{Path: path, Err: fmt.Errorf("unknown input type %d", spec.Type)}
	}
}

// optionAllowed reports whether v is one of the declared options.
func optionAllowed(options []string, v string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}
