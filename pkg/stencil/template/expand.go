package template

import (
	"fmt"
	"regexp"
	"strings"
)

// bracePattern matches ${dotted.path} - the name may contain word
// characters, dots, and hyphens, matching the guard language's variable
// syntax so the same context paths work in both places.
var bracePattern = regexp.MustCompile(`\$\{([a-zA-Z_][\w.-]*)\}`)

// Expander expands ${dotted.path} placeholders in scaffold sources.
//
// Create with NewExpander() and configure with Option functions.
// Expander is safe for concurrent use after construction.
type Expander struct {
	missingAction MissingAction
}

// NewExpander creates a new Expander with the given options.
//
// Default configuration:
//   - MissingAction: MissingKeep (keep placeholders as-is)
//
// Only the ${path} form is expanded. Bare $name is left untouched:
// scaffolded files legitimately contain shell variables.
//
// Example:
//
//	exp := NewExpander(WithMissingAction(MissingError))
func NewExpander(opts ...Option) *Expander {
	e := &Expander{
		missingAction: MissingKeep,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Expand expands placeholders in s using the provided vars.
//
// Returns the expanded string and any error encountered.
// Errors are only returned when MissingAction is MissingError and
// a variable is not found.
//
// Example:
//
//	exp := NewExpander()
//	result, err := exp.Expand("name: ${app.name}", map[string]any{"app.name": "shop"})
//	// result: "name: shop"
func (e *Expander) Expand(s string, vars map[string]any) (string, error) {
	if s == "" {
		return "", nil
	}

	var missingVars []string

	result := bracePattern.ReplaceAllStringFunc(s, func(match string) string {
		// Extract the path from ${path}.
		varName := match[2 : len(match)-1]
		if val, ok := vars[varName]; ok {
			return fmt.Sprintf("%v", val)
		}
		// Variable not found.
		switch e.missingAction {
		case MissingEmpty:
			return ""
		case MissingError:
			missingVars = append(missingVars, varName)
			return match // Keep for now, will return error.
		default: // MissingKeep
			return match
		}
	})

	if len(missingVars) > 0 {
		return result, &UndefinedVariableError{Names: missingVars}
	}

	return result, nil
}

// MustExpand expands placeholders in s and panics on error.
//
// Use this when you're certain all variables are present or when using
// MissingKeep/MissingEmpty which never return errors.
func (e *Expander) MustExpand(s string, vars map[string]any) string {
	result, err := e.Expand(s, vars)
	if err != nil {
		panic(fmt.Sprintf("template: %v", err))
	}
	return result
}

// ExpandAll expands placeholders in all strings.
//
// Returns a new slice with expanded strings.
// Uses the expander's MissingAction for missing variables.
// On error (with MissingError), returns nil and the first error.
func (e *Expander) ExpandAll(ss []string, vars map[string]any) ([]string, error) {
	if ss == nil {
		return nil, nil
	}

	results := make([]string, len(ss))
	for i, s := range ss {
		expanded, err := e.Expand(s, vars)
		if err != nil {
			return nil, err
		}
		results[i] = expanded
	}
	return results, nil
}

// UndefinedVariableError is returned when MissingError is set and
// one or more variables are not found.
type UndefinedVariableError struct {
	// Names is the list of undefined variable names.
	Names []string
}

// Error implements the error interface.
func (e *UndefinedVariableError) Error() string {
	if len(e.Names) == 1 {
		return fmt.Sprintf("undefined variable: %s", e.Names[0])
	}
	return fmt.Sprintf("undefined variables: %s", strings.Join(e.Names, ", "))
}

// defaultExpander is the package-level expander with default settings.
var defaultExpander = NewExpander()

// Expand expands placeholders in s using the default expander.
//
// Uses MissingKeep behavior (missing variables stay as-is).
//
// Example:
//
//	result := template.Expand("name: ${app.name}", map[string]any{"app.name": "shop"})
//	// result: "name: shop"
func Expand(s string, vars map[string]any) string {
	// Default expander never returns errors (MissingKeep).
	result, _ := defaultExpander.Expand(s, vars)
	return result
}

// ExpandAll expands placeholders in all strings using the default expander.
//
// Uses MissingKeep behavior (missing variables stay as-is).
func ExpandAll(ss []string, vars map[string]any) []string {
	// Default expander never returns errors (MissingKeep).
	results, _ := defaultExpander.ExpandAll(ss, vars)
	return results
}
