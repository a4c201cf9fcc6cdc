package stencil

import (
	"strings"

	"github.com/stencilframe/stencil/pkg/stencil/expr"
)

// Model is the merged result of a scaffold pass: the resolved context
// values plus the ordered file directives of every included output node.
//
// Directives merge in walk order, so later outputs can overwrite files
// declared by earlier ones when rendered.
type Model struct {
	// Archetype is the name of the archetype that produced the model.
	Archetype string

	// RunID identifies the pass that produced the model.
	RunID string

	// Values are the resolved context values, keyed by dotted path.
	Values map[string]expr.Literal

	// Templates are expanded against Values before writing.
	Templates []FileRule

	// Files are copied verbatim.
	Files []FileRule
}

// merge appends an output node's directives, preserving walk order.
func (m *Model) merge(out *OutputSpec) {
	m.Templates = append(m.Templates, out.Templates...)
	m.Files = append(m.Files, out.Files...)
}

// Vars flattens the resolved values for template expansion.
// Booleans render as "true"/"false"; lists join with commas.
func (m *Model) Vars() map[string]any {
	vars := make(map[string]any, len(m.Values))
	for path, lit := range m.Values {
		switch lit.Kind() {
		case expr.KindBoolean:
			vars[path] = lit.AsBool()
		case expr.KindArray:
			vars[path] = strings.Join(lit.AsList(), ",")
		default:
			vars[path] = lit.AsString()
		}
	}
	return vars
}
