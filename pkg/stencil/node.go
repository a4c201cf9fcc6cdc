package stencil

import "github.com/stencilframe/stencil/pkg/stencil/expr"

// NodeKind identifies what a scaffold node contributes to a pass.
type NodeKind int

const (
	// KindStep groups related nodes under a display name.
	KindStep NodeKind = iota

	// KindInput asks the user (or the answer set) for a value and binds
	// it to a dotted context path.
	KindInput

	// KindPreset binds a declared value to a context path without asking.
	KindPreset

	// KindOutput contributes file and template directives to the output model.
	KindOutput
)

// String returns the kind name for diagnostics.
func (k NodeKind) String() string {
	switch k {
	case KindStep:
		return "step"
	case KindInput:
		return "input"
	case KindPreset:
		return "preset"
	case KindOutput:
		return "output"
	default:
		return "unknown"
	}
}

// InputType is the prompt contract of an input node.
type InputType int

const (
	// InputBoolean is a yes/no question, bound as a boolean.
	InputBoolean InputType = iota

	// InputText is a free-form line, bound as a string.
	InputText

	// InputEnum is a single choice from fixed options, bound as a string.
	InputEnum

	// InputList is a multi-choice from fixed options, bound as a string list.
	InputList
)

// String returns the input type name for diagnostics.
func (t InputType) String() string {
	switch t {
	case InputBoolean:
		return "boolean"
	case InputText:
		return "text"
	case InputEnum:
		return "enum"
	case InputList:
		return "list"
	default:
		return "unknown"
	}
}

// Node is one node of a scaffold description tree.
//
// The tree is built once per pass (usually by the descriptor package)
// and walked top-down, depth-first, left to right. Any node may carry an
// optional guard expression in If; a guarded node and its whole subtree
// participate in the pass only when the guard evaluates true against the
// context accumulated so far. An empty If means unconditionally active.
//
// Nodes are not mutated during a walk; per-node walk state lives in the
// interpreter.
type Node struct {
	// Kind selects which of the payload fields below is meaningful.
	Kind NodeKind

	// Name is the display name for steps.
	Name string

	// Path is the dotted context path inputs and presets bind to.
	Path string

	// If is the optional guard expression. Empty means always active.
	If string

	// Input is the prompt contract. Set when Kind is KindInput.
	Input *InputSpec

	// Value is the declared value. Set when Kind is KindPreset.
	Value *expr.Literal

	// Output holds file directives. Set when Kind is KindOutput.
	Output *OutputSpec

	// Children are walked in order after this node's own effect applies.
	Children []*Node
}

// InputSpec describes how an input node is asked and typed.
type InputSpec struct {
	// Type selects the prompt contract and the bound value type.
	Type InputType

	// Prompt is the question shown to the user.
	Prompt string

	// Default is the value used when no answer is supplied and the
	// interpreter runs in defaults mode. Nil means no default.
	Default *expr.Literal

	// Options are the allowed values for enum and list inputs.
	Options []string
}

// OutputSpec holds the file directives an output node contributes.
type OutputSpec struct {
	// Templates are expanded against the context before writing.
	Templates []FileRule

	// Files are copied verbatim.
	Files []FileRule
}

// FileRule maps one source file (relative to the scaffold source root)
// to one target path (relative to the generation target root). Target
// paths may reference context values with ${dotted.path}.
type FileRule struct {
	Source string
	Target string
}

// Step creates a step node with the given children.
func Step(name string, children ...*Node) *Node {
	return &Node{Kind: KindStep, Name: name, Children: children}
}

// Input creates an input node binding path via the given spec.
func Input(path string, spec InputSpec, children ...*Node) *Node {
	return &Node{Kind: KindInput, Path: path, Input: &spec, Children: children}
}

// Preset creates a preset node binding path to a declared value.
func Preset(path string, value expr.Literal) *Node {
	return &Node{Kind: KindPreset, Path: path, Value: &value}
}

// Output creates an output node with the given directives.
func Output(spec OutputSpec) *Node {
	return &Node{Kind: KindOutput, Output: &spec}
}

// When sets the node's guard expression and returns the node, for chaining:
//
//	stencil.Output(spec).When(`${security.tls} == true`)
func (n *Node) When(guard string) *Node {
	n.If = guard
	return n
}
