package descriptor

import (
	"errors"
	"fmt"

	"github.com/stencilframe/stencil/pkg/stencil"
	"github.com/stencilframe/stencil/pkg/stencil/expr"
)

// Sentinel errors for descriptor decoding.
var (
	// ErrAmbiguousNode indicates a node entry declaring more than one kind.
	ErrAmbiguousNode = errors.New("node declares more than one kind")

	// ErrUnknownKind indicates a node entry declaring no kind at all.
	ErrUnknownKind = errors.New("node declares no kind")

	// ErrUnknownInputType indicates an unrecognized input type string.
	ErrUnknownInputType = errors.New("unknown input type")

	// ErrBadValue indicates a preset value or input default of an
	// unsupported shape.
	ErrBadValue = errors.New("unsupported value shape")
)

// Document is the top-level descriptor schema.
type Document struct {
	// Name is the archetype name. Required.
	Name string `yaml:"name" json:"name"`

	// Version is the archetype version. Optional.
	Version string `yaml:"version" json:"version"`

	// Nodes are the top-level scaffold nodes.
	Nodes []NodeDoc `yaml:"nodes" json:"nodes"`
}

// NodeDoc is one node entry. Exactly one of Step, Input, Preset, Output
// selects the kind; the remaining fields apply per kind.
type NodeDoc struct {
	// Step names a grouping node.
	Step string `yaml:"step" json:"step"`

	// Input is the context path an input node binds.
	Input string `yaml:"input" json:"input"`

	// Preset is the context path a preset node binds.
	Preset string `yaml:"preset" json:"preset"`

	// Output holds an output node's file directives.
	Output *OutputDoc `yaml:"output" json:"output"`

	// If is the optional guard expression.
	If string `yaml:"if" json:"if"`

	// Type is the input type: boolean, text, enum, or list.
	Type string `yaml:"type" json:"type"`

	// Prompt is the input's question text.
	Prompt string `yaml:"prompt" json:"prompt"`

	// Default is the input's declared default.
	Default any `yaml:"default" json:"default"`

	// Options are the allowed values for enum and list inputs.
	Options []string `yaml:"options" json:"options"`

	// Value is a preset node's declared value.
	Value any `yaml:"value" json:"value"`

	// Nodes are child entries, walked after this node's own effect.
	Nodes []NodeDoc `yaml:"nodes" json:"nodes"`
}

// OutputDoc holds an output node's directives.
type OutputDoc struct {
	Templates []FileRuleDoc `yaml:"templates" json:"templates"`
	Files     []FileRuleDoc `yaml:"files" json:"files"`
}

// FileRuleDoc maps one source file to one target path.
type FileRuleDoc struct {
	Source string `yaml:"source" json:"source"`
	Target string `yaml:"target" json:"target"`
}

// ToArchetype builds an archetype from the document and validates it.
func (d *Document) ToArchetype() (*stencil.Archetype, error) {
	nodes := make([]*stencil.Node, 0, len(d.Nodes))
	for i := range d.Nodes {
		n, err := buildNode(&d.Nodes[i])
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}

	arch := stencil.NewArchetype(d.Name, d.Version, nodes...)
	if err := arch.Validate(); err != nil {
		return nil, err
	}
	return arch, nil
}

// buildNode converts one entry and its children.
func buildNode(doc *NodeDoc) (*stencil.Node, error) {
	kind, err := nodeKind(doc)
	if err != nil {
		return nil, err
	}

	var node *stencil.Node
	switch kind {
	case stencil.KindStep:
		node = &stencil.Node{Kind: stencil.KindStep, Name: doc.Step}

	case stencil.KindInput:
		spec, err := buildInputSpec(doc)
		if err != nil {
			return nil, err
		}
		node = &stencil.Node{Kind: stencil.KindInput, Path: doc.Input, Input: spec}

	case stencil.KindPreset:
		value, err := toLiteral(doc.Value)
		if err != nil {
			return nil, fmt.Errorf("preset %s: %w", doc.Preset, err)
		}
		node = &stencil.Node{Kind: stencil.KindPreset, Path: doc.Preset, Value: &value}

	case stencil.KindOutput:
		node = &stencil.Node{Kind: stencil.KindOutput, Output: buildOutputSpec(doc.Output)}
	}

	node.If = doc.If
	for i := range doc.Nodes {
		child, err := buildNode(&doc.Nodes[i])
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}
	return node, nil
}

// nodeKind determines which kind an entry declares, rejecting ambiguity.
func nodeKind(doc *NodeDoc) (stencil.NodeKind, error) {
	var (
		kind  stencil.NodeKind
		count int
	)
	if doc.Step != "" {
		kind, count = stencil.KindStep, count+1
	}
	if doc.Input != "" {
		kind, count = stencil.KindInput, count+1
	}
	if doc.Preset != "" {
		kind, count = stencil.KindPreset, count+1
	}
	if doc.Output != nil {
		kind, count = stencil.KindOutput, count+1
	}

	switch count {
	case 1:
		return kind, nil
	case 0:
		return 0, ErrUnknownKind
	default:
		return 0, fmt.Errorf("%w: step=%q input=%q preset=%q",
			ErrAmbiguousNode, doc.Step, doc.Input, doc.Preset)
	}
}

// buildInputSpec converts an input entry's prompt contract.
func buildInputSpec(doc *NodeDoc) (*stencil.InputSpec, error) {
	typ, err := inputType(doc.Type)
	if err != nil {
		return nil, fmt.Errorf("input %s: %w", doc.Input, err)
	}

	spec := &stencil.InputSpec{
		Type:    typ,
		Prompt:  doc.Prompt,
		Options: doc.Options,
	}

	if doc.Default != nil {
		def, err := toLiteral(doc.Default)
		if err != nil {
			return nil, fmt.Errorf("input %s default: %w", doc.Input, err)
		}
		spec.Default = &def
	}
	return spec, nil
}

// inputType maps a type string to its InputType.
func inputType(s string) (stencil.InputType, error) {
	switch s {
	case "boolean", "bool":
		return stencil.InputBoolean, nil
	case "text", "", "string":
		return stencil.InputText, nil
	case "enum", "select":
		return stencil.InputEnum, nil
	case "list", "multiselect":
		return stencil.InputList, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownInputType, s)
	}
}

// buildOutputSpec converts an output entry's directives.
func buildOutputSpec(doc *OutputDoc) *stencil.OutputSpec {
	spec := &stencil.OutputSpec{}
	for _, r := range doc.Templates {
		spec.Templates = append(spec.Templates, stencil.FileRule{Source: r.Source, Target: r.Target})
	}
	for _, r := range doc.Files {
		spec.Files = append(spec.Files, stencil.FileRule{Source: r.Source, Target: r.Target})
	}
	return spec
}

// toLiteral converts a decoded YAML or JSON scalar to a typed literal.
// Booleans, strings, and lists of strings are the supported shapes.
func toLiteral(raw any) (expr.Literal, error) {
	switch v := raw.(type) {
	case bool:
		return expr.Bool(v), nil
	case string:
		return expr.String(v), nil
	case []string:
		return expr.Strings(v), nil
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return expr.Literal{}, fmt.Errorf("%w: list entry %v (%T)", ErrBadValue, item, item)
			}
			items = append(items, s)
		}
		return expr.Strings(items), nil
	default:
		return expr.Literal{}, fmt.Errorf("%w: %v (%T)", ErrBadValue, raw, raw)
	}
}
