package stencil

import (
	"encoding/json"
	"fmt"

	"github.com/stencilframe/stencil/pkg/stencil/expr"
	"github.com/stencilframe/stencil/pkg/stencil/history"
)

// marshalAnswers serializes resolved values for the history store.
// Kinds map directly onto JSON types: booleans to booleans, strings to
// strings, lists to string arrays.
func marshalAnswers(values map[string]expr.Literal) ([]byte, error) {
	raw := make(map[string]any, len(values))
	for path, lit := range values {
		switch lit.Kind() {
		case expr.KindBoolean:
			raw[path] = lit.AsBool()
		case expr.KindArray:
			raw[path] = lit.AsList()
		default:
			raw[path] = lit.AsString()
		}
	}
	return json.MarshalIndent(raw, "", "  ")
}

// unmarshalAnswers deserializes a stored answer set back into typed values.
func unmarshalAnswers(data []byte) (map[string]expr.Literal, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode answer set: %w", err)
	}

	values := make(map[string]expr.Literal, len(raw))
	for path, msg := range raw {
		lit, err := decodeAnswer(msg)
		if err != nil {
			return nil, fmt.Errorf("decode answer %s: %w", path, err)
		}
		values[path] = lit
	}
	return values, nil
}

// decodeAnswer maps one JSON value back onto a literal.
func decodeAnswer(msg json.RawMessage) (expr.Literal, error) {
	var b bool
	if err := json.Unmarshal(msg, &b); err == nil {
		return expr.Bool(b), nil
	}

	var s string
	if err := json.Unmarshal(msg, &s); err == nil {
		return expr.String(s), nil
	}

	var list []string
	if err := json.Unmarshal(msg, &list); err == nil {
		return expr.Strings(list), nil
	}

	return expr.Literal{}, fmt.Errorf("unsupported value %s", string(msg))
}

// ReplayAnswers loads a stored run's answer set in the shape WithAnswers
// accepts, so a past pass can be rerun without prompting:
//
//	answers, err := stencil.ReplayAnswers(store, runID)
//	if err != nil { ... }
//	model, err := arch.Interpret(ctx, stencil.WithAnswers(answers))
func ReplayAnswers(store history.Store, runID string) (map[string]any, error) {
	data, err := store.Load(runID)
	if err != nil {
		return nil, err
	}

	values, err := unmarshalAnswers(data)
	if err != nil {
		return nil, err
	}

	answers := make(map[string]any, len(values))
	for path, lit := range values {
		switch lit.Kind() {
		case expr.KindBoolean:
			answers[path] = lit.AsBool()
		case expr.KindArray:
			answers[path] = lit.AsList()
		default:
			answers[path] = lit.AsString()
		}
	}
	return answers, nil
}
