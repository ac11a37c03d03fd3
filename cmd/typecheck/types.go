package main

import (
	"encoding/json"
	"fmt"

	"github.com/kit-lang/typecheck/construct"
	"github.com/kit-lang/typecheck/types"
)

// typeJSON is the wire form of a types.Type: a tagged union keyed by
// "kind" ("primitive", "optional", "function", "var", "any").
type typeJSON struct {
	Kind   string      `json:"kind"`
	Name   string      `json:"name,omitempty"`
	Id     int         `json:"id,omitempty"`
	Wrapped *typeJSON  `json:"wrapped,omitempty"`
	Param  *typeJSON   `json:"param,omitempty"`
	Result *typeJSON   `json:"result,omitempty"`
}

func decodeType(raw json.RawMessage) (types.Type, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var tj typeJSON
	if err := json.Unmarshal(raw, &tj); err != nil {
		return nil, fmt.Errorf("decoding type: %w", err)
	}
	return buildType(&tj)
}

func buildType(tj *typeJSON) (types.Type, error) {
	if tj == nil {
		return nil, nil
	}
	switch tj.Kind {
	case "primitive":
		return construct.Primitive(tj.Name), nil
	case "optional":
		wrapped, err := buildType(tj.Wrapped)
		if err != nil {
			return nil, err
		}
		return construct.Opt(wrapped), nil
	case "function":
		param, err := buildType(tj.Param)
		if err != nil {
			return nil, err
		}
		result, err := buildType(tj.Result)
		if err != nil {
			return nil, err
		}
		return construct.Fn(param, result), nil
	case "var":
		return construct.Var(tj.Id), nil
	case "any":
		return types.Any, nil
	default:
		return nil, fmt.Errorf("unknown type kind %q", tj.Kind)
	}
}
