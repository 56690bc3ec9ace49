// Package format converts JSON object keys between snake_case and camelCase.
// Converters walk decoded JSON trees (map[string]any and []any) and return
// every other value unchanged.
//
// When two keys of one object convert to the same key, a key already in
// the target case wins; otherwise the lexicographically last source key wins.
package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/ettle/strcase"
)

// ToCamelKeys returns a copy of v with every object key converted to camelCase
func ToCamelKeys(v any) any {
	return convertKeys(v, strcase.ToCamel)
}

// ToSnakeKeys returns a copy of v with every object key converted to snake_case
func ToSnakeKeys(v any) any {
	return convertKeys(v, strcase.ToSnake)
}

func convertKeys(v any, convert func(string) string) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		var native []string
		for _, k := range slices.Sorted(maps.Keys(val)) {
			if convert(k) == k {
				native = append(native, k)
				continue
			}
			out[convert(k)] = convertKeys(val[k], convert)
		}
		for _, k := range native {
			out[k] = convertKeys(val[k], convert)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = convertKeys(item, convert)
		}
		return out
	default:
		return v
	}
}

// Camelize rewrites a JSON document so that all object keys are camelCase
func Camelize(raw []byte) ([]byte, error) {
	return rewrite(raw, ToCamelKeys)
}

// Snakify rewrites a JSON document so that all object keys are snake_case
func Snakify(raw []byte) ([]byte, error) {
	return rewrite(raw, ToSnakeKeys)
}

func rewrite(raw []byte, convert func(any) any) ([]byte, error) {
	// numbers stay json.Number so large integers survive
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode json: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("failed to decode json: trailing data")
	}
	out, err := json.Marshal(convert(doc))
	if err != nil {
		return nil, fmt.Errorf("failed to encode json: %w", err)
	}
	return out, nil
}
