package exemplar

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// CompileYAML builds a validator from a YAML schema example text. The
// schema-by-example conventions apply to the decoded tree unchanged, so a
// YAML example and its JSON equivalent compile to the same rules.
func CompileYAML(schema []byte, opts ...Option) (*Validator, error) {
	ex, err := decodeYAML(schema)
	if err != nil {
		return nil, &SchemaError{Message: "invalid YAML in schema: " + err.Error(), Cause: err}
	}
	return Compile(ex, opts...)
}

// ValidateYAML decodes YAML data text and validates it, returning the
// decoded value on success.
func (v *Validator) ValidateYAML(data []byte) (any, error) {
	dv, err := decodeYAML(data)
	if err != nil {
		return nil, &ParseError{Message: "invalid YAML: " + err.Error(), Cause: err}
	}
	return v.Validate(dv)
}

func decodeYAML(b []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return normalizeYAML(v), nil
}

// normalizeYAML rewrites decoded YAML maps into map[string]any so the engine
// sees the same shapes as decoded JSON. yaml.v3 already produces string-keyed
// maps for string keys; non-string keys are stringified.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[k] = normalizeYAML(val)
		}
		return m
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = normalizeYAML(val)
		}
		return m
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalizeYAML(val)
		}
		return out
	}
	return v
}
