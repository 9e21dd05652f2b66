package exemplar

// Package exemplar validates JSON-compatible data against a schema by
// example: a sample value whose shape and literal conventions imply the
// expected types, optionality, and structure of valid data.
//
// - Compile walks an example value (or JSON/YAML text) into an immutable tree of validator nodes
// - Validator.Validate walks input data against that tree and echoes the data back, or returns the first structural failure
// - A stable error model splits schema problems (SchemaError), undecodable text (ParseError), and structural mismatches (ValidationError with path and code)
//
// Design policy:
// - Keep only public APIs in the root package; put the node tree and the validation walk under internal/engine.
// - Place message dictionaries under i18n/ and the CLI under cmd/exemplar.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	v, err := exemplar.Compile(map[string]any{
//		"one": 1,
//		"two": map[string]any{"three": "string?"},
//	})
//	data, err := v.ValidateJSON([]byte(`{"one": 0, "two": {}}`))
