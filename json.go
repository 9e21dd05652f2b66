package exemplar

import (
	"bytes"
	"errors"

	gojson "github.com/goccy/go-json"
)

// CompileJSON builds a validator from a JSON schema example text. Text that
// does not decode is a *SchemaError; the schema never reached the compiler.
func CompileJSON(schema []byte, opts ...Option) (*Validator, error) {
	ex, err := decodeJSON(schema)
	if err != nil {
		return nil, &SchemaError{Message: "invalid JSON in schema: " + err.Error(), Cause: err}
	}
	return Compile(ex, opts...)
}

// ValidateJSON decodes JSON data text and validates it, returning the
// decoded value on success. Undecodable text is a *ParseError. Any decodable
// value is validated, including falsy top-level values such as 0, false and
// null.
func (v *Validator) ValidateJSON(data []byte) (any, error) {
	dv, err := decodeJSON(data)
	if err != nil {
		return nil, &ParseError{Message: "invalid JSON: " + err.Error(), Cause: err}
	}
	return v.Validate(dv)
}

// decodeJSON decodes a single JSON value, preserving numbers as json.Number
// and rejecting trailing content.
func decodeJSON(b []byte) (any, error) {
	dec := gojson.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("trailing data after top-level value")
	}
	return v, nil
}
