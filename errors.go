package exemplar

import (
	"errors"

	"github.com/ragbag/exemplar/internal/engine"
)

// Violation codes carried by ValidationError.Code (exported consts for IDE
// completion and type safety by convention).
const (
	CodeInvalidType    = engine.CodeInvalidType
	CodeRequired       = engine.CodeRequired
	CodeUnknownKey     = engine.CodeUnknownKey
	CodePattern        = engine.CodePattern
	CodeRegexInput     = engine.CodeRegexInput
	CodeEmptyArray     = engine.CodeEmptyArray
	CodeInvalidElement = engine.CodeInvalidElement
	CodePredicate      = engine.CodePredicate
)

// SchemaError reports a schema example (or schema text) the compiler cannot
// turn into validation rules.
type SchemaError struct {
	Path    string // slash-delimited position inside the example; "" at the root
	Message string
	Cause   error
}

func (e *SchemaError) Error() string {
	if e.Path == "" {
		return "exemplar: schema: " + e.Message
	}
	return "exemplar: schema at " + e.Path + ": " + e.Message
}

func (e *SchemaError) Unwrap() error { return e.Cause }

// ParseError reports data text that does not decode as JSON or YAML. It is
// distinct from ValidationError: the input never reached the node tree.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string { return "exemplar: parse: " + e.Message }

func (e *ParseError) Unwrap() error { return e.Cause }

// ValidationError is the first structural mismatch between data and the
// compiled schema. Path is slash-delimited ("two/three", "items/0"); Code is
// one of the Code constants above; Message is the fully rendered reason.
type ValidationError struct {
	Path    string
	Code    string
	Message string
	Cause   error // predicate failures keep the predicate's error here
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return e.Cause }

// AsValidationError extracts a *ValidationError using errors.As internally.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// AsSchemaError extracts a *SchemaError using errors.As internally.
func AsSchemaError(err error) (*SchemaError, bool) {
	var se *SchemaError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// AsParseError extracts a *ParseError using errors.As internally.
func AsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// ---- engine error mapping ----

func schemaErrorFrom(err error) error {
	var ise *engine.InvalidSchemaError
	if errors.As(err, &ise) {
		return &SchemaError{Path: ise.Path, Message: ise.Message}
	}
	return &SchemaError{Message: err.Error(), Cause: err}
}

func validationErrorFrom(err error) error {
	var vio *engine.Violation
	if errors.As(err, &vio) {
		return &ValidationError{Path: vio.Path, Code: vio.Code, Message: vio.Message, Cause: vio.Cause}
	}
	return err
}
