package exemplar

import (
	"github.com/ragbag/exemplar/i18n"
	"github.com/ragbag/exemplar/internal/engine"
)

// Permissive wraps an object example so the compiled node ignores unknown
// keys in the data instead of rejecting them.
type Permissive = engine.Permissive

// Predicate is a custom schema rule; a non-nil error marks the value
// invalid. Inside a schema example a Predicate compiles to a required rule.
type Predicate = engine.Predicate

// OptionalPredicate behaves like Predicate but accepts a missing value
// without invoking the function.
type OptionalPredicate = engine.OptionalPredicate

// Optional wraps fn so the compiled rule accepts missing values.
func Optional(fn Predicate) OptionalPredicate { return OptionalPredicate(fn) }

// Option adjusts compilation.
type Option func(*Validator)

// WithTranslator overrides the message dictionary used to render violation
// reasons. The default is the built-in English dictionary.
func WithTranslator(tr i18n.Translator) Option {
	return func(v *Validator) {
		if tr != nil {
			v.tr = tr
		}
	}
}

// Validator is a compiled schema. It is immutable after Compile and safe for
// concurrent Validate calls; validation never mutates the node tree.
type Validator struct {
	root *engine.Node
	tr   i18n.Translator
}

// Compile builds a validator from a structured schema example: any
// JSON-compatible value, a *regexp.Regexp, a Predicate, an
// Optional(Predicate), or a Permissive object. The example is consumed at
// compile time only. For schema text use CompileJSON or CompileYAML.
func Compile(schema any, opts ...Option) (*Validator, error) {
	v := &Validator{tr: i18n.Default()}
	for _, o := range opts {
		o(v)
	}
	root, err := engine.Build(schema)
	if err != nil {
		return nil, schemaErrorFrom(err)
	}
	v.root = root
	return v, nil
}

// MustCompile is like Compile but panics when the schema example is
// unsupported. It simplifies package-level validator variables.
func MustCompile(schema any, opts ...Option) *Validator {
	v, err := Compile(schema, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// Validate checks a structured value against the compiled schema and echoes
// it back unmodified. On mismatch it returns a *ValidationError describing
// the first failure.
func (v *Validator) Validate(data any) (any, error) {
	if err := v.root.Validate(data, "", v.tr); err != nil {
		return nil, validationErrorFrom(err)
	}
	return data, nil
}
