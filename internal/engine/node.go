package engine

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Permissive marks an object example whose compiled node ignores unknown
// keys in the data instead of rejecting them.
type Permissive map[string]any

// Predicate is a custom schema rule; a non-nil error marks the value
// invalid.
type Predicate func(v any) error

// OptionalPredicate behaves like Predicate but accepts a missing value
// without invoking the function.
type OptionalPredicate func(v any) error

// Node is one compiled rule in the schema tree. Nodes are immutable after
// Build and safe for concurrent Validate calls.
type Node struct {
	Kind     Kind
	Required bool

	Pattern    *regexp.Regexp    // KindRegex
	Fields     map[string]*Node  // KindObject
	Permissive bool              // KindObject: ignore unknown keys
	Elems      map[Kind]*Node    // KindArray, keyed by element type tag
	Fn         func(v any) error // KindFunc

	fieldOrder []string // sorted Fields keys, deterministic walk
}

// InvalidSchemaError reports an example value the compiler cannot express as
// a validation rule.
type InvalidSchemaError struct {
	Path    string
	Message string
}

func (e *InvalidSchemaError) Error() string {
	if e.Path == "" {
		return "schema: " + e.Message
	}
	return "schema at " + e.Path + ": " + e.Message
}

// Build compiles one schema example value into a node tree.
//
// Dispatch by the example's runtime form, in priority order: string
// conventions, *regexp.Regexp, bool, number, nil, object (strict or
// permissive), array, predicate. Anything else is an InvalidSchemaError.
func Build(example any) (*Node, error) { return build(example, "") }

func build(example any, path string) (*Node, error) {
	switch ex := example.(type) {
	case string:
		return buildString(ex), nil
	case *regexp.Regexp:
		return &Node{Kind: KindRegex, Required: true, Pattern: ex}, nil
	case bool:
		return &Node{Kind: KindBool, Required: true}, nil
	case nil:
		// A null literal has no optional form; there is no "?" convention
		// for it.
		return &Node{Kind: KindNull, Required: true}, nil
	case Permissive:
		return buildObject(map[string]any(ex), true, path)
	case map[string]any:
		return buildObject(ex, false, path)
	case []any:
		return buildArray(ex, path)
	case OptionalPredicate:
		return &Node{Kind: KindFunc, Required: false, Fn: ex}, nil
	case Predicate:
		return &Node{Kind: KindFunc, Required: true, Fn: ex}, nil
	case func(v any) error:
		return &Node{Kind: KindFunc, Required: true, Fn: ex}, nil
	}
	if TagOf(example) == KindNumber {
		return &Node{Kind: KindNumber, Required: true}, nil
	}
	return nil, &InvalidSchemaError{Path: path, Message: fmt.Sprintf("unsupported schema type %T", example)}
}

// buildString maps the string conventions: a "number"/"bool" prefix selects
// the kind, a trailing "?" makes the node optional. Any other content is
// irrelevant; only the example's type matters.
func buildString(s string) *Node {
	kind := KindString
	if strings.HasPrefix(s, "number") {
		kind = KindNumber
	} else if strings.HasPrefix(s, "bool") {
		kind = KindBool
	}
	return &Node{Kind: kind, Required: !strings.HasSuffix(s, "?")}
}

func buildObject(fields map[string]any, permissive bool, path string) (*Node, error) {
	n := &Node{
		Kind:       KindObject,
		Required:   true,
		Permissive: permissive,
		Fields:     make(map[string]*Node, len(fields)),
		fieldOrder: make([]string, 0, len(fields)),
	}
	for k := range fields {
		n.fieldOrder = append(n.fieldOrder, k)
	}
	sort.Strings(n.fieldOrder)
	for _, k := range n.fieldOrder {
		child, err := build(fields[k], childPath(path, k))
		if err != nil {
			return nil, err
		}
		n.Fields[k] = child
	}
	return n, nil
}

// buildArray registers one child per resulting kind. A later example of an
// already-represented kind silently replaces the earlier one (last wins).
func buildArray(elems []any, path string) (*Node, error) {
	n := &Node{Kind: KindArray, Required: true, Elems: make(map[Kind]*Node, len(elems))}
	for i, ex := range elems {
		child, err := build(ex, childPath(path, strconv.Itoa(i)))
		if err != nil {
			return nil, err
		}
		n.Elems[child.Kind] = child
	}
	return n, nil
}

func childPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "/" + key
}
