package engine

import (
	"encoding/json"
	"reflect"
)

// Kind enumerates validator node kinds. The first six double as the coarse
// runtime type tags used to route array elements to their matching child
// node; KindRegex and KindFunc never appear as data tags, so children of
// those kinds are unreachable inside arrays.
type Kind int

const (
	KindInvalid Kind = iota
	KindString
	KindNumber
	KindBool
	KindNull
	KindObject
	KindArray
	KindRegex
	KindFunc
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindRegex:
		return "regex"
	case KindFunc:
		return "func"
	}
	return "invalid"
}

// TagOf classifies a data value into the type tag used by array dispatch.
// Values outside the JSON-compatible set map to KindInvalid.
func TagOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case string:
		return KindString
	case bool:
		return KindBool
	case map[string]any:
		return KindObject
	case []any:
		return KindArray
	case json.Number:
		return KindNumber
	}
	if isNumber(v) {
		return KindNumber
	}
	return KindInvalid
}

// isNumber reports whether v has one of Go's numeric kinds. Decoded JSON
// carries json.Number (handled in TagOf); programmatic callers may hand the
// engine any integer or float type.
func isNumber(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
