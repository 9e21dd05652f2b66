package engine

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/ragbag/exemplar/i18n"
)

// Violation codes carried by Violation.Code.
const (
	CodeInvalidType    = "invalid_type"
	CodeRequired       = "required"
	CodeUnknownKey     = "unknown_key"
	CodePattern        = "pattern"
	CodeRegexInput     = "regex_input"
	CodeEmptyArray     = "empty_array"
	CodeInvalidElement = "invalid_element"
	CodePredicate      = "predicate"
)

// Violation is the first structural failure found by a validation walk.
// Message is fully rendered, including the slash-delimited path.
type Violation struct {
	Path    string
	Code    string
	Message string
	Cause   error // predicate failures keep the predicate's error here
}

func (v *Violation) Error() string { return v.Message }

func (v *Violation) Unwrap() error { return v.Cause }

// Validate walks data against the node tree rooted at n. It returns nil when
// data conforms, or the first *Violation encountered. The walk is a pure
// recursive computation; it never mutates n.
func (n *Node) Validate(data any, path string, tr i18n.Translator) error {
	if n.Kind == KindNull {
		// Null nodes reject everything except null and know no optionality.
		if data != nil {
			return n.typeViolation(data, path, tr)
		}
		return nil
	}
	if data == nil {
		if n.Required {
			return &Violation{
				Path: path,
				Code: CodeRequired,
				Message: tr.Message(CodeRequired, map[string]string{
					"key": path,
				}),
			}
		}
		// Optional nodes accept null without inspecting children.
		return nil
	}
	switch n.Kind {
	case KindString, KindNumber, KindBool:
		return n.validateScalar(data, path, tr)
	case KindRegex:
		return n.validateRegex(data, path, tr)
	case KindObject:
		return n.validateObject(data, path, tr)
	case KindArray:
		return n.validateArray(data, path, tr)
	case KindFunc:
		return n.validateFunc(data, path, tr)
	}
	return nil
}

func (n *Node) validateScalar(data any, path string, tr i18n.Translator) error {
	ok := false
	switch n.Kind {
	case KindString:
		_, ok = data.(string)
	case KindBool:
		_, ok = data.(bool)
	case KindNumber:
		ok = TagOf(data) == KindNumber
	}
	if !ok {
		return n.typeViolation(data, path, tr)
	}
	return nil
}

func (n *Node) validateRegex(data any, path string, tr i18n.Translator) error {
	s, ok := data.(string)
	if !ok {
		reason := tr.Message(CodeRegexInput, nil) + ": " + renderValue(data)
		return &Violation{Path: path, Code: CodeRegexInput, Message: keyMessage(path, reason)}
	}
	// Match anchored at the start of the input; trailing content is fine.
	if loc := n.Pattern.FindStringIndex(s); loc == nil || loc[0] != 0 {
		reason := tr.Message(CodePattern, nil) + ": " + renderValue(data)
		return &Violation{Path: path, Code: CodePattern, Message: keyMessage(path, reason)}
	}
	return nil
}

func (n *Node) validateObject(data any, path string, tr i18n.Translator) error {
	m, ok := data.(map[string]any)
	if !ok {
		return n.typeViolation(data, path, tr)
	}
	for _, k := range n.fieldOrder {
		if err := n.Fields[k].Validate(m[k], childPath(path, k), tr); err != nil {
			return err
		}
	}
	// An empty field set skips the strict check: a bare {} example accepts
	// any object.
	if n.Permissive || len(n.Fields) == 0 {
		return nil
	}
	var extra []string
	for k := range m {
		if _, known := n.Fields[k]; !known {
			extra = append(extra, k)
		}
	}
	if len(extra) > 0 {
		sort.Strings(extra)
		reason := tr.Message(CodeUnknownKey, nil) + ": " + extra[0]
		return &Violation{Path: path, Code: CodeUnknownKey, Message: keyMessage(path, reason)}
	}
	return nil
}

func (n *Node) validateArray(data any, path string, tr i18n.Translator) error {
	arr, ok := data.([]any)
	if !ok {
		return n.typeViolation(data, path, tr)
	}
	if len(n.Elems) == 0 {
		// No element rules at all: any array is valid, including empty.
		return nil
	}
	if _, hasNull := n.Elems[KindNull]; !hasNull && len(arr) == 0 {
		return &Violation{Path: path, Code: CodeEmptyArray, Message: keyMessage(path, tr.Message(CodeEmptyArray, nil))}
	}
	for i, el := range arr {
		elPath := childPath(path, strconv.Itoa(i))
		tag := TagOf(el)
		child, ok := n.Elems[tag]
		if !ok {
			reason := fmt.Sprintf("%s %s: %s", tr.Message(CodeInvalidElement, nil), tag, renderValue(el))
			return &Violation{Path: elPath, Code: CodeInvalidElement, Message: "element at " + elPath + " " + reason}
		}
		if err := child.Validate(el, elPath, tr); err != nil {
			return err
		}
	}
	return nil
}

func (n *Node) validateFunc(data any, path string, tr i18n.Translator) error {
	if err := n.Fn(data); err != nil {
		reason := tr.Message(CodePredicate, nil) + ": " + err.Error()
		return &Violation{Path: path, Code: CodePredicate, Message: keyMessage(path, reason), Cause: err}
	}
	return nil
}

func (n *Node) typeViolation(data any, path string, tr i18n.Translator) *Violation {
	reason := tr.Message(CodeInvalidType, map[string]string{"expected": n.Kind.String()})
	reason += ": " + renderValue(data)
	return &Violation{Path: path, Code: CodeInvalidType, Message: keyMessage(path, reason)}
}

// keyMessage prefixes a reason with the data position, mirroring the
// rendered shape "data at two/three is not a string".
func keyMessage(path, reason string) string {
	if path != "" {
		return "data at " + path + " " + reason
	}
	return "data " + reason
}

// renderValue formats the offending value for a message; strings are quoted
// so empty and whitespace-only values stay visible.
func renderValue(v any) string {
	if s, ok := v.(string); ok {
		return strconv.Quote(s)
	}
	return fmt.Sprintf("%v", v)
}
