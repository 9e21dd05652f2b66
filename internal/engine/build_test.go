package engine_test

import (
	"errors"
	"regexp"
	"testing"

	"github.com/ragbag/exemplar/internal/engine"
)

func TestBuild_Dispatch(t *testing.T) {
	cases := []struct {
		name     string
		example  any
		kind     engine.Kind
		required bool
	}{
		{"free-form string", "anything", engine.KindString, true},
		{"optional string", "anything?", engine.KindString, false},
		{"empty string", "", engine.KindString, true},
		{"number prefix", "number", engine.KindNumber, true},
		{"optional number prefix", "number?", engine.KindNumber, false},
		{"number prefix with tail", "number of goats", engine.KindNumber, true},
		{"bool prefix", "bool", engine.KindBool, true},
		{"boolean spelled out", "boolean?", engine.KindBool, false},
		{"int literal", 7, engine.KindNumber, true},
		{"float literal", 7.5, engine.KindNumber, true},
		{"bool literal", true, engine.KindBool, true},
		{"null literal", nil, engine.KindNull, true},
		{"object literal", map[string]any{}, engine.KindObject, true},
		{"array literal", []any{}, engine.KindArray, true},
		{"regex", regexp.MustCompile(`x`), engine.KindRegex, true},
		{"predicate", engine.Predicate(func(any) error { return nil }), engine.KindFunc, true},
		{"optional predicate", engine.OptionalPredicate(func(any) error { return nil }), engine.KindFunc, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := engine.Build(tc.example)
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			if n.Kind != tc.kind {
				t.Fatalf("expected kind %v, got %v", tc.kind, n.Kind)
			}
			if n.Required != tc.required {
				t.Fatalf("expected required=%v, got %v", tc.required, n.Required)
			}
		})
	}
}

func TestBuild_ObjectChildren(t *testing.T) {
	n, err := engine.Build(map[string]any{"a": "string?", "b": 1})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(n.Fields) != 2 {
		t.Fatalf("expected two fields, got %d", len(n.Fields))
	}
	if n.Fields["a"].Kind != engine.KindString || n.Fields["a"].Required {
		t.Fatalf("unexpected a node: %+v", n.Fields["a"])
	}
	if n.Fields["b"].Kind != engine.KindNumber || !n.Fields["b"].Required {
		t.Fatalf("unexpected b node: %+v", n.Fields["b"])
	}
	if n.Permissive {
		t.Fatalf("plain maps compile to strict objects")
	}

	p, err := engine.Build(engine.Permissive{"a": 1})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !p.Permissive {
		t.Fatalf("expected a permissive object node")
	}
}

func TestBuild_ArrayChildrenByKind(t *testing.T) {
	n, err := engine.Build([]any{"string", 1, nil})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for _, k := range []engine.Kind{engine.KindString, engine.KindNumber, engine.KindNull} {
		if _, ok := n.Elems[k]; !ok {
			t.Fatalf("expected a child for %v", k)
		}
	}
	if _, ok := n.Elems[engine.KindBool]; ok {
		t.Fatalf("no bool example was given")
	}
}

func TestBuild_ArrayLastWins(t *testing.T) {
	n, err := engine.Build([]any{
		map[string]any{"a": 1},
		map[string]any{"b": 1},
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	obj := n.Elems[engine.KindObject]
	if obj == nil {
		t.Fatalf("expected an object child")
	}
	if _, ok := obj.Fields["b"]; !ok {
		t.Fatalf("the later example should have replaced the earlier one")
	}
	if _, ok := obj.Fields["a"]; ok {
		t.Fatalf("the earlier example should be gone")
	}
}

func TestBuild_Unsupported(t *testing.T) {
	_, err := engine.Build(struct{}{})
	var ise *engine.InvalidSchemaError
	if !errors.As(err, &ise) {
		t.Fatalf("expected InvalidSchemaError, got %v", err)
	}

	_, err = engine.Build(map[string]any{"x": []any{make(chan int)}})
	if !errors.As(err, &ise) {
		t.Fatalf("expected InvalidSchemaError, got %v", err)
	}
	if ise.Path != "x/0" {
		t.Fatalf("expected path x/0, got %q", ise.Path)
	}
}

func TestTagOf(t *testing.T) {
	cases := []struct {
		v    any
		want engine.Kind
	}{
		{nil, engine.KindNull},
		{"x", engine.KindString},
		{true, engine.KindBool},
		{1, engine.KindNumber},
		{int64(1), engine.KindNumber},
		{uint8(1), engine.KindNumber},
		{1.5, engine.KindNumber},
		{map[string]any{}, engine.KindObject},
		{[]any{}, engine.KindArray},
		{struct{}{}, engine.KindInvalid},
	}
	for _, tc := range cases {
		if got := engine.TagOf(tc.v); got != tc.want {
			t.Fatalf("TagOf(%v): expected %v, got %v", tc.v, tc.want, got)
		}
	}
}
