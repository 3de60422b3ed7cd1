package ui

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
)

func sampleTree() *Node {
	return NewGroup("Root", []Attr{Field("Mode", Ident("Top"))},
		NewInlineLabel("L",
			Literal("Text", String("hi")),
			Field("Style", Record(Field("Color", Color("fff")), Field("Size", Int(14)))),
		),
	)
}

func TestFormatJSON_Compact(t *testing.T) {
	var buf bytes.Buffer

	err := sampleTree().FormatJSON(context.Background(), &buf, 0)
	if err != nil {
		t.Fatalf("FormatJSON() error = %v", err)
	}

	want := `{"attrs":[{"key":"Mode","value":"Top"}],` +
		`"children":[{"attrs":[{"key":"Text","literal":true,"value":"hi"},` +
		`{"key":"Style","value":[{"key":"Color","value":"#fff"},{"key":"Size","value":14}]}],` +
		`"id":"L","inline":true,"kind":"Label"}],"id":"Root","kind":"Group"}` + "\n"

	if buf.String() != want {
		t.Errorf("FormatJSON() =\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestFormatJSON_Indent(t *testing.T) {
	var buf bytes.Buffer

	err := sampleTree().FormatJSON(context.Background(), &buf, 2)
	if err != nil {
		t.Fatalf("FormatJSON() error = %v", err)
	}

	if !json.Valid(buf.Bytes()) {
		t.Fatalf("FormatJSON() produced invalid JSON:\n%s", buf.String())
	}

	if !strings.Contains(buf.String(), "\n  \"children\": [") {
		t.Errorf("FormatJSON() not indented by 2:\n%s", buf.String())
	}
}

func TestFormatYAML(t *testing.T) {
	for _, indent := range []int{0, 2, 4} {
		var buf bytes.Buffer

		err := sampleTree().FormatYAML(context.Background(), &buf, indent)
		if err != nil {
			t.Fatalf("FormatYAML(%d) error = %v", indent, err)
		}

		var doc struct {
			Kind     string `yaml:"kind"`
			ID       string `yaml:"id"`
			Children []struct {
				ID     string `yaml:"id"`
				Inline bool   `yaml:"inline"`
				Attrs  []struct {
					Key     string `yaml:"key"`
					Literal bool   `yaml:"literal"`
				} `yaml:"attrs"`
			} `yaml:"children"`
		}

		err = yaml.Unmarshal(buf.Bytes(), &doc)
		if err != nil {
			t.Fatalf("FormatYAML(%d) output does not parse: %v\n%s", indent, err, buf.String())
		}

		if doc.Kind != "Group" || doc.ID != "Root" || len(doc.Children) != 1 {
			t.Fatalf("FormatYAML(%d) decoded = %+v", indent, doc)
		}

		child := doc.Children[0]
		if child.ID != "L" || !child.Inline || len(child.Attrs) != 2 ||
			child.Attrs[0].Key != "Text" || !child.Attrs[0].Literal {
			t.Errorf("FormatYAML(%d) child = %+v", indent, child)
		}

		if indent == 0 && !strings.HasPrefix(buf.String(), "{") {
			t.Errorf("FormatYAML(0) should use flow style:\n%s", buf.String())
		}
	}
}

func TestFormatJSON_Malformed(t *testing.T) {
	tree := NewGroup("Root", nil, NewLabel("Root"))

	var buf bytes.Buffer

	if err := tree.FormatJSON(context.Background(), &buf, 2); !errors.Is(err, ErrMalformedNode) {
		t.Errorf("FormatJSON() error = %v, want ErrMalformedNode", err)
	}

	if err := tree.FormatYAML(context.Background(), &buf, 2); !errors.Is(err, ErrMalformedNode) {
		t.Errorf("FormatYAML() error = %v, want ErrMalformedNode", err)
	}

	if buf.Len() != 0 {
		t.Errorf("wrote %q on error", buf.String())
	}
}

func TestValue_ToNative(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  any
	}{
		{"string", String("a"), "a"},
		{"ident", Ident("Top"), "Top"},
		{"color", Color("#abc"), "#abc"},
		{"integer", Int(3), int64(3)},
		{"fraction", Number(0.25), 0.25},
		{"bool", Bool(true), true},
		{"invalid", Value{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.ToNative(); got != tt.want {
				t.Errorf("ToNative() = %#v, want %#v", got, tt.want)
			}
		})
	}
}
