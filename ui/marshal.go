package ui

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// MarshalJSON implements json.Marshaler for Node.
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.ToMap())
}

// ToMap converts the tree rooted at n to native Go maps and slices.
// Attribute order is kept by exporting attributes as a list.
func (n *Node) ToMap() map[string]any {
	result := map[string]any{
		"kind": n.Kind.String(),
		"id":   n.ID,
	}

	if n.Comment != "" {
		result["comment"] = n.Comment
	}

	if n.Kind == KindLabel {
		result["inline"] = n.Inline
	}

	if len(n.Attrs) > 0 {
		result["attrs"] = attrsToNative(n.Attrs)
	}

	if len(n.Children) > 0 {
		children := make([]any, len(n.Children))
		for i, c := range n.Children {
			children[i] = c.ToMap()
		}

		result["children"] = children
	}

	return result
}

// attrsToNative converts attributes to a list of {key, value} maps,
// with a "literal" flag on '@' attributes.
func attrsToNative(attrs []Attr) []any {
	list := make([]any, len(attrs))

	for i, a := range attrs {
		entry := map[string]any{
			"key":   a.Key,
			"value": a.Value.ToNative(),
		}

		if a.Literal {
			entry["literal"] = true
		}

		list[i] = entry
	}

	return list
}

// FormatJSON writes the tree as JSON to the writer.
func (n *Node) FormatJSON(_ context.Context, w io.Writer, indent int) error {
	err := n.Validate()
	if err != nil {
		return err
	}

	var jsonData []byte

	if indent > 0 {
		jsonData, err = json.MarshalIndent(n, "", strings.Repeat(" ", indent))
	} else {
		jsonData, err = json.Marshal(n)
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(jsonData))

	return err
}

// FormatYAML writes the tree as YAML to the writer.
func (n *Node) FormatYAML(ctx context.Context, w io.Writer, indent int) error {
	err := n.Validate()
	if err != nil {
		return err
	}

	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	yamlData, err := yaml.MarshalContext(ctx, n.ToMap(), opts...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, string(yamlData))

	return err
}
