package ui

import (
	"iter"
	"log/slog"
)

// Kind discriminates the two node variants.
type Kind int

const (
	// KindGroup is a container node that lays out its children.
	KindGroup Kind = iota + 1

	// KindLabel is a leaf node carrying displayable text.
	KindLabel
)

// String returns the grammar keyword for the node kind.
func (k Kind) String() string {
	switch k {
	case KindGroup:
		return "Group"

	case KindLabel:
		return "Label"

	default:
		return "Unknown"
	}
}

// parseKind returns the node kind named by the grammar keyword s.
func parseKind(s string) (Kind, bool) {
	switch s {
	case "Group":
		return KindGroup, true

	case "Label":
		return KindLabel, true

	default:
		return 0, false
	}
}

// Node is a single element of the layout tree.
//
// Groups hold ordered children. Labels are leaves; Inline selects the
// single-line rendering used by the row segment slots.
type Node struct {
	Kind     Kind
	ID       string
	Comment  string // emitted as "//" lines before the node
	Attrs    []Attr
	Children []*Node
	Inline   bool
}

// NewGroup creates a group node.
func NewGroup(id string, attrs []Attr, children ...*Node) *Node {
	return &Node{
		Kind:     KindGroup,
		ID:       id,
		Attrs:    attrs,
		Children: children,
	}
}

// NewLabel creates a multi-line label node.
func NewLabel(id string, attrs ...Attr) *Node {
	return &Node{
		Kind:  KindLabel,
		ID:    id,
		Attrs: attrs,
	}
}

// NewInlineLabel creates a label node rendered on a single line.
func NewInlineLabel(id string, attrs ...Attr) *Node {
	n := NewLabel(id, attrs...)
	n.Inline = true

	return n
}

// Attr returns the value of the non-literal attribute named key.
func (n *Node) Attr(key string) (Value, bool) {
	for _, a := range n.Attrs {
		if !a.Literal && a.Key == key {
			return a.Value, true
		}
	}

	return Value{}, false
}

// Literal returns the value of the literal "@key" attribute.
func (n *Node) Literal(key string) (Value, bool) {
	for _, a := range n.Attrs {
		if a.Literal && a.Key == key {
			return a.Value, true
		}
	}

	return Value{}, false
}

// Text returns the label's @Text content, or "" if it has none.
func (n *Node) Text() string {
	v, ok := n.Literal("Text")
	if !ok || v.Kind != ValueString {
		return ""
	}

	return v.Text
}

// Visible reports the node's initial visibility.
// Nodes without a Visible attribute are visible.
func (n *Node) Visible() bool {
	v, ok := n.Attr("Visible")
	if !ok || v.Kind != ValueBool {
		return true
	}

	return v.Bool
}

// IsBlock reports whether n renders across multiple lines.
func (n *Node) IsBlock() bool {
	return n.Kind != KindLabel || !n.Inline || n.Comment != ""
}

// All returns an iterator over n and its descendants in document order,
// paired with each node's depth relative to n.
func (n *Node) All() iter.Seq2[int, *Node] {
	return func(yield func(int, *Node) bool) {
		n.walk(0, yield)
	}
}

func (n *Node) walk(depth int, yield func(int, *Node) bool) bool {
	if n == nil {
		return true
	}

	if !yield(depth, n) {
		return false
	}

	for _, c := range n.Children {
		if !c.walk(depth+1, yield) {
			return false
		}
	}

	return true
}

// Find returns the first node in document order with the given identifier.
func (n *Node) Find(id string) (*Node, bool) {
	for _, node := range n.All() {
		if node.ID == id {
			return node, true
		}
	}

	return nil, false
}

// Count returns the number of nodes of the given kind in the tree rooted at n.
func (n *Node) Count(kind Kind) int {
	count := 0

	for _, node := range n.All() {
		if node.Kind == kind {
			count++
		}
	}

	return count
}

// IDs returns every identifier in the tree in document order.
func (n *Node) IDs() []string {
	var ids []string

	for _, node := range n.All() {
		ids = append(ids, node.ID)
	}

	return ids
}

// Validate checks the structural invariants of the tree: known node kinds,
// non-empty identifiers unique across the tree, and leaf labels.
// It does not check attribute values; see [Render].
func (n *Node) Validate() error {
	if n == nil {
		return ErrMalformedNode.With(slog.String("reason", "nil node"))
	}

	seen := make(map[string]struct{})

	for _, node := range n.All() {
		err := node.validateShape()
		if err != nil {
			return err
		}

		if _, dup := seen[node.ID]; dup {
			return ErrMalformedNode.With(
				slog.String("id", node.ID),
				slog.String("reason", "duplicate identifier"),
			)
		}

		seen[node.ID] = struct{}{}
	}

	return nil
}

func (n *Node) validateShape() error {
	switch n.Kind {
	case KindGroup:
	case KindLabel:
		if len(n.Children) > 0 {
			return ErrMalformedNode.With(
				slog.String("id", n.ID),
				slog.String("reason", "label has children"),
			)
		}

	default:
		return ErrMalformedNode.With(
			slog.String("id", n.ID),
			slog.Int("kind", int(n.Kind)),
			slog.String("reason", "unknown node kind"),
		)
	}

	if !isIdentifier(n.ID) {
		return ErrMalformedNode.With(
			slog.String("id", n.ID),
			slog.String("reason", "invalid identifier"),
		)
	}

	for _, c := range n.Children {
		if c == nil {
			return ErrMalformedNode.With(
				slog.String("id", n.ID),
				slog.String("reason", "nil child"),
			)
		}
	}

	return nil
}
