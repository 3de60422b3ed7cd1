package ui

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"
)

// DefaultIndent is the number of spaces per nesting level.
const DefaultIndent = 2

// Render serializes the tree rooted at n into the layout grammar using
// [DefaultIndent]. The document ends with a single newline.
//
// Render performs no I/O; on error it returns an empty document.
func Render(n *Node) (string, error) {
	var buf bytes.Buffer

	err := render(&buf, n, DefaultIndent)
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}

// Format writes the tree rooted at n in native layout syntax to the writer.
// Nothing is written unless the whole tree renders successfully.
func (n *Node) Format(_ context.Context, w io.Writer, indent int) error {
	var buf bytes.Buffer

	err := render(&buf, n, indent)
	if err != nil {
		return err
	}

	_, err = buf.WriteTo(w)

	return err
}

func render(buf *bytes.Buffer, n *Node, indent int) error {
	err := n.Validate()
	if err != nil {
		return err
	}

	if indent < 0 {
		indent = 0
	}

	f := formatter{buf: buf, unit: strings.Repeat(" ", indent)}

	err = f.node(n, 0)
	if err != nil {
		return err
	}

	// Final newline
	f.buf.WriteByte('\n')

	return nil
}

// formatter accumulates rendered output for one tree.
type formatter struct {
	buf  *bytes.Buffer
	unit string
}

func (f formatter) pad(depth int) {
	for range depth {
		f.buf.WriteString(f.unit)
	}
}

// node writes n at the given depth, without a trailing newline.
func (f formatter) node(n *Node, depth int) error {
	if n.Comment != "" {
		for line := range strings.SplitSeq(n.Comment, "\n") {
			f.pad(depth)
			f.buf.WriteString("//")

			if line != "" {
				f.buf.WriteByte(' ')
				f.buf.WriteString(line)
			}

			f.buf.WriteByte('\n')
		}
	}

	f.pad(depth)
	f.buf.WriteString(n.Kind.String())
	f.buf.WriteString(" #")
	f.buf.WriteString(n.ID)

	if n.Kind == KindLabel && n.Inline {
		return f.inline(n)
	}

	f.buf.WriteString(" {\n")

	for _, a := range n.Attrs {
		f.pad(depth + 1)

		err := f.attr(n, a)
		if err != nil {
			return err
		}

		f.buf.WriteString(";\n")
	}

	var prev *Node

	for _, c := range n.Children {
		if separated(prev, c, len(n.Attrs) > 0) {
			f.buf.WriteByte('\n')
		}

		err := f.node(c, depth+1)
		if err != nil {
			return err
		}

		f.buf.WriteByte('\n')

		prev = c
	}

	f.pad(depth)
	f.buf.WriteByte('}')

	return nil
}

// separated reports whether a blank line precedes child c.
// Consecutive inline labels are packed together; blocks are set apart.
func separated(prev, c *Node, hasAttrs bool) bool {
	if prev == nil {
		return hasAttrs && c.IsBlock()
	}

	return prev.IsBlock() || c.IsBlock()
}

// inline writes the remainder of a single-line label: " { a; b; }".
func (f formatter) inline(n *Node) error {
	f.buf.WriteString(" { ")

	for _, a := range n.Attrs {
		err := f.attr(n, a)
		if err != nil {
			return err
		}

		f.buf.WriteString("; ")
	}

	f.buf.WriteByte('}')

	return nil
}

func (f formatter) attr(n *Node, a Attr) error {
	if !isIdentifier(a.Key) {
		return ErrMalformedNode.With(
			slog.String("id", n.ID),
			slog.String("key", a.Key),
			slog.String("reason", "invalid attribute key"),
		)
	}

	if a.Literal {
		f.buf.WriteByte('@')
		f.buf.WriteString(a.Key)
		f.buf.WriteString(" = ")
	} else {
		f.buf.WriteString(a.Key)
		f.buf.WriteString(": ")
	}

	return f.value(n, a.Key, a.Value)
}

// value writes v according to its kind. Every kind must have a rule here;
// anything else is a malformed node.
func (f formatter) value(n *Node, key string, v Value) error {
	switch v.Kind {
	case ValueString:
		f.buf.WriteString(strconv.Quote(v.Text))

	case ValueNumber:
		if math.IsNaN(v.Number) || math.IsInf(v.Number, 0) {
			return malformedValue(n, key, v, "number is not finite")
		}

		f.buf.WriteString(formatNumber(v.Number))

	case ValueBool:
		f.buf.WriteString(strconv.FormatBool(v.Bool))

	case ValueColor:
		if !isHexColor(v.Text) {
			return malformedValue(n, key, v, "invalid color")
		}

		f.buf.WriteByte('#')
		f.buf.WriteString(v.Text)

	case ValueIdent:
		if !isIdentifier(v.Text) || isReserved(v.Text) {
			return malformedValue(n, key, v, "invalid identifier")
		}

		f.buf.WriteString(v.Text)

	case ValueRecord:
		f.buf.WriteByte('(')

		for i, field := range v.Record {
			if i > 0 {
				f.buf.WriteString(", ")
			}

			if field.Literal {
				return malformedValue(n, key, v, "literal field in record")
			}

			if !isIdentifier(field.Key) {
				return malformedValue(n, key, v, "invalid record key")
			}

			f.buf.WriteString(field.Key)
			f.buf.WriteString(": ")

			err := f.value(n, key+"."+field.Key, field.Value)
			if err != nil {
				return err
			}
		}

		f.buf.WriteByte(')')

	default:
		return malformedValue(n, key, v, "no rendering rule for value kind")
	}

	return nil
}

func malformedValue(n *Node, key string, v Value, reason string) error {
	return ErrMalformedNode.With(
		slog.String("id", n.ID),
		slog.String("key", key),
		slog.String("kind", v.Kind.String()),
		slog.String("reason", reason),
	)
}

// isReserved reports whether s would read back as a different value kind.
func isReserved(s string) bool {
	return s == "true" || s == "false"
}
