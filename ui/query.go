package ui

import (
	"context"
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// queryEnv is the environment a query predicate is evaluated against,
// once per node.
type queryEnv struct {
	ID       string         `expr:"id"`
	Kind     string         `expr:"kind"`
	Depth    int            `expr:"depth"`
	Parent   string         `expr:"parent"`
	Text     string         `expr:"text"`
	Visible  bool           `expr:"visible"`
	Inline   bool           `expr:"inline"`
	Children int            `expr:"children"`
	Attrs    map[string]any `expr:"attrs"`
}

// CompileQuery compiles an expr-lang boolean predicate over node fields.
//
// The predicate sees id, kind ("Group" or "Label"), depth, parent (the
// parent's id, "" for the root), text, visible, inline, children (direct
// child count), and attrs (non-literal attributes by key, records as lists
// of {key, value} maps). For example:
//
//	kind == "Label" && id startsWith "Line3"
//	kind == "Group" && !visible
func CompileQuery(source string) (*vm.Program, error) {
	program, err := expr.Compile(source, expr.Env(queryEnv{}), expr.AsBool())
	if err != nil {
		return nil, ErrQuery.
			With(slog.String("query", source)).
			Wrap(err)
	}

	return program, nil
}

// Query returns the nodes of the tree rooted at root, in document order,
// for which the predicate source evaluates to true.
func Query(ctx context.Context, root *Node, source string) ([]*Node, error) {
	program, err := CompileQuery(source)
	if err != nil {
		return nil, err
	}

	return QueryProgram(ctx, root, program)
}

// QueryProgram is [Query] with a precompiled predicate.
func QueryProgram(
	ctx context.Context,
	root *Node,
	program *vm.Program,
) ([]*Node, error) {
	var (
		matches []*Node
		parents []string
	)

	for depth, node := range root.All() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		parents = parents[:depth]

		parent := ""
		if depth > 0 {
			parent = parents[depth-1]
		}

		parents = append(parents, node.ID)

		out, err := expr.Run(program, newQueryEnv(node, depth, parent))
		if err != nil {
			return nil, ErrQuery.
				With(slog.String("query", program.Source().String())).
				With(slog.String("id", node.ID)).
				Wrap(err)
		}

		if ok, _ := out.(bool); ok {
			matches = append(matches, node)
		}
	}

	return matches, nil
}

func newQueryEnv(n *Node, depth int, parent string) queryEnv {
	attrs := make(map[string]any, len(n.Attrs))

	for _, a := range n.Attrs {
		if !a.Literal {
			attrs[a.Key] = a.Value.ToNative()
		}
	}

	return queryEnv{
		ID:       n.ID,
		Kind:     n.Kind.String(),
		Depth:    depth,
		Parent:   parent,
		Text:     n.Text(),
		Visible:  n.Visible(),
		Inline:   n.Inline,
		Children: len(n.Children),
		Attrs:    attrs,
	}
}
