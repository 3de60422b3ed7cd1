package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/ardnew/boardgen/ui"
)

// Query lists the nodes matching an expr-lang predicate.
//
// The document is the parsed --source file, or the tree generated from the
// selected layout when no source is given.
type Query struct {
	Expr   string `arg:""                        help:"Predicate over node fields (id, kind, depth, parent, text, visible, inline, children, attrs)."`
	Source string `help:"Query a parsed document instead of the generated layout." placeholder:"FILE" short:"s" type:"existingfile"`
	Long   bool   `help:"Also print kind, depth, and parent of each match."        short:"l"`
}

// Run executes the query command.
func (q *Query) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	root, err := documentFrom(ctx, q.Source)
	if err != nil {
		return err
	}

	matches, err := ui.Query(ctx, root, q.Expr)
	if err != nil {
		return err
	}

	logger().DebugContext(ctx, "query complete",
		slog.String("query", q.Expr),
		slog.Int("matches", len(matches)),
	)

	if len(matches) == 0 {
		return ErrNoMatch.With(slog.String("query", q.Expr))
	}

	if !q.Long {
		for _, n := range matches {
			_, err = fmt.Fprintln(outputFrom(ctx), n.ID)
			if err != nil {
				return err
			}
		}

		return nil
	}

	parents := parentIndex(root)

	tw := tabwriter.NewWriter(outputFrom(ctx), 0, 0, 2, ' ', 0)

	for _, n := range matches {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n",
			n.ID, n.Kind, parents[n].depth, parents[n].id)
	}

	return tw.Flush()
}

type parentInfo struct {
	id    string
	depth int
}

// parentIndex maps each node of the tree to its depth and parent id.
func parentIndex(root *ui.Node) map[*ui.Node]parentInfo {
	index := make(map[*ui.Node]parentInfo)

	var walk func(n *ui.Node, parent string, depth int)

	walk = func(n *ui.Node, parent string, depth int) {
		index[n] = parentInfo{id: parent, depth: depth}

		for _, c := range n.Children {
			walk(c, n.ID, depth+1)
		}
	}

	walk(root, "", 0)

	return index
}
