package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/ardnew/boardgen/ui"
)

// Show prints one node of the document, with its children, in native
// layout syntax.
//
// The document is the parsed --source file, or the tree generated from the
// selected layout when no source is given. An unknown id reports the
// closest matching ids.
type Show struct {
	ID      string `arg:""                                                     help:"Identifier of the node to print (without '#')."`
	Source  string `help:"Read a parsed document instead of the generated layout." placeholder:"FILE" short:"s" type:"existingfile"`
	Indent  int    `default:"2"                                                help:"Indent width for formatted output" short:"i"`
	Outline bool   `help:"Print the node's outline tree instead of its markup."    short:"t"`
}

// Run executes the show command.
func (s *Show) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	root, err := documentFrom(ctx, s.Source)
	if err != nil {
		return err
	}

	node, err := ui.Lookup(root, strings.TrimPrefix(s.ID, "#"))
	if err != nil {
		return err
	}

	if s.Outline {
		_, err = fmt.Fprintln(outputFrom(ctx), ui.Outline(node))

		return err
	}

	return node.Format(ctx, outputFrom(ctx), s.Indent)
}
