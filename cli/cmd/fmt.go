package cmd

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/boardgen/ui"
)

// Fmt reads layout documents, parses them, and writes them in the chosen
// format.
type Fmt struct {
	Native Native `cmd:"" default:"withargs" help:"Format as native layout syntax (default)."`
	JSON   JSON   `cmd:""                    help:"Format as JSON."`
	YAML   YAML   `cmd:""                    help:"Format as YAML."`
	Tree   Tree   `cmd:""                    help:"Format as an outline tree."`
}

// Native formats input as native layout syntax.
type Native struct {
	Indent int `default:"2" help:"Indent width for formatted output" short:"i"`

	Source []string `arg:"" default:"-" help:"Source input file(s) or '-' for default stdin." name:"source"`
}

// Run executes the native command.
func (f *Native) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	return eachDocument(ctx, "native", f.Source, func(root *ui.Node) error {
		return root.Format(ctx, outputFrom(ctx), f.Indent)
	})
}

// JSON reads layout documents and outputs them as JSON.
type JSON struct {
	Indent int `default:"2" help:"Indent width for JSON output" short:"i"`

	Source []string `arg:"" default:"-" help:"Source input file(s) or '-' for default stdin." name:"source"`
}

// Run executes the json command.
func (j *JSON) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	return eachDocument(ctx, "json", j.Source, func(root *ui.Node) error {
		err := root.FormatJSON(ctx, outputFrom(ctx), j.Indent)
		if err != nil {
			return ErrJSONMarshal.Wrap(err)
		}

		return nil
	})
}

// YAML reads layout documents and outputs them as YAML.
type YAML struct {
	Indent int `default:"2" help:"Indent width for YAML output" short:"i"`

	Source []string `arg:"" default:"-" help:"Source input file(s) or '-' for default stdin." name:"source"`
}

// Run executes the yaml command.
func (y *YAML) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	return eachDocument(ctx, "yaml", y.Source, func(root *ui.Node) error {
		err := root.FormatYAML(ctx, outputFrom(ctx), y.Indent)
		if err != nil {
			return ErrYAMLMarshal.Wrap(err)
		}

		return nil
	})
}

// Tree formats input as an outline of the node hierarchy.
type Tree struct {
	Source []string `arg:"" default:"-" help:"Source input file(s) or '-' for default stdin." name:"source"`
}

// Run executes the tree command.
func (t *Tree) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	return eachDocument(ctx, "tree", t.Source, func(root *ui.Node) error {
		_, err := fmt.Fprintln(outputFrom(ctx), ui.Outline(root))

		return err
	})
}

// eachDocument parses every source in order and calls fn with each tree.
// Processing stops at the first error.
func eachDocument(
	ctx context.Context,
	format string,
	sources []string,
	fn func(*ui.Node) error,
) error {
	srcs, closeAll, err := openSources(sources)
	if err != nil {
		return ErrReadSource.
			With(slog.String("format", format)).
			Wrap(err)
	}
	defer closeAll()

	for _, src := range srcs {
		root, err := ui.ParseReader(ctx, bufio.NewReader(src))
		if err != nil {
			return ui.WrapError(err).
				With(sourceAttr(src.Name)).
				With(slog.String("format", format))
		}

		logger().TraceContext(ctx, "parsed document",
			sourceAttr(src.Name),
			slog.Int("nodes", len(root.IDs())),
		)

		err = fn(root)
		if err != nil {
			return err
		}
	}

	return nil
}
