package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/boardgen/ui"
)

// DefaultOutput is the file name the consumer loads the scoreboard from.
const DefaultOutput = "GilloDaby_BetterScoreBoard.ui"

// Generate builds the scoreboard layout document and writes it to a file.
//
// Unset flags fall back to the layout file, then to the built-in layout.
type Generate struct {
	Output   string  `default:"${output}" help:"Output file or '-' for stdout." placeholder:"PATH" short:"o"`
	Rows     *int    `help:"Number of scoreboard rows."               placeholder:"N"`
	Segments *int    `help:"Number of label segments per row."        placeholder:"N"`
	Title    *string `help:"Title text shown in the scoreboard header." placeholder:"TEXT"`
}

// Run executes the generate command.
func (g *Generate) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	layout, err := layoutFrom(ctx)
	if err != nil {
		return err
	}

	layout = g.apply(layout)

	root, err := ui.NewBuilder(layout, ui.WithLogger(logger())).Build(ctx)
	if err != nil {
		return err
	}

	doc, err := ui.Render(root)
	if err != nil {
		return err
	}

	output := g.Output
	if output == "" {
		output = DefaultOutput
	}

	if output == ui.Stdout {
		_, err = outputFrom(ctx).Write([]byte(doc))
		if err != nil {
			return ui.ErrWrite.With(slog.String("file", output)).Wrap(err)
		}
	} else {
		err = ui.WriteFile(output, doc)
		if err != nil {
			return err
		}
	}

	logger().InfoContext(ctx, "document written",
		slog.String("file", output),
		slog.Int("rows", layout.Rows),
		slog.Int("segments", layout.Segments),
		slog.Int("bytes", len(doc)),
	)

	return nil
}

// apply overrides layout fields with the flags given on the command line.
func (g *Generate) apply(layout ui.Layout) ui.Layout {
	if g.Rows != nil {
		layout.Rows = *g.Rows
	}

	if g.Segments != nil {
		layout.Segments = *g.Segments
	}

	if g.Title != nil {
		layout.Title = *g.Title
	}

	return layout
}
