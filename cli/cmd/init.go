package cmd

import (
	"bytes"
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/boardgen/ui"
)

// Init writes the current layout as a YAML layout file.
//
// The written file reproduces the layout selected with --layout (or the
// built-in layout) and can be edited and passed back with --layout.
type Init struct {
	Output string `default:"${layout}" help:"Layout file to write or '-' for stdout." placeholder:"PATH" short:"o"`
	Force  bool   `help:"Overwrite existing layout file" short:"f"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	layout, err := layoutFrom(ctx)
	if err != nil {
		return err
	}

	var buf bytes.Buffer

	err = ui.FormatLayoutYAML(ctx, &buf, layout)
	if err != nil {
		return ErrYAMLMarshal.Wrap(err)
	}

	if i.Output == ui.Stdout {
		_, err = buf.WriteTo(outputFrom(ctx))

		return err
	}

	// Check if file exists and force not set
	_, err = os.Stat(i.Output)
	if err == nil && !i.Force {
		return ErrWriteLayout.
			With(slog.String("file", i.Output)).
			With(slog.Bool("exists", true)).
			Wrap(ErrFileExists)
	}

	err = ui.WriteFile(i.Output, buf.String())
	if err != nil {
		return ErrWriteLayout.
			With(slog.String("file", i.Output)).
			Wrap(err)
	}

	logger().DebugContext(ctx, "initialized layout file",
		slog.String("path", i.Output),
	)

	return nil
}
