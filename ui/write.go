package ui

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Stdout is the path [WriteFile] treats as standard output.
const Stdout = "-"

// WriteFile writes the rendered document doc to path, replacing any
// existing file. A path of "-" writes to standard output.
//
// The document is written to a temporary file in the destination directory
// and renamed into place, so readers never observe a partial document.
// The destination directory must already exist.
func WriteFile(path, doc string) error {
	if path == Stdout {
		return writeTo(os.Stdout, path, doc)
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".*")
	if err != nil {
		return ErrWrite.With(slog.String("file", path)).Wrap(err)
	}

	defer os.Remove(tmp.Name())

	err = writeTo(tmp, path, doc)
	if err != nil {
		_ = tmp.Close()

		return err
	}

	err = tmp.Close()
	if err != nil {
		return ErrWrite.With(slog.String("file", path)).Wrap(err)
	}

	err = os.Chmod(tmp.Name(), 0o644)
	if err != nil {
		return ErrWrite.With(slog.String("file", path)).Wrap(err)
	}

	err = os.Rename(tmp.Name(), path)
	if err != nil {
		return ErrWrite.With(slog.String("file", path)).Wrap(err)
	}

	return nil
}

func writeTo(w io.Writer, path, doc string) error {
	_, err := io.WriteString(w, doc)
	if err != nil {
		return ErrWrite.With(slog.String("file", path)).Wrap(err)
	}

	return nil
}
