package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
)

func readAll(t *testing.T, srcs []Source) []string {
	t.Helper()

	out := make([]string, len(srcs))

	for i, src := range srcs {
		if src.Name == stdinSource {
			out[i] = stdinSource

			continue
		}

		data, err := io.ReadAll(src)
		if err != nil {
			t.Fatalf("reading %s: %v", src.Name, err)
		}

		out[i] = string(data)
	}

	return out
}

// TestOpenSourcesEmpty tests that an empty source list opens nothing.
func TestOpenSourcesEmpty(t *testing.T) {
	srcs, closeAll, err := openSources(nil)
	if err != nil {
		t.Fatalf("openSources(nil) error = %v", err)
	}
	defer closeAll()

	if len(srcs) != 0 {
		t.Errorf("openSources(nil) returned %d sources", len(srcs))
	}
}

// TestOpenSourcesMultipleFiles tests that files are opened in order.
func TestOpenSourcesMultipleFiles(t *testing.T) {
	tmpdir := t.TempDir()

	file1 := filepath.Join(tmpdir, "first.ui")
	file2 := filepath.Join(tmpdir, "second.ui")

	if err := os.WriteFile(file1, []byte("first"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(file2, []byte("second"), 0o644); err != nil {
		t.Fatal(err)
	}

	srcs, closeAll, err := openSources([]string{file1, file2})
	if err != nil {
		t.Fatal(err)
	}
	defer closeAll()

	got := readAll(t, srcs)
	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Errorf("got %q, want [first second]", got)
	}

	if srcs[0].Name != file1 {
		t.Errorf("source name = %q, want %q", srcs[0].Name, file1)
	}
}

// TestOpenSourcesDuplicatePaths tests deduplication of identical, relative,
// and symlinked paths to one file.
func TestOpenSourcesDuplicatePaths(t *testing.T) {
	tmpdir := t.TempDir()

	target := filepath.Join(tmpdir, "board.ui")
	if err := os.WriteFile(target, []byte("unique"), 0o644); err != nil {
		t.Fatal(err)
	}

	link := filepath.Join(tmpdir, "link.ui")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	t.Chdir(tmpdir)

	srcs, closeAll, err := openSources([]string{target, "board.ui", link, target})
	if err != nil {
		t.Fatal(err)
	}
	defer closeAll()

	if got := readAll(t, srcs); len(got) != 1 || got[0] != "unique" {
		t.Errorf("got %q, want the file read once", got)
	}
}

// TestOpenSourcesStdinLast tests that stdin is collapsed and placed last.
func TestOpenSourcesStdinLast(t *testing.T) {
	file := filepath.Join(t.TempDir(), "board.ui")
	if err := os.WriteFile(file, []byte("file"), 0o644); err != nil {
		t.Fatal(err)
	}

	srcs, closeAll, err := openSources([]string{"-", file, "-"})
	if err != nil {
		t.Fatal(err)
	}
	defer closeAll()

	got := readAll(t, srcs)
	if len(got) != 2 || got[0] != "file" || got[1] != stdinSource {
		t.Errorf("got %q, want [file -]", got)
	}
}

// TestOpenSourcesNonexistentFile tests that a missing file is an error.
func TestOpenSourcesNonexistentFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.ui")

	_, closeAll, err := openSources([]string{missing})
	defer closeAll()

	if err == nil {
		t.Error("openSources() expected error for missing file")
	}
}

func TestOutputFrom(t *testing.T) {
	ctx := context.Background()

	if w := outputFrom(ctx); w != os.Stdout {
		t.Errorf("outputFrom(empty) = %v, want os.Stdout", w)
	}

	var kongOut bytes.Buffer

	var cli struct{}

	parser, err := kong.New(&cli, kong.Writers(&kongOut, io.Discard))
	if err != nil {
		t.Fatalf("kong.New() error = %v", err)
	}

	ktx, err := parser.Parse(nil)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	ctx = WithContext(ctx, ktx)
	if w := outputFrom(ctx); w != &kongOut {
		t.Errorf("outputFrom(kong) = %v, want kong stdout", w)
	}

	var explicit bytes.Buffer

	ctx = WithOutput(ctx, &explicit)
	if w := outputFrom(ctx); w != &explicit {
		t.Errorf("outputFrom(WithOutput) = %v, want explicit writer", w)
	}
}
