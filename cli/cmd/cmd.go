package cmd

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/ardnew/boardgen/log"
	"github.com/ardnew/boardgen/ui"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

type (
	layoutFileKey struct{}
	outputKey     struct{}
)

// WithLayoutFile returns a new context.Context carrying the path of the YAML
// layout file selected with the global --layout flag. An empty path selects
// the built-in layout.
func WithLayoutFile(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, layoutFileKey{}, path)
}

// layoutFrom loads the layout selected by [WithLayoutFile].
func layoutFrom(ctx context.Context) (ui.Layout, error) {
	path, _ := ctx.Value(layoutFileKey{}).(string)

	return ui.LoadLayoutFile(ctx, path)
}

// WithOutput returns a new context.Context whose commands print their
// results to w instead of standard output.
func WithOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, outputKey{}, w)
}

// outputFrom returns the writer set by [WithOutput], or else kong's
// configured stdout, or else [os.Stdout].
func outputFrom(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(outputKey{}).(io.Writer); ok && w != nil {
		return w
	}

	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stdout != nil {
		return ktx.Stdout
	}

	return os.Stdout
}

// Source is one input document.
type Source struct {
	// Name is the path the document was read from, or "-" for stdin.
	Name string
	io.Reader
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// fileKey uniquely identifies a file by its device and inode numbers.
// This handles deduplication across symlinks, absolute/relative paths, and
// special device files.
type fileKey struct {
	dev uint64
	ino uint64
}

// openSources opens each of the given source paths once, in order.
//
// Duplicates are dropped by resolving symlinks and comparing device/inode
// pairs. All occurrences of "-" are replaced with a single stdin source
// placed last. The returned close function closes every opened file.
func openSources(sources []string) ([]Source, func(), error) {
	var (
		srcs   = make([]Source, 0, len(sources))
		files  []*os.File
		seen   = make(map[fileKey]struct{})
		closer = func() {
			for _, f := range files {
				_ = f.Close()
			}
		}
	)

	stdinInfo, _ := os.Stdin.Stat()
	stdinKey, _ := makeFileKey(stdinInfo)

	for _, src := range sources {
		if src == stdinSource {
			seen[stdinKey] = struct{}{}

			continue
		}

		file, ok, err := openUniqueFile(src, seen)
		if err != nil {
			closer()

			return nil, func() {}, err
		}

		if !ok {
			continue
		}

		files = append(files, file)
		srcs = append(srcs, Source{Name: src, Reader: file})
	}

	// Stdin may have been included via "-" or as a named file.
	// Both of which will be represented by stdinKey in seen.
	if _, ok := seen[stdinKey]; ok {
		srcs = append(srcs, Source{Name: stdinSource, Reader: os.Stdin})
	}

	return srcs, closer, nil
}

// openUniqueFile opens the file at path if it hasn't been seen before.
// It resolves symlinks and uses device/inode to detect duplicates.
// A duplicate returns ok false and no error.
func openUniqueFile(
	path string,
	seen map[fileKey]struct{},
) (file *os.File, ok bool, err error) {
	// Resolve to absolute path to handle relative path duplicates.
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, false, err
	}

	// Resolve symlinks to their target.
	resolved, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return nil, false, err
	}

	// Get file info to extract device and inode.
	info, err := os.Stat(resolved)
	if err != nil {
		return nil, false, err
	}

	if key, ok := makeFileKey(info); ok {
		if _, exists := seen[key]; exists {
			return nil, false, nil
		}

		seen[key] = struct{}{}
	}

	file, err = os.Open(resolved)
	if err != nil {
		return nil, false, err
	}

	return file, true, nil
}

// makeFileKey creates a fileKey from os.FileInfo.
// Returns false if the underlying Sys() data is not of type *syscall.Stat_t.
func makeFileKey(info os.FileInfo) (key fileKey, ok bool) {
	if info == nil {
		return key, false
	}

	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return key, false
	}

	return fileKey{dev: uint64(stat.Dev), ino: stat.Ino}, true //nolint:unconvert
}

// documentFrom returns the document a command operates on: the parsed
// source file when one is given, otherwise the tree built from the
// selected layout.
func documentFrom(ctx context.Context, source string) (*ui.Node, error) {
	if source == "" {
		layout, err := layoutFrom(ctx)
		if err != nil {
			return nil, err
		}

		return ui.NewBuilder(layout, ui.WithLogger(logger())).Build(ctx)
	}

	srcs, closeAll, err := openSources([]string{source})
	if err != nil {
		return nil, ErrReadSource.With(sourceAttr(source)).Wrap(err)
	}
	defer closeAll()

	if len(srcs) == 0 {
		return nil, ErrReadSource.With(sourceAttr(source))
	}

	return ui.ParseReader(ctx, srcs[0])
}

// logger returns the structured logger handed to library components.
func logger() log.Logger {
	return log.Default()
}
