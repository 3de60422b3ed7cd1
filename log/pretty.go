package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// palette holds the styles used by the pretty handlers.
// Styles are bound to a renderer for the handler's output, so color is
// dropped automatically when the output is not a terminal.
type palette struct {
	key     lipgloss.Style
	str     lipgloss.Style
	num     lipgloss.Style
	yes     lipgloss.Style
	no      lipgloss.Style
	elapsed lipgloss.Style
	stamp   lipgloss.Style
	null    lipgloss.Style
	trace   lipgloss.Style
	debug   lipgloss.Style
	info    lipgloss.Style
	warn    lipgloss.Style
	error   lipgloss.Style
}

func newPalette(w io.Writer) *palette {
	r := lipgloss.NewRenderer(w)

	return &palette{
		key:     r.NewStyle().Foreground(lipgloss.Color("8")),
		str:     r.NewStyle().Foreground(lipgloss.Color("6")),
		num:     r.NewStyle().Foreground(lipgloss.Color("3")),
		yes:     r.NewStyle().Foreground(lipgloss.Color("2")),
		no:      r.NewStyle().Foreground(lipgloss.Color("1")),
		elapsed: r.NewStyle().Foreground(lipgloss.Color("5")),
		stamp:   r.NewStyle().Foreground(lipgloss.Color("4")),
		null:    r.NewStyle().Foreground(lipgloss.Color("8")),
		trace:   r.NewStyle().Foreground(lipgloss.Color("8")),
		debug:   r.NewStyle().Foreground(lipgloss.Color("4")),
		info:    r.NewStyle().Foreground(lipgloss.Color("2")),
		warn:    r.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		error:   r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
}

func (p *palette) level(level slog.Level) string {
	text := strings.ToUpper(Level(level).String())

	switch {
	case level >= slog.LevelError:
		return p.error.Render(text)
	case level >= slog.LevelWarn:
		return p.warn.Render(text)
	case level >= slog.LevelInfo:
		return p.info.Render(text)
	case level >= slog.LevelDebug:
		return p.debug.Render(text)
	default:
		return p.trace.Render(text)
	}
}

// prettyTextHandler implements a colorized text handler for log messages.
type prettyTextHandler struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	style  *palette
	attrs  []slog.Attr
	groups []string
}

func newPrettyTextHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
) *prettyTextHandler {
	return &prettyTextHandler{
		opts:  *opts,
		mu:    &sync.Mutex{},
		w:     w,
		style: newPalette(w),
	}
}

func (h *prettyTextHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *prettyTextHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	// Write time if configured
	if !r.Time.IsZero() {
		if t := h.replace(slog.Time(slog.TimeKey, r.Time)); t.Key != "" {
			h.writeAttr(buf, "", t)
		}
	}

	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}

	buf.WriteString(h.style.level(r.Level))

	// Write source if configured
	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			h.writeAttr(buf, "", slog.String(
				slog.SourceKey, fmt.Sprintf("%s:%d", src.File, src.Line)))
		}
	}

	buf.WriteByte(' ')
	buf.WriteString(r.Message)

	prefix := strings.Join(h.groups, ".")

	for _, a := range h.attrs {
		h.writeAttr(buf, "", a)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(buf, prefix, a)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	prefix := strings.Join(h.groups, ".")

	qualified := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		if prefix != "" {
			a.Key = prefix + "." + a.Key
		}

		qualified[i] = a
	}

	c := *h
	c.attrs = append(h.attrs[:len(h.attrs):len(h.attrs)], qualified...)

	return &c
}

func (h *prettyTextHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := *h
	c.groups = append(h.groups[:len(h.groups):len(h.groups)], name)

	return &c
}

// replace applies the configured ReplaceAttr function, if any.
func (h *prettyTextHandler) replace(a slog.Attr) slog.Attr {
	if h.opts.ReplaceAttr == nil {
		return a
	}

	return h.opts.ReplaceAttr(h.groups, a)
}

func (h *prettyTextHandler) writeAttr(buf *bytes.Buffer, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()

	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if prefix != "" {
		key = prefix + "." + key
	}

	// Groups are flattened into dotted keys.
	if a.Value.Kind() == slog.KindGroup {
		for _, g := range a.Value.Group() {
			h.writeAttr(buf, key, g)
		}

		return
	}

	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}

	buf.WriteString(h.style.key.Render(key))
	buf.WriteByte('=')

	h.writeValue(buf, a.Value)
}

func (h *prettyTextHandler) writeValue(buf *bytes.Buffer, v slog.Value) {
	s := h.style

	switch v.Kind() {
	case slog.KindString:
		buf.WriteString(s.str.Render(v.String()))

	case slog.KindInt64:
		buf.WriteString(s.num.Render(strconv.FormatInt(v.Int64(), 10)))

	case slog.KindUint64:
		buf.WriteString(s.num.Render(strconv.FormatUint(v.Uint64(), 10)))

	case slog.KindFloat64:
		buf.WriteString(s.num.Render(strconv.FormatFloat(v.Float64(), 'g', -1, 64)))

	case slog.KindBool:
		if v.Bool() {
			buf.WriteString(s.yes.Render("true"))
		} else {
			buf.WriteString(s.no.Render("false"))
		}

	case slog.KindDuration:
		buf.WriteString(s.elapsed.Render(v.Duration().String()))

	case slog.KindTime:
		buf.WriteString(s.stamp.Render(v.Time().String()))

	default:
		if err, ok := v.Any().(error); ok {
			buf.WriteString(s.no.Render(err.Error()))

			return
		}

		buf.WriteString(s.str.Render(v.String()))
	}
}

// prettyJSONHandler implements a pretty-printed JSON-like handler for log
// messages: one field per line, keys and values colorized.
type prettyJSONHandler struct {
	opts  slog.HandlerOptions
	mu    *sync.Mutex
	w     io.Writer
	style *palette
	attrs []slog.Attr
}

func newPrettyJSONHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
) *prettyJSONHandler {
	return &prettyJSONHandler{
		opts:  *opts,
		mu:    &sync.Mutex{},
		w:     w,
		style: newPalette(w),
	}
}

func (h *prettyJSONHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *prettyJSONHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	buf.WriteString("{\n")

	first := true

	if !r.Time.IsZero() {
		t := slog.Time(slog.TimeKey, r.Time)
		if h.opts.ReplaceAttr != nil {
			t = h.opts.ReplaceAttr(nil, t)
		}

		if t.Key != "" {
			h.writeField(buf, 1, t.Key, h.style.stamp.Render(t.Value.String()), &first)
		}
	}

	h.writeField(buf, 1, slog.LevelKey, h.style.level(r.Level), &first)

	// Write source if configured
	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			h.writeField(buf, 1, slog.SourceKey,
				h.style.str.Render(fmt.Sprintf("%s:%d", src.File, src.Line)), &first)
		}
	}

	h.writeField(buf, 1, slog.MessageKey, h.style.str.Render(r.Message), &first)

	for _, a := range h.attrs {
		h.writeAttr(buf, 1, a, &first)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(buf, 1, a, &first)

		return true
	})

	buf.WriteString("\n}\n")

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyJSONHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...)

	return &c
}

func (h *prettyJSONHandler) WithGroup(string) slog.Handler {
	return h
}

func (h *prettyJSONHandler) writeField(
	buf *bytes.Buffer,
	depth int,
	key, rendered string,
	first *bool,
) {
	if !*first {
		buf.WriteString(",\n")
	}

	*first = false

	buf.WriteString(strings.Repeat("  ", depth))
	buf.WriteString(h.style.key.Render(key))
	buf.WriteString(": ")
	buf.WriteString(rendered)
}

func (h *prettyJSONHandler) writeAttr(
	buf *bytes.Buffer,
	depth int,
	a slog.Attr,
	first *bool,
) {
	a.Value = a.Value.Resolve()

	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() != slog.KindGroup {
		h.writeField(buf, depth, a.Key, h.render(a.Value), first)

		return
	}

	if !*first {
		buf.WriteString(",\n")
	}

	*first = false

	buf.WriteString(strings.Repeat("  ", depth))
	buf.WriteString(h.style.key.Render(a.Key))
	buf.WriteString(": {\n")

	inner := true
	for _, g := range a.Value.Group() {
		h.writeAttr(buf, depth+1, g, &inner)
	}

	buf.WriteString("\n")
	buf.WriteString(strings.Repeat("  ", depth))
	buf.WriteString("}")
}

func (h *prettyJSONHandler) render(v slog.Value) string {
	s := h.style

	switch v.Kind() {
	case slog.KindString:
		return s.str.Render(v.String())

	case slog.KindInt64, slog.KindUint64, slog.KindFloat64:
		return s.num.Render(v.String())

	case slog.KindBool:
		if v.Bool() {
			return s.yes.Render("true")
		}

		return s.no.Render("false")

	case slog.KindDuration:
		return s.elapsed.Render(v.Duration().String())

	case slog.KindTime:
		return s.stamp.Render(v.Time().String())

	default:
		switch val := v.Any().(type) {
		case nil:
			return s.null.Render("null")
		case error:
			return s.no.Render(val.Error())
		default:
			return s.str.Render(fmt.Sprint(val))
		}
	}
}
