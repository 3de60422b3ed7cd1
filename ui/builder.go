package ui

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/ardnew/boardgen/log"
)

// Builder constructs the scoreboard layout tree from a [Layout].
//
// Example:
//
//	root, err := ui.NewBuilder(ui.DefaultLayout()).Build(ctx)
//	if err != nil {
//	    return err
//	}
//	doc, err := ui.Render(root)
type Builder struct {
	layout Layout
	logger log.Logger
}

// BuilderOption configures a [Builder].
type BuilderOption func(*Builder)

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) BuilderOption {
	return func(b *Builder) {
		b.logger = logger
	}
}

// NewBuilder creates a builder for the given layout.
func NewBuilder(layout Layout, opts ...BuilderOption) *Builder {
	b := &Builder{layout: layout}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Build validates the layout and returns the root of a complete tree.
// On error no tree is returned.
func (b *Builder) Build(ctx context.Context) (*Node, error) {
	l := b.layout

	err := l.Validate()
	if err != nil {
		return nil, err
	}

	b.logger.TraceContext(ctx, "build start",
		slog.Int("rows", l.Rows),
		slog.Int("segments", l.Segments),
	)

	header := b.header()
	header.Comment = "Header (logo + titre)"

	root := NewGroup("BoardRoot",
		[]Attr{
			Field("Anchor", Record(
				Field("Width", Int(l.Width)),
				Field("Height", Int(l.Height)),
				Field("Right", Int(l.OffsetRight)),
				Field("Top", Int(l.OffsetTop)),
			)),
			Field("LayoutMode", Ident("Top")),
			Field("Padding", padding(l.Padding, l.Padding, l.Padding, l.Padding)),
			Field("Background", Record(
				Field("TexturePath", String(l.PanelTexturePath)),
				Field("Border", Int(l.PanelBorder)),
			)),
		},
		header,
		b.divider(),
		b.lines(ctx),
	)

	b.logger.TraceContext(ctx, "build complete",
		slog.Int("groups", root.Count(KindGroup)),
		slog.Int("labels", root.Count(KindLabel)),
	)

	return root, nil
}

// Build is shorthand for NewBuilder(layout).Build(ctx).
func Build(ctx context.Context, layout Layout) (*Node, error) {
	return NewBuilder(layout).Build(ctx)
}

func (b *Builder) header() *Node {
	l := b.layout
	width := l.headerContentWidth()

	logo := NewGroup("BoardLogo", []Attr{
		Field("Anchor", Record(
			Field("Width", Int(width)),
			Field("Height", Int(l.LogoHeight)),
			Field("Left", Int(0)),
			Field("Top", Int(0)),
		)),
		Field("Background", String(l.LogoTexturePath)),
		Field("Visible", Bool(true)),
	})

	title := NewLabel("BoardTitle",
		Literal("Text", String(l.Title)),
		Field("Anchor", Record(
			Field("Width", Int(width)),
			Field("Height", Int(l.TitleHeight)),
			Field("Top", Int(l.TitleTop)),
		)),
		Field("Style", Record(
			Field("FontSize", Int(l.TitleFontSize)),
			Field("RenderBold", Bool(true)),
			Field("TextColor", Color(l.TitleColor)),
			Field("HorizontalAlignment", Ident("Center")),
			Field("VerticalAlignment", Ident("Center")),
		)),
	)

	return NewGroup("Header",
		[]Attr{
			Field("Anchor", Record(
				Field("Width", Int(l.innerWidth())),
				Field("Height", Int(l.HeaderHeight)),
			)),
			Field("LayoutMode", Ident("Top")),
			Field("Padding", padding(headerPadding, headerPadding, 0, 8)),
		},
		logo,
		title,
	)
}

func (b *Builder) divider() *Node {
	l := b.layout

	return NewLabel("Divider",
		Field("Anchor", Record(
			Field("Width", Int(l.DividerWidth)),
			Field("Height", Int(l.DividerHeight)),
			Field("Top", Int(l.DividerTop)),
		)),
		Field("Background", Record(
			Field("TexturePath", String(l.DividerTexturePath)),
		)),
	)
}

func (b *Builder) lines(ctx context.Context) *Node {
	l := b.layout

	rows := make([]*Node, 0, l.Rows)
	for r := 1; r <= l.Rows; r++ {
		rows = append(rows, b.row(r))
	}

	b.logger.TraceContext(ctx, "rows built", slog.Int("count", len(rows)))

	return NewGroup("Lines",
		[]Attr{
			Field("Anchor", Record(
				Field("Width", Int(l.innerWidth())),
				Field("Height", Int(l.LinesHeight)),
			)),
			Field("LayoutMode", Ident("Top")),
			Field("Padding", Record(
				Field("Top", Int(6)),
				Field("Bottom", Int(4)),
			)),
		},
		rows...,
	)
}

// row builds Line{r}Row with its primary label and Segments-1 secondary
// labels.
func (b *Builder) row(r int) *Node {
	l := b.layout
	base := LineID(r)

	labels := make([]*Node, 0, l.Segments)
	labels = append(labels, b.slot(base))

	for s := 2; s <= l.Segments; s++ {
		labels = append(labels, b.slot(SegmentID(r, s)))
	}

	return NewGroup(RowID(r),
		[]Attr{
			Field("Anchor", Record(
				Field("Width", Int(l.innerWidth())),
				Field("Height", Int(l.LineHeight)),
			)),
			Field("LayoutMode", Ident("Left")),
			Field("Visible", Bool(false)),
		},
		labels...,
	)
}

// slot builds an empty placeholder label; its text and color are set by the
// consumer at runtime.
func (b *Builder) slot(id string) *Node {
	l := b.layout

	return NewInlineLabel(id,
		Literal("Text", String("")),
		Field("Anchor", Record(
			Field("Height", Int(l.LineHeight)),
		)),
		Field("Style", Record(
			Field("FontSize", Int(l.FontSize)),
			Field("TextColor", Color(l.TextColor)),
			Field("VerticalAlignment", Ident("Center")),
		)),
	)
}

func padding(left, right, top, bottom int) Value {
	return Record(
		Field("Left", Int(left)),
		Field("Right", Int(right)),
		Field("Top", Int(top)),
		Field("Bottom", Int(bottom)),
	)
}

// RowID returns the identifier of row r (1-based).
func RowID(r int) string {
	return LineID(r) + "Row"
}

// LineID returns the identifier of the primary label of row r.
func LineID(r int) string {
	return "Line" + strconv.Itoa(r)
}

// SegmentID returns the identifier of segment s (2-based) of row r.
func SegmentID(r, s int) string {
	return LineID(r) + "Segment" + strconv.Itoa(s)
}
