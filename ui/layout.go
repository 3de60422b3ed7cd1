package ui

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

// Default layout parameters.
const (
	DefaultRows     = 12
	DefaultSegments = 25
	DefaultTitle    = "Better ScoreBoard"
)

// Layout holds every parameter the builder consumes.
//
// The zero Layout is invalid; start from [DefaultLayout] and override
// individual fields.
type Layout struct {
	Rows     int    `yaml:"rows"`
	Segments int    `yaml:"segments"`
	Title    string `yaml:"title"`

	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	OffsetRight int `yaml:"offsetRight"`
	OffsetTop   int `yaml:"offsetTop"`
	Padding     int `yaml:"padding"`

	PanelTexturePath string `yaml:"panelTexturePath"`
	PanelBorder      int    `yaml:"panelBorder"`

	HeaderHeight    int    `yaml:"headerHeight"`
	LogoTexturePath string `yaml:"logoTexturePath"`
	LogoHeight      int    `yaml:"logoHeight"`
	TitleHeight     int    `yaml:"titleHeight"`
	TitleTop        int    `yaml:"titleTop"`
	TitleFontSize   int    `yaml:"titleFontSize"`
	TitleColor      string `yaml:"titleColor"`

	DividerWidth       int    `yaml:"dividerWidth"`
	DividerHeight      int    `yaml:"dividerHeight"`
	DividerTop         int    `yaml:"dividerTop"`
	DividerTexturePath string `yaml:"dividerTexturePath"`

	LinesHeight int    `yaml:"linesHeight"`
	LineHeight  int    `yaml:"lineHeight"`
	FontSize    int    `yaml:"fontSize"`
	TextColor   string `yaml:"textColor"`
}

// DefaultLayout returns the layout of the stock scoreboard HUD.
func DefaultLayout() Layout {
	return Layout{
		Rows:     DefaultRows,
		Segments: DefaultSegments,
		Title:    DefaultTitle,

		Width:       280,
		Height:      320,
		OffsetRight: 1,
		OffsetTop:   400,
		Padding:     10,

		PanelTexturePath: "../Common/ContainerPanelPatch.png",
		PanelBorder:      6,

		HeaderHeight:    90,
		LogoTexturePath: "../Textures/BetterScoreBoard/better_logo.png",
		LogoHeight:      64,
		TitleHeight:     22,
		TitleTop:        5,
		TitleFontSize:   16,
		TitleColor:      "#f2f4f8",

		DividerWidth:       296,
		DividerHeight:      4,
		DividerTop:         6,
		DividerTexturePath: "Tiles/TileEmpty.png",

		LinesHeight: 180,
		LineHeight:  18,
		FontSize:    14,
		TextColor:   "#f6f8ff",
	}
}

// headerPadding is the horizontal padding on each side of the header.
const headerPadding = 4

// innerWidth is the root width less its horizontal padding.
func (l Layout) innerWidth() int {
	return l.Width - 2*l.Padding
}

// headerContentWidth is the width available to the logo and title.
func (l Layout) headerContentWidth() int {
	return l.innerWidth() - 2*headerPadding
}

// Validate reports an [ErrConfig] describing the first invalid parameter.
func (l Layout) Validate() error {
	if l.Rows <= 0 {
		return ErrConfig.With(
			slog.Int("rows", l.Rows),
			slog.String("reason", "rows must be positive"),
		)
	}

	if l.Segments <= 1 {
		return ErrConfig.With(
			slog.Int("segments", l.Segments),
			slog.String("reason", "segments must be at least 2"),
		)
	}

	for _, p := range []struct {
		name  string
		value int
	}{
		{"width", l.Width},
		{"height", l.Height},
		{"headerHeight", l.HeaderHeight},
		{"logoHeight", l.LogoHeight},
		{"titleHeight", l.TitleHeight},
		{"titleFontSize", l.TitleFontSize},
		{"dividerWidth", l.DividerWidth},
		{"dividerHeight", l.DividerHeight},
		{"linesHeight", l.LinesHeight},
		{"lineHeight", l.LineHeight},
		{"fontSize", l.FontSize},
	} {
		if p.value <= 0 {
			return ErrConfig.With(
				slog.Int(p.name, p.value),
				slog.String("reason", p.name+" must be positive"),
			)
		}
	}

	if l.Padding < 0 || l.headerContentWidth() <= 0 {
		return ErrConfig.With(
			slog.Int("width", l.Width),
			slog.Int("padding", l.Padding),
			slog.String("reason", "padding leaves no room for content"),
		)
	}

	if strings.TrimSpace(l.Title) == "" {
		return ErrConfig.With(slog.String("reason", "title must not be empty"))
	}

	for _, c := range []struct {
		name  string
		value string
	}{
		{"titleColor", l.TitleColor},
		{"textColor", l.TextColor},
	} {
		if !isHexColor(strings.TrimPrefix(c.value, "#")) {
			return ErrConfig.With(
				slog.String(c.name, c.value),
				slog.String("reason", "color must be #RGB, #RGBA, #RRGGBB, or #RRGGBBAA"),
			)
		}
	}

	return nil
}

// LoadLayout reads a YAML layout from r on top of [DefaultLayout].
// Keys absent from the document keep their default values.
func LoadLayout(ctx context.Context, r io.Reader) (Layout, error) {
	layout := DefaultLayout()

	data, err := io.ReadAll(r)
	if err != nil {
		return layout, ErrLayoutFile.Wrap(err)
	}

	if strings.TrimSpace(string(data)) == "" {
		return layout, nil
	}

	err = yaml.UnmarshalContext(ctx, data, &layout, yaml.Strict())
	if err != nil {
		return layout, ErrLayoutFile.Wrap(err)
	}

	return layout, nil
}

// LoadLayoutFile reads a YAML layout from the file at path.
// An empty path yields [DefaultLayout].
func LoadLayoutFile(ctx context.Context, path string) (Layout, error) {
	if path == "" {
		return DefaultLayout(), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return DefaultLayout(), ErrLayoutFile.
			With(slog.String("file", path)).
			Wrap(err)
	}
	defer file.Close()

	layout, err := LoadLayout(ctx, file)
	if err != nil {
		return layout, WrapError(err).With(slog.String("file", path))
	}

	return layout, nil
}

// FormatLayoutYAML writes l as a YAML document.
func FormatLayoutYAML(ctx context.Context, w io.Writer, l Layout) error {
	data, err := yaml.MarshalContext(ctx, l, yaml.Indent(DefaultIndent))
	if err != nil {
		return err
	}

	_, err = w.Write(data)

	return err
}
