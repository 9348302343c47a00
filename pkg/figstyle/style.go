package figstyle

import (
	"image/color"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// CurveStyle holds the line and glyph styling for one plotted curve.
type CurveStyle struct {
	Line  draw.LineStyle
	Glyph draw.GlyphStyle
	// MarkEvery is the glyph spacing: draw a glyph at every n-th point.
	MarkEvery int
}

// CycleConfig controls Cycle. The zero value gives the journal defaults:
// JournalMixed colors, open markers, a glyph every 7 points.
type CycleConfig struct {
	Colors        palette.Palette
	MarkEvery     int
	FilledMarkers bool
}

// solidRun is how many curves draw solid lines before dash patterns kick in.
const solidRun = 10

var (
	openShapes = []draw.GlyphDrawer{
		draw.RingGlyph{},
		draw.SquareGlyph{},
		draw.TriangleGlyph{},
		draw.PlusGlyph{},
		draw.CrossGlyph{},
	}
	filledShapes = []draw.GlyphDrawer{
		draw.CircleGlyph{},
		draw.BoxGlyph{},
		draw.PyramidGlyph{},
		draw.PlusGlyph{},
		draw.CrossGlyph{},
	}
)

// Cycle returns styles for n curves. Every curve gets its own color and
// glyph shape; the first solidRun curves draw solid lines and later ones
// rotate through dash patterns to stay tellable apart in print.
func Cycle(n int, cfg CycleConfig) []CurveStyle {
	if n <= 0 {
		return nil
	}
	colors := cfg.Colors
	if colors == nil {
		colors = JournalMixed
	}
	markEvery := cfg.MarkEvery
	if markEvery <= 0 {
		markEvery = 7
	}
	shapes := openShapes
	if cfg.FilledMarkers {
		shapes = filledShapes
	}

	list := colors.Colors()
	styles := make([]CurveStyle, n)
	for i := range styles {
		var dashes []vg.Length
		if i >= solidRun {
			dashes = plotutil.Dashes(1 + (i-solidRun)%3)
		}
		c := list[i%len(list)]
		styles[i] = CurveStyle{
			Line: draw.LineStyle{
				Color:  c,
				Width:  vg.Points(0.75),
				Dashes: dashes,
			},
			Glyph: draw.GlyphStyle{
				Color:  c,
				Radius: vg.Points(1.5),
				Shape:  shapes[i%len(shapes)],
			},
			MarkEvery: markEvery,
		}
	}
	return styles
}

// ReferenceLine returns the style for an experimental or reference curve:
// a black dashed line, heavier than the cycle lines, meant to be plotted
// first so it reads as the anchor.
func ReferenceLine() draw.LineStyle {
	return draw.LineStyle{
		Color:  color.Black,
		Width:  vg.Points(1),
		Dashes: plotutil.Dashes(1),
	}
}
