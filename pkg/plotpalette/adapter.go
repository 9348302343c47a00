// Package plotpalette bridges catalog palettes into gonum/plot's palette
// API, so plots can use XPM gradients anywhere a ColorMap or Palette is
// accepted.
package plotpalette

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/palette"

	"github.com/pubplots/colormaps/pkg/colormap"
)

// Map adapts a catalog palette to palette.ColorMap. The zero bounds are
// [0, 1] with full opacity.
type Map struct {
	src   *colormap.Palette
	min   float64
	max   float64
	alpha float64
}

var _ palette.ColorMap = (*Map)(nil)

// New wraps p as a ColorMap over [0, 1].
func New(p *colormap.Palette) *Map {
	return &Map{src: p, min: 0, max: 1, alpha: 1}
}

// At returns the color for v, interpolated between the palette stops.
// Values outside [Min, Max] are rejected with palette.ErrUnderflow or
// palette.ErrOverflow rather than clamped.
func (m *Map) At(v float64) (color.Color, error) {
	switch {
	case math.IsNaN(v):
		return nil, palette.ErrNaN
	case v < m.min:
		return nil, palette.ErrUnderflow
	case v > m.max:
		return nil, palette.ErrOverflow
	}
	t := 0.5
	if m.max > m.min {
		t = (v - m.min) / (m.max - m.min)
	}
	return m.apply(m.src.At(t)), nil
}

func (m *Map) apply(c colormap.Color) colormap.Color {
	if m.alpha != 1 {
		c.A *= m.alpha
		c.HasAlpha = true
	}
	return c
}

// Max returns the upper bound of the mapped range.
func (m *Map) Max() float64 { return m.max }

// SetMax sets the upper bound of the mapped range.
func (m *Map) SetMax(v float64) { m.max = v }

// Min returns the lower bound of the mapped range.
func (m *Map) Min() float64 { return m.min }

// SetMin sets the lower bound of the mapped range.
func (m *Map) SetMin(v float64) { m.min = v }

// Alpha returns the opacity applied to mapped colors.
func (m *Map) Alpha() float64 { return m.alpha }

// SetAlpha sets the opacity applied to mapped colors, from 0 (transparent)
// to 1 (opaque).
func (m *Map) SetAlpha(v float64) { m.alpha = v }

// Palette renders the map into a fixed list of colors.
func (m *Map) Palette(colors int) palette.Palette {
	samples := m.src.Sample(colors)
	out := make([]color.Color, len(samples))
	for i, c := range samples {
		out[i] = m.apply(c)
	}
	return colorList(out)
}

type colorList []color.Color

func (l colorList) Colors() []color.Color { return l }
