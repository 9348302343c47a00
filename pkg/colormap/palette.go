package colormap

import "fmt"

// Stop is a single color entry at a position along a palette's gradient.
type Stop struct {
	Color Color
	Pos   float64
}

// Palette is an immutable ordered sequence of color stops spanning [0, 1].
// Palettes loaded from XPM files are uniformly spaced; explicit positions
// are available through NewPaletteStops.
type Palette struct {
	name  string
	stops []Stop
}

// NewPalette builds a palette with uniformly spaced stops: the first color
// sits at 0, the last at 1.
func NewPalette(name string, colors []Color) (*Palette, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("palette %q has no colors", name)
	}
	stops := make([]Stop, len(colors))
	for i, c := range colors {
		if !c.valid() {
			return nil, fmt.Errorf("palette %q color %d has channels outside [0, 1]", name, i)
		}
		var pos float64
		if len(colors) > 1 {
			pos = float64(i) / float64(len(colors)-1)
		}
		stops[i] = Stop{Color: c, Pos: pos}
	}
	return &Palette{name: name, stops: stops}, nil
}

// NewPaletteStops builds a palette from explicit stop positions. Positions
// must be non-decreasing and lie in [0, 1].
func NewPaletteStops(name string, stops []Stop) (*Palette, error) {
	if len(stops) == 0 {
		return nil, fmt.Errorf("palette %q has no stops", name)
	}
	for i, s := range stops {
		if !s.Color.valid() {
			return nil, fmt.Errorf("palette %q stop %d has channels outside [0, 1]", name, i)
		}
		if s.Pos < 0 || s.Pos > 1 {
			return nil, fmt.Errorf("palette %q stop %d position %g outside [0, 1]", name, i, s.Pos)
		}
		if i > 0 && s.Pos < stops[i-1].Pos {
			return nil, fmt.Errorf("palette %q stop positions must be non-decreasing, got %g after %g", name, s.Pos, stops[i-1].Pos)
		}
	}
	own := make([]Stop, len(stops))
	copy(own, stops)
	return &Palette{name: name, stops: own}, nil
}

// Name returns the palette's catalog name.
func (p *Palette) Name() string { return p.name }

// Len returns the number of stops.
func (p *Palette) Len() int { return len(p.stops) }

// Stops returns a copy of the palette's stops in order.
func (p *Palette) Stops() []Stop {
	out := make([]Stop, len(p.stops))
	copy(out, p.stops)
	return out
}

// Colors returns a copy of the stop colors in declaration order.
func (p *Palette) Colors() []Color {
	out := make([]Color, len(p.stops))
	for i, s := range p.stops {
		out[i] = s.Color
	}
	return out
}

// At returns the palette color at position t. Values outside the stop range
// clamp to the end stops; an exact stop position returns that stop's color
// with no blending; anything between two stops interpolates each channel
// linearly.
func (p *Palette) At(t float64) Color {
	stops := p.stops
	last := len(stops) - 1
	if last == 0 || t <= stops[0].Pos {
		return stops[0].Color
	}
	if t >= stops[last].Pos {
		return stops[last].Color
	}
	for i := 1; i <= last; i++ {
		hi := stops[i]
		if t > hi.Pos {
			continue
		}
		if t == hi.Pos {
			return hi.Color
		}
		lo := stops[i-1]
		span := hi.Pos - lo.Pos
		if span == 0 {
			return hi.Color
		}
		return lo.Color.lerp(hi.Color, (t-lo.Pos)/span)
	}
	return stops[last].Color
}

// Sample returns n evenly spaced colors across the palette's full range.
func (p *Palette) Sample(n int) []Color {
	if n < 1 {
		return nil
	}
	out := make([]Color, n)
	if n == 1 {
		out[0] = p.At(0)
		return out
	}
	for i := range out {
		out[i] = p.At(float64(i) / float64(n-1))
	}
	return out
}

// Map converts raw values into colors through norm. Output order and length
// match the input.
func (p *Palette) Map(values []float64, norm Normalizer) []Color {
	out := make([]Color, len(values))
	for i, v := range values {
		out[i] = p.At(norm.Normalize(v))
	}
	return out
}
