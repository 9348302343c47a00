package colormap

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Color is a single palette entry with four explicit channels in [0, 1].
// HasAlpha records whether the source spec carried an alpha channel; colors
// without one hold A = 1.
type Color struct {
	R, G, B, A float64
	HasAlpha   bool
}

// ParseColor converts a color spec into a Color. Accepted forms are hex
// triplets (#rgb, #rrggbb), 8-digit hex with alpha (#rrggbbaa), and the
// named colors of the X11/SVG table.
func ParseColor(spec string) (Color, error) {
	if strings.HasPrefix(spec, "#") {
		return parseHex(spec)
	}
	if c, ok := colornames.Map[strings.ToLower(spec)]; ok {
		return Color{
			R: float64(c.R) / 255,
			G: float64(c.G) / 255,
			B: float64(c.B) / 255,
			A: 1,
		}, nil
	}
	return Color{}, fmt.Errorf("unknown color name %q", spec)
}

func parseHex(spec string) (Color, error) {
	switch len(spec) {
	case 4, 7:
		c, err := colorful.Hex(spec)
		if err != nil {
			return Color{}, err
		}
		return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
	case 9:
		c, err := colorful.Hex(spec[:7])
		if err != nil {
			return Color{}, err
		}
		alpha, err := strconv.ParseUint(spec[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid alpha in %q: %w", spec, err)
		}
		return Color{R: c.R, G: c.G, B: c.B, A: float64(alpha) / 255, HasAlpha: true}, nil
	}
	return Color{}, fmt.Errorf("unsupported hex color %q", spec)
}

// RGBA implements image/color.Color with premultiplied 16-bit channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	ca := clamp01(c.A)
	r = uint32(clamp01(c.R)*ca*0xffff + 0.5)
	g = uint32(clamp01(c.G)*ca*0xffff + 0.5)
	b = uint32(clamp01(c.B)*ca*0xffff + 0.5)
	a = uint32(ca*0xffff + 0.5)
	return
}

// lerp blends c toward o in plain RGB space. Alpha interpolates like any
// other channel; the presence flag survives from either side.
func (c Color) lerp(o Color, t float64) Color {
	m := colorful.Color{R: c.R, G: c.G, B: c.B}.BlendRgb(colorful.Color{R: o.R, G: o.G, B: o.B}, t)
	return Color{
		R:        m.R,
		G:        m.G,
		B:        m.B,
		A:        c.A + t*(o.A-c.A),
		HasAlpha: c.HasAlpha || o.HasAlpha,
	}
}

func (c Color) valid() bool {
	for _, ch := range [...]float64{c.R, c.G, c.B, c.A} {
		if math.IsNaN(ch) || ch < 0 || ch > 1 {
			return false
		}
	}
	return true
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
