package colormap

import (
	"fmt"
	"math"
)

// Normalizer maps raw values into [0, 1] given fixed bounds. The zero value
// is the degenerate [0, 0] normalizer, which sends every input to the
// midpoint.
type Normalizer struct {
	vmin, vmax float64
}

// NewNormalizer builds a normalizer from explicit bounds. Equal bounds are
// allowed: the degenerate range maps every value to 0.5 rather than failing.
func NewNormalizer(vmin, vmax float64) (Normalizer, error) {
	if !isFinite(vmin) || !isFinite(vmax) {
		return Normalizer{}, &RangeError{Vmin: vmin, Vmax: vmax,
			Msg: fmt.Sprintf("normalizer bounds must be finite, got [%g, %g]", vmin, vmax)}
	}
	if vmin > vmax {
		return Normalizer{}, &RangeError{Vmin: vmin, Vmax: vmax,
			Msg: fmt.Sprintf("normalizer bounds inverted: vmin %g > vmax %g", vmin, vmax)}
	}
	return Normalizer{vmin: vmin, vmax: vmax}, nil
}

// NormalizerFromValues derives bounds from the minimum and maximum of the
// batch, ignoring non-finite entries.
func NormalizerFromValues(values []float64) (Normalizer, error) {
	vmin, vmax := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if !isFinite(v) {
			continue
		}
		vmin = math.Min(vmin, v)
		vmax = math.Max(vmax, v)
	}
	if vmin > vmax {
		return Normalizer{}, &RangeError{Msg: "autorange requires at least one finite value"}
	}
	return Normalizer{vmin: vmin, vmax: vmax}, nil
}

// Min returns the lower bound.
func (n Normalizer) Min() float64 { return n.vmin }

// Max returns the upper bound.
func (n Normalizer) Max() float64 { return n.vmax }

// Normalize maps v into [0, 1]. Out-of-range values clamp to the ends; a
// degenerate range and NaN inputs land on the midpoint, so the result stays
// inside [0, 1] unconditionally.
func (n Normalizer) Normalize(v float64) float64 {
	if n.vmax == n.vmin {
		return 0.5
	}
	t := (v - n.vmin) / (n.vmax - n.vmin)
	switch {
	case math.IsNaN(t):
		return 0.5
	case t < 0:
		return 0
	case t > 1:
		return 1
	}
	return t
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
