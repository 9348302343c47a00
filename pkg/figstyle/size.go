// Package figstyle provides journal-compliant figure sizing and curve
// style cycles for publication plots built on gonum/plot.
package figstyle

import (
	"fmt"

	"gonum.org/v1/plot/vg"
)

// Journal identifies a journal's column and page dimensions.
type Journal string

const (
	JournalLarge Journal = "large"
	JournalSmall Journal = "small"
	JournalCMAME Journal = "cmame"
)

// Layout identifies how many panels a figure holds.
type Layout string

const (
	LayoutSingle  Layout = "single"
	LayoutOneHalf Layout = "one_half"
	LayoutDouble  Layout = "double"
	Layout1x2     Layout = "1x2"
	Layout1x3     Layout = "1x3"
	Layout2x2     Layout = "2x2"
	Layout2x3     Layout = "2x3"
	Layout3x2     Layout = "3x2"
	Layout3x3     Layout = "3x3"
)

type journalDims struct {
	single    vg.Length
	oneHalf   vg.Length
	double    vg.Length
	maxHeight vg.Length
}

var journals = map[Journal]journalDims{
	JournalLarge: {
		single:    84 * vg.Millimeter,
		oneHalf:   174 * vg.Millimeter,
		double:    174 * vg.Millimeter,
		maxHeight: 234 * vg.Millimeter,
	},
	JournalSmall: {
		// Small-format journals use the single-column width throughout.
		single:    119 * vg.Millimeter,
		oneHalf:   119 * vg.Millimeter,
		double:    119 * vg.Millimeter,
		maxHeight: 195 * vg.Millimeter,
	},
	JournalCMAME: {
		single:    90 * vg.Millimeter,
		oneHalf:   140 * vg.Millimeter,
		double:    190 * vg.Millimeter,
		maxHeight: 240 * vg.Millimeter,
	},
}

type aspect struct {
	w, h float64
}

var aspects = map[Layout]aspect{
	LayoutSingle:  {4, 3},
	LayoutOneHalf: {5, 3},
	LayoutDouble:  {5, 3},
	Layout1x2:     {8, 3},
	Layout1x3:     {12, 3},
	Layout2x2:     {4, 4},
	Layout2x3:     {6, 4},
	Layout3x2:     {4, 6},
	Layout3x3:     {4, 4},
}

// FigureSize returns the figure dimensions for a layout under a journal's
// column rules. Width follows the column the layout occupies, height
// follows the layout's aspect ratio and never exceeds the journal's page
// limit. An unrecognized layout takes the double-column width with the
// single-panel ratio.
func FigureSize(j Journal, l Layout) (width, height vg.Length, err error) {
	dims, ok := journals[j]
	if !ok {
		return 0, 0, fmt.Errorf("unknown journal %q", j)
	}
	ratio, ok := aspects[l]
	if !ok {
		ratio = aspects[LayoutSingle]
	}
	switch l {
	case LayoutSingle:
		width = dims.single
	case LayoutOneHalf:
		width = dims.oneHalf
	default:
		width = dims.double
	}
	height = width / vg.Length(ratio.w) * vg.Length(ratio.h)
	if height > dims.maxHeight {
		height = dims.maxHeight
	}
	return width, height, nil
}
