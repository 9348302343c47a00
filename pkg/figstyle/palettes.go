package figstyle

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot/palette"
)

// List is a fixed, ordered set of categorical colors for line plots.
// Indexing wraps past the end, so any curve count gets a color.
type List struct {
	name   string
	colors []color.Color
}

var _ palette.Palette = List{}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func mustList(name string, hexes ...string) List {
	colors := make([]color.Color, len(hexes))
	for i, h := range hexes {
		colors[i] = mustHex(h)
	}
	return List{name: name, colors: colors}
}

// Name returns the list's name.
func (l List) Name() string { return l.name }

// Len returns the number of colors.
func (l List) Len() int { return len(l.colors) }

// Color returns the i-th color, wrapping past the end.
func (l List) Color(i int) color.Color { return l.colors[i%len(l.colors)] }

// Colors returns a copy of the full list.
func (l List) Colors() []color.Color {
	out := make([]color.Color, len(l.colors))
	copy(out, l.colors)
	return out
}

// JournalMixed is a diverse, high-contrast color set for up to 15 curves.
var JournalMixed = mustList("journal_mixed",
	"#7C1919", // fire brick
	"#000080", // navy
	"#4B0082", // indigo
	"#A17E7B",
	"#490613", // crimson
	"#2F4F4F", // dark slate gray
	"#8B0000", // dark red
	"#117E32", // medium green
	"#800080", // purple
	"#29507c",
	"#555151", // gray
	"#B9503C", // brown
	"#1f77b4", // blue
	"#d62728", // red
	"#706f0c", // olive
)

// CoolJournal is a cool-biased color set for dense comparison plots.
var CoolJournal = mustList("cool_journal",
	"#1f77b4", "#377eb8", "#4c78a8", "#6baed6",
	"#17becf", "#76b7b2", "#1b9e77", "#31a354", "#59a14f", "#66a61e",
	"#9467bd", "#7b6ea8", "#984ea3", "#8da0cb",
	"#5f9ea0", "#2b8cbe", "#a6cee3",
	"#636363", "#9e9ac8", "#bdbdbd",
)

// BalancedJournal extends JournalMixed with lighter warm/cool tones for
// plots past 15 curves. A few anchors repeat on purpose, keeping the
// darker tones in rotation.
var BalancedJournal = mustList("balanced_journal",
	"#7C1919", "#000080", "#4B0082", "#A17E7B", "#490613",
	"#2F4F4F", "#8B0000", "#117E32", "#800080", "#29507c",
	"#555151", "#B9503C", "#1f77b4", "#d62728", "#706f0c",
	"#9467bd", "#753022", "#17becf", "#e377c2", "#555151",
	"#bcbd22", "#377eb8", "#ff9896", "#c5b0d5", "#117E32",
	"#ffbb78", "#98df8a", "#c7c7c7", "#dbdb8d", "#9edae5",
	"#b7b8d8",
)

// Atlas24 carries the colors of the atlas24 colormap as a categorical set.
var Atlas24 = mustList("atlas24",
	"#458B74", "#F5F5DC", "#BB3A3A", "#005E9D", "#C1CDCD", "#DEB887",
	"#B1C6ED", "#8B8878", "#E9967A", "#BDB76B", "#8B0A50", "#313A97",
	"#CAD9BB", "#EEC900", "#ADD8E6", "#6E7B8B", "#8B4789", "#EEE8AA",
	"#B8CEC6", "#B8B8DB", "#CEA46B", "#6A5ACD", "#EEE9E9", "#003366",
)
