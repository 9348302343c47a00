// Package render draws colormap gallery images using fogleman/gg.
package render

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"strings"
	"sync"

	"github.com/fogleman/gg"

	"github.com/pubplots/colormaps/pkg/colormap"
)

// borderHex frames each gradient bar, matching the gallery's reference
// styling.
const borderHex = "#5fa1ff"

// Config contains renderer configuration. All pixel fields; zero values
// take the gallery defaults.
type Config struct {
	Samples    int
	RowHeight  int
	RowGap     int
	LabelWidth int
	Margin     int
	FontPath   string
	FontSize   float64
}

// Entry is one labeled palette row in a gallery.
type Entry struct {
	Name    string
	Palette *colormap.Palette
}

// GalleryRenderer renders palette overview images.
type GalleryRenderer struct {
	config      Config
	contextPool sync.Pool
	bufferPool  sync.Pool
}

// NewGalleryRenderer creates a new gallery renderer.
func NewGalleryRenderer(cfg Config) *GalleryRenderer {
	if cfg.Samples <= 0 {
		cfg.Samples = 512
	}
	if cfg.RowHeight <= 0 {
		cfg.RowHeight = 40
	}
	if cfg.RowGap <= 0 {
		cfg.RowGap = 16
	}
	if cfg.LabelWidth <= 0 {
		cfg.LabelWidth = 148
	}
	if cfg.Margin <= 0 {
		cfg.Margin = 18
	}
	if cfg.FontSize <= 0 {
		cfg.FontSize = 12
	}

	return &GalleryRenderer{
		config: cfg,
		contextPool: sync.Pool{
			New: func() interface{} {
				return gg.NewContext(cfg.Samples, cfg.RowHeight)
			},
		},
		bufferPool: sync.Pool{
			New: func() interface{} {
				return bytes.NewBuffer(make([]byte, 0, 64*1024))
			},
		},
	}
}

// RenderGallery renders one labeled gradient row per entry and returns the
// encoded PNG.
func (r *GalleryRenderer) RenderGallery(entries []Entry) ([]byte, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("no colormaps to render")
	}
	cfg := r.config
	width := cfg.Margin*2 + cfg.LabelWidth + cfg.Samples
	height := cfg.Margin*2 + len(entries)*cfg.RowHeight + (len(entries)-1)*cfg.RowGap

	dc := gg.NewContext(width, height)
	if err := r.loadFont(dc); err != nil {
		return nil, err
	}
	dc.SetColor(color.White)
	dc.Clear()

	for i, entry := range entries {
		y := float64(cfg.Margin + i*(cfg.RowHeight+cfg.RowGap))
		r.drawRow(dc, entry, y)
	}

	return r.encodeContext(dc)
}

// RenderSwatch renders a single palette as a bare gradient strip.
func (r *GalleryRenderer) RenderSwatch(p *colormap.Palette) ([]byte, error) {
	dc := r.contextPool.Get().(*gg.Context)
	defer r.contextPool.Put(dc)

	dc.SetColor(color.White)
	dc.Clear()
	r.drawGradient(dc, p, 0, 0)

	return r.encodeContext(dc)
}

func (r *GalleryRenderer) drawRow(dc *gg.Context, entry Entry, y float64) {
	cfg := r.config
	x := float64(cfg.Margin + cfg.LabelWidth)
	h := float64(cfg.RowHeight)

	r.drawGradient(dc, entry.Palette, x, y)

	dc.SetHexColor(borderHex)
	dc.SetLineWidth(1.2)
	dc.DrawRoundedRectangle(x-1, y-1, float64(cfg.Samples)+2, h+2, 6)
	dc.Stroke()

	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(displayName(entry.Name), x-10, y+h/2, 1, 0.35)
}

// drawGradient paints the palette as one-pixel columns across the sample
// width.
func (r *GalleryRenderer) drawGradient(dc *gg.Context, p *colormap.Palette, x, y float64) {
	h := float64(r.config.RowHeight)
	for i, c := range p.Sample(r.config.Samples) {
		dc.SetColor(c)
		dc.DrawRectangle(x+float64(i), y, 1, h)
		dc.Fill()
	}
}

func (r *GalleryRenderer) loadFont(dc *gg.Context) error {
	if r.config.FontPath == "" {
		// gg falls back to its built-in bitmap face.
		return nil
	}
	if err := dc.LoadFontFace(r.config.FontPath, r.config.FontSize); err != nil {
		return fmt.Errorf("load label font %s: %w", r.config.FontPath, err)
	}
	return nil
}

func (r *GalleryRenderer) encodeContext(dc *gg.Context) ([]byte, error) {
	buf := r.bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		r.bufferPool.Put(buf)
	}()

	// Use fast PNG encoder
	encoder := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := encoder.Encode(buf, dc.Image()); err != nil {
		return nil, err
	}

	// Copy buffer contents (buffer will be reused)
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// displayName turns a catalog name into a row label, title-casing its
// underscore-separated words.
func displayName(name string) string {
	words := strings.Fields(strings.ReplaceAll(name, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
