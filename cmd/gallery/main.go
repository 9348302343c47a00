// Package main is the entry point for the colormap gallery tool.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/pubplots/colormaps/internal/config"
	"github.com/pubplots/colormaps/internal/render"
	"github.com/pubplots/colormaps/pkg/colormap"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "config/gallery.yaml", "Path to configuration file")
	paletteDir := flag.String("dir", "", "Directory of XPM palette files (overrides config)")
	outPath := flag.String("out", "", "Output PNG path (overrides config)")
	listOnly := flag.Bool("list", false, "List available colormaps and exit")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	catalog, err := openCatalog(*paletteDir, cfg.Colormaps.Dir)
	if err != nil {
		log.Fatalf("Failed to load colormaps: %v", err)
	}

	if *listOnly {
		for _, name := range catalog.Names() {
			fmt.Println(name)
		}
		return
	}

	entries := make([]render.Entry, 0, catalog.Len())
	for _, name := range catalog.Names() {
		p, err := catalog.Get(name)
		if err != nil {
			log.Fatalf("Failed to resolve colormap %q: %v", name, err)
		}
		entries = append(entries, render.Entry{Name: name, Palette: p})
	}

	renderer := render.NewGalleryRenderer(render.Config{
		Samples:    cfg.Gallery.Samples,
		RowHeight:  cfg.Gallery.RowHeight,
		RowGap:     cfg.Gallery.RowGap,
		LabelWidth: cfg.Gallery.LabelWidth,
		Margin:     cfg.Gallery.Margin,
		FontPath:   cfg.Gallery.Font,
		FontSize:   cfg.Gallery.FontSize,
	})

	img, err := renderer.RenderGallery(entries)
	if err != nil {
		log.Fatalf("Failed to render gallery: %v", err)
	}

	output := cfg.Gallery.Output
	if *outPath != "" {
		output = *outPath
	}
	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Failed to create output directory: %v", err)
		}
	}
	if err := os.WriteFile(output, img, 0644); err != nil {
		log.Fatalf("Failed to write gallery: %v", err)
	}

	log.Printf("Gallery saved to: %s (%d colormaps)", output, len(entries))
}

// openCatalog picks the palette source: the -dir flag wins, then the
// config's directory, then the default catalog with its environment
// override.
func openCatalog(flagDir, cfgDir string) (*colormap.Catalog, error) {
	switch {
	case flagDir != "":
		return colormap.LoadCatalog(flagDir)
	case cfgDir != "":
		return colormap.LoadCatalog(cfgDir)
	default:
		return colormap.Default()
	}
}
