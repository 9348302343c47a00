// Package config handles configuration loading for the colormap tools.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the gallery tool configuration.
type Config struct {
	Colormaps ColormapsConfig `yaml:"colormaps"`
	Gallery   GalleryConfig   `yaml:"gallery"`
}

// ColormapsConfig contains palette source settings.
type ColormapsConfig struct {
	// Dir is a directory of XPM palette files. Empty means the palettes
	// bundled with the binary, or the COLORMAPS_DIR environment variable
	// when set.
	Dir string `yaml:"dir"`
}

// GalleryConfig contains gallery rendering settings. Pixel fields size the
// output image.
type GalleryConfig struct {
	Output     string  `yaml:"output"`
	Samples    int     `yaml:"samples"`
	RowHeight  int     `yaml:"row_height"`
	RowGap     int     `yaml:"row_gap"`
	LabelWidth int     `yaml:"label_width"`
	Margin     int     `yaml:"margin"`
	Font       string  `yaml:"font"`
	FontSize   float64 `yaml:"font_size"`
}

// Load reads configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return default config if file doesn't exist
		return DefaultConfig(), nil
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Apply defaults for missing values
	applyDefaults(&cfg)

	return &cfg, nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Gallery: GalleryConfig{
			Output:     "Plots/custom_colormaps_gallery.png",
			Samples:    512,
			RowHeight:  40,
			RowGap:     16,
			LabelWidth: 148,
			Margin:     18,
			FontSize:   12,
		},
	}
}

func applyDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.Gallery.Output == "" {
		cfg.Gallery.Output = defaults.Gallery.Output
	}
	if cfg.Gallery.Samples == 0 {
		cfg.Gallery.Samples = defaults.Gallery.Samples
	}
	if cfg.Gallery.RowHeight == 0 {
		cfg.Gallery.RowHeight = defaults.Gallery.RowHeight
	}
	if cfg.Gallery.RowGap == 0 {
		cfg.Gallery.RowGap = defaults.Gallery.RowGap
	}
	if cfg.Gallery.LabelWidth == 0 {
		cfg.Gallery.LabelWidth = defaults.Gallery.LabelWidth
	}
	if cfg.Gallery.Margin == 0 {
		cfg.Gallery.Margin = defaults.Gallery.Margin
	}
	if cfg.Gallery.FontSize == 0 {
		cfg.Gallery.FontSize = defaults.Gallery.FontSize
	}
}
