// Package colormap loads XPM palette definitions into named, sampleable
// color gradients and maps numeric values onto them.
package colormap

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

//go:embed colormaps/*.xpm
var bundled embed.FS

// Catalog is a read-only collection of named palettes built once from a
// directory of XPM files. It is safe for concurrent readers.
type Catalog struct {
	palettes map[string]*Palette
	names    []string
}

// LoadCatalog builds a catalog from every *.xpm and *.xpm.gz file in dir.
// Any malformed file aborts the whole load; a directory without palette
// files is an error.
func LoadCatalog(dir string) (*Catalog, error) {
	return loadCatalog(os.DirFS(dir), dir)
}

func loadBundled() (*Catalog, error) {
	sub, err := fs.Sub(bundled, "colormaps")
	if err != nil {
		return nil, err
	}
	return loadCatalog(sub, "colormaps")
}

func loadCatalog(fsys fs.FS, root string) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("scan colormap directory %s: %w", root, err)
	}

	c := &Catalog{palettes: make(map[string]*Palette)}
	sources := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		file := entry.Name()
		if !strings.HasSuffix(file, ".xpm") && !strings.HasSuffix(file, ".xpm.gz") {
			continue
		}
		display := path.Join(root, file)

		data, err := readPaletteFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("read palette %s: %w", display, err)
		}
		name := paletteName(file)
		if prev, ok := sources[name]; ok {
			return nil, &CollisionError{Name: name, Source: prev}
		}
		p, err := parseXPM(name, display, data)
		if err != nil {
			return nil, err
		}
		c.palettes[name] = p
		c.names = append(c.names, name)
		sources[name] = display
	}
	if len(c.names) == 0 {
		return nil, fmt.Errorf("no XPM palette files in %s", root)
	}
	sort.Strings(c.names)
	return c, nil
}

// Names returns the sorted palette names.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of palettes.
func (c *Catalog) Len() int { return len(c.names) }

// Get retrieves a palette by name, case-insensitively. Unknown names fail
// with a NotFoundError carrying the closest available names.
func (c *Catalog) Get(name string) (*Palette, error) {
	p, ok := c.palettes[strings.ToLower(name)]
	if !ok {
		return nil, &NotFoundError{Name: name, Closest: c.closest(name, 3)}
	}
	return p, nil
}

// closest ranks catalog names by similarity to the requested one.
func (c *Catalog) closest(name string, n int) []string {
	metric := metrics.NewJaroWinkler()
	key := strings.ToLower(name)
	ranked := make([]string, len(c.names))
	copy(ranked, c.names)
	sort.SliceStable(ranked, func(i, j int) bool {
		return strutil.Similarity(key, ranked[i], metric) > strutil.Similarity(key, ranked[j], metric)
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// MapValues converts values into colors through the named palette, with
// bounds auto-ranged from the batch itself.
func (c *Catalog) MapValues(values []float64, name string) ([]Color, error) {
	p, err := c.Get(name)
	if err != nil {
		return nil, err
	}
	norm, err := NormalizerFromValues(values)
	if err != nil {
		return nil, err
	}
	return p.Map(values, norm), nil
}

// MapValuesRange converts values into colors through the named palette with
// explicit bounds. An empty input yields an empty output, since the bounds
// need no data.
func (c *Catalog) MapValuesRange(values []float64, name string, vmin, vmax float64) ([]Color, error) {
	p, err := c.Get(name)
	if err != nil {
		return nil, err
	}
	norm, err := NewNormalizer(vmin, vmax)
	if err != nil {
		return nil, err
	}
	return p.Map(values, norm), nil
}

// Registrar accepts palettes on behalf of an external colormap registry.
// Implementations live outside this package, so the core never depends on a
// plotting library's types.
type Registrar interface {
	Register(name string, p *Palette) error
}

// RegisterAll offers every palette to r under prefix+name, in sorted name
// order, stopping at the first error.
func (c *Catalog) RegisterAll(r Registrar, prefix string) error {
	for _, name := range c.names {
		if err := r.Register(prefix+name, c.palettes[name]); err != nil {
			return err
		}
	}
	return nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the process-wide catalog, loading it on first use. The
// palettes bundled with the package are used unless the COLORMAPS_DIR
// environment variable points at a directory of XPM files.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		if dir := os.Getenv("COLORMAPS_DIR"); dir != "" {
			defaultCatalog, defaultErr = LoadCatalog(dir)
			return
		}
		defaultCatalog, defaultErr = loadBundled()
	})
	return defaultCatalog, defaultErr
}

// Available lists the names in the default catalog.
func Available() ([]string, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	return c.Names(), nil
}

// Get retrieves a palette from the default catalog.
func Get(name string) (*Palette, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	return c.Get(name)
}

// MapValues maps values through a default-catalog palette with auto-ranged
// bounds.
func MapValues(values []float64, name string) ([]Color, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	return c.MapValues(values, name)
}

// MapValuesRange maps values through a default-catalog palette with explicit
// bounds.
func MapValuesRange(values []float64, name string, vmin, vmax float64) ([]Color, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	return c.MapValuesRange(values, name, vmin, vmax)
}

// RegisterAll offers every default-catalog palette to r under prefix+name.
func RegisterAll(r Registrar, prefix string) error {
	c, err := Default()
	if err != nil {
		return err
	}
	return c.RegisterAll(r, prefix)
}
