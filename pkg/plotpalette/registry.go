package plotpalette

import (
	"sort"
	"sync"

	"gonum.org/v1/plot/palette"

	"github.com/pubplots/colormaps/pkg/colormap"
)

// Registry is a named table of ColorMaps. It satisfies colormap.Registrar,
// so a whole catalog can be installed with Catalog.RegisterAll.
type Registry struct {
	mu     sync.Mutex
	strict bool
	maps   map[string]palette.ColorMap
}

var _ colormap.Registrar = (*Registry)(nil)

// NewRegistry creates an empty registry. A strict registry rejects a name
// that is already taken; a permissive one silently replaces the earlier
// entry.
func NewRegistry(strict bool) *Registry {
	return &Registry{strict: strict, maps: make(map[string]palette.ColorMap)}
}

// Register installs p under name.
func (r *Registry) Register(name string, p *colormap.Palette) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.maps[name]; ok && r.strict {
		return &colormap.CollisionError{Name: name}
	}
	r.maps[name] = New(p)
	return nil
}

// Lookup returns the ColorMap registered under name.
func (r *Registry) Lookup(name string) (palette.ColorMap, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.maps[name]
	return m, ok
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.maps))
	for name := range r.maps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered maps.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.maps)
}
