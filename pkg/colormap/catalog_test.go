package colormap

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
)

const rampXPM = `/* XPM */
static char *ramp[] = {
"3 1 3 1 ",
". c #000000",
"+ c #808080",
"# c #FFFFFF",
".+#"
};
`

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func gzipBytes(t *testing.T, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(data)); err != nil {
		t.Fatalf("failed to compress: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("failed to close gzip writer: %v", err)
	}
	return buf.Bytes()
}

func bundledCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := loadBundled()
	if err != nil {
		t.Fatalf("failed to load bundled palettes: %v", err)
	}
	return c
}

func TestLoadCatalog(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "ramp.xpm", rampXPM)
	writeFile(t, dir, "fire.xpm", fireXPM)
	writeFile(t, dir, "README.txt", "not a palette")
	if err := os.Mkdir(filepath.Join(dir, "nested"), 0755); err != nil {
		t.Fatalf("failed to create subdirectory: %v", err)
	}

	c, err := LoadCatalog(dir)
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}
	want := []string{"fire", "ramp"}
	if !reflect.DeepEqual(c.Names(), want) {
		t.Fatalf("expected names %v, got %v", want, c.Names())
	}
	if c.Len() != 2 {
		t.Errorf("expected 2 palettes, got %d", c.Len())
	}

	p, err := c.Get("ramp")
	if err != nil {
		t.Fatalf("failed to get ramp: %v", err)
	}
	if p.Name() != "ramp" || p.Len() != 3 {
		t.Errorf("unexpected palette: %s with %d stops", p.Name(), p.Len())
	}
}

func TestLoadCatalog_GzipPalette(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "ramp.xpm.gz"), gzipBytes(t, rampXPM), 0644); err != nil {
		t.Fatalf("failed to write gzip palette: %v", err)
	}

	c, err := LoadCatalog(dir)
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}
	if _, err := c.Get("ramp"); err != nil {
		t.Fatalf("gzip palette not registered under its base name: %v", err)
	}
}

func TestLoadCatalog_DuplicateName(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "dup.xpm", rampXPM)
	if err := os.WriteFile(filepath.Join(dir, "dup.xpm.gz"), gzipBytes(t, rampXPM), 0644); err != nil {
		t.Fatalf("failed to write gzip palette: %v", err)
	}

	_, err := LoadCatalog(dir)
	var ce *CollisionError
	if !errors.As(err, &ce) {
		t.Fatalf("expected CollisionError, got %v", err)
	}
	if ce.Name != "dup" {
		t.Errorf("unexpected collision name %q", ce.Name)
	}
	if !strings.HasSuffix(ce.Source, "dup.xpm") {
		t.Errorf("unexpected collision source %q", ce.Source)
	}
}

func TestLoadCatalog_MalformedFileAbortsLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "good.xpm", rampXPM)
	writeFile(t, dir, "broken.xpm", "\"1 1 0 1\"\n")

	if _, err := LoadCatalog(dir); err == nil {
		t.Fatal("expected a parse failure to abort the whole load")
	}
}

func TestLoadCatalog_EmptyDir(t *testing.T) {
	t.Parallel()

	if _, err := LoadCatalog(t.TempDir()); err == nil {
		t.Fatal("expected an error for a directory without palettes")
	}
}

func TestLoadCatalog_MissingDir(t *testing.T) {
	t.Parallel()

	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("expected an error for a missing directory")
	}
}

func TestBundledCatalog(t *testing.T) {
	t.Parallel()

	c := bundledCatalog(t)
	want := []string{"atlas24", "inferno", "magma", "plasma", "seurat", "viridis"}
	if !reflect.DeepEqual(c.Names(), want) {
		t.Fatalf("expected names %v, got %v", want, c.Names())
	}

	for _, name := range want {
		p, err := c.Get(strings.ToUpper(name))
		if err != nil {
			t.Fatalf("case-insensitive lookup failed for %s: %v", name, err)
		}
		if p.Len() < 2 {
			t.Errorf("%s: expected at least 2 stops, got %d", name, p.Len())
		}
		for i, s := range p.Stops() {
			for _, ch := range []float64{s.Color.R, s.Color.G, s.Color.B, s.Color.A} {
				if ch < 0 || ch > 1 {
					t.Errorf("%s stop %d: channel out of range: %#v", name, i, s.Color)
				}
			}
		}
	}
}

func TestBundledCatalog_Endpoints(t *testing.T) {
	t.Parallel()

	c := bundledCatalog(t)
	cases := []struct {
		name, first, last string
	}{
		{"viridis", "#440154", "#FDE725"},
		{"plasma", "#0D0887", "#F0F921"},
		{"seurat", "#D3D3D3", "#FF0000"},
	}
	for _, tc := range cases {
		first, err := ParseColor(tc.first)
		if err != nil {
			t.Fatalf("bad fixture color %s: %v", tc.first, err)
		}
		last, err := ParseColor(tc.last)
		if err != nil {
			t.Fatalf("bad fixture color %s: %v", tc.last, err)
		}
		colors, err := c.MapValuesRange([]float64{0, 1}, tc.name, 0, 1)
		if err != nil {
			t.Fatalf("%s: failed to map endpoints: %v", tc.name, err)
		}
		if colors[0] != first || colors[1] != last {
			t.Errorf("%s: expected endpoints %#v and %#v, got %#v", tc.name, first, last, colors)
		}
	}
}

func TestCatalog_GetUnknown(t *testing.T) {
	t.Parallel()

	c := bundledCatalog(t)
	_, err := c.Get("virids")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.Name != "virids" {
		t.Errorf("unexpected name %q", nf.Name)
	}
	if len(nf.Closest) == 0 || len(nf.Closest) > 3 {
		t.Fatalf("expected 1-3 suggestions, got %v", nf.Closest)
	}
	if nf.Closest[0] != "viridis" {
		t.Errorf("expected viridis as the best match, got %v", nf.Closest)
	}
}

func TestCatalog_MapValuesAutoRange(t *testing.T) {
	t.Parallel()

	c := bundledCatalog(t)
	p, err := c.Get("seurat")
	if err != nil {
		t.Fatalf("failed to get seurat: %v", err)
	}

	colors, err := c.MapValues([]float64{10, 20, 30}, "seurat")
	if err != nil {
		t.Fatalf("failed to map values: %v", err)
	}
	want := []Color{p.At(0), p.At(0.5), p.At(1)}
	if !reflect.DeepEqual(colors, want) {
		t.Fatalf("expected %#v, got %#v", want, colors)
	}
}

func TestCatalog_MapValuesDeterministic(t *testing.T) {
	t.Parallel()

	c := bundledCatalog(t)
	values := []float64{3, 1, 4, 1, 5}
	first, err := c.MapValues(values, "viridis")
	if err != nil {
		t.Fatalf("failed to map values: %v", err)
	}
	second, err := c.MapValues(values, "viridis")
	if err != nil {
		t.Fatalf("failed to map values again: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("repeated mapping of the same batch differs")
	}
}

func TestCatalog_MapValuesEmpty(t *testing.T) {
	t.Parallel()

	c := bundledCatalog(t)
	_, err := c.MapValues(nil, "viridis")
	var re *RangeError
	if !errors.As(err, &re) {
		t.Fatalf("expected RangeError for an empty autorange batch, got %v", err)
	}
}

func TestCatalog_MapValuesUnknownPalette(t *testing.T) {
	t.Parallel()

	c := bundledCatalog(t)
	// The palette lookup fails before the batch is inspected.
	_, err := c.MapValues(nil, "nope")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestCatalog_MapValuesRangeEmpty(t *testing.T) {
	t.Parallel()

	c := bundledCatalog(t)
	colors, err := c.MapValuesRange(nil, "viridis", 0, 1)
	if err != nil {
		t.Fatalf("explicit bounds should not need data: %v", err)
	}
	if len(colors) != 0 {
		t.Fatalf("expected no colors, got %d", len(colors))
	}
}

func TestCatalog_MapValuesRangeInverted(t *testing.T) {
	t.Parallel()

	c := bundledCatalog(t)
	_, err := c.MapValuesRange([]float64{1, 2}, "viridis", 10, 0)
	var re *RangeError
	if !errors.As(err, &re) {
		t.Fatalf("expected RangeError for inverted bounds, got %v", err)
	}
}

func TestCatalog_MapValuesConstantBatch(t *testing.T) {
	t.Parallel()

	c := bundledCatalog(t)
	p, err := c.Get("viridis")
	if err != nil {
		t.Fatalf("failed to get viridis: %v", err)
	}

	colors, err := c.MapValues([]float64{5, 5}, "viridis")
	if err != nil {
		t.Fatalf("failed to map constant batch: %v", err)
	}
	mid := p.At(0.5)
	if colors[0] != mid || colors[1] != mid {
		t.Fatalf("expected both values at the midpoint color, got %#v", colors)
	}
}

type fakeRegistrar struct {
	names  []string
	failOn string
}

func (f *fakeRegistrar) Register(name string, p *Palette) error {
	if name == f.failOn {
		return fmt.Errorf("refusing %s", name)
	}
	if p == nil {
		return fmt.Errorf("nil palette for %s", name)
	}
	f.names = append(f.names, name)
	return nil
}

func TestCatalog_RegisterAll(t *testing.T) {
	t.Parallel()

	c := bundledCatalog(t)
	reg := &fakeRegistrar{}
	if err := c.RegisterAll(reg, "custom_"); err != nil {
		t.Fatalf("failed to register palettes: %v", err)
	}
	want := []string{
		"custom_atlas24", "custom_inferno", "custom_magma",
		"custom_plasma", "custom_seurat", "custom_viridis",
	}
	if !reflect.DeepEqual(reg.names, want) {
		t.Fatalf("expected %v, got %v", want, reg.names)
	}
}

func TestCatalog_RegisterAllStopsOnError(t *testing.T) {
	t.Parallel()

	c := bundledCatalog(t)
	reg := &fakeRegistrar{failOn: "custom_magma"}
	if err := c.RegisterAll(reg, "custom_"); err == nil {
		t.Fatal("expected registration to surface the registrar error")
	}
	want := []string{"custom_atlas24", "custom_inferno"}
	if !reflect.DeepEqual(reg.names, want) {
		t.Fatalf("expected registration to stop at the failure, got %v", reg.names)
	}
}

// TestDefaultCatalog is the only test that touches the process-wide catalog,
// since Default memoizes its first load.
func TestDefaultCatalog(t *testing.T) {
	os.Unsetenv("COLORMAPS_DIR")

	names, err := Available()
	if err != nil {
		t.Fatalf("failed to list default catalog: %v", err)
	}
	want := []string{"atlas24", "inferno", "magma", "plasma", "seurat", "viridis"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("expected %v, got %v", want, names)
	}

	p, err := Get("Viridis")
	if err != nil {
		t.Fatalf("failed to get viridis: %v", err)
	}
	colors, err := MapValuesRange([]float64{0, 1}, "viridis", 0, 1)
	if err != nil {
		t.Fatalf("failed to map through the default catalog: %v", err)
	}
	if colors[0] != p.At(0) || colors[1] != p.At(1) {
		t.Fatalf("unexpected endpoint colors: %#v", colors)
	}
	if _, err := MapValues([]float64{1, 2}, "seurat"); err != nil {
		t.Fatalf("failed to map through the default catalog: %v", err)
	}

	reg := &fakeRegistrar{}
	if err := RegisterAll(reg, "xpm_"); err != nil {
		t.Fatalf("failed to register default palettes: %v", err)
	}
	if len(reg.names) != len(names) {
		t.Fatalf("expected %d registrations, got %d", len(names), len(reg.names))
	}

	c1, err := Default()
	if err != nil {
		t.Fatalf("failed to load default catalog: %v", err)
	}
	c2, _ := Default()
	if c1 != c2 {
		t.Fatal("expected the default catalog to load once")
	}
}
