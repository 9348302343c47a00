package colormap

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// record is one quoted XPM payload line with its 1-based position in the
// source file.
type record struct {
	text string
	line int
}

// parseXPM extracts the color table from XPM data and builds a palette with
// uniformly spaced stops in declaration order. Only the color table defines
// the gradient; the pixel raster is ignored. Entries without a color key and
// entries declared None are transparent and contribute no stop.
func parseXPM(name, file string, data []byte) (*Palette, error) {
	records := quotedRecords(data)
	if len(records) == 0 {
		return nil, &ParseError{Path: file, Msg: "no XPM records found"}
	}

	header := records[0]
	fields := strings.Fields(header.text)
	if len(fields) < 4 {
		return nil, &ParseError{Path: file, Line: header.line,
			Msg: fmt.Sprintf("header needs width, height, colors and chars-per-pixel, got %q", header.text)}
	}
	var dims [4]int
	for i, f := range fields[:4] {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, &ParseError{Path: file, Line: header.line,
				Msg: fmt.Sprintf("invalid header value %q", f), Err: err}
		}
		dims[i] = v
	}
	ncolors, cpp := dims[2], dims[3]
	if ncolors < 1 {
		return nil, &ParseError{Path: file, Line: header.line, Msg: "color table is empty"}
	}
	if cpp < 1 {
		return nil, &ParseError{Path: file, Line: header.line,
			Msg: fmt.Sprintf("invalid chars-per-pixel %d", cpp)}
	}
	if len(records) < 1+ncolors {
		return nil, &ParseError{Path: file, Line: header.line,
			Msg: fmt.Sprintf("header declares %d colors, file holds %d records", ncolors, len(records)-1)}
	}

	colors := make([]Color, 0, ncolors)
	for _, rec := range records[1 : 1+ncolors] {
		if len(rec.text) < cpp {
			continue
		}
		spec, ok := colorSpec(rec.text[cpp:])
		if !ok || strings.EqualFold(spec, "None") {
			continue
		}
		c, err := ParseColor(spec)
		if err != nil {
			return nil, &ParseError{Path: file, Line: rec.line,
				Msg: fmt.Sprintf("bad color spec %q", spec), Err: err}
		}
		colors = append(colors, c)
	}
	if len(colors) == 0 {
		return nil, &ParseError{Path: file, Msg: "no usable colors in color table"}
	}
	return NewPalette(name, colors)
}

// colorSpec pulls the value following the c key out of a color entry's
// key/value tokens.
func colorSpec(entry string) (string, bool) {
	tokens := strings.Fields(entry)
	for i, tok := range tokens {
		if tok == "c" && i+1 < len(tokens) {
			return tokens[i+1], true
		}
	}
	return "", false
}

// quotedRecords returns the quoted XPM payload lines with their line
// numbers. Trailing ",;} terminators are trimmed; everything outside quoted
// lines (C scaffolding, comments) is ignored.
func quotedRecords(data []byte) []record {
	var records []record
	for i, line := range strings.Split(string(data), "\n") {
		s := strings.TrimSpace(line)
		if !strings.HasPrefix(s, `"`) {
			continue
		}
		records = append(records, record{text: strings.Trim(s, `",;}`), line: i + 1})
	}
	return records
}

// readPaletteFile returns a palette file's contents, decompressing .gz
// payloads transparently.
func readPaletteFile(fsys fs.FS, name string) ([]byte, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(name, ".gz") {
		return data, nil
	}
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open gzip stream: %w", err)
	}
	defer zr.Close()
	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("decompress: %w", err)
	}
	return out, nil
}

// paletteName derives the catalog key from a file name: base name, lowered,
// with the .xpm or .xpm.gz extension stripped.
func paletteName(file string) string {
	base := path.Base(file)
	base = strings.TrimSuffix(base, ".gz")
	base = strings.TrimSuffix(base, path.Ext(base))
	return strings.ToLower(base)
}
