package colormap

import (
	"fmt"
	"strings"
)

// ParseError reports a malformed palette file. Line is 1-based and zero when
// the failure concerns the file as a whole.
type ParseError struct {
	Path string
	Line int
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	msg := e.Msg
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, msg)
	}
	return fmt.Sprintf("%s: %s", e.Path, msg)
}

func (e *ParseError) Unwrap() error { return e.Err }

// NotFoundError reports a lookup for a colormap the catalog does not hold.
// Closest carries the best-matching available names.
type NotFoundError struct {
	Name    string
	Closest []string
}

func (e *NotFoundError) Error() string {
	if len(e.Closest) == 0 {
		return fmt.Sprintf("colormap %q not found", e.Name)
	}
	return fmt.Sprintf("colormap %q not found, closest matches: %s", e.Name, strings.Join(e.Closest, ", "))
}

// RangeError reports normalizer bounds that cannot be used, or an input
// batch that cannot produce bounds.
type RangeError struct {
	Vmin, Vmax float64
	Msg        string
}

func (e *RangeError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return fmt.Sprintf("invalid value range [%g, %g]", e.Vmin, e.Vmax)
}

// CollisionError reports a colormap name claimed twice: by two palette files
// at load time, or by repeated registration in a strict registry.
type CollisionError struct {
	Name   string
	Source string // file that first claimed the name, when known
}

func (e *CollisionError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("colormap name %q already claimed by %s", e.Name, e.Source)
	}
	return fmt.Sprintf("colormap %q already registered", e.Name)
}
