/*
Package raster encodes images in lossless raster formats, choosing the format
from the extension of the file being written.

Each format lives in its own file and registers itself when the package is
initialised. Building with the noraster tag leaves every format out, in which
case Available reports false and callers are expected to fall back to another
encoder.
*/
package raster

import (
	"errors"
	"image"
	"io"
	"path/filepath"
	"sort"
	"strings"
)

// ErrUnavailable is returned when no registered format can encode an image.
var ErrUnavailable = errors.New("raster: encoder not available")

// defaultFormat is used for unknown or missing extensions
const defaultFormat = "png"

type format struct {
	name   string
	exts   []string
	encode func(io.Writer, image.Image) error
	// empty is set if the format can store an image with no pixels
	empty bool
}

var formats = make(map[string]format)

func register(name string, encode func(io.Writer, image.Image) error, empty bool, exts ...string) {
	formats[name] = format{
		name:   name,
		exts:   exts,
		encode: encode,
		empty:  empty,
	}
}

// Available reports whether any raster format was compiled in.
func Available() bool {
	return len(formats) > 0
}

// Formats returns the names of the compiled in formats, sorted.
func Formats() []string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookup(path string) (format, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, f := range formats {
		for _, e := range f.exts {
			if e == ext {
				return f, true
			}
		}
	}
	f, ok := formats[defaultFormat]
	return f, ok
}

// Encoder writes images in the format implied by the output path. Paths with
// an unrecognised extension are written as PNG.
type Encoder struct{}

// Format returns the name of the format that would be used for path.
func (Encoder) Format(path string) (string, error) {
	f, ok := lookup(path)
	if !ok {
		return "", ErrUnavailable
	}
	return f.name, nil
}

// Supports reports whether an image with bounds r can be written to path.
// PNG and GIF have no representation for an image without pixels.
func (Encoder) Supports(path string, r image.Rectangle) bool {
	f, ok := lookup(path)
	if !ok {
		return false
	}
	return f.empty || !r.Empty()
}

// Encode writes the Image m to w.
func (Encoder) Encode(w io.Writer, m image.Image, path string) error {
	f, ok := lookup(path)
	if !ok {
		return ErrUnavailable
	}
	return f.encode(w, m)
}
