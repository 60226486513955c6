package vramdump

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/vramdump/pbm"
)

// RasterExtensions lists the file extensions that imply a raster image was
// requested. When no raster encoder is available, output paths ending in one
// of these have it replaced with the PBM extension.
var RasterExtensions = []string{".png", ".gif", ".bmp", ".tif", ".tiff"}

// Encoder is implemented by raster image encoders. The output path is passed
// so an encoder supporting several formats can choose one by extension.
type Encoder interface {
	Encode(w io.Writer, m image.Image, path string) error
}

// supporter is implemented by encoders that can't write every image to every
// path.
type supporter interface {
	Supports(path string, r image.Rectangle) bool
}

func (c *Converter) useRaster(path string, m *image.Gray) bool {
	if c.raster == nil {
		return false
	}
	if s, ok := c.raster.(supporter); ok {
		return s.Supports(path, m.Rect)
	}
	return true
}

func hasRasterExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range RasterExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

func writeFile(path string, b []byte) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = f.Write(b)
	return
}

// Write encodes m and writes it to path, returning the path written. The
// raster encoder is used if the Converter has one that supports m and path,
// otherwise m is written as a plain PBM bitmap and a raster extension on path
// is replaced with the PBM one.
func (c *Converter) Write(path string, m *image.Gray) (string, error) {
	b := new(bytes.Buffer)

	if c.useRaster(path, m) {
		if err := c.raster.Encode(b, m, path); err != nil {
			return "", err
		}
		c.logger.Printf("Writing raster image to \"%s\"\n", path)
		return path, writeFile(path, b.Bytes())
	}

	if hasRasterExtension(path) {
		path = strings.TrimSuffix(path, filepath.Ext(path)) + pbm.Ext
		reason := "raster encoder not available"
		if c.raster != nil {
			reason = "image can't be written as a raster image"
		}
		fmt.Fprintf(c.notices, "vramdump: %s; writing PBM instead: %s\n", reason, path)
	}

	if err := pbm.Encode(b, m); err != nil {
		return "", err
	}
	c.logger.Printf("Writing PBM image to \"%s\"\n", path)
	return path, writeFile(path, b.Bytes())
}
