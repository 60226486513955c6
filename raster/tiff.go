//go:build !noraster

package raster

import (
	"image"
	"io"

	"golang.org/x/image/tiff"
)

func encodeTIFF(w io.Writer, m image.Image) error {
	return tiff.Encode(w, m, nil)
}

func init() {
	register("tiff", encodeTIFF, true, ".tif", ".tiff")
}
