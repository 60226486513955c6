//go:build !noraster

package raster

import (
	"image"
	"image/draw"
	"image/gif"
	"io"

	"github.com/ericpauley/go-quantize/quantize"
)

// Decoded dumps only ever contain black and white
const gifColors = 2

func encodeGIF(w io.Writer, m image.Image) error {
	return gif.Encode(w, m, &gif.Options{
		NumColors: gifColors,
		Quantizer: quantize.MedianCutQuantizer{},
		Drawer:    draw.Src,
	})
}

func init() {
	register("gif", encodeGIF, false, ".gif")
}
