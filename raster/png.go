//go:build !noraster

package raster

import "image/png"

func init() {
	register("png", png.Encode, false, ".png")
}
