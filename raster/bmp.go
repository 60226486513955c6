//go:build !noraster

package raster

import "golang.org/x/image/bmp"

func init() {
	register("bmp", bmp.Encode, true, ".bmp")
}
