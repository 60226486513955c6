/*
Package pbm implements a decoder and encoder for the plain (ASCII) variant of
the Netpbm portable bitmap format.

A plain bitmap starts with the magic "P1" followed by the width and height in
decimal, separated by whitespace. The pixels follow as one "0" or "1" per
pixel, row by row, top to bottom. Comments start with '#' and run to the end
of the line.

The encoder always writes the header as "P1\n<width> <height>\n" followed by
one line per row with the pixels separated by single spaces. Lines are
terminated with '\n' on every platform.

A "1" is written for any pixel whose gray value is nonzero and the decoder
maps "1" to white and "0" to black, so images survive a round trip unchanged.
Note this is the inverse of how Netpbm viewers draw the bitmap.
*/
package pbm

import "image"

const (
	magic = "P1"

	// Ext is the canonical file extension for portable bitmaps
	Ext = ".pbm"
)

func init() {
	image.RegisterFormat("pbm", magic, Decode, DecodeConfig)
}
