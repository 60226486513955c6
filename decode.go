package vramdump

import (
	"fmt"
	"image"
)

const (
	// ChunkSize is the number of bytes that make up one band of the image
	ChunkSize = 256

	// BandHeight is the number of pixel rows in each band
	BandHeight = 8

	// Width is the width of every decoded image
	Width = ChunkSize

	// DefaultOffset is where the font data usually starts in a video RAM
	// dump
	DefaultOffset = 0x8000
)

// BitOrder selects which bit of a byte maps to the top row of its column.
type BitOrder int

const (
	// LSBTop places bit 0 in the top row
	LSBTop BitOrder = iota

	// MSBTop places bit 7 in the top row
	MSBTop
)

func (o BitOrder) String() string {
	switch o {
	case LSBTop:
		return "LSB top"
	case MSBTop:
		return "MSB top"
	default:
		return fmt.Sprintf("BitOrder(%d)", int(o))
	}
}

func (o BitOrder) bit(b byte, row int) byte {
	if o == MSBTop {
		return b>>(7-row)&1
	}
	return b>>row&1
}

// Chunks returns the number of whole chunks in data.
func Chunks(data []byte) int {
	return len(data) / ChunkSize
}

// Limit returns at most n chunks worth of data. A negative n returns data
// unchanged.
func Limit(data []byte, n int) []byte {
	if n < 0 || n > Chunks(data) {
		return data
	}
	return data[:n*ChunkSize]
}

// Decode renders data as a grayscale image Width pixels wide and BandHeight
// pixels high per chunk. Any trailing partial chunk is ignored. Set bits
// become 0xff and clear bits 0x00.
func Decode(data []byte, order BitOrder) *image.Gray {
	n := Chunks(data)
	m := image.NewGray(image.Rect(0, 0, Width, n*BandHeight))

	for c := 0; c < n; c++ {
		for x, b := range data[c*ChunkSize : (c+1)*ChunkSize] {
			for r := 0; r < BandHeight; r++ {
				if order.bit(b, r) != 0 {
					m.Pix[(c*BandHeight+r)*m.Stride+x] = 0xff
				}
			}
		}
	}

	return m
}
