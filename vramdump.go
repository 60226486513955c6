/*
Package vramdump renders dumps of a terminal's character generator video RAM
as bitmap images.

A dump is a sequence of 256 byte chunks. Each chunk becomes an 8 pixel high
band of a 256 pixel wide image where every byte is one column of the band and
every bit of that byte is one row. Bands are stacked top to bottom in the
order the chunks appear in the dump.
*/
package vramdump

import (
	"io"
	"io/ioutil"
	"log"
)

// Options controls how a dump is sliced and decoded.
type Options struct {
	// Offset is the number of bytes skipped from the start of the dump.
	Offset int64
	// MaxChunks caps the number of chunks decoded, negative means no cap.
	MaxChunks int
	// BitOrder selects which bit of each byte is the top row of a band.
	BitOrder BitOrder
}

// DefaultOptions returns the options used when none are given, starting at
// DefaultOffset with no chunk limit and the least significant bit at the top.
func DefaultOptions() Options {
	return Options{
		Offset:    DefaultOffset,
		MaxChunks: -1,
		BitOrder:  LSBTop,
	}
}

// Converter turns dumps into image files.
type Converter struct {
	raster  Encoder
	logger  *log.Logger
	notices io.Writer
}

// New returns a Converter. If raster is nil then every image is written as a
// plain PBM bitmap. Informational messages intended for the user are written
// to notices, diagnostic output goes to logger.
func New(raster Encoder, logger *log.Logger, notices io.Writer) *Converter {
	if logger == nil {
		logger = log.New(ioutil.Discard, "", 0)
	}
	if notices == nil {
		notices = ioutil.Discard
	}
	return &Converter{
		raster:  raster,
		logger:  logger,
		notices: notices,
	}
}

// Convert reads the dump at in, decodes it according to opts and writes the
// image to out. It returns the path that was actually written which differs
// from out only when a raster extension had to be swapped for the PBM one.
func (c *Converter) Convert(in, out string, opts Options) (string, error) {
	data, err := ReadDump(in, opts.Offset)
	if err != nil {
		return "", err
	}
	c.logger.Printf("Read %d bytes from \"%s\" starting at %#x\n", len(data), in, opts.Offset)

	data = Limit(data, opts.MaxChunks)
	if extra := len(data) % ChunkSize; extra != 0 {
		c.logger.Printf("Ignoring %d trailing bytes\n", extra)
	}

	m := Decode(data, opts.BitOrder)
	c.logger.Printf("Decoded %d chunks, %s, into %dx%d image\n", Chunks(data), opts.BitOrder, m.Rect.Dx(), m.Rect.Dy())

	return c.Write(out, m)
}
