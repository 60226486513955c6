package vramdump

import (
	"bufio"
	"errors"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var errNegativeOffset = errors.New("vramdump: negative offset")

// decompress wraps r with a decompressor chosen by the extension of file.
// Anything other than a gzip or Zstandard extension is read raw, whatever
// bytes it starts with.
func decompress(r io.Reader, file string) (io.ReadCloser, error) {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".gz":
		z, err := gzip.NewReader(bufio.NewReader(r))
		if err != nil {
			return nil, err
		}
		return z, nil
	case ".zst", ".zstd":
		d, err := zstd.NewReader(bufio.NewReader(r), zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, err
		}
		return d.IOReadCloser(), nil
	default:
		return ioutil.NopCloser(r), nil
	}
}

// ReadDump returns the contents of the dump at file from offset onwards.
// Dumps named *.gz or *.zst are decompressed first and offset applies to the
// uncompressed data. An offset at or beyond the end of the dump returns no
// data rather than an error.
func ReadDump(file string, offset int64) ([]byte, error) {
	if offset < 0 {
		return nil, errNegativeOffset
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := decompress(f, file)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	if _, err := io.CopyN(ioutil.Discard, r, offset); err != nil {
		if err == io.EOF {
			return []byte{}, nil
		}
		return nil, err
	}

	return ioutil.ReadAll(r)
}
