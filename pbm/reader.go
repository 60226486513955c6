package pbm

import (
	"bufio"
	"errors"
	"image"
	"image/color"
	"io"
	"strconv"
)

const (
	maxDimension = 1 << 16
	maxPixels    = 1 << 26
)

var (
	errBadMagic  = errors.New("pbm: invalid magic")
	errBadHeader = errors.New("pbm: invalid header")
	errNotEnough = errors.New("pbm: not enough image data")
	errBadPixel  = errors.New("pbm: invalid pixel value")
)

type decoder struct {
	r *bufio.Reader

	width, height int

	image *image.Gray
}

// skipSpace consumes whitespace and comments up to the next token.
func (d *decoder) skipSpace() error {
	for {
		c, err := d.r.ReadByte()
		if err != nil {
			return err
		}
		switch c {
		case ' ', '\t', '\n', '\r', '\v', '\f':
		case '#':
			if _, err := d.r.ReadString('\n'); err != nil {
				return err
			}
		default:
			return d.r.UnreadByte()
		}
	}
}

func (d *decoder) readInt() (int, error) {
	if err := d.skipSpace(); err != nil {
		return 0, err
	}
	var b []byte
	for {
		c, err := d.r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
		if c < '0' || c > '9' {
			if err := d.r.UnreadByte(); err != nil {
				return 0, err
			}
			break
		}
		b = append(b, c)
	}
	n, err := strconv.Atoi(string(b))
	if err != nil {
		return 0, errBadHeader
	}
	return n, nil
}

func (d *decoder) readHeader() error {
	var tmp [len(magic)]byte
	if _, err := io.ReadFull(d.r, tmp[:]); err != nil || string(tmp[:]) != magic {
		return errBadMagic
	}

	var err error
	if d.width, err = d.readInt(); err != nil {
		return errBadHeader
	}
	if d.height, err = d.readInt(); err != nil {
		return errBadHeader
	}

	// Zero is allowed, an empty dump still produces a valid bitmap
	if d.width > maxDimension || d.height > maxDimension || d.width*d.height > maxPixels {
		return errBadHeader
	}
	return nil
}

func (d *decoder) decode(r io.Reader, configOnly bool) error {
	d.r = bufio.NewReader(r)

	if err := d.readHeader(); err != nil {
		return err
	}

	if configOnly {
		return nil
	}

	d.image = image.NewGray(image.Rect(0, 0, d.width, d.height))

	for i := range d.image.Pix {
		if err := d.skipSpace(); err != nil {
			if err == io.EOF {
				return errNotEnough
			}
			return err
		}
		c, err := d.r.ReadByte()
		if err != nil {
			return err
		}
		switch c {
		case '0':
		case '1':
			d.image.Pix[i] = 0xff
		default:
			return errBadPixel
		}
	}

	return nil
}

// Decode reads a plain PBM image from r and returns it as an image.Image.
func Decode(r io.Reader) (image.Image, error) {
	var d decoder
	if err := d.decode(r, false); err != nil {
		return nil, err
	}
	return d.image, nil
}

// DecodeConfig returns the color model and dimensions of a plain PBM image
// without decoding the entire image.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var d decoder
	if err := d.decode(r, true); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: color.GrayModel,
		Width:      d.width,
		Height:     d.height,
	}, nil
}
