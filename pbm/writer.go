package pbm

import (
	"bufio"
	"image"
	"image/color"
	"io"
	"strconv"
)

type encoder struct {
	w *bufio.Writer
}

func (e *encoder) encode(m image.Image) error {
	b := m.Bounds()

	e.w.WriteString(magic + "\n")
	e.w.WriteString(strconv.Itoa(b.Dx()) + " " + strconv.Itoa(b.Dy()) + "\n")

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if x > b.Min.X {
				e.w.WriteByte(' ')
			}
			if color.GrayModel.Convert(m.At(x, y)).(color.Gray).Y != 0 {
				e.w.WriteByte('1')
			} else {
				e.w.WriteByte('0')
			}
		}
		e.w.WriteByte('\n')
	}

	// bufio.Writer errors are sticky so only the last one needs checking
	return e.w.Flush()
}

// Encode writes the Image m to w in plain PBM format.
func Encode(w io.Writer, m image.Image) error {
	e := encoder{w: bufio.NewWriter(w)}
	return e.encode(m)
}
