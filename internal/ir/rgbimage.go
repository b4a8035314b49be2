package ir

import "github.com/davesmith10/pwaicons/internal/color"

// BytesPerPixel is the stride of one pixel in RGBImage.Pixels.
const BytesPerPixel = 3

// RGBImage is the intermediate representation passed between the rasterizer
// and the PNG encoder. Pixels are stored as interleaved R,G,B bytes
// (3 bytes per pixel, row-major order). Images are always square.
type RGBImage struct {
	Size   int
	Pixels []byte // len = Size * Size * 3
}

// NewRGBImage allocates a black size×size image.
func NewRGBImage(size int) *RGBImage {
	return &RGBImage{
		Size:   size,
		Pixels: make([]byte, size*size*BytesPerPixel),
	}
}

// Stride returns the number of bytes in one row.
func (m *RGBImage) Stride() int {
	return m.Size * BytesPerPixel
}

// Row returns the raw bytes of row y.
func (m *RGBImage) Row(y int) []byte {
	s := m.Stride()
	return m.Pixels[y*s : (y+1)*s]
}

// Set writes c at (x, y). Coordinates must be in range.
func (m *RGBImage) Set(x, y int, c color.RGB) {
	i := (y*m.Size + x) * BytesPerPixel
	m.Pixels[i] = c.R
	m.Pixels[i+1] = c.G
	m.Pixels[i+2] = c.B
}

// At returns the color at (x, y).
func (m *RGBImage) At(x, y int) color.RGB {
	i := (y*m.Size + x) * BytesPerPixel
	return color.RGB{R: m.Pixels[i], G: m.Pixels[i+1], B: m.Pixels[i+2]}
}

// Fill sets every pixel to c.
func (m *RGBImage) Fill(c color.RGB) {
	for i := 0; i < len(m.Pixels); i += BytesPerPixel {
		m.Pixels[i] = c.R
		m.Pixels[i+1] = c.G
		m.Pixels[i+2] = c.B
	}
}
