package raster

import (
	"github.com/davesmith10/pwaicons/internal/color"
	"github.com/davesmith10/pwaicons/internal/ir"
)

// Fill paints the base layer of an icon before the glyph is stroked.
type Fill interface {
	Paint(img *ir.RGBImage)
}

// FlatCircle fills the image with Background and a centered disc of
// Foreground whose radius is RadiusRatio·size.
type FlatCircle struct {
	Background  color.RGB
	Foreground  color.RGB
	RadiusRatio float64
}

// Paint implements Fill.
func (f FlatCircle) Paint(img *ir.RGBImage) {
	img.Fill(f.Background)

	size := img.Size
	c := center(size)
	r := f.RadiusRatio * float64(size)
	rSq := r * r

	// Only the bounding box of the disc, padded by one pixel, is scanned.
	y0 := max(0, int(c.Y-r)-1)
	y1 := min(size, int(c.Y+r)+2)
	x0 := max(0, int(c.X-r)-1)
	x1 := min(size, int(c.X+r)+2)

	for y := y0; y < y1; y++ {
		dy := float64(y) - c.Y
		for x := x0; x < x1; x++ {
			dx := float64(x) - c.X
			if dx*dx+dy*dy <= rSq {
				img.Set(x, y, f.Foreground)
			}
		}
	}
}

// DiagonalGradient interpolates from From at the top-left corner to To at
// the bottom-right corner along x+y.
type DiagonalGradient struct {
	From color.RGB
	To   color.RGB
}

// Paint implements Fill.
func (g DiagonalGradient) Paint(img *ir.RGBImage) {
	size := img.Size
	lut := g.table(size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, lut[x+y])
		}
	}
}

// table returns the color for every value of x+y in 0..2(size-1).
func (g DiagonalGradient) table(size int) []color.RGB {
	n := 2*size - 1
	lut := make([]color.RGB, n)
	span := float64(2 * (size - 1))
	for k := range lut {
		t := 0.0
		if span > 0 {
			t = float64(k) / span
		}
		lut[k] = color.Lerp(g.From, g.To, t)
	}
	return lut
}
