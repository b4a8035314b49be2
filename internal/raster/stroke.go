package raster

import (
	"github.com/davesmith10/pwaicons/internal/color"
	"github.com/davesmith10/pwaicons/internal/ir"
)

// Point is a position in icon pixel space.
type Point struct {
	X, Y float64
}

// Segment is one straight stroke from A to B.
type Segment struct {
	A, B Point
}

// checkmarkDesign holds the checkmark polyline in a 100×100 design space.
var checkmarkDesign = [3]Point{{25, 52}, {42, 68}, {75, 34}}

const designHalf = 50.0

// center returns the icon center. Integer division puts it on a pixel for
// odd sizes.
func center(size int) Point {
	c := float64(size / 2)
	return Point{c, c}
}

// fromDesign maps a design-space point into icon space around c, scaling the
// design half-extent to radius.
func fromDesign(p Point, c Point, radius float64) Point {
	return Point{
		X: (p.X-designHalf)/designHalf*radius + c.X,
		Y: (p.Y-designHalf)/designHalf*radius + c.Y,
	}
}

// Checkmark returns the two segments of the checkmark glyph centered on c and
// scaled so that the design space spans a circle of the given radius.
func Checkmark(c Point, radius float64) []Segment {
	p1 := fromDesign(checkmarkDesign[0], c, radius)
	p2 := fromDesign(checkmarkDesign[1], c, radius)
	p3 := fromDesign(checkmarkDesign[2], c, radius)
	return []Segment{{p1, p2}, {p2, p3}}
}

// StrokeSegment overwrites with c every pixel whose distance to seg is at
// most halfWidth. Ends are rounded. A zero-length segment draws nothing.
func StrokeSegment(img *ir.RGBImage, seg Segment, halfWidth float64, c color.RGB) {
	ax, ay := seg.A.X, seg.A.Y
	dx, dy := seg.B.X-ax, seg.B.Y-ay
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return
	}
	wSq := halfWidth * halfWidth

	size := img.Size
	pad := halfWidth + 2
	x0 := max(0, int(min(ax, seg.B.X)-pad))
	x1 := min(size, int(max(ax, seg.B.X)+pad)+1)
	y0 := max(0, int(min(ay, seg.B.Y)-pad))
	y1 := min(size, int(max(ay, seg.B.Y)+pad)+1)

	for y := y0; y < y1; y++ {
		py := float64(y) - ay
		for x := x0; x < x1; x++ {
			px := float64(x) - ax
			t := (px*dx + py*dy) / lenSq
			t = max(0, min(1, t))
			ex := px - t*dx
			ey := py - t*dy
			if ex*ex+ey*ey <= wSq {
				img.Set(x, y, c)
			}
		}
	}
}
