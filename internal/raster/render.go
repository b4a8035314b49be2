package raster

import (
	"fmt"

	"github.com/davesmith10/pwaicons/internal/ir"
)

// Render rasterizes a size×size icon in the given style: the fill is painted
// first and the checkmark is stroked over it, first segment then second.
func Render(size int, style Style) (*ir.RGBImage, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid icon size %d", size)
	}
	if style.Fill == nil {
		return nil, fmt.Errorf("style %q has no fill", style.Name)
	}

	img := ir.NewRGBImage(size)
	style.Fill.Paint(img)

	w := style.HalfWidth(size)
	for _, seg := range Checkmark(center(size), style.GlyphRadius(size)) {
		StrokeSegment(img, seg, w, style.Stroke)
	}
	return img, nil
}
