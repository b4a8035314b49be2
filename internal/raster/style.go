package raster

import (
	"fmt"
	"strings"

	"github.com/davesmith10/pwaicons/internal/color"
)

// StrokeBasis selects what the stroke half-width ratio is relative to.
type StrokeBasis int

const (
	// BasisRadius scales the half-width by the glyph radius.
	BasisRadius StrokeBasis = iota
	// BasisSize scales the half-width by the icon size.
	BasisSize
)

// Style is a named icon configuration: a fill strategy plus the checkmark
// geometry drawn over it.
type Style struct {
	Name        string
	Fill        Fill
	GlyphRatio  float64 // glyph radius as a fraction of size
	StrokeRatio float64 // stroke half-width as a fraction of the basis
	StrokeBasis StrokeBasis
	Stroke      color.RGB
}

// Circle is a green disc on a navy background. The checkmark spans the disc
// and its stroke scales with the disc radius.
var Circle = Style{
	Name: "circle",
	Fill: FlatCircle{
		Background:  color.Navy,
		Foreground:  color.Green,
		RadiusRatio: 0.385,
	},
	GlyphRatio:  0.385,
	StrokeRatio: 0.065,
	StrokeBasis: BasisRadius,
	Stroke:      color.White,
}

// Gradient is a full-bleed diagonal green gradient with the checkmark kept
// inside a smaller safe zone and a stroke that scales with the icon size.
var Gradient = Style{
	Name: "gradient",
	Fill: DiagonalGradient{
		From: color.Green,
		To:   color.DeepGreen,
	},
	GlyphRatio:  0.33,
	StrokeRatio: 0.065,
	StrokeBasis: BasisSize,
	Stroke:      color.White,
}

// Styles lists the built-in styles by name.
var Styles = []Style{Circle, Gradient}

// ParseStyle looks up a built-in style by name.
func ParseStyle(name string) (Style, error) {
	for _, s := range Styles {
		if s.Name == name {
			return s, nil
		}
	}
	names := make([]string, len(Styles))
	for i, s := range Styles {
		names[i] = s.Name
	}
	return Style{}, fmt.Errorf("unknown style %q (want one of: %s)", name, strings.Join(names, ", "))
}

// GlyphRadius returns the radius the checkmark design space is mapped onto.
func (s Style) GlyphRadius(size int) float64 {
	return s.GlyphRatio * float64(size)
}

// HalfWidth returns the stroke half-width for an icon of the given size.
func (s Style) HalfWidth(size int) float64 {
	if s.StrokeBasis == BasisSize {
		return s.StrokeRatio * float64(size)
	}
	return s.StrokeRatio * s.GlyphRadius(size)
}
