package color

import (
	"fmt"
	"math"
)

// RGB is an opaque 8-bit-per-channel color.
type RGB struct {
	R, G, B uint8
}

// Palette used by the icon styles.
var (
	Navy      = RGB{26, 26, 46}    // #1a1a2e background
	Green     = RGB{34, 197, 94}   // #22c55e circle, gradient start
	DeepGreen = RGB{21, 128, 61}   // #15803d gradient end
	White     = RGB{255, 255, 255} // checkmark
)

// String returns the color as "#rrggbb".
func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Lerp interpolates linearly between a and b. t is clamped to [0, 1] and
// each channel is rounded to the nearest integer.
func Lerp(a, b RGB, t float64) RGB {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return RGB{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}
