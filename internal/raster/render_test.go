package raster

import (
	"bytes"
	"math"
	"testing"

	"github.com/davesmith10/pwaicons/internal/color"
	"github.com/davesmith10/pwaicons/internal/ir"
)

func TestRenderLength(t *testing.T) {
	for _, style := range Styles {
		for _, size := range []int{1, 2, 3, 16, 192, 512} {
			img, err := Render(size, style)
			if err != nil {
				t.Fatalf("Render(%d, %s): %v", size, style.Name, err)
			}
			if len(img.Pixels) != 3*size*size {
				t.Errorf("[%s] size %d: got %d bytes, want %d", style.Name, size, len(img.Pixels), 3*size*size)
			}
		}
	}
}

func TestRenderInvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		if _, err := Render(size, Circle); err == nil {
			t.Errorf("Render(%d): expected error", size)
		}
	}
	if _, err := Render(8, Style{Name: "empty"}); err == nil {
		t.Error("Render with nil fill: expected error")
	}
}

// palette lists every color an icon of style may contain at size.
func palette(t *testing.T, style Style, size int) []color.RGB {
	t.Helper()
	var colors []color.RGB
	switch f := style.Fill.(type) {
	case FlatCircle:
		colors = []color.RGB{f.Background, f.Foreground}
	case DiagonalGradient:
		colors = f.table(size)
	default:
		t.Fatalf("unexpected fill %T", style.Fill)
	}
	return append(colors, style.Stroke)
}

func TestRenderPalette(t *testing.T) {
	for _, style := range Styles {
		for _, size := range []int{16, 192} {
			img, err := Render(size, style)
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			allowed := make(map[color.RGB]bool)
			for _, c := range palette(t, style, size) {
				allowed[c] = true
			}
			for y := 0; y < size; y++ {
				for x := 0; x < size; x++ {
					if c := img.At(x, y); !allowed[c] {
						t.Fatalf("[%s] size %d: pixel (%d,%d) = %s is outside the palette",
							style.Name, size, x, y, c)
					}
				}
			}
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	for _, style := range Styles {
		a, err := Render(192, style)
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		b, err := Render(192, style)
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		if !bytes.Equal(a.Pixels, b.Pixels) {
			t.Errorf("[%s] two renders differ", style.Name)
		}
	}
}

func TestCircleOutsideIsBackground(t *testing.T) {
	const size = 192
	img, err := Render(size, Circle)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	c := center(size)
	r := Circle.GlyphRadius(size)
	pad := Circle.HalfWidth(size) + 2
	segs := Checkmark(c, r)

	checked := 0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			p := Point{float64(x), float64(y)}
			dx, dy := p.X-c.X, p.Y-c.Y
			if dx*dx+dy*dy <= r*r {
				continue
			}
			if distSq(p, segs[0]) <= pad*pad || distSq(p, segs[1]) <= pad*pad {
				continue
			}
			checked++
			if got := img.At(x, y); got != color.Navy {
				t.Fatalf("pixel (%d,%d) = %s, want navy background", x, y, got)
			}
		}
	}
	if checked == 0 {
		t.Fatal("no pixels checked")
	}
}

func TestCircle192Scenario(t *testing.T) {
	img, err := Render(192, Circle)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := img.At(0, 0); got != color.Navy {
		t.Errorf("(0,0) = %s, want navy", got)
	}
	if got := img.At(96, 96); got != color.Green {
		t.Errorf("center = %s, want green", got)
	}

	// The elbow of the checkmark is always stroked.
	segs := Checkmark(center(192), Circle.GlyphRadius(192))
	elbow := segs[0].B
	if got := img.At(int(elbow.X), int(elbow.Y)); got != color.White {
		t.Errorf("elbow (%.1f,%.1f) = %s, want white", elbow.X, elbow.Y, got)
	}
}

func TestGradientCorners(t *testing.T) {
	const size = 16
	img, err := Render(size, Gradient)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := img.At(0, 0); got != color.Green {
		t.Errorf("top-left = %s, want %s", got, color.Green)
	}
	if got := img.At(size-1, size-1); got != color.DeepGreen {
		t.Errorf("bottom-right = %s, want %s", got, color.DeepGreen)
	}
	// Pixels on the same anti-diagonal share a color.
	if img.At(size-1, 0) != img.At(0, size-1) {
		t.Errorf("anti-diagonal corners differ: %s vs %s",
			img.At(size-1, 0), img.At(0, size-1))
	}
}

func TestGradientSinglePixel(t *testing.T) {
	img := ir.NewRGBImage(1)
	DiagonalGradient{From: color.Green, To: color.DeepGreen}.Paint(img)
	if got := img.At(0, 0); got != color.Green {
		t.Errorf("1×1 gradient = %s, want start color", got)
	}
}

func TestFlatCircleBoundaryInclusive(t *testing.T) {
	// size 12, ratio 0.25: r = 3 exactly, center (6,6).
	img := ir.NewRGBImage(12)
	FlatCircle{Background: color.Navy, Foreground: color.Green, RadiusRatio: 0.25}.Paint(img)

	for _, p := range [][2]int{{9, 6}, {3, 6}, {6, 3}, {6, 9}, {6, 6}} {
		if got := img.At(p[0], p[1]); got != color.Green {
			t.Errorf("(%d,%d) = %s, want foreground", p[0], p[1], got)
		}
	}
	for _, p := range [][2]int{{10, 6}, {6, 2}, {9, 9}, {0, 0}} {
		if got := img.At(p[0], p[1]); got != color.Navy {
			t.Errorf("(%d,%d) = %s, want background", p[0], p[1], got)
		}
	}
}

func TestStyleGeometry(t *testing.T) {
	near := func(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

	if got, want := Circle.HalfWidth(200), 5.005; !near(got, want) {
		t.Errorf("circle half-width = %v, want %v", got, want)
	}
	if got, want := Gradient.HalfWidth(200), 13.0; !near(got, want) {
		t.Errorf("gradient half-width = %v, want %v", got, want)
	}
	if got, want := Gradient.GlyphRadius(200), 66.0; !near(got, want) {
		t.Errorf("gradient glyph radius = %v, want %v", got, want)
	}
}

func TestParseStyle(t *testing.T) {
	for _, name := range []string{"circle", "gradient"} {
		s, err := ParseStyle(name)
		if err != nil {
			t.Fatalf("ParseStyle(%q): %v", name, err)
		}
		if s.Name != name {
			t.Errorf("ParseStyle(%q).Name = %q", name, s.Name)
		}
	}
	if _, err := ParseStyle("square"); err == nil {
		t.Error("ParseStyle(square): expected error")
	}
}

// distSq returns the squared distance from p to seg.
func distSq(p Point, seg Segment) float64 {
	dx, dy := seg.B.X-seg.A.X, seg.B.Y-seg.A.Y
	px, py := p.X-seg.A.X, p.Y-seg.A.Y
	lenSq := dx*dx + dy*dy
	t := 0.0
	if lenSq > 0 {
		t = max(0, min(1, (px*dx+py*dy)/lenSq))
	}
	ex, ey := px-t*dx, py-t*dy
	return ex*ex + ey*ey
}
