package ir

import (
	"testing"

	"github.com/davesmith10/pwaicons/internal/color"
)

func TestNewRGBImageLength(t *testing.T) {
	for _, size := range []int{1, 2, 7, 192} {
		img := NewRGBImage(size)
		if len(img.Pixels) != 3*size*size {
			t.Errorf("size %d: got %d bytes, want %d", size, len(img.Pixels), 3*size*size)
		}
		if img.Stride() != 3*size {
			t.Errorf("size %d: stride %d", size, img.Stride())
		}
	}
}

func TestSetAt(t *testing.T) {
	img := NewRGBImage(4)
	img.Fill(color.Navy)
	img.Set(3, 2, color.White)

	if got := img.At(3, 2); got != color.White {
		t.Errorf("At(3,2) = %v, want white", got)
	}
	if got := img.At(2, 3); got != color.Navy {
		t.Errorf("At(2,3) = %v, want navy", got)
	}

	// (3,2) is the last pixel of row 2.
	row := img.Row(2)
	if row[9] != 255 || row[10] != 255 || row[11] != 255 {
		t.Errorf("row 2 tail = %v, want white", row[9:12])
	}
}
