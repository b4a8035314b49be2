package png

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"

	"github.com/davesmith10/pwaicons/internal/ir"
)

// EncodeRGB encodes a size×size RGB pixel buffer as a truecolor PNG.
// pixels must be size*size*3 bytes (RGB interleaved, row-major).
func EncodeRGB(pixels []byte, size int) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, &ir.RGBImage{Size: size, Pixels: pixels}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes img to w as a PNG: signature, IHDR, a single IDAT and IEND.
func Encode(w io.Writer, img *ir.RGBImage) error {
	if img.Size <= 0 {
		return fmt.Errorf("invalid image size %d", img.Size)
	}
	expectedSize := img.Size * img.Size * ir.BytesPerPixel
	if len(img.Pixels) != expectedSize {
		return fmt.Errorf("expected %d RGB bytes, got %d", expectedSize, len(img.Pixels))
	}

	idat, err := compressScanlines(img)
	if err != nil {
		return fmt.Errorf("compressing scanlines: %w", err)
	}

	if _, err := w.Write(Signature[:]); err != nil {
		return err
	}
	if err := writeChunk(w, TypeIHDR, ihdr(img.Size)); err != nil {
		return err
	}
	if err := writeChunk(w, TypeIDAT, idat); err != nil {
		return err
	}
	return writeChunk(w, TypeIEND, nil)
}

// compressScanlines prefixes every row with the None filter byte and
// deflates the result at maximum compression.
func compressScanlines(img *ir.RGBImage) ([]byte, error) {
	var out bytes.Buffer
	zw, err := zlib.NewWriterLevel(&out, zlib.BestCompression)
	if err != nil {
		return nil, err
	}
	filter := []byte{filterNone}
	for y := 0; y < img.Size; y++ {
		if _, err := zw.Write(filter); err != nil {
			return nil, err
		}
		if _, err := zw.Write(img.Row(y)); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
