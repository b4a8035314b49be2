package png

import (
	"encoding/binary"
	"hash/crc32"
	"io"
)

// Signature is the fixed 8-byte header of every PNG file.
var Signature = [8]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// Chunk types written by this encoder.
const (
	TypeIHDR = "IHDR"
	TypeIDAT = "IDAT"
	TypeIEND = "IEND"
)

// IHDR field values for 8-bit truecolor without alpha or interlacing.
const (
	bitDepth          = 8
	colorTypeRGB      = 2
	compressionMethod = 0
	filterMethod      = 0
	interlaceNone     = 0
	ihdrLen           = 13

	filterNone = 0
)

// writeChunk frames data as a PNG chunk: big-endian length, 4-byte type,
// data, then the CRC-32 of type+data.
func writeChunk(w io.Writer, typ string, data []byte) error {
	var header [8]byte
	binary.BigEndian.PutUint32(header[0:4], uint32(len(data)))
	copy(header[4:8], typ)

	crc := crc32.NewIEEE()
	crc.Write(header[4:8])
	crc.Write(data)

	var footer [4]byte
	binary.BigEndian.PutUint32(footer[:], crc.Sum32())

	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err := w.Write(footer[:])
	return err
}

// ihdr builds the 13-byte IHDR payload for a size×size RGB image.
func ihdr(size int) []byte {
	b := make([]byte, ihdrLen)
	binary.BigEndian.PutUint32(b[0:4], uint32(size))
	binary.BigEndian.PutUint32(b[4:8], uint32(size))
	b[8] = bitDepth
	b[9] = colorTypeRGB
	b[10] = compressionMethod
	b[11] = filterMethod
	b[12] = interlaceNone
	return b
}
