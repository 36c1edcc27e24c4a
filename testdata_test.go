package tga

import "encoding/binary"

// header18 builds a raw 18-byte TGA header for use by decode tests.
func header18(imgType, mapType uint8, mapFirstEntry, mapLength uint16, mapEntrySize uint8, width, height uint16, pixelDepth, descriptor uint8) []byte {
	b := make([]byte, headerSize)
	b[0] = 0 // id_length
	b[1] = mapType
	b[2] = imgType
	binary.LittleEndian.PutUint16(b[3:5], mapFirstEntry)
	binary.LittleEndian.PutUint16(b[5:7], mapLength)
	b[7] = mapEntrySize
	binary.LittleEndian.PutUint16(b[8:10], 0)
	binary.LittleEndian.PutUint16(b[10:12], 0)
	binary.LittleEndian.PutUint16(b[12:14], width)
	binary.LittleEndian.PutUint16(b[14:16], height)
	b[16] = pixelDepth
	b[17] = descriptor
	return b
}

// packRaw packs a flat pixel array (pixelBytes each) into raw RLE
// packets, splitting into chunks of at most 128 pixels per packet. It is
// a correctness-first encoder for building RLE test fixtures, not a
// space-efficient one.
func packRaw(pixels []byte, pixelBytes int) []byte {
	count := len(pixels) / pixelBytes
	var out []byte
	for i := 0; i < count; {
		n := count - i
		if n > 128 {
			n = 128
		}
		out = append(out, byte(n-1)) // high bit clear: raw packet
		out = append(out, pixels[i*pixelBytes:(i+n)*pixelBytes]...)
		i += n
	}
	return out
}

// fillSequential returns a deterministic, non-constant pixel array of
// count pixels, pixelBytes each, so that RLE raw-packet round-trips
// actually exercise distinct bytes instead of (accidentally) matching a
// run-packet's repeated-pixel shape.
func fillSequential(count, pixelBytes int) []byte {
	buf := make([]byte, count*pixelBytes)
	for i := range buf {
		buf[i] = byte(i % 256)
	}
	return buf
}
