// Package rle decodes a TGA run-length packet stream.
//
// A packet byte's high bit selects the packet kind (1 = run, 0 = raw);
// the low 7 bits plus one give a repetition count in [1, 128]. A run
// packet is followed by one pixel payload repeated count times; a raw
// packet is followed by count distinct pixel payloads.
package rle

import (
	"errors"
	"io"
)

// ErrShortRead reports that the packet stream ended before totalPixels
// pixels were produced.
var ErrShortRead = errors.New("rle: short read")

// Translate is applied to each pixel payload as it is read, in place. It
// is used for color-mapped streams to turn a stored index into its
// mapped color; pass nil for direct (non-color-mapped) streams.
type Translate func(buf []byte) error

// Decode reads packets from r until totalPixels pixels have been
// produced, writing bytesPerPixel bytes per pixel into dst (which must
// have length totalPixels*bytesPerPixel). pixelBytes is the size of one
// pixel payload as stored in the stream, which for color-mapped streams
// (an index) differs from bytesPerPixel (the mapped color size).
//
// The run-pixel buffer is a fixed 4 bytes: no pixel format supported by
// this codec exceeds 4 bytes per pixel, so no variable-length
// allocation is needed.
func Decode(r io.Reader, pixelBytes, bytesPerPixel, totalPixels int, translate Translate, dst []byte) error {
	var buf [4]byte
	var packetRemaining int
	var isRun bool

	for n := 0; n < totalPixels; n++ {
		if packetRemaining == 0 {
			var hdr [1]byte
			if _, err := io.ReadFull(r, hdr[:]); err != nil {
				return ErrShortRead
			}
			isRun = hdr[0]&0x80 != 0
			packetRemaining = int(hdr[0]&0x7f) + 1
			if isRun {
				if _, err := io.ReadFull(r, buf[:pixelBytes]); err != nil {
					return ErrShortRead
				}
				if translate != nil {
					if err := translate(buf[:]); err != nil {
						return err
					}
				}
			}
		}

		if !isRun {
			if _, err := io.ReadFull(r, buf[:pixelBytes]); err != nil {
				return ErrShortRead
			}
			if translate != nil {
				if err := translate(buf[:]); err != nil {
					return err
				}
			}
		}

		copy(dst[n*bytesPerPixel:(n+1)*bytesPerPixel], buf[:bytesPerPixel])
		packetRemaining--
	}
	return nil
}
