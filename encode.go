package tga

import "io"

// Encode writes img to w as an uncompressed TGA file: an 18-byte header
// with no ID field and no color-map, followed by the raw pixel payload.
// This is the only form the encoder emits: no RLE compression and no
// color-map output, regardless of how img was decoded or created.
func Encode(w io.Writer, img *Image) error {
	if img == nil || img.Pix == nil {
		return ErrNoData
	}

	var header [headerSize]byte
	if img.Format == BW8 || img.Format == BW16 {
		header[2] = byte(typeGrayscale)
	} else {
		header[2] = byte(typeTrueColor)
	}
	header[12] = byte(img.Width)
	header[13] = byte(img.Width >> 8)
	header[14] = byte(img.Height)
	header[15] = byte(img.Height >> 8)
	header[16] = byte(img.BytesPerPixel * 8)
	if img.Format == ARGB32 {
		header[17] = 0x28 // origin upper-left, 8 alpha bits
	} else {
		header[17] = 0x20 // origin upper-left, no alpha bits
	}

	if _, err := w.Write(header[:]); err != nil {
		return ErrFileCannotWrite
	}
	if _, err := w.Write(img.Pix); err != nil {
		return ErrFileCannotWrite
	}
	return nil
}
