package tga

import (
	"errors"
	"io"

	"github.com/tgakit/tga/internal/colormap"
	"github.com/tgakit/tga/internal/rle"
)

// Decode reads a complete TGA image from r.
//
// Decoding proceeds through the states Start -> HeaderRead -> IdSkipped ->
// MapHandled -> ImageAllocated -> DataDecoded -> Oriented -> Done.
// Any error terminates the state machine immediately; no partial
// Image is ever returned. Bytes are consumed strictly in header -> id ->
// color-map -> pixel-data order, left to right and top to bottom
// regardless of the file's stored orientation, which is corrected only
// after the full pixel array is in memory.
func Decode(r io.Reader) (*Image, error) {
	br := newByteReader(r)

	// HeaderRead.
	h, format, err := readHeader(br)
	if err != nil {
		return nil, err
	}

	// IdSkipped: the ID field's contents are opaque and never used.
	if h.idLength > 0 {
		if _, err := io.CopyN(io.Discard, r, int64(h.idLength)); err != nil {
			return nil, ErrFileCannotRead
		}
	}

	// MapHandled.
	var cm *colormap.Map
	bytesPerMapEntry := bitsToBytes(int(h.mapEntrySize))
	switch {
	case h.imageType.isColorMapped():
		cm, err = colormap.Load(r, h.mapFirstEntry, h.mapLength, bytesPerMapEntry)
		if err != nil {
			return nil, ErrFileCannotRead
		}
	case h.mapType == 1:
		if err := colormap.Skip(r, h.mapLength, bytesPerMapEntry); err != nil {
			return nil, ErrFileCannotRead
		}
	}

	// ImageAllocated.
	img, err := Create(int(h.imageWidth), int(h.imageHeight), format)
	if err != nil {
		return nil, err
	}

	// DataDecoded.
	pixelBytes := bitsToBytes(int(h.pixelDepth))
	totalPixels := img.Width * img.Height
	var translate rle.Translate
	if cm != nil {
		translate = func(buf []byte) error {
			return colormapLookup(cm, buf)
		}
	}
	if h.imageType.isRLE() {
		err = rle.Decode(r, pixelBytes, img.BytesPerPixel, totalPixels, translate, img.Pix)
	} else {
		err = decodeUncompressed(r, pixelBytes, img.BytesPerPixel, totalPixels, cm, img.Pix)
	}
	if err != nil {
		return nil, normalizeDecodeErr(err)
	}

	// Oriented.
	if h.flipHorizontal() {
		img.FlipHorizontal()
	}
	if h.flipVertical() {
		img.FlipVertical()
	}

	// Done.
	return img, nil
}

// decodeUncompressed copies totalPixels pixels verbatim. For a
// color-mapped stream each stored index is translated through cm
// immediately after being read.
func decodeUncompressed(r io.Reader, pixelBytes, bytesPerPixel, totalPixels int, cm *colormap.Map, dst []byte) error {
	if cm == nil {
		n := totalPixels * bytesPerPixel
		if _, err := io.ReadFull(r, dst[:n]); err != nil {
			return ErrFileCannotRead
		}
		return nil
	}

	var idx [4]byte
	for i := 0; i < totalPixels; i++ {
		if _, err := io.ReadFull(r, idx[:pixelBytes]); err != nil {
			return ErrFileCannotRead
		}
		slot := dst[i*bytesPerPixel : (i+1)*bytesPerPixel]
		if err := cm.Lookup(slot, uint16(idx[0])); err != nil {
			return normalizeDecodeErr(err)
		}
	}
	return nil
}

// colormapLookup reads the low byte of buf as a color-map index (only
// 8-bit indices are supported) and overwrites buf in place with the
// mapped color.
func colormapLookup(cm *colormap.Map, buf []byte) error {
	index := uint16(buf[0])
	return cm.Lookup(buf, index)
}

// normalizeDecodeErr maps the internal colormap/rle sentinel errors onto
// the package's public error taxonomy.
func normalizeDecodeErr(err error) error {
	var tgaErr Error
	if errors.As(err, &tgaErr) {
		return err
	}
	if errors.Is(err, colormap.ErrIndexOutOfRange) {
		return ErrBadColorMapIndex
	}
	return ErrFileCannotRead
}
