package tga

// imageType is the header's image_type discriminant.
type imageType uint8

const (
	typeNoData         imageType = 0
	typeColorMapped    imageType = 1
	typeTrueColor      imageType = 2
	typeGrayscale      imageType = 3
	typeRleColorMapped imageType = 9
	typeRleTrueColor   imageType = 10
	typeRleGrayscale   imageType = 11
)

func (t imageType) isColorMapped() bool {
	return t == typeColorMapped || t == typeRleColorMapped
}

func (t imageType) isTrueColor() bool {
	return t == typeTrueColor || t == typeRleTrueColor
}

func (t imageType) isGrayscale() bool {
	return t == typeGrayscale || t == typeRleGrayscale
}

func (t imageType) isRLE() bool {
	return t == typeRleColorMapped || t == typeRleTrueColor || t == typeRleGrayscale
}

func (t imageType) isRecognized() bool {
	switch t {
	case typeColorMapped, typeTrueColor, typeGrayscale,
		typeRleColorMapped, typeRleTrueColor, typeRleGrayscale:
		return true
	default:
		return false
	}
}

// headerSize is the fixed, serialized size of a TGA header.
const headerSize = 18

// tgaHeader is the transient 18-byte value read at the start of every
// decode.
type tgaHeader struct {
	idLength        uint8
	mapType         uint8
	imageType       imageType
	mapFirstEntry   uint16
	mapLength       uint16
	mapEntrySize    uint8
	imageXOrigin    uint16
	imageYOrigin    uint16
	imageWidth      uint16
	imageHeight     uint16
	pixelDepth      uint8
	imageDescriptor uint8
}

// flipHorizontal reports whether bit 4 of image_descriptor (right-origin)
// is set.
func (h *tgaHeader) flipHorizontal() bool {
	return h.imageDescriptor&0x10 != 0
}

// flipVertical reports whether bit 5 of image_descriptor (top-origin) is
// clear — the canonical in-memory origin is always upper-left.
func (h *tgaHeader) flipVertical() bool {
	return h.imageDescriptor&0x20 == 0
}

// readHeader reads the 18-byte header in file order, validates it, and
// returns the resolved in-memory pixel format alongside the raw header.
func readHeader(br *byteReader) (tgaHeader, PixelFormat, error) {
	var h tgaHeader
	var err error

	if h.idLength, err = br.readUint8(); err != nil {
		return h, 0, err
	}
	if h.mapType, err = br.readUint8(); err != nil {
		return h, 0, err
	}
	var rawType uint8
	if rawType, err = br.readUint8(); err != nil {
		return h, 0, err
	}
	h.imageType = imageType(rawType)
	if h.mapFirstEntry, err = br.readUint16LE(); err != nil {
		return h, 0, err
	}
	if h.mapLength, err = br.readUint16LE(); err != nil {
		return h, 0, err
	}
	if h.mapEntrySize, err = br.readUint8(); err != nil {
		return h, 0, err
	}
	if h.imageXOrigin, err = br.readUint16LE(); err != nil {
		return h, 0, err
	}
	if h.imageYOrigin, err = br.readUint16LE(); err != nil {
		return h, 0, err
	}
	if h.imageWidth, err = br.readUint16LE(); err != nil {
		return h, 0, err
	}
	if h.imageHeight, err = br.readUint16LE(); err != nil {
		return h, 0, err
	}
	if h.pixelDepth, err = br.readUint8(); err != nil {
		return h, 0, err
	}
	if h.imageDescriptor, err = br.readUint8(); err != nil {
		return h, 0, err
	}

	if h.mapType > 1 {
		return h, 0, ErrUnsupportedColorMapType
	}
	if h.imageType == typeNoData {
		return h, 0, ErrNoData
	}
	if !h.imageType.isRecognized() {
		return h, 0, ErrUnsupportedImageType
	}
	if h.imageWidth == 0 || h.imageHeight == 0 {
		return h, 0, ErrInvalidImageDimension
	}

	format, err := resolvePixelFormat(&h)
	if err != nil {
		return h, 0, err
	}
	return h, format, nil
}

// resolvePixelFormat maps (image class, pixel_depth, map_entry_size) to
// the in-memory pixel format. Color-mapped images must store 8-bit
// indices; the format then follows the map entry size.
func resolvePixelFormat(h *tgaHeader) (PixelFormat, error) {
	switch {
	case h.imageType.isColorMapped():
		if h.pixelDepth != 8 {
			return 0, ErrUnsupportedPixelFormat
		}
		switch h.mapEntrySize {
		case 15, 16:
			return RGB555, nil
		case 24:
			return RGB24, nil
		case 32:
			return ARGB32, nil
		}
	case h.imageType.isTrueColor():
		switch h.pixelDepth {
		case 16:
			return RGB555, nil
		case 24:
			return RGB24, nil
		case 32:
			return ARGB32, nil
		}
	case h.imageType.isGrayscale():
		switch h.pixelDepth {
		case 8:
			return BW8, nil
		case 16:
			return BW16, nil
		}
	}
	return 0, ErrUnsupportedPixelFormat
}

// bitsToBytes converts a bit count to the number of bytes needed to
// hold it.
func bitsToBytes(bits int) int {
	return (bits-1)/8 + 1
}
