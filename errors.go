package tga

// Error is a TGA codec error. It is a plain string type so that the
// package-level sentinel values below are comparable with errors.Is.
type Error string

func (e Error) Error() string { return "tga: " + string(e) }

// Error taxonomy. Every decode or encode failure resolves to exactly one
// of these.
const (
	// ErrOutOfMemory reports that an allocation failed.
	ErrOutOfMemory Error = "out of memory"

	// ErrFileCannotRead reports a short read, unexpected EOF, seek
	// failure or other I/O error while decoding.
	ErrFileCannotRead Error = "cannot read file"

	// ErrFileCannotWrite reports that the destination could not be
	// opened, a write short-wrote, or the destination already exists.
	ErrFileCannotWrite Error = "cannot write file"

	// ErrNoData reports an image with no payload: a header with
	// image_type == 0, or Save called with a nil image or nil pixel data.
	ErrNoData Error = "no image data"

	// ErrUnsupportedColorMapType reports a header map_type field greater
	// than 1.
	ErrUnsupportedColorMapType Error = "unsupported color map type"

	// ErrUnsupportedImageType reports a header image_type field outside
	// the recognized set.
	ErrUnsupportedImageType Error = "unsupported image type"

	// ErrUnsupportedPixelFormat reports that pixel-format resolution
	// failed, or that Create was called with an unknown PixelFormat.
	ErrUnsupportedPixelFormat Error = "unsupported pixel format"

	// ErrInvalidImageDimension reports a zero or oversized width/height.
	ErrInvalidImageDimension Error = "invalid image dimension"

	// ErrBadColorMapIndex reports a color-mapped pixel whose index falls
	// outside the declared color-map range. Such pixels are rejected
	// rather than read out of range.
	ErrBadColorMapIndex Error = "color map index out of range"
)
