package tga

// maxDimension is the largest width or height representable in a TGA
// header's 16-bit image_width/image_height fields.
const maxDimension = 65535

// Image is a decoded or created TGA raster: width, height, pixel format
// and a contiguous, row-major, upper-left-origin pixel byte array. The
// pixel at (x, y) occupies Pix[(y*Width+x)*BytesPerPixel:].
//
// An Image's Pix slice is exclusively owned by the Image; there is no
// explicit release operation — the garbage collector reclaims the pixel
// array once the Image is no longer referenced, and Decode never hands
// out a partially initialized Image on an error path.
type Image struct {
	Width         int
	Height        int
	Format        PixelFormat
	BytesPerPixel int
	Pix           []byte
}

// Create allocates a new, zero-filled image of the given width, height
// and pixel format.
func Create(width, height int, format PixelFormat) (*Image, error) {
	if width < 1 || width > maxDimension || height < 1 || height > maxDimension {
		return nil, ErrInvalidImageDimension
	}
	bpp := format.bytesPerPixel()
	if bpp == 0 {
		return nil, ErrUnsupportedPixelFormat
	}
	return &Image{
		Width:         width,
		Height:        height,
		Format:        format,
		BytesPerPixel: bpp,
		Pix:           make([]byte, width*height*bpp),
	}, nil
}

// isOperable reports whether img supports GetPixel/SetPixel: only RGB24
// and ARGB32 carry enough channel information for a general RGBA pixel
// accessor.
func (img *Image) isOperable() bool {
	return img != nil && img.Pix != nil && (img.Format == RGB24 || img.Format == ARGB32)
}

// clamp confines x and y to the image bounds, the library's documented
// contract for GetPixel/SetPixel: out-of-range coordinates are clamped,
// never rejected.
func (img *Image) clamp(x, y int) (int, int) {
	if x < 0 {
		x = 0
	} else if x >= img.Width {
		x = img.Width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= img.Height {
		y = img.Height - 1
	}
	return x, y
}

func (img *Image) pixelOffset(x, y int) int {
	return (y*img.Width + x) * img.BytesPerPixel
}

// GetPixel returns the RGBA channels of the pixel at (x, y), clamping
// out-of-bounds coordinates into range. It is only meaningful for RGB24
// and ARGB32 images; for any other format, or a nil image, it returns all
// zeros. RGB24 images report alpha as 255.
func (img *Image) GetPixel(x, y int) (r, g, b, a uint8) {
	if !img.isOperable() {
		return 0, 0, 0, 0
	}
	x, y = img.clamp(x, y)
	o := img.pixelOffset(x, y)
	p := img.Pix[o : o+img.BytesPerPixel]
	b, g, r = p[0], p[1], p[2]
	if img.Format == ARGB32 {
		a = p[3]
	} else {
		a = 255
	}
	return r, g, b, a
}

// SetPixel writes the RGBA channels of the pixel at (x, y), clamping
// out-of-bounds coordinates into range. It is a no-op for any format
// other than RGB24 and ARGB32, or a nil image. RGB24 images ignore alpha.
func (img *Image) SetPixel(x, y int, r, g, b, a uint8) {
	if !img.isOperable() {
		return
	}
	x, y = img.clamp(x, y)
	o := img.pixelOffset(x, y)
	p := img.Pix[o : o+img.BytesPerPixel]
	p[0], p[1], p[2] = b, g, r
	if img.Format == ARGB32 {
		p[3] = a
	}
}
