package tga

// FlipHorizontal mirrors img left-to-right in place. It is a no-op on a
// nil image or an image with nil pixel data.
//
// Pixels are swapped pairwise across the vertical midline through a
// fixed 4-byte buffer; no supported format exceeds 4 bytes per pixel.
func (img *Image) FlipHorizontal() {
	if img == nil || img.Pix == nil {
		return
	}
	var tmp [4]byte
	bpp := img.BytesPerPixel
	for i := 0; i < img.Width/2; i++ {
		j := img.Width - 1 - i
		for y := 0; y < img.Height; y++ {
			p1 := img.Pix[img.pixelOffset(i, y) : img.pixelOffset(i, y)+bpp]
			p2 := img.Pix[img.pixelOffset(j, y) : img.pixelOffset(j, y)+bpp]
			copy(tmp[:bpp], p1)
			copy(p1, p2)
			copy(p2, tmp[:bpp])
		}
	}
}

// FlipVertical mirrors img top-to-bottom in place. It is a no-op on a nil
// image or an image with nil pixel data.
func (img *Image) FlipVertical() {
	if img == nil || img.Pix == nil {
		return
	}
	var tmp [4]byte
	bpp := img.BytesPerPixel
	for i := 0; i < img.Height/2; i++ {
		j := img.Height - 1 - i
		for x := 0; x < img.Width; x++ {
			p1 := img.Pix[img.pixelOffset(x, i) : img.pixelOffset(x, i)+bpp]
			p2 := img.Pix[img.pixelOffset(x, j) : img.pixelOffset(x, j)+bpp]
			copy(tmp[:bpp], p1)
			copy(p1, p2)
			copy(p2, tmp[:bpp])
		}
	}
}
