package tga

import (
	"bytes"
	"testing"
)

func TestEncodeNoData(t *testing.T) {
	if err := Encode(&bytes.Buffer{}, nil); err != ErrNoData {
		t.Errorf("Encode(nil image) = %v, want ErrNoData", err)
	}
	if err := Encode(&bytes.Buffer{}, &Image{}); err != ErrNoData {
		t.Errorf("Encode(empty image) = %v, want ErrNoData", err)
	}
}

func TestEncodeHeaderFields(t *testing.T) {
	img, err := Create(300, 2, ARGB32)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	got := buf.Bytes()
	if len(got) != headerSize+len(img.Pix) {
		t.Fatalf("encoded length = %d, want %d", len(got), headerSize+len(img.Pix))
	}
	if got[2] != byte(typeTrueColor) {
		t.Errorf("image_type = %d, want %d", got[2], typeTrueColor)
	}
	if w := uint16(got[12]) | uint16(got[13])<<8; w != 300 {
		t.Errorf("width = %d, want 300", w)
	}
	if h := uint16(got[14]) | uint16(got[15])<<8; h != 2 {
		t.Errorf("height = %d, want 2", h)
	}
	if got[16] != 32 {
		t.Errorf("pixel_depth = %d, want 32", got[16])
	}
	if got[17] != 0x28 {
		t.Errorf("image_descriptor = %#x, want 0x28", got[17])
	}
}

func TestEncodeGrayscaleHeader(t *testing.T) {
	img, err := Create(4, 4, BW16)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	got := buf.Bytes()
	if got[2] != byte(typeGrayscale) {
		t.Errorf("image_type = %d, want %d", got[2], typeGrayscale)
	}
	if got[17] != 0x20 {
		t.Errorf("image_descriptor = %#x, want 0x20", got[17])
	}
}

func TestRoundTrip(t *testing.T) {
	formats := []PixelFormat{BW8, BW16, RGB24, ARGB32}
	for _, f := range formats {
		img, err := Create(37, 23, f)
		if err != nil {
			t.Fatal(err)
		}
		copy(img.Pix, fillSequential(37*23, img.BytesPerPixel))

		var buf bytes.Buffer
		if err := Encode(&buf, img); err != nil {
			t.Fatalf("%v: Encode: %v", f, err)
		}
		got, err := Decode(&buf)
		if err != nil {
			t.Fatalf("%v: Decode: %v", f, err)
		}
		if got.Width != img.Width || got.Height != img.Height || got.Format != img.Format {
			t.Fatalf("%v: got %dx%d %v, want %dx%d %v", f, got.Width, got.Height, got.Format, img.Width, img.Height, img.Format)
		}
		if !bytes.Equal(got.Pix, img.Pix) {
			t.Fatalf("%v: pixel data changed across round trip", f)
		}
	}
}
