package tga

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.tga")

	img, err := Create(16, 12, RGB24)
	if err != nil {
		t.Fatal(err)
	}
	copy(img.Pix, fillSequential(16*12, 3))

	if err := Save(path, img); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Width != img.Width || loaded.Height != img.Height || loaded.Format != img.Format {
		t.Fatalf("loaded metadata mismatch")
	}
	if !bytes.Equal(loaded.Pix, img.Pix) {
		t.Fatalf("loaded pixel data mismatch")
	}
}

func TestSaveRefusesExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.tga")
	if err := os.WriteFile(path, []byte("existing"), 0o644); err != nil {
		t.Fatal(err)
	}

	img, err := Create(4, 4, RGB24)
	if err != nil {
		t.Fatal(err)
	}
	if err := Save(path, img); err != ErrFileCannotWrite {
		t.Fatalf("Save over existing file = %v, want ErrFileCannotWrite", err)
	}
}

func TestSaveNoData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.tga")
	if err := Save(path, nil); err != ErrNoData {
		t.Fatalf("Save(nil) = %v, want ErrNoData", err)
	}
	if _, err := os.Stat(path); err == nil {
		t.Fatal("Save(nil) should not have created a file")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.tga")); err != ErrFileCannotRead {
		t.Fatalf("Load missing file = %v, want ErrFileCannotRead", err)
	}
}
