package tga

import "os"

// Load reads a TGA image from the file at path.
func Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ErrFileCannotRead
	}
	defer f.Close()
	return Decode(f)
}

// Save writes img to the file at path as an uncompressed TGA file.
//
// Save refuses to overwrite an existing file. On any write failure the
// partially written file is removed.
func Save(path string, img *Image) error {
	if img == nil || img.Pix == nil {
		return ErrNoData
	}

	if _, err := os.Stat(path); err == nil {
		return ErrFileCannotWrite
	}

	f, err := os.Create(path)
	if err != nil {
		return ErrFileCannotWrite
	}

	if err := Encode(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return ErrFileCannotWrite
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return ErrFileCannotWrite
	}
	return nil
}
