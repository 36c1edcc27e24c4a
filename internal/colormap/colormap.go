// Package colormap loads a TGA color-map payload and translates
// color-mapped pixel indices into their mapped color bytes.
package colormap

import (
	"errors"
	"io"
)

// ErrShortRead reports that the color-map payload could not be read in
// full.
var ErrShortRead = errors.New("colormap: short read")

// ErrIndexOutOfRange reports a pixel index that falls outside the
// declared [firstIndex, firstIndex+entryCount) range of the map.
// Lookup computes the difference as a signed int so that indices below
// firstIndex are rejected rather than wrapping into an out-of-range
// read.
var ErrIndexOutOfRange = errors.New("colormap: index out of range")

// Map is a loaded color-map payload, confined to the lifetime of a single
// decode call.
type Map struct {
	FirstIndex    uint16
	EntryCount    uint16
	BytesPerEntry int
	pix           []byte
}

// Load reads entryCount entries of bytesPerEntry bytes each from r.
func Load(r io.Reader, firstIndex, entryCount uint16, bytesPerEntry int) (*Map, error) {
	pix := make([]byte, int(entryCount)*bytesPerEntry)
	if _, err := io.ReadFull(r, pix); err != nil {
		return nil, ErrShortRead
	}
	return &Map{
		FirstIndex:    firstIndex,
		EntryCount:    entryCount,
		BytesPerEntry: bytesPerEntry,
		pix:           pix,
	}, nil
}

// Skip advances past a color-map payload without retaining it, for
// headers that declare map_type == 1 alongside a non-color-mapped image
// type.
func Skip(r io.Reader, entryCount uint16, bytesPerEntry int) error {
	n := int64(entryCount) * int64(bytesPerEntry)
	if n == 0 {
		return nil
	}
	if seeker, ok := r.(io.Seeker); ok {
		if cur, err := seeker.Seek(0, io.SeekCurrent); err == nil {
			end, err := seeker.Seek(0, io.SeekEnd)
			if err != nil || end-cur < n {
				return ErrShortRead
			}
			if _, err := seeker.Seek(cur+n, io.SeekStart); err != nil {
				return ErrShortRead
			}
			return nil
		}
	}
	if _, err := io.CopyN(io.Discard, r, n); err != nil {
		return ErrShortRead
	}
	return nil
}

// Lookup copies the bytesPerEntry bytes of the entry for index into dst.
func (m *Map) Lookup(dst []byte, index uint16) error {
	diff := int(index) - int(m.FirstIndex)
	if diff < 0 || diff >= int(m.EntryCount) {
		return ErrIndexOutOfRange
	}
	copy(dst, m.pix[diff*m.BytesPerEntry:diff*m.BytesPerEntry+m.BytesPerEntry])
	return nil
}
