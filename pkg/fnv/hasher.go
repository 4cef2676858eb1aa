package fnv

import (
	"github.com/jlrickert/cli-toolkit/toolkit"
)

// Hasher adapts FNV-1 to the toolkit.Hasher interface. The zero value hashes
// at DefaultWidth.
type Hasher struct {
	Width Width
}

// NewHasher returns a Hasher for w, rejecting unsupported widths up front so
// Hash never has to.
func NewHasher(w Width) (*Hasher, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return &Hasher{Width: w}, nil
}

// Hash returns the hex digest of data. An invalid Width falls back to
// DefaultWidth.
func (h *Hasher) Hash(data []byte) string {
	w := DefaultWidth
	if h != nil && h.Width.Validate() == nil {
		w = h.Width
	}
	d, _ := Sum(data, w)
	return d.Hex()
}

var _ toolkit.Hasher = (*Hasher)(nil)
