// Package pack stores arrays of unsigned 32-bit integers as a single block of
// bytes. Each value takes four bytes in network (big-endian) order.
package pack

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrTruncated is returned by Unpack when the input is not a whole number of
// 4-byte values.
var ErrTruncated = errors.New("pack: truncated value")

// RangeError reports a value that does not fit in an unsigned 32-bit slot.
type RangeError struct {
	Index int
	Value int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("pack: value %d at index %d out of uint32 range", e.Value, e.Index)
}

// Size is the encoded width of one value.
const Size = 4

// Pack returns the number of values and their concatenated encoding.
func Pack(values []uint32) (int, []byte) {
	out := make([]byte, 0, len(values)*Size)
	for _, v := range values {
		out = binary.BigEndian.AppendUint32(out, v)
	}
	return len(values), out
}

// PackInts is Pack for plain ints. Negative values and values above
// math.MaxUint32 are rejected.
func PackInts(values []int) (int, []byte, error) {
	conv := make([]uint32, len(values))
	for i, v := range values {
		if v < 0 || uint64(v) > math.MaxUint32 {
			return 0, nil, &RangeError{Index: i, Value: v}
		}
		conv[i] = uint32(v)
	}
	n, b := Pack(conv)
	return n, b, nil
}

// Unpack decodes a block produced by Pack.
func Unpack(b []byte) ([]uint32, error) {
	if len(b)%Size != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrTruncated, len(b)%Size)
	}
	out := make([]uint32, 0, len(b)/Size)
	for i := 0; i < len(b); i += Size {
		out = append(out, binary.BigEndian.Uint32(b[i:i+Size]))
	}
	return out, nil
}
