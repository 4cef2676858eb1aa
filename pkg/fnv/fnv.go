// Package fnv computes FNV-1 hashes at the six published widths (32, 64, 128,
// 256, 512 and 1024 bits).
//
// Every byte is folded into the accumulator as
//
//	acc = (acc * prime) mod 2^width
//	acc = acc XOR byte
//
// which is FNV-1 proper. The xor-first variant (FNV-1a) is not provided and
// produces different values.
//
// Functions in this package hold no shared mutable state and may be called
// from any number of goroutines.
package fnv

import (
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"math/big"
)

// Digest is a finished FNV-1 accumulator of a known width.
type Digest struct {
	width Width
	value *big.Int
}

// Width reports the width the digest was computed at.
func (d Digest) Width() Width { return d.width }

// Int returns the raw accumulator. The caller owns the returned value.
func (d Digest) Int() *big.Int {
	if d.value == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(d.value)
}

// Uint64 returns the accumulator as a uint64. ok is false for widths above 64.
func (d Digest) Uint64() (v uint64, ok bool) {
	if d.width > Width64 || d.value == nil {
		return 0, false
	}
	return d.value.Uint64(), true
}

// Bytes returns the big-endian encoding, always width/8 bytes long.
func (d Digest) Bytes() []byte {
	out := make([]byte, d.width.Bytes())
	if d.value != nil {
		d.value.FillBytes(out)
	}
	return out
}

// Hex returns the lowercase hex form, zero-padded to width/4 digits.
func (d Digest) Hex() string { return hex.EncodeToString(d.Bytes()) }

func (d Digest) String() string { return d.Hex() }

// Sum hashes data at width w.
func Sum(data []byte, w Width) (Digest, error) {
	h, err := newDigest(w)
	if err != nil {
		return Digest{}, err
	}
	_, _ = h.Write(data)
	return h.digest(), nil
}

// SumString hashes the UTF-8 bytes of s at width w.
func SumString(s string, w Width) (Digest, error) {
	return Sum([]byte(s), w)
}

// Int hashes data at width w and returns the raw accumulator.
func Int[T ~[]byte | ~string](data T, w Width) (*big.Int, error) {
	d, err := Sum([]byte(data), w)
	if err != nil {
		return nil, err
	}
	return d.Int(), nil
}

// Hex hashes data at width w and returns the zero-padded lowercase hex digest.
func Hex[T ~[]byte | ~string](data T, w Width) (string, error) {
	d, err := Sum([]byte(data), w)
	if err != nil {
		return "", err
	}
	return d.Hex(), nil
}

// HashValue hashes a dynamically typed value. v may be a []byte, a string or
// an io.Reader. With asText the result is the hex string, otherwise a *big.Int.
func HashValue(v any, w Width, asText bool) (any, error) {
	var (
		d   Digest
		err error
	)
	switch t := v.(type) {
	case []byte:
		d, err = Sum(t, w)
	case string:
		d, err = SumString(t, w)
	case io.Reader:
		d, err = SumReader(t, w)
	default:
		return nil, &UnsupportedInputError{Type: fmt.Sprintf("%T", v)}
	}
	if err != nil {
		return nil, err
	}
	if asText {
		return d.Hex(), nil
	}
	return d.Int(), nil
}

// SumReader hashes everything read from r until EOF.
func SumReader(r io.Reader, w Width) (Digest, error) {
	h, err := newDigest(w)
	if err != nil {
		return Digest{}, err
	}
	if _, err := io.Copy(h, r); err != nil {
		return Digest{}, fmt.Errorf("read input: %w", err)
	}
	return h.digest(), nil
}

// Sum32 is the 32-bit FNV-1 hash of data.
func Sum32[T ~[]byte | ~string](data T) uint32 {
	h := uint32(offset32)
	for i := 0; i < len(data); i++ {
		h *= prime32
		h ^= uint32(data[i])
	}
	return h
}

// Sum64 is the 64-bit FNV-1 hash of data.
func Sum64[T ~[]byte | ~string](data T) uint64 {
	h := uint64(offset64)
	for i := 0; i < len(data); i++ {
		h *= prime64
		h ^= uint64(data[i])
	}
	return h
}

const (
	offset32 = 2166136261
	prime32  = 16777619
	offset64 = 14695981039346656037
	prime64  = 1099511628211
)

// New returns a streaming hash.Hash for width w. Sum appends the big-endian
// digest, so the output matches Digest.Bytes for the same input.
func New(w Width) (hash.Hash, error) {
	return newDigest(w)
}

type state interface {
	hash.Hash
	digest() Digest
}

func newDigest(w Width) (state, error) {
	switch w {
	case Width32:
		d := &state32{}
		d.Reset()
		return d, nil
	case Width64:
		d := &state64{}
		d.Reset()
		return d, nil
	}
	p, err := lookup(w)
	if err != nil {
		return nil, err
	}
	d := &stateBig{width: w, p: p, acc: new(big.Int), b: new(big.Int)}
	d.Reset()
	return d, nil
}

type state32 struct{ h uint32 }

func (s *state32) Write(data []byte) (int, error) {
	h := s.h
	for _, c := range data {
		h *= prime32
		h ^= uint32(c)
	}
	s.h = h
	return len(data), nil
}

func (s *state32) Sum(b []byte) []byte {
	return append(b, byte(s.h>>24), byte(s.h>>16), byte(s.h>>8), byte(s.h))
}

func (s *state32) Reset()         { s.h = offset32 }
func (s *state32) Size() int      { return 4 }
func (s *state32) BlockSize() int { return 1 }

func (s *state32) digest() Digest {
	return Digest{width: Width32, value: new(big.Int).SetUint64(uint64(s.h))}
}

type state64 struct{ h uint64 }

func (s *state64) Write(data []byte) (int, error) {
	h := s.h
	for _, c := range data {
		h *= prime64
		h ^= uint64(c)
	}
	s.h = h
	return len(data), nil
}

func (s *state64) Sum(b []byte) []byte {
	for shift := 56; shift >= 0; shift -= 8 {
		b = append(b, byte(s.h>>uint(shift)))
	}
	return b
}

func (s *state64) Reset()         { s.h = offset64 }
func (s *state64) Size() int      { return 8 }
func (s *state64) BlockSize() int { return 1 }

func (s *state64) digest() Digest {
	return Digest{width: Width64, value: new(big.Int).SetUint64(s.h)}
}

// stateBig carries widths beyond 64 bits in a big.Int, masking back to the
// width after every multiply.
type stateBig struct {
	width Width
	p     params
	acc   *big.Int
	b     *big.Int
}

func (s *stateBig) Write(data []byte) (int, error) {
	for _, c := range data {
		s.acc.Mul(s.acc, s.p.prime)
		s.acc.And(s.acc, s.p.mask)
		s.acc.Xor(s.acc, s.b.SetUint64(uint64(c)))
	}
	return len(data), nil
}

func (s *stateBig) Sum(b []byte) []byte {
	return append(b, s.digest().Bytes()...)
}

func (s *stateBig) Reset()         { s.acc.Set(s.p.offset) }
func (s *stateBig) Size() int      { return s.width.Bytes() }
func (s *stateBig) BlockSize() int { return 1 }

func (s *stateBig) digest() Digest {
	return Digest{width: s.width, value: new(big.Int).Set(s.acc)}
}

var (
	_ state = (*state32)(nil)
	_ state = (*state64)(nil)
	_ state = (*stateBig)(nil)
)
