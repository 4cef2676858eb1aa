package fnv

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Width is the bit width of an FNV-1 accumulator.
type Width int

const (
	Width32   Width = 32
	Width64   Width = 64
	Width128  Width = 128
	Width256  Width = 256
	Width512  Width = 512
	Width1024 Width = 1024
)

// DefaultWidth is used by callers that do not pick a width explicitly.
const DefaultWidth = Width64

// params holds the published offset basis and prime for one width, plus the
// 2^width-1 mask used to truncate after every multiply.
type params struct {
	offset *big.Int
	prime  *big.Int
	mask   *big.Int
}

var table = map[Width]params{
	Width32: newParams(32,
		"811c9dc5",
		"1000193"),
	Width64: newParams(64,
		"cbf29ce484222325",
		"100000001b3"),
	Width128: newParams(128,
		"6c62272e07bb014262b821756295c58d",
		"1000000000000000000013b"),
	Width256: newParams(256,
		"dd268dbcaac550362d98c384c4e576ccc8b1536847b6bbb31023b4c8caee0535",
		"1000000000000000000000000000000000000000163"),
	Width512: newParams(512,
		"b86db0b1171f4416dca1e50f309990acac87d059c90000000000000000000d21"+
			"e948f68a34c192f62ea79bc942dbe7ce182036415f56e34bac982aac4afe9fd9",
		"100000000000000000000000000000000000000000000000000000000000000000000000000000000000157"),
	Width1024: newParams(1024,
		"0000000000000000005f7a76758ecc4d32e56d5a591028b74b29fc4223fdada1"+
			"6c3bf34eda3674da9a21d9000000000000000000000000000000000000000000"+
			"000000000000000000000000000000000000000000000000000000000004c6d7"+
			"eb6e73802734510a555f256cc005ae556bde8cc9c6a93b21aff4b16c71ee90b3",
		"1000000000000000000000000000000000000000000000000000000000000000"+
			"0000000000000000000000000000000000000000000000000000000000000000"+
			"000000000000000000000000000000000000000018d"),
}

func newParams(bits uint, offset, prime string) params {
	mask := new(big.Int).Lsh(big.NewInt(1), bits)
	mask.Sub(mask, big.NewInt(1))
	return params{
		offset: mustHex(offset),
		prime:  mustHex(prime),
		mask:   mask,
	}
}

func mustHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic(fmt.Sprintf("fnv: bad constant %q", s))
	}
	return v
}

// Widths returns every supported width in ascending order.
func Widths() []Width {
	return []Width{Width32, Width64, Width128, Width256, Width512, Width1024}
}

// Validate returns an InvalidWidthError when w is not a supported width.
func (w Width) Validate() error {
	if _, ok := table[w]; !ok {
		return &InvalidWidthError{Width: int(w)}
	}
	return nil
}

// Bytes is the digest size in bytes.
func (w Width) Bytes() int { return int(w) / 8 }

// HexLen is the number of hex digits in a rendered digest.
func (w Width) HexLen() int { return int(w) / 4 }

func (w Width) String() string { return strconv.Itoa(int(w)) }

// OffsetBasis returns a copy of the offset basis for w.
func (w Width) OffsetBasis() (*big.Int, error) {
	p, err := lookup(w)
	if err != nil {
		return nil, err
	}
	return new(big.Int).Set(p.offset), nil
}

// Prime returns a copy of the FNV prime for w.
func (w Width) Prime() (*big.Int, error) {
	p, err := lookup(w)
	if err != nil {
		return nil, err
	}
	return new(big.Int).Set(p.prime), nil
}

// ParseWidth parses a decimal width such as "256". An optional "fnv1-" or
// "fnv" prefix is accepted so "fnv1-128" works too.
func ParseWidth(s string) (Width, error) {
	raw := strings.ToLower(strings.TrimSpace(s))
	raw = strings.TrimPrefix(raw, "fnv1-")
	raw = strings.TrimPrefix(raw, "fnv")
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &InvalidWidthError{Raw: s}
	}
	w := Width(n)
	if err := w.Validate(); err != nil {
		return 0, &InvalidWidthError{Width: n}
	}
	return w, nil
}

func lookup(w Width) (params, error) {
	p, ok := table[w]
	if !ok {
		return params{}, &InvalidWidthError{Width: int(w)}
	}
	return p, nil
}
