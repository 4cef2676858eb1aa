package parse_test

import (
	"math"
	"testing"

	"github.com/jlrickert/glue/pkg/parse"
	"github.com/stretchr/testify/require"
)

func TestInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		def  int
		want int
	}{
		{name: "int passthrough", in: 42, def: -1, want: 42},
		{name: "int64", in: int64(-7), def: -1, want: -7},
		{name: "uint8", in: uint8(200), def: -1, want: 200},
		{name: "string", in: "123", def: -1, want: 123},
		{name: "string with spaces", in: "  12 ", def: -1, want: 12},
		{name: "signed string", in: "-15", def: 0, want: -15},
		{name: "plus sign", in: "+5", def: 0, want: 5},
		{name: "decimal string", in: "1.5", def: -1, want: -1},
		{name: "garbage", in: "abc", def: -1, want: -1},
		{name: "empty", in: "", def: 9, want: 9},
		{name: "float truncates", in: 3.9, def: -1, want: 3},
		{name: "negative float truncates", in: -3.9, def: 0, want: -3},
		{name: "nan", in: math.NaN(), def: -1, want: -1},
		{name: "true", in: true, def: -1, want: 1},
		{name: "false", in: false, def: -1, want: 0},
		{name: "bytes", in: []byte("77"), def: -1, want: 77},
		{name: "nil", in: nil, def: -1, want: -1},
		{name: "struct", in: struct{}{}, def: -1, want: -1},
		{name: "uint64 overflow", in: uint64(math.MaxUint64), def: -1, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, parse.Int(tt.in, tt.def))
		})
	}
}

func TestBool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		def  bool
		want bool
	}{
		{name: "true passthrough", in: true, def: false, want: true},
		{name: "false passthrough", in: false, def: true, want: false},
		{name: "nil uses default", in: nil, def: true, want: true},
		{name: "empty uses default", in: "", def: true, want: true},
		{name: "numeric positive", in: "10", def: false, want: true},
		{name: "numeric zero", in: "0", def: true, want: false},
		{name: "word true", in: "TRUE", def: false, want: true},
		{name: "word yes", in: "Yes", def: false, want: true},
		{name: "slang", in: "lemme_smash", def: false, want: true},
		{name: "percent", in: "100%", def: false, want: true},
		{name: "single k", in: "k", def: false, want: true},
		{name: "unknown word", in: "nope", def: true, want: false},
		{name: "negative number string is not numeric", in: "-1", def: true, want: false},
		{name: "arabic-indic digit is a word", in: "\u0663", def: true, want: false},
		{name: "fullwidth digit is a word", in: "\uff11", def: true, want: false},
		{name: "int positive", in: 3, def: false, want: true},
		{name: "int negative", in: -3, def: true, want: false},
		{name: "int zero uses default", in: 0, def: true, want: true},
		{name: "float", in: 0.5, def: false, want: true},
		{name: "bytes", in: []byte("sure"), def: false, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, parse.Bool(tt.in, tt.def))
		})
	}
}

func TestAffirmatives(t *testing.T) {
	t.Parallel()

	words := parse.Affirmatives()
	require.Len(t, words, 23)
	for _, w := range words {
		require.True(t, parse.Bool(w, false), w)
	}
}
