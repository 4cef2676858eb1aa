package glue

import (
	"context"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/jlrickert/glue/pkg/pack"
	"github.com/jlrickert/glue/pkg/parse"
	"gopkg.in/yaml.v3"
)

type ParseIntOptions struct {
	Value   string
	Default int
}

// ParseInt coerces a value to an integer, printing Default when it cannot.
func (g *Glue) ParseInt(ctx context.Context, opts ParseIntOptions) (string, error) {
	return strconv.Itoa(parse.Int(opts.Value, opts.Default)) + "\n", nil
}

type ParseBoolOptions struct {
	Value   string
	Default bool
}

// ParseBool coerces a value to a boolean, printing Default when it is empty.
func (g *Glue) ParseBool(ctx context.Context, opts ParseBoolOptions) (string, error) {
	return strconv.FormatBool(parse.Bool(opts.Value, opts.Default)) + "\n", nil
}

type PackOptions struct {
	// Values are base-10 integers in [0, 2^32).
	Values []string
}

type packOutput struct {
	Count int    `yaml:"count"`
	Hex   string `yaml:"hex"`
}

// Pack encodes integers as 4-byte big-endian words and prints the count and
// hex payload as YAML.
func (g *Glue) Pack(ctx context.Context, opts PackOptions) (string, error) {
	lg := g.Runtime.Logger()

	ints := make([]int, 0, len(opts.Values))
	for _, raw := range opts.Values {
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return "", &InputError{Value: raw, Err: err}
		}
		ints = append(ints, int(n))
	}

	count, payload, err := pack.PackInts(ints)
	if err != nil {
		return "", err
	}
	out, err := yaml.Marshal(packOutput{Count: count, Hex: hex.EncodeToString(payload)})
	if err != nil {
		return "", fmt.Errorf("encode pack output: %w", err)
	}
	lg.Debug("packed values", "count", count)
	return string(out), nil
}

type UnpackOptions struct {
	// Hex is the packed payload. Whitespace is ignored.
	Hex string
}

// Unpack decodes a hex payload produced by Pack, one value per line.
func (g *Glue) Unpack(ctx context.Context, opts UnpackOptions) (string, error) {
	cleaned := strings.Join(strings.Fields(opts.Hex), "")
	if cleaned == "" {
		return "", fmt.Errorf("nothing to unpack: %w", ErrNoInput)
	}
	raw, err := hex.DecodeString(cleaned)
	if err != nil {
		return "", &InputError{Value: opts.Hex, Err: err}
	}
	values, err := pack.Unpack(raw)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, v := range values {
		b.WriteString(strconv.FormatUint(uint64(v), 10))
		b.WriteByte('\n')
	}
	return b.String(), nil
}
