package glue

import (
	"context"
	"strings"

	"github.com/jlrickert/glue/pkg/vericode"
)

type VericodeOptions struct {
	// Passcode generates 8-digit recovery codes instead of 6-digit vericodes.
	Passcode bool
	// Count of codes to print. Values below one print a single code.
	Count int
}

// Vericode prints zero-padded verification or passcode values, one per line.
func (g *Glue) Vericode(ctx context.Context, opts VericodeOptions) (string, error) {
	n := max(opts.Count, 1)
	var b strings.Builder
	for range n {
		if opts.Passcode {
			b.WriteString(vericode.PasscodeString(g.Vericodes.Passcode()))
		} else {
			b.WriteString(vericode.VericodeString(g.Vericodes.Vericode()))
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}
