// Package vericode generates the numeric codes sent to users for account
// verification (6 digits) and password recovery (8 digits).
package vericode

import (
	"fmt"
	"math/rand/v2"
)

// Source supplies uniformly distributed ints in [0, n). *rand.Rand satisfies
// it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Generator produces verification and password-recovery codes.
type Generator struct {
	src Source
}

// New returns a Generator drawing from src. A nil src uses the auto-seeded
// math/rand/v2 generator.
func New(src Source) *Generator {
	if src == nil {
		src = globalSource{}
	}
	return &Generator{src: src}
}

// Default draws from the auto-seeded global generator.
var Default = New(nil)

// scheme describes one code family: a base offset, a random span added to it
// and the shrink factor applied until the value fits under max.
type scheme struct {
	base   int
	lo, hi int
	shrink float64
	max    int
	digits int
}

var (
	vericodeScheme = scheme{base: 0xFF3266, lo: 999, hi: 35582314, shrink: .863, max: 999999, digits: 6}
	passcodeScheme = scheme{base: 0x5FE3AA4, lo: 999, hi: 85338214, shrink: .927, max: 99999999, digits: 8}
)

func (g *Generator) generate(s scheme) int {
	v := s.base + s.lo + g.src.IntN(s.hi-s.lo)
	for v > s.max {
		v = int(float64(v) - float64(v)*s.shrink)
	}
	return v
}

// Vericode returns a verification code in [0, 999999].
func (g *Generator) Vericode() int { return g.generate(vericodeScheme) }

// Passcode returns a password-recovery code in [0, 99999999].
func (g *Generator) Passcode() int { return g.generate(passcodeScheme) }

// VericodeString left-pads n with zeros to six digits.
func VericodeString(n int) string { return pad(n, vericodeScheme.digits) }

// PasscodeString left-pads n with zeros to eight digits.
func PasscodeString(n int) string { return pad(n, passcodeScheme.digits) }

func pad(n, digits int) string {
	return fmt.Sprintf("%0*d", digits, n)
}
