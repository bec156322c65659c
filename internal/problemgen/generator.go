package problemgen

import (
	"fmt"

	"github.com/abhisek/mathsprint/internal/difficulty"
)

// Generator produces arithmetic problems for a difficulty profile.
type Generator interface {
	// Generate returns a single problem drawn from the profile's
	// operand range and operator set.
	Generate(p difficulty.Profile) Problem
}

// New returns a Generator backed by the given randomness source.
func New(rng Rand) Generator {
	return &randomGenerator{rng: rng}
}

// NewDefault returns a Generator drawing from the process-wide
// auto-seeded source.
func NewDefault() Generator {
	return New(systemRand{})
}

type randomGenerator struct {
	rng Rand
}

// Generate picks an operator with weight equal to its multiplicity in
// the profile's operator set, then draws both operands uniformly from
// the profile range and applies the operator's construction rule.
// Subtraction operands are swapped into descending order so the result
// is never negative. Division problems are built backwards from a drawn
// quotient and divisor so they always divide exactly, with the divisor
// drawn from a range floored at 1.
func (g *randomGenerator) Generate(p difficulty.Profile) Problem {
	op := p.Operators[g.rng.IntN(len(p.Operators))]
	a := g.between(p.Min, p.Max)
	b := g.between(p.Min, p.Max)

	switch op {
	case difficulty.OpSub:
		if b > a {
			a, b = b, a
		}
		return Problem{Text: fmt.Sprintf("%d - %d", a, b), Answer: a - b}
	case difficulty.OpMul:
		return Problem{Text: fmt.Sprintf("%d × %d", a, b), Answer: a * b}
	case difficulty.OpDiv:
		divisor := g.between(max(1, p.Min), max(1, p.Max))
		quotient := g.between(p.Min, p.Max)
		dividend := quotient * divisor
		return Problem{Text: fmt.Sprintf("%d ÷ %d", dividend, divisor), Answer: quotient}
	default:
		// OpAdd, and the fallback for anything unrecognized.
		return Problem{Text: fmt.Sprintf("%d + %d", a, b), Answer: a + b}
	}
}

// between returns a uniform draw from [lo, hi] inclusive.
func (g *randomGenerator) between(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}
