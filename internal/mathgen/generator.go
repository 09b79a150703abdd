// Package mathgen procedurally generates arithmetic problems for the math
// game. Three difficulty tiers, two problem families per tier, exact string
// answers suitable for direct comparison.
package mathgen

import (
	"fmt"
	"math/rand/v2"
)

// TierCount is the number of difficulty tiers.
const TierCount = 3

// Problem is one generated task: a human-readable statement and the exact
// answer string a correct reply must match.
type Problem struct {
	Statement string
	Answer    string
}

// Generator draws random problems per difficulty tier.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator. A nil source seeds from the global generator;
// tests pass a fixed source for determinism.
func New(src rand.Source) *Generator {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Generator{rng: rand.New(src)}
}

// Generate returns a fresh problem for the given tier (0-based, ascending
// difficulty).
func (g *Generator) Generate(tier int) (Problem, error) {
	if tier < 0 || tier >= TierCount {
		return Problem{}, fmt.Errorf("mathgen: tier %d out of range [0,%d]", tier, TierCount-1)
	}

	// Two families per tier, picked uniformly, matching the tier table of
	// the difficulty model.
	pick := g.rng.IntN(2)
	switch tier {
	case 0:
		if pick == 0 {
			return g.addition(), nil
		}
		return g.subtraction(), nil
	case 1:
		if pick == 0 {
			return g.multiplication(), nil
		}
		return g.division(), nil
	default:
		if pick == 0 {
			return g.square(), nil
		}
		return g.percentage(), nil
	}
}

// intN returns a random integer in [lo, hi].
func (g *Generator) intN(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}

func (g *Generator) addition() Problem {
	a, b := g.intN(2, 50), g.intN(2, 50)
	return Problem{
		Statement: fmt.Sprintf("%d + %d", a, b),
		Answer:    fmt.Sprintf("%d", a+b),
	}
}

func (g *Generator) subtraction() Problem {
	a, b := g.intN(2, 50), g.intN(2, 50)
	if b > a {
		a, b = b, a
	}
	return Problem{
		Statement: fmt.Sprintf("%d - %d", a, b),
		Answer:    fmt.Sprintf("%d", a-b),
	}
}

func (g *Generator) multiplication() Problem {
	a, b := g.intN(2, 12), g.intN(2, 12)
	return Problem{
		Statement: fmt.Sprintf("%d * %d", a, b),
		Answer:    fmt.Sprintf("%d", a*b),
	}
}

// division builds the quotient first so the result is always exact.
func (g *Generator) division() Problem {
	quotient, divisor := g.intN(2, 12), g.intN(2, 12)
	return Problem{
		Statement: fmt.Sprintf("%d / %d", quotient*divisor, divisor),
		Answer:    fmt.Sprintf("%d", quotient),
	}
}

func (g *Generator) square() Problem {
	n := g.intN(4, 20)
	return Problem{
		Statement: fmt.Sprintf("%d^2", n),
		Answer:    fmt.Sprintf("%d", n*n),
	}
}

// percentage keeps the base a multiple of 20 so every result is integral.
func (g *Generator) percentage() Problem {
	percent := 5 * g.intN(1, 19)
	base := 20 * g.intN(1, 25)
	return Problem{
		Statement: fmt.Sprintf("%d%% от %d", percent, base),
		Answer:    fmt.Sprintf("%d", percent*base/100),
	}
}
