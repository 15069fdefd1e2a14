// Package chain - random-bijection generator.
//
// This file implements the stand-in for opaque third-party chain builders:
// successor[i] = σ(i) for a uniform random permutation σ. Every slot has
// exactly one predecessor and one successor, so the chain is a valid
// bijection - but nothing forces its functional graph into a single cycle.
// A uniform permutation of n elements splits into about ln(n) disjoint
// cycles, and the cycle through element 0 covers only about half the array
// on average. That makes this generator the canonical "defective" input for
// exercising the analyzer's coverage diagnostic, mirroring how library
// generators with chunked construction behave in practice.
package chain

// RandomBijection generates chains whose successor function is a uniform
// random permutation. It intentionally does NOT promise a single full
// cycle; see the file header. Construct with NewRandomBijection.
type RandomBijection struct {
	cfg genConfig
}

// NewRandomBijection returns a random-bijection generator configured by
// opts (WithSeed / WithRand / WithMaxElems).
func NewRandomBijection(opts ...Option) *RandomBijection {
	return &RandomBijection{cfg: newGenConfig(opts...)}
}

// Name returns KindBijection.
func (g *RandomBijection) Name() string { return KindBijection }

// Generate builds a successor array whose values are a uniform permutation
// of [0,n). Fixed points (σ(i)==i) are possible and legal: they are
// length-1 cycles the analyzer reports as drastic under-coverage.
//
// Errors: ErrTooFewElements (n < MinChainElems), ErrChainTooLarge
// (n > budget).
//
// Complexity: O(n) time, O(n) space for the returned chain plus one
// transient permutation buffer.
func (g *RandomBijection) Generate(n int) (Chain, error) {
	if n < MinChainElems {
		return nil, ErrTooFewElements
	}
	if n > g.cfg.maxElems {
		return nil, ErrChainTooLarge
	}

	// Identity permutation, then an unrestricted Fisher–Yates pass.
	perm := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		perm[i] = i
	}
	shuffleIntsInPlace(perm, g.cfg.rng)

	ch := make(Chain, n)
	for i = 0; i < n; i++ {
		ch[i] = uint64(perm[i])
	}

	return ch, nil
}
