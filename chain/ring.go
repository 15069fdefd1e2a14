// Package chain - ring-shuffle generator.
//
// This file implements the reference construction: take the identity ring
// 0→1→…→N−1→0, randomize the order in which its nodes are visited while
// pinning the endpoints, then rewrite every slot to point at its assigned
// successor. Shuffling only the interior of the visiting order relabels the
// intermediate hops without restructuring the cycle graph, so the result is
// a single N-cycle by construction - the correctness the walk analyzer
// later confirms as 100% coverage.
package chain

// RingShuffle generates chains by shuffling the interior of an identity
// ring's visiting order. Construct with NewRingShuffle; zero value is not
// usable.
//
// Shuffle range policy:
//   - default: positions [1, N−2] of the visiting order, matching the
//     reference algorithm, which leaves the penultimate hop pinned (element
//     N−1 always links back to 0). Under-randomizes one position; does not
//     weaken the cycle invariant.
//   - WithFullInteriorShuffle: positions [1, N−1], every interior position
//     randomized.
type RingShuffle struct {
	cfg genConfig
}

// NewRingShuffle returns a ring-shuffle generator configured by opts
// (WithSeed / WithRand / WithMaxElems / WithFullInteriorShuffle).
func NewRingShuffle(opts ...Option) *RingShuffle {
	return &RingShuffle{cfg: newGenConfig(opts...)}
}

// Name returns KindRing.
func (g *RingShuffle) Name() string { return KindRing }

// Generate builds a successor array of n slots forming one Hamiltonian cycle.
//
// Algorithm:
//  1. order[0..n] = [0,1,…,n−1,0] - the visiting order of the identity
//     ring, with the duplicated trailing 0 closing the cycle.
//  2. Fisher–Yates shuffle of the interior positions (range per policy
//     above). Positions 0 and n stay 0, so the walk still starts and ends
//     at element 0 and the order remains a Hamiltonian cycle.
//  3. chain[order[i]] = order[i+1] for i in [0,n): materialize the order
//     as successor links.
//
// The order buffer is transient; only the chain survives the call.
//
// Errors: ErrTooFewElements (n < MinChainElems), ErrChainTooLarge
// (n > budget).
//
// Complexity: O(n) time, O(n) transient space plus the returned chain.
func (g *RingShuffle) Generate(n int) (Chain, error) {
	if n < MinChainElems {
		return nil, ErrTooFewElements
	}
	if n > g.cfg.maxElems {
		return nil, ErrChainTooLarge
	}

	// Stage 1: identity visiting order, closed back to 0.
	order := make([]int, n+1)

	var i int
	for i = 0; i < n; i++ {
		order[i] = i
	}
	order[n] = 0

	// Stage 2: randomize the interior. hi is exclusive.
	var hi int
	hi = n - 1
	if g.cfg.fullInterior {
		hi = n
	}
	shuffleIntsInPlace(order[1:hi], g.cfg.rng)

	// Stage 3: link each visited element to the next one in order.
	ch := make(Chain, n)
	for i = 0; i < n; i++ {
		ch[order[i]] = uint64(order[i+1])
	}

	return ch, nil
}
