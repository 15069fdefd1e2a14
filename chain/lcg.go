// Package chain - full-period LCG generator.
//
// This file implements a successor function built from a linear
// congruential recurrence, successor[i] = (a·i + c) mod n, with parameters
// chosen per the Hull–Dobell theorem so the recurrence has full period:
//
//	(1) gcd(c, n) == 1,
//	(2) a − 1 is divisible by every prime factor of n,
//	(3) a − 1 is divisible by 4 when 4 divides n.
//
// Full period means iterating the map from any start visits all n residues
// before repeating, i.e. the functional graph is a single Hamiltonian
// cycle - no table, no shuffle, O(1) state. The price is statistical: the
// stride between consecutive elements follows the rigid affine pattern a
// stride histogram exposes on sight, which is precisely why this generator
// earns its place next to the ring shuffle in a benchmark testsuite.
package chain

import "math/rand"

// MaxLCGElems caps the LCG modulus so that a·i never overflows uint64
// during chain construction (both factors stay below 2³¹).
const MaxLCGElems = 1 << 31

// LCG generates chains from a full-period linear congruential successor.
// Construct with NewLCG; zero value is not usable.
type LCG struct {
	cfg genConfig
}

// NewLCG returns an LCG generator configured by opts
// (WithSeed / WithRand / WithMaxElems). The RNG only picks the multiplier
// stream and the additive constant; the cycle property is parameter-exact,
// not probabilistic.
func NewLCG(opts ...Option) *LCG {
	return &LCG{cfg: newGenConfig(opts...)}
}

// Name returns KindLCG.
func (g *LCG) Name() string { return KindLCG }

// Generate builds a successor array of n slots forming one Hamiltonian
// cycle via the recurrence successor[i] = (a·i + c) mod n.
//
// Errors: ErrTooFewElements (n < MinLCGElems), ErrChainTooLarge
// (n > budget or n > MaxLCGElems).
//
// Complexity: O(n) time for the fill plus O(√n) for factoring the modulus;
// O(1) space besides the returned chain.
func (g *LCG) Generate(n int) (Chain, error) {
	if n < MinLCGElems {
		return nil, ErrTooFewElements
	}
	if n > g.cfg.maxElems || n > MaxLCGElems {
		return nil, ErrChainTooLarge
	}

	var a, c uint64
	a, c = lcgParams(uint64(n), g.cfg.rng)

	ch := make(Chain, n)

	var (
		un = uint64(n)
		i  uint64
	)
	for i = 0; i < un; i++ {
		ch[i] = (a*i + c) % un
	}

	return ch, nil
}

// lcgParams derives Hull–Dobell parameters (a, c) for modulus n.
//
// Construction:
//   - a − 1 = radical(n)·k for a random k, doubled to a multiple of 4 when
//     4 | n; since radical(n) divides n, reducing a mod n preserves the
//     divisibility conditions, so a stays in [1, n).
//   - c is drawn uniformly from [1, n) until coprime with n (expected O(1)
//     draws; c==1 always qualifies so the loop terminates).
//
// Complexity: O(√n) time (factorization), O(1) space.
func lcgParams(n uint64, rng *rand.Rand) (uint64, uint64) {
	var rad uint64
	rad = radical(n)
	if n%4 == 0 && rad%4 != 0 {
		rad *= 2 // condition (3): lift a−1 to a multiple of 4
	}

	// Multiplier: a = rad·k + 1 (mod n). rad and k are both < 2³¹, so the
	// product fits uint64 before reduction.
	var k uint64
	k = uint64(rng.Int63n(int64(n))) + 1
	var a uint64
	a = (rad%n*(k%n))%n + 1
	a %= n
	if a == 0 {
		a = 1 // unreachable for n ≥ 2; kept as an explicit floor
	}

	// Additive constant: any unit modulo n.
	var c uint64
	for {
		c = uint64(rng.Int63n(int64(n-1))) + 1
		if gcd(c, n) == 1 {
			break
		}
	}

	return a, c
}

// radical returns the product of the distinct prime factors of n (n ≥ 2),
// by trial division.
//
// Complexity: O(√n) time, O(1) space.
func radical(n uint64) uint64 {
	var (
		rad uint64 = 1
		p   uint64
	)
	for p = 2; p*p <= n; p++ {
		if n%p != 0 {
			continue
		}
		rad *= p
		for n%p == 0 {
			n /= p
		}
	}
	if n > 1 {
		rad *= n // remaining prime cofactor
	}

	return rad
}

// gcd computes the greatest common divisor by the Euclidean algorithm.
//
// Complexity: O(log min(a,b)).
func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
