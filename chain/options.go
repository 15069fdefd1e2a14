// SPDX-License-Identifier: MIT
// Package: chainbench/chain
//
// options.go — functional options for chain generators.
//
// Contract (strict):
//   • Options are functional (type Option func(*genConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through genConfig.

package chain

import (
	"math/rand" // RNG source for stochastic generators
)

// Option customizes a generator by mutating a genConfig instance before
// construction completes.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*genConfig)

// genConfig carries the resolved configuration shared by all generators.
type genConfig struct {
	rng          *rand.Rand // injected randomness; never nil after resolve
	maxElems     int        // allocation budget in elements
	fullInterior bool       // ring: shuffle positions [1,N−1] instead of [1,N−2]
}

// newGenConfig applies opts over deterministic defaults.
// Default RNG policy follows rngFromSeed: no seed given ⇒ fixed default
// stream, so unconfigured generators are reproducible in tests.
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{
		maxElems: DefaultMaxElems,
	}

	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}

	return cfg
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("chain: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Seed 0 selects the fixed default stream. Use this in tests and batch
// runs to lock outcomes.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithMaxElems overrides the allocation budget checked by Generate before
// any slice is made. Panics if limit < 1.
// Complexity: O(1) time, O(1) space.
func WithMaxElems(limit int) Option {
	if limit < 1 {
		panic("chain: WithMaxElems(limit<1)")
	}
	return func(c *genConfig) {
		c.maxElems = limit
	}
}

// WithFullInteriorShuffle makes RingShuffle randomize every interior
// position of the visiting order, positions [1,N−1], instead of the
// reference range [1,N−2] which pins the penultimate hop. The cycle
// invariant holds either way; only the randomness of one position differs.
// No effect on other generators.
// Complexity: O(1) time, O(1) space.
func WithFullInteriorShuffle() Option {
	return func(c *genConfig) {
		c.fullInterior = true
	}
}
