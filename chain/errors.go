// SPDX-License-Identifier: MIT
// Package: chainbench/chain
//
// errors.go — sentinel errors for the chain package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Generators MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).

package chain

import "errors"

// ErrTooFewElements indicates that the requested element count is below the
// minimum a generator is defined for (MinChainElems for ring/bijection,
// MinLCGElems for lcg). Sizes 1 and 2 are defined failures, never silent
// wraparound.
// Usage: if errors.Is(err, ErrTooFewElements) { /* reject size */ }.
var ErrTooFewElements = errors.New("chain: too few elements")

// ErrChainTooLarge indicates that the requested element count exceeds the
// configured allocation budget (WithMaxElems, default DefaultMaxElems).
// The check runs before any allocation so resource exhaustion surfaces as
// an explicit error rather than an aborted process.
// Usage: if errors.Is(err, ErrChainTooLarge) { /* shrink or raise budget */ }.
var ErrChainTooLarge = errors.New("chain: element count exceeds budget")

// ErrUnknownGenerator indicates that New was asked for a generator kind it
// does not know. Valid kinds are KindRing, KindBijection and KindLCG.
// Usage: if errors.Is(err, ErrUnknownGenerator) { /* fix configuration */ }.
var ErrUnknownGenerator = errors.New("chain: unknown generator kind")
