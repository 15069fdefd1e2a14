// Package chain builds randomized circular singly-linked traversal orders
// over a fixed-size array, the raw material of pointer-chase memory
// benchmarks.
//
// A chain is a successor array: slot i stores the index of the element that
// follows i in traversal order. A correct chain, read as the directed graph
// i → chain[i], forms exactly one cycle of length N (a Hamiltonian cycle),
// so chasing successors from any slot visits every element exactly once
// before returning. The randomization exists to defeat hardware prefetchers:
// the address distance between consecutively visited elements should carry
// no regular pattern.
//
// Three generator strategies are provided behind the Generator interface:
//
//   - RingShuffle — the reference algorithm: start from the identity ring
//     0→1→…→N−1→0 and shuffle the interior of the visiting order. Single
//     full cycle by construction, well-spread strides.
//
//   - RandomBijection — successor[i] = σ(i) for a uniform random
//     permutation σ. Stands in for opaque library generators; its functional
//     graph usually splits into several disjoint cycles, which the walk
//     analyzer must detect as incomplete coverage.
//
//   - LCG — full-period linear congruential successor (Hull–Dobell).
//     Always one full cycle, but with a stride structure regular enough to
//     show up immediately in a stride histogram.
//
// Determinism is explicit: every generator owns an injectable random source
// configured via WithSeed or WithRand; there is no package-global RNG and no
// implicit time-based seeding. Same seed ⇒ identical chain.
//
// Use chainbench/walk to verify cycle coverage and collect stride
// statistics for any Generate output.
package chain
