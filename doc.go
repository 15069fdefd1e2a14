// Package chainbench generates, validates and profiles randomized circular
// singly-linked traversal orders (pointer-chase chains) for latency-sensitive
// memory-access benchmarks.
//
// 🚀 What is chainbench?
//
//	A small, deterministic toolkit that brings together:
//		• Generators: ring-shuffle (reference), random bijection, full-period LCG
//		• Verification: cycle walker with Hamiltonian-coverage check
//		• Statistics: signed-stride histogram + 20-bucket ASCII chart
//		• Harness: INI-configured suites, averaged runs, SQLite/JSON sinks
//
// ✨ Why chainbench?
//
//   - Deterministic – every random choice flows from an injected seed
//   - Honest – multi-cycle defects surface as coverage data, never masked
//   - Pure library core – the chain and walk packages carry no runtime deps
//
// Everything is organized under three subpackages plus a command:
//
//	chain/          — successor-array type and the generator strategies
//	walk/           — cycle walker, stride histogram, chart rendering
//	bench/          — suite configuration and execution, recording, reports
//	cmd/chainbench/ — the CLI entry point
//
// Quick ASCII example (N=6, one possible ring shuffle):
//
//	0 → 4 → 2 → 1 → 3 → 5 → 0
//
// Chasing successors from slot 0 must visit all six slots before returning;
// walk.Analyze reports that as 100% coverage, and anything less means the
// generator left disjoint cycles behind.
package chainbench
