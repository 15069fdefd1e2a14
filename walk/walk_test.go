// SPDX-License-Identifier: MIT
// Package walk_test contains unit tests for the cycle walker.
package walk_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chainbench/chain"
	"github.com/katalvlaran/chainbench/walk"
)

// identityRing builds the unshuffled ring 0→1→…→n−1→0 directly; tests use
// it when they need exact control over which slot gets corrupted.
func identityRing(n int) chain.Chain {
	ch := make(chain.Chain, n)
	for i := 0; i < n; i++ {
		ch[i] = uint64((i + 1) % n)
	}

	return ch
}

// TestAnalyze_RingScenario is the end-to-end correctness scenario: a
// shuffled ring of 128 elements must verify at exactly 100% coverage with
// the histogram accounting for every hop.
func TestAnalyze_RingScenario(t *testing.T) {
	t.Parallel()

	for _, seed := range []int64{0, 1, 42} {
		seed := seed
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			t.Parallel()

			ch, err := chain.NewRingShuffle(chain.WithSeed(seed)).Generate(128)
			require.NoError(t, err)

			res, err := walk.Analyze(ch)
			require.NoError(t, err)

			require.Equal(t, 128, res.N)
			require.Equal(t, 128, res.CycleLength)
			require.Equal(t, 0, res.Terminal, "full cycle closes on the start")
			require.InDelta(t, 100.0, res.Coverage, 0)
			require.True(t, res.FullCoverage())
			require.EqualValues(t, 128, res.Strides.Total(), "one stride per hop")
		})
	}
}

// TestAnalyze_AllGenerators checks the generator-independent invariants:
// cycle length within [1, N], coverage consistent with it, histogram total
// equal to the hop count, every stride inside [−(N−1), N−1].
func TestAnalyze_AllGenerators(t *testing.T) {
	t.Parallel()

	kinds := []string{chain.KindRing, chain.KindBijection, chain.KindLCG}
	for _, kind := range kinds {
		for _, n := range []int{3, 16, 257, 1024} {
			kind, n := kind, n
			t.Run(fmt.Sprintf("%s/n=%d", kind, n), func(t *testing.T) {
				t.Parallel()

				gen, err := chain.New(kind, chain.WithSeed(12))
				require.NoError(t, err)
				ch, err := gen.Generate(n)
				require.NoError(t, err)

				res, err := walk.Analyze(ch)
				require.NoError(t, err)

				require.GreaterOrEqual(t, res.CycleLength, 1)
				require.LessOrEqual(t, res.CycleLength, n)
				require.InDelta(t, 100*float64(res.CycleLength)/float64(n), res.Coverage, 1e-12)
				require.EqualValues(t, res.CycleLength, res.Strides.Total())

				// Full-cycle generators must actually cover.
				if chain.GuaranteesFullCycle(kind) {
					require.True(t, res.FullCoverage())
				}

				// The domain bounds: −(n−1) and n−1 are the extreme strides.
				require.Zero(t, res.Strides.Count(-n))
				require.Zero(t, res.Strides.Count(n))
			})
		}
	}
}

// TestAnalyze_CorruptSelfLoop pins the diagnostic path: corrupting one
// entry into a self-loop truncates the walk at that slot, and the reported
// cycle length equals the sub-cycle reachable from slot 0.
func TestAnalyze_CorruptSelfLoop(t *testing.T) {
	t.Parallel()

	const n = 128

	ch := identityRing(n)
	ch[5] = 5 // 0→1→2→3→4→5→5: the walk revisits 5 after six distinct slots

	res, err := walk.Analyze(ch)
	require.NoError(t, err, "corruption is data, not an error")

	require.Equal(t, 6, res.CycleLength)
	require.Equal(t, 5, res.Terminal, "the walk closed on the corrupted slot")
	require.InDelta(t, 100.0*6/128, res.Coverage, 1e-12)
	require.False(t, res.FullCoverage())
	require.EqualValues(t, 6, res.Strides.Total())
	require.EqualValues(t, 5, res.Strides.Count(1), "five unit hops before the loop")
	require.EqualValues(t, 1, res.Strides.Count(0), "the self-loop hop")
}

// TestAnalyze_ForeignCycle checks the multi-cycle variant: when slot 0's
// cycle feeds into an already-visited slot other than 0, Terminal names it.
func TestAnalyze_ForeignCycle(t *testing.T) {
	t.Parallel()

	// 0→1→2→1: slots 1 and 2 form a 2-cycle entered from 0.
	ch := chain.Chain{1, 2, 1}

	res, err := walk.Analyze(ch)
	require.NoError(t, err)
	require.Equal(t, 3, res.CycleLength, "0, 1 and 2 are each visited once")
	require.Equal(t, 1, res.Terminal, "the walk closed on a foreign slot")
	require.InDelta(t, 100.0, res.Coverage, 0) // every slot was reached exactly once
	// Coverage alone conflates "returned to start" with "ran into a
	// sub-cycle"; Terminal != 0 is what tells a rho-shaped graph apart.
	require.NotEqual(t, 0, res.Terminal)
}

// TestAnalyze_Errors covers the inputs the walker refuses to traverse.
func TestAnalyze_Errors(t *testing.T) {
	t.Parallel()

	_, err := walk.Analyze(nil)
	require.True(t, errors.Is(err, walk.ErrEmptyChain))

	_, err = walk.Analyze(chain.Chain{})
	require.True(t, errors.Is(err, walk.ErrEmptyChain))

	// Wild successor: slot 1 points outside the array.
	_, err = walk.Analyze(chain.Chain{1, 99})
	require.True(t, errors.Is(err, walk.ErrSuccessorOutOfRange))
}

// TestAnalyze_SingleElement: the degenerate one-slot self-cycle is a valid
// 100%-coverage chain for the walker (generation-side minimums are the
// generators' business, not the analyzer's).
func TestAnalyze_SingleElement(t *testing.T) {
	t.Parallel()

	res, err := walk.Analyze(chain.Chain{0})
	require.NoError(t, err)
	require.Equal(t, 1, res.CycleLength)
	require.Equal(t, 0, res.Terminal)
	require.InDelta(t, 100.0, res.Coverage, 0)
	require.EqualValues(t, 1, res.Strides.Count(0))
}

// TestAnalyze_Idempotent: analyzing the same unmodified chain twice yields
// identical results, and the chain itself is untouched.
func TestAnalyze_Idempotent(t *testing.T) {
	t.Parallel()

	ch, err := chain.NewRingShuffle(chain.WithSeed(3)).Generate(64)
	require.NoError(t, err)

	snapshot := append(chain.Chain(nil), ch...)

	first, err := walk.Analyze(ch)
	require.NoError(t, err)
	second, err := walk.Analyze(ch)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, snapshot, ch, "Analyze must not mutate its input")
}
