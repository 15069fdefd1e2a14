// SPDX-License-Identifier: MIT
// Package chain_test contains unit tests for the ring-shuffle generator.
package chain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chainbench/chain"
)

// cycleLen chases successors from slot 0 of a chain whose entries are all
// in range and returns the number of distinct slots visited before a
// revisit, plus the slot the walk closed on. Local mirror of the walk
// package kept here so chain's tests stand alone.
func cycleLen(t *testing.T, ch chain.Chain) (int, int) {
	t.Helper()

	n := ch.Len()
	visited := make([]bool, n)
	p := 0
	length := 0
	for !visited[p] {
		visited[p] = true
		length++
		require.Less(t, ch[p], uint64(n), "successor out of range at slot %d", p)
		p = int(ch[p])
	}

	return length, p
}

// requirePermutation asserts that the chain's values are a permutation of
// [0, n): every slot has exactly one predecessor.
func requirePermutation(t *testing.T, ch chain.Chain) {
	t.Helper()

	seen := make([]bool, ch.Len())
	for i, s := range ch {
		require.Less(t, s, uint64(ch.Len()), "slot %d", i)
		require.Falsef(t, seen[s], "slot %d is a duplicate successor", s)
		seen[s] = true
	}
}

// TestRingShuffle_FullCycle is the core correctness property: for all n ≥ 3,
// under both shuffle-range policies and across seeds, the generator yields
// exactly one Hamiltonian cycle.
func TestRingShuffle_FullCycle(t *testing.T) {
	t.Parallel()

	sizes := []int{3, 4, 5, 7, 16, 128, 1024}
	seeds := []int64{0, 1, 7, 42, 1337}

	for _, full := range []bool{false, true} {
		for _, n := range sizes {
			for _, seed := range seeds {
				full, n, seed := full, n, seed
				t.Run(fmt.Sprintf("n=%d/seed=%d/full=%v", n, seed, full), func(t *testing.T) {
					t.Parallel()

					opts := []chain.Option{chain.WithSeed(seed)}
					if full {
						opts = append(opts, chain.WithFullInteriorShuffle())
					}
					ch, err := chain.NewRingShuffle(opts...).Generate(n)
					require.NoError(t, err)
					require.Equal(t, n, ch.Len())
					requirePermutation(t, ch)

					length, terminal := cycleLen(t, ch)
					require.Equal(t, n, length, "cycle must cover all elements")
					require.Equal(t, 0, terminal, "a full cycle closes on its start")
				})
			}
		}
	}
}

// TestRingShuffle_SizeErrors pins the edge-case policy: sizes below 3 are
// defined failures, and the allocation budget is enforced before any
// allocation.
func TestRingShuffle_SizeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []chain.Option
		n    int
		want error
	}{
		{"n=0", nil, 0, chain.ErrTooFewElements},
		{"n=1", nil, 1, chain.ErrTooFewElements},
		{"n=2", nil, 2, chain.ErrTooFewElements},
		{"negative", nil, -4, chain.ErrTooFewElements},
		{"over budget", []chain.Option{chain.WithMaxElems(16)}, 17, chain.ErrChainTooLarge},
		{"at budget", []chain.Option{chain.WithMaxElems(16)}, 16, nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ch, err := chain.NewRingShuffle(tc.opts...).Generate(tc.n)
			if tc.want == nil {
				require.NoError(t, err)
				require.Equal(t, tc.n, ch.Len())

				return
			}
			require.Error(t, err)
			require.Truef(t, errors.Is(err, tc.want),
				"expected errors.Is(%v, %v)", err, tc.want)
			require.Nil(t, ch)
		})
	}
}

// TestRingShuffle_SeedDeterminism checks that identical seeds produce
// identical chains and that distinct seeds actually diversify the result.
func TestRingShuffle_SeedDeterminism(t *testing.T) {
	t.Parallel()

	const n = 64

	a, err := chain.NewRingShuffle(chain.WithSeed(42)).Generate(n)
	require.NoError(t, err)
	b, err := chain.NewRingShuffle(chain.WithSeed(42)).Generate(n)
	require.NoError(t, err)
	require.Equal(t, a, b, "same seed must reproduce the chain")

	c, err := chain.NewRingShuffle(chain.WithSeed(43)).Generate(n)
	require.NoError(t, err)
	require.NotEqual(t, a, c, "different seeds must diverge at n=64")
}

// TestRingShuffle_PinnedPenultimate pins the reference shuffle-range quirk:
// by default position N−1 of the visiting order is never shuffled, so
// element N−1 always links back to 0. WithFullInteriorShuffle lifts the
// pin, and some seed must then move that link.
func TestRingShuffle_PinnedPenultimate(t *testing.T) {
	t.Parallel()

	const n = 32

	// Default policy: the link is pinned for every seed.
	for seed := int64(1); seed <= 50; seed++ {
		ch, err := chain.NewRingShuffle(chain.WithSeed(seed)).Generate(n)
		require.NoError(t, err)
		require.EqualValues(t, 0, ch[n-1],
			"seed %d: reference policy must keep element N−1 linked to 0", seed)
	}

	// Full-interior policy: the pin is gone for at least one seed.
	moved := false
	for seed := int64(1); seed <= 50 && !moved; seed++ {
		ch, err := chain.NewRingShuffle(
			chain.WithSeed(seed), chain.WithFullInteriorShuffle()).Generate(n)
		require.NoError(t, err)
		moved = ch[n-1] != 0
	}
	require.True(t, moved, "full-interior shuffle never moved the penultimate link in 50 seeds")
}

// TestRingShuffle_Scenario128 is the canonical smoke scenario: N=128 must
// produce a cycle of exactly 128.
func TestRingShuffle_Scenario128(t *testing.T) {
	t.Parallel()

	ch, err := chain.NewRingShuffle(chain.WithSeed(1)).Generate(128)
	require.NoError(t, err)

	length, terminal := cycleLen(t, ch)
	require.Equal(t, 128, length)
	require.Equal(t, 0, terminal)
}
