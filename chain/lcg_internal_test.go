// Package chain - white-box tests for the Hull–Dobell parameter derivation.
package chain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRadical covers prime, prime-power, squarefree and mixed moduli.
func TestRadical(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    uint64
		want uint64
	}{
		{2, 2},
		{3, 3},
		{4, 2},
		{8, 2},
		{12, 6},
		{16, 2},
		{100, 10},
		{101, 101},
		{210, 210},
		{1024, 2},
		{1 << 20, 2},
	}

	for _, tc := range tests {
		require.Equalf(t, tc.want, radical(tc.n), "radical(%d)", tc.n)
	}
}

// TestGCD sanity-checks the Euclidean helper.
func TestGCD(t *testing.T) {
	t.Parallel()

	require.EqualValues(t, 6, gcd(12, 18))
	require.EqualValues(t, 1, gcd(35, 64))
	require.EqualValues(t, 7, gcd(7, 0))
	require.EqualValues(t, 7, gcd(0, 7))
}

// TestLCGParams_HullDobell verifies the three full-period conditions for
// every derived parameter pair.
func TestLCGParams_HullDobell(t *testing.T) {
	t.Parallel()

	moduli := []uint64{2, 3, 4, 6, 8, 12, 16, 100, 101, 128, 210, 1024, 4096}
	seeds := []int64{0, 1, 9, 77}

	for _, n := range moduli {
		for _, seed := range seeds {
			a, c := lcgParams(n, rngFromSeed(seed))

			require.Less(t, a, n)
			require.Less(t, c, n)
			require.GreaterOrEqual(t, a, uint64(1))
			require.GreaterOrEqual(t, c, uint64(1))

			// (1) c coprime to n.
			require.EqualValues(t, 1, gcd(c, n), "n=%d seed=%d: gcd(c,n)", n, seed)

			// (2) a−1 divisible by every prime factor of n.
			require.Zerof(t, (a-1)%radical(n), "n=%d seed=%d: a−1 not divisible by radical", n, seed)

			// (3) a−1 divisible by 4 when 4 | n.
			if n%4 == 0 {
				require.Zerof(t, (a-1)%4, "n=%d seed=%d: a−1 not divisible by 4", n, seed)
			}
		}
	}
}
