// Package walk - the cycle walker.
//
// Contract:
//   - Read-only on the input chain; calling Analyze twice on the same
//     unmodified chain yields identical results.
//   - Terminates in at most N hops: every iteration marks one unvisited
//     slot and slots are never unmarked.
//   - Only sentinel errors from errors.go; incomplete coverage is data.
package walk

import "github.com/katalvlaran/chainbench/chain"

// Analyze walks c from slot 0 and reports cycle length, coverage and the
// stride histogram of the traversal.
//
// Algorithm:
//  1. visited[0..N−1] = false, p = 0.
//  2. Mark p, count it, record stride c[p]−p, advance p = c[p].
//  3. Stop as soon as the new p is already visited. That slot may be the
//     start (single cycle) or a foreign previously-visited slot (the walk
//     ran into a sub-cycle); Result.Terminal preserves which.
//
// Errors: ErrEmptyChain for len(c)==0; ErrSuccessorOutOfRange when a slot
// points outside [0, N) - the walk aborts on first corruption rather than
// reading out of bounds.
//
// Complexity: O(N) time, O(N) space (visited set + histogram), both owned
// by this call.
func Analyze(c chain.Chain) (Result, error) {
	var n int
	n = c.Len()
	if n == 0 {
		return Result{}, ErrEmptyChain
	}

	// Fresh per-call buffers; nothing survives between runs.
	hist, err := NewStrideHist(n)
	if err != nil {
		return Result{}, err
	}
	visited := make([]bool, n)

	var (
		p      int // current slot
		succ   uint64
		cycle  int
		stride int
	)
	for {
		visited[p] = true
		cycle++

		succ = c[p]
		if succ >= uint64(n) {
			return Result{}, ErrSuccessorOutOfRange
		}

		stride = int(succ) - p
		// In range by the bound check above; Add cannot fail here.
		_ = hist.Add(stride)

		p = int(succ)
		if visited[p] {
			break
		}
	}

	return Result{
		N:           n,
		CycleLength: cycle,
		Terminal:    p,
		Coverage:    100 * float64(cycle) / float64(n),
		Strides:     hist,
	}, nil
}
