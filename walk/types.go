// Package walk - stride histogram and analysis result types.
//
// This file defines the dense stride histogram and the Result record
// returned by Analyze. Both are plain data: no goroutines, no shared
// state, released by the garbage collector when the caller drops them.
package walk

// StrideHist counts occurrences of signed strides over a chain of n
// elements. The domain is [−(n−1), n−1]; counts live in a dense slice of
// 2n slots indexed stride+n, the same layout the rendering step coarsens
// into display buckets. Slot 0 (stride −n) can never be hit and stays
// zero.
//
// uint32 per stride suffices: a single walk records at most n hops and n
// is capped far below 2³².
type StrideHist struct {
	n      int
	counts []uint32
}

// NewStrideHist allocates an all-zero histogram for chains of n elements.
// Returns ErrBadDomain for n < 1.
//
// Complexity: O(n) time and space.
func NewStrideHist(n int) (*StrideHist, error) {
	if n < 1 {
		return nil, ErrBadDomain
	}
	return &StrideHist{
		n:      n,
		counts: make([]uint32, 2*n),
	}, nil
}

// N returns the element count the histogram's domain is derived from.
func (h *StrideHist) N() int { return h.n }

// Add records one occurrence of stride. Returns ErrStrideOutOfRange when
// stride lies outside [−(n−1), n−1].
//
// Complexity: O(1).
func (h *StrideHist) Add(stride int) error {
	if stride <= -h.n || stride >= h.n {
		return ErrStrideOutOfRange
	}
	h.counts[stride+h.n]++

	return nil
}

// Count returns the number of recorded occurrences of stride; strides
// outside the domain have count 0.
//
// Complexity: O(1).
func (h *StrideHist) Count(stride int) uint64 {
	if stride <= -h.n || stride >= h.n {
		return 0
	}

	return uint64(h.counts[stride+h.n])
}

// Total returns the sum of all stride counts. For a Result produced by
// Analyze this equals CycleLength: exactly one stride per hop.
//
// Complexity: O(n).
func (h *StrideHist) Total() uint64 {
	var (
		sum uint64
		i   int
	)
	for i = 0; i < len(h.counts); i++ {
		sum += uint64(h.counts[i])
	}

	return sum
}

// Result is the outcome of one Analyze pass over a successor chain.
type Result struct {
	// N is the chain's element count.
	N int

	// CycleLength is the number of distinct elements visited from slot 0
	// before the walk reached an already-visited slot. Always in [1, N].
	CycleLength int

	// Terminal is the index on which the walk closed: the first slot
	// reached twice. Equal to 0 when the walk returned to its start;
	// any other value names a foreign cycle's entry point, which is
	// itself diagnostic for multi-cycle chains.
	Terminal int

	// Coverage is 100·CycleLength/N. Exactly 100 for a valid chain.
	Coverage float64

	// Strides is the per-hop stride histogram of the walk.
	Strides *StrideHist
}

// FullCoverage reports whether the walk visited every element, i.e. the
// chain passed its Hamiltonian-cycle check.
func (r Result) FullCoverage() bool {
	return r.CycleLength == r.N
}
