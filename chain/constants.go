// Package chain defines shared constants used by chain generators, ensuring
// consistent defaults and validation across all construction strategies.
package chain

//-----------------------------------------------------------------------------
// Generator Kind Names
//   canonical names used for dispatch (New) and for labelling output rows.
//-----------------------------------------------------------------------------

const (
	// KindRing is the canonical name of the ring-shuffle generator.
	KindRing = "ring"
	// KindBijection is the canonical name of the random-bijection generator.
	KindBijection = "bijection"
	// KindLCG is the canonical name of the full-period LCG generator.
	KindLCG = "lcg"
)

//-----------------------------------------------------------------------------
// Minimum Element Counts
//-----------------------------------------------------------------------------

// MinChainElems is the smallest element count for which the ring-shuffle and
// random-bijection generators are defined. Below 3 elements the ring has no
// interior to shuffle and the result degenerates into loops the algorithm
// never promises to handle; such sizes fail fast with ErrTooFewElements.
const MinChainElems = 3

// MinLCGElems is the smallest element count for the LCG generator. A modulus
// of 2 already admits a full-period recurrence; 0 and 1 do not.
const MinLCGElems = 2

//-----------------------------------------------------------------------------
// Resource Limits
//-----------------------------------------------------------------------------

// DefaultMaxElems bounds the element count a generator accepts before
// allocating. One chain slot is 8 bytes, so the default admits chains up to
// 8 GiB and rejects anything larger with ErrChainTooLarge instead of dying
// inside make. Override per generator with WithMaxElems.
const DefaultMaxElems = 1 << 30
