package chain

// Chain is a successor array: Chain[i] holds the index of the element that
// follows i in the traversal order. Slots are machine-word sized; storing
// indices rather than raw addresses keeps the representation position
// independent, and a benchmark kernel materializes pointers from it in one
// pass when it lays the chain over its buffer.
//
// Ownership transfers to the caller when a generator returns; generators
// keep no reference to returned chains.
type Chain []uint64

// Len reports the number of elements in the chain.
func (c Chain) Len() int { return len(c) }

// Generator produces successor arrays of a requested size. This is the only
// capability the analyzer side relies on, so alternative construction
// strategies (including external black-box libraries) plug in behind it.
//
// Implementations own a private *rand.Rand and are therefore NOT safe for
// concurrent Generate calls on the same instance; create one generator per
// goroutine (see DeriveSeed for decorrelated per-worker seeds).
type Generator interface {
	// Name returns the canonical kind name (KindRing, KindBijection, KindLCG).
	Name() string

	// Generate allocates and returns a successor array of n slots.
	// Errors: ErrTooFewElements, ErrChainTooLarge.
	Generate(n int) (Chain, error)
}

// New constructs a generator by canonical kind name. It is the configuration
// seam between the harness (which deals in strings) and the concrete
// strategies. Returns ErrUnknownGenerator for anything but the Kind*
// constants.
//
// Complexity: O(1) plus option application.
func New(kind string, opts ...Option) (Generator, error) {
	switch kind {
	case KindRing:
		return NewRingShuffle(opts...), nil
	case KindBijection:
		return NewRandomBijection(opts...), nil
	case KindLCG:
		return NewLCG(opts...), nil
	default:
		return nil, ErrUnknownGenerator
	}
}

// GuaranteesFullCycle reports whether the named generator kind promises a
// single Hamiltonian cycle by construction. The harness uses this to decide
// whether coverage below 100% is a defect (ring, lcg) or expected
// statistical behavior (bijection).
func GuaranteesFullCycle(kind string) bool {
	return kind == KindRing || kind == KindLCG
}
