// Package bench - case execution.
//
// Contract:
//   - Every run builds a fresh generator seeded via chain.DeriveSeed, so
//     repetitions never share RNG state and never correlate the way
//     wall-clock-seeded runs within one second used to.
//   - Averaged cases fan out over a bounded errgroup pool; each worker owns
//     its generator, chain, visited set and histogram, so no locking is
//     needed beyond the group itself.
//   - Coverage below 100% is carried in the Outcome, never returned as an
//     error; only generation/analysis failures abort a case.
package bench

import (
	"golang.org/x/sync/errgroup"

	"github.com/pkg/errors"

	"github.com/katalvlaran/chainbench/chain"
	"github.com/katalvlaran/chainbench/walk"
)

// Outcome is the result of one executed case.
type Outcome struct {
	Case      string  `json:"case"`
	Generator string  `json:"generator"`
	Elems     int     `json:"elements"`
	Runs      int     `json:"runs"`
	Coverage  float64 `json:"coverage"` // single-run coverage, or the mean in averaged mode

	// Single-run fields; zero in averaged mode.
	CycleLength int    `json:"cycle_length,omitempty"`
	Terminal    int    `json:"terminal"`
	Histogram   string `json:"histogram,omitempty"`

	// Averaged-mode fields; equal to Coverage in single-run mode.
	MinCoverage float64 `json:"min_coverage"`
	MaxCoverage float64 `json:"max_coverage"`
}

// Failed reports whether the outcome violates the generator's own
// contract: a full-cycle generator (ring, lcg) that did not reach 100%
// coverage on every run. Bijection under-coverage is expected statistics,
// not failure.
func (o Outcome) Failed() bool {
	return chain.GuaranteesFullCycle(o.Generator) && o.MinCoverage < 100
}

// Run executes c once: build the generator with a seed derived from
// (seed, stream 0), generate the chain, analyze it, and render the
// histogram if requested.
//
// Complexity: O(N) time, O(N) space, all per-call.
func Run(c Case, seed int64) (Outcome, error) {
	return runOnce(c, seed, 0)
}

// runOnce is Run with an explicit derivation stream, shared with the
// averaged path.
func runOnce(c Case, seed int64, stream uint64) (Outcome, error) {
	gen, err := chain.New(c.Generator, chain.WithSeed(chain.DeriveSeed(seed, stream)))
	if err != nil {
		return Outcome{}, errors.Wrapf(err, "case %q", c.Name)
	}

	ch, err := gen.Generate(c.Elems)
	if err != nil {
		return Outcome{}, errors.Wrapf(err, "case %q: generate %d elements", c.Name, c.Elems)
	}

	res, err := walk.Analyze(ch)
	if err != nil {
		return Outcome{}, errors.Wrapf(err, "case %q: analyze", c.Name)
	}

	out := Outcome{
		Case:        c.Name,
		Generator:   gen.Name(),
		Elems:       c.Elems,
		Runs:        1,
		Coverage:    res.Coverage,
		CycleLength: res.CycleLength,
		Terminal:    res.Terminal,
		MinCoverage: res.Coverage,
		MaxCoverage: res.Coverage,
	}
	if c.Histogram {
		out.Histogram = walk.Render(res.Strides)
	}

	return out, nil
}

// RunAveraged executes c.Runs independent repetitions and aggregates
// coverage statistics (mean, min, max). Repetitions are decorrelated via
// per-run derived seeds and executed on a worker pool of at most parallel
// goroutines (values < 1 run sequentially).
//
// The per-run histograms are discarded; averaged mode exists for coverage
// statistics only.
//
// Complexity: O(Runs·N) work, O(parallel·N) peak space.
func RunAveraged(c Case, seed int64, parallel int) (Outcome, error) {
	if c.Runs == 1 {
		return Run(c, seed)
	}
	if parallel < 1 {
		parallel = 1
	}

	var g errgroup.Group
	g.SetLimit(parallel)

	// One slot per run; workers write disjoint indices, no mutex needed.
	coverages := make([]float64, c.Runs)

	// Strip the histogram request: averaged mode never renders.
	rc := c
	rc.Histogram = false

	var i int
	for i = 0; i < c.Runs; i++ {
		run := uint64(i)
		idx := i
		g.Go(func() error {
			out, err := runOnce(rc, seed, run)
			if err != nil {
				return err
			}
			coverages[idx] = out.Coverage

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Outcome{}, err
	}

	// Aggregate.
	var (
		sum float64
		lo  = coverages[0]
		hi  = coverages[0]
	)
	for i = 0; i < c.Runs; i++ {
		sum += coverages[i]
		if coverages[i] < lo {
			lo = coverages[i]
		}
		if coverages[i] > hi {
			hi = coverages[i]
		}
	}

	return Outcome{
		Case:        c.Name,
		Generator:   c.Generator,
		Elems:       c.Elems,
		Runs:        c.Runs,
		Coverage:    sum / float64(c.Runs),
		Terminal:    -1, // not meaningful across runs
		MinCoverage: lo,
		MaxCoverage: hi,
	}, nil
}
