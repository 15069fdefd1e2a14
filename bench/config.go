// Package bench - suite configuration.
//
// Configuration sources, in order of precedence: explicit Config literals
// (tests), an INI file (operators), DefaultConfig (no arguments). The INI
// layout mirrors the structure tools of this kind usually grow: one [suite]
// section for globals, one named section per case:
//
//	[suite]
//	seed     = 42
//	parallel = 4
//
//	[ring-small]
//	generator = ring
//	elements  = 128
//	runs      = 1
//	histogram = true
//
//	[bijection-avg]
//	generator = bijection
//	elements  = 2097152
//	runs      = 100
package bench

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/ini.v1"

	"github.com/katalvlaran/chainbench/chain"
)

// Case describes one suite entry.
type Case struct {
	// Name labels output rows and database records.
	Name string

	// Generator is a chain generator kind (chain.KindRing, ...).
	Generator string

	// Elems is the chain element count N.
	Elems int

	// Runs is the repetition count; 1 means a single verified run,
	// anything higher selects averaged mode (coverage statistics only).
	Runs int

	// Histogram requests the rendered stride chart (single-run mode only).
	Histogram bool
}

// Validate checks the case against generator minimums and harness limits.
// Returned errors wrap chain sentinels where applicable, so errors.Is
// keeps working through the context.
func (c Case) Validate() error {
	if _, err := chain.New(c.Generator); err != nil {
		return errors.Wrapf(err, "case %q", c.Name)
	}
	if c.Elems < 1 {
		return errors.Errorf("case %q: elements must be positive, got %d", c.Name, c.Elems)
	}
	if c.Runs < 1 {
		return errors.Errorf("case %q: runs must be positive, got %d", c.Name, c.Runs)
	}

	return nil
}

// Config is a full suite description.
type Config struct {
	// Seed is the parent seed; per-case, per-run seeds derive from it via
	// chain.DeriveSeed. Zero selects the fixed default stream.
	Seed int64

	// Parallel bounds the worker pool used by averaged cases. Values < 1
	// are treated as 1.
	Parallel int

	// Cases run in order.
	Cases []Case
}

// DefaultConfig reproduces the canonical run matrix of the original
// testsuite: ring and bijection at N = 128, 1024, 6·2²⁰ and 32·2²⁰ with
// histograms, the LCG at the two small sizes for stride-pattern contrast,
// and 100-run averaged coverage for ring and bijection at N = 2·2²⁰.
func DefaultConfig() Config {
	sizes := []int{128, 1024, 6 << 20, 32 << 20}

	var cases []Case
	for _, kind := range []string{chain.KindRing, chain.KindBijection} {
		for _, n := range sizes {
			cases = append(cases, Case{
				Name:      kind,
				Generator: kind,
				Elems:     n,
				Runs:      1,
				Histogram: true,
			})
		}
	}
	for _, n := range sizes[:2] {
		cases = append(cases, Case{
			Name:      chain.KindLCG,
			Generator: chain.KindLCG,
			Elems:     n,
			Runs:      1,
			Histogram: true,
		})
	}
	for _, kind := range []string{chain.KindRing, chain.KindBijection} {
		cases = append(cases, Case{
			Name:      kind + "-averaged",
			Generator: kind,
			Elems:     2 << 20,
			Runs:      100,
		})
	}

	return Config{Parallel: 1, Cases: cases}
}

// suiteIni and caseIni are the INI shadow shapes mapped onto Config/Case.
type suiteIni struct {
	Seed     int64 `ini:"seed"`
	Parallel int   `ini:"parallel"`
}

type caseIni struct {
	Generator string `ini:"generator"`
	Elements  int    `ini:"elements"`
	Runs      int    `ini:"runs"`
	Histogram bool   `ini:"histogram"`
}

// suiteSection is the reserved section name for suite-wide settings.
const suiteSection = "suite"

// LoadConfig parses an INI suite description from path. Every section
// except [suite] defines one case, in file order; omitted runs default
// to 1. All cases are validated before the config is returned.
func LoadConfig(path string) (Config, error) {
	iniOpt := ini.LoadOptions{
		Insensitive: true,
	}
	f, err := ini.LoadSources(iniOpt, path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "load suite config %s", path)
	}

	var cfg Config
	cfg.Parallel = 1

	if sec, serr := f.GetSection(suiteSection); serr == nil {
		si := new(suiteIni)
		if err = sec.MapTo(si); err != nil {
			return Config{}, errors.Wrapf(err, "config %s: [suite]", path)
		}
		cfg.Seed = si.Seed
		if si.Parallel > 0 {
			cfg.Parallel = si.Parallel
		}
	}

	for _, sec := range f.Sections() {
		// Insensitive mode lowercases section names; compare accordingly.
		if strings.EqualFold(sec.Name(), ini.DefaultSection) || strings.EqualFold(sec.Name(), suiteSection) {
			continue
		}

		ci := new(caseIni)
		if err = sec.MapTo(ci); err != nil {
			return Config{}, errors.Wrapf(err, "config %s: [%s]", path, sec.Name())
		}
		if ci.Runs == 0 {
			ci.Runs = 1
		}

		c := Case{
			Name:      sec.Name(),
			Generator: ci.Generator,
			Elems:     ci.Elements,
			Runs:      ci.Runs,
			Histogram: ci.Histogram,
		}
		if err = c.Validate(); err != nil {
			return Config{}, errors.Wrapf(err, "config %s", path)
		}
		cfg.Cases = append(cfg.Cases, c)
	}

	return cfg, nil
}
