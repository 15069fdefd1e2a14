// Command chainbench generates randomized pointer-chase chains, verifies
// their Hamiltonian-cycle property and prints coverage plus stride
// histograms for each configured case.
//
// With no flags it runs the canonical suite (bench.DefaultConfig); -config
// loads an INI suite description instead. The benchmark text goes to
// stdout; diagnostics go through klog. The process exits non-zero when a
// full-cycle generator fails its coverage check.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/chainbench/bench"
)

var (
	configPath = flag.String("config", "", "INI suite description; empty runs the built-in suite")
	seed       = flag.Int64("seed", 0, "parent seed for all cases (0 selects the fixed default stream)")
	parallel   = flag.Int("parallel", 0, "worker pool size for averaged cases (0 keeps the config value)")
	jsonPath   = flag.String("json", "", "write a JSON report of all outcomes to this path")
	dbPath     = flag.String("db", "", "append outcomes to this SQLite database")
)

func main() {
	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	_ = fset.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	flag.Parse()

	code := run()

	klog.Flush()
	os.Exit(code)
}

func run() int {
	cfg := bench.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = bench.LoadConfig(*configPath)
		if err != nil {
			klog.Errorf("config: %v", err)

			return 2
		}
		klog.Infof("loaded %d cases from %s", len(cfg.Cases), *configPath)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *parallel > 0 {
		cfg.Parallel = *parallel
	}

	var recorder *bench.Recorder
	if *dbPath != "" {
		var err error
		recorder, err = bench.OpenRecorder(*dbPath)
		if err != nil {
			klog.Errorf("recorder: %v", err)

			return 2
		}
		defer func() {
			if cerr := recorder.Close(); cerr != nil {
				klog.Errorf("recorder close: %v", cerr)
			}
		}()
	}

	var (
		outcomes []bench.Outcome
		failed   bool
	)
	for _, c := range cfg.Cases {
		var (
			out bench.Outcome
			err error
		)
		if c.Runs > 1 {
			out, err = bench.RunAveraged(c, cfg.Seed, cfg.Parallel)
		} else {
			out, err = bench.Run(c, cfg.Seed)
		}
		if err != nil {
			klog.Errorf("suite: %v", err)

			return 2
		}

		printOutcome(out)

		if out.Failed() {
			klog.Errorf("case %q: %s generator covered %.2f%% of %d elements, expected a full cycle",
				out.Case, out.Generator, out.MinCoverage, out.Elems)
			failed = true
		}

		if recorder != nil {
			if err = recorder.Record(out); err != nil {
				klog.Errorf("recorder: %v", err)

				return 2
			}
		}

		outcomes = append(outcomes, out)
	}

	if *jsonPath != "" {
		if err := bench.SaveReport(*jsonPath, outcomes); err != nil {
			klog.Errorf("report: %v", err)

			return 2
		}
		klog.Infof("wrote JSON report to %s", *jsonPath)
	}

	if failed {
		return 1
	}

	return 0
}

// printOutcome writes the human-readable result block for one case, in the
// layout benchmark logs of this tool family have always used.
func printOutcome(o bench.Outcome) {
	if o.Runs > 1 {
		fmt.Printf("%s: for %d elements, average coverage of %g%% (%d runs, min %g%%, max %g%%)\n\n",
			o.Case, o.Elems, o.Coverage, o.Runs, o.MinCoverage, o.MaxCoverage)

		return
	}

	fmt.Printf("%s: list of %d elements.\n", o.Case, o.Elems)
	fmt.Printf("%s: found cycle of length %d (i.e., covering %g%%) on index %d\n\n",
		o.Case, o.CycleLength, o.Coverage, o.Terminal)

	if o.Histogram != "" {
		fmt.Print(o.Histogram)
		fmt.Println()
	}
}
