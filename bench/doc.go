// Package bench runs suites of chain-generation test cases and aggregates
// their verification results.
//
// A suite is a list of cases, each naming a generator kind, an element
// count, a run count and whether to render the stride histogram. Cases come
// either from DefaultConfig - the canonical matrix of sizes the original
// testsuite exercised - or from an INI file (see LoadConfig).
//
// Run executes a single case; RunAveraged repeats a case on a bounded
// worker pool with decorrelated per-run seeds and reports mean/min/max
// coverage. Outcomes can additionally be persisted to SQLite (Recorder)
// or dumped as JSON (WriteReport) for machine consumption; the
// human-readable text stream stays with the caller.
package bench
