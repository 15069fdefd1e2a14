// Package walk verifies successor chains and measures their stride
// statistics.
//
// Analyze chases successors from slot 0, counting distinct elements until
// the walk reaches an already-visited slot, and records the signed stride
// (successor index − current index) of every hop into a dense histogram.
// The resulting coverage percentage is the correctness check of the whole
// system: a valid chain is one Hamiltonian cycle, so coverage must be
// exactly 100. Anything lower means the generator produced multiple
// disjoint cycles - a defect the walk reports as data, not as an error, so
// batch runs can aggregate it.
//
// The analyzer is strictly read-only on its input and works identically for
// every chain.Generator; Render turns the collected stride histogram into
// the traditional 20-bucket fixed-width ASCII chart.
package walk
