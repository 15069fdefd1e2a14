// SPDX-License-Identifier: MIT
// Package: chainbench/walk
//
// errors.go — sentinel errors for the walk package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed; match with
//     errors.Is.
//   • Incomplete coverage is NOT an error: it is the diagnostic result this
//     package exists to report. Errors are reserved for inputs the walker
//     cannot traverse at all.

package walk

import "errors"

// ErrEmptyChain indicates that Analyze received a chain with no slots.
// Usage: if errors.Is(err, ErrEmptyChain) { /* nothing to walk */ }.
var ErrEmptyChain = errors.New("walk: empty chain")

// ErrSuccessorOutOfRange indicates that a slot's successor index lies
// outside [0, N). In pointer form this is a wild pointer, not a coverage
// defect, and the walk aborts rather than reading out of bounds.
// Usage: if errors.Is(err, ErrSuccessorOutOfRange) { /* corrupt input */ }.
var ErrSuccessorOutOfRange = errors.New("walk: successor index out of range")

// ErrStrideOutOfRange indicates a stride outside [−(N−1), N−1] was offered
// to a histogram of domain N.
// Usage: if errors.Is(err, ErrStrideOutOfRange) { /* check caller math */ }.
var ErrStrideOutOfRange = errors.New("walk: stride out of histogram domain")

// ErrBadDomain indicates a histogram was requested for a non-positive
// element count.
var ErrBadDomain = errors.New("walk: histogram domain must be positive")
