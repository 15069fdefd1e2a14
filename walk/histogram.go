// Package walk - histogram rendering.
//
// This file coarsens the dense per-stride counts into a fixed number of
// equal-width display buckets and renders them as an ASCII bar chart, the
// layout benchmark logs have carried since the original C testsuites:
//
//	Histogram of stride lengths
//	[     -128;     -115) ****                                     (12)
//	[     -115;     -103)                                          (0)
//	...
//
// Bucket boundaries use truncating float arithmetic on both ends so that
// the 2N-wide stride domain [−N, N) partitions exactly, with no stride
// falling between buckets.
package walk

import (
	"fmt"
	"io"
	"strings"
)

const (
	// RenderBuckets is the number of equal-width display buckets the
	// stride domain [−N, N) is partitioned into.
	RenderBuckets = 20

	// RenderBarWidth is the width, in characters, of the bar drawn for
	// the fullest bucket; all other bars scale proportionally.
	RenderBarWidth = 40
)

// Bucket is one coarsened histogram row: the half-open stride interval
// [Lo, Hi) and the summed occurrence count inside it.
type Bucket struct {
	Lo, Hi int
	Count  uint64
}

// Buckets coarsens h into RenderBuckets equal-width rows covering [−N, N).
//
// Boundary policy: row i spans [trunc(−N + w·i), trunc(−N + w·(i+1))) with
// w = 2N/RenderBuckets computed in float64. Truncation is applied to both
// endpoints, so consecutive rows share their boundary and the union covers
// the whole domain.
//
// Complexity: O(N) time, O(1) space beyond the fixed-size result.
func Buckets(h *StrideHist) [RenderBuckets]Bucket {
	var (
		out [RenderBuckets]Bucket
		n   = h.n
		w   = 2 * float64(n) / RenderBuckets
		i   int
		j   int
	)
	for i = 0; i < RenderBuckets; i++ {
		out[i].Lo = int(-float64(n) + w*float64(i))
		out[i].Hi = int(-float64(n) + w*float64(i+1))

		for j = out[i].Lo; j < out[i].Hi; j++ {
			out[i].Count += uint64(h.counts[j+n])
		}
	}

	return out
}

// Fprint renders h to w as the RenderBuckets-row bar chart described in
// the file header. An all-empty histogram renders zero-length bars (the
// max-count divisor is guarded).
//
// Complexity: O(N) time, O(RenderBarWidth) transient space per row.
func Fprint(w io.Writer, h *StrideHist) error {
	rows := Buckets(h)

	// Scale bars against the fullest bucket.
	var (
		maxAmount uint64
		i         int
	)
	for i = 0; i < RenderBuckets; i++ {
		if rows[i].Count > maxAmount {
			maxAmount = rows[i].Count
		}
	}

	if _, err := fmt.Fprintln(w, "Histogram of stride lengths"); err != nil {
		return err
	}

	var dots int
	for i = 0; i < RenderBuckets; i++ {
		dots = 0
		if maxAmount > 0 {
			dots = int(uint64(RenderBarWidth) * rows[i].Count / maxAmount)
		}
		if _, err := fmt.Fprintf(w, "[%9d;%9d) %-*s (%d)\n",
			rows[i].Lo, rows[i].Hi, RenderBarWidth, strings.Repeat("*", dots), rows[i].Count); err != nil {
			return err
		}
	}

	return nil
}

// Render returns the bar chart as a string; see Fprint.
func Render(h *StrideHist) string {
	var sb strings.Builder
	// strings.Builder never returns a write error.
	_ = Fprint(&sb, h)

	return sb.String()
}
