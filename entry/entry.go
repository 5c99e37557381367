// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package entry defines chart data points, the immutable Model that holds
// one or more series of them, and the Producer that publishes new models
// through transactions.
//
// A Model is built once and never mutated. Producers hand out models through
// a single atomic slot, so a reader on the render goroutine always observes a
// complete snapshot.
package entry

import "math"

// Entry is a single data point of a series.
type Entry interface {
	// Position returns the x value of the entry.
	Position() float64

	// Extent returns the lowest and highest y value covered by the entry.
	// Both are NaN when the entry carries no value (a gap).
	Extent() (lo, hi float64)
}

// LineEntry is an (x, y) pair used by line and column layers.
// A NaN Y marks missing data; renderers break the line there.
type LineEntry struct {
	X float64
	Y float64
}

// Gap returns a LineEntry at x without a value.
func Gap(x float64) LineEntry {
	return LineEntry{X: x, Y: math.NaN()}
}

// Position implements Entry.
func (e LineEntry) Position() float64 { return e.X }

// Extent implements Entry.
func (e LineEntry) Extent() (lo, hi float64) { return e.Y, e.Y }

// IsGap reports whether the entry carries no value.
func (e LineEntry) IsGap() bool { return math.IsNaN(e.Y) }

// Line converts y values to a series with x = 0, 1, 2, ...
func Line(ys ...float64) []LineEntry {
	s := make([]LineEntry, len(ys))
	for i, y := range ys {
		s[i] = LineEntry{X: float64(i), Y: y}
	}
	return s
}
