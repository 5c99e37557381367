// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package entry

import (
	"fmt"
	"math"
	"slices"
)

// Model is an immutable snapshot of one or more series together with their
// extrema. All series share one x domain.
//
// Model is safe for concurrent reads. The slices returned by Series must not
// be modified.
type Model[E Entry] struct {
	series [][]E

	minX, maxX float64
	minY, maxY float64
	stepX      float64
	count      int
}

// Build computes a Model from the given series in a single pass.
//
// The series are copied, so the caller may reuse them afterwards. Build
// returns ErrEmptyData when no series has an entry, ErrNonFiniteX for NaN or
// infinite x values, ErrNonFiniteY for infinite y values and ErrUnsorted
// when x decreases within a series.
//
// stepX is the smallest positive difference between consecutive x values of
// any series, or 1 when no series has two distinct x values. Entries whose
// extent is NaN (gaps) take part in the x extrema only. A model whose entries
// are all gaps reports minY = maxY = 0.
func Build[E Entry](series ...[]E) (*Model[E], error) {
	m := &Model[E]{
		series: make([][]E, len(series)),
		minX:   math.Inf(1),
		maxX:   math.Inf(-1),
		minY:   math.Inf(1),
		maxY:   math.Inf(-1),
		stepX:  math.Inf(1),
	}

	for si, s := range series {
		m.series[si] = slices.Clone(s)
		prev := math.NaN()
		for i, e := range s {
			x := e.Position()
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, fmt.Errorf("series %d, entry %d: %w", si, i, ErrNonFiniteX)
			}
			if i > 0 {
				d := x - prev
				if d < 0 {
					return nil, fmt.Errorf("series %d, entry %d (x=%g after %g): %w", si, i, x, prev, ErrUnsorted)
				}
				if d > 0 && d < m.stepX {
					m.stepX = d
				}
			}
			prev = x

			m.minX = math.Min(m.minX, x)
			m.maxX = math.Max(m.maxX, x)

			lo, hi := e.Extent()
			if math.IsInf(lo, 0) || math.IsInf(hi, 0) {
				return nil, fmt.Errorf("series %d, entry %d: %w", si, i, ErrNonFiniteY)
			}
			if !math.IsNaN(lo) {
				m.minY = math.Min(m.minY, lo)
			}
			if !math.IsNaN(hi) {
				m.maxY = math.Max(m.maxY, hi)
			}
			m.count++
		}
	}

	if m.count == 0 {
		return nil, ErrEmptyData
	}
	if math.IsInf(m.stepX, 1) {
		m.stepX = 1
	}
	if math.IsInf(m.minY, 1) || math.IsInf(m.maxY, -1) {
		m.minY, m.maxY = 0, 0
	}
	return m, nil
}

// MinX returns the smallest x value across all series.
func (m *Model[E]) MinX() float64 { return m.minX }

// MaxX returns the largest x value across all series.
func (m *Model[E]) MaxX() float64 { return m.maxX }

// MinY returns the smallest y value across all series.
func (m *Model[E]) MinY() float64 { return m.minY }

// MaxY returns the largest y value across all series.
func (m *Model[E]) MaxY() float64 { return m.maxY }

// StepX returns the x increment between neighbouring entries.
func (m *Model[E]) StepX() float64 { return m.stepX }

// SeriesCount returns the number of series, including empty ones.
func (m *Model[E]) SeriesCount() int { return len(m.series) }

// Series returns the entries of series i. The slice must not be modified.
func (m *Model[E]) Series(i int) []E { return m.series[i] }

// EntryCount returns the total number of entries across all series.
func (m *Model[E]) EntryCount() int { return m.count }

// cloneSeries returns a deep copy of the series, used to stage a transaction.
func (m *Model[E]) cloneSeries() [][]E {
	out := make([][]E, len(m.series))
	for i, s := range m.series {
		out[i] = slices.Clone(s)
	}
	return out
}
