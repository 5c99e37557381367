// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package animation interpolates drawing models between two data snapshots.
//
// A drawing Model stores every rendered point in normalised viewport space:
// X and Y run from 0 to 1 across the plot area, with Y pointing up. Keeping
// points normalised lets a transition animate both data changes and axis
// rescaling with plain linear interpolation.
//
// Nothing here owns a timer. The host calls Animator.Advance from its frame
// loop; every call is a pure function of the accumulated time.
package animation

import "math"

// PointInfo is the interpolatable state of one rendered point.
type PointInfo struct {
	X       float64
	Y       float64 // NaN for a gap in the series
	Opacity float64
}

// Model is the drawing state of one layer for one frame. Series[i][j] is the
// j-th entry of the i-th series.
type Model struct {
	Series [][]PointInfo

	// Baseline is the normalised y of the value zero, clamped to [0, 1].
	// Points that appear or disappear grow from and shrink to it.
	Baseline float64
}

// ZeroState returns m with every point collapsed onto the baseline and fully
// transparent. It is the implicit starting frame of an entry animation.
func ZeroState(m *Model) *Model {
	if m == nil {
		return nil
	}
	out := &Model{Series: make([][]PointInfo, len(m.Series)), Baseline: m.Baseline}
	for i, s := range m.Series {
		out.Series[i] = make([]PointInfo, len(s))
		for j, p := range s {
			out.Series[i][j] = baselinePoint(p, m.Baseline)
		}
	}
	return out
}

// Equal reports whether a and b describe the same frame. Gaps compare equal
// to gaps.
func Equal(a, b *Model) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Baseline != b.Baseline || len(a.Series) != len(b.Series) {
		return false
	}
	for i := range a.Series {
		if len(a.Series[i]) != len(b.Series[i]) {
			return false
		}
		for j, p := range a.Series[i] {
			q := b.Series[i][j]
			if p.X != q.X || p.Opacity != q.Opacity {
				return false
			}
			if p.Y != q.Y && !(math.IsNaN(p.Y) && math.IsNaN(q.Y)) {
				return false
			}
		}
	}
	return true
}

func baselinePoint(p PointInfo, baseline float64) PointInfo {
	y := baseline
	if math.IsNaN(p.Y) {
		y = math.NaN()
	}
	return PointInfo{X: p.X, Y: y, Opacity: 0}
}
