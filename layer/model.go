// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layer

import (
	"math"

	"github.com/gogpu/chart/animation"
	"github.com/gogpu/chart/entry"
)

// BuildModel converts a line model to a drawing model: every entry becomes
// a point in plot fractions under t, with full opacity. Gaps keep a NaN y.
// The baseline is the fraction of value 0, clamped to the plot.
func BuildModel(m *entry.Model[entry.LineEntry], t Transform) *animation.Model {
	if m == nil {
		return nil
	}
	out := &animation.Model{
		Series:   make([][]animation.PointInfo, m.SeriesCount()),
		Baseline: Baseline(t),
	}
	for i := range out.Series {
		src := m.Series(i)
		pts := make([]animation.PointInfo, len(src))
		for j, e := range src {
			y := math.NaN()
			if !e.IsGap() {
				y = t.FractionY(e.Y)
			}
			pts[j] = animation.PointInfo{X: t.FractionX(e.X), Y: y, Opacity: 1}
		}
		out.Series[i] = pts
	}
	return out
}

// Baseline returns the plot fraction of value 0 under t, clamped to [0, 1].
func Baseline(t Transform) float64 {
	return max(0, min(1, t.FractionY(0)))
}
