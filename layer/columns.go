// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layer

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/chart/animation"
	"github.com/gogpu/chart/surface"
)

// Columns draws the series of a drawing model as grouped vertical bars
// rising from the baseline. Series i is the i-th bar of every group.
type Columns struct {
	// Shaders holds one shader per series, reused cyclically.
	Shaders []surface.Shader

	// Thickness is the width of one bar in pixels.
	Thickness float64

	// Spacing is the gap between bars of one group in pixels.
	Spacing float64
}

// Default column geometry, in pixels.
const (
	DefaultColumnThickness = 8
	DefaultColumnSpacing   = 4
)

// GroupWidth returns the pixel width of a group of n bars.
func (c *Columns) GroupWidth(n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n)*c.Thickness + float64(n-1)*c.Spacing
}

// Draw renders m into s.
func (c *Columns) Draw(s surface.Surface, m *animation.Model, t Transform) {
	if m == nil || len(c.Shaders) == 0 || c.Thickness <= 0 {
		return
	}
	s.PushClip(t.Bounds)
	defer s.PopClip()

	base := t.Unit(0, m.Baseline).Y
	left := -c.GroupWidth(len(m.Series)) / 2
	for i, series := range m.Series {
		shader := c.Shaders[i%len(c.Shaders)]
		offset := left + float64(i)*(c.Thickness+c.Spacing)
		for _, p := range series {
			if math.IsNaN(p.Y) || p.Opacity <= 0 {
				continue
			}
			top := t.Unit(p.X, p.Y)
			x := top.X + offset
			y0, y1 := math.Min(top.Y, base), math.Max(top.Y, base)
			path := gg.NewPath()
			path.Rectangle(x, y0, c.Thickness, y1-y0)

			// Gradients span from the baseline to the top of the plot or to
			// the bottom, like the area under a line.
			extent := gg.Rect{Min: t.Bounds.Min, Max: gg.Pt(t.Bounds.Max.X, base)}
			if top.Y > base {
				extent = gg.Rect{Min: gg.Pt(t.Bounds.Min.X, base), Max: t.Bounds.Max}
			}
			s.Fill(path, surface.FillStyle{Shader: shader.WithOpacity(p.Opacity), Extent: extent})
		}
	}
}
