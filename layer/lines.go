// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layer

import (
	"github.com/gogpu/chart/animation"
	"github.com/gogpu/chart/line"
	"github.com/gogpu/chart/surface"
)

// Lines draws every series of a drawing model as a line.
type Lines struct {
	// Styles holds one style per series. Series beyond the list reuse the
	// styles from the start.
	Styles []*line.Line
}

// Style returns the style of series i, or nil when there are no styles.
func (l *Lines) Style(i int) *line.Line {
	if len(l.Styles) == 0 {
		return nil
	}
	return l.Styles[i%len(l.Styles)]
}

// Draw renders m into s. Label values are read back from pixel positions
// through t, so labels follow the points while they animate.
func (l *Lines) Draw(s surface.Surface, m *animation.Model, t Transform) {
	if m == nil {
		return
	}
	frame := line.Frame{Bounds: t.Bounds, BaselineY: t.Unit(0, m.Baseline).Y}
	for i, series := range m.Series {
		style := l.Style(i)
		if style == nil {
			return
		}
		line.Render(s, style, Points(series, t), frame)
	}
}

// Points converts one series of a drawing model to pixel points.
func Points(series []animation.PointInfo, t Transform) []line.Point {
	pts := make([]line.Point, len(series))
	for j, p := range series {
		px := t.Unit(p.X, p.Y)
		pts[j] = line.Point{X: px.X, Y: px.Y, Value: t.ValueY(px.Y), Opacity: p.Opacity}
	}
	return pts
}
