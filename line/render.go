// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package line

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/chart/surface"
)

// Point is a series point in pixel space.
type Point struct {
	X, Y float64

	// Value is the domain value shown by labels.
	Value float64

	// Opacity scales the alpha of everything drawn for the point.
	Opacity float64
}

// Frame is the pixel geometry a series is drawn into.
type Frame struct {
	// Bounds is the plot rectangle. Drawing is clipped to it.
	Bounds gg.Rect

	// BaselineY is the pixel y of the area fill baseline, usually the pixel
	// position of value 0.
	BaselineY float64
}

// run is a maximal stretch of points without gaps.
type run struct {
	pts     []gg.Point
	src     []Point
	opacity float64
}

// runs splits pts at points whose coordinates are not finite.
func runs(pts []Point) []run {
	var (
		out []run
		cur run
	)
	for _, p := range pts {
		gp := gg.Pt(p.X, p.Y)
		if !finite(gp) {
			if len(cur.pts) > 0 {
				out = append(out, cur)
			}
			cur = run{}
			continue
		}
		cur.pts = append(cur.pts, gp)
		cur.src = append(cur.src, p)
		cur.opacity = math.Max(cur.opacity, clampOpacity(p.Opacity))
	}
	if len(cur.pts) > 0 {
		out = append(out, cur)
	}
	return out
}

func clampOpacity(a float64) float64 {
	if math.IsNaN(a) {
		return 0
	}
	return max(0, min(1, a))
}

// Render draws pts with style l into s. Rendering zero points draws nothing.
// Render never fails; degenerate input draws what can be drawn.
func Render(s surface.Surface, l *Line, pts []Point, f Frame) {
	if s == nil || l == nil || len(pts) == 0 {
		return
	}
	rs := runs(pts)
	if len(rs) == 0 {
		return
	}

	s.PushClip(f.Bounds)
	defer s.PopClip()

	pieces := make([][]piece, len(rs))
	for i, r := range rs {
		pieces[i] = l.Connector.pieces(r.pts)
	}

	if l.Area != nil {
		drawArea(s, l.Area, rs, pieces, f)
	}
	if l.Thickness > 0 && !l.Shader.Transparent() {
		drawLine(s, l, rs, pieces, f)
	}
	if l.Point != nil && l.Point.Size > 0 {
		drawPoints(s, l.Point, rs, f)
	}
	if l.Label != nil {
		drawLabels(s, l, rs, f)
	}
}

func drawArea(s surface.Surface, a *AreaFill, rs []run, pieces [][]piece, f Frame) {
	above := gg.Rect{Min: f.Bounds.Min, Max: gg.Pt(f.Bounds.Max.X, f.BaselineY)}
	below := gg.Rect{Min: gg.Pt(f.Bounds.Min.X, f.BaselineY), Max: f.Bounds.Max}

	for i, r := range rs {
		if r.opacity == 0 {
			continue
		}
		for _, reg := range areaRegions(pieces[i], f.BaselineY) {
			style := surface.FillStyle{Shader: a.Above.WithOpacity(r.opacity), Extent: above}
			if reg.side == sideBelow {
				style = surface.FillStyle{Shader: a.Below.WithOpacity(r.opacity), Extent: below}
			}
			if style.Shader.Transparent() {
				continue
			}
			s.Fill(reg.path, style)
		}
	}
}

func drawLine(s surface.Surface, l *Line, rs []run, pieces [][]piece, f Frame) {
	clip := outset(f.Bounds, l.Thickness)
	// Runs are stroked separately because their opacity may differ.
	for i, r := range rs {
		if len(pieces[i]) == 0 || r.opacity == 0 {
			continue
		}
		path := gg.NewPath()
		appendRun(path, r.pts[0], pieces[i])
		s.Stroke(Dash(path, l.Pattern, clip), surface.StrokeStyle{
			Shader: l.Shader.WithOpacity(r.opacity),
			Width:  l.Thickness,
			Cap:    l.Cap,
			Join:   gg.LineJoinRound,
			Extent: path.BoundingBox(),
		})
	}
}

func drawPoints(s surface.Surface, ps *PointStyle, rs []run, f Frame) {
	half := ps.Size / 2
	visible := gg.Rect{
		Min: gg.Pt(f.Bounds.Min.X-half, f.Bounds.Min.Y-half),
		Max: gg.Pt(f.Bounds.Max.X+half, f.Bounds.Max.Y+half),
	}
	for _, r := range rs {
		for _, p := range r.src {
			op := clampOpacity(p.Opacity)
			if op == 0 || !visible.Contains(gg.Pt(p.X, p.Y)) {
				continue
			}
			path := gg.NewPath()
			if ps.Shape == PointSquare {
				path.Rectangle(p.X-half, p.Y-half, ps.Size, ps.Size)
			} else {
				path.Circle(p.X, p.Y, half)
			}
			s.Fill(path, surface.FillStyle{Shader: ps.Shader.WithOpacity(op)})
		}
	}
}
