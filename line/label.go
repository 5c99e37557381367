// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package line

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/chart/surface"
)

// labelBox returns the box of a w x h label for the point at p. For a
// rotated label w and h are those of its rotated bounds.
func labelBox(p gg.Point, w, h float64, l *Line) gg.Rect {
	ls := l.Label
	offset := ls.Margin + l.Thickness/2
	if l.Point != nil {
		offset = ls.Margin + max(l.Thickness, l.Point.Size)/2
	}

	x := p.X - w/2
	var y float64
	switch ls.Position {
	case PositionCenter:
		y = p.Y - h/2
	case PositionBottom:
		y = p.Y + offset
	default:
		y = p.Y - offset - h
	}
	return gg.Rect{Min: gg.Pt(x, y), Max: gg.Pt(x+w, y+h)}
}

// drawLabels draws one label per point in x order. A label whose rotated
// bounds would leave the frame, or overlap the last label drawn, is skipped.
func drawLabels(s surface.Surface, l *Line, rs []run, f Frame) {
	var (
		last    gg.Rect
		hasLast bool
	)
	for _, r := range rs {
		for _, p := range r.src {
			op := clampOpacity(p.Opacity)
			if op == 0 {
				continue
			}
			text := l.Label.Formatter.Format(p.Value)
			if text == "" {
				continue
			}
			style := l.Label.Text
			w, h := s.MeasureText(text, style)
			turned := surface.RotatedBounds(gg.Rect{Max: gg.Pt(w, h)}, style.Rotation)
			box := labelBox(gg.Pt(p.X, p.Y), turned.Width(), turned.Height(), l)
			if !contains(f.Bounds, box) {
				continue
			}
			if hasLast && surface.Overlaps(last, box) {
				continue
			}

			style.Color.A *= op
			at := box.Min
			if style.Rotation != 0 {
				at = gg.Pt((box.Min.X+box.Max.X-w)/2, (box.Min.Y+box.Max.Y-h)/2)
			}
			s.DrawText(text, at, style)
			last, hasLast = box, true
		}
	}
}

// contains reports whether inner lies entirely within outer.
func contains(outer, inner gg.Rect) bool {
	return inner.Min.X >= outer.Min.X && inner.Min.Y >= outer.Min.Y &&
		inner.Max.X <= outer.Max.X && inner.Max.Y <= outer.Max.Y
}
