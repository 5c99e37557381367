// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package chart

import (
	"cmp"
	"slices"
	"strings"

	"github.com/gogpu/gg"

	"github.com/gogpu/chart/entry"
	"github.com/gogpu/chart/format"
	"github.com/gogpu/chart/surface"
)

// Marker highlights the entries nearest to a domain x: a vertical line
// crosses the plot, the nearest point of every line series gets an
// indicator and a label lists their values.
//
// Place the marker with Host.MarkAt.
type Marker struct {
	Line      surface.Shader
	LineWidth float64

	// IndicatorSize is the diameter of the point indicators in pixels.
	IndicatorSize float64

	Label     surface.TextStyle
	Formatter format.Formatter
}

// DefaultMarker returns a marker with a grey line and 8px indicators.
func DefaultMarker() *Marker {
	return &Marker{
		Line:          surface.Solid(gg.Hex("#757575")),
		LineWidth:     1,
		IndicatorSize: 8,
		Label:         surface.TextStyle{Color: gg.Hex("#212121"), Size: surface.DefaultTextSize},
	}
}

// markedPoint is one highlighted entry.
type markedPoint struct {
	at     gg.Point
	value  float64
	shader surface.Shader
}

// nearest returns the index of the entry of series closest to x, skipping
// gaps, or -1 when the series has no value.
func nearest(series []entry.LineEntry, x float64) int {
	i, _ := slices.BinarySearchFunc(series, x, func(e entry.LineEntry, x float64) int {
		return cmp.Compare(e.X, x)
	})
	left, right := i-1, i
	for left >= 0 && series[left].IsGap() {
		left--
	}
	for right < len(series) && series[right].IsGap() {
		right++
	}
	switch {
	case left < 0 && right >= len(series):
		return -1
	case left < 0:
		return right
	case right >= len(series):
		return left
	case x-series[left].X <= series[right].X-x:
		return left
	default:
		return right
	}
}

// draw renders the marker line at pixel x and the given points, clipped to
// plot.
func (m *Marker) draw(s surface.Surface, x float64, pts []markedPoint, plot gg.Rect) {
	if x < plot.Min.X || x > plot.Max.X {
		return
	}
	if m.LineWidth > 0 && !m.Line.Transparent() {
		p := gg.NewPath()
		p.MoveTo(x, plot.Min.Y)
		p.LineTo(x, plot.Max.Y)
		s.Stroke(p, surface.StrokeStyle{Shader: m.Line, Width: m.LineWidth, Cap: gg.LineCapButt})
	}

	s.PushClip(plot)
	labels := make([]string, 0, len(pts))
	for _, pt := range pts {
		if m.IndicatorSize > 0 {
			c := gg.NewPath()
			c.Circle(pt.at.X, pt.at.Y, m.IndicatorSize/2)
			s.Fill(c, surface.FillStyle{Shader: pt.shader})
		}
		labels = append(labels, m.Formatter.Format(pt.value))
	}
	s.PopClip()

	if len(labels) == 0 {
		return
	}
	text := strings.Join(labels, ", ")
	w, _ := s.MeasureText(text, m.Label)
	left := max(plot.Min.X, min(x-w/2, plot.Max.X-w))
	s.DrawText(text, gg.Pt(left, plot.Min.Y), m.Label)
}
