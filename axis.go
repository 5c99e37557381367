// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package chart

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/chart/format"
	"github.com/gogpu/chart/layer"
	"github.com/gogpu/chart/line"
	"github.com/gogpu/chart/surface"
)

// Axis draws an axis line, tick marks, labels and optional guidelines
// across the plot.
type Axis struct {
	// Label styles the tick labels.
	Label surface.TextStyle
	// Formatter turns tick values into label text.
	Formatter format.Formatter

	// Line is the shader of the axis line and ticks. A transparent shader
	// or a non-positive LineWidth hides them.
	Line      surface.Shader
	LineWidth float64

	// Guideline is drawn across the plot at every tick. Nil disables
	// guidelines.
	Guideline *Guideline

	// TickCount is the number of evenly spaced ticks of a vertical axis.
	TickCount int
	// Spacing is the number of x steps between ticks of a horizontal axis.
	Spacing int

	// TickLength is the length of the tick marks in pixels.
	TickLength float64
	// LabelMargin is the gap between a tick and its label in pixels.
	LabelMargin float64
}

// Guideline styles the lines drawn across the plot at each tick.
type Guideline struct {
	Shader  surface.Shader
	Width   float64
	Pattern line.Pattern
}

// Axis defaults.
const (
	DefaultTickCount   = 5
	DefaultTickLength  = 4
	DefaultLabelMargin = 4

	// maxTicks bounds the number of ticks of a horizontal axis.
	maxTicks = 1000
)

// DefaultAxis returns an axis with grey labels, a thin axis line and dashed
// guidelines.
func DefaultAxis() *Axis {
	return &Axis{
		Label:     surface.TextStyle{Color: gg.Hex("#616161"), Size: surface.DefaultTextSize},
		Line:      surface.Solid(gg.Hex("#9E9E9E")),
		LineWidth: 1,
		Guideline: &Guideline{
			Shader:  surface.Solid(gg.Hex("#E0E0E0")),
			Width:   1,
			Pattern: line.Dashed(4, 4),
		},
		TickCount:   DefaultTickCount,
		Spacing:     1,
		TickLength:  DefaultTickLength,
		LabelMargin: DefaultLabelMargin,
	}
}

// tick is one labelled value of an axis.
type tick struct {
	value float64
	pos   float64 // pixel x for horizontal axes, pixel y for vertical ones
	text  string
}

// verticalTicks returns TickCount ticks evenly spread over the y range of t.
// A zero range gives a single tick in the middle.
func (a *Axis) verticalTicks(t layer.Transform) []tick {
	v := t.Values
	n := a.TickCount
	if n <= 0 {
		n = DefaultTickCount
	}
	if v.LengthY() == 0 || n == 1 {
		return []tick{{value: v.MinY, pos: t.Y(v.MinY), text: a.Formatter.Format(v.MinY)}}
	}
	ticks := make([]tick, n)
	for i := range ticks {
		y := v.MinY + float64(i)*v.LengthY()/float64(n-1)
		ticks[i] = tick{value: y, pos: t.Y(y), text: a.Formatter.Format(y)}
	}
	return ticks
}

// horizontalTicks returns a tick every Spacing x steps, starting at MinX.
func (a *Axis) horizontalTicks(t layer.Transform) []tick {
	v := t.Values
	spacing := max(a.Spacing, 1)
	step := v.StepX * float64(spacing)
	if !(step > 0) || v.LengthX() == 0 {
		return []tick{{value: v.MinX, pos: t.X(v.MinX), text: a.Formatter.Format(v.MinX)}}
	}
	eps := step * 1e-9
	var ticks []tick
	for i := 0; i < maxTicks; i++ {
		x := v.MinX + float64(i)*step
		if x > v.MaxX+eps {
			break
		}
		ticks = append(ticks, tick{value: x, pos: t.X(x), text: a.Formatter.Format(x)})
	}
	return ticks
}

// width returns the room a vertical axis needs beside the plot.
func (a *Axis) width(s surface.Surface, ticks []tick) float64 {
	w := 0.0
	for _, tk := range ticks {
		tw, _ := s.MeasureText(tk.text, a.Label)
		w = max(w, tw)
	}
	return w + a.TickLength + a.LabelMargin
}

// height returns the room a horizontal axis needs below the plot.
func (a *Axis) height(s surface.Surface) float64 {
	_, h := s.MeasureText("0", a.Label)
	return h + a.TickLength + a.LabelMargin
}

// drawGuidelines draws the guidelines of a vertical (horizontal == false)
// or horizontal axis across plot.
func (a *Axis) drawGuidelines(s surface.Surface, ticks []tick, plot gg.Rect, horizontal bool) {
	g := a.Guideline
	if g == nil || g.Width <= 0 || g.Shader.Transparent() {
		return
	}
	p := gg.NewPath()
	for _, tk := range ticks {
		if horizontal {
			p.MoveTo(tk.pos, plot.Min.Y)
			p.LineTo(tk.pos, plot.Max.Y)
		} else {
			p.MoveTo(plot.Min.X, tk.pos)
			p.LineTo(plot.Max.X, tk.pos)
		}
	}
	clip := gg.Rect{
		Min: gg.Pt(plot.Min.X-g.Width, plot.Min.Y-g.Width),
		Max: gg.Pt(plot.Max.X+g.Width, plot.Max.Y+g.Width),
	}
	s.Stroke(line.Dash(p, g.Pattern, clip), surface.StrokeStyle{
		Shader: g.Shader,
		Width:  g.Width,
		Cap:    gg.LineCapButt,
		Join:   gg.LineJoinMiter,
		Extent: plot,
	})
}

// drawVertical draws a vertical axis along the left (start) or right edge
// of plot. Labels are vertically centred on their tick and skipped when
// they overlap the previous label.
func (a *Axis) drawVertical(s surface.Surface, ticks []tick, plot gg.Rect, pos VerticalAxis) {
	x, dir := plot.Min.X, -1.0
	if pos == AxisEnd {
		x, dir = plot.Max.X, 1.0
	}

	if a.visibleLine() {
		p := gg.NewPath()
		p.MoveTo(x, plot.Min.Y)
		p.LineTo(x, plot.Max.Y)
		for _, tk := range ticks {
			p.MoveTo(x, tk.pos)
			p.LineTo(x+dir*a.TickLength, tk.pos)
		}
		s.Stroke(p, a.lineStyle())
	}

	var prev gg.Rect
	for _, tk := range ticks {
		w, h := s.MeasureText(tk.text, a.Label)
		left := x + dir*(a.TickLength+a.LabelMargin)
		if pos == AxisStart {
			left -= w
		}
		box := gg.Rect{Min: gg.Pt(left, tk.pos-h/2), Max: gg.Pt(left+w, tk.pos+h/2)}
		if !surface.EmptyRect(prev) && surface.Overlaps(prev, box) {
			continue
		}
		s.DrawText(tk.text, box.Min, a.Label)
		prev = box
	}
}

// drawHorizontal draws a horizontal axis along the bottom of plot.
// Labels that overlap the previous label or leave bounds are skipped.
func (a *Axis) drawHorizontal(s surface.Surface, ticks []tick, plot, bounds gg.Rect) {
	y := plot.Max.Y

	if a.visibleLine() {
		p := gg.NewPath()
		p.MoveTo(plot.Min.X, y)
		p.LineTo(plot.Max.X, y)
		for _, tk := range ticks {
			p.MoveTo(tk.pos, y)
			p.LineTo(tk.pos, y+a.TickLength)
		}
		s.Stroke(p, a.lineStyle())
	}

	var prev gg.Rect
	for _, tk := range ticks {
		w, h := s.MeasureText(tk.text, a.Label)
		top := y + a.TickLength + a.LabelMargin
		box := gg.Rect{Min: gg.Pt(tk.pos-w/2, top), Max: gg.Pt(tk.pos+w/2, top+h)}
		if box.Min.X < bounds.Min.X || box.Max.X > bounds.Max.X {
			continue
		}
		if !surface.EmptyRect(prev) && surface.Overlaps(prev, box) {
			continue
		}
		s.DrawText(tk.text, box.Min, a.Label)
		prev = box
	}
}

func (a *Axis) visibleLine() bool {
	return a.LineWidth > 0 && !a.Line.Transparent()
}

func (a *Axis) lineStyle() surface.StrokeStyle {
	return surface.StrokeStyle{
		Shader: a.Line,
		Width:  a.LineWidth,
		Cap:    gg.LineCapSquare,
		Join:   gg.LineJoinMiter,
	}
}
