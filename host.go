// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package chart

import (
	"time"

	"github.com/gogpu/gg"

	"github.com/gogpu/chart/animation"
	"github.com/gogpu/chart/entry"
	"github.com/gogpu/chart/internal/logging"
	"github.com/gogpu/chart/layer"
	"github.com/gogpu/chart/surface"
	"github.com/gogpu/chart/values"
)

// Host drives a Chart: it polls the producers of every layer, resolves the
// axis ranges, animates between drawing models and draws frames.
//
// A Host is not safe for concurrent use. Producers may publish from other
// goroutines at any time; the Host picks new models up on the next Advance.
type Host struct {
	chart *Chart
	opts  hostOptions

	layers []layerState

	// ranges holds the resolved values of the start and end axes. Both
	// share the x range of all layers.
	ranges [2]values.Values
	used   [2]bool

	marked  bool
	markedX float64
}

// layerState is the host-side state of one layer.
type layerState struct {
	version  uint64
	lines    *entry.Model[entry.LineEntry]
	candles  *entry.Model[entry.CandlestickEntry]
	animator *animation.Animator
}

func (st *layerState) extents() values.Extents {
	switch {
	case st.lines != nil:
		return st.lines
	case st.candles != nil:
		return st.candles
	default:
		return nil
	}
}

// NewHost creates a Host for c.
//
// Example:
//
//	h := chart.NewHost(c, chart.WithAnimationDuration(250*time.Millisecond))
//	for range ticker.C {
//	    if h.Advance(frameTime) {
//	        h.Draw(s)
//	    }
//	}
func NewHost(c *Chart, opts ...HostOption) *Host {
	o := defaultHostOptions()
	for _, opt := range opts {
		opt(&o)
	}
	h := &Host{chart: c, opts: o}
	h.sync()
	return h
}

// Chart returns the chart the host draws.
func (h *Host) Chart() *Chart { return h.chart }

// sync matches the layer states to the chart layers, resetting all of them
// when the number of layers changed.
func (h *Host) sync() {
	if len(h.layers) == len(h.chart.Layers) {
		return
	}
	h.layers = make([]layerState, len(h.chart.Layers))
	for i := range h.layers {
		h.layers[i].animator = animation.NewAnimator(h.opts.duration, h.opts.easing)
	}
}

// Advance moves the host forward by dt. It picks up models published since
// the previous call, starts transitions towards them and advances running
// transitions. It reports whether the next frame differs from the last one.
func (h *Host) Advance(dt time.Duration) bool {
	h.sync()

	changed := false
	for i, l := range h.chart.Layers {
		st := &h.layers[i]
		v := l.version()
		if v == st.version {
			continue
		}
		st.version = v
		if l.kind == KindCandlestick {
			st.candles = l.candleSource.Model()
		} else {
			st.lines = l.lineSource.Model()
		}
		changed = true
	}
	if changed {
		h.resolve()
		h.retarget()
	}

	for i := range h.layers {
		a := h.layers[i].animator
		if a.Running() {
			a.Advance(dt)
			changed = true
		}
	}
	return changed
}

// resolve recomputes the axis ranges from the current models.
func (h *Host) resolve() {
	var x values.Values
	hasX := false
	var y [2]values.Values
	var hasY [2]bool

	for i, l := range h.chart.Layers {
		ext := h.layers[i].extents()
		if ext == nil {
			continue
		}
		v, err := values.Resolve(ext, l.override)
		if err != nil {
			logging.Logger().Warn("chart: override rejected",
				"layer", i, "kind", l.kind, "err", err)
		}
		if hasX {
			x = values.Merge(x, v)
		} else {
			x, hasX = v, true
		}
		a := l.axis
		if hasY[a] {
			y[a] = values.Merge(y[a], v)
		} else {
			y[a], hasY[a] = v, true
		}
	}

	for a := range h.ranges {
		h.used[a] = hasY[a]
		h.ranges[a] = values.Values{
			MinX:  x.MinX,
			MaxX:  x.MaxX,
			StepX: x.StepX,
			MinY:  y[a].MinY,
			MaxY:  y[a].MaxY,
		}
	}
}

// retarget builds the drawing model of every animated layer under the
// current ranges and starts a transition when it changed.
func (h *Host) retarget() {
	for i, l := range h.chart.Layers {
		st := &h.layers[i]
		if !l.animated() || st.lines == nil {
			continue
		}
		target := layer.BuildModel(st.lines, layer.Transform{Values: h.ranges[l.axis]})
		if animation.Equal(target, st.animator.Target()) {
			continue
		}
		if st.animator.Current() == nil && !h.opts.initial {
			st.animator.Jump(target)
			continue
		}
		logging.Logger().Debug("chart: transition started", "layer", i, "kind", l.kind)
		st.animator.Start(target)
	}
}

// Animating reports whether any transition is running.
func (h *Host) Animating() bool {
	for i := range h.layers {
		if h.layers[i].animator.Running() {
			return true
		}
	}
	return false
}

// Values returns the resolved range of axis a. It reports false while no
// layer on that axis has a model.
func (h *Host) Values(a VerticalAxis) (values.Values, bool) {
	return h.ranges[a], h.used[a]
}

// MarkAt places the marker at domain x. It has no effect when the chart has
// no Marker.
func (h *Host) MarkAt(x float64) {
	h.marked, h.markedX = true, x
}

// ClearMarker hides the marker.
func (h *Host) ClearMarker() {
	h.marked = false
}

// layout is the geometry of one frame.
type layout struct {
	plot   gg.Rect
	xf     [2]layer.Transform
	ticks  [2][]tick
	bottom []tick
}

// Draw renders the current frame into s.
func (h *Host) Draw(s surface.Surface) {
	c := h.chart
	s.Clear(c.Background)

	bounds := gg.Rect{
		Min: gg.Pt(c.Padding, c.Padding),
		Max: gg.Pt(float64(s.Width())-c.Padding, float64(s.Height())-c.Padding),
	}
	if surface.EmptyRect(bounds) {
		return
	}
	if !h.used[AxisStart] && !h.used[AxisEnd] {
		if c.Legend != nil {
			c.Legend.draw(s, bounds.Min.X, bounds.Max.Y-c.Legend.height(s))
		}
		return
	}

	lo := h.layout(s, bounds)
	if surface.EmptyRect(lo.plot) {
		return
	}

	for _, a := range []VerticalAxis{AxisStart, AxisEnd} {
		if ax := c.axis(a); ax != nil && h.used[a] {
			ax.drawGuidelines(s, lo.ticks[a], lo.plot, false)
		}
	}
	if c.BottomAxis != nil {
		c.BottomAxis.drawGuidelines(s, lo.bottom, lo.plot, true)
	}

	for i, l := range c.Layers {
		h.drawLayer(s, i, l, lo.xf[l.axis])
	}

	for _, a := range []VerticalAxis{AxisStart, AxisEnd} {
		if ax := c.axis(a); ax != nil && h.used[a] {
			ax.drawVertical(s, lo.ticks[a], lo.plot, a)
		}
	}
	if c.BottomAxis != nil {
		c.BottomAxis.drawHorizontal(s, lo.bottom, lo.plot, bounds)
	}

	if c.Marker != nil && h.marked {
		h.drawMarker(s, lo)
	}
	if c.Legend != nil {
		top := lo.plot.Max.Y
		if c.BottomAxis != nil {
			top += c.BottomAxis.height(s)
		}
		c.Legend.draw(s, lo.plot.Min.X, top)
	}
}

// layout reserves room for the legend and the axes and computes the
// transforms of both vertical axes.
func (h *Host) layout(s surface.Surface, bounds gg.Rect) layout {
	c := h.chart
	lo := layout{plot: bounds}

	if c.Legend != nil {
		lo.plot.Max.Y -= c.Legend.height(s)
	}
	if c.BottomAxis != nil {
		lo.plot.Max.Y -= c.BottomAxis.height(s)
	}

	// Vertical tick positions only depend on the plot height, so they are
	// computed before the axis widths shrink the plot horizontally.
	for _, a := range []VerticalAxis{AxisStart, AxisEnd} {
		ax := c.axis(a)
		if ax == nil || !h.used[a] {
			continue
		}
		lo.ticks[a] = ax.verticalTicks(layer.Transform{Values: h.ranges[a], Bounds: lo.plot})
		w := ax.width(s, lo.ticks[a])
		if a == AxisStart {
			lo.plot.Min.X += w
		} else {
			lo.plot.Max.X -= w
		}
	}

	inset := 0.0
	for i, l := range c.Layers {
		inset = max(inset, l.inset(h.seriesCount(i)))
	}
	for a := range lo.xf {
		lo.xf[a] = layer.Transform{Values: h.ranges[a], Bounds: lo.plot}.Inset(inset)
	}

	if c.BottomAxis != nil {
		a := AxisStart
		if !h.used[a] {
			a = AxisEnd
		}
		lo.bottom = c.BottomAxis.horizontalTicks(lo.xf[a])
	}
	return lo
}

func (h *Host) seriesCount(i int) int {
	st := &h.layers[i]
	if st.lines != nil {
		return st.lines.SeriesCount()
	}
	return 0
}

func (h *Host) drawLayer(s surface.Surface, i int, l Layer, t layer.Transform) {
	st := &h.layers[i]
	switch l.kind {
	case KindLine:
		l.lines.Draw(s, st.animator.Current(), t)
	case KindColumn:
		l.columns.Draw(s, st.animator.Current(), t)
	case KindCandlestick:
		if st.candles != nil {
			l.candles.Draw(s, st.candles, t)
		}
	}
}

// drawMarker highlights the entry nearest to the marked x in every series
// of every line layer.
func (h *Host) drawMarker(s surface.Surface, lo layout) {
	var pts []markedPoint
	for i, l := range h.chart.Layers {
		st := &h.layers[i]
		if l.kind != KindLine || st.lines == nil {
			continue
		}
		t := lo.xf[l.axis]
		for si := range st.lines.SeriesCount() {
			series := st.lines.Series(si)
			j := nearest(series, h.markedX)
			if j < 0 {
				continue
			}
			e := series[j]
			shader := surface.Solid(gg.Black)
			if style := l.lines.Style(si); style != nil {
				shader = style.Shader
			}
			pts = append(pts, markedPoint{at: t.Point(e.X, e.Y), value: e.Y, shader: shader})
		}
	}
	a := AxisStart
	if !h.used[a] {
		a = AxisEnd
	}
	h.chart.Marker.draw(s, lo.xf[a].X(h.markedX), pts, lo.plot)
}
