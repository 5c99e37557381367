// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package chart

import (
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/chart/format"
	"github.com/gogpu/chart/layer"
	"github.com/gogpu/chart/recording"
	"github.com/gogpu/chart/values"
)

func transform(v values.Values, w, h float64) layer.Transform {
	return layer.Transform{Values: v, Bounds: gg.Rect{Max: gg.Pt(w, h)}}
}

func tickValues(ticks []tick) []float64 {
	out := make([]float64, len(ticks))
	for i, tk := range ticks {
		out[i] = tk.value
	}
	return out
}

func equalFloats(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !near(a[i], b[i]) {
			return false
		}
	}
	return true
}

func TestVerticalTicks(t *testing.T) {
	tests := []struct {
		name  string
		count int
		v     values.Values
		want  []float64
	}{
		{"even", 5, values.Values{MinY: 0, MaxY: 8, StepX: 1}, []float64{0, 2, 4, 6, 8}},
		{"default count", 0, values.Values{MinY: -4, MaxY: 4, StepX: 1}, []float64{-4, -2, 0, 2, 4}},
		{"zero range", 5, values.Values{MinY: 3, MaxY: 3, StepX: 1}, []float64{3}},
		{"single", 1, values.Values{MinY: 0, MaxY: 10, StepX: 1}, []float64{0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := DefaultAxis()
			a.TickCount = tt.count
			got := tickValues(a.verticalTicks(transform(tt.v, 100, 100)))
			if !equalFloats(got, tt.want) {
				t.Errorf("ticks = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVerticalTickPositions(t *testing.T) {
	a := DefaultAxis()
	ticks := a.verticalTicks(transform(values.Values{MinY: 0, MaxY: 8, StepX: 1}, 100, 80))
	if ticks[0].pos != 80 || ticks[4].pos != 0 {
		t.Errorf("tick positions = %v .. %v, want 80 .. 0", ticks[0].pos, ticks[4].pos)
	}
	if zero := a.verticalTicks(transform(values.Values{MinY: 3, MaxY: 3}, 100, 80)); zero[0].pos != 40 {
		t.Errorf("zero range tick at %v, want centre 40", zero[0].pos)
	}
}

func TestHorizontalTicks(t *testing.T) {
	tests := []struct {
		name    string
		spacing int
		v       values.Values
		want    []float64
	}{
		{"every step", 1, values.Values{MinX: 0, MaxX: 3, StepX: 1}, []float64{0, 1, 2, 3}},
		{"spacing", 2, values.Values{MinX: 0, MaxX: 5, StepX: 1}, []float64{0, 2, 4}},
		{"fractional step", 1, values.Values{MinX: 0, MaxX: 0.3, StepX: 0.1}, []float64{0, 0.1, 0.2, 0.3}},
		{"zero length", 1, values.Values{MinX: 2, MaxX: 2, StepX: 1}, []float64{2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := DefaultAxis()
			a.Spacing = tt.spacing
			got := tickValues(a.horizontalTicks(transform(tt.v, 100, 100)))
			if !equalFloats(got, tt.want) {
				t.Errorf("ticks = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAxisLabelOverlapSkipped(t *testing.T) {
	a := DefaultAxis()
	a.Formatter = format.Decimal(0)
	v := values.Values{MinX: 1000, MaxX: 1100, StepX: 1}
	plot := gg.Rect{Min: gg.Pt(30, 0), Max: gg.Pt(130, 50)}
	tf := layer.Transform{Values: v, Bounds: plot}
	ticks := a.horizontalTicks(tf)

	r := recording.NewRecorder(140, 80)
	a.drawHorizontal(r, ticks, plot, gg.Rect{Max: gg.Pt(140, 80)})

	texts := r.Texts()
	if len(texts) == 0 || len(texts) >= len(ticks) {
		t.Fatalf("drew %d of %d labels, want some skipped", len(texts), len(ticks))
	}
	for i := 1; i < len(texts); i++ {
		if texts[i].Bounds.Min.X < texts[i-1].Bounds.Max.X {
			t.Errorf("labels %d and %d overlap", i-1, i)
		}
	}
	if texts[0].Text != "1,000" {
		t.Errorf("first label = %q, want 1,000", texts[0].Text)
	}
}

func TestAxisVerticalLabelsAligned(t *testing.T) {
	a := DefaultAxis()
	plot := gg.Rect{Min: gg.Pt(40, 0), Max: gg.Pt(100, 100)}
	ticks := a.verticalTicks(layer.Transform{Values: values.Values{MinY: 0, MaxY: 100}, Bounds: plot})

	r := recording.NewRecorder(140, 100)
	a.drawVertical(r, ticks, plot, AxisStart)
	for _, tc := range r.Texts() {
		right := plot.Min.X - a.TickLength - a.LabelMargin
		if !near(tc.Bounds.Max.X, right) {
			t.Errorf("label %q ends at %v, want %v", tc.Text, tc.Bounds.Max.X, right)
		}
	}

	r.Reset()
	a.drawVertical(r, ticks, plot, AxisEnd)
	for _, tc := range r.Texts() {
		left := plot.Max.X + a.TickLength + a.LabelMargin
		if !near(tc.Bounds.Min.X, left) {
			t.Errorf("label %q starts at %v, want %v", tc.Text, tc.Bounds.Min.X, left)
		}
	}
}

func TestGuidelines(t *testing.T) {
	a := DefaultAxis()
	plot := gg.Rect{Max: gg.Pt(100, 100)}
	ticks := a.verticalTicks(layer.Transform{Values: values.Values{MinY: 0, MaxY: 4}, Bounds: plot})

	r := recording.NewRecorder(100, 100)
	a.drawGuidelines(r, ticks, plot, false)
	if n := len(r.Strokes()); n != 1 {
		t.Fatalf("strokes = %d, want 1", n)
	}

	a.Guideline = nil
	r.Reset()
	a.drawGuidelines(r, ticks, plot, false)
	if n := len(r.Strokes()); n != 0 {
		t.Errorf("strokes without guideline = %d, want 0", n)
	}
}
