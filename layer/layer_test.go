// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layer

import (
	"math"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/chart/animation"
	"github.com/gogpu/chart/entry"
	"github.com/gogpu/chart/format"
	"github.com/gogpu/chart/line"
	"github.com/gogpu/chart/recording"
	"github.com/gogpu/chart/surface"
	"github.com/gogpu/chart/values"
)

func lineModel(t *testing.T, series ...[]entry.LineEntry) *entry.Model[entry.LineEntry] {
	t.Helper()
	m, err := entry.Build(series...)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return m
}

func TestBuildModel(t *testing.T) {
	m := lineModel(t, []entry.LineEntry{{X: 0, Y: -2}, entry.Gap(1), {X: 2, Y: 6}})
	v, _ := values.Resolve(m, nil)
	tr := Transform{Values: v, Bounds: plotRect(100, 100)}

	dm := BuildModel(m, tr)
	if len(dm.Series) != 1 || len(dm.Series[0]) != 3 {
		t.Fatalf("drawing model shape = %d series", len(dm.Series))
	}
	p := dm.Series[0]
	if p[0].X != 0 || p[0].Y != 0 || p[2].X != 1 || p[2].Y != 1 {
		t.Errorf("fractions = %+v", p)
	}
	if !math.IsNaN(p[1].Y) || p[1].X != 0.5 {
		t.Errorf("gap = %+v, want NaN y at x=0.5", p[1])
	}
	if dm.Baseline != 0.25 {
		t.Errorf("baseline = %v, want 0.25", dm.Baseline)
	}

	positive := Transform{Values: values.Values{MinY: 10, MaxY: 20, MaxX: 1, StepX: 1}}
	if got := Baseline(positive); got != 0 {
		t.Errorf("baseline below the plot = %v, want 0", got)
	}
	if BuildModel(nil, tr) != nil {
		t.Error("BuildModel(nil) should be nil")
	}
}

func TestLinesDraw(t *testing.T) {
	m := lineModel(t, entry.Line(0, 5, 10), entry.Line(10, 5, 0))
	v, _ := values.Resolve(m, nil)
	tr := Transform{Values: v, Bounds: plotRect(100, 50)}

	style := &line.Line{
		Shader:    surface.Solid(gg.Black),
		Thickness: 1,
		Connector: line.Linear(),
		Label:     &line.LabelStyle{Formatter: format.Decimal(0), Text: surface.TextStyle{Size: 13}},
	}
	rec := recording.NewRecorder(100, 50)
	(&Lines{Styles: []*line.Line{style}}).Draw(rec, BuildModel(m, tr), tr)

	if n := len(rec.Strokes()); n != 2 {
		t.Errorf("got %d strokes, want one per series", n)
	}
	// Only the middle labels fit inside the plot.
	texts := rec.Texts()
	if len(texts) != 2 {
		t.Fatalf("got %d labels, want 2", len(texts))
	}
	for _, txt := range texts {
		if txt.Text != "5" {
			t.Errorf("label %q, want the domain value 5", txt.Text)
		}
	}
}

func TestLinesStyleCycles(t *testing.T) {
	a, b := line.DefaultLine(gg.Black), line.DefaultLine(gg.White)
	l := &Lines{Styles: []*line.Line{a, b}}
	if l.Style(2) != a || l.Style(3) != b {
		t.Error("styles should repeat")
	}
	if (&Lines{}).Style(0) != nil {
		t.Error("no styles should give nil")
	}
}

func TestPointsReadBackValues(t *testing.T) {
	tr := Transform{Values: values.Values{MinY: 0, MaxY: 200, MaxX: 1, StepX: 1}, Bounds: plotRect(10, 100)}
	pts := Points([]animation.PointInfo{{X: 0.5, Y: 0.25, Opacity: 0.5}}, tr)
	if p := pts[0]; p.X != 5 || p.Y != 75 || p.Value != 50 || p.Opacity != 0.5 {
		t.Errorf("point = %+v", p)
	}
}

func TestColumnsDraw(t *testing.T) {
	tr := Transform{Values: values.Values{MinX: 0, MaxX: 1, StepX: 1, MinY: -10, MaxY: 10}, Bounds: plotRect(100, 100)}
	dm := &animation.Model{
		Baseline: 0.5,
		Series: [][]animation.PointInfo{
			{{X: 0.5, Y: 1, Opacity: 1}},
			{{X: 0.5, Y: 0, Opacity: 1}},
			{{X: 0.5, Y: math.NaN(), Opacity: 1}},
		},
	}
	c := &Columns{Shaders: []surface.Shader{surface.Solid(gg.Black)}, Thickness: 10, Spacing: 2}
	if got := c.GroupWidth(3); got != 34 {
		t.Errorf("GroupWidth(3) = %v, want 34", got)
	}

	rec := recording.NewRecorder(100, 100)
	c.Draw(rec, dm, tr)
	fills := rec.Fills()
	if len(fills) != 2 {
		t.Fatalf("got %d bars, want 2 (gap skipped)", len(fills))
	}

	up := fills[0].Path.BoundingBox()
	if up.Min.X != 33 || up.Max.X != 43 || up.Min.Y != 0 || up.Max.Y != 50 {
		t.Errorf("rising bar = %+v", up)
	}
	down := fills[1].Path.BoundingBox()
	if down.Min.X != 45 || down.Min.Y != 50 || down.Max.Y != 100 {
		t.Errorf("falling bar = %+v", down)
	}
	if fills[1].Style.Extent.Min.Y != 50 {
		t.Errorf("falling bar extent = %+v, want from the baseline down", fills[1].Style.Extent)
	}
}

func TestCandlesDraw(t *testing.T) {
	m, err := entry.Build([]entry.CandlestickEntry{
		{X: 0, Low: 0, High: 10, Open: 2, Close: 8},
		{X: 1, Low: 0, High: 10, Open: 8, Close: 2},
		{X: 2, Low: 4, High: 6, Open: 5, Close: 5},
	})
	if err != nil {
		t.Fatal(err)
	}
	v, _ := values.Resolve(m, nil)
	tr := Transform{Values: v, Bounds: plotRect(100, 100)}

	c := DefaultCandles()
	rec := recording.NewRecorder(100, 100)
	c.Draw(rec, m, tr)

	// Rising and unchanged candles are hollow: wick and outline strokes.
	// The falling candle has a wick stroke and a filled body.
	if got := len(rec.Fills()); got != 1 {
		t.Errorf("filled bodies = %d, want 1", got)
	}
	if got := len(rec.Strokes()); got != 5 {
		t.Errorf("strokes = %d, want 5", got)
	}
	if got := rec.Fills()[0].Style.Shader; got != c.Decrease.Body {
		t.Errorf("falling body shader = %+v", got)
	}
	if body := rec.Fills()[0].Path.BoundingBox(); body.Height() != 60 {
		t.Errorf("falling body height = %v, want 60", body.Height())
	}
}
