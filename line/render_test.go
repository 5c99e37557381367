// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package line

import (
	"math"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/chart/format"
	"github.com/gogpu/chart/recording"
	"github.com/gogpu/chart/surface"
)

func plot(w, h float64) Frame {
	return Frame{Bounds: gg.Rect{Max: gg.Pt(w, h)}, BaselineY: h}
}

func opaque(xy ...float64) []Point {
	pts := make([]Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		pts = append(pts, Point{X: xy[i], Y: xy[i+1], Value: xy[i+1], Opacity: 1})
	}
	return pts
}

func TestRenderNoPoints(t *testing.T) {
	rec := recording.NewRecorder(100, 100)
	Render(rec, DefaultLine(gg.Black), nil, plot(100, 100))
	if n := len(rec.Commands()); n != 0 {
		t.Errorf("zero points recorded %d commands", n)
	}

	Render(rec, DefaultLine(gg.Black), []Point{{X: math.NaN(), Y: 1, Opacity: 1}}, plot(100, 100))
	if n := len(rec.Commands()); n != 0 {
		t.Errorf("only invalid points recorded %d commands", n)
	}
}

func TestRenderClipsToFrame(t *testing.T) {
	rec := recording.NewRecorder(100, 100)
	Render(rec, DefaultLine(gg.Black), opaque(0, 10, 50, 90), plot(100, 100))

	cmds := rec.Commands()
	if cmds[0].Type() != recording.CmdPushClip || cmds[len(cmds)-1].Type() != recording.CmdPopClip {
		t.Errorf("render should be wrapped in a clip, got %v ... %v", cmds[0].Type(), cmds[len(cmds)-1].Type())
	}
	if rec.ClipDepth() != 0 {
		t.Errorf("clip depth after render = %d", rec.ClipDepth())
	}
}

func TestRenderGapsSplitLine(t *testing.T) {
	rec := recording.NewRecorder(100, 100)
	l := DefaultLine(gg.Black)
	l.Area = nil
	pts := opaque(0, 10, 10, 20, 20, 30, 30, 40, 40, 50)
	pts[2].Y = math.NaN()

	Render(rec, l, pts, plot(100, 100))
	strokes := rec.Strokes()
	if len(strokes) != 2 {
		t.Fatalf("got %d strokes, want 2 runs", len(strokes))
	}
	if got := endpoints(strokes[1].Path)[0]; got != gg.Pt(30, 40) {
		t.Errorf("second run starts at %v, want (30, 40)", got)
	}
	if s := strokes[0].Style; s.Cap != gg.LineCapRound || s.Join != gg.LineJoinRound || s.Width != DefaultThickness {
		t.Errorf("stroke style = %+v", s)
	}
}

func TestRenderKeepsOffscreenPoints(t *testing.T) {
	rec := recording.NewRecorder(100, 100)
	l := &Line{Shader: surface.Solid(gg.Black), Thickness: 1, Connector: Linear()}
	Render(rec, l, opaque(-1e6, 50, 50, -1e9, 1e7, 50), plot(100, 100))

	strokes := rec.Strokes()
	if len(strokes) != 1 {
		t.Fatalf("got %d strokes, want 1", len(strokes))
	}
	if got := len(endpoints(strokes[0].Path)); got != 3 {
		t.Errorf("off-screen points dropped from path: %d points", got)
	}
}

func TestRenderDashed(t *testing.T) {
	rec := recording.NewRecorder(100, 100)
	l := &Line{Shader: surface.Solid(gg.Black), Thickness: 1, Connector: Linear(), Pattern: Dashed(5, 5)}
	Render(rec, l, opaque(0, 50, 100, 50), plot(100, 100))

	if n := len(moveTos(rec.Strokes()[0].Path)); n != 10 {
		t.Errorf("dashed 100px line has %d dashes, want 10", n)
	}
}

func TestRenderDashedFarOffscreen(t *testing.T) {
	rec := recording.NewRecorder(100, 100)
	l := &Line{Shader: surface.Solid(gg.Black), Thickness: 1, Connector: Linear(), Pattern: Dashed(4, 4)}
	Render(rec, l, opaque(0, 50, 50, -1e9, 100, 50), plot(100, 100))

	strokes := rec.Strokes()
	if len(strokes) != 1 {
		t.Fatalf("got %d strokes, want 1", len(strokes))
	}
	// About 52 visible pixels per segment at 8 pixels per cycle.
	if n := len(strokes[0].Path.Elements()); n == 0 || n > 64 {
		t.Errorf("dashed path has %d elements, want a few dozen", n)
	}
}

func TestRenderPoints(t *testing.T) {
	rec := recording.NewRecorder(100, 100)
	l := &Line{
		Connector: Linear(),
		Point:     &PointStyle{Shape: PointCircle, Size: 4, Shader: surface.Solid(gg.Black)},
	}
	pts := opaque(10, 10, 50, 50, 500, 50)
	pts[1].Opacity = 0.5

	Render(rec, l, pts, plot(100, 100))
	fills := rec.Fills()
	if len(fills) != 2 {
		t.Fatalf("got %d markers, want 2 (third point is outside)", len(fills))
	}
	if a := fills[1].Style.Shader.Top.A; a != 0.5 {
		t.Errorf("marker alpha = %v, want 0.5", a)
	}
}

func TestRenderLabels(t *testing.T) {
	rec := recording.NewRecorder(200, 200)
	l := &Line{
		Connector: Linear(),
		Label: &LabelStyle{
			Formatter: format.Decimal(0),
			Position:  PositionTop,
			Text:      surface.TextStyle{Size: 13},
			Margin:    2,
		},
	}
	pts := []Point{
		{X: 1, Y: 100, Value: 1, Opacity: 1},   // leaves the frame on the left
		{X: 50, Y: 100, Value: 2, Opacity: 1},  // drawn
		{X: 53, Y: 100, Value: 3, Opacity: 1},  // overlaps the previous label
		{X: 100, Y: 100, Value: 4, Opacity: 1}, // drawn
		{X: 150, Y: 5, Value: 5, Opacity: 1},   // no room above
	}

	Render(rec, l, pts, plot(200, 200))
	texts := rec.Texts()
	if len(texts) != 2 {
		t.Fatalf("drew %d labels, want 2: %+v", len(texts), texts)
	}
	if texts[0].Text != "2" || texts[1].Text != "4" {
		t.Errorf("labels = %q, %q, want 2, 4", texts[0].Text, texts[1].Text)
	}
	// 7px wide, 13px tall, 2px above the point.
	if want := (gg.Rect{Min: gg.Pt(46.5, 85), Max: gg.Pt(53.5, 98)}); texts[0].Bounds != want {
		t.Errorf("label box = %+v, want %+v", texts[0].Bounds, want)
	}
}

func TestRenderRotatedLabels(t *testing.T) {
	newLine := func(rotation float64) *Line {
		return &Line{
			Connector: Linear(),
			Label: &LabelStyle{
				Formatter: format.Decimal(0),
				Position:  PositionTop,
				Text:      surface.TextStyle{Size: 13, Rotation: rotation},
				Margin:    2,
			},
		}
	}
	// 7px wide labels 8px apart fit upright but collide once turned.
	pts := []Point{
		{X: 50, Y: 100, Value: 2, Opacity: 1},
		{X: 58, Y: 100, Value: 3, Opacity: 1},
	}

	tests := []struct {
		rotation float64
		labels   int
	}{
		{0, 2},
		{90, 1},
		{-90, 1},
	}
	for _, tt := range tests {
		rec := recording.NewRecorder(200, 200)
		Render(rec, newLine(tt.rotation), pts, plot(200, 200))
		if got := len(rec.Texts()); got != tt.labels {
			t.Errorf("rotation %v: drew %d labels, want %d", tt.rotation, got, tt.labels)
		}
	}

	rec := recording.NewRecorder(200, 200)
	Render(rec, newLine(90), pts[:1], plot(200, 200))
	// The 7x13 box turned a quarter is 13x7 and sits 2px above the point.
	b := rec.Texts()[0].Bounds
	if !near(b.Min, gg.Pt(43.5, 91)) || !near(b.Max, gg.Pt(56.5, 98)) {
		t.Errorf("rotated label bounds = %+v", b)
	}
}

func TestLabelPositions(t *testing.T) {
	l := &Line{Thickness: 2, Label: &LabelStyle{Margin: 3}}
	p := gg.Pt(10, 50)
	tests := []struct {
		pos  VerticalPosition
		minY float64
	}{
		{PositionTop, 50 - 4 - 10},
		{PositionCenter, 45},
		{PositionBottom, 54},
	}
	for _, tt := range tests {
		l.Label.Position = tt.pos
		if got := labelBox(p, 8, 10, l).Min.Y; got != tt.minY {
			t.Errorf("%v: label top = %v, want %v", tt.pos, got, tt.minY)
		}
	}
}

func TestRenderTransparentRun(t *testing.T) {
	rec := recording.NewRecorder(100, 100)
	pts := opaque(0, 10, 50, 20)
	for i := range pts {
		pts[i].Opacity = 0
	}
	Render(rec, DefaultLine(gg.Black), pts, plot(100, 100))
	if len(rec.Fills())+len(rec.Strokes()) != 0 {
		t.Error("fully transparent run should draw nothing")
	}
}

func TestDefaultLine(t *testing.T) {
	l := DefaultLine(gg.RGBA{B: 1, A: 1})
	if l.Thickness != 2 || l.Cap != gg.LineCapRound || l.Connector.Kind != ConnectCubic {
		t.Errorf("DefaultLine = %+v", l)
	}
	if l.Area.Above.Top.A != 0.5 || l.Area.Above.Bottom.A != 0 || l.Area.Below.Bottom.A != 0.5 {
		t.Errorf("area fades = %+v", l.Area)
	}
}
