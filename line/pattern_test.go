// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package line

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func moveTos(p *gg.Path) []gg.Point {
	var out []gg.Point
	for _, el := range p.Elements() {
		if m, ok := el.(gg.MoveTo); ok {
			out = append(out, m.Point)
		}
	}
	return out
}

// everywhere is a clip rectangle that contains every test path.
var everywhere = gg.Rect{Min: gg.Pt(-1e3, -1e3), Max: gg.Pt(1e3, 1e3)}

func near(a, b gg.Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestDashPhaseResetsPerSubpath(t *testing.T) {
	path := gg.NewPath()
	path.MoveTo(0, 0)
	path.LineTo(15, 0)
	path.MoveTo(0, 10)
	path.LineTo(15, 10)

	dashed := Dash(path, Dashed(4, 2), everywhere)
	want := []gg.Point{{X: 0, Y: 0}, {X: 6, Y: 0}, {X: 12, Y: 0}, {X: 0, Y: 10}, {X: 6, Y: 10}, {X: 12, Y: 10}}
	got := moveTos(dashed)
	if len(got) != len(want) {
		t.Fatalf("dash starts = %v, want %v", got, want)
	}
	for i := range want {
		if !near(got[i], want[i]) {
			t.Errorf("dash %d starts at %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDashFollowsCorners(t *testing.T) {
	path := gg.NewPath()
	path.MoveTo(0, 0)
	path.LineTo(3, 0)
	path.LineTo(3, 3)

	got := endpoints(Dash(path, Dashed(4, 10), everywhere))
	want := []gg.Point{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 1}}
	if len(got) != len(want) {
		t.Fatalf("dash = %v, want %v", got, want)
	}
	for i := range want {
		if !near(got[i], want[i]) {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDashCurves(t *testing.T) {
	path := gg.NewPath()
	path.MoveTo(0, 0)
	path.CubicTo(10, 0, 10, 20, 20, 20)

	dashed := Dash(path, Dashed(2, 2), everywhere)
	if n := len(moveTos(dashed)); n < 5 {
		t.Errorf("curve produced %d dashes, want several", n)
	}
	for _, el := range dashed.Elements() {
		if _, ok := el.(gg.CubicTo); ok {
			t.Fatal("dashed curve should be flattened")
		}
	}
}

func TestDashClipKeepsPhase(t *testing.T) {
	path := gg.NewPath()
	path.MoveTo(-1e6, 0)
	path.LineTo(100, 0)

	clip := gg.Rect{Min: gg.Pt(0, -10), Max: gg.Pt(100, 10)}
	got := moveTos(Dash(path, Dashed(4, 6), clip))
	if len(got) != 10 {
		t.Fatalf("got %d dashes inside clip, want 10: %v", len(got), got)
	}
	for i, p := range got {
		if want := float64(10 * i); math.Abs(p.X-want) > 1e-6 {
			t.Errorf("dash %d starts at x=%v, want %v", i, p.X, want)
		}
	}
}

func TestDashClipSkipsOutside(t *testing.T) {
	path := gg.NewPath()
	path.MoveTo(0, 50)
	path.LineTo(50, -1e9)
	path.LineTo(100, 50)

	clip := gg.Rect{Max: gg.Pt(100, 100)}
	dashed := Dash(path, Dashed(4, 4), clip)
	if n := len(dashed.Elements()); n > 40 {
		t.Errorf("dashed path has %d elements, want only the visible dashes", n)
	}
	for _, p := range endpoints(dashed) {
		if p.Y < -1e-3 {
			t.Fatalf("dash point %v lies outside clip", p)
		}
	}
}

func TestPatternDash(t *testing.T) {
	if Continuous().Dash() != nil {
		t.Error("continuous pattern has a dash")
	}
	d := Dashed(3, 5).Dash()
	if d == nil || d.PatternLength() != 8 {
		t.Errorf("Dashed(3, 5).Dash() = %+v, want cycle 8", d)
	}
}

func TestContinuousPattern(t *testing.T) {
	path := gg.NewPath()
	path.MoveTo(0, 0)
	path.LineTo(10, 0)

	if Dash(path, Continuous(), everywhere) != path {
		t.Error("continuous pattern should return the path unchanged")
	}
	for _, p := range []Pattern{Dashed(0, 2), Dashed(2, 0), Dashed(math.NaN(), 1)} {
		if p.IsDashed() {
			t.Errorf("%+v should be continuous", p)
		}
	}
}
