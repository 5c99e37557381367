// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package animation

import (
	"math"
	"testing"
	"time"
)

func TestAnimatorTransition(t *testing.T) {
	a := NewAnimator(100*time.Millisecond, Linear())
	first := model(0, []PointInfo{{0, 1, 1}})
	a.Jump(first)
	if a.Running() || a.Current() != first {
		t.Fatal("Jump should show the model immediately")
	}

	second := model(0, []PointInfo{{0, 0, 1}})
	a.Start(second)
	if !a.Running() {
		t.Fatal("Start should begin a transition")
	}
	if got := a.Advance(25 * time.Millisecond).Series[0][0].Y; math.Abs(got-0.75) > 1e-9 {
		t.Errorf("Y at 25%% = %v, want 0.75", got)
	}
	if got := a.Advance(-time.Second).Series[0][0].Y; math.Abs(got-0.75) > 1e-9 {
		t.Errorf("negative dt moved the animation: Y = %v", got)
	}
	a.Advance(time.Second)
	if a.Running() || a.Current() != second || a.Progress() != 1 {
		t.Errorf("transition did not complete: running=%v progress=%v", a.Running(), a.Progress())
	}
}

func TestAnimatorEntryAnimation(t *testing.T) {
	a := NewAnimator(time.Second, Linear())
	to := model(0.5, []PointInfo{{0, 1, 1}})
	a.Start(to)
	if got := a.Current().Series[0][0]; got.Y != 0.5 || got.Opacity != 0 {
		t.Errorf("first frame = %+v, want zero state", got)
	}
}

func TestAnimatorRetarget(t *testing.T) {
	a := NewAnimator(time.Second, Linear())
	a.Jump(model(0, []PointInfo{{0, 0, 1}}))
	a.Start(model(0, []PointInfo{{0, 1, 1}}))
	a.Advance(500 * time.Millisecond)

	a.Start(model(0, []PointInfo{{0, 0, 1}}))
	if got := a.Current().Series[0][0].Y; got != 0.5 {
		t.Errorf("retarget should continue from frame on screen, Y = %v", got)
	}
}

func TestAnimatorCancel(t *testing.T) {
	a := NewAnimator(time.Second, Linear())
	a.Jump(model(0, []PointInfo{{0, 0, 1}}))
	a.Start(model(0, []PointInfo{{0, 1, 1}}))
	frame := a.Advance(200 * time.Millisecond)
	a.Cancel()
	if a.Running() {
		t.Error("Cancel should stop the transition")
	}
	if a.Advance(time.Second) != frame {
		t.Error("cancelled animator should keep the frame on screen")
	}
}

func TestAnimatorZeroDuration(t *testing.T) {
	a := NewAnimator(0, FastOutSlowIn())
	to := model(0, []PointInfo{{0, 1, 1}})
	a.Start(to)
	if a.Running() || a.Current() != to {
		t.Error("zero duration should finish immediately")
	}
}

func TestEasing(t *testing.T) {
	for _, e := range []Easing{Linear(), FastOutSlowIn(), CubicBezier(0.25, 0.1, 0.25, 1)} {
		if e.Apply(0) != 0 || e.Apply(1) != 1 {
			t.Errorf("%+v endpoints = %v, %v", e, e.Apply(0), e.Apply(1))
		}
		prev := 0.0
		for i := 1; i <= 100; i++ {
			p := e.Apply(float64(i) / 100)
			if p < prev-1e-9 {
				t.Errorf("%+v not monotonic at %d: %v < %v", e, i, p, prev)
				break
			}
			prev = p
		}
	}
	if got := FastOutSlowIn().Apply(0.5); got <= 0.5 {
		t.Errorf("FastOutSlowIn(0.5) = %v, want > 0.5", got)
	}
	if got := Linear().Apply(2); got != 1 {
		t.Errorf("Linear(2) = %v, want 1", got)
	}
}
