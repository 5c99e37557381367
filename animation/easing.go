// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package animation

import "github.com/gogpu/gg"

// EasingKind selects a timing curve.
type EasingKind uint8

const (
	// EaseLinear maps time to progress unchanged.
	EaseLinear EasingKind = iota
	// EaseCubicBezier follows a CSS-style cubic-bezier(x1, y1, x2, y2) curve.
	EaseCubicBezier
)

// Easing maps the elapsed fraction of a transition to its progress.
// Every easing is monotonically non-decreasing with Apply(0) = 0 and
// Apply(1) = 1.
type Easing struct {
	Kind           EasingKind
	X1, Y1, X2, Y2 float64
}

// Linear is the identity easing.
func Linear() Easing { return Easing{} }

// CubicBezier returns a cubic-bezier easing. x1 and x2 are clamped to [0, 1]
// so the curve stays a function of time.
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	return Easing{Kind: EaseCubicBezier, X1: clamp01(x1), Y1: y1, X2: clamp01(x2), Y2: y2}
}

// FastOutSlowIn is the standard material motion curve, cubic-bezier(0.4, 0, 0.2, 1).
func FastOutSlowIn() Easing { return CubicBezier(0.4, 0, 0.2, 1) }

// Apply returns the progress at time fraction t. t is clamped to [0, 1].
func (e Easing) Apply(t float64) float64 {
	t = clamp01(t)
	if e.Kind != EaseCubicBezier || t == 0 || t == 1 {
		return t
	}

	// x(s) = (3x1 - 3x2 + 1)s³ + (3x2 - 6x1)s² + 3x1·s; solve x(s) = t.
	a := 3*e.X1 - 3*e.X2 + 1
	b := 3*e.X2 - 6*e.X1
	c := 3 * e.X1
	s := t
	if roots := gg.SolveCubicInUnitInterval(a, b, c, -t); len(roots) > 0 {
		s = roots[0]
	}
	return bezierComponent(e.Y1, e.Y2, s)
}

// bezierComponent evaluates one coordinate of a cubic Bezier from 0 to 1
// with inner control values p1 and p2.
func bezierComponent(p1, p2, s float64) float64 {
	ms := 1 - s
	return 3*ms*ms*s*p1 + 3*ms*s*s*p2 + s*s*s
}
