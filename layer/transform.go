// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package layer maps chart values to pixels and draws the built-in layer
// kinds: lines, grouped columns and candlesticks.
package layer

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/chart/values"
)

// Transform maps domain coordinates to pixels inside Bounds:
//
//	pixelX = Bounds.Min.X + (x - MinX) / LengthX * width
//	pixelY = Bounds.Max.Y - (y - MinY) / LengthY * height
//
// When a length is zero every value maps to the centre of that axis.
type Transform struct {
	Values values.Values
	Bounds gg.Rect
}

// FractionX returns the relative position of x in [MinX, MaxX], 0.5 when the
// x length is zero. Values outside the domain give fractions outside [0, 1].
func (t Transform) FractionX(x float64) float64 {
	l := t.Values.LengthX()
	if l == 0 {
		return 0.5
	}
	return (x - t.Values.MinX) / l
}

// FractionY returns the relative position of y in [MinY, MaxY], 0.5 when the
// y length is zero.
func (t Transform) FractionY(y float64) float64 {
	l := t.Values.LengthY()
	if l == 0 {
		return 0.5
	}
	return (y - t.Values.MinY) / l
}

// X returns the pixel x of domain x.
func (t Transform) X(x float64) float64 {
	return t.Bounds.Min.X + t.FractionX(x)*t.Bounds.Width()
}

// Y returns the pixel y of domain y.
func (t Transform) Y(y float64) float64 {
	return t.Bounds.Max.Y - t.FractionY(y)*t.Bounds.Height()
}

// Point returns the pixel position of (x, y).
func (t Transform) Point(x, y float64) gg.Point {
	return gg.Pt(t.X(x), t.Y(y))
}

// Unit returns the pixel position of a point given in fractions of the plot,
// with y pointing up.
func (t Transform) Unit(fx, fy float64) gg.Point {
	return gg.Pt(
		t.Bounds.Min.X+fx*t.Bounds.Width(),
		t.Bounds.Max.Y-fy*t.Bounds.Height(),
	)
}

// ValueX returns the domain x at pixel px. It is the inverse of X except for
// a zero x length, where it returns MinX.
func (t Transform) ValueX(px float64) float64 {
	w := t.Bounds.Width()
	if w == 0 {
		return t.Values.MinX
	}
	return t.Values.MinX + (px-t.Bounds.Min.X)/w*t.Values.LengthX()
}

// ValueY returns the domain y at pixel py. It is the inverse of Y except for
// a zero y length, where it returns MinY.
func (t Transform) ValueY(py float64) float64 {
	h := t.Bounds.Height()
	if h == 0 {
		return t.Values.MinY
	}
	return t.Values.MinY + (t.Bounds.Max.Y-py)/h*t.Values.LengthY()
}

// StepWidth returns the pixel width of one x step.
func (t Transform) StepWidth() float64 {
	l := t.Values.LengthX()
	if l == 0 {
		return t.Bounds.Width()
	}
	return t.Values.StepX / l * t.Bounds.Width()
}

// Inset returns a copy whose bounds are shrunk by dx on the left and right.
func (t Transform) Inset(dx float64) Transform {
	dx = min(dx, t.Bounds.Width()/2)
	t.Bounds.Min.X += dx
	t.Bounds.Max.X -= dx
	return t
}
