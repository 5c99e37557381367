// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package values resolves the axis domain a chart uses to scale a model to
// pixels.
//
// Resolve is a pure function of the model extrema and an optional Override:
// the same inputs always produce the same Values.
package values

import "math"

// Extents is implemented by entry.Model.
type Extents interface {
	MinX() float64
	MaxX() float64
	MinY() float64
	MaxY() float64
	StepX() float64
}

// Values is the resolved domain of a chart.
type Values struct {
	MinX  float64
	MaxX  float64
	StepX float64
	MinY  float64
	MaxY  float64
}

// FromExtents copies the model bounds without any override.
func FromExtents(e Extents) Values {
	return Values{
		MinX:  e.MinX(),
		MaxX:  e.MaxX(),
		StepX: e.StepX(),
		MinY:  e.MinY(),
		MaxY:  e.MaxY(),
	}
}

// LengthX returns MaxX - MinX.
func (v Values) LengthX() float64 { return v.MaxX - v.MinX }

// LengthY returns MaxY - MinY.
func (v Values) LengthY() float64 { return v.MaxY - v.MinY }

// DrawnEntryCount returns the number of x steps the chart displays:
// floor((|MaxX| - |MinX|) / StepX) + 1.
//
// The absolute values only give the expected count when MinX and MaxX are on
// the same side of zero. For a domain that straddles zero the result is too
// small and may be negative; callers relying on it for such domains should
// use LengthX instead. It returns 0 when StepX is not positive.
func (v Values) DrawnEntryCount() int {
	if !(v.StepX > 0) {
		return 0
	}
	return int(math.Floor((math.Abs(v.MaxX)-math.Abs(v.MinX))/v.StepX)) + 1
}

// Merge returns the union of a and b: the widest bounds and the smaller step.
// Layers sharing an axis are merged before they are drawn.
func Merge(a, b Values) Values {
	return Values{
		MinX:  math.Min(a.MinX, b.MinX),
		MaxX:  math.Max(a.MaxX, b.MaxX),
		StepX: math.Min(a.StepX, b.StepX),
		MinY:  math.Min(a.MinY, b.MinY),
		MaxY:  math.Max(a.MaxY, b.MaxY),
	}
}
