// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package values

// Resolve computes the chart domain for a model.
//
// With a nil override Resolve returns the model bounds. Otherwise every
// bound is computed independently from the model bounds. When the result is
// not a valid range Resolve returns the unmodified model bounds together
// with an *InvalidRangeError, so callers can log the error and keep drawing.
func Resolve(e Extents, ov *Override) (Values, error) {
	base := FromExtents(e)
	if ov == nil {
		return base, nil
	}

	v := Values{
		MinX:  ov.MinX.apply(base.MinX, base.LengthX(), true),
		MaxX:  ov.MaxX.apply(base.MaxX, base.LengthX(), false),
		StepX: base.StepX,
		MinY:  ov.MinY.apply(base.MinY, base.LengthY(), true),
		MaxY:  ov.MaxY.apply(base.MaxY, base.LengthY(), false),
	}
	if ov.StepX > 0 {
		v.StepX = ov.StepX
	}

	if !validRange(v.MinX, v.MaxX) {
		return base, &InvalidRangeError{Axis: "x", Min: v.MinX, Max: v.MaxX}
	}
	if !validRange(v.MinY, v.MaxY) {
		return base, &InvalidRangeError{Axis: "y", Min: v.MinY, Max: v.MaxY}
	}
	return v, nil
}
