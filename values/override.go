// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package values

import (
	"fmt"
	"math"
)

// BoundKind selects how a single bound is computed.
type BoundKind uint8

const (
	// BoundAuto keeps the model value.
	BoundAuto BoundKind = iota
	// BoundFixed replaces the model value with Bound.Value.
	BoundFixed
	// BoundClampZero moves a minimum of non-negative data, or a maximum of
	// non-positive data, to zero.
	BoundClampZero
	// BoundPadded moves the bound outwards by Bound.Value times the length
	// of the axis.
	BoundPadded
)

// Bound is one override policy. The zero value is BoundAuto.
type Bound struct {
	Kind  BoundKind
	Value float64
}

// Auto keeps the model bound.
func Auto() Bound { return Bound{} }

// Fixed forces the bound to v.
func Fixed(v float64) Bound { return Bound{Kind: BoundFixed, Value: v} }

// ClampZero anchors the bound at zero when the data does not cross it.
func ClampZero() Bound { return Bound{Kind: BoundClampZero} }

// Padded expands the bound by fraction of the axis length.
func Padded(fraction float64) Bound { return Bound{Kind: BoundPadded, Value: fraction} }

// String returns a short description of the bound.
func (b Bound) String() string {
	switch b.Kind {
	case BoundAuto:
		return "auto"
	case BoundFixed:
		return fmt.Sprintf("fixed(%g)", b.Value)
	case BoundClampZero:
		return "clamp-zero"
	case BoundPadded:
		return fmt.Sprintf("padded(%g)", b.Value)
	default:
		return "unknown"
	}
}

// apply computes the bound from the model value v, the model length of the
// axis and whether this is the lower bound of the axis.
func (b Bound) apply(v, length float64, lower bool) float64 {
	switch b.Kind {
	case BoundFixed:
		return b.Value
	case BoundClampZero:
		if lower && v >= 0 {
			return 0
		}
		if !lower && v <= 0 {
			return 0
		}
		return v
	case BoundPadded:
		if lower {
			return v - b.Value*length
		}
		return v + b.Value*length
	default:
		return v
	}
}

// Override replaces any of the four bounds of a model, and optionally its
// x step, without touching the model.
type Override struct {
	MinX Bound
	MaxX Bound
	MinY Bound
	MaxY Bound

	// StepX replaces the model step when positive.
	StepX float64
}

// StartAtZero is the override commonly used for column charts: the y axis
// starts at zero for non-negative data.
func StartAtZero() *Override {
	return &Override{MinY: ClampZero(), MaxY: ClampZero()}
}

// FixedY pins the y axis to [min, max].
func FixedY(min, max float64) *Override {
	return &Override{MinY: Fixed(min), MaxY: Fixed(max)}
}

// InvalidRangeError reports an override that produced an empty or
// non-finite range.
type InvalidRangeError struct {
	Axis     string
	Min, Max float64
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("values: invalid %s range [%g, %g]", e.Axis, e.Min, e.Max)
}

func validRange(min, max float64) bool {
	return !math.IsNaN(min) && !math.IsNaN(max) &&
		!math.IsInf(min, 0) && !math.IsInf(max, 0) && min <= max
}
