// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package chart

import "github.com/gogpu/gg"

// Chart describes what a Host draws. Nil axes, legend and marker are not
// drawn.
//
// A Chart is read by its Host on every Advance and Draw; change it only
// from the goroutine that drives the Host.
type Chart struct {
	// Layers are drawn in order, the first one at the bottom.
	Layers []Layer

	// StartAxis labels the y range of layers on AxisStart.
	StartAxis *Axis
	// EndAxis labels the y range of layers on AxisEnd.
	EndAxis *Axis
	// BottomAxis labels the shared x range.
	BottomAxis *Axis

	Legend *Legend
	Marker *Marker

	// Padding is the empty margin around the chart in pixels.
	Padding float64

	// Background fills the whole surface before anything is drawn.
	Background gg.RGBA
}

// axis returns the vertical axis at position a.
func (c *Chart) axis(a VerticalAxis) *Axis {
	if a == AxisEnd {
		return c.EndAxis
	}
	return c.StartAxis
}
