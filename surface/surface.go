// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"io"

	"github.com/gogpu/gg"
)

// Surface is a 2D drawing target in pixel coordinates with y pointing down.
//
// Paths passed to Fill and Stroke are not retained or modified. Surfaces are
// not safe for concurrent use.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Clear paints the whole surface with c, ignoring clips.
	Clear(c gg.RGBA)

	// Fill fills path with the non-zero winding rule.
	Fill(path *gg.Path, style FillStyle)

	// Stroke strokes path.
	Stroke(path *gg.Path, style StrokeStyle)

	// DrawText draws a single line of text with its top-left corner at at.
	DrawText(text string, at gg.Point, style TextStyle)

	// MeasureText returns the size of the box DrawText would cover.
	MeasureText(text string, style TextStyle) (w, h float64)

	// PushClip intersects the current clip with r until the matching PopClip.
	PushClip(r gg.Rect)

	// PopClip restores the clip saved by the last PushClip.
	PopClip()
}

// Encoder is implemented by surfaces that can export their pixels.
type Encoder interface {
	EncodePNG(w io.Writer) error
	EncodeJPEG(w io.Writer, quality int) error
}

// Options configures a surface created through the registry.
type Options struct {
	// Width and Height are the surface size in pixels.
	Width, Height int

	// Background, when non-zero, is painted right after creation.
	Background gg.RGBA
}
