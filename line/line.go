// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package line

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/chart/format"
	"github.com/gogpu/chart/surface"
)

// Line styles a single series.
type Line struct {
	// Shader paints the line itself.
	Shader surface.Shader

	// Thickness is the stroke width in pixels. Zero hides the line but keeps
	// its area, points and labels.
	Thickness float64

	// Cap shapes the two ends of every run and of every dash. Joins are
	// always round.
	Cap gg.LineCap

	Connector Connector
	Pattern   Pattern

	// Area, when set, fills the region between the line and the baseline.
	Area *AreaFill

	// Point, when set, draws a marker on every point.
	Point *PointStyle

	// Label, when set, draws the formatted value of every point.
	Label *LabelStyle
}

// AreaFill paints the region between a line and the baseline. Parts of the
// line above the baseline use Above, parts below use Below. A gradient in
// Above spans the plot top to the baseline; in Below, the baseline to the
// plot bottom.
type AreaFill struct {
	Above surface.Shader
	Below surface.Shader
}

// PointShape is the marker drawn on a point.
type PointShape uint8

const (
	PointCircle PointShape = iota
	PointSquare
)

// PointStyle configures point markers.
type PointStyle struct {
	Shape  PointShape
	Size   float64
	Shader surface.Shader
}

// VerticalPosition places a label relative to its point.
type VerticalPosition uint8

const (
	PositionTop VerticalPosition = iota
	PositionCenter
	PositionBottom
)

// String returns the position name.
func (v VerticalPosition) String() string {
	switch v {
	case PositionCenter:
		return "center"
	case PositionBottom:
		return "bottom"
	default:
		return "top"
	}
}

// LabelStyle configures value labels.
type LabelStyle struct {
	Formatter format.Formatter
	Position  VerticalPosition
	// Text.Rotation turns each label about its centre. Placement and
	// overlap use the rotated bounds.
	Text surface.TextStyle

	// Margin is the gap in pixels between the point and the label box.
	Margin float64
}

// Default geometry, in pixels.
const (
	DefaultThickness   = 2
	DefaultLabelMargin = 4
	defaultAreaAlpha   = 0.5
)

// DefaultLine returns the standard style for a series drawn in c: a 2px
// cubic line with round caps, labels off, and an area that fades the line
// colour towards the baseline on both sides.
func DefaultLine(c gg.RGBA) *Line {
	strong, clear := c, c
	strong.A *= defaultAreaAlpha
	clear.A = 0
	return &Line{
		Shader:    surface.Solid(c),
		Thickness: DefaultThickness,
		Cap:       gg.LineCapRound,
		Connector: Cubic(DefaultTension),
		Pattern:   Continuous(),
		Area: &AreaFill{
			Above: surface.VerticalGradient(strong, clear),
			Below: surface.VerticalGradient(clear, strong),
		},
	}
}

// DefaultLabel returns the standard label style: decimal values above the
// point in the given colour.
func DefaultLabel(c gg.RGBA) *LabelStyle {
	return &LabelStyle{
		Formatter: format.Decimal(format.DefaultPlaces),
		Position:  PositionTop,
		Text:      surface.TextStyle{Color: c, Size: surface.DefaultTextSize},
		Margin:    DefaultLabelMargin,
	}
}
