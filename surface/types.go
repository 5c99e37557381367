// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// ShaderKind identifies the variant held by a Shader.
type ShaderKind uint8

const (
	// ShaderSolid paints a single colour.
	ShaderSolid ShaderKind = iota
	// ShaderVerticalGradient blends from Top to Bottom over the style extent.
	ShaderVerticalGradient
)

// String returns the shader kind name.
func (k ShaderKind) String() string {
	switch k {
	case ShaderSolid:
		return "solid"
	case ShaderVerticalGradient:
		return "vertical-gradient"
	default:
		return fmt.Sprintf("ShaderKind(%d)", k)
	}
}

// Shader describes how a fill or stroke is coloured.
// Use Solid or VerticalGradient to build one.
type Shader struct {
	Kind ShaderKind

	// Top is the solid colour, or the gradient colour at the top edge.
	Top gg.RGBA
	// Bottom is the gradient colour at the bottom edge. Unused for solids.
	Bottom gg.RGBA
}

// Solid returns a single-colour shader.
func Solid(c gg.RGBA) Shader {
	return Shader{Kind: ShaderSolid, Top: c, Bottom: c}
}

// VerticalGradient returns a shader blending from top to bottom.
func VerticalGradient(top, bottom gg.RGBA) Shader {
	return Shader{Kind: ShaderVerticalGradient, Top: top, Bottom: bottom}
}

// At returns the colour at relative height t, where 0 is the top of the
// extent and 1 the bottom.
func (s Shader) At(t float64) gg.RGBA {
	if s.Kind == ShaderSolid {
		return s.Top
	}
	t = max(0, min(1, t))
	return s.Top.Lerp(s.Bottom, t)
}

// WithOpacity scales the alpha of every colour of the shader by a.
func (s Shader) WithOpacity(a float64) Shader {
	a = max(0, min(1, a))
	s.Top.A *= a
	s.Bottom.A *= a
	return s
}

// Transparent reports whether the shader paints nothing.
func (s Shader) Transparent() bool {
	return s.Top.A == 0 && s.Bottom.A == 0
}

// FillStyle describes a fill.
type FillStyle struct {
	Shader Shader

	// Extent is the rectangle a gradient spans. When empty, backends use the
	// bounding box of the filled path.
	Extent gg.Rect
}

// StrokeStyle describes a stroke.
type StrokeStyle struct {
	Shader Shader
	Width  float64
	Cap    gg.LineCap
	Join   gg.LineJoin

	// Extent is the rectangle a gradient spans, as for FillStyle.
	Extent gg.Rect
}

// DefaultTextSize is the font size used when TextStyle.Size is not positive.
const DefaultTextSize = 12

// TextStyle describes text drawn with DrawText.
type TextStyle struct {
	Color gg.RGBA
	// Size is the font size in pixels.
	Size float64
	// Rotation turns the text clockwise by this many degrees about the
	// centre of its box.
	Rotation float64
}

// FontSize returns Size, or DefaultTextSize when Size is not positive.
func (t TextStyle) FontSize() float64 {
	if t.Size <= 0 {
		return DefaultTextSize
	}
	return t.Size
}

// RotatedBounds returns the bounding box of r turned clockwise by deg
// degrees about its centre.
func RotatedBounds(r gg.Rect, deg float64) gg.Rect {
	if deg == 0 {
		return r
	}
	sin, cos := math.Sincos(deg * math.Pi / 180)
	sin, cos = math.Abs(sin), math.Abs(cos)
	w, h := r.Width(), r.Height()
	hw, hh := (w*cos+h*sin)/2, (w*sin+h*cos)/2
	cx, cy := (r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2
	return gg.Rect{Min: gg.Pt(cx-hw, cy-hh), Max: gg.Pt(cx+hw, cy+hh)}
}

// EmptyRect reports whether r has no area.
func EmptyRect(r gg.Rect) bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Intersect returns the overlap of a and b, or the zero Rect when they are
// disjoint.
func Intersect(a, b gg.Rect) gg.Rect {
	r := gg.Rect{
		Min: gg.Pt(max(a.Min.X, b.Min.X), max(a.Min.Y, b.Min.Y)),
		Max: gg.Pt(min(a.Max.X, b.Max.X), min(a.Max.Y, b.Max.Y)),
	}
	if EmptyRect(r) {
		return gg.Rect{}
	}
	return r
}

// Overlaps reports whether a and b share a region of positive area.
func Overlaps(a, b gg.Rect) bool {
	return !EmptyRect(Intersect(a, b))
}
