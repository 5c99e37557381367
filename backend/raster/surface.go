// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"fmt"
	"image"
	"io"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/chart/internal/cache"
	"github.com/gogpu/chart/internal/logging"
	"github.com/gogpu/chart/surface"
)

func init() {
	surface.Register("raster", 10, func(opts surface.Options) (surface.Surface, error) {
		return New(opts.Width, opts.Height), nil
	}, nil)
}

// Surface draws onto a gg.Context.
type Surface struct {
	ctx   *gg.Context
	faces *cache.Cache[float64, text.Face]
}

// maxFaces bounds the number of font sizes kept per surface.
const maxFaces = 16

var (
	_ surface.Surface = (*Surface)(nil)
	_ surface.Encoder = (*Surface)(nil)
)

// New creates a transparent width x height surface.
func New(width, height int) *Surface {
	return &Surface{
		ctx:   gg.NewContext(width, height),
		faces: cache.New[float64, text.Face](maxFaces),
	}
}

var (
	fontOnce   sync.Once
	fontSource *text.FontSource
	fontErr    error
)

// defaultFont parses the embedded Go Regular font once.
func defaultFont() (*text.FontSource, error) {
	fontOnce.Do(func() {
		fontSource, fontErr = text.NewFontSource(goregular.TTF)
		if fontErr != nil {
			fontErr = fmt.Errorf("raster: load default font: %w", fontErr)
		}
	})
	return fontSource, fontErr
}

// Width implements surface.Surface.
func (s *Surface) Width() int { return s.ctx.Width() }

// Height implements surface.Surface.
func (s *Surface) Height() int { return s.ctx.Height() }

// Clear implements surface.Surface.
func (s *Surface) Clear(c gg.RGBA) {
	s.ctx.ClearWithColor(c)
}

// Fill implements surface.Surface.
func (s *Surface) Fill(path *gg.Path, style surface.FillStyle) {
	if !s.setPath(path) {
		return
	}
	s.ctx.SetFillBrush(brush(style.Shader, extentOf(style.Extent, path)))
	if err := s.ctx.Fill(); err != nil {
		logging.Logger().Warn("raster: fill failed", "error", err)
	}
}

// Stroke implements surface.Surface.
func (s *Surface) Stroke(path *gg.Path, style surface.StrokeStyle) {
	if style.Width <= 0 || !s.setPath(path) {
		return
	}
	s.ctx.SetStrokeBrush(brush(style.Shader, extentOf(style.Extent, path)))
	s.ctx.SetLineWidth(style.Width)
	s.ctx.SetLineCap(style.Cap)
	s.ctx.SetLineJoin(style.Join)
	if err := s.ctx.Stroke(); err != nil {
		logging.Logger().Warn("raster: stroke failed", "error", err)
	}
}

// DrawText implements surface.Surface.
func (s *Surface) DrawText(str string, at gg.Point, style surface.TextStyle) {
	face := s.face(style.FontSize())
	if face == nil || str == "" {
		return
	}
	if turn := math.Mod(style.Rotation, 360); turn != 0 && !math.IsNaN(turn) {
		s.drawRotatedText(str, at, style, face)
		return
	}
	s.ctx.SetFont(face)
	s.ctx.SetColor(style.Color.Color())
	s.ctx.DrawString(str, at.X, at.Y+face.Metrics().Ascent)
}

// drawRotatedText renders str upright on a scratch context, turns the
// pixels about the text centre and composites them onto the surface.
// gg.Context.DrawString ignores the current transform.
func (s *Surface) drawRotatedText(str string, at gg.Point, style surface.TextStyle, face text.Face) {
	m := face.Metrics()
	w, h := face.Advance(str), m.Ascent+m.Descent
	sw, sh := int(math.Ceil(w)), int(math.Ceil(h))
	if sw <= 0 || sh <= 0 {
		return
	}
	scratch := gg.NewContext(sw, sh)
	defer scratch.Close()
	scratch.SetFont(face)
	scratch.SetColor(style.Color.Color())
	scratch.DrawString(str, 0, m.Ascent)
	src := scratch.Image()

	box := surface.RotatedBounds(gg.Rect{Min: at, Max: gg.Pt(at.X+w, at.Y+h)}, style.Rotation)
	dst := image.NewRGBA(image.Rect(0, 0, int(math.Ceil(box.Width())), int(math.Ceil(box.Height()))))
	sin, cos := math.Sincos(style.Rotation * math.Pi / 180)
	scx, scy := float64(sw)/2, float64(sh)/2
	dcx, dcy := float64(dst.Rect.Dx())/2, float64(dst.Rect.Dy())/2
	// Source to destination: rotate about the source centre, then move it
	// onto the destination centre.
	aff := f64.Aff3{
		cos, -sin, dcx - cos*scx + sin*scy,
		sin, cos, dcy - sin*scx - cos*scy,
	}
	xdraw.BiLinear.Transform(dst, aff, src, src.Bounds(), xdraw.Over, nil)

	cx, cy := at.X+w/2, at.Y+h/2
	s.ctx.DrawImage(gg.ImageBufFromImage(dst), cx-dcx, cy-dcy)
}

// MeasureText implements surface.Surface. The height is ascent plus
// descent, the box DrawText covers.
func (s *Surface) MeasureText(str string, style surface.TextStyle) (w, h float64) {
	face := s.face(style.FontSize())
	if face == nil {
		return 0, 0
	}
	m := face.Metrics()
	return face.Advance(str), m.Ascent + m.Descent
}

// PushClip implements surface.Surface.
func (s *Surface) PushClip(r gg.Rect) {
	s.ctx.Push()
	s.ctx.ClipRect(r.Min.X, r.Min.Y, r.Width(), r.Height())
}

// PopClip implements surface.Surface.
func (s *Surface) PopClip() {
	s.ctx.Pop()
}

// Image returns the rendered image.
func (s *Surface) Image() image.Image { return s.ctx.Image() }

// EncodePNG writes the image as PNG.
func (s *Surface) EncodePNG(w io.Writer) error { return s.ctx.EncodePNG(w) }

// EncodeJPEG writes the image as JPEG with the given quality (1-100).
func (s *Surface) EncodeJPEG(w io.Writer, quality int) error {
	return s.ctx.EncodeJPEG(w, quality)
}

// SavePNG writes the image to a PNG file.
func (s *Surface) SavePNG(path string) error { return s.ctx.SavePNG(path) }

// Close releases the context.
func (s *Surface) Close() error { return s.ctx.Close() }

func (s *Surface) face(size float64) text.Face {
	src, err := defaultFont()
	if err != nil {
		logging.Logger().Warn("raster: text disabled", "error", err)
		return nil
	}
	return s.faces.GetOrCreate(size, func() text.Face { return src.Face(size) })
}

// setPath loads path into the context. It reports false for empty paths.
func (s *Surface) setPath(path *gg.Path) bool {
	if path == nil || len(path.Elements()) == 0 {
		return false
	}
	s.ctx.ClearPath()
	for _, el := range path.Elements() {
		switch e := el.(type) {
		case gg.MoveTo:
			s.ctx.MoveTo(e.Point.X, e.Point.Y)
		case gg.LineTo:
			s.ctx.LineTo(e.Point.X, e.Point.Y)
		case gg.QuadTo:
			s.ctx.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case gg.CubicTo:
			s.ctx.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case gg.Close:
			s.ctx.ClosePath()
		}
	}
	return true
}

// extentOf returns the gradient extent of a style, falling back to the
// bounds of the path.
func extentOf(extent gg.Rect, path *gg.Path) gg.Rect {
	if !surface.EmptyRect(extent) {
		return extent
	}
	return path.BoundingBox()
}

// brush converts a shader to a gg brush spanning extent.
func brush(sh surface.Shader, extent gg.Rect) gg.Brush {
	if sh.Kind != surface.ShaderVerticalGradient || sh.Top == sh.Bottom {
		return gg.Solid(sh.Top)
	}
	top, bottom := extent.Min.Y, extent.Max.Y
	if math.IsNaN(top) || math.IsNaN(bottom) || bottom <= top {
		return gg.Solid(sh.Top.Lerp(sh.Bottom, 0.5))
	}
	return gg.NewLinearGradientBrush(0, top, 0, bottom).
		AddColorStop(0, sh.Top).
		AddColorStop(1, sh.Bottom)
}
