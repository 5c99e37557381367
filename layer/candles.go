// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layer

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/chart/entry"
	"github.com/gogpu/chart/surface"
)

// CandleStyle paints one kind of candle.
type CandleStyle struct {
	Body surface.Shader
	Wick surface.Shader
}

// Candles draws candlestick series straight from the entry model. Hollow
// candles have their body outlined instead of filled.
type Candles struct {
	Increase CandleStyle
	Decrease CandleStyle
	Zero     CandleStyle

	// BodyWidth and WickWidth are in pixels.
	BodyWidth float64
	WickWidth float64
}

// DefaultCandles returns green rising, red falling and grey unchanged
// candles.
func DefaultCandles() *Candles {
	green, red, grey := gg.Hex("#0ac285"), gg.Hex("#e8304f"), gg.Hex("#9e9e9e")
	return &Candles{
		Increase:  CandleStyle{Body: surface.Solid(green), Wick: surface.Solid(green)},
		Decrease:  CandleStyle{Body: surface.Solid(red), Wick: surface.Solid(red)},
		Zero:      CandleStyle{Body: surface.Solid(grey), Wick: surface.Solid(grey)},
		BodyWidth: 8,
		WickWidth: 1,
	}
}

// Style returns the style for a candle type.
func (c *Candles) Style(t entry.CandlestickType) CandleStyle {
	switch t.Change {
	case entry.Increase:
		return c.Increase
	case entry.Decrease:
		return c.Decrease
	default:
		return c.Zero
	}
}

// Draw renders every candle of m into s.
func (c *Candles) Draw(s surface.Surface, m *entry.Model[entry.CandlestickEntry], t Transform) {
	if m == nil {
		return
	}
	s.PushClip(t.Bounds)
	defer s.PopClip()

	for i := range m.SeriesCount() {
		for _, e := range m.Series(i) {
			c.drawCandle(s, e, t)
		}
	}
}

func (c *Candles) drawCandle(s surface.Surface, e entry.CandlestickEntry, t Transform) {
	typ := e.Type()
	st := c.Style(typ)
	x := t.X(e.X)

	top, bottom := t.Y(math.Max(e.Open, e.Close)), t.Y(math.Min(e.Open, e.Close))
	if bottom-top < 1 {
		mid := (top + bottom) / 2
		top, bottom = mid-0.5, mid+0.5
	}

	if c.WickWidth > 0 {
		// The wick stops at the body so hollow bodies stay empty.
		wick := gg.NewPath()
		if high := t.Y(e.High); high < top {
			wick.MoveTo(x, high)
			wick.LineTo(x, top)
		}
		if low := t.Y(e.Low); low > bottom {
			wick.MoveTo(x, bottom)
			wick.LineTo(x, low)
		}
		s.Stroke(wick, surface.StrokeStyle{Shader: st.Wick, Width: c.WickWidth, Cap: gg.LineCapButt})
	}
	if c.BodyWidth <= 0 {
		return
	}

	body := gg.NewPath()
	body.Rectangle(x-c.BodyWidth/2, top, c.BodyWidth, bottom-top)
	if typ.Hollow {
		s.Stroke(body, surface.StrokeStyle{Shader: st.Body, Width: max(1, c.WickWidth), Join: gg.LineJoinMiter})
		return
	}
	s.Fill(body, surface.FillStyle{Shader: st.Body})
}
