// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package chart

import (
	"fmt"

	"github.com/gogpu/chart/entry"
	"github.com/gogpu/chart/layer"
	"github.com/gogpu/chart/line"
	"github.com/gogpu/chart/surface"
	"github.com/gogpu/chart/values"
)

// LayerKind identifies the variant held by a Layer.
type LayerKind uint8

const (
	KindLine LayerKind = iota
	KindColumn
	KindCandlestick
)

// String returns the kind name.
func (k LayerKind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindColumn:
		return "column"
	case KindCandlestick:
		return "candlestick"
	default:
		return fmt.Sprintf("LayerKind(%d)", k)
	}
}

// VerticalAxis selects the y axis a layer is scaled against.
type VerticalAxis uint8

const (
	// AxisStart is the axis on the left of the plot.
	AxisStart VerticalAxis = iota
	// AxisEnd is the axis on the right of the plot.
	AxisEnd
)

// Layer is one data layer bound to its producer. Build layers with
// LineLayer, ColumnLayer or CandlestickLayer; With* methods return
// modified copies.
type Layer struct {
	kind     LayerKind
	axis     VerticalAxis
	override *values.Override

	lineSource   *entry.Producer[entry.LineEntry]
	candleSource *entry.Producer[entry.CandlestickEntry]

	lines   *layer.Lines
	columns *layer.Columns
	candles *layer.Candles
}

// LineLayer draws the series of p as lines. Series i uses styles[i], and
// styles repeat when there are more series. Without styles, series use
// DefaultLine with the palette colours.
func LineLayer(p *entry.Producer[entry.LineEntry], styles ...*line.Line) Layer {
	if len(styles) == 0 {
		styles = make([]*line.Line, len(Palette))
		for i, c := range Palette {
			styles[i] = line.DefaultLine(c)
		}
	}
	return Layer{kind: KindLine, lineSource: p, lines: &layer.Lines{Styles: styles}}
}

// ColumnLayer draws the series of p as grouped columns. A nil c uses the
// palette with the default geometry.
func ColumnLayer(p *entry.Producer[entry.LineEntry], c *layer.Columns) Layer {
	if c == nil {
		c = &layer.Columns{
			Thickness: layer.DefaultColumnThickness,
			Spacing:   layer.DefaultColumnSpacing,
		}
		for _, col := range Palette {
			c.Shaders = append(c.Shaders, surface.Solid(col))
		}
	}
	return Layer{kind: KindColumn, lineSource: p, columns: c}
}

// CandlestickLayer draws the candles of p. A nil c uses layer.DefaultCandles.
func CandlestickLayer(p *entry.Producer[entry.CandlestickEntry], c *layer.Candles) Layer {
	if c == nil {
		c = layer.DefaultCandles()
	}
	return Layer{kind: KindCandlestick, candleSource: p, candles: c}
}

// Kind returns the layer variant.
func (l Layer) Kind() LayerKind { return l.kind }

// Axis returns the vertical axis the layer is scaled against.
func (l Layer) Axis() VerticalAxis { return l.axis }

// WithAxis returns a copy of l scaled against axis a.
func (l Layer) WithAxis(a VerticalAxis) Layer {
	l.axis = a
	return l
}

// WithOverride returns a copy of l whose range is adjusted by ov before it
// is merged with the other layers.
func (l Layer) WithOverride(ov *values.Override) Layer {
	l.override = ov
	return l
}

// Lines returns the line styles of a line layer, or nil.
func (l Layer) Lines() *layer.Lines { return l.lines }

// version returns the producer version, 0 when nothing was published.
func (l Layer) version() uint64 {
	if l.kind == KindCandlestick {
		if l.candleSource == nil {
			return 0
		}
		return l.candleSource.Version()
	}
	if l.lineSource == nil {
		return 0
	}
	return l.lineSource.Version()
}

// animated reports whether the layer is drawn through a drawing model.
func (l Layer) animated() bool { return l.kind != KindCandlestick }

// inset returns the horizontal room the layer needs beyond the first and
// last x so that its shapes are not cut by the plot edge.
func (l Layer) inset(series int) float64 {
	switch l.kind {
	case KindColumn:
		return l.columns.GroupWidth(series) / 2
	case KindCandlestick:
		return l.candles.BodyWidth / 2
	default:
		return 0
	}
}
