// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package chart

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/chart/surface"
)

// Legend lists labelled colour icons below the plot, one item per row.
type Legend struct {
	Items []LegendItem

	// Text styles the item labels.
	Text surface.TextStyle
	// IconSize is the side of the square icon in pixels.
	IconSize float64
	// Spacing separates rows, the icon from its label and the legend from
	// the plot, in pixels.
	Spacing float64
}

// LegendItem is one row of a legend.
type LegendItem struct {
	Label  string
	Shader surface.Shader
}

// Legend defaults, in pixels.
const (
	DefaultLegendIconSize = 10
	DefaultLegendSpacing  = 6
)

// NewLegend returns a legend with the default geometry and one item per
// label, coloured from the palette.
func NewLegend(labels ...string) *Legend {
	l := &Legend{
		Text:     surface.TextStyle{Color: gg.Hex("#424242"), Size: surface.DefaultTextSize},
		IconSize: DefaultLegendIconSize,
		Spacing:  DefaultLegendSpacing,
	}
	for i, label := range labels {
		l.Items = append(l.Items, LegendItem{
			Label:  label,
			Shader: surface.Solid(Palette[i%len(Palette)]),
		})
	}
	return l
}

func (l *Legend) rowHeight(s surface.Surface, item LegendItem) float64 {
	_, h := s.MeasureText(item.Label, l.Text)
	return max(h, l.IconSize)
}

// height returns the room the legend needs, including the gap above it.
func (l *Legend) height(s surface.Surface) float64 {
	if len(l.Items) == 0 {
		return 0
	}
	h := 0.0
	for _, item := range l.Items {
		h += l.Spacing + l.rowHeight(s, item)
	}
	return h
}

// draw lays the rows out from top, aligned with left.
func (l *Legend) draw(s surface.Surface, left, top float64) {
	y := top
	for _, item := range l.Items {
		y += l.Spacing
		rh := l.rowHeight(s, item)
		if l.IconSize > 0 {
			iy := y + (rh-l.IconSize)/2
			icon := gg.NewPath()
			icon.Rectangle(left, iy, l.IconSize, l.IconSize)
			s.Fill(icon, surface.FillStyle{Shader: item.Shader})
		}
		_, th := s.MeasureText(item.Label, l.Text)
		s.DrawText(item.Label, gg.Pt(left+l.IconSize+l.Spacing, y+(rh-th)/2), l.Text)
		y += rh
	}
}
