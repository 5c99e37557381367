// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package line

import (
	"math"
	"slices"

	"github.com/gogpu/gg"
)

// side tells on which side of the baseline a piece lies. Pixel y grows
// downwards, so "above" means y < baseline.
type side int8

const (
	sideAbove side = iota
	sideBelow
)

// region is a closed area between part of a run and the baseline.
type region struct {
	side side
	path *gg.Path
}

// splitAtBaseline cuts every piece where it crosses y = baseline so that
// each resulting piece lies entirely on one side.
func splitAtBaseline(ps []piece, baseline float64) []piece {
	out := make([]piece, 0, len(ps))
	for _, p := range ps {
		ts := crossings(p, baseline)
		if len(ts) == 0 {
			out = append(out, p)
			continue
		}
		prev := 0.0
		for _, t := range ts {
			out = append(out, p.sub(prev, t))
			prev = t
		}
		out = append(out, p.sub(prev, 1))
	}
	return out
}

// crossings returns the sorted parameters in (0, 1) where p meets the
// baseline.
func crossings(p piece, baseline float64) []float64 {
	const eps = 1e-9
	var roots []float64
	if p.cubic {
		y0 := p.bez.P0.Y - baseline
		y1 := p.bez.P1.Y - baseline
		y2 := p.bez.P2.Y - baseline
		y3 := p.bez.P3.Y - baseline
		// Power basis of y(t) - baseline.
		a := -y0 + 3*y1 - 3*y2 + y3
		b := 3*y0 - 6*y1 + 3*y2
		c := -3*y0 + 3*y1
		roots = gg.SolveCubicInUnitInterval(a, b, c, y0)
	} else {
		y0 := p.bez.P0.Y - baseline
		y3 := p.bez.P3.Y - baseline
		if (y0 < 0) != (y3 < 0) && y0 != y3 {
			roots = []float64{y0 / (y0 - y3)}
		}
	}

	out := roots[:0:0]
	for _, t := range roots {
		if t > eps && t < 1-eps {
			out = append(out, t)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// sideOf classifies a piece that does not cross the baseline. A piece lying
// on the baseline takes the side of the piece before it.
func sideOf(p piece, baseline float64, prev side) side {
	y := p.eval(0.5).Y
	switch {
	case y < baseline:
		return sideAbove
	case y > baseline:
		return sideBelow
	default:
		return prev
	}
}

// areaRegions returns the closed regions between one run and the baseline,
// one per maximal stretch of the run on the same side.
func areaRegions(ps []piece, baseline float64) []region {
	ps = splitAtBaseline(ps, baseline)
	if len(ps) == 0 {
		return nil
	}

	var out []region
	cur := sideOf(ps[0], baseline, sideAbove)
	first := 0
	emit := func(last int) {
		start, end := ps[first].start(), ps[last].end()
		path := gg.NewPath()
		path.MoveTo(start.X, baseline)
		path.LineTo(start.X, start.Y)
		for _, p := range ps[first : last+1] {
			p.appendTo(path)
		}
		path.LineTo(end.X, baseline)
		path.Close()
		out = append(out, region{side: cur, path: path})
	}

	for i := 1; i < len(ps); i++ {
		s := sideOf(ps[i], baseline, cur)
		if s != cur {
			emit(i - 1)
			cur, first = s, i
		}
	}
	emit(len(ps) - 1)
	return out
}

// finite reports whether both coordinates of p are finite.
func finite(p gg.Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
