// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package line

import (
	"math"

	"github.com/gogpu/gg"
)

// PatternKind identifies the variant held by a Pattern.
type PatternKind uint8

const (
	PatternContinuous PatternKind = iota
	PatternDashed
)

// Pattern is the stroke pattern of a line.
type Pattern struct {
	Kind PatternKind

	// DashLength and GapLength are in pixels. Used by dashed patterns.
	DashLength float64
	GapLength  float64
}

// Continuous draws an unbroken line.
func Continuous() Pattern { return Pattern{Kind: PatternContinuous} }

// Dashed alternates dash and gap pixels. Non-positive lengths give a
// continuous pattern.
func Dashed(dash, gap float64) Pattern {
	if !(dash > 0) || !(gap > 0) {
		return Continuous()
	}
	return Pattern{Kind: PatternDashed, DashLength: dash, GapLength: gap}
}

// IsDashed reports whether the pattern breaks the line.
func (p Pattern) IsDashed() bool {
	return p.Kind == PatternDashed && p.DashLength > 0 && p.GapLength > 0
}

// Dash returns the gg dash pattern of p, or nil for a continuous pattern.
func (p Pattern) Dash() *gg.Dash {
	if !p.IsDashed() {
		return nil
	}
	return gg.NewDash(p.DashLength, p.GapLength)
}

// flattenTolerance is the maximum distance in pixels between a curve and
// the polyline that replaces it while dashing.
const flattenTolerance = 0.2

// Dash splits path into the dashes of pattern. Every sub-path of path starts
// at the beginning of a dash. Curves are flattened. Only dashes inside clip
// are emitted; the pattern still advances through the parts outside it, so
// dashes keep their positions. A continuous pattern returns path unchanged.
func Dash(path *gg.Path, pattern Pattern, clip gg.Rect) *gg.Path {
	d := pattern.Dash()
	if path == nil || d == nil {
		return path
	}

	out := gg.NewPath()
	w := newDasher(out, d)
	for _, poly := range polylines(path) {
		w.polyline(poly, clip)
	}
	return out
}

// dasher walks a dash pattern along polylines.
type dasher struct {
	out     *gg.Path
	lengths []float64
	cycle   float64

	i       int     // current pattern entry; even entries are dashes
	left    float64 // length remaining in entry i
	penDown bool
}

func newDasher(out *gg.Path, d *gg.Dash) *dasher {
	return &dasher{out: out, lengths: d.Array, cycle: d.PatternLength()}
}

// polyline emits the dashes of one sub-path, starting a fresh dash at its
// first point.
func (d *dasher) polyline(poly []gg.Point, clip gg.Rect) {
	d.i, d.left, d.penDown = 0, d.lengths[0], false

	for i := 1; i < len(poly); i++ {
		a, b := poly[i-1], poly[i]
		segLen := a.Distance(b)
		if !(segLen > 0) {
			continue
		}
		t0, t1, ok := clipSegment(a, b, clip)
		if !ok {
			d.skip(segLen)
			continue
		}
		d.skip(t0 * segLen)
		d.draw(a, b, segLen, t0*segLen, t1*segLen)
		d.skip((1 - t1) * segLen)
	}
}

// draw emits the dashes between distances from and to along a->b.
func (d *dasher) draw(a, b gg.Point, segLen, from, to float64) {
	for pos := from; to-pos > 0; {
		step := min(d.left, to-pos)
		if d.i%2 == 0 {
			if !d.penDown {
				p := a.Lerp(b, pos/segLen)
				d.out.MoveTo(p.X, p.Y)
				d.penDown = true
			}
			q := a.Lerp(b, (pos+step)/segLen)
			d.out.LineTo(q.X, q.Y)
		}
		pos += step
		d.left -= step
		if d.left <= 0 {
			d.next()
		}
	}
}

// skip advances the pattern by n pixels without drawing.
func (d *dasher) skip(n float64) {
	if !(n > 0) {
		return
	}
	d.penDown = false
	if n < d.left {
		d.left -= n
		return
	}
	n -= d.left
	d.next()
	if math.IsInf(n, 0) {
		return
	}
	// Whole cycles leave the pattern where it was.
	n = math.Mod(n, d.cycle)
	for n >= d.left {
		n -= d.left
		d.next()
	}
	d.left -= n
}

func (d *dasher) next() {
	d.i = (d.i + 1) % len(d.lengths)
	d.left = d.lengths[d.i]
	d.penDown = false
}

// clipSegment returns the part of a->b inside r as an interval of the
// segment parameter. ok is false when the segment misses r.
func clipSegment(a, b gg.Point, r gg.Rect) (t0, t1 float64, ok bool) {
	t0, t1 = 0, 1
	dx, dy := b.X-a.X, b.Y-a.Y
	edges := [4][2]float64{
		{-dx, a.X - r.Min.X},
		{dx, r.Max.X - a.X},
		{-dy, a.Y - r.Min.Y},
		{dy, r.Max.Y - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			t0 = max(t0, t)
		} else {
			t1 = min(t1, t)
		}
	}
	return t0, t1, t0 < t1
}

// outset grows r by d on every side.
func outset(r gg.Rect, d float64) gg.Rect {
	return gg.Rect{
		Min: gg.Pt(r.Min.X-d, r.Min.Y-d),
		Max: gg.Pt(r.Max.X+d, r.Max.Y+d),
	}
}

// polylines flattens every sub-path of path into a list of points.
func polylines(path *gg.Path) [][]gg.Point {
	var (
		out   [][]gg.Point
		cur   []gg.Point
		start gg.Point
	)
	flush := func() {
		if len(cur) > 1 {
			out = append(out, cur)
		}
		cur = nil
	}
	last := func() gg.Point { return cur[len(cur)-1] }

	for _, el := range path.Elements() {
		switch e := el.(type) {
		case gg.MoveTo:
			flush()
			start = e.Point
			cur = []gg.Point{e.Point}
		case gg.LineTo:
			if cur == nil {
				cur = []gg.Point{start}
			}
			cur = append(cur, e.Point)
		case gg.QuadTo:
			if cur == nil {
				cur = []gg.Point{start}
			}
			p0 := last()
			cur = flattenCubic(cur, gg.CubicBez{
				P0: p0,
				P1: p0.Lerp(e.Control, 2.0/3),
				P2: e.Point.Lerp(e.Control, 2.0/3),
				P3: e.Point,
			})
		case gg.CubicTo:
			if cur == nil {
				cur = []gg.Point{start}
			}
			cur = flattenCubic(cur, gg.CubicBez{P0: last(), P1: e.Control1, P2: e.Control2, P3: e.Point})
		case gg.Close:
			if cur != nil {
				cur = append(cur, start)
			}
			flush()
		}
	}
	flush()
	return out
}

// flattenCubic appends the points of c after its start to dst.
func flattenCubic(dst []gg.Point, c gg.CubicBez) []gg.Point {
	// Control polygon deviation bounds the flattening error.
	dev := math.Max(
		c.P1.Sub(c.P0.Lerp(c.P3, 1.0/3)).Length(),
		c.P2.Sub(c.P0.Lerp(c.P3, 2.0/3)).Length(),
	)
	n := int(math.Ceil(math.Sqrt(dev / flattenTolerance)))
	n = max(1, min(n, 256))
	for i := 1; i <= n; i++ {
		dst = append(dst, c.Eval(float64(i)/float64(n)))
	}
	return dst
}
