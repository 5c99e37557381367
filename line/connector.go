// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package line

import "github.com/gogpu/gg"

// ConnectorKind identifies the variant held by a Connector.
type ConnectorKind uint8

const (
	ConnectLinear ConnectorKind = iota
	ConnectCubic
	ConnectStep
)

// DefaultTension is the tension of the default cubic connector.
const DefaultTension = 0.5

// Connector decides how consecutive points are joined.
type Connector struct {
	Kind ConnectorKind

	// Tension is used by cubic connectors, in [0, 1]. 0 gives straight
	// segments, larger values give rounder curves.
	Tension float64
}

// Linear joins points with straight segments.
func Linear() Connector { return Connector{Kind: ConnectLinear} }

// Cubic joins points with Bezier curves whose tangents are horizontal at
// every point. The curve passes through every point and never leaves the
// vertical range of the two points it joins.
func Cubic(tension float64) Connector {
	return Connector{Kind: ConnectCubic, Tension: max(0, min(1, tension))}
}

// Step joins points with a horizontal run followed by a vertical rise at the
// next point.
func Step() Connector { return Connector{Kind: ConnectStep} }

// piece is one segment of a run: a straight line from P0 to P3 or a cubic.
type piece struct {
	cubic bool
	bez   gg.CubicBez
}

func linePiece(a, b gg.Point) piece {
	return piece{bez: gg.CubicBez{P0: a, P3: b}}
}

func (p piece) start() gg.Point { return p.bez.P0 }
func (p piece) end() gg.Point   { return p.bez.P3 }

func (p piece) eval(t float64) gg.Point {
	if p.cubic {
		return p.bez.Eval(t)
	}
	return p.bez.P0.Lerp(p.bez.P3, t)
}

// sub returns the part of p between parameters t0 and t1.
func (p piece) sub(t0, t1 float64) piece {
	if p.cubic {
		return piece{cubic: true, bez: p.bez.Subsegment(t0, t1)}
	}
	return linePiece(p.eval(t0), p.eval(t1))
}

func (p piece) appendTo(path *gg.Path) {
	if p.cubic {
		path.CubicTo(p.bez.P1.X, p.bez.P1.Y, p.bez.P2.X, p.bez.P2.Y, p.bez.P3.X, p.bez.P3.Y)
		return
	}
	path.LineTo(p.bez.P3.X, p.bez.P3.Y)
}

// pieces returns the segments joining pts in order.
func (c Connector) pieces(pts []gg.Point) []piece {
	if len(pts) < 2 {
		return nil
	}
	out := make([]piece, 0, len(pts))
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		switch c.Kind {
		case ConnectCubic:
			dx := (b.X - a.X) * c.Tension
			if dx == 0 {
				out = append(out, linePiece(a, b))
				continue
			}
			out = append(out, piece{cubic: true, bez: gg.CubicBez{
				P0: a,
				P1: gg.Pt(a.X+dx, a.Y),
				P2: gg.Pt(b.X-dx, b.Y),
				P3: b,
			}})
		case ConnectStep:
			corner := gg.Pt(b.X, a.Y)
			out = append(out, linePiece(a, corner))
			if corner != b {
				out = append(out, linePiece(corner, b))
			}
		default:
			out = append(out, linePiece(a, b))
		}
	}
	return out
}

// appendRun adds one run to path as its own sub-path.
func appendRun(path *gg.Path, start gg.Point, ps []piece) {
	path.MoveTo(start.X, start.Y)
	for _, p := range ps {
		p.appendTo(path)
	}
}
