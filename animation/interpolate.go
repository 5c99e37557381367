// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package animation

import "math"

// Interpolate returns the frame at progress between from and to.
//
// Points are matched by series and entry index. A point present only in to
// starts from the baseline; a point present only in from moves to the
// baseline and is dropped once progress reaches 1. With a nil from, the
// transition starts at ZeroState(to). Progress is clamped to [0, 1];
// progress 0 returns from itself and progress 1 returns to itself.
//
// Every field is interpolated linearly: v = old + (new - old) * progress.
// A gap in to stays a gap for the whole transition; a gap in from becomes the
// target point immediately.
func Interpolate(from, to *Model, progress float64) *Model {
	progress = clamp01(progress)
	if to == nil {
		return nil
	}
	if progress >= 1 {
		return to
	}
	if from == nil {
		from = ZeroState(to)
	}
	if progress <= 0 {
		return from
	}

	out := &Model{
		Series:   make([][]PointInfo, max(len(from.Series), len(to.Series))),
		Baseline: lerp(from.Baseline, to.Baseline, progress),
	}
	for i := range out.Series {
		var fs, ts []PointInfo
		if i < len(from.Series) {
			fs = from.Series[i]
		}
		if i < len(to.Series) {
			ts = to.Series[i]
		}
		out.Series[i] = interpolateSeries(fs, ts, from.Baseline, to.Baseline, progress)
	}
	return out
}

func interpolateSeries(from, to []PointInfo, fromBase, toBase, t float64) []PointInfo {
	n := max(len(from), len(to))
	out := make([]PointInfo, n)
	for j := 0; j < n; j++ {
		switch {
		case j < len(from) && j < len(to):
			out[j] = lerpPoint(from[j], to[j], t)
		case j < len(to):
			out[j] = lerpPoint(baselinePoint(to[j], fromBase), to[j], t)
		default:
			out[j] = lerpPoint(from[j], baselinePoint(from[j], toBase), t)
		}
	}
	return out
}

func lerpPoint(a, b PointInfo, t float64) PointInfo {
	y := b.Y
	if !math.IsNaN(a.Y) && !math.IsNaN(b.Y) {
		y = lerp(a.Y, b.Y, t)
	}
	return PointInfo{
		X:       lerp(a.X, b.X, t),
		Y:       y,
		Opacity: lerp(a.Opacity, b.Opacity, t),
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp01(x float64) float64 {
	switch {
	case math.IsNaN(x), x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}
