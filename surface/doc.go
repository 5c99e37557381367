// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface defines the drawing target the chart renderers paint on.
//
// A Surface accepts filled and stroked gg paths, text and rectangular clips.
// Renderers never talk to a concrete backend: the same chart draws into a
// raster image (package backend/raster) or into a command log used by tests
// and tooling (package recording).
//
// # Styles
//
// Paint is described by a Shader, a small tagged variant:
//
//	surface.Solid(gg.Hex("#1565C0"))
//	surface.VerticalGradient(top, bottom)
//
// A gradient spans the Extent of its FillStyle from top to bottom, so two
// fills sharing an extent line up exactly. This is how area fills above and
// below a baseline are composed.
//
// # Registry
//
// Backends register a factory under a name and a priority:
//
//	func init() {
//	    surface.Register("raster", 10, newRaster, nil)
//	}
//
// Callers then open a backend by name or let the registry choose:
//
//	s, err := surface.Open("raster", surface.Options{Width: 800, Height: 480})
//	s, err := surface.OpenBest(surface.Options{Width: 800, Height: 480})
package surface
