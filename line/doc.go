// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package line renders one line series: the connecting path, an optional
// area fill against a baseline, point markers and value labels.
//
// Render works in pixel space. Callers map domain values to pixels first
// (see package layer) and pass the plot rectangle and the pixel y of the
// baseline in a Frame.
//
// A NaN y splits a series into separate runs; each run is drawn as its own
// sub-path. Points outside the frame stay in the path and are cut by the
// clip, so a line leaving the plot re-enters it at the right place.
package line
