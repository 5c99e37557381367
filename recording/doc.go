// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package recording provides a surface that records drawing operations as
// typed commands instead of rasterising them.
//
// A Recorder implements surface.Surface. Renderer tests draw into one and
// inspect the commands; tools dump them as YAML or replay them onto another
// surface:
//
//	rec := recording.NewRecorder(800, 480)
//	line.Render(rec, style, points, frame)
//
//	r := rec.Finish()
//	_ = r.WriteYAML(os.Stdout)
//	_ = r.Playback(rasterSurface)
//
// Text is measured with the fixed 7x13 bitmap metrics of
// golang.org/x/image/font/basicfont scaled to the requested size, so
// layouts computed on a Recorder are identical on every machine.
package recording
