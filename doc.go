// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package chart draws animated cartesian charts on top of the gg 2D
// graphics library.
//
// # Overview
//
// Data flows one way:
//
//	entry.Producer  ->  values.Resolve  ->  animation.Animator  ->  layer/line  ->  surface.Surface
//
// Producers publish immutable entry models from any goroutine. A Host polls
// them, resolves the axis ranges, builds a normalised drawing model per
// layer and animates between successive models. Draw lays out the axes and
// legend and renders every layer into the plot rectangle.
//
// # Quick Start
//
//	p := entry.NewProducer[entry.LineEntry]()
//	tx := p.Begin()
//	tx.SetSeries(entry.Line(2, 6, 4, 8))
//	if err := tx.Commit(); err != nil {
//	    return err
//	}
//
//	c := &chart.Chart{
//	    Layers:     []chart.Layer{chart.LineLayer(p, line.DefaultLine(gg.Hex("#1565C0")))},
//	    StartAxis:  chart.DefaultAxis(),
//	    BottomAxis: chart.DefaultAxis(),
//	    Padding:    12,
//	    Background: gg.White,
//	}
//	h := chart.NewHost(c)
//	h.Advance(time.Second)
//
//	s := raster.New(800, 480)
//	h.Draw(s)
//	_ = s.SavePNG("chart.png")
//
// # Time
//
// The Host never reads a clock. Callers drive it with Advance(dt) from
// their own frame loop, which keeps rendering deterministic in tests.
//
// # Logging
//
// The library is silent by default. See SetLogger.
package chart
