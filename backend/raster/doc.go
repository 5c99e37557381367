// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster provides a surface.Surface that rasterises into an image
// with gg.Context.
//
// Importing the package registers it with the surface registry under the
// name "raster":
//
//	import _ "github.com/gogpu/chart/backend/raster"
//
//	s, err := surface.Open("raster", surface.Options{Width: 800, Height: 480})
//
// Or create one directly and encode the result:
//
//	s := raster.New(800, 480)
//	defer s.Close()
//	host.Draw(s)
//	err := s.SavePNG("chart.png")
//
// Text uses the Go Regular font from golang.org/x/image.
package raster
