// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package chart

import "github.com/gogpu/gg"

// Palette is the colour sequence used by layers created without styles.
var Palette = []gg.RGBA{
	gg.Hex("#1565C0"),
	gg.Hex("#EF6C00"),
	gg.Hex("#2E7D32"),
	gg.Hex("#AD1457"),
	gg.Hex("#6A1B9A"),
}
