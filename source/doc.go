// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package source loads series for charts from CSV files and SQLite
// databases.
//
// Line CSV files have a header row. The first column holds x, every other
// column is one series named by its header; an empty cell is a gap:
//
//	x,revenue,cost
//	0,12,8
//	1,,9
//	2,15,7
//
// Candlestick CSV files name their columns x, open, high, low and close in
// any order.
package source
