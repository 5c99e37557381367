// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package entry

// Change classifies a candle by how its close relates to its open.
type Change uint8

const (
	// Increase means close > open.
	Increase Change = iota
	// Decrease means close < open.
	Decrease
	// Zero means close == open.
	Zero
)

// String returns the change name.
func (c Change) String() string {
	switch c {
	case Increase:
		return "increase"
	case Decrease:
		return "decrease"
	case Zero:
		return "zero"
	default:
		return "unknown"
	}
}

// CandlestickType selects the style of a candle.
type CandlestickType struct {
	Change Change
	// Hollow candles are drawn with an outlined body.
	Hollow bool
}

// CandlestickEntry is an OHLC data point.
type CandlestickEntry struct {
	X     float64
	Low   float64
	High  float64
	Open  float64
	Close float64
}

// Position implements Entry.
func (e CandlestickEntry) Position() float64 { return e.X }

// Extent implements Entry. A candle covers its whole low..high range.
func (e CandlestickEntry) Extent() (lo, hi float64) { return e.Low, e.High }

// Type returns the standard candle type: the change follows close versus
// open, and rising candles are hollow.
func (e CandlestickEntry) Type() CandlestickType {
	switch {
	case e.Close > e.Open:
		return CandlestickType{Change: Increase, Hollow: true}
	case e.Close < e.Open:
		return CandlestickType{Change: Decrease}
	default:
		return CandlestickType{Change: Zero, Hollow: true}
	}
}
