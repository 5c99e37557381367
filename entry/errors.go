// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package entry

import "errors"

var (
	// ErrEmptyData is returned when a model is built from series that
	// contain no entries at all.
	ErrEmptyData = errors.New("entry: no entries in any series")

	// ErrUnsorted is returned when x values decrease within a series.
	ErrUnsorted = errors.New("entry: x values must be non-decreasing")

	// ErrNonFiniteX is returned for NaN or infinite x values.
	ErrNonFiniteX = errors.New("entry: x value is not finite")

	// ErrNonFiniteY is returned for infinite y values. NaN y marks a gap.
	ErrNonFiniteY = errors.New("entry: y value is infinite")

	// ErrSuperseded is returned by Commit when a newer transaction has
	// already published its model.
	ErrSuperseded = errors.New("entry: transaction superseded by a newer commit")

	// ErrTransactionClosed is returned when a committed, failed or
	// discarded transaction is used again.
	ErrTransactionClosed = errors.New("entry: transaction already closed")
)
