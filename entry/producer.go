// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package entry

import (
	"fmt"
	"sync/atomic"

	"github.com/gogpu/chart/internal/logging"
)

// published is the content of a Producer's atomic slot.
type published[E Entry] struct {
	model *Model[E]
	seq   uint64
}

// Producer publishes Models built by transactions.
//
// Publication is a single atomic pointer swap: readers calling Model never
// observe a partially built snapshot and never block writers. Transactions
// may run on any goroutine.
//
// Example:
//
//	p := entry.NewProducer[entry.LineEntry]()
//	tx := p.Begin()
//	tx.SetSeries(entry.Line(1, 3, 2))
//	if err := tx.Commit(); err != nil {
//	    return err
//	}
//	m := p.Model()
type Producer[E Entry] struct {
	state  atomic.Pointer[published[E]]
	latest atomic.Uint64 // id of the most recently started transaction
	open   atomic.Int64  // transactions started but not yet closed
}

// NewProducer creates a Producer with no published model.
func NewProducer[E Entry]() *Producer[E] {
	return &Producer[E]{}
}

// Model returns the most recently published model, or nil before the first
// successful commit.
func (p *Producer[E]) Model() *Model[E] {
	if s := p.state.Load(); s != nil {
		return s.model
	}
	return nil
}

// Version returns the id of the transaction that published the current
// model, or 0 before the first commit. It increases with every publication.
func (p *Producer[E]) Version() uint64 {
	if s := p.state.Load(); s != nil {
		return s.seq
	}
	return 0
}

// Begin starts a transaction. The transaction stages a private copy of the
// currently published series; nothing it does is visible until it commits.
func (p *Producer[E]) Begin() *Transaction[E] {
	base := p.state.Load()
	tx := &Transaction[E]{
		p:    p,
		id:   p.latest.Add(1),
		base: base,
	}
	p.open.Add(1)
	if base != nil {
		tx.series = base.model.cloneSeries()
	}
	return tx
}

// Transaction stages series data for a Producer.
//
// A Transaction is not safe for concurrent use; each one belongs to the
// goroutine that began it.
type Transaction[E Entry] struct {
	p      *Producer[E]
	id     uint64
	base   *published[E]
	series [][]E
	closed bool
}

// ID returns the transaction's position in the producer's start order.
func (tx *Transaction[E]) ID() uint64 { return tx.id }

// Series returns the staged series.
func (tx *Transaction[E]) Series() [][]E { return tx.series }

// SetSeries replaces all staged series.
func (tx *Transaction[E]) SetSeries(series ...[]E) {
	tx.series = series
}

// Add appends a new series.
func (tx *Transaction[E]) Add(series []E) {
	tx.series = append(tx.series, series)
}

// Append adds entries to the end of series i, creating empty series up to i
// when needed.
func (tx *Transaction[E]) Append(i int, entries ...E) {
	for len(tx.series) <= i {
		tx.series = append(tx.series, nil)
	}
	tx.series[i] = append(tx.series[i], entries...)
}

// Clear removes all staged series.
func (tx *Transaction[E]) Clear() {
	tx.series = nil
}

// Commit builds a model from the staged series and publishes it.
//
// Commit never overwrites a model published by a newer transaction: in that
// case it returns ErrSuperseded and the transaction is abandoned. Build
// errors such as ErrEmptyData are returned unchanged and nothing is
// published. The transaction is closed in every case.
func (tx *Transaction[E]) Commit() error {
	if tx.closed {
		return ErrTransactionClosed
	}
	defer tx.close()

	m, err := Build(tx.series...)
	if err != nil {
		return fmt.Errorf("commit transaction %d: %w", tx.id, err)
	}
	next := &published[E]{model: m, seq: tx.id}

	for {
		cur := tx.p.state.Load()
		if cur != nil && cur.seq > tx.id {
			logging.Logger().Debug("entry: transaction abandoned",
				"id", tx.id, "published", cur.seq)
			return ErrSuperseded
		}
		if tx.p.state.CompareAndSwap(cur, next) {
			logging.Logger().Debug("entry: model published",
				"id", tx.id, "entries", m.EntryCount())
			return nil
		}
	}
}

// TryCommit publishes the staged series only if this is the newest
// transaction, no other transaction is open, and no model was published since
// Begin. Otherwise it returns false and leaves the published model untouched.
// The transaction is closed in every case.
func (tx *Transaction[E]) TryCommit() (bool, error) {
	if tx.closed {
		return false, ErrTransactionClosed
	}
	defer tx.close()

	if tx.p.latest.Load() != tx.id || tx.p.open.Load() > 1 {
		logging.Logger().Debug("entry: try-commit skipped",
			"id", tx.id, "latest", tx.p.latest.Load())
		return false, nil
	}

	m, err := Build(tx.series...)
	if err != nil {
		return false, fmt.Errorf("commit transaction %d: %w", tx.id, err)
	}
	if !tx.p.state.CompareAndSwap(tx.base, &published[E]{model: m, seq: tx.id}) {
		return false, nil
	}
	logging.Logger().Debug("entry: model published",
		"id", tx.id, "entries", m.EntryCount())
	return true, nil
}

// Discard abandons the transaction without publishing anything.
// Discarding a closed transaction is a no-op.
func (tx *Transaction[E]) Discard() {
	if !tx.closed {
		tx.close()
	}
}

func (tx *Transaction[E]) close() {
	tx.closed = true
	tx.series = nil
	tx.p.open.Add(-1)
}
