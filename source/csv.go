// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gogpu/chart/entry"
)

// Errors returned by the CSV readers.
var (
	// ErrNoHeader is returned for input without a header row.
	ErrNoHeader = errors.New("source: missing header row")

	// ErrMissingColumn is returned when a required column is absent.
	ErrMissingColumn = errors.New("source: missing column")
)

// LineTable is a set of named line series sharing one x column.
type LineTable struct {
	Names  []string
	Series [][]entry.LineEntry
}

// Name returns the name of series i, or "series<i>" when it has none.
func (t *LineTable) Name(i int) string {
	if i < len(t.Names) && t.Names[i] != "" {
		return t.Names[i]
	}
	return "series" + strconv.Itoa(i)
}

// Commit publishes the series through p.
func (t *LineTable) Commit(p *entry.Producer[entry.LineEntry]) error {
	tx := p.Begin()
	tx.SetSeries(t.Series...)
	return tx.Commit()
}

// ReadLinesCSV reads a line table. Rows must be sorted by x.
func ReadLinesCSV(r io.Reader) (*LineTable, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("source: read header: %w", err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("%w: need x and at least one series, got %q", ErrMissingColumn, header)
	}

	t := &LineTable{
		Names:  header[1:],
		Series: make([][]entry.LineEntry, len(header)-1),
	}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("source: %w", err)
		}
		line, _ := cr.FieldPos(0)
		x, err := parseFloat(rec[0])
		if err != nil {
			return nil, fmt.Errorf("source: line %d, column %s: %w", line, header[0], err)
		}
		for i, cell := range rec[1:] {
			if strings.TrimSpace(cell) == "" {
				t.Series[i] = append(t.Series[i], entry.Gap(x))
				continue
			}
			y, err := parseFloat(cell)
			if err != nil {
				return nil, fmt.Errorf("source: line %d, column %s: %w", line, header[i+1], err)
			}
			t.Series[i] = append(t.Series[i], entry.LineEntry{X: x, Y: y})
		}
	}
	return t, nil
}

// ReadCandlesCSV reads candlestick entries. Extra columns are ignored.
func ReadCandlesCSV(r io.Reader) ([]entry.CandlestickEntry, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("source: read header: %w", err)
	}

	names := []string{"x", "open", "high", "low", "close"}
	col := make(map[string]int, len(names))
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	idx := make([]int, len(names))
	for i, n := range names {
		c, ok := col[n]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, n)
		}
		idx[i] = c
	}

	var out []entry.CandlestickEntry
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("source: %w", err)
		}
		var v [5]float64
		for i, c := range idx {
			if v[i], err = parseFloat(rec[c]); err != nil {
				line, _ := cr.FieldPos(c)
				return nil, fmt.Errorf("source: line %d, column %s: %w", line, names[i], err)
			}
		}
		out = append(out, entry.CandlestickEntry{X: v[0], Open: v[1], High: v[2], Low: v[3], Close: v[4]})
	}
	return out, nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
