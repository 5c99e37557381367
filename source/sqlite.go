// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package source

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/gogpu/chart/entry"
)

// Schema is the table layout created by OpenSQLite. A NULL y is a gap.
const Schema = `
CREATE TABLE IF NOT EXISTS points (
	series TEXT NOT NULL,
	x      REAL NOT NULL,
	y      REAL
);
CREATE INDEX IF NOT EXISTS points_series_x ON points (series, x);
`

// DefaultQuery selects every point of the points table in drawing order.
const DefaultQuery = `SELECT series, x, y FROM points ORDER BY series, x`

// OpenSQLite opens the database at path and creates the points table when
// it does not exist.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("source: open %s: %w", path, err)
	}
	if _, err := db.Exec(Schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("source: create schema: %w", err)
	}
	return db, nil
}

// QueryLines runs query and groups its rows into series. The query must
// return three columns: series name, x and y, ordered by x within each
// series. Series appear in the order of their first row.
func QueryLines(ctx context.Context, db *sql.DB, query string, args ...any) (*LineTable, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("source: query: %w", err)
	}
	defer rows.Close()

	t := &LineTable{}
	index := map[string]int{}
	for rows.Next() {
		var (
			name string
			x    float64
			y    sql.NullFloat64
		)
		if err := rows.Scan(&name, &x, &y); err != nil {
			return nil, fmt.Errorf("source: scan: %w", err)
		}
		i, ok := index[name]
		if !ok {
			i = len(t.Names)
			index[name] = i
			t.Names = append(t.Names, name)
			t.Series = append(t.Series, nil)
		}
		e := entry.Gap(x)
		if y.Valid {
			e.Y = y.Float64
		}
		t.Series[i] = append(t.Series[i], e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("source: rows: %w", err)
	}
	return t, nil
}

// StoreLines appends every entry of t to the points table in one
// transaction. Gaps are stored as NULL.
func StoreLines(ctx context.Context, db *sql.DB, t *LineTable) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("source: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO points (series, x, y) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("source: prepare: %w", err)
	}
	defer stmt.Close()

	for i, series := range t.Series {
		for _, e := range series {
			y := sql.NullFloat64{Float64: e.Y, Valid: !e.IsGap()}
			if _, err := stmt.ExecContext(ctx, t.Name(i), e.X, y); err != nil {
				return fmt.Errorf("source: insert %s: %w", t.Name(i), err)
			}
		}
	}
	return tx.Commit()
}
