// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package values

import (
	"errors"
	"testing"

	"github.com/gogpu/chart/entry"
)

func mustModel(t *testing.T, s ...[]entry.LineEntry) *entry.Model[entry.LineEntry] {
	t.Helper()
	m, err := entry.Build(s...)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestResolveIdentity(t *testing.T) {
	m := mustModel(t, []entry.LineEntry{{X: 0, Y: 1}, {X: 1, Y: 3}, {X: 2, Y: 2}})

	v, err := Resolve(m, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := Values{MinX: 0, MaxX: 2, StepX: 1, MinY: 1, MaxY: 3}
	if v != want {
		t.Errorf("Resolve() = %+v, want %+v", v, want)
	}
	again, _ := Resolve(m, nil)
	if again != v {
		t.Errorf("Resolve() not idempotent: %+v vs %+v", again, v)
	}
	if got := v.DrawnEntryCount(); got != 3 {
		t.Errorf("DrawnEntryCount() = %d, want 3", got)
	}
	if v.LengthX() != 2 || v.LengthY() != 2 {
		t.Errorf("lengths = %v, %v", v.LengthX(), v.LengthY())
	}
}

func TestResolveOverride(t *testing.T) {
	positive := []entry.LineEntry{{X: 0, Y: 2}, {X: 10, Y: 12}}
	negative := []entry.LineEntry{{X: 0, Y: -8}, {X: 10, Y: -3}}
	mixed := []entry.LineEntry{{X: 0, Y: -5}, {X: 10, Y: 5}}

	tests := []struct {
		name   string
		series []entry.LineEntry
		ov     *Override
		want   Values
	}{
		{
			name:   "fixed y",
			series: positive,
			ov:     FixedY(0, 100),
			want:   Values{MinX: 0, MaxX: 10, StepX: 10, MinY: 0, MaxY: 100},
		},
		{
			name:   "clamp zero on positive data",
			series: positive,
			ov:     StartAtZero(),
			want:   Values{MinX: 0, MaxX: 10, StepX: 10, MinY: 0, MaxY: 12},
		},
		{
			name:   "clamp zero on negative data",
			series: negative,
			ov:     StartAtZero(),
			want:   Values{MinX: 0, MaxX: 10, StepX: 10, MinY: -8, MaxY: 0},
		},
		{
			name:   "clamp zero on mixed data keeps bounds",
			series: mixed,
			ov:     StartAtZero(),
			want:   Values{MinX: 0, MaxX: 10, StepX: 10, MinY: -5, MaxY: 5},
		},
		{
			name:   "padded",
			series: mixed,
			ov:     &Override{MinY: Padded(0.1), MaxY: Padded(0.1), MaxX: Padded(0.5)},
			want:   Values{MinX: 0, MaxX: 15, StepX: 10, MinY: -6, MaxY: 6},
		},
		{
			name:   "fixed x window and step",
			series: positive,
			ov:     &Override{MinX: Fixed(2), MaxX: Fixed(6), StepX: 2},
			want:   Values{MinX: 2, MaxX: 6, StepX: 2, MinY: 2, MaxY: 12},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(mustModel(t, tt.series), tt.ov)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResolveInvalidRangeFallsBack(t *testing.T) {
	m := mustModel(t, []entry.LineEntry{{X: 0, Y: 1}, {X: 1, Y: 3}})
	got, err := Resolve(m, &Override{MinY: Fixed(10)})

	var rangeErr *InvalidRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("Resolve() error = %v, want *InvalidRangeError", err)
	}
	if rangeErr.Axis != "y" || rangeErr.Min != 10 || rangeErr.Max != 3 {
		t.Errorf("error = %+v", rangeErr)
	}
	if got != FromExtents(m) {
		t.Errorf("fallback = %+v, want model bounds", got)
	}
}

func TestDrawnEntryCountStraddlingZero(t *testing.T) {
	// Kept as-is: the absolute-value formula undercounts when the domain
	// crosses zero.
	v := Values{MinX: -5, MaxX: 2, StepX: 1}
	if got := v.DrawnEntryCount(); got != -2 {
		t.Errorf("DrawnEntryCount() = %d, want -2", got)
	}
	if got := (Values{MinX: 0, MaxX: 1}).DrawnEntryCount(); got != 0 {
		t.Errorf("DrawnEntryCount() with zero step = %d, want 0", got)
	}
}

func TestMerge(t *testing.T) {
	a := Values{MinX: 0, MaxX: 4, StepX: 1, MinY: -1, MaxY: 2}
	b := Values{MinX: 1, MaxX: 6, StepX: 0.5, MinY: 0, MaxY: 9}
	want := Values{MinX: 0, MaxX: 6, StepX: 0.5, MinY: -1, MaxY: 9}
	if got := Merge(a, b); got != want {
		t.Errorf("Merge() = %+v, want %+v", got, want)
	}
}

func TestBoundString(t *testing.T) {
	for b, want := range map[Bound]string{
		Auto():       "auto",
		Fixed(2):     "fixed(2)",
		ClampZero():  "clamp-zero",
		Padded(0.25): "padded(0.25)",
	} {
		if got := b.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", b.Kind, got, want)
		}
	}
}
