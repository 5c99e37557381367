// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package format turns chart values into label text.
//
// A Formatter is a small value type selected by constructor:
//
//	format.Decimal(2)                  // 1,234.57
//	format.Percent(1)                  // 12.5%
//	format.Func(func(v float64) string { return time.Unix(int64(v), 0).Format("15:04") })
//
// Numbers are localised with golang.org/x/text. The zero Formatter prints up
// to two fraction digits in English.
package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/gogpu/chart/internal/cache"
)

// Kind identifies the variant held by a Formatter.
type Kind uint8

const (
	// KindDefault formats like Decimal(2).
	KindDefault Kind = iota
	// KindDecimal prints a plain number.
	KindDecimal
	// KindPercent multiplies by 100 and appends a percent sign.
	KindPercent
	// KindFunc delegates to a user function.
	KindFunc
)

// DefaultPlaces is the fraction digit limit of the zero Formatter.
const DefaultPlaces = 2

// Formatter converts a value to a label string. Formatters are immutable
// and safe for concurrent use.
type Formatter struct {
	kind       Kind
	places     int
	noGrouping bool
	lang       language.Tag
	fn         func(float64) string
	prefix     string
	suffix     string
}

// Decimal formats with at most places fraction digits, dropping trailing
// zeros.
func Decimal(places int) Formatter {
	return Formatter{kind: KindDecimal, places: max(places, 0)}
}

// Percent formats v*100 with at most places fraction digits and a percent
// sign.
func Percent(places int) Formatter {
	return Formatter{kind: KindPercent, places: max(places, 0)}
}

// Func formats with fn. A nil fn behaves like the zero Formatter.
func Func(fn func(float64) string) Formatter {
	if fn == nil {
		return Formatter{}
	}
	return Formatter{kind: KindFunc, fn: fn}
}

// Kind returns the formatter variant.
func (f Formatter) Kind() Kind { return f.kind }

// WithLanguage returns a copy that localises digits and separators for tag.
func (f Formatter) WithLanguage(tag language.Tag) Formatter {
	f.lang = tag
	return f
}

// WithGrouping returns a copy with digit grouping switched on or off.
// Grouping is on by default.
func (f Formatter) WithGrouping(on bool) Formatter {
	f.noGrouping = !on
	return f
}

// WithAffix returns a copy that wraps every result in prefix and suffix,
// e.g. a currency sign or a unit.
func (f Formatter) WithAffix(prefix, suffix string) Formatter {
	f.prefix, f.suffix = prefix, suffix
	return f
}

// Format returns the label for v.
func (f Formatter) Format(v float64) string {
	var s string
	switch f.kind {
	case KindFunc:
		s = f.fn(v)
	case KindPercent:
		s = printer(f.lang).Sprint(number.Percent(v, f.options()...))
	case KindDecimal:
		s = printer(f.lang).Sprint(number.Decimal(v, f.options()...))
	default:
		f.places = DefaultPlaces
		s = printer(f.lang).Sprint(number.Decimal(v, f.options()...))
	}
	if f.prefix == "" && f.suffix == "" {
		return s
	}
	return f.prefix + s + f.suffix
}

func (f Formatter) options() []number.Option {
	opts := []number.Option{
		number.MinFractionDigits(0),
		number.MaxFractionDigits(f.places),
	}
	if f.noGrouping {
		opts = append(opts, number.NoSeparator())
	}
	return opts
}

var printers = cache.New[language.Tag, *message.Printer](64)

func printer(tag language.Tag) *message.Printer {
	if tag == (language.Tag{}) {
		tag = language.English
	}
	return printers.GetOrCreate(tag, func() *message.Printer { return message.NewPrinter(tag) })
}
