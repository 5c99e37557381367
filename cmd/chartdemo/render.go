// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/gogpu/chart"
	"github.com/gogpu/chart/entry"
	"github.com/gogpu/chart/recording"
	"github.com/gogpu/chart/source"
	"github.com/gogpu/chart/surface"
)

// errUnknownFormat is returned for output files with an unsupported
// extension.
var errUnknownFormat = errors.New("unknown output format")

type renderOptions struct {
	output string
	kind   string
	sqlite bool
	query  string
}

func newRenderCmd(a *app) *cobra.Command {
	var o renderOptions
	cmd := &cobra.Command{
		Use:   "render <input>",
		Short: "Render a chart image from CSV or SQLite data",
		Example: heredoc.Doc(`
			# Line chart from a CSV file
			$ chartdemo render sales.csv -o sales.png

			# Candlesticks as JPEG
			$ chartdemo render --kind candles prices.csv -o prices.jpg

			# Series stored in SQLite, dumped as a drawing command list
			$ chartdemo render --sqlite points.db -o points.yaml
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.render(cmd.Context(), args[0], o)
		},
	}
	cmd.Flags().StringVarP(&o.output, "output", "o", "chart.png", "Output file: .png, .jpg or .yaml")
	cmd.Flags().StringVar(&o.kind, "kind", "lines", "Chart kind: lines, columns or candles")
	cmd.Flags().BoolVar(&o.sqlite, "sqlite", false, "Read the input as a SQLite database")
	cmd.Flags().StringVar(&o.query, "query", source.DefaultQuery, "Query selecting series, x and y (with --sqlite)")
	return cmd
}

func (a *app) render(ctx context.Context, input string, o renderOptions) error {
	c, err := a.buildChart(ctx, input, o)
	if err != nil {
		return err
	}
	h := chart.NewHost(c, chart.WithAnimationDuration(0))
	h.Advance(0)
	return a.drawTo(h, o.output)
}

// buildChart loads the input and builds a chart with one layer.
func (a *app) buildChart(ctx context.Context, input string, o renderOptions) (*chart.Chart, error) {
	c := a.newChart()

	if o.kind == "candles" {
		f, err := os.Open(input)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		candles, err := source.ReadCandlesCSV(f)
		if err != nil {
			return nil, err
		}
		p := entry.NewProducer[entry.CandlestickEntry]()
		tx := p.Begin()
		tx.SetSeries(candles)
		if err := tx.Commit(); err != nil {
			return nil, err
		}
		c.Layers = []chart.Layer{chart.CandlestickLayer(p, nil).WithOverride(a.cfg.Range.Override())}
		c.Legend = nil
		return c, nil
	}

	table, err := a.loadLines(ctx, input, o)
	if err != nil {
		return nil, err
	}
	p := entry.NewProducer[entry.LineEntry]()
	if err := table.Commit(p); err != nil {
		return nil, err
	}

	var l chart.Layer
	switch o.kind {
	case "lines":
		styles, err := a.cfg.Lines(len(table.Series))
		if err != nil {
			return nil, err
		}
		l = chart.LineLayer(p, styles...)
	case "columns":
		l = chart.ColumnLayer(p, nil)
	default:
		return nil, fmt.Errorf("unknown chart kind %q", o.kind)
	}
	c.Layers = []chart.Layer{l.WithOverride(a.cfg.Range.Override())}
	if c.Legend != nil {
		c.Legend = a.legend(l, table)
	}
	return c, nil
}

func (a *app) loadLines(ctx context.Context, input string, o renderOptions) (*source.LineTable, error) {
	if o.sqlite {
		db, err := source.OpenSQLite(input)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		return source.QueryLines(ctx, db, o.query)
	}
	f, err := os.Open(input)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return source.ReadLinesCSV(f)
}

// newChart returns a chart with the configured axes, padding and
// background and an empty legend.
func (a *app) newChart() *chart.Chart {
	c := &chart.Chart{
		StartAxis:  a.cfg.Axis.ChartAxis(),
		BottomAxis: a.cfg.Axis.ChartAxis(),
		Padding:    a.cfg.Padding,
		Background: a.cfg.BackgroundColor(),
	}
	c.BottomAxis.Formatter = a.cfg.Axis.Formatter().WithGrouping(false)
	c.BottomAxis.Guideline = nil
	if a.cfg.Legend {
		c.Legend = chart.NewLegend()
	}
	return c
}

// legend returns a legend naming every series of table in the colour of
// its style in l.
func (a *app) legend(l chart.Layer, table *source.LineTable) *chart.Legend {
	lg := chart.NewLegend()
	for i := range table.Series {
		item := chart.LegendItem{Label: table.Name(i)}
		if lines := l.Lines(); lines != nil {
			item.Shader = lines.Style(i).Shader
		} else {
			item.Shader = surface.Solid(chart.Palette[i%len(chart.Palette)])
		}
		lg.Items = append(lg.Items, item)
	}
	return lg
}

// drawTo draws the current frame of h into a new surface and writes it to
// path. The extension selects the format.
func (a *app) drawTo(h *chart.Host, path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	backend := a.cfg.Backend
	switch ext {
	case ".png", ".jpg", ".jpeg":
	case ".yaml", ".yml":
		backend = "recording"
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, ext)
	}

	s, err := surface.Open(backend, surface.Options{Width: a.cfg.Width, Height: a.cfg.Height})
	if err != nil {
		return err
	}
	if c, ok := s.(io.Closer); ok {
		defer c.Close()
	}
	h.Draw(s)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := a.encode(f, s, ext); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func (a *app) encode(w io.Writer, s surface.Surface, ext string) error {
	if r, ok := s.(*recording.Recorder); ok {
		return r.Finish().WriteYAML(w)
	}
	enc, ok := s.(surface.Encoder)
	if !ok {
		return fmt.Errorf("backend %q cannot encode images", a.cfg.Backend)
	}
	switch ext {
	case ".png":
		return enc.EncodePNG(w)
	case ".jpg", ".jpeg":
		return enc.EncodeJPEG(w, a.cfg.Quality)
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, ext)
	}
}
