// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"

	"github.com/gogpu/chart"
	"github.com/gogpu/chart/entry"
)

type animateOptions struct {
	outDir   string
	frames   int
	fps      int
	interval time.Duration
	series   int
	points   int
	seed     uint64
}

func newAnimateCmd(a *app) *cobra.Command {
	var o animateOptions
	cmd := &cobra.Command{
		Use:   "animate",
		Short: "Record a streaming chart as PNG frames",
		Long: heredoc.Doc(`
			A background producer publishes random series at a fixed interval
			with TryCommit while the chart animates towards every new model.
			Each frame is written as a PNG into a new run directory.
		`),
		Example: heredoc.Doc(`
			# Two seconds at 30 frames per second, new data every 400ms
			$ chartdemo animate --frames 60 --fps 30 --interval 400ms

			# Reproducible data
			$ chartdemo animate --seed 7 --series 2 --points 20
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := a.animate(cmd.Context(), o)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.outDir, "out-dir", "frames", "Directory receiving the run directories")
	f.IntVar(&o.frames, "frames", 60, "Number of frames")
	f.IntVar(&o.fps, "fps", 30, "Frames per second")
	f.DurationVar(&o.interval, "interval", 500*time.Millisecond, "Time between published models")
	f.IntVar(&o.series, "series", 3, "Number of series")
	f.IntVar(&o.points, "points", 12, "Entries per series")
	f.Uint64Var(&o.seed, "seed", 0, "Random seed, 0 for a random one")
	return cmd
}

// animate runs the producer and the frame loop and returns the directory
// holding the frames.
func (a *app) animate(ctx context.Context, o animateOptions) (string, error) {
	if o.frames <= 0 || o.fps <= 0 || o.interval <= 0 || o.series <= 0 || o.points <= 0 {
		return "", fmt.Errorf("frames, fps, interval, series and points must be positive")
	}
	seed := o.seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	run := ulid.Make().String()
	dir := filepath.Join(o.outDir, run)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	logger := chart.Logger().With("run", run)

	p := entry.NewProducer[entry.LineEntry]()
	rng := rand.New(rand.NewPCG(seed, seed))
	tx := p.Begin()
	tx.SetSeries(randomSeries(rng, o.series, o.points)...)
	if err := tx.Commit(); err != nil {
		return "", err
	}

	c := a.newChart()
	styles, err := a.cfg.Lines(o.series)
	if err != nil {
		return "", err
	}
	c.Layers = []chart.Layer{chart.LineLayer(p, styles...).WithOverride(a.cfg.Range.Override())}
	c.Legend = nil
	h := chart.NewHost(c, a.cfg.HostOptions()...)

	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		produce(ctx, p, rng, o)
	}()
	defer func() {
		cancel()
		wg.Wait()
	}()

	frame := time.Second / time.Duration(o.fps)
	ticker := time.NewTicker(frame)
	defer ticker.Stop()
	for i := range o.frames {
		select {
		case <-ctx.Done():
			return dir, ctx.Err()
		case <-ticker.C:
		}
		h.Advance(frame)
		if err := a.drawTo(h, filepath.Join(dir, fmt.Sprintf("frame-%04d.png", i))); err != nil {
			return dir, err
		}
	}
	logger.Info("frames written", "dir", dir, "frames", o.frames, "seed", seed)
	return dir, nil
}

// produce publishes a new random model every interval until ctx is done.
// Models that lose against a concurrent transaction are dropped.
func produce(ctx context.Context, p *entry.Producer[entry.LineEntry], rng *rand.Rand, o animateOptions) {
	t := time.NewTicker(o.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
		tx := p.Begin()
		tx.SetSeries(randomSeries(rng, o.series, o.points)...)
		ok, err := tx.TryCommit()
		switch {
		case err != nil:
			chart.Logger().Warn("chartdemo: commit failed", "err", err)
		case !ok:
			chart.Logger().Debug("chartdemo: model skipped", "tx", tx.ID())
		}
	}
}

// randomSeries returns n series of count entries with y in [2, 20).
func randomSeries(rng *rand.Rand, n, count int) [][]entry.LineEntry {
	out := make([][]entry.LineEntry, n)
	for i := range out {
		ys := make([]float64, count)
		for j := range ys {
			ys[j] = 2 + rng.Float64()*18
		}
		out[i] = entry.Line(ys...)
	}
	return out
}
