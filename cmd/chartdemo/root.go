// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gogpu/chart"
	"github.com/gogpu/chart/internal/config"
	"github.com/gogpu/chart/surface"

	// Surface backends register themselves by name.
	_ "github.com/gogpu/chart/backend/raster"
	_ "github.com/gogpu/chart/recording"
)

// app is the state shared by all commands.
type app struct {
	v       *viper.Viper
	cfg     *config.Config
	cfgFile string
	level   string
	stderr  io.Writer
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New(), stderr: os.Stderr}

	cmd := &cobra.Command{
		Use:   "chartdemo",
		Short: "Render and animate charts",
		Long: heredoc.Doc(`
			chartdemo draws line, column and candlestick charts with the gogpu
			chart engine. Styling is read from an optional YAML config file and
			CHARTDEMO_* environment variables.
		`),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "Config file (YAML)")
	flags.StringVar(&a.level, "log-level", "warn", "Log level: debug, info, warn or error")
	flags.Int("width", 800, "Image width in pixels")
	flags.Int("height", 480, "Image height in pixels")
	flags.String("backend", "raster", "Surface backend")
	for _, name := range []string{"width", "height", "backend"} {
		_ = a.v.BindPFlag(name, flags.Lookup(name))
	}

	cmd.AddCommand(newRenderCmd(a), newAnimateCmd(a), newBackendsCmd())
	return cmd
}

// init reads the config file, installs the logger and loads the
// configuration.
func (a *app) init() error {
	level, err := log.ParseLevel(a.level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	logger := log.NewWithOptions(a.stderr, log.Options{
		Level:           level,
		Prefix:          "chartdemo",
		ReportTimestamp: level == log.DebugLevel,
	})
	chart.SetLogger(slog.New(logger))

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		logger.Debug("config loaded", "file", a.v.ConfigFileUsed())
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

func newBackendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List the available surface backends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range surface.Available() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
