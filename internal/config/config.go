// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package config holds the chartdemo configuration and converts it to chart
// styling.
//
// Values come from viper, so every key can be set in a YAML file, through
// CHARTDEMO_* environment variables or by a bound flag:
//
//	width: 800
//	height: 480
//	background: "#ffffff"
//	animation:
//	  duration: 300ms
//	  easing: linear
//	range:
//	  start-at-zero: true
//	series:
//	  - color: "#1565c0"
//	    connector: cubic
//	    dash: [6, 4]
//	    labels: true
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gogpu/gg"
	"github.com/spf13/viper"

	"github.com/gogpu/chart"
	"github.com/gogpu/chart/animation"
	"github.com/gogpu/chart/format"
	"github.com/gogpu/chart/line"
	"github.com/gogpu/chart/values"
)

// EnvPrefix is the prefix of environment variables read by viper.
const EnvPrefix = "CHARTDEMO"

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid value")

// Config is the complete chartdemo configuration.
type Config struct {
	Width      int     `mapstructure:"width"`
	Height     int     `mapstructure:"height"`
	Padding    float64 `mapstructure:"padding"`
	Background string  `mapstructure:"background"`
	Backend    string  `mapstructure:"backend"`
	Quality    int     `mapstructure:"quality"`

	Animation Animation `mapstructure:"animation"`
	Range     Range     `mapstructure:"range"`
	Axis      Axis      `mapstructure:"axis"`
	Series    []Series  `mapstructure:"series"`
	Legend    bool      `mapstructure:"legend"`
}

// Animation configures transitions.
type Animation struct {
	Duration time.Duration `mapstructure:"duration"`
	// Easing is "linear" or "fast-out-slow-in".
	Easing string `mapstructure:"easing"`
}

// Range overrides the y range of the chart.
type Range struct {
	MinY        *float64 `mapstructure:"min-y"`
	MaxY        *float64 `mapstructure:"max-y"`
	StartAtZero bool     `mapstructure:"start-at-zero"`
	// Padding grows the y range by this fraction of its length on both sides.
	Padding float64 `mapstructure:"padding"`
}

// Axis configures the axes.
type Axis struct {
	TickCount int  `mapstructure:"tick-count"`
	Spacing   int  `mapstructure:"spacing"`
	Places    int  `mapstructure:"places"`
	Percent   bool `mapstructure:"percent"`
}

// Series styles one line series.
type Series struct {
	Color     string    `mapstructure:"color"`
	Thickness float64   `mapstructure:"thickness"`
	Connector string    `mapstructure:"connector"` // linear, cubic or step
	Tension   float64   `mapstructure:"tension"`
	Dash      []float64 `mapstructure:"dash"` // dash and gap length
	Area      *bool     `mapstructure:"area"`
	Points    float64   `mapstructure:"points"` // point size, 0 for none
	Labels    bool      `mapstructure:"labels"`
	Places    int       `mapstructure:"places"`
	Rotation  float64   `mapstructure:"label-rotation"` // degrees, clockwise
}

// SetDefaults registers the default of every key in v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("width", 800)
	v.SetDefault("height", 480)
	v.SetDefault("padding", 12)
	v.SetDefault("background", "#ffffff")
	v.SetDefault("backend", "raster")
	v.SetDefault("quality", 90)
	v.SetDefault("animation.duration", chart.DefaultAnimationDuration)
	v.SetDefault("animation.easing", "fast-out-slow-in")
	v.SetDefault("axis.tick-count", chart.DefaultTickCount)
	v.SetDefault("axis.spacing", 1)
	v.SetDefault("axis.places", format.DefaultPlaces)
	v.SetDefault("legend", true)
}

// New returns a viper instance with the defaults set and environment
// variables enabled.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the configuration held by v and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the values that cannot be converted later.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if c.Quality < 1 || c.Quality > 100 {
		return fmt.Errorf("%w: quality %d", ErrInvalid, c.Quality)
	}
	if _, err := parseColor(c.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	if _, err := c.Easing(); err != nil {
		return err
	}
	for i, s := range c.Series {
		if _, err := s.Line(chart.Palette[0]); err != nil {
			return fmt.Errorf("series %d: %w", i, err)
		}
	}
	return nil
}

// BackgroundColor returns the parsed background colour.
func (c *Config) BackgroundColor() gg.RGBA {
	col, _ := parseColor(c.Background)
	return col
}

// Easing returns the configured timing curve.
func (c *Config) Easing() (animation.Easing, error) {
	switch strings.ToLower(c.Animation.Easing) {
	case "", "fast-out-slow-in":
		return animation.FastOutSlowIn(), nil
	case "linear":
		return animation.Linear(), nil
	default:
		return animation.Easing{}, fmt.Errorf("%w: easing %q", ErrInvalid, c.Animation.Easing)
	}
}

// HostOptions returns the host options for the animation settings.
func (c *Config) HostOptions() []chart.HostOption {
	e, err := c.Easing()
	if err != nil {
		e = animation.FastOutSlowIn()
	}
	return []chart.HostOption{
		chart.WithAnimationDuration(c.Animation.Duration),
		chart.WithEasing(e),
	}
}

// Lines returns one style per configured series, or n default styles from
// the palette when no series is configured.
func (c *Config) Lines(n int) ([]*line.Line, error) {
	if len(c.Series) == 0 {
		out := make([]*line.Line, n)
		for i := range out {
			out[i] = line.DefaultLine(chart.Palette[i%len(chart.Palette)])
		}
		return out, nil
	}
	out := make([]*line.Line, len(c.Series))
	for i, s := range c.Series {
		l, err := s.Line(chart.Palette[i%len(chart.Palette)])
		if err != nil {
			return nil, fmt.Errorf("series %d: %w", i, err)
		}
		out[i] = l
	}
	return out, nil
}

// Override returns the y range override, or nil when the range is not
// configured.
func (r Range) Override() *values.Override {
	if r.MinY == nil && r.MaxY == nil && !r.StartAtZero && r.Padding == 0 {
		return nil
	}
	ov := &values.Override{}
	switch {
	case r.StartAtZero:
		ov.MinY, ov.MaxY = values.ClampZero(), values.ClampZero()
	case r.Padding != 0:
		ov.MinY, ov.MaxY = values.Padded(r.Padding), values.Padded(r.Padding)
	}
	if r.MinY != nil {
		ov.MinY = values.Fixed(*r.MinY)
	}
	if r.MaxY != nil {
		ov.MaxY = values.Fixed(*r.MaxY)
	}
	return ov
}

// Formatter returns the label formatter of the axes.
func (a Axis) Formatter() format.Formatter {
	if a.Percent {
		return format.Percent(a.Places)
	}
	return format.Decimal(a.Places)
}

// ChartAxis returns a default axis adjusted by a.
func (a Axis) ChartAxis() *chart.Axis {
	ax := chart.DefaultAxis()
	ax.Formatter = a.Formatter()
	if a.TickCount > 0 {
		ax.TickCount = a.TickCount
	}
	if a.Spacing > 0 {
		ax.Spacing = a.Spacing
	}
	return ax
}

// Line converts s to a line style. fallback is used when no colour is set.
func (s Series) Line(fallback gg.RGBA) (*line.Line, error) {
	col := fallback
	if s.Color != "" {
		var err error
		if col, err = parseColor(s.Color); err != nil {
			return nil, err
		}
	}
	l := line.DefaultLine(col)
	if s.Thickness > 0 {
		l.Thickness = s.Thickness
	}

	switch strings.ToLower(s.Connector) {
	case "", "cubic":
		tension := line.DefaultTension
		if s.Tension > 0 {
			tension = s.Tension
		}
		l.Connector = line.Cubic(tension)
	case "linear":
		l.Connector = line.Linear()
	case "step":
		l.Connector = line.Step()
	default:
		return nil, fmt.Errorf("%w: connector %q", ErrInvalid, s.Connector)
	}

	switch len(s.Dash) {
	case 0:
	case 2:
		l.Pattern = line.Dashed(s.Dash[0], s.Dash[1])
	default:
		return nil, fmt.Errorf("%w: dash needs [dash, gap], got %v", ErrInvalid, s.Dash)
	}

	if s.Area != nil && !*s.Area {
		l.Area = nil
	}
	if s.Points > 0 {
		l.Point = &line.PointStyle{Shape: line.PointCircle, Size: s.Points, Shader: l.Shader}
	}
	if s.Labels {
		l.Label = line.DefaultLabel(col)
		if s.Places > 0 {
			l.Label.Formatter = format.Decimal(s.Places)
		}
		l.Label.Text.Rotation = s.Rotation
	}
	return l, nil
}

// parseColor accepts #rgb, #rgba, #rrggbb and #rrggbbaa.
func parseColor(s string) (gg.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(h) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("%w: colour %q", ErrInvalid, s)
	}
	if _, err := strconv.ParseUint(h, 16, 32); err != nil {
		return gg.RGBA{}, fmt.Errorf("%w: colour %q", ErrInvalid, s)
	}
	return gg.Hex(h), nil
}
