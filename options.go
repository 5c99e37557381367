// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package chart

import (
	"time"

	"github.com/gogpu/chart/animation"
)

// HostOption configures a Host during creation.
//
// Example:
//
//	h := chart.NewHost(c,
//	    chart.WithAnimationDuration(300*time.Millisecond),
//	    chart.WithEasing(animation.Linear()),
//	)
type HostOption func(*hostOptions)

type hostOptions struct {
	duration time.Duration
	easing   animation.Easing
	initial  bool
}

// DefaultAnimationDuration is the length of a transition between models.
const DefaultAnimationDuration = 500 * time.Millisecond

func defaultHostOptions() hostOptions {
	return hostOptions{
		duration: DefaultAnimationDuration,
		easing:   animation.FastOutSlowIn(),
		initial:  true,
	}
}

// WithAnimationDuration sets the length of transitions. Zero or negative
// durations switch animation off: new models are shown immediately.
func WithAnimationDuration(d time.Duration) HostOption {
	return func(o *hostOptions) {
		o.duration = d
	}
}

// WithEasing sets the timing curve of transitions.
func WithEasing(e animation.Easing) HostOption {
	return func(o *hostOptions) {
		o.easing = e
	}
}

// WithInitialAnimation controls whether the first model of a layer grows
// from the baseline (the default) or appears at once.
func WithInitialAnimation(on bool) HostOption {
	return func(o *hostOptions) {
		o.initial = on
	}
}
