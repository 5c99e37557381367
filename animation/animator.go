// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package animation

import "time"

// Animator drives one transition at a time between drawing models.
//
// Animator is not safe for concurrent use; it belongs to the render loop.
// Current always returns a complete model: either the last target or a fully
// interpolated frame.
type Animator struct {
	duration time.Duration
	easing   Easing

	from, to *Model
	current  *Model
	elapsed  time.Duration
	progress float64
	running  bool
}

// NewAnimator creates an animator whose transitions last duration.
// A non-positive duration makes every transition complete immediately.
func NewAnimator(duration time.Duration, easing Easing) *Animator {
	return &Animator{duration: duration, easing: easing}
}

// Start begins a transition from the current frame to to. Starting while a
// transition runs continues from the frame on screen. The first transition
// of an animator starts from the zero state of to.
func (a *Animator) Start(to *Model) {
	a.from = a.current
	a.to = to
	a.elapsed = 0
	a.progress = 0
	a.running = true
	if a.duration <= 0 {
		a.Finish()
		return
	}
	a.current = Interpolate(a.from, a.to, 0)
}

// Jump shows to immediately without a transition.
func (a *Animator) Jump(to *Model) {
	a.to = to
	a.Finish()
}

// Advance moves the transition forward by dt and returns the new frame.
// Negative dt is treated as zero, so progress never decreases.
func (a *Animator) Advance(dt time.Duration) *Model {
	if !a.running {
		return a.current
	}
	if dt > 0 {
		a.elapsed += dt
	}
	if a.elapsed >= a.duration {
		a.Finish()
		return a.current
	}
	p := a.easing.Apply(float64(a.elapsed) / float64(a.duration))
	if p > a.progress {
		a.progress = p
	}
	a.current = Interpolate(a.from, a.to, a.progress)
	return a.current
}

// Finish completes the running transition.
func (a *Animator) Finish() {
	a.current = a.to
	a.from = nil
	a.progress = 1
	a.elapsed = a.duration
	a.running = false
}

// Cancel stops the running transition and keeps the frame on screen.
func (a *Animator) Cancel() {
	a.from = nil
	a.to = a.current
	a.running = false
}

// Current returns the frame on screen, or nil before the first Start.
func (a *Animator) Current() *Model { return a.current }

// Target returns the model the animator is heading to.
func (a *Animator) Target() *Model { return a.to }

// Progress returns the eased progress of the running transition, 1 when idle
// after a transition.
func (a *Animator) Progress() float64 { return a.progress }

// Running reports whether a transition is in progress.
func (a *Animator) Running() bool { return a.running }
