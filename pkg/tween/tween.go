// Package tween implements duration-based eased animation.
//
// A [Tween] pairs a duration with an easing function in the classic
// (t, b, c, d) convention from the tanema/gween ease package. The engine
// evaluates easing as ease(progress, 0, 1, 1), so the return value is itself
// a normalized progress.
package tween

import (
	"time"

	"github.com/tanema/gween/ease"
)

// DefaultDuration is the duration used when none is specified.
const DefaultDuration = 300 * time.Millisecond

// Tween describes a fixed-duration eased animation.
type Tween struct {
	// Duration is the length of one run of the animation.
	Duration time.Duration
	// Easing transforms normalized progress. It follows the classic
	// (t, b, c, d) signature and is called with b=0, c=1, d=1.
	Easing ease.TweenFunc
}

// New creates a tween with the given duration and linear easing.
func New(duration time.Duration) Tween {
	return Tween{Duration: duration, Easing: ease.Linear}
}

// Default returns a 300ms linear tween.
func Default() Tween {
	return New(DefaultDuration)
}

// WithEasing returns a copy of the tween using the given easing function.
func (tw Tween) WithEasing(fn ease.TweenFunc) Tween {
	tw.Easing = fn
	return tw
}

// Progress returns the raw normalized progress for the elapsed time, clamped
// into [0, 1]. A zero duration completes instantly.
func (tw Tween) Progress(elapsed time.Duration) float32 {
	if tw.Duration <= 0 {
		return 1
	}
	p := float32(elapsed.Seconds() / tw.Duration.Seconds())
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Evaluate returns the eased progress for the elapsed time. The endpoints are
// exact: raw progress 0 yields 0 and raw progress 1 yields 1 regardless of
// the easing function, so callers can snap without floating-point drift.
func (tw Tween) Evaluate(elapsed time.Duration) float32 {
	p := tw.Progress(elapsed)
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}
	if tw.Easing == nil {
		return p
	}
	return tw.Easing(p, 0, 1, 1)
}

// Done reports whether the tween has reached the end of its duration.
func (tw Tween) Done(elapsed time.Duration) bool {
	return tw.Progress(elapsed) >= 1
}
