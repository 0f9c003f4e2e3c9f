package motion

import (
	"time"

	"github.com/go-drift/motion/pkg/spring"
	"github.com/go-drift/motion/pkg/tween"
)

// ModeKind discriminates the two animation strategies.
type ModeKind int

const (
	// ModeTween is duration-based eased motion.
	ModeTween ModeKind = iota
	// ModeSpring is physics-based motion.
	ModeSpring
)

// Mode selects how an animation moves toward its target. It is a closed
// tagged union: the update loop switches on the kind rather than dispatching
// through an interface, keeping the per-frame path monomorphic.
type Mode struct {
	kind   ModeKind
	tween  tween.Tween
	spring spring.Spring
}

// TweenMode wraps a tween configuration as an animation mode.
func TweenMode(tw tween.Tween) Mode {
	return Mode{kind: ModeTween, tween: tw}
}

// SpringMode wraps a spring configuration as an animation mode.
func SpringMode(s spring.Spring) Mode {
	return Mode{kind: ModeSpring, spring: s}
}

// DefaultMode returns a 300ms linear tween mode.
func DefaultMode() Mode {
	return TweenMode(tween.Default())
}

// Kind returns the mode's discriminant.
func (m Mode) Kind() ModeKind { return m.kind }

// Tween returns the tween configuration; meaningful only when Kind is ModeTween.
func (m Mode) Tween() tween.Tween { return m.tween }

// Spring returns the spring configuration; meaningful only when Kind is ModeSpring.
func (m Mode) Spring() spring.Spring { return m.spring }

// LoopKind discriminates loop policies.
type LoopKind int

const (
	// LoopNone plays the animation once.
	LoopNone LoopKind = iota
	// LoopInfinite restarts from the initial value forever.
	LoopInfinite
	// LoopTimes restarts a fixed number of times.
	LoopTimes
	// LoopAlternate plays back and forth forever.
	LoopAlternate
	// LoopAlternateTimes plays back and forth a fixed number of times.
	LoopAlternateTimes
)

// LoopMode governs whether and how an animation repeats after reaching its
// target. The zero value plays once.
type LoopMode struct {
	// Kind is the loop policy.
	Kind LoopKind
	// Count is the repetition count for LoopTimes and LoopAlternateTimes.
	Count uint8
}

// Infinite loops forever from the initial value.
var Infinite = LoopMode{Kind: LoopInfinite}

// Alternate plays back and forth forever; only Stop or Reset ends it.
var Alternate = LoopMode{Kind: LoopAlternate}

// Times loops the animation n times before stopping.
func Times(n uint8) LoopMode {
	return LoopMode{Kind: LoopTimes, Count: n}
}

// AlternateTimes alternates direction each half-cycle and stops after n full
// back-and-forth cycles (2n half-cycles).
func AlternateTimes(n uint8) LoopMode {
	return LoopMode{Kind: LoopAlternateTimes, Count: n}
}

// springDurationEstimate stands in for a spring's settle time when a caller
// asks for a duration; springs have no fixed horizon.
const springDurationEstimate = time.Second

// Config describes one animation activation: the motion strategy, loop
// policy, start delay, completion callback, and an optional completion
// epsilon override.
type Config struct {
	// Mode is the animation strategy.
	Mode Mode
	// Loop is the loop policy. Zero value plays once.
	Loop LoopMode
	// Delay postpones the start of motion. The delay elapses inside Update
	// calls; the value does not move until it has passed.
	Delay time.Duration
	// OnComplete fires at most once per activation, synchronously inside
	// Update, when the animation completes naturally. It does not fire on
	// Stop or Reset. Panics are not recovered.
	OnComplete func()
	// Epsilon overrides the completion threshold for this activation.
	// Nil uses the motion's default.
	Epsilon *float32
}

// NewConfig creates a config with the given mode and no loop, delay, or
// callback.
func NewConfig(mode Mode) Config {
	return Config{Mode: mode}
}

// DefaultConfig returns a config with the default tween mode.
func DefaultConfig() Config {
	return NewConfig(DefaultMode())
}

// WithLoop returns a copy of the config using the given loop mode.
func (c Config) WithLoop(loop LoopMode) Config {
	c.Loop = loop
	return c
}

// WithDelay returns a copy of the config that waits d before moving.
func (c Config) WithDelay(d time.Duration) Config {
	c.Delay = d
	return c
}

// WithOnComplete returns a copy of the config with a completion callback.
func (c Config) WithOnComplete(fn func()) Config {
	c.OnComplete = fn
	return c
}

// WithEpsilon returns a copy of the config with a custom completion
// threshold.
func (c Config) WithEpsilon(epsilon float32) Config {
	c.Epsilon = &epsilon
	return c
}

// EstimatedDuration returns the expected total duration of the animation and
// whether that duration is bounded. Springs report a fixed one-second
// estimate since they have no fixed horizon; infinite and alternate loops
// report unbounded.
func (c Config) EstimatedDuration() (time.Duration, bool) {
	if c.Mode.Kind() == ModeSpring {
		return springDurationEstimate, true
	}
	base := c.Mode.Tween().Duration
	switch c.Loop.Kind {
	case LoopInfinite, LoopAlternate:
		return 0, false
	case LoopTimes:
		return base * time.Duration(c.Loop.Count), true
	case LoopAlternateTimes:
		return base * time.Duration(c.Loop.Count) * 2, true
	default:
		return base, true
	}
}
