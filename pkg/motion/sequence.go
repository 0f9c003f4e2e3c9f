package motion

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-drift/motion/pkg/animatable"
	"github.com/go-drift/motion/pkg/tween"
)

// AnimationStep is one entry in a [Sequence]: a target value and the config
// used to reach it.
type AnimationStep[T animatable.Animatable[T]] struct {
	// Target is the value this step animates toward.
	Target T
	// Config is the activation config for this step.
	Config Config
	// PredictedNext is an optional midpoint hint between this step's target
	// and the previous one, usable for previewing continuity. The update
	// path never consults it.
	PredictedNext *T
}

// Sequence is an ordered chain of animation steps executed one after
// another. The step array is immutable once built; the cursor is atomic so
// any holder of the sequence can observe or advance it without copying the
// steps. The completion callback runs at most once even when the sequence is
// shared.
type Sequence[T animatable.Animatable[T]] struct {
	steps  []AnimationStep[T]
	cursor atomic.Int64

	mu         sync.Mutex
	onComplete func()
}

// NewSequence creates an empty sequence.
func NewSequence[T animatable.Animatable[T]]() *Sequence[T] {
	return &Sequence[T]{}
}

// Then returns a new sequence with a step toward target appended. The
// receiver is left untouched, so partially built sequences can be shared and
// extended independently. When a previous step exists, the new step carries a
// midpoint prediction between the two targets.
func (s *Sequence[T]) Then(target T, cfg Config) *Sequence[T] {
	step := AnimationStep[T]{Target: target, Config: cfg}
	if n := len(s.steps); n > 0 {
		mid := s.steps[n-1].Target.Interpolate(target, 0.5)
		step.PredictedNext = &mid
	}

	steps := make([]AnimationStep[T], len(s.steps), len(s.steps)+1)
	copy(steps, s.steps)

	next := &Sequence[T]{steps: append(steps, step)}
	s.mu.Lock()
	next.onComplete = s.onComplete
	s.mu.Unlock()
	return next
}

// OnComplete returns a new sequence with a completion callback. The callback
// fires at most once, when the final step finishes naturally.
func (s *Sequence[T]) OnComplete(fn func()) *Sequence[T] {
	next := &Sequence[T]{steps: s.steps}
	next.cursor.Store(s.cursor.Load())
	next.onComplete = fn
	return next
}

// Len returns the number of steps.
func (s *Sequence[T]) Len() int { return len(s.steps) }

// Step returns the step at index i.
func (s *Sequence[T]) Step(i int) (AnimationStep[T], bool) {
	if i < 0 || i >= len(s.steps) {
		var zero AnimationStep[T]
		return zero, false
	}
	return s.steps[i], true
}

// CurrentIndex returns the cursor position.
func (s *Sequence[T]) CurrentIndex() int {
	return int(s.cursor.Load())
}

// Current returns the step at the cursor.
func (s *Sequence[T]) Current() (AnimationStep[T], bool) {
	return s.Step(s.CurrentIndex())
}

// Advance moves the cursor to the next step and returns true, or returns
// false if the cursor is already at the last step. The cursor never moves
// past the final index, and it is monotonic between resets even under
// concurrent holders.
func (s *Sequence[T]) Advance() bool {
	for {
		cur := s.cursor.Load()
		if cur >= int64(len(s.steps))-1 {
			return false
		}
		if s.cursor.CompareAndSwap(cur, cur+1) {
			return true
		}
	}
}

// IsComplete reports whether the cursor sits on the final step.
func (s *Sequence[T]) IsComplete() bool {
	return len(s.steps) > 0 && s.CurrentIndex() == len(s.steps)-1
}

// Reset moves the cursor back to the first step. The completion callback is
// not restored; it runs at most once per sequence.
func (s *Sequence[T]) Reset() {
	s.cursor.Store(0)
}

// executeCompletion takes and runs the callback. Safe to call from any
// holder; the callback runs at most once.
func (s *Sequence[T]) executeCompletion() {
	s.mu.Lock()
	fn := s.onComplete
	s.onComplete = nil
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// FadeSequence builds a two-step sequence tweening from start to end over
// the given duration.
func FadeSequence[T animatable.Animatable[T]](start, end T, d time.Duration) *Sequence[T] {
	cfg := NewConfig(TweenMode(tween.New(d)))
	return NewSequence[T]().Then(start, cfg).Then(end, cfg)
}
