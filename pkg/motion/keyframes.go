package motion

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/go-drift/motion/pkg/animatable"
	"github.com/tanema/gween/ease"
)

// InvalidOffsetError reports a keyframe offset that cannot be ordered.
type InvalidOffsetError struct {
	// Index is the position of the offending keyframe in insertion order.
	Index int
	// Offset is the rejected offset value.
	Offset float32
}

func (e *InvalidOffsetError) Error() string {
	return fmt.Sprintf("motion: keyframe %d has invalid offset %v", e.Index, e.Offset)
}

// Keyframe is one breakpoint in a keyframe track: a value at a normalized
// position on the timeline, with an optional easing applied to the segment
// that ends at this keyframe.
type Keyframe[T animatable.Animatable[T]] struct {
	// Value is the track value at this breakpoint.
	Value T
	// Offset is the breakpoint's position in [0, 1].
	Offset float32
	// Easing, when set, shapes the segment ending at this keyframe. Nil
	// means linear.
	Easing ease.TweenFunc
}

// Keyframes is a sorted track of breakpoints played over a fixed duration.
// Keyframes may be added in any order; the track keeps them sorted by offset
// and that order governs segment lookup.
type Keyframes[T animatable.Animatable[T]] struct {
	frames   []Keyframe[T]
	duration time.Duration
}

// NewKeyframes creates an empty track with the given total duration.
func NewKeyframes[T animatable.Animatable[T]](duration time.Duration) *Keyframes[T] {
	return &Keyframes[T]{
		frames:   make([]Keyframe[T], 0, 4),
		duration: duration,
	}
}

// Add appends a keyframe and re-sorts the track by offset. The offset is
// clamped into [0, 1]; a NaN offset is rejected with an
// [InvalidOffsetError] since it cannot be ordered.
func (k *Keyframes[T]) Add(value T, offset float32, easing ease.TweenFunc) error {
	if math.IsNaN(float64(offset)) {
		return &InvalidOffsetError{Index: len(k.frames), Offset: offset}
	}
	if offset < 0 {
		offset = 0
	} else if offset > 1 {
		offset = 1
	}
	k.frames = append(k.frames, Keyframe[T]{Value: value, Offset: offset, Easing: easing})
	sort.SliceStable(k.frames, func(i, j int) bool {
		return k.frames[i].Offset < k.frames[j].Offset
	})
	return nil
}

// Duration returns the track's total duration.
func (k *Keyframes[T]) Duration() time.Duration { return k.duration }

// Len returns the number of keyframes.
func (k *Keyframes[T]) Len() int { return len(k.frames) }

// Frame returns the keyframe at sorted index i.
func (k *Keyframes[T]) Frame(i int) (Keyframe[T], bool) {
	if i < 0 || i >= len(k.frames) {
		var zero Keyframe[T]
		return zero, false
	}
	return k.frames[i], true
}

// ValueAt evaluates the track at a normalized progress in [0, 1]. It locates
// the pair of keyframes bracketing progress; before the first or past the
// last keyframe the track clamps to that single keyframe. Within a segment,
// local progress is eased by the ending keyframe's easing function; eased
// values outside [0, 1] interpolate past the segment's endpoints, so
// overshooting easings keep their character. Coincident offsets yield local
// progress 1 rather than dividing by zero. Returns false when the track is
// empty.
func (k *Keyframes[T]) ValueAt(progress float32) (T, bool) {
	var zero T
	if len(k.frames) == 0 {
		return zero, false
	}
	if progress < 0 {
		progress = 0
	} else if progress > 1 {
		progress = 1
	}

	start, end := k.frames[0], k.frames[0]
	found := false
	for i := 0; i+1 < len(k.frames); i++ {
		if progress >= k.frames[i].Offset && progress <= k.frames[i+1].Offset {
			start, end = k.frames[i], k.frames[i+1]
			found = true
			break
		}
	}
	if !found {
		if progress <= k.frames[0].Offset {
			start, end = k.frames[0], k.frames[0]
		} else {
			last := k.frames[len(k.frames)-1]
			start, end = last, last
		}
	}

	local := float32(1)
	if start.Offset != end.Offset {
		local = (progress - start.Offset) / (end.Offset - start.Offset)
	}
	// Exact values at segment boundaries, free of easing round-off. The
	// boundary test uses the raw local progress only: overshooting easings
	// like back and elastic legitimately exceed 1 mid-segment and must
	// interpolate past the end value.
	if local <= 0 {
		return start.Value, true
	}
	if local >= 1 {
		return end.Value, true
	}
	if end.Easing != nil {
		local = end.Easing(local, 0, 1, 1)
	}
	return start.Value.Interpolate(end.Value, local), true
}

// FadeKeyframes builds a two-keyframe track from start to end with
// ease-in-out cubic easing over the given duration.
func FadeKeyframes[T animatable.Animatable[T]](start, end T, d time.Duration) (*Keyframes[T], error) {
	k := NewKeyframes[T](d)
	if err := k.Add(start, 0, ease.InOutCubic); err != nil {
		return nil, err
	}
	if err := k.Add(end, 1, ease.InOutCubic); err != nil {
		return nil, err
	}
	return k, nil
}
