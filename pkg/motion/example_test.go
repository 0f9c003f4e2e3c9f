package motion_test

import (
	"fmt"
	"time"

	"github.com/go-drift/motion/pkg/animatable"
	"github.com/go-drift/motion/pkg/motion"
	"github.com/go-drift/motion/pkg/spring"
	"github.com/go-drift/motion/pkg/tween"
	"github.com/tanema/gween/ease"
)

// This example animates a value with a linear tween, stepping it the way a
// frame loop would.
func ExampleMotion() {
	m := motion.New(animatable.Float(0))
	cfg := motion.NewConfig(motion.TweenMode(tween.New(500 * time.Millisecond)))
	m.AnimateTo(100, cfg)

	// Drive at 20fps until the animation reports completion.
	for m.Update(0.05) {
	}

	fmt.Printf("Final value: %.0f\n", m.Value())

	// Output:
	// Final value: 100
}

// This example uses spring physics instead of a fixed duration.
func ExampleMotion_spring() {
	m := motion.New(animatable.Float(0))
	m.AnimateTo(300, motion.NewConfig(motion.SpringMode(spring.Default())))

	for m.Update(1.0 / 60.0) {
	}

	fmt.Printf("Settled at: %.0f\n", m.Value())

	// Output:
	// Settled at: 300
}

// This example loops an animation a fixed number of times with a completion
// callback.
func ExampleConfig_WithLoop() {
	m := motion.New(animatable.Float(0))
	cfg := motion.NewConfig(motion.TweenMode(tween.New(500 * time.Millisecond))).
		WithLoop(motion.Times(3)).
		WithOnComplete(func() { fmt.Println("done") })
	m.AnimateTo(1, cfg)

	frames := 0
	for m.Update(0.05) {
		frames++
	}

	fmt.Printf("Frames: %d\n", frames+1)

	// Output:
	// done
	// Frames: 30
}

// This example chains animation steps into a sequence; each step starts from
// the value the previous one reached.
func ExampleSequence() {
	cfg := motion.NewConfig(motion.TweenMode(tween.New(100 * time.Millisecond)))
	seq := motion.NewSequence[animatable.Float]().
		Then(25, cfg).
		Then(75, cfg).
		Then(100, cfg).
		OnComplete(func() { fmt.Println("sequence complete") })

	m := motion.New(animatable.Float(0))
	m.AnimateSequence(seq)
	for m.Update(0.01) {
	}

	fmt.Printf("Final value: %.0f\n", m.Value())

	// Output:
	// sequence complete
	// Final value: 100
}

// This example plays a keyframe track with per-segment easing.
func ExampleKeyframes() {
	track := motion.NewKeyframes[animatable.Float](400 * time.Millisecond)
	track.Add(0, 0, nil)
	track.Add(80, 0.5, ease.OutQuad)
	track.Add(100, 1, ease.InQuad)

	m := motion.New(animatable.Float(0))
	m.AnimateKeyframes(track, motion.DefaultConfig())
	for m.Update(0.01) {
	}

	fmt.Printf("Final value: %.0f\n", m.Value())

	// Output:
	// Final value: 100
}

// This example animates a compound transform; every component settles onto
// the target together.
func ExampleMotion_transform() {
	m := motion.New(animatable.IdentityTransform())
	target := animatable.NewTransform(120, 40, 1.5, 0)
	m.AnimateTo(target, motion.NewConfig(motion.SpringMode(spring.Default())))

	for m.Update(1.0 / 60.0) {
	}

	v := m.Value()
	fmt.Printf("Position: (%.0f, %.0f) scale %.1f\n", v.X, v.Y, v.Scale)

	// Output:
	// Position: (120, 40) scale 1.5
}
