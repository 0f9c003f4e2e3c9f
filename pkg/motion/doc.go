// Package motion is a generic value-animation engine: it computes per-frame
// values that move smoothly from an initial state toward a target state.
//
// # Core Components
//
//   - [Motion]: the per-value controller. Holds the current value, target,
//     and velocity, and dispatches each Update to the active animation.
//
//   - [Config]: one activation's mode (tween or spring), loop policy, start
//     delay, completion callback, and optional epsilon override.
//
//   - [Sequence]: an ordered chain of animation steps executed one after
//     another, with an atomic cursor so shared holders can observe progress.
//
//   - [Keyframes]: a sorted track of (value, offset, easing) breakpoints
//     played over a fixed duration.
//
//   - [ConfigPool]: reusable config slots keeping per-activation setup off
//     the heap on the per-frame path.
//
//   - [Driver]: an optional registry stepping many animations from one host
//     loop.
//
// # Scheduling model
//
// The engine owns no timer or goroutine. A host loop calls Update(dt) on
// each Motion (or Step(dt) on a Driver) at whatever cadence it chooses,
// commonly 60-90Hz, and reads values back with Value. Frame deltas are
// clamped so a backgrounded host cannot destabilize spring integration.
//
// # Basic Usage
//
//	m := motion.New(animatable.Float(0))
//	m.AnimateTo(100, motion.NewConfig(motion.SpringMode(spring.Default())))
//
//	for m.Update(1.0 / 60.0) {
//		render(float32(m.Value()))
//	}
//
// Non-finite targets or deltas are a caller contract violation: the engine
// does not guard every arithmetic path against NaN or infinity.
package motion
