// Package spring implements damped spring physics for value animation.
//
// The model follows Hooke's law with damping:
//
//	force        = (target - current) * stiffness
//	dampingForce = velocity * damping
//	acceleration = (force - dampingForce) / mass
//
// Two integration strategies are provided. [Integrator.IntegrateRK4] performs
// a 4-stage Runge-Kutta step using pre-allocated scratch state and is the
// high-accuracy default. [StepSubsteps] subdivides the frame delta into fixed
// substeps of semi-implicit Euler, which stays stable with stiff springs on
// hosts that deliver coarse or irregular deltas.
//
// Mass must be nonzero; the integrators take its reciprocal without checking.
// That is a caller contract, not a runtime-validated error.
package spring

import "github.com/go-drift/motion/pkg/animatable"

const (
	// FixedSubstep is the maximum substep size used by StepSubsteps.
	FixedSubstep float32 = 1.0 / 120.0

	// MaxDeltaTime is the ceiling applied to frame deltas before
	// integration. A host returning from a long suspension can report a
	// multi-second delta, which would make a stiff spring explode.
	MaxDeltaTime float32 = 0.1
)

// Spring holds the physical parameters of a damped spring.
type Spring struct {
	// Stiffness is the spring constant. Higher values snap faster.
	Stiffness float32
	// Damping is the damping coefficient. Higher values reduce oscillation.
	Damping float32
	// Mass is the mass of the animated value. Higher values add inertia.
	// Must be nonzero.
	Mass float32
	// Velocity is the initial scalar velocity applied along the motion
	// direction when the animation starts.
	Velocity float32
}

// Default returns the general-purpose spring: stiffness 100, damping 10,
// mass 1, no initial velocity.
func Default() Spring {
	return Spring{Stiffness: 100, Damping: 10, Mass: 1}
}

// State reports whether a spring is still moving.
type State int

const (
	// Active means the spring has not yet settled.
	Active State = iota
	// Settled means the spring reached its target within epsilon.
	Settled
)

func (s State) String() string {
	if s == Settled {
		return "settled"
	}
	return "active"
}

// ClampDelta limits a frame delta to MaxDeltaTime.
func ClampDelta(dt float32) float32 {
	if dt > MaxDeltaTime {
		return MaxDeltaTime
	}
	return dt
}

// Step advances position and velocity by one semi-implicit Euler step toward
// target and returns the new pair. It is the single-step primitive the batch
// processor and the substep integrator are defined in terms of.
func Step[T animatable.Animatable[T]](pos, vel, target T, s Spring, dt float32) (T, T) {
	force := target.Sub(pos).Mul(s.Stiffness)
	dampingForce := vel.Mul(s.Damping)
	accel := force.Sub(dampingForce).Mul(1 / s.Mass)
	vel = vel.Add(accel.Mul(dt))
	pos = pos.Add(vel.Mul(dt))
	return pos, vel
}

// StepSubsteps advances position and velocity across dt using semi-implicit
// Euler substeps no larger than FixedSubstep. dt is clamped to MaxDeltaTime.
func StepSubsteps[T animatable.Animatable[T]](pos, vel, target T, s Spring, dt float32) (T, T) {
	dt = ClampDelta(dt)
	steps := int(dt / FixedSubstep)
	if steps < 1 {
		steps = 1
	}
	stepDt := dt / float32(steps)
	for i := 0; i < steps; i++ {
		pos, vel = Step(pos, vel, target, s, stepDt)
	}
	return pos, vel
}
