package spring

import "github.com/go-drift/motion/pkg/animatable"

// Integrator holds the scratch state for one RK4 spring step.
//
// The four stage slots are plain fields so a step performs no heap
// allocation. An Integrator is not safe for concurrent use; give each
// updating goroutine its own, or draw them from an [IntegratorPool].
type Integrator[T animatable.Animatable[T]] struct {
	k1Pos, k1Vel T
	k2Pos, k2Vel T
	k3Pos, k3Vel T
	k4Pos, k4Vel T
}

// NewIntegrator creates a zeroed integrator.
func NewIntegrator[T animatable.Animatable[T]]() *Integrator[T] {
	return &Integrator[T]{}
}

// Reset zeroes all scratch fields.
func (in *Integrator[T]) Reset() {
	*in = Integrator[T]{}
}

// IntegrateRK4 advances position and velocity by one 4-stage Runge-Kutta step
// toward target and returns the new pair. dt is clamped to MaxDeltaTime.
func (in *Integrator[T]) IntegrateRK4(pos, vel, target T, s Spring, dt float32) (T, T) {
	dt = ClampDelta(dt)
	massInv := 1 / s.Mass
	accel := func(p, v T) T {
		force := target.Sub(p).Mul(s.Stiffness)
		dampingForce := v.Mul(s.Damping)
		return force.Sub(dampingForce).Mul(massInv)
	}

	half := dt / 2

	in.k1Pos = vel
	in.k1Vel = accel(pos, vel)

	in.k2Pos = vel.Add(in.k1Vel.Mul(half))
	in.k2Vel = accel(pos.Add(in.k1Pos.Mul(half)), vel.Add(in.k1Vel.Mul(half)))

	in.k3Pos = vel.Add(in.k2Vel.Mul(half))
	in.k3Vel = accel(pos.Add(in.k2Pos.Mul(half)), vel.Add(in.k2Vel.Mul(half)))

	in.k4Pos = vel.Add(in.k3Vel.Mul(dt))
	in.k4Vel = accel(pos.Add(in.k3Pos.Mul(dt)), vel.Add(in.k3Vel.Mul(dt)))

	sixth := dt / 6
	newPos := pos.Add(
		in.k1Pos.Add(in.k2Pos.Mul(2)).Add(in.k3Pos.Mul(2)).Add(in.k4Pos).Mul(sixth))
	newVel := vel.Add(
		in.k1Vel.Add(in.k2Vel.Mul(2)).Add(in.k3Vel.Mul(2)).Add(in.k4Vel).Mul(sixth))
	return newPos, newVel
}
