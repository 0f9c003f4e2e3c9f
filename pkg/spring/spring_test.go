package spring_test

import (
	"math"
	"testing"

	"github.com/go-drift/motion/pkg/animatable"
	"github.com/go-drift/motion/pkg/spring"
)

func TestDefault(t *testing.T) {
	s := spring.Default()
	if s.Stiffness != 100 || s.Damping != 10 || s.Mass != 1 || s.Velocity != 0 {
		t.Errorf("Default = %+v", s)
	}
}

func TestStateString(t *testing.T) {
	if got := spring.Active.String(); got != "active" {
		t.Errorf("Active.String() = %q", got)
	}
	if got := spring.Settled.String(); got != "settled" {
		t.Errorf("Settled.String() = %q", got)
	}
}

func TestClampDelta(t *testing.T) {
	if got := spring.ClampDelta(0.016); got != 0.016 {
		t.Errorf("ClampDelta(0.016) = %v", got)
	}
	if got := spring.ClampDelta(5); got != spring.MaxDeltaTime {
		t.Errorf("ClampDelta(5) = %v, want %v", got, spring.MaxDeltaTime)
	}
}

func TestStepMovesTowardTarget(t *testing.T) {
	pos, vel := animatable.Float(0), animatable.Float(0)
	pos, vel = spring.Step(pos, vel, 100, spring.Default(), 1.0/60.0)
	if pos <= 0 {
		t.Errorf("position did not move toward target: %v", pos)
	}
	if vel <= 0 {
		t.Errorf("velocity did not pick up: %v", vel)
	}
}

// The canonical convergence case: a default-parameter spring from 0 to 100
// settles within 0.01 well inside 300 ticks at 60Hz.
func TestRK4Convergence(t *testing.T) {
	s := spring.Spring{Stiffness: 100, Damping: 10, Mass: 1}
	in := spring.NewIntegrator[animatable.Float]()
	pos, vel := animatable.Float(0), animatable.Float(0)
	for i := 0; i < 300; i++ {
		pos, vel = in.IntegrateRK4(pos, vel, 100, s, 1.0/60.0)
	}
	if math.Abs(float64(pos-100)) > 0.01 {
		t.Errorf("position = %v, want within 0.01 of 100", pos)
	}
	if vel.Magnitude() > 0.01 {
		t.Errorf("velocity magnitude = %v, want < 0.01", vel.Magnitude())
	}
}

func TestSubstepConvergence(t *testing.T) {
	s := spring.Spring{Stiffness: 100, Damping: 10, Mass: 1}
	pos, vel := animatable.Float(0), animatable.Float(0)
	for i := 0; i < 300; i++ {
		pos, vel = spring.StepSubsteps(pos, vel, 100, s, 1.0/60.0)
	}
	if math.Abs(float64(pos-100)) > 0.01 {
		t.Errorf("position = %v, want within 0.01 of 100", pos)
	}
	if vel.Magnitude() > 0.01 {
		t.Errorf("velocity magnitude = %v, want < 0.01", vel.Magnitude())
	}
}

// A stiff spring stays bounded under the substep integrator even when the
// host hands over a clamped-worst-case delta.
func TestSubstepStability(t *testing.T) {
	s := spring.Spring{Stiffness: 3000, Damping: 40, Mass: 1}
	pos, vel := animatable.Float(0), animatable.Float(0)
	for i := 0; i < 100; i++ {
		pos, vel = spring.StepSubsteps(pos, vel, 100, s, spring.MaxDeltaTime)
		if math.IsNaN(float64(pos)) || math.Abs(float64(pos)) > 1e4 {
			t.Fatalf("integration diverged: pos=%v vel=%v", pos, vel)
		}
	}
}

func TestRK4ConvergesOnTransform(t *testing.T) {
	s := spring.Default()
	in := spring.NewIntegrator[animatable.Transform]()
	pos := animatable.IdentityTransform()
	var vel animatable.Transform
	target := animatable.NewTransform(100, 50, 2, 1)
	for i := 0; i < 600; i++ {
		pos, vel = in.IntegrateRK4(pos, vel, target, s, 1.0/60.0)
	}
	if target.Sub(pos).Magnitude() > 0.01 {
		t.Errorf("transform did not settle: %+v", pos)
	}
}

func TestIntegratorPoolReuse(t *testing.T) {
	p := spring.NewIntegratorPool[animatable.Float]()
	if p.Available() != 0 {
		t.Fatalf("new pool Available = %d", p.Available())
	}

	in1 := p.Get()
	// Dirty the scratch state so reuse can prove it was zeroed.
	in1.IntegrateRK4(0, 0, 100, spring.Default(), 1.0/60.0)
	p.Put(in1)
	if p.Available() != 1 {
		t.Fatalf("Available after Put = %d", p.Available())
	}

	in2 := p.Get()
	if in2 != in1 {
		t.Error("pool did not reuse the returned integrator")
	}
	zeroed := spring.NewIntegrator[animatable.Float]()
	if *in2 != *zeroed {
		t.Error("reused integrator scratch was not reset")
	}
}

func TestIntegratorPoolPutNil(t *testing.T) {
	p := spring.NewIntegratorPool[animatable.Float]()
	p.Put(nil)
	if p.Available() != 0 {
		t.Errorf("Available after Put(nil) = %d", p.Available())
	}
}

func BenchmarkRK4Step(b *testing.B) {
	s := spring.Default()
	in := spring.NewIntegrator[animatable.Float]()
	pos, vel := animatable.Float(0), animatable.Float(0)
	for i := 0; i < b.N; i++ {
		pos, vel = in.IntegrateRK4(pos, vel, 100, s, 1.0/60.0)
	}
	_ = pos
}

func BenchmarkSubstepStep(b *testing.B) {
	s := spring.Default()
	pos, vel := animatable.Float(0), animatable.Float(0)
	for i := 0; i < b.N; i++ {
		pos, vel = spring.StepSubsteps(pos, vel, 100, s, 1.0/60.0)
	}
	_ = pos
}
