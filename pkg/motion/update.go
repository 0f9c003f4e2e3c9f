package motion

import (
	"time"

	"github.com/go-drift/motion/pkg/spring"
)

// Update advances the animation by dt seconds and returns whether it is
// still animating. The host calls it once per frame; dt is clamped to
// spring.MaxDeltaTime so a long suspension cannot destabilize the
// integration. Completion callbacks run synchronously inside Update.
func (m *Motion[T]) Update(dt float32) bool {
	if m.state == stateIdle {
		return false
	}
	if dt <= 0 {
		return m.running
	}
	dt = spring.ClampDelta(dt)

	switch m.state {
	case stateKeyframes:
		return m.updateKeyframes(dt)
	default:
		return m.updateRunning(dt)
	}
}

func (m *Motion[T]) updateRunning(dt float32) bool {
	cfg, ok := m.configs.Ref(m.handle)
	if !ok {
		cfg = DefaultConfig()
	}
	if m.waitDelay(cfg, dt) {
		return true
	}

	var completed bool
	switch cfg.Mode.Kind() {
	case ModeSpring:
		completed = m.stepSpring(cfg, dt) == spring.Settled
	default:
		completed = m.stepTween(cfg, dt)
	}
	if !completed {
		return true
	}

	if m.state == stateSequence && m.sequence != nil {
		return m.advanceSequence()
	}
	return m.handleCompletion(cfg)
}

func (m *Motion[T]) updateKeyframes(dt float32) bool {
	cfg, ok := m.configs.Ref(m.handle)
	if !ok {
		cfg = DefaultConfig()
	}
	if m.waitDelay(cfg, dt) {
		return true
	}

	track := m.keyframes
	if track == nil || track.Len() == 0 {
		m.finish(false)
		return false
	}

	progress := float32(1)
	if d := track.Duration(); d > 0 {
		progress = float32(m.elapsed.Seconds() / d.Seconds())
		if progress > 1 {
			progress = 1
		}
	}
	if v, ok := track.ValueAt(progress); ok {
		m.current = v
	}
	m.elapsed += durationOf(dt)

	if progress >= 1 {
		return m.handleCompletion(cfg)
	}
	return true
}

// waitDelay consumes dt against the configured start delay. It returns true
// while the delay is still elapsing, during which the value does not move.
func (m *Motion[T]) waitDelay(cfg Config, dt float32) bool {
	if m.delayElapsed >= cfg.Delay {
		return false
	}
	m.delayElapsed += durationOf(dt)
	return true
}

// stepTween advances the eased interpolation and reports completion.
// Endpoints snap exactly: eased progress 0 pins the initial value and eased
// progress 1 pins the target, avoiding floating-point drift.
func (m *Motion[T]) stepTween(cfg Config, dt float32) bool {
	m.elapsed += durationOf(dt)
	tw := cfg.Mode.Tween()
	eased := tw.Evaluate(m.elapsed)
	// Only exact endpoints snap: easings like elastic legitimately
	// overshoot past 1 mid-run and must interpolate beyond the target.
	switch eased {
	case 0:
		m.current = m.initial
	case 1:
		m.current = m.target
	default:
		m.current = m.initial.Interpolate(m.target, eased)
	}
	return tw.Done(m.elapsed)
}

// stepSpring advances the physics integration and reports the spring state.
// Settling snaps the value onto the target and zeroes the velocity.
func (m *Motion[T]) stepSpring(cfg Config, dt float32) spring.State {
	eps := m.epsilonFor(cfg)
	if m.springSettled(eps) {
		return spring.Settled
	}

	s := cfg.Mode.Spring()
	if m.Integration == IntegrateSubsteps {
		m.current, m.velocity = spring.StepSubsteps(m.current, m.velocity, m.target, s, dt)
	} else {
		if m.integrator == nil {
			m.integrator = m.pool.Get()
		}
		m.current, m.velocity = m.integrator.IntegrateRK4(m.current, m.velocity, m.target, s, dt)
	}

	if m.springSettled(eps) {
		return spring.Settled
	}
	return spring.Active
}

// springSettled checks the completion test and snaps onto the target when it
// passes.
func (m *Motion[T]) springSettled(eps float32) bool {
	delta := m.target.Sub(m.current)
	if delta.Magnitude() < eps && m.velocity.Magnitude() < eps {
		var zero T
		m.current = m.target
		m.velocity = zero
		return true
	}
	return false
}

// handleCompletion applies the loop policy after a natural completion and
// returns whether the animation continues. Terminal completions fire the
// config callback once and transition to idle.
func (m *Motion[T]) handleCompletion(cfg Config) bool {
	switch cfg.Loop.Kind {
	case LoopInfinite:
		m.restart()
		return true
	case LoopTimes:
		m.currentLoop++
		if m.currentLoop >= cfg.Loop.Count {
			m.finish(true)
			return false
		}
		m.restart()
		return true
	case LoopAlternate:
		m.alternate()
		return true
	case LoopAlternateTimes:
		m.currentLoop++
		if m.currentLoop >= cfg.Loop.Count*2 {
			m.finish(true)
			return false
		}
		m.alternate()
		return true
	default:
		m.finish(true)
		return false
	}
}

// restart rewinds a looping animation to its initial value.
func (m *Motion[T]) restart() {
	var zero T
	m.current = m.initial
	m.elapsed = 0
	m.velocity = zero
	m.running = true
}

// alternate flips direction for alternate loops, starting the next
// half-cycle from the far end.
func (m *Motion[T]) alternate() {
	var zero T
	m.reverse = !m.reverse
	m.initial, m.target = m.target, m.initial
	m.current = m.initial
	m.elapsed = 0
	m.velocity = zero
	m.running = true
}

// advanceSequence moves to the next sequence step, preserving position
// continuity by starting the step from the current value. When the final
// step has finished it runs the sequence's completion callback once and
// transitions to idle.
func (m *Motion[T]) advanceSequence() bool {
	seq := m.sequence
	if seq.Advance() {
		step, ok := seq.Current()
		if ok {
			var zero T
			m.initial = m.current
			m.target = step.Target
			m.velocity = zero
			m.elapsed = 0
			m.delayElapsed = 0
			m.running = true
			m.configs.Modify(m.handle, func(c *Config) { *c = step.Config })
			m.applyInitialVelocity(step.Config)
			m.ensureIntegrator(step.Config)
			return true
		}
	}
	seq.executeCompletion()
	m.finish(false)
	return false
}

func durationOf(dt float32) time.Duration {
	return time.Duration(float64(dt) * float64(time.Second))
}
