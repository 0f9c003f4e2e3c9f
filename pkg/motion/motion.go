package motion

import (
	"time"

	"github.com/google/uuid"

	"github.com/go-drift/motion/pkg/animatable"
	"github.com/go-drift/motion/pkg/spring"
)

// IntegrationMethod selects the spring integration strategy.
type IntegrationMethod int

const (
	// IntegrateRK4 uses 4-stage Runge-Kutta with pooled scratch state.
	// High accuracy; the default.
	IntegrateRK4 IntegrationMethod = iota
	// IntegrateSubsteps subdivides the frame delta into fixed semi-implicit
	// Euler substeps. Prefer it on hosts with coarse or irregular deltas.
	IntegrateSubsteps
)

type stateKind uint8

const (
	stateIdle stateKind = iota
	stateRunning
	stateSequence
	stateKeyframes
)

// Motion animates a single value toward targets over successive Update
// calls. It owns no timer: the host drives it by calling Update(dt) on
// whatever cadence it chooses and reads the result back with Value.
//
// Exactly one of plain single-run, sequence, or keyframe animation is active
// at a time. A Motion is not safe for concurrent use; independent Motion
// instances share no state.
type Motion[T animatable.Animatable[T]] struct {
	id uuid.UUID

	current  T
	target   T
	initial  T
	velocity T

	running      bool
	elapsed      time.Duration
	delayElapsed time.Duration
	currentLoop  uint8
	reverse      bool

	state     stateKind
	sequence  *Sequence[T]
	keyframes *Keyframes[T]

	configs    *ConfigPool
	handle     Handle
	pool       *spring.IntegratorPool[T]
	integrator *spring.Integrator[T]

	// Integration selects the spring integration strategy for this motion.
	Integration IntegrationMethod

	defaultEpsilon float32
}

// New creates an idle motion at the given initial value with its own config
// and integrator pools.
func New[T animatable.Animatable[T]](initial T) *Motion[T] {
	return NewWithPools(initial, NewConfigPool(), spring.NewIntegratorPool[T]())
}

// NewWithPools creates an idle motion drawing from caller-supplied pools.
// The pools must be driven by a single logical updater; sharing them across
// motions updated by the same goroutine is the intended use.
func NewWithPools[T animatable.Animatable[T]](initial T, configs *ConfigPool, integrators *spring.IntegratorPool[T]) *Motion[T] {
	m := &Motion[T]{
		id:             uuid.New(),
		current:        initial,
		target:         initial,
		initial:        initial,
		configs:        configs,
		pool:           integrators,
		defaultEpsilon: animatable.DefaultEpsilon,
	}
	m.handle = configs.Get()
	return m
}

// ID returns the motion's stable identity.
func (m *Motion[T]) ID() uuid.UUID { return m.id }

// Value returns the current animated value.
func (m *Motion[T]) Value() T { return m.current }

// Velocity returns the current velocity.
func (m *Motion[T]) Velocity() T { return m.velocity }

// Target returns the value the motion is heading toward.
func (m *Motion[T]) Target() T { return m.target }

// IsRunning reports whether any animation is active.
func (m *Motion[T]) IsRunning() bool { return m.running }

// Reversed reports whether an alternate loop is currently on a reverse
// half-cycle.
func (m *Motion[T]) Reversed() bool { return m.reverse }

// SetDefaultEpsilon sets the completion threshold used when the active
// config carries no override. See the animatable package for per-type
// constants.
func (m *Motion[T]) SetDefaultEpsilon(epsilon float32) {
	m.defaultEpsilon = epsilon
}

// AnimateTo starts a single-run animation from the current value toward
// target. Any active sequence or keyframe animation is dropped. A released
// motion ignores the call.
func (m *Motion[T]) AnimateTo(target T, cfg Config) {
	if m.released() {
		return
	}
	var zero T
	m.initial = m.current
	m.target = target
	m.velocity = zero
	m.elapsed = 0
	m.delayElapsed = 0
	m.currentLoop = 0
	m.reverse = false
	m.sequence = nil
	m.keyframes = nil
	m.running = true
	m.configs.Modify(m.handle, func(c *Config) { *c = cfg })
	m.state = stateRunning
	m.applyInitialVelocity(cfg)
	m.ensureIntegrator(cfg)
}

// AnimateSequence starts the first step of the sequence and retains a shared
// reference to it so completion can advance through the remaining steps.
// Empty or nil sequences are ignored.
func (m *Motion[T]) AnimateSequence(seq *Sequence[T]) {
	if seq == nil || seq.Len() == 0 || m.released() {
		return
	}
	seq.Reset()
	step, _ := seq.Step(0)

	var zero T
	m.initial = m.current
	m.target = step.Target
	m.velocity = zero
	m.elapsed = 0
	m.delayElapsed = 0
	m.currentLoop = 0
	m.reverse = false
	m.sequence = seq
	m.keyframes = nil
	m.running = true
	m.configs.Modify(m.handle, func(c *Config) { *c = step.Config })
	m.state = stateSequence
	m.applyInitialVelocity(step.Config)
	m.ensureIntegrator(step.Config)
}

// AnimateKeyframes plays the track over its duration. The config's loop mode
// and completion callback apply when the track finishes; its mode field is
// ignored since keyframes define their own timing.
func (m *Motion[T]) AnimateKeyframes(track *Keyframes[T], cfg Config) {
	if track == nil || track.Len() == 0 || m.released() {
		return
	}
	var zero T
	m.initial = m.current
	m.velocity = zero
	m.elapsed = 0
	m.delayElapsed = 0
	m.currentLoop = 0
	m.reverse = false
	m.sequence = nil
	m.keyframes = track
	m.running = true
	m.configs.Modify(m.handle, func(c *Config) { *c = cfg })
	m.state = stateKeyframes
	// Keyframes never integrate; scratch held by a prior spring run goes
	// back to the pool.
	if m.integrator != nil {
		m.pool.Put(m.integrator)
		m.integrator = nil
	}
}

// Delay sets the start delay on the active configuration.
func (m *Motion[T]) Delay(d time.Duration) {
	m.configs.Modify(m.handle, func(c *Config) { c.Delay = d })
}

// Stop halts the animation at its current value. Sequence and keyframe
// associations are cleared, velocity is zeroed, and no completion callback
// fires.
func (m *Motion[T]) Stop() {
	m.finish(false)
}

// Reset stops the animation and returns the value to the initial value of
// the most recent activation. No completion callback fires.
func (m *Motion[T]) Reset() {
	m.finish(false)
	m.current = m.initial
	m.target = m.initial
	m.elapsed = 0
	m.delayElapsed = 0
	m.reverse = false
}

// Release returns the motion's pooled resources. Call it when the motion
// will not be used again and its pools are shared with other motions. A
// released motion is inert: further Animate calls are ignored.
func (m *Motion[T]) Release() {
	m.finish(false)
	m.configs.Put(m.handle)
	m.handle = Handle{}
}

// released reports whether the motion has given up its config slot.
func (m *Motion[T]) released() bool {
	return m.handle == Handle{}
}

// epsilonFor returns the completion threshold in effect for cfg.
func (m *Motion[T]) epsilonFor(cfg Config) float32 {
	if cfg.Epsilon != nil {
		return *cfg.Epsilon
	}
	return m.defaultEpsilon
}

// applyInitialVelocity seeds the velocity from a spring's scalar Velocity
// field, directed along the line toward the target.
func (m *Motion[T]) applyInitialVelocity(cfg Config) {
	if cfg.Mode.Kind() != ModeSpring {
		return
	}
	v := cfg.Mode.Spring().Velocity
	if v == 0 {
		return
	}
	delta := m.target.Sub(m.current)
	if mag := delta.Magnitude(); mag > 0 {
		m.velocity = delta.Mul(v / mag)
	}
}

// ensureIntegrator borrows RK4 scratch from the pool for spring modes and
// returns it for the others.
func (m *Motion[T]) ensureIntegrator(cfg Config) {
	needsRK4 := cfg.Mode.Kind() == ModeSpring && m.Integration == IntegrateRK4
	switch {
	case needsRK4 && m.integrator == nil:
		m.integrator = m.pool.Get()
	case !needsRK4 && m.integrator != nil:
		m.pool.Put(m.integrator)
		m.integrator = nil
	}
}

// finish transitions to idle, clearing associations and zeroing velocity.
// When fireCallback is set the active config's completion callback is taken
// and run.
func (m *Motion[T]) finish(fireCallback bool) {
	var zero T
	m.running = false
	m.currentLoop = 0
	m.velocity = zero
	m.sequence = nil
	m.keyframes = nil
	m.state = stateIdle
	if m.integrator != nil {
		m.pool.Put(m.integrator)
		m.integrator = nil
	}
	if fireCallback {
		m.fireCompletion()
	}
}

// fireCompletion takes the active config's callback and runs it, guaranteeing
// at most one execution per activation.
func (m *Motion[T]) fireCompletion() {
	var fn func()
	m.configs.Modify(m.handle, func(c *Config) {
		fn = c.OnComplete
		c.OnComplete = nil
	})
	if fn != nil {
		fn()
	}
}
