package spring

import "github.com/go-drift/motion/pkg/animatable"

// IntegratorPool reuses [Integrator] scratch objects so per-tick spring steps
// do not allocate.
//
// A pool is owned by a single logical updater at a time; concurrent use of
// one pool from multiple goroutines is undefined. Give each updating
// goroutine its own pool instance.
type IntegratorPool[T animatable.Animatable[T]] struct {
	free []*Integrator[T]
}

// NewIntegratorPool creates an empty pool.
func NewIntegratorPool[T animatable.Animatable[T]]() *IntegratorPool[T] {
	return &IntegratorPool[T]{}
}

// Get returns an integrator from the free list, or a fresh one if the list
// is empty. The integrator's scratch fields are zeroed.
func (p *IntegratorPool[T]) Get() *Integrator[T] {
	if n := len(p.free); n > 0 {
		in := p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
		in.Reset()
		return in
	}
	return NewIntegrator[T]()
}

// Put returns an integrator to the free list. Putting nil is a no-op.
func (p *IntegratorPool[T]) Put(in *Integrator[T]) {
	if in == nil {
		return
	}
	p.free = append(p.free, in)
}

// Available returns the number of integrators ready for reuse.
func (p *IntegratorPool[T]) Available() int {
	return len(p.free)
}
