package motion

import "sync"

// Animation is anything the driver can step. *Motion implements it.
type Animation interface {
	// Update advances the animation by dt seconds and reports whether it is
	// still animating.
	Update(dt float32) bool
}

// Driver steps a set of animations from a single host loop. It owns no
// timer: the host calls Step on whatever cadence it chooses, typically once
// per rendered frame.
type Driver struct {
	mu     sync.Mutex
	active map[int]Animation
	nextID int
}

// NewDriver creates an empty driver.
func NewDriver() *Driver {
	return &Driver{active: make(map[int]Animation)}
}

// Add registers an animation and returns a function that removes it again.
func (d *Driver) Add(a Animation) func() {
	d.mu.Lock()
	id := d.nextID
	d.nextID++
	d.active[id] = a
	d.mu.Unlock()
	return func() {
		d.mu.Lock()
		delete(d.active, id)
		d.mu.Unlock()
	}
}

// Len returns the number of registered animations.
func (d *Driver) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.active)
}

// Step advances every registered animation by dt seconds and reports whether
// any is still animating. Animations are copied out under the lock so their
// callbacks can register or remove animations without deadlocking.
func (d *Driver) Step(dt float32) bool {
	d.mu.Lock()
	batch := make([]Animation, 0, len(d.active))
	for _, a := range d.active {
		batch = append(batch, a)
	}
	d.mu.Unlock()

	animating := false
	for _, a := range batch {
		if a.Update(dt) {
			animating = true
		}
	}
	return animating
}
