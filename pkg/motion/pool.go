package motion

// Handle identifies a config slot held out from a [ConfigPool]. The zero
// Handle is invalid and never matches a live slot.
type Handle struct {
	id uint64
}

// ID returns the handle's numeric identity.
func (h Handle) ID() uint64 { return h.id }

// ConfigPool reuses Config slots to keep per-activation setup off the heap.
//
// A pool is owned by a single logical updater at a time; concurrent use of
// one pool from multiple goroutines is undefined. Give each updating
// goroutine its own pool.
//
// For any interleaving of Get and Put, InUse()+Available() equals the number
// of distinct slots ever created. Returning an unknown or already-returned
// handle is a no-op.
type ConfigPool struct {
	available []*Config
	inUse     map[uint64]*Config
	nextID    uint64
}

// NewConfigPool creates a pool with a default capacity hint.
func NewConfigPool() *ConfigPool {
	return NewConfigPoolSize(16)
}

// NewConfigPoolSize creates a pool sized for the given number of slots.
func NewConfigPoolSize(capacity int) *ConfigPool {
	return &ConfigPool{
		available: make([]*Config, 0, capacity),
		inUse:     make(map[uint64]*Config, capacity),
	}
}

// Get hands out a config slot, reusing a returned one when available. The
// slot starts in the default configuration.
func (p *ConfigPool) Get() Handle {
	var cfg *Config
	if n := len(p.available); n > 0 {
		cfg = p.available[n-1]
		p.available[n-1] = nil
		p.available = p.available[:n-1]
	} else {
		c := DefaultConfig()
		cfg = &c
	}
	p.nextID++
	p.inUse[p.nextID] = cfg
	return Handle{id: p.nextID}
}

// Put resets the slot behind the handle to the default configuration and
// returns it to the free list. Unknown or already-returned handles are
// ignored.
func (p *ConfigPool) Put(h Handle) {
	cfg, ok := p.inUse[h.id]
	if !ok {
		return
	}
	delete(p.inUse, h.id)
	*cfg = DefaultConfig()
	p.available = append(p.available, cfg)
}

// Modify mutates the slot behind the handle in place. Unknown handles are
// ignored.
func (p *ConfigPool) Modify(h Handle, fn func(*Config)) {
	if cfg, ok := p.inUse[h.id]; ok {
		fn(cfg)
	}
}

// Ref returns a copy of the slot behind the handle.
func (p *ConfigPool) Ref(h Handle) (Config, bool) {
	if cfg, ok := p.inUse[h.id]; ok {
		return *cfg, true
	}
	return Config{}, false
}

// InUse returns the number of slots currently held out.
func (p *ConfigPool) InUse() int { return len(p.inUse) }

// Available returns the number of slots ready for reuse.
func (p *ConfigPool) Available() int { return len(p.available) }

// Clear drops every slot, in use or not. Outstanding handles become no-ops.
func (p *ConfigPool) Clear() {
	p.available = p.available[:0]
	p.inUse = make(map[uint64]*Config)
	p.nextID = 0
}

// TrimTo shrinks the free list to at most n slots, leaving in-use slots
// untouched.
func (p *ConfigPool) TrimTo(n int) {
	if len(p.available) > n {
		for i := n; i < len(p.available); i++ {
			p.available[i] = nil
		}
		p.available = p.available[:n]
	}
}
