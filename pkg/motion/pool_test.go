package motion_test

import (
	"testing"
	"time"

	"github.com/go-drift/motion/pkg/motion"
)

func TestConfigPoolConservation(t *testing.T) {
	p := motion.NewConfigPool()

	handles := make([]motion.Handle, 5)
	for i := range handles {
		handles[i] = p.Get()
	}
	if got := p.InUse(); got != 5 {
		t.Fatalf("InUse = %d, want 5", got)
	}
	if got := p.Available(); got != 0 {
		t.Fatalf("Available = %d, want 0", got)
	}

	for _, h := range handles {
		p.Put(h)
	}
	if got := p.InUse(); got != 0 {
		t.Errorf("InUse after drain = %d, want 0", got)
	}
	if got := p.Available(); got != 5 {
		t.Errorf("Available after drain = %d, want 5", got)
	}

	// Re-issuing reuses drained slots; the slot population is conserved.
	for i := 0; i < 3; i++ {
		p.Get()
	}
	if got := p.InUse() + p.Available(); got != 5 {
		t.Errorf("InUse+Available = %d, want 5", got)
	}
}

func TestConfigPoolDoubleReturnIsNoOp(t *testing.T) {
	p := motion.NewConfigPool()
	h := p.Get()
	p.Put(h)
	p.Put(h)
	if got := p.Available(); got != 1 {
		t.Errorf("Available after double Put = %d, want 1", got)
	}
	p.Put(motion.Handle{})
	if got := p.Available(); got != 1 {
		t.Errorf("Available after unknown Put = %d, want 1", got)
	}
}

func TestConfigPoolModify(t *testing.T) {
	p := motion.NewConfigPool()
	h := p.Get()

	p.Modify(h, func(c *motion.Config) {
		c.Delay = 100 * time.Millisecond
	})
	cfg, ok := p.Ref(h)
	if !ok {
		t.Fatal("Ref returned no config for live handle")
	}
	if cfg.Delay != 100*time.Millisecond {
		t.Errorf("Delay = %v, want 100ms", cfg.Delay)
	}
}

func TestConfigPoolResetOnReturn(t *testing.T) {
	p := motion.NewConfigPool()
	h := p.Get()
	p.Modify(h, func(c *motion.Config) {
		c.Delay = time.Second
		c.Loop = motion.Infinite
	})
	p.Put(h)

	h2 := p.Get()
	cfg, _ := p.Ref(h2)
	if cfg.Delay != 0 {
		t.Errorf("reused slot Delay = %v, want 0", cfg.Delay)
	}
	if cfg.Loop.Kind != motion.LoopNone {
		t.Errorf("reused slot Loop = %v, want LoopNone", cfg.Loop.Kind)
	}
}

func TestConfigPoolStaleHandleAfterReuse(t *testing.T) {
	p := motion.NewConfigPool()
	h := p.Get()
	p.Put(h)
	h2 := p.Get()

	// The stale handle must not alias the reissued slot.
	p.Modify(h, func(c *motion.Config) {
		c.Delay = time.Hour
	})
	cfg, _ := p.Ref(h2)
	if cfg.Delay != 0 {
		t.Errorf("stale handle mutated live slot: Delay = %v", cfg.Delay)
	}
}

func TestConfigPoolClear(t *testing.T) {
	p := motion.NewConfigPool()
	h := p.Get()
	p.Get()
	p.Put(h)
	p.Clear()
	if p.InUse() != 0 || p.Available() != 0 {
		t.Errorf("after Clear: InUse=%d Available=%d", p.InUse(), p.Available())
	}
}

func TestConfigPoolTrimTo(t *testing.T) {
	p := motion.NewConfigPool()
	handles := make([]motion.Handle, 4)
	for i := range handles {
		handles[i] = p.Get()
	}
	for _, h := range handles {
		p.Put(h)
	}
	p.TrimTo(2)
	if got := p.Available(); got != 2 {
		t.Errorf("Available after TrimTo(2) = %d, want 2", got)
	}
	p.TrimTo(10)
	if got := p.Available(); got != 2 {
		t.Errorf("Available after TrimTo(10) = %d, want 2", got)
	}
}
