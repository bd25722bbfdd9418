package game

// SlotState is the explicit per-slot occupancy state of a pool entry.
type SlotState uint8

const (
	SlotFree SlotState = iota
	SlotActive
)

// Pool is a fixed-capacity slot arena with an index free-list. Alloc never
// grows the arena and never errors; callers treat a failed Alloc as a
// no-op, which is the intended behavior under load.
type Pool[T any] struct {
	slots []T
	state []SlotState
	free  []int
}

// NewPool creates a pool with the given fixed capacity, all slots free.
func NewPool[T any](capacity int) *Pool[T] {
	p := &Pool[T]{
		slots: make([]T, capacity),
		state: make([]SlotState, capacity),
		free:  make([]int, 0, capacity),
	}
	p.Reset()
	return p
}

// Reset frees every slot. Slot contents are left as-is; Alloc overwrites
// nothing, so callers must fully initialize a slot after allocating it.
func (p *Pool[T]) Reset() {
	p.free = p.free[:0]
	for i := len(p.slots) - 1; i >= 0; i-- {
		p.state[i] = SlotFree
		p.free = append(p.free, i)
	}
}

// Alloc takes a free slot and marks it active. Returns false when the pool
// is full.
func (p *Pool[T]) Alloc() (int, bool) {
	n := len(p.free)
	if n == 0 {
		return 0, false
	}
	i := p.free[n-1]
	p.free = p.free[:n-1]
	p.state[i] = SlotActive
	return i, true
}

// Release returns an active slot to the free list. Releasing a free slot is
// a no-op.
func (p *Pool[T]) Release(i int) {
	if p.state[i] == SlotFree {
		return
	}
	p.state[i] = SlotFree
	p.free = append(p.free, i)
}

// At returns the slot at index i regardless of its state.
func (p *Pool[T]) At(i int) *T {
	return &p.slots[i]
}

// State returns the occupancy state of slot i.
func (p *Pool[T]) State(i int) SlotState {
	return p.state[i]
}

// Cap returns the fixed capacity.
func (p *Pool[T]) Cap() int {
	return len(p.slots)
}

// Active returns the number of occupied slots.
func (p *Pool[T]) Active() int {
	return len(p.slots) - len(p.free)
}
