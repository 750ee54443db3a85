// Package pool provides a growable object pool for recycling game entities.
package pool

// entry pairs a pooled instance with its active flag.
type entry[T comparable] struct {
	active bool
	obj    T
}

// Pool recycles instances created by a factory. Acquire never fails: when every
// entry is active a new instance is allocated and appended, so callers that need
// a hard cap must enforce it themselves (see object.EnemyManager).
type Pool[T comparable] struct {
	entries []entry[T]
	factory func() T
	reset   func(T)
}

// New creates a pool with initialSize pre-allocated inactive instances.
// reset is invoked on every released instance and may be nil.
func New[T comparable](factory func() T, reset func(T), initialSize int) *Pool[T] {
	if initialSize < 0 {
		initialSize = 0
	}
	p := &Pool[T]{
		entries: make([]entry[T], 0, initialSize),
		factory: factory,
		reset:   reset,
	}
	for i := 0; i < initialSize; i++ {
		p.entries = append(p.entries, entry[T]{obj: factory()})
	}
	return p
}

// Acquire returns the first inactive instance, marking it active.
// Allocates a new instance when none is free.
func (p *Pool[T]) Acquire() T {
	for i := range p.entries {
		if !p.entries[i].active {
			p.entries[i].active = true
			return p.entries[i].obj
		}
	}
	p.entries = append(p.entries, entry[T]{active: true, obj: p.factory()})
	return p.entries[len(p.entries)-1].obj
}

// Release marks obj inactive and runs the reset callback on it.
// Releasing an instance the pool does not own is a no-op and reports false.
func (p *Pool[T]) Release(obj T) bool {
	for i := range p.entries {
		if p.entries[i].obj == obj {
			p.entries[i].active = false
			if p.reset != nil {
				p.reset(obj)
			}
			return true
		}
	}
	return false
}

// ForEach calls fn for every active instance in insertion order.
// fn may release the instance it is handed.
func (p *Pool[T]) ForEach(fn func(T)) {
	for i := 0; i < len(p.entries); i++ {
		if p.entries[i].active {
			fn(p.entries[i].obj)
		}
	}
}

// Active returns the active instances in insertion order.
func (p *Pool[T]) Active() []T {
	return p.AppendActive(nil)
}

// AppendActive appends the active instances to dst and returns the extended slice.
// Use with a reused buffer to avoid per-frame allocation.
func (p *Pool[T]) AppendActive(dst []T) []T {
	for _, e := range p.entries {
		if e.active {
			dst = append(dst, e.obj)
		}
	}
	return dst
}

// ActiveCount returns the number of active instances.
func (p *Pool[T]) ActiveCount() int {
	n := 0
	for _, e := range p.entries {
		if e.active {
			n++
		}
	}
	return n
}

// Len returns the total number of instances owned by the pool.
func (p *Pool[T]) Len() int {
	return len(p.entries)
}
