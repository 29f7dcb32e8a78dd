// Package guard serializes plan runs per (person, week). Two concurrent
// runs for the same person would both believe a slot has capacity; the
// guard makes run + persistence a critical section.
package guard

import "sync"

// Guard is a keyed mutual-exclusion registry. The zero value is not
// usable; create one with New.
type Guard struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

func New() *Guard {
	return &Guard{locks: make(map[string]*entry)}
}

// Acquire blocks until the key's lock is held and returns the release
// function. Callers release only after any resulting writes are committed.
func (g *Guard) Acquire(key string) (release func()) {
	g.mu.Lock()
	e, ok := g.locks[key]
	if !ok {
		e = &entry{}
		g.locks[key] = e
	}
	e.refs++
	g.mu.Unlock()

	e.mu.Lock()
	return func() {
		e.mu.Unlock()
		g.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(g.locks, key)
		}
		g.mu.Unlock()
	}
}
