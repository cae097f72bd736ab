// Package concurrency provides coordination primitives shared across services.
package concurrency

import "sync"

// PassGuard serializes named batch passes. Two concurrent full
// recalculations racing on the same ingredient rows would be a lost-update
// hazard, so callers acquire the pass name before starting and the second
// caller simply waits its turn.
type PassGuard struct {
	passes sync.Map
}

// NewPassGuard creates a new PassGuard
func NewPassGuard() *PassGuard {
	return &PassGuard{}
}

// Acquire blocks until the named pass is free and claims it
func (g *PassGuard) Acquire(name string) {
	g.lockFor(name).Lock()
}

// Release frees the named pass
func (g *PassGuard) Release(name string) {
	g.lockFor(name).Unlock()
}

func (g *PassGuard) lockFor(name string) *sync.Mutex {
	lock, _ := g.passes.LoadOrStore(name, &sync.Mutex{})
	return lock.(*sync.Mutex)
}
