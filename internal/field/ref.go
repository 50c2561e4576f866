package field

import "sync"

// Ref is a lock-guarded shared-pointer field. The pointee is treated as
// immutable: replace it with Set rather than mutating it in place.
type Ref[T any] struct {
	mu sync.RWMutex
	p  *T
}

// NewRef creates a field pointing at a fresh copy of def.
func NewRef[T any](def T) *Ref[T] {
	return &Ref[T]{p: &def}
}

// NewRefPtr creates a field holding p as is.
func NewRefPtr[T any](p *T) *Ref[T] {
	return &Ref[T]{p: p}
}

// Get returns the current pointer. The caller co-owns it and keeps seeing
// the value it captured even after a later Set.
func (f *Ref[T]) Get() *T {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.p
}

// Set swaps in p. Pointers returned by earlier Get calls are unaffected.
func (f *Ref[T]) Set(p *T) {
	f.mu.Lock()
	f.p = p
	f.mu.Unlock()
}
