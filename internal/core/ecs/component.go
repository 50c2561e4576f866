package ecs

import "sync/atomic"

// Store holds at most one component instance per Kind for a single entity.
// Membership only grows: there is no removal.
//
// Readers load an immutable map through an atomic pointer and never block.
// Set copies the map, so it is meant for the construction phase, before the
// owning Node is shared.
type Store struct {
	components atomic.Pointer[map[Kind]any]
}

func NewStore() *Store {
	s := &Store{}
	m := make(map[Kind]any, 4)
	s.components.Store(&m)
	return s
}

func (s *Store) load() map[Kind]any {
	if p := s.components.Load(); p != nil {
		return *p
	}
	return nil
}

// Has reports whether a component of kind k was ever attached.
func (s *Store) Has(k Kind) bool {
	_, ok := s.load()[k]
	return ok
}

// Get returns the component attached for kind k.
func (s *Store) Get(k Kind) (any, bool) {
	c, ok := s.load()[k]
	return c, ok
}

// Set attaches c under kind k, replacing any previous instance of that kind.
// Returns s for chaining.
func (s *Store) Set(k Kind, c any) *Store {
	for {
		old := s.components.Load()
		var cur map[Kind]any
		if old != nil {
			cur = *old
		}
		next := make(map[Kind]any, len(cur)+1)
		for kk, v := range cur {
			next[kk] = v
		}
		next[k] = c
		if s.components.CompareAndSwap(old, &next) {
			return s
		}
	}
}

func (s *Store) Len() int {
	return len(s.load())
}

// Kinds returns the attached kinds in no particular order.
func (s *Store) Kinds() []Kind {
	m := s.load()
	out := make([]Kind, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
