package ecs

import "sync/atomic"

// lastID hands out node identities. IDs start at 1 so the zero Node has ID 0.
var lastID atomic.Uint64

type entity struct {
	id    uint64
	store *Store
}

// Node is a shared handle to one entity and its component store.
// Copying a Node clones the handle, never the store: every copy observes the
// same components. Nodes compare with == by identity and can be map keys.
type Node struct {
	e *entity
}

// NewNode creates a fresh entity with an empty store.
func NewNode() Node {
	return Node{e: &entity{id: lastID.Add(1), store: NewStore()}}
}

// ID is the node's process-unique identity, suitable as a hash key.
func (n Node) ID() uint64 {
	if n.e == nil {
		return 0
	}
	return n.e.id
}

func (n Node) IsZero() bool { return n.e == nil }

// Clone returns another handle to the same entity.
func (n Node) Clone() Node { return n }

// Equal reports whether both handles refer to the same entity.
func (n Node) Equal(other Node) bool { return n.e == other.e }

// Store exposes the underlying component store. Nil for the zero Node.
func (n Node) Store() *Store {
	if n.e == nil {
		return nil
	}
	return n.e.store
}

func (n Node) Has(k Kind) bool {
	if n.e == nil {
		return false
	}
	return n.e.store.Has(k)
}

func (n Node) Get(k Kind) (any, bool) {
	if n.e == nil {
		return nil, false
	}
	return n.e.store.Get(k)
}

// Set attaches c under kind k and returns the same handle. Setting on the
// zero Node panics: there is no store to attach to.
func (n Node) Set(k Kind, c any) Node {
	if n.e == nil {
		panic("ecs: Set on zero Node")
	}
	n.e.store.Set(k, c)
	return n
}
