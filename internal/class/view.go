package class

import "github.com/l1jgo/classkit/internal/core/ecs"

// View is a typed handle over a Node. Every class view implements it,
// usually by promotion from an embedded Object.
type View interface {
	Node() ecs.Node
}

// Object is the root class every chain ends at. It carries no component of
// its own.
type Object struct {
	node ecs.Node
}

// New starts a construction chain with a fresh Node.
func New() Object {
	return Object{node: ecs.NewNode()}
}

// Wrap views an existing Node as an Object.
func Wrap(n ecs.Node) Object {
	return Object{node: n}
}

func (o Object) Node() ecs.Node { return o.node }

// ID is the identity of the wrapped Node.
func (o Object) ID() uint64 { return o.node.ID() }

// Same reports whether a and b view the same Node, whatever class level
// each one is held at.
func Same(a, b View) bool {
	return a.Node().Equal(b.Node())
}

// ID returns v's Node identity, for use as a hash key across class levels.
func ID(v View) uint64 {
	return v.Node().ID()
}
