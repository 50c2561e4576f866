package class

import "github.com/l1jgo/classkit/internal/core/ecs"

// Has reports whether v's Node carries component C.
func Has[C any](v View) bool {
	return ecs.Has[C](v.Node())
}

// Lookup returns v's component C, or a ClassError if it is not attached.
func Lookup[C any](v View) (*C, error) {
	c, ok := ecs.Get[C](v.Node())
	if !ok {
		return nil, conversionFailed(ecs.KindOf[C]())
	}
	return c, nil
}

// Component returns v's component C for use by generated accessors. A valid
// view always carries it; reaching this with an unvalidated view panics
// with a *ClassError.
func Component[C any](v View) *C {
	c, err := Lookup[C](v)
	if err != nil {
		panic(err)
	}
	return c
}

// Extend attaches c to parent's Node and returns parent, which now satisfies
// the subclass check for C. Called once per level while the Node is still
// private to the constructing goroutine.
func Extend[P View, C any](parent P, c *C) P {
	ecs.Set(parent.Node(), c)
	return parent
}
