package ecs

// Has reports whether n carries a component of type T.
func Has[T any](n Node) bool {
	return n.Has(KindOf[T]())
}

// Get returns n's component of type T.
func Get[T any](n Node) (*T, bool) {
	c, ok := n.Get(KindOf[T]())
	if !ok {
		return nil, false
	}
	t, ok := c.(*T)
	return t, ok
}

// Set attaches c as n's component of type T and returns n.
func Set[T any](n Node, c *T) Node {
	return n.Set(KindOf[T](), c)
}

// HasAll reports whether n carries every one of the given kinds.
func HasAll(n Node, ks ...Kind) bool {
	for _, k := range ks {
		if !n.Has(k) {
			return false
		}
	}
	return true
}
