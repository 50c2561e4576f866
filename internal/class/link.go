package class

import "github.com/l1jgo/classkit/internal/core/ecs"

// Link converts between a class Sub and one of its ancestors Super.
// The zero Link is not usable; build one with Extends or Through.
type Link[Super, Sub View] struct {
	kind   ecs.Kind
	wrap   func(Super) Sub
	parent func(Sub) Super
	narrow func(Super) (Sub, error)
}

// Extends describes Sub as the direct subclass of Super tagged with
// component C. wrap builds a Sub view around an already-checked Super view;
// parent returns Sub's embedded Super view.
func Extends[C any, Super, Sub View](wrap func(Super) Sub, parent func(Sub) Super) Link[Super, Sub] {
	kind := ecs.KindOf[C]()
	return Link[Super, Sub]{
		kind:   kind,
		wrap:   wrap,
		parent: parent,
		narrow: func(s Super) (Sub, error) {
			if !s.Node().Has(kind) {
				var zero Sub
				return zero, conversionFailed(kind)
			}
			return wrap(s), nil
		},
	}
}

// Through joins upper (Top to Mid) and lower (Mid to Sub) into a link from
// Top to Sub. Chains of any depth are built by repeated joins.
func Through[Top, Mid, Sub View](upper Link[Top, Mid], lower Link[Mid, Sub]) Link[Top, Sub] {
	return Link[Top, Sub]{
		kind: lower.kind,
		wrap: func(t Top) Sub {
			return lower.wrap(upper.wrap(t))
		},
		parent: func(s Sub) Top {
			return upper.parent(lower.parent(s))
		},
		narrow: func(t Top) (Sub, error) {
			m, err := upper.narrow(t)
			if err != nil {
				var zero Sub
				return zero, err
			}
			return lower.narrow(m)
		},
	}
}

// Kind is the component that marks Sub.
func (l Link[Super, Sub]) Kind() ecs.Kind { return l.kind }

// Upcast widens s to Super. It cannot fail: a valid Sub view implies every
// ancestor component is present.
func (l Link[Super, Sub]) Upcast(s Sub) Super {
	return l.parent(s)
}

// Downcast narrows s to Sub, or returns a *ClassError if s's Node does not
// carry Sub's component.
func (l Link[Super, Sub]) Downcast(s Super) (Sub, error) {
	return l.narrow(s)
}

// Is reports whether s could be narrowed to Sub.
func (l Link[Super, Sub]) Is(s Super) bool {
	_, err := l.narrow(s)
	return err == nil
}
