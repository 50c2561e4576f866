// Package class layers single inheritance and checked narrowing over
// [ecs.Node].
//
// A class is a view type over a Node plus one component type holding that
// level's fields. Each view struct embeds its direct parent view, so the
// parent's accessors are promoted, and the chain always ends at [Object].
// Building an instance walks the chain top down: [New] creates the Node,
// then every level calls [Extend] to attach its own component before
// wrapping the parent view.
//
// Conversions are described by a [Link] per (subclass, direct parent) pair,
// and by [Through] for indirect ancestors. Upcast never fails. Downcast
// succeeds only if the Node carries the subclass component, and otherwise
// returns a [*ClassError].
//
// A schema compiler is expected to emit code of this shape:
//
//	type Animal struct{ class.Object }
//
//	var AnimalClass = class.Extends[component.Animal](
//		func(o class.Object) Animal { return Animal{o} },
//		func(a Animal) class.Object { return a.Object },
//	)
//
//	func NewAnimal() Animal {
//		return Animal{class.Extend(class.New(), component.NewAnimal())}
//	}
//
//	// AnimalView accepts Animal or any subclass of it.
//	type AnimalView interface {
//		class.View
//		AsAnimal() Animal
//	}
//
//	func (a Animal) AsAnimal() Animal { return a }
//
//	func (a Animal) Name() string { return class.Component[component.Animal](a).Name.Get() }
//
//	func (a Animal) SetName(v string) Animal {
//		class.Component[component.Animal](a).Name.Set(v)
//		return a
//	}
package class
