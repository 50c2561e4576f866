package zoo

import (
	"github.com/l1jgo/classkit/internal/class"
	"github.com/l1jgo/classkit/internal/component"
)

// Animal is the base class of the zoo hierarchy.
type Animal struct{ class.Object }

// AnimalView is satisfied by Animal and every subclass of it, for functions
// that accept "an Animal or anything derived from one".
type AnimalView interface {
	class.View
	AsAnimal() Animal
}

// AnimalClass converts between Object and Animal.
var AnimalClass = class.Extends[component.Animal](
	func(o class.Object) Animal { return Animal{o} },
	func(a Animal) class.Object { return a.Object },
)

// NewAnimal starts a new object and attaches the Animal component.
func NewAnimal() Animal {
	return Animal{class.Extend(class.New(), component.NewAnimal())}
}

// AsAnimal widens any subclass view to Animal.
func (a Animal) AsAnimal() Animal { return a }

func (a Animal) Name() string {
	return class.Component[component.Animal](a).Name.Get()
}

func (a Animal) SetName(v string) Animal {
	class.Component[component.Animal](a).Name.Set(v)
	return a
}

func (a Animal) Legs() int {
	return class.Component[component.Animal](a).Legs.Get()
}

func (a Animal) SetLegs(v int) Animal {
	class.Component[component.Animal](a).Legs.Set(v)
	return a
}
