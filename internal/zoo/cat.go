package zoo

import (
	"github.com/l1jgo/classkit/internal/class"
	"github.com/l1jgo/classkit/internal/component"
)

// Cat extends Animal; it is Dog's sibling.
type Cat struct{ Animal }

var (
	CatClass = class.Extends[component.Cat](
		func(a Animal) Cat { return Cat{a} },
		func(c Cat) Animal { return c.Animal },
	)
	CatFromObject = class.Through(AnimalClass, CatClass)
)

// NewCat builds a named cat.
func NewCat(name string, indoor bool) Cat {
	c := Cat{class.Extend(NewAnimal(), component.NewCat())}
	c.SetName(name)
	c.SetIndoor(indoor)
	return c
}

func (c Cat) Indoor() bool {
	return class.Component[component.Cat](c).Indoor.Get()
}

func (c Cat) SetIndoor(v bool) Cat {
	class.Component[component.Cat](c).Indoor.Set(v)
	return c
}

func (c Cat) Lives() int {
	return class.Component[component.Cat](c).Lives.Get()
}

func (c Cat) SetLives(v int) Cat {
	class.Component[component.Cat](c).Lives.Set(v)
	return c
}
