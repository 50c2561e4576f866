package zoo

import (
	"github.com/l1jgo/classkit/internal/class"
	"github.com/l1jgo/classkit/internal/component"
)

// Dog extends Animal with a breed, tricks and a shared owner record.
type Dog struct{ Animal }

// DogView is satisfied by Dog and its subclasses.
type DogView interface {
	AnimalView
	AsDog() Dog
}

var (
	DogClass = class.Extends[component.Dog](
		func(a Animal) Dog { return Dog{a} },
		func(d Dog) Animal { return d.Animal },
	)
	DogFromObject = class.Through(AnimalClass, DogClass)
)

// NewDog builds an Animal and extends it to a Dog.
func NewDog() Dog {
	return Dog{class.Extend(NewAnimal(), component.NewDog())}
}

func (d Dog) AsDog() Dog { return d }

func (d Dog) Breed() string {
	return class.Component[component.Dog](d).Breed.Get()
}

func (d Dog) SetBreed(v string) Dog {
	class.Component[component.Dog](d).Breed.Set(v)
	return d
}

func (d Dog) Tricks() []string {
	return class.Component[component.Dog](d).Tricks.Get()
}

func (d Dog) SetTricks(v []string) Dog {
	class.Component[component.Dog](d).Tricks.Set(v)
	return d
}

// Learn appends one trick under the Tricks field lock.
func (d Dog) Learn(trick string) Dog {
	class.Component[component.Dog](d).Tricks.Update(func(ts []string) []string {
		return append(ts, trick)
	})
	return d
}

func (d Dog) Owner() *component.Owner {
	return class.Component[component.Dog](d).Owner.Get()
}

func (d Dog) SetOwner(v *component.Owner) Dog {
	class.Component[component.Dog](d).Owner.Set(v)
	return d
}
