package zoo

import (
	"github.com/l1jgo/classkit/internal/class"
	"github.com/l1jgo/classkit/internal/component"
)

// Puppy extends Dog with its age in weeks.
type Puppy struct{ Dog }

var (
	PuppyClass = class.Extends[component.Puppy](
		func(d Dog) Puppy { return Puppy{d} },
		func(p Puppy) Dog { return p.Dog },
	)
	PuppyFromAnimal = class.Through(DogClass, PuppyClass)
	PuppyFromObject = class.Through(AnimalClass, PuppyFromAnimal)
)

// NewPuppy builds a puppy of the given breed; the breed goes to Dog's
// field after the super chain is complete.
func NewPuppy(breed string) Puppy {
	p := Puppy{class.Extend(NewDog(), component.NewPuppy())}
	p.SetBreed(breed)
	return p
}

func (p Puppy) AgeWeeks() int {
	return class.Component[component.Puppy](p).AgeWeeks.Get()
}

func (p Puppy) SetAgeWeeks(v int) Puppy {
	class.Component[component.Puppy](p).AgeWeeks.Set(v)
	return p
}
