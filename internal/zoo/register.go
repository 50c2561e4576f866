package zoo

import (
	"github.com/l1jgo/classkit/internal/class"
	"github.com/l1jgo/classkit/internal/component"
	"github.com/l1jgo/classkit/internal/core/ecs"
)

// Descriptors returns the zoo classes, parents before children, with root
// as the topmost class name.
func Descriptors(root string) []class.Descriptor {
	return []class.Descriptor{
		{
			Name:    "Animal",
			Extends: []string{root},
			Kind:    ecs.KindOf[component.Animal](),
			Fields: []class.FieldSpec{
				{Name: "name", Type: "string", Default: `""`, Visibility: "pub"},
				{Name: "legs", Type: "int", Default: "4", Visibility: "pub"},
			},
		},
		{
			Name:    "Dog",
			Extends: []string{"Animal", root},
			Kind:    ecs.KindOf[component.Dog](),
			Fields: []class.FieldSpec{
				{Name: "breed", Type: "string", Default: `""`, Visibility: "pub"},
				{Name: "tricks", Type: "[]string", Default: "nil", Visibility: "pub"},
				{Name: "owner", Type: "Owner", Ref: true, Default: "Owner{}", Visibility: "pub"},
			},
		},
		{
			Name:    "Puppy",
			Extends: []string{"Dog", "Animal", root},
			Kind:    ecs.KindOf[component.Puppy](),
			Fields: []class.FieldSpec{
				{Name: "age_weeks", Type: "int", Default: "8", Visibility: "pub"},
			},
			Constructor: class.ConstructorSpec{Params: []string{"breed string"}},
		},
		{
			Name:    "Cat",
			Extends: []string{"Animal", root},
			Kind:    ecs.KindOf[component.Cat](),
			Fields: []class.FieldSpec{
				{Name: "indoor", Type: "bool", Default: "true", Visibility: "pub"},
				{Name: "lives", Type: "int", Default: "9", Visibility: "pub"},
			},
			Constructor: class.ConstructorSpec{Params: []string{"name string", "indoor bool"}},
		},
	}
}

// Register adds the zoo classes to r.
func Register(r *class.Registry) error {
	for _, d := range Descriptors(r.Root()) {
		if err := r.Register(d); err != nil {
			return err
		}
	}
	return nil
}
