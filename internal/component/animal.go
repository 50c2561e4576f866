package component

import "github.com/l1jgo/classkit/internal/field"

// Animal holds the fields declared by the Animal class.
type Animal struct {
	Name *field.Value[string]
	Legs *field.Value[int]
}

// NewAnimal returns the component with its declared defaults.
func NewAnimal() *Animal {
	return &Animal{
		Name: field.NewValue(""),
		Legs: field.NewValue(4),
	}
}
