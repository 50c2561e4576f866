package component

import "github.com/l1jgo/classkit/internal/field"

// Puppy holds the fields declared by the Puppy class (Puppy extends Dog).
type Puppy struct {
	AgeWeeks *field.Value[int]
}

// NewPuppy returns the component with its declared defaults.
func NewPuppy() *Puppy {
	return &Puppy{AgeWeeks: field.NewValue(8)}
}
