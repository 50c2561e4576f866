package component

import (
	"slices"

	"github.com/l1jgo/classkit/internal/field"
)

// Dog holds the fields declared by the Dog class. Owner is a ref field:
// readers share the pointer and a new owner is swapped in whole.
type Dog struct {
	Breed  *field.Value[string]
	Tricks *field.Value[[]string]
	Owner  *field.Ref[Owner]
}

// Owner is the shared record behind Dog.Owner.
type Owner struct {
	Name  string
	Phone string
}

// NewDog returns the component with its declared defaults.
func NewDog() *Dog {
	return &Dog{
		Breed:  field.NewValue(""),
		Tricks: field.NewValueFunc([]string(nil), slices.Clone[[]string]),
		Owner:  field.NewRef(Owner{}),
	}
}
