package component

import "github.com/l1jgo/classkit/internal/field"

// Cat holds the fields declared by the Cat class.
type Cat struct {
	Indoor *field.Value[bool]
	Lives  *field.Value[int]
}

// NewCat returns the component with its declared defaults.
func NewCat() *Cat {
	return &Cat{
		Indoor: field.NewValue(true),
		Lives:  field.NewValue(9),
	}
}
