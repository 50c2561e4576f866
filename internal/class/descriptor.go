package class

import "github.com/l1jgo/classkit/internal/core/ecs"

// Descriptor is the class description a schema compiler works from.
type Descriptor struct {
	Name string

	// Extends lists ancestors nearest first and ends with the root class,
	// e.g. Dog extends ["Animal", "Object"].
	Extends []string

	// Kind is the component marking the class. Zero for classes that are
	// declared (e.g. from a manifest) but not bound to Go code.
	Kind ecs.Kind

	Fields      []FieldSpec
	Constructor ConstructorSpec
}

// FieldSpec describes one declared field.
type FieldSpec struct {
	Name       string
	Type       string
	Ref        bool   // declared with the ref qualifier
	Default    string // default-value expression, as written
	Visibility string
}

// ConstructorSpec describes the generated constructor.
type ConstructorSpec struct {
	Params    []string
	SuperArgs []string
}

// Parent returns the direct parent's name, or "" for a malformed descriptor.
func (d Descriptor) Parent() string {
	if len(d.Extends) == 0 {
		return ""
	}
	return d.Extends[0]
}

// Depth is the number of ancestors, root included.
func (d Descriptor) Depth() int { return len(d.Extends) }

func (d Descriptor) field(name string) (FieldSpec, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}
