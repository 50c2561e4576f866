package schema

import (
	"fmt"
	"os"

	"github.com/l1jgo/classkit/internal/class"
	"gopkg.in/yaml.v3"
)

// ClassEntry is one class as written in the manifest.
//
//	- name: Dog
//	  extends: [Animal, Object]
//	  fields:
//	    - {name: breed, type: string, default: '""'}
//	    - {name: owner, type: Owner, ref: true, default: Owner{}}
type ClassEntry struct {
	Name        string           `yaml:"name"`
	Extends     []string         `yaml:"extends"`
	Fields      []FieldEntry     `yaml:"fields"`
	Constructor ConstructorEntry `yaml:"constructor"`
}

type FieldEntry struct {
	Name       string `yaml:"name"`
	Type       string `yaml:"type"`
	Ref        bool   `yaml:"ref"`
	Default    string `yaml:"default"`
	Visibility string `yaml:"visibility"`
}

type ConstructorEntry struct {
	Params    []string `yaml:"params"`
	SuperArgs []string `yaml:"super_args"`
}

// Manifest is the list of class descriptions a schema compiler produced.
type Manifest struct {
	Classes []ClassEntry `yaml:"classes"`
}

// LoadManifest reads a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read class manifest: %w", err)
	}
	m, err := ParseManifest(raw)
	if err != nil {
		return nil, fmt.Errorf("parse class manifest %s: %w", path, err)
	}
	return m, nil
}

func ParseManifest(raw []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	for i, c := range m.Classes {
		if c.Name == "" {
			return nil, fmt.Errorf("class #%d has no name", i+1)
		}
	}
	return &m, nil
}

// Count returns the number of classes declared.
func (m *Manifest) Count() int {
	return len(m.Classes)
}

// Descriptors converts the manifest into unbound class descriptors.
func (m *Manifest) Descriptors() []class.Descriptor {
	out := make([]class.Descriptor, 0, len(m.Classes))
	for _, c := range m.Classes {
		d := class.Descriptor{
			Name:    c.Name,
			Extends: c.Extends,
			Constructor: class.ConstructorSpec{
				Params:    c.Constructor.Params,
				SuperArgs: c.Constructor.SuperArgs,
			},
		}
		for _, f := range c.Fields {
			d.Fields = append(d.Fields, class.FieldSpec{
				Name:       f.Name,
				Type:       f.Type,
				Ref:        f.Ref,
				Default:    f.Default,
				Visibility: f.Visibility,
			})
		}
		out = append(out, d)
	}
	return out
}

// Marshal renders the manifest back to YAML.
func (m *Manifest) Marshal() ([]byte, error) {
	return yaml.Marshal(m)
}

// FromDescriptors builds a manifest from registered descriptors, e.g. to
// snapshot what a binary actually links.
func FromDescriptors(ds []class.Descriptor) *Manifest {
	m := &Manifest{Classes: make([]ClassEntry, 0, len(ds))}
	for _, d := range ds {
		c := ClassEntry{
			Name:    d.Name,
			Extends: d.Extends,
			Constructor: ConstructorEntry{
				Params:    d.Constructor.Params,
				SuperArgs: d.Constructor.SuperArgs,
			},
		}
		for _, f := range d.Fields {
			c.Fields = append(c.Fields, FieldEntry{
				Name:       f.Name,
				Type:       f.Type,
				Ref:        f.Ref,
				Default:    f.Default,
				Visibility: f.Visibility,
			})
		}
		m.Classes = append(m.Classes, c)
	}
	return m
}
