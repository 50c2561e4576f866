package class

import (
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/l1jgo/classkit/internal/config"
	"github.com/l1jgo/classkit/internal/core/ecs"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Registry records class descriptors and checks, at registration time, that
// every hierarchy is a single linear chain ending at the root class.
// Registration typically happens from package init functions, so the
// Registry is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	cfg     config.RegistryConfig
	classes map[string]*Descriptor
	byKind  map[ecs.Kind]string
	order   []string
	log     *zap.Logger
}

func NewRegistry(cfg config.RegistryConfig, log *zap.Logger) *Registry {
	cfg.Validate()
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{
		cfg:     cfg,
		classes: make(map[string]*Descriptor, 16),
		byKind:  make(map[ecs.Kind]string, 16),
		log:     log,
	}
}

// Root is the name every chain must end with.
func (r *Registry) Root() string { return r.cfg.RootName }

// Register validates d against the classes registered so far and records
// it. The parent must be registered first.
func (r *Registry) Register(d Descriptor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.check(d); err != nil {
		r.log.Debug("class rejected", zap.String("class", d.Name), zap.Error(err))
		return err
	}

	d.Extends = slices.Clone(d.Extends)
	d.Fields = slices.Clone(d.Fields)
	r.classes[d.Name] = &d
	r.order = append(r.order, d.Name)
	if !d.Kind.IsZero() {
		r.byKind[d.Kind] = d.Name
	}
	r.log.Debug("class registered",
		zap.String("class", d.Name),
		zap.Strings("extends", d.Extends),
		zap.Int("fields", len(d.Fields)),
	)
	return nil
}

// MustRegister is Register for init-time code; it panics on error.
func (r *Registry) MustRegister(d Descriptor) {
	if err := r.Register(d); err != nil {
		panic(err)
	}
}

func (r *Registry) check(d Descriptor) error {
	if d.Name == "" || d.Name == r.cfg.RootName {
		return fmt.Errorf("%w: invalid name %q", ErrBrokenChain, d.Name)
	}
	if _, dup := r.classes[d.Name]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateClass, d.Name)
	}
	if d.Depth() == 0 {
		return fmt.Errorf("%w: %s declares no ancestors", ErrBrokenChain, d.Name)
	}
	if d.Depth() > r.cfg.MaxDepth {
		return fmt.Errorf("%w: %s has %d ancestors, limit %d", ErrChainTooDeep, d.Name, d.Depth(), r.cfg.MaxDepth)
	}
	if slices.Contains(d.Extends, d.Name) {
		return fmt.Errorf("%w: %s extends itself", ErrBrokenChain, d.Name)
	}

	parent := d.Parent()
	if parent == r.cfg.RootName {
		if d.Depth() != 1 {
			return fmt.Errorf("%w: %s lists ancestors past %s", ErrBrokenChain, d.Name, r.cfg.RootName)
		}
	} else {
		p, ok := r.classes[parent]
		if !ok {
			return fmt.Errorf("%w: %s extends %s", ErrUnknownParent, d.Name, parent)
		}
		if !slices.Equal(d.Extends[1:], p.Extends) {
			return fmt.Errorf("%w: %s declares %v, %s declares %v", ErrBrokenChain, d.Name, d.Extends, parent, p.Extends)
		}
	}

	if !d.Kind.IsZero() {
		if owner, taken := r.byKind[d.Kind]; taken {
			return fmt.Errorf("%w: %s is already bound to %s", ErrKindConflict, d.Kind, owner)
		}
	}

	seen := make(map[string]struct{}, len(d.Fields))
	for _, f := range d.Fields {
		if _, dup := seen[f.Name]; dup {
			return fmt.Errorf("%w: %s.%s", ErrDuplicateField, d.Name, f.Name)
		}
		seen[f.Name] = struct{}{}

		if owner, ok := r.fieldOwner(d.Extends, f.Name); ok {
			if !r.cfg.AllowShadowing {
				return fmt.Errorf("%w: %s.%s shadows %s.%s", ErrShadowedField, d.Name, f.Name, owner, f.Name)
			}
			r.log.Warn("field shadows ancestor field",
				zap.String("class", d.Name),
				zap.String("field", f.Name),
				zap.String("ancestor", owner),
			)
		}
	}
	return nil
}

func (r *Registry) fieldOwner(ancestors []string, name string) (string, bool) {
	for _, a := range ancestors {
		if p, ok := r.classes[a]; ok {
			if _, has := p.field(name); has {
				return a, true
			}
		}
	}
	return "", false
}

// Lookup returns a copy of the named class's descriptor.
func (r *Registry) Lookup(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.classes[name]
	if !ok {
		return Descriptor{}, false
	}
	out := *d
	out.Extends = slices.Clone(d.Extends)
	out.Fields = slices.Clone(d.Fields)
	return out, true
}

// Ancestors returns name's ancestors, nearest first, ending at the root.
func (r *Registry) Ancestors(name string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.classes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownClass, name)
	}
	return slices.Clone(d.Extends), nil
}

// IsSubclass reports whether sub is super or inherits from it.
// Every registered class is a subclass of the root.
func (r *Registry) IsSubclass(sub, super string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.classes[sub]
	if !ok {
		return false
	}
	return sub == super || slices.Contains(d.Extends, super)
}

// Classes returns registered class names in registration order.
func (r *Registry) Classes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.order)
}

// Classify returns the most derived registered class whose component n
// carries, or the root name if none match. When siblings both match, the
// one registered first wins; sibling components are never implied by each
// other.
func (r *Registry) Classify(n ecs.Node) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	best, depth := r.cfg.RootName, 0
	for _, name := range r.order {
		d := r.classes[name]
		if d.Kind.IsZero() || !n.Has(d.Kind) {
			continue
		}
		if d.Depth() > depth {
			best, depth = name, d.Depth()
		}
	}
	return best
}

// Verify compares declared descriptors (typically loaded from a manifest)
// against the registered classes and reports every mismatch.
func (r *Registry) Verify(declared []Descriptor) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var errs error
	for _, want := range declared {
		got, ok := r.classes[want.Name]
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("%w: %s", ErrUnknownClass, want.Name))
			continue
		}
		if !slices.Equal(want.Extends, got.Extends) {
			errs = multierr.Append(errs, fmt.Errorf("%w: %s declared %v, registered %v",
				ErrBrokenChain, want.Name, want.Extends, got.Extends))
		}
		errs = multierr.Append(errs, compareFields(want, *got))
	}

	if errs != nil {
		r.log.Error("class manifest drift",
			zap.Int("problems", len(multierr.Errors(errs))),
			zap.Error(errs),
		)
	}
	return errs
}

func compareFields(want, got Descriptor) error {
	var errs error
	names := make([]string, 0, len(want.Fields))
	for _, f := range want.Fields {
		names = append(names, f.Name)
		g, ok := got.field(f.Name)
		switch {
		case !ok:
			errs = multierr.Append(errs, fmt.Errorf("class: %s.%s declared but not registered", want.Name, f.Name))
		case g.Type != f.Type || g.Ref != f.Ref:
			errs = multierr.Append(errs, fmt.Errorf("class: %s.%s declared %s, registered %s",
				want.Name, f.Name, describe(f), describe(g)))
		}
	}
	sort.Strings(names)
	for _, g := range got.Fields {
		if _, found := slices.BinarySearch(names, g.Name); !found {
			errs = multierr.Append(errs, fmt.Errorf("class: %s.%s registered but not declared", want.Name, g.Name))
		}
	}
	return errs
}

func describe(f FieldSpec) string {
	if f.Ref {
		return "ref " + f.Type
	}
	return f.Type
}
