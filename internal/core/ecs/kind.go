package ecs

import (
	"fmt"
	"reflect"
	"sync"
)

// Kind is the stable identity of a component type. Kind 0 is never assigned
// and means "no kind".
type Kind uint32

var kinds = struct {
	mu     sync.RWMutex
	byType map[reflect.Type]Kind
	names  []string // index = Kind; names[0] is the placeholder for "none"
}{
	byType: make(map[reflect.Type]Kind, 64),
	names:  []string{"<none>"},
}

// KindOf returns the Kind for component type T, registering it on first use.
// Safe for concurrent use; the same T always yields the same Kind.
func KindOf[T any]() Kind {
	t := reflect.TypeOf((*T)(nil)).Elem()

	kinds.mu.RLock()
	k, ok := kinds.byType[t]
	kinds.mu.RUnlock()
	if ok {
		return k
	}

	kinds.mu.Lock()
	defer kinds.mu.Unlock()
	if k, ok := kinds.byType[t]; ok {
		return k
	}
	k = Kind(len(kinds.names))
	kinds.byType[t] = k
	kinds.names = append(kinds.names, t.String())
	return k
}

// IsZero reports whether k is the "no kind" value.
func (k Kind) IsZero() bool { return k == 0 }

// String returns the Go type name the kind was registered for.
func (k Kind) String() string {
	kinds.mu.RLock()
	defer kinds.mu.RUnlock()
	if int(k) < len(kinds.names) {
		return kinds.names[k]
	}
	return fmt.Sprintf("kind(%d)", uint32(k))
}
