package field

import "sync"

// Cloner is implemented by value types that need a deep copy when stored
// or read, such as types wrapping slices or maps.
type Cloner[T any] interface {
	Clone() T
}

// Value is a lock-guarded inline field.
type Value[T any] struct {
	mu    sync.RWMutex
	v     T
	clone func(T) T
}

// NewValue creates a field holding def. If T implements Cloner[T], values
// are copied with Clone on the way in and out; otherwise with Go assignment.
func NewValue[T any](def T) *Value[T] {
	f := &Value[T]{}
	if _, ok := any(def).(Cloner[T]); ok {
		f.clone = func(v T) T { return any(v).(Cloner[T]).Clone() }
	}
	f.v = f.snapshot(def)
	return f
}

// NewValueFunc creates a field whose values are copied with clone, e.g.
// slices.Clone for a []string field. The field never aliases memory the
// caller still holds.
func NewValueFunc[T any](def T, clone func(T) T) *Value[T] {
	f := &Value[T]{clone: clone}
	f.v = f.snapshot(def)
	return f
}

func (f *Value[T]) snapshot(v T) T {
	if f.clone != nil {
		return f.clone(v)
	}
	return v
}

// Get returns a snapshot of the current value. Later writes never show
// through it.
func (f *Value[T]) Get() T {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.snapshot(f.v)
}

// Set replaces the value with a copy of v.
func (f *Value[T]) Set(v T) {
	v = f.snapshot(v)
	f.mu.Lock()
	f.v = v
	f.mu.Unlock()
}

// Update applies fn to the current value and stores the result, holding
// the write lock for the whole step. Only this field is covered.
func (f *Value[T]) Update(fn func(T) T) T {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.v = f.snapshot(fn(f.v))
	return f.snapshot(f.v)
}
