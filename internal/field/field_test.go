package field

import (
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tags struct{ list []string }

func (t tags) Clone() tags { return tags{list: slices.Clone(t.list)} }

func TestValue_ReadAfterWrite(t *testing.T) {
	f := NewValue("")
	assert.Equal(t, "", f.Get())

	f.Set("rex")
	assert.Equal(t, "rex", f.Get())
}

func TestValue_SnapshotIsolation(t *testing.T) {
	f := NewValueFunc([]string{"a"}, slices.Clone[[]string])

	snap := f.Get()
	snap[0] = "mutated"
	assert.Equal(t, []string{"a"}, f.Get(), "caller mutation must not leak back")

	f.Set([]string{"b"})
	assert.Equal(t, []string{"mutated"}, snap, "snapshot never observes a later write")
}

func TestValue_SetDoesNotAliasCaller(t *testing.T) {
	f := NewValueFunc([]string(nil), slices.Clone[[]string])

	in := make([]string, 1, 4)
	in[0] = "sit"
	f.Set(in)
	f.Update(func(v []string) []string { return append(v, "roll") })

	_ = append(in, "bite")
	in[0] = "beg"

	assert.Equal(t, []string{"sit", "roll"}, f.Get())
}

func TestValue_DefaultDoesNotAliasCaller(t *testing.T) {
	def := []string{"a"}
	f := NewValueFunc(def, slices.Clone[[]string])
	def[0] = "changed"
	assert.Equal(t, []string{"a"}, f.Get())

	tg := tags{list: []string{"x"}}
	g := NewValue(tg)
	tg.list[0] = "changed"
	g.Set(tg)
	tg.list[0] = "again"
	assert.Equal(t, []string{"changed"}, g.Get().list)
}

func TestValue_CallerWritesDoNotRace(t *testing.T) {
	f := NewValueFunc([]int(nil), slices.Clone[[]int])
	in := []int{0}
	f.Set(in)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			in[0] = i
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			_ = f.Get()
		}
	}()
	wg.Wait()

	assert.Equal(t, []int{0}, f.Get())
}

func TestValue_Cloner(t *testing.T) {
	f := NewValue(tags{list: []string{"x"}})

	got := f.Get()
	got.list[0] = "y"
	assert.Equal(t, []string{"x"}, f.Get().list)
}

func TestValue_Update(t *testing.T) {
	f := NewValue(0)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.Update(func(n int) int { return n + 1 })
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, f.Get())
}

func TestRef_SnapshotIsolation(t *testing.T) {
	f := NewRef(1.5)

	before := f.Get()
	require.NotNil(t, before)
	assert.Equal(t, 1.5, *before)
	assert.Same(t, before, f.Get(), "getter hands out the same pointer until replaced")

	next := 2.5
	f.Set(&next)

	assert.Equal(t, 1.5, *before, "earlier pointer keeps its captured value")
	assert.Same(t, &next, f.Get())
}

func TestRef_ConcurrentReplace(t *testing.T) {
	f := NewRefPtr(&[]int{0})
	held := f.Get()

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			f.Set(&[]int{i})
		}(i)
	}
	wg.Wait()

	assert.Equal(t, []int{0}, *held)
	assert.NotEqual(t, []int{0}, *f.Get())
}

// slowWrite holds f's write lock for d, standing in for a long critical
// section on one field.
func slowWrite[T any](f *Value[T], d time.Duration) {
	f.Update(func(v T) T {
		time.Sleep(d)
		return v
	})
}

func TestValue_DistinctFieldsDoNotBlock(t *testing.T) {
	name := NewValue("")
	breed := NewValue("")

	started := make(chan struct{})
	done := make(chan struct{})
	go func() {
		name.Update(func(v string) string {
			close(started)
			<-done
			return "held"
		})
	}()
	<-started

	// name's write lock is held until done closes; breed must stay usable.
	finished := make(chan struct{})
	go func() {
		slowWrite(breed, 10*time.Millisecond)
		breed.Set("terrier")
		_ = breed.Get()
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("writer on a distinct field was blocked")
	}
	close(done)

	assert.Eventually(t, func() bool { return name.Get() == "held" }, time.Second, time.Millisecond)
	assert.Equal(t, "terrier", breed.Get())
}

func TestValue_ReadersShareLock(t *testing.T) {
	f := NewValue(42)

	f.mu.RLock()
	got := make(chan int, 1)
	go func() { got <- f.Get() }()

	select {
	case v := <-got:
		assert.Equal(t, 42, v)
	case <-time.After(2 * time.Second):
		t.Fatal("reader blocked by another reader")
	}
	f.mu.RUnlock()
}
