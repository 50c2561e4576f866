package class

import (
	"errors"
	"testing"

	"github.com/l1jgo/classkit/internal/core/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shape < Object, square < shape < Object, circle < shape < Object,
// tile < square < shape < Object.
type (
	shapeComp  struct{ sides int }
	squareComp struct{}
	circleComp struct{}
	tileComp   struct{}
)

type (
	shape  struct{ Object }
	square struct{ shape }
	circle struct{ shape }
	tile   struct{ square }
)

var (
	shapeLink = Extends[shapeComp](
		func(o Object) shape { return shape{o} },
		func(s shape) Object { return s.Object },
	)
	squareLink = Extends[squareComp](
		func(s shape) square { return square{s} },
		func(q square) shape { return q.shape },
	)
	circleLink = Extends[circleComp](
		func(s shape) circle { return circle{s} },
		func(c circle) shape { return c.shape },
	)
	tileLink = Extends[tileComp](
		func(q square) tile { return tile{q} },
		func(t tile) square { return t.square },
	)
	squareFromObject = Through(shapeLink, squareLink)
	tileFromShape    = Through(squareLink, tileLink)
	tileFromObject   = Through(shapeLink, tileFromShape)
)

func newShape() shape   { return shape{Extend(New(), &shapeComp{sides: 0})} }
func newSquare() square { return square{Extend(newShape(), &squareComp{})} }
func newCircle() circle { return circle{Extend(newShape(), &circleComp{})} }
func newTile() tile     { return tile{Extend(newSquare(), &tileComp{})} }

func TestLink_UpcastDirect(t *testing.T) {
	q := newSquare()
	s := squareLink.Upcast(q)

	assert.True(t, Same(q, s))
	assert.Equal(t, q.shape, s)
}

func TestLink_WidenThenNarrow(t *testing.T) {
	q := newTile()

	tests := []struct {
		name string
		run  func() (tile, error)
	}{
		{"direct parent", func() (tile, error) { return tileLink.Downcast(tileLink.Upcast(q)) }},
		{"two levels", func() (tile, error) { return tileFromShape.Downcast(tileFromShape.Upcast(q)) }},
		{"to root", func() (tile, error) { return tileFromObject.Downcast(tileFromObject.Upcast(q)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.run()
			require.NoError(t, err)
			assert.Equal(t, q, got, "round trip returns an identical view")
			assert.True(t, Same(q, got))
		})
	}
}

func TestLink_DowncastFails(t *testing.T) {
	s := newShape()

	_, err := squareLink.Downcast(s)
	require.Error(t, err)

	var ce *ClassError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "type conversion failed", ce.Message)
	assert.Equal(t, ecs.KindOf[squareComp](), ce.Missing)
	assert.ErrorIs(t, err, ErrConversion)
	assert.Contains(t, err.Error(), "squareComp")
}

func TestLink_DowncastIndirectPropagatesFirstFailure(t *testing.T) {
	bare := New()

	_, err := tileFromObject.Downcast(bare)
	var ce *ClassError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, ecs.KindOf[shapeComp](), ce.Missing, "outermost missing level is reported")

	_, err = tileFromObject.Downcast(squareFromObject.Upcast(newSquare()))
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, ecs.KindOf[tileComp](), ce.Missing)
}

func TestLink_SiblingsAreIndependent(t *testing.T) {
	c := newCircle()
	asShape := circleLink.Upcast(c)

	_, err := squareLink.Downcast(asShape)
	assert.ErrorIs(t, err, ErrConversion, "a circle is not a square")

	back, err := circleLink.Downcast(asShape)
	require.NoError(t, err)
	assert.Equal(t, c, back)

	assert.False(t, squareLink.Is(asShape))
	assert.True(t, circleLink.Is(asShape))
	assert.Equal(t, ecs.KindOf[circleComp](), circleLink.Kind())
}

func TestLink_SiblingPresenceDoesNotMatter(t *testing.T) {
	// A node carrying both sibling components satisfies both checks; one
	// never implies or excludes the other.
	s := newShape()
	Extend(s, &squareComp{})
	Extend(s, &circleComp{})

	_, err := squareLink.Downcast(s)
	assert.NoError(t, err)
	_, err = circleLink.Downcast(s)
	assert.NoError(t, err)
	_, err = tileLink.Downcast(square{s})
	assert.ErrorIs(t, err, ErrConversion)
}

func TestComponentLookup(t *testing.T) {
	s := newShape()

	assert.True(t, Has[shapeComp](s))
	assert.False(t, Has[squareComp](s))

	c, err := Lookup[shapeComp](s)
	require.NoError(t, err)
	c.sides = 4
	assert.Equal(t, 4, Component[shapeComp](s).sides, "lookup returns the attached instance")

	_, err = Lookup[squareComp](s)
	assert.ErrorIs(t, err, ErrConversion)
}

func TestComponent_PanicsWithClassError(t *testing.T) {
	unchecked := square{newShape()}

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		var ce *ClassError
		assert.ErrorAs(t, err, &ce)
	}()
	Component[squareComp](unchecked)
}

func TestIdentity_AcrossLevels(t *testing.T) {
	q := newSquare()
	s := squareLink.Upcast(q)
	o := squareFromObject.Upcast(q)

	assert.Equal(t, ID(q), ID(s))
	assert.Equal(t, ID(q), o.ID())
	assert.True(t, Same(o, q))
	assert.False(t, Same(q, newSquare()))

	set := map[square]bool{q: true}
	assert.True(t, set[square{s}], "views are map keys by node identity")

	o2 := Wrap(q.Node())
	assert.Equal(t, o, o2)
}

func TestNewClassError(t *testing.T) {
	err := NewClassError("custom")
	assert.Equal(t, "class: custom", err.Error())
	assert.ErrorIs(t, err, ErrConversion)
}
