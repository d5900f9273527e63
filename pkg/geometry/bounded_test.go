package geometry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCircleBoundingBox(t *testing.T) {
	c := Circle{Center: NewVector2(2, 2), Radius: 2}
	require.Equal(t, MustNew(0, 4, 0, 4), c.BoundingBox())
}

func TestPolygonBoundingBox(t *testing.T) {
	p := Polygon{
		{X: 1, Y: 0},
		{X: -5, Y: 2},
		{X: 3, Y: -12.3},
	}
	require.Equal(t, MustNew(-5, 3, -12.3, 2), p.BoundingBox())

	require.Equal(t, BoundingBox{}, Polygon{}.BoundingBox())
}

func TestFromBounded(t *testing.T) {
	circles := []Circle{
		{Center: NewVector2(0, 0), Radius: 1},
		{Center: NewVector2(0, 2), Radius: 1},
		{Center: NewVector2(0, 2), Radius: 2},
	}

	bb, ok := FromBounded(circles)
	require.True(t, ok)
	require.Equal(t, MustNew(-2, 2, -1, 4), bb)
}

func TestFromBoundedEmpty(t *testing.T) {
	_, ok := FromBounded([]Circle{})
	require.False(t, ok)

	_, ok = FromBounded[Bounded](nil)
	require.False(t, ok)
}

// Heterogeneous geometry folds through the Bounded interface.
func TestFromBoundedMixed(t *testing.T) {
	entities := []Bounded{
		Circle{Center: NewVector2(0, 0), Radius: 1},
		Polygon{{X: 3, Y: 3}, {X: 5, Y: 4}},
		MustNew(-4, -3, 0, 1),
	}

	bb, ok := FromBounded(entities)
	require.True(t, ok)
	require.Equal(t, MustNew(-4, 5, -1, 4), bb)
}
