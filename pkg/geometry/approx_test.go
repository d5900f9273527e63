package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUlpsEq(t *testing.T) {
	testCases := []struct {
		desc     string
		a, b     float64
		epsilon  float64
		maxUlps  uint32
		expected bool
	}{
		{"identical values", 1.0, 1.0, 0, 0, true},
		{"within absolute epsilon", 1.0, 1.0001, 1e-3, 0, true},
		{"outside absolute epsilon", 1.0, 1.0001, 1e-6, 0, false},
		{"adjacent representable values", 1.0, math.Nextafter(1.0, 2.0), 0, 1, true},
		{"four ulps apart, two allowed", 1.0, math.Nextafter(math.Nextafter(math.Nextafter(math.Nextafter(1.0, 2.0), 2.0), 2.0), 2.0), 0, 2, false},
		{"opposite signs never ulps-equal", 1e-300, -1e-300, 0, math.MaxUint32, false},
		{"opposite signs within epsilon", 1e-300, -1e-300, 1e-12, 0, true},
		{"nan is not equal to itself", math.NaN(), math.NaN(), 1e-3, 10, false},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			require.Equal(t, tc.expected, ulpsEq(tc.a, tc.b, tc.epsilon, tc.maxUlps))
			require.Equal(t, tc.expected, ulpsEq(tc.b, tc.a, tc.epsilon, tc.maxUlps), "ulpsEq must be symmetric")
		})
	}
}

func TestApproxContainsPoint(t *testing.T) {
	bb := MustNew(0, 1, 0, 1)

	// just outside the right edge
	p := NewVector2(1.0001, 1)
	require.False(t, bb.ContainsPoint(p))
	require.True(t, bb.ApproxContainsPoint(p, 1e-3, 0))
	require.False(t, bb.ApproxContainsPoint(p, 1e-6, 0))

	// just outside the lower edge
	p = NewVector2(0.5, -0.0001)
	require.True(t, bb.ApproxContainsPoint(p, 1e-3, 0))
	require.False(t, bb.ApproxContainsPoint(p, 1e-6, 0))

	// genuinely far outside stays outside regardless of tolerance
	require.False(t, bb.ApproxContainsPoint(NewVector2(5, 0.5), 1e-3, 4))

	// interior points do not need the tolerance
	require.True(t, bb.ApproxContainsPoint(NewVector2(0.5, 0.5), 0, 0))
}

func TestApproxContains(t *testing.T) {
	bb1 := MustNew(0, 1, 0, 1)
	bb2 := MustNew(0, 1.0001, 0, 0.5)

	require.False(t, bb1.Contains(bb2))
	require.True(t, bb1.ApproxContains(bb2, 1e-3, 0))
	require.False(t, bb1.ApproxContains(bb2, 1e-6, 0))

	// exact containment still holds with zero tolerance
	require.True(t, bb1.ApproxContains(MustNew(0.2, 0.8, 0.2, 0.8), 0, 0))
}

func TestApproxTouches(t *testing.T) {
	bb1 := MustNew(0, 1, 0, 1)
	bb2 := MustNew(1.0001, 2, 0, 1)

	require.False(t, bb1.Touches(bb2))
	require.True(t, bb1.ApproxTouches(bb2, 1e-3, 0))
	require.False(t, bb1.ApproxTouches(bb2, 1e-6, 0))

	// intersecting boxes never touch, tolerance or not
	require.False(t, bb1.ApproxTouches(MustNew(0.5, 1.5, 0, 1), 1e-3, 0))

	// exact touching is a subset of approximate touching
	require.True(t, bb1.ApproxTouches(MustNew(1, 2, 0, 1), 0, 0))
}

func TestApproxEqual(t *testing.T) {
	bb1 := MustNew(0, 1, 0, 1)
	bb2 := MustNew(0, 1.0001, 0, 1)

	require.False(t, bb1.Equal(bb2))
	require.True(t, bb1.ApproxEqual(bb2, 1e-3, 0))
	require.False(t, bb1.ApproxEqual(bb2, 1e-6, 0))
	require.True(t, bb1.ApproxEqual(bb1, 0, 0))
}
