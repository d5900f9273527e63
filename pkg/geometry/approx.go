package geometry

import "math"

// ulpsEq reports whether a and b are approximately equal under an absolute
// epsilon or a maximum ULP (units in the last place) distance. The absolute
// check handles values near zero where ULP distances explode; the ULP check
// scales with magnitude. All tolerance-aware predicates of BoundingBox
// route through this single helper so they share identical semantics.
func ulpsEq(a, b, epsilon float64, maxUlps uint32) bool {
	if math.Abs(a-b) <= epsilon {
		return true
	}
	// ULP distance is meaningless for NaN and across the sign boundary.
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if math.Signbit(a) != math.Signbit(b) {
		return false
	}
	ia := int64(math.Float64bits(a))
	ib := int64(math.Float64bits(b))
	diff := ia - ib
	if diff < 0 {
		diff = -diff
	}
	return diff <= int64(maxUlps)
}

// ApproxContainsPoint is like ContainsPoint, but a point that lies within
// the given absolute epsilon or ULP distance of an edge still counts as
// contained. The tolerance only widens the equality branch of each boundary
// comparison; a point genuinely inside or outside is classified as with the
// exact predicate.
func (b BoundingBox) ApproxContainsPoint(p Vector2, epsilon float64, maxUlps uint32) bool {
	return (b.xmin < p.X || ulpsEq(b.xmin, p.X, epsilon, maxUlps)) &&
		(b.ymin < p.Y || ulpsEq(b.ymin, p.Y, epsilon, maxUlps)) &&
		(b.xmax > p.X || ulpsEq(b.xmax, p.X, epsilon, maxUlps)) &&
		(b.ymax > p.Y || ulpsEq(b.ymax, p.Y, epsilon, maxUlps))
}

// ApproxContains is like Contains, but each of the four extremum
// comparisons accepts approximate equality within the given absolute
// epsilon or ULP distance.
func (b BoundingBox) ApproxContains(other BoundingBox, epsilon float64, maxUlps uint32) bool {
	return (b.xmin < other.xmin || ulpsEq(b.xmin, other.xmin, epsilon, maxUlps)) &&
		(b.ymin < other.ymin || ulpsEq(b.ymin, other.ymin, epsilon, maxUlps)) &&
		(b.xmax > other.xmax || ulpsEq(b.xmax, other.xmax, epsilon, maxUlps)) &&
		(b.ymax > other.ymax || ulpsEq(b.ymax, other.ymax, epsilon, maxUlps))
}

// ApproxTouches is like Touches, but the shared-extremum check accepts
// approximate equality within the given absolute epsilon or ULP distance.
// The intersection gate stays exact.
func (b BoundingBox) ApproxTouches(other BoundingBox, epsilon float64, maxUlps uint32) bool {
	if b.Intersects(other) {
		return false
	}
	return ulpsEq(b.xmin, other.xmax, epsilon, maxUlps) ||
		ulpsEq(b.xmax, other.xmin, epsilon, maxUlps) ||
		ulpsEq(b.ymin, other.ymax, epsilon, maxUlps) ||
		ulpsEq(b.ymax, other.ymin, epsilon, maxUlps)
}

// ApproxEqual reports whether all four extremas of both boxes are pairwise
// approximately equal within the given absolute epsilon or ULP distance.
func (b BoundingBox) ApproxEqual(other BoundingBox, epsilon float64, maxUlps uint32) bool {
	return ulpsEq(b.xmin, other.xmin, epsilon, maxUlps) &&
		ulpsEq(b.xmax, other.xmax, epsilon, maxUlps) &&
		ulpsEq(b.ymin, other.ymin, epsilon, maxUlps) &&
		ulpsEq(b.ymax, other.ymax, epsilon, maxUlps)
}
