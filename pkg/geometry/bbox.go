package geometry

import (
	"fmt"
	"math"
)

// BoundingBox represents a rectilinear, axis-aligned 2D bounding box.
//
// A box is described by four extremas: the minimum and maximum x-value and
// the minimum and maximum y-value. Every live BoundingBox satisfies
// xmin <= xmax and ymin <= ymax; the constructors and setters enforce this,
// so a box obtained through them can be used without further validation.
// A box where xmin == xmax (or ymin == ymax) has zero width (or height);
// that is a valid, singular box, not an error. Such boxes are produced
// deliberately, for example by FromPoints on a single point, and can be
// cleared with RemoveSingularDimensions.
//
// BoundingBox is a small value type. Copying is cheap and never aliases;
// mutating a shared instance from multiple goroutines is a data race the
// caller has to exclude, same as for any plain value.
type BoundingBox struct {
	xmin, xmax float64
	ymin, ymax float64
}

// New creates a bounding box from minimum and maximum x- and y-values.
// It returns an error if xmin > xmax or ymin > ymax. NaN extremas pass
// validation because the ordering check is false for NaN; use IsFinite
// to reject them.
func New(xmin, xmax, ymin, ymax float64) (BoundingBox, error) {
	if xmin > xmax || ymin > ymax {
		return BoundingBox{}, fmt.Errorf("invalid extremas: xmin (%v) must not exceed xmax (%v) and ymin (%v) must not exceed ymax (%v)", xmin, xmax, ymin, ymax)
	}
	return BoundingBox{xmin: xmin, xmax: xmax, ymin: ymin, ymax: ymax}, nil
}

// MustNew is like New but panics if the extremas are out of order.
// It is intended for box literals known to be valid.
func MustNew(xmin, xmax, ymin, ymax float64) BoundingBox {
	bb, err := New(xmin, xmax, ymin, ymax)
	if err != nil {
		panic(err)
	}
	return bb
}

// FromPoints creates the tight bounding box enclosing all given points.
// It visits every point once, tracking the running minimum and maximum per
// axis. The second return value is false if points is empty. A single
// point yields a singular box with zero width and height.
func FromPoints(points []Vector2) (BoundingBox, bool) {
	if len(points) == 0 {
		return BoundingBox{}, false
	}
	bb := BoundingBox{
		xmin: points[0].X,
		xmax: points[0].X,
		ymin: points[0].Y,
		ymax: points[0].Y,
	}
	for _, p := range points[1:] {
		if p.X < bb.xmin {
			bb.xmin = p.X
		}
		if p.X > bb.xmax {
			bb.xmax = p.X
		}
		if p.Y < bb.ymin {
			bb.ymin = p.Y
		}
		if p.Y > bb.ymax {
			bb.ymax = p.Y
		}
	}
	return bb, true
}

// XMin returns the minimum x-value of the bounding box
func (b BoundingBox) XMin() float64 {
	return b.xmin
}

// XMax returns the maximum x-value of the bounding box
func (b BoundingBox) XMax() float64 {
	return b.xmax
}

// YMin returns the minimum y-value of the bounding box
func (b BoundingBox) YMin() float64 {
	return b.ymin
}

// YMax returns the maximum y-value of the bounding box
func (b BoundingBox) YMax() float64 {
	return b.ymax
}

// SetXMin sets a new minimum x-value and reports whether it was applied.
// If the new value is bigger than the current xmax the box is left
// unchanged and SetXMin returns false.
func (b *BoundingBox) SetXMin(val float64) bool {
	if val > b.xmax {
		return false
	}
	b.xmin = val
	return true
}

// SetXMax sets a new maximum x-value and reports whether it was applied.
// If the new value is smaller than the current xmin the box is left
// unchanged and SetXMax returns false.
func (b *BoundingBox) SetXMax(val float64) bool {
	if val < b.xmin {
		return false
	}
	b.xmax = val
	return true
}

// SetYMin sets a new minimum y-value and reports whether it was applied.
// If the new value is bigger than the current ymax the box is left
// unchanged and SetYMin returns false.
func (b *BoundingBox) SetYMin(val float64) bool {
	if val > b.ymax {
		return false
	}
	b.ymin = val
	return true
}

// SetYMax sets a new maximum y-value and reports whether it was applied.
// If the new value is smaller than the current ymin the box is left
// unchanged and SetYMax returns false.
func (b *BoundingBox) SetYMax(val float64) bool {
	if val < b.ymin {
		return false
	}
	b.ymax = val
	return true
}

// Union returns the minimum bounding box containing both boxes.
// Union is commutative, associative and idempotent, and the result always
// contains both inputs.
func (b BoundingBox) Union(other BoundingBox) BoundingBox {
	return BoundingBox{
		xmin: math.Min(b.xmin, other.xmin),
		xmax: math.Max(b.xmax, other.xmax),
		ymin: math.Min(b.ymin, other.ymin),
		ymax: math.Max(b.ymax, other.ymax),
	}
}

// ContainsPoint reports whether the point lies inside the bounding box.
// The region is closed: a point on an edge counts as contained.
func (b BoundingBox) ContainsPoint(p Vector2) bool {
	return b.xmin <= p.X && p.X <= b.xmax &&
		b.ymin <= p.Y && p.Y <= b.ymax
}

// Contains reports whether other fits inside b. Shared edges count, so a
// box always contains itself.
func (b BoundingBox) Contains(other BoundingBox) bool {
	return b.xmin <= other.xmin &&
		b.ymin <= other.ymin &&
		b.xmax >= other.xmax &&
		b.ymax >= other.ymax
}

// Intersects reports whether the two boxes overlap with positive area on
// both axes. Boxes that merely share an edge are NOT intersecting; they
// are Touches.
func (b BoundingBox) Intersects(other BoundingBox) bool {
	return b.xmin < other.xmax && other.xmin < b.xmax &&
		b.ymin < other.ymax && other.ymin < b.ymax
}

// Touches reports whether the two boxes share at least one extremum
// without intersecting. The only gate besides the extremum equality is
// !Intersects, so a box lying inside another along a shared edge line is
// neither intersecting nor touching when its perpendicular span is
// singular.
func (b BoundingBox) Touches(other BoundingBox) bool {
	if b.Intersects(other) {
		return false
	}
	return b.xmin == other.xmax ||
		b.xmax == other.xmin ||
		b.ymin == other.ymax ||
		b.ymax == other.ymin
}

// Equal reports whether both boxes have exactly the same extremas.
// BoundingBox is comparable, so == gives the same answer.
func (b BoundingBox) Equal(other BoundingBox) bool {
	return b == other
}

// Width returns the extent of the bounding box along the x-axis
func (b BoundingBox) Width() float64 {
	return b.xmax - b.xmin
}

// Height returns the extent of the bounding box along the y-axis
func (b BoundingBox) Height() float64 {
	return b.ymax - b.ymin
}

// Center returns the center point of the bounding box
func (b BoundingBox) Center() Vector2 {
	return Vector2{
		X: 0.5 * (b.xmin + b.xmax),
		Y: 0.5 * (b.ymin + b.ymax),
	}
}

// Translate shifts all four extremas by the given vector.
// The ordering invariant is preserved for any finite shift.
func (b *BoundingBox) Translate(shift Vector2) {
	b.xmin += shift.X
	b.xmax += shift.X
	b.ymin += shift.Y
	b.ymax += shift.Y
}

// Scale multiplies width and height by factor while keeping the center
// fixed. The factor is not validated: a negative factor swaps the extremas
// past each other and leaves the box violating its ordering invariant.
// Callers passing factor <= 0 own the result.
func (b *BoundingBox) Scale(factor float64) {
	dw := 0.5 * (factor - 1.0) * b.Width()
	dh := 0.5 * (factor - 1.0) * b.Height()
	b.xmin -= dw
	b.xmax += dw
	b.ymin -= dh
	b.ymax += dh
}

// RemoveSingularDimensions expands every axis with exactly zero extent by
// pad on each side, so a singular axis ends up with extent 2*pad.
// Non-singular axes are untouched.
func (b *BoundingBox) RemoveSingularDimensions(pad float64) {
	if b.Width() == 0 {
		b.xmin -= pad
		b.xmax += pad
	}
	if b.Height() == 0 {
		b.ymin -= pad
		b.ymax += pad
	}
}

// IsFinite reports whether all four extremas are finite.
// Infinite and NaN extremas both report false.
func (b BoundingBox) IsFinite() bool {
	for _, v := range [4]float64{b.xmin, b.xmax, b.ymin, b.ymax} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}

// String returns the extremas in xmin, xmax, ymin, ymax order
func (b BoundingBox) String() string {
	return fmt.Sprintf("BoundingBox(%v, %v, %v, %v)", b.xmin, b.xmax, b.ymin, b.ymax)
}
