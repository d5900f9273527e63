package geometry

// Bounded is implemented by any geometry that can produce its own bounding
// box. It is the only contract the library places on foreign types: supply
// the conversion once and the whole predicate and union API becomes
// available, including FromBounded folds over mixed geometry.
type Bounded interface {
	BoundingBox() BoundingBox
}

// FromBounded returns the union of the bounding boxes of all entities.
// The second return value is false if entities is empty. Union is
// commutative and associative, so the fold order does not affect the
// result.
func FromBounded[T Bounded](entities []T) (BoundingBox, bool) {
	if len(entities) == 0 {
		return BoundingBox{}, false
	}
	bb := entities[0].BoundingBox()
	for _, e := range entities[1:] {
		bb = bb.Union(e.BoundingBox())
	}
	return bb, true
}

// BoundingBox returns the box itself, so boxes participate in Bounded
// folds alongside other geometry.
func (b BoundingBox) BoundingBox() BoundingBox {
	return b
}

// Circle is a sample Bounded implementation: a circle described by its
// center and radius.
type Circle struct {
	Center Vector2
	Radius float64
}

// BoundingBox returns the tight axis-aligned box around the circle
func (c Circle) BoundingBox() BoundingBox {
	return BoundingBox{
		xmin: c.Center.X - c.Radius,
		xmax: c.Center.X + c.Radius,
		ymin: c.Center.Y - c.Radius,
		ymax: c.Center.Y + c.Radius,
	}
}

// Polygon is a sample Bounded implementation: an open or closed chain of
// vertices. An empty polygon has no extent and yields the zero box.
type Polygon []Vector2

// BoundingBox returns the tight axis-aligned box around the vertices
func (p Polygon) BoundingBox() BoundingBox {
	bb, ok := FromPoints(p)
	if !ok {
		return BoundingBox{}
	}
	return bb
}
