package geomio

import (
	"github.com/paulmach/orb/geojson"
	"github.com/philipparndt/gobox/pkg/geometry"
)

// Feature adapts a GeoJSON feature to the geometry.Bounded protocol, so
// decoded features can participate in FromBounded folds next to native
// geometry.
type Feature struct {
	Feature *geojson.Feature
}

// BoundingBox returns the bounding box of the wrapped feature's geometry.
// A feature without geometry yields the zero box.
func (f Feature) BoundingBox() geometry.BoundingBox {
	if f.Feature == nil || f.Feature.Geometry == nil {
		return geometry.BoundingBox{}
	}
	bound := f.Feature.Geometry.Bound()
	bb, _ := geometry.FromPoints([]geometry.Vector2{
		geometry.NewVector2(bound.Min.X(), bound.Min.Y()),
		geometry.NewVector2(bound.Max.X(), bound.Max.Y()),
	})
	return bb
}
