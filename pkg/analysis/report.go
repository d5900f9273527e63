package analysis

import (
	"fmt"

	"github.com/philipparndt/gobox/pkg/geometry"
)

// Report contains the derived measurements of a 2D point set
type Report struct {
	BoundingBox    geometry.BoundingBox
	Width          float64
	Height         float64
	Center         geometry.Vector2
	Area           float64
	PointCount     int
	SingularWidth  bool
	SingularHeight bool
}

// AnalyzePoints computes the bounding box of the point set and its derived
// measurements. It returns an error for an empty point set.
func AnalyzePoints(points []geometry.Vector2) (*Report, error) {
	bb, ok := geometry.FromPoints(points)
	if !ok {
		return nil, fmt.Errorf("cannot analyze an empty point set")
	}

	return &Report{
		BoundingBox:    bb,
		Width:          bb.Width(),
		Height:         bb.Height(),
		Center:         bb.Center(),
		Area:           bb.Width() * bb.Height(),
		PointCount:     len(points),
		SingularWidth:  bb.Width() == 0,
		SingularHeight: bb.Height() == 0,
	}, nil
}

// FormatVector formats a 2D point for report output
func FormatVector(v geometry.Vector2) string {
	return fmt.Sprintf("(%.6f, %.6f)", v.X, v.Y)
}
