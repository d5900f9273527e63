package geometry

import (
	"encoding/json"
	"fmt"
)

// boxJSON is the wire form of a BoundingBox. The four named extremas are
// the entire serializable state.
type boxJSON struct {
	XMin float64 `json:"xmin"`
	XMax float64 `json:"xmax"`
	YMin float64 `json:"ymin"`
	YMax float64 `json:"ymax"`
}

// MarshalJSON encodes the box as an object with the fields xmin, xmax,
// ymin and ymax.
func (b BoundingBox) MarshalJSON() ([]byte, error) {
	return json.Marshal(boxJSON{
		XMin: b.xmin,
		XMax: b.xmax,
		YMin: b.ymin,
		YMax: b.ymax,
	})
}

// UnmarshalJSON decodes a box and re-validates the ordering invariant, so
// hand-edited input cannot smuggle in an inverted box.
func (b *BoundingBox) UnmarshalJSON(data []byte) error {
	var raw boxJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	bb, err := New(raw.XMin, raw.XMax, raw.YMin, raw.YMax)
	if err != nil {
		return fmt.Errorf("invalid bounding box: %w", err)
	}
	*b = bb
	return nil
}
