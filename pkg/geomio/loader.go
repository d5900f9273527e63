package geomio

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/philipparndt/gobox/pkg/geometry"
)

// LoadPoints reads a point set from a CSV or GeoJSON file and returns the
// 2D points it contains. The format is detected from the content: a
// payload starting with '{' or '[' is parsed as GeoJSON, everything else
// as CSV.
func LoadPoints(filename string) ([]geometry.Vector2, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return parseGeoJSON(trimmed)
	}
	return parseCSV(bytes.NewReader(data))
}

// parseGeoJSON extracts points from a GeoJSON feature collection.
// Point geometries contribute their coordinate directly; all other
// geometries contribute the corners of their bound, which is all a
// bounding-box fold needs.
func parseGeoJSON(data []byte) ([]geometry.Vector2, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse GeoJSON: %w", err)
	}

	var points []geometry.Vector2
	for _, f := range fc.Features {
		if f.Geometry == nil {
			continue
		}
		if p, ok := f.Geometry.(orb.Point); ok {
			points = append(points, geometry.NewVector2(p.X(), p.Y()))
			continue
		}
		bound := f.Geometry.Bound()
		points = append(points,
			geometry.NewVector2(bound.Min.X(), bound.Min.Y()),
			geometry.NewVector2(bound.Max.X(), bound.Max.Y()),
		)
	}
	return points, nil
}

// parseCSV reads one point per row. The header row selects the columns:
// x|lon|lng|longitude and y|lat|latitude (case-insensitive); without a
// recognizable header the first two columns are used. Rows that do not
// parse as two floats are skipped.
func parseCSV(r io.Reader) ([]geometry.Vector2, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	xCol, yCol := 0, 1
	start := 0
	for i, name := range records[0] {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "x", "lon", "lng", "longitude":
			xCol = i
			start = 1
		case "y", "lat", "latitude":
			yCol = i
			start = 1
		}
	}

	var points []geometry.Vector2
	for _, record := range records[start:] {
		if len(record) <= xCol || len(record) <= yCol {
			continue
		}
		x, errX := strconv.ParseFloat(strings.TrimSpace(record[xCol]), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(record[yCol]), 64)
		if errX != nil || errY != nil {
			continue
		}
		points = append(points, geometry.NewVector2(x, y))
	}
	return points, nil
}
