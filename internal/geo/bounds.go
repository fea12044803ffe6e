// Package geo turns result geometries into coordinate sequences and fitted
// map viewports.
package geo

import (
	"encoding/json"

	"github.com/sells-group/geoquery-cli/internal/model"
)

// LatLng is a coordinate pair in map axis order (latitude first).
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Bounds extracts every leaf coordinate of the geometry as (lat, lng) pairs,
// swapping from the GeoJSON (lng, lat) storage order. It dispatches on the
// geometry tag to a fixed nesting depth and descends depth-first in source
// order. Malformed entries are skipped, never an error: leaves with fewer
// than two numeric components are dropped, wrong nesting yields fewer or
// zero points, and unknown tags yield an empty sequence.
func Bounds(g model.Geometry) []LatLng {
	depth := g.Type.NestingDepth()
	if depth < 0 || len(g.Coordinates) == 0 {
		return nil
	}

	var coords any
	if err := json.Unmarshal(g.Coordinates, &coords); err != nil {
		return nil
	}

	var points []LatLng
	descend(coords, depth, &points)
	return points
}

// CollectBounds aggregates the bounds points of every result in order.
func CollectBounds(results []model.QueryResult) []LatLng {
	var points []LatLng
	for _, r := range results {
		points = append(points, Bounds(r.Geometry)...)
	}
	return points
}

func descend(node any, depth int, points *[]LatLng) {
	if depth == 0 {
		if p, ok := leaf(node); ok {
			*points = append(*points, p)
		}
		return
	}
	arr, ok := node.([]any)
	if !ok {
		return
	}
	for _, item := range arr {
		descend(item, depth-1, points)
	}
}

// leaf interprets a node as a single position. Extra components beyond
// (lng, lat) are ignored.
func leaf(node any) (LatLng, bool) {
	arr, ok := node.([]any)
	if !ok || len(arr) < 2 {
		return LatLng{}, false
	}
	lng, ok := arr[0].(float64)
	if !ok {
		return LatLng{}, false
	}
	lat, ok := arr[1].(float64)
	if !ok {
		return LatLng{}, false
	}
	return LatLng{Lat: lat, Lng: lng}, true
}
