package geo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/geoquery-cli/internal/model"
)

func g(t *testing.T, typ model.GeometryType, coords string) model.Geometry {
	t.Helper()
	return model.Geometry{Type: typ, Coordinates: json.RawMessage(coords)}
}

func TestBounds(t *testing.T) {
	tests := []struct {
		name   string
		geom   model.Geometry
		want   []LatLng
		length int
	}{
		{
			name: "point_axis_swap",
			geom: model.Geometry{Type: model.GeometryPoint, Coordinates: json.RawMessage(`[34.78, 32.08]`)},
			want: []LatLng{{Lat: 32.08, Lng: 34.78}},
		},
		{
			name: "point_with_elevation",
			geom: model.Geometry{Type: model.GeometryPoint, Coordinates: json.RawMessage(`[34.78, 32.08, 12.5]`)},
			want: []LatLng{{Lat: 32.08, Lng: 34.78}},
		},
		{
			name: "linestring",
			geom: model.Geometry{Type: model.GeometryLineString, Coordinates: json.RawMessage(`[[0,1],[2,3]]`)},
			want: []LatLng{{Lat: 1, Lng: 0}, {Lat: 3, Lng: 2}},
		},
		{
			name: "polygon_source_order",
			geom: model.Geometry{Type: model.GeometryPolygon, Coordinates: json.RawMessage(`[[[0,0],[1,0],[1,1],[0,0]]]`)},
			want: []LatLng{{Lat: 0, Lng: 0}, {Lat: 0, Lng: 1}, {Lat: 1, Lng: 1}, {Lat: 0, Lng: 0}},
		},
		{
			name: "multipoint",
			geom: model.Geometry{Type: model.GeometryMultiPoint, Coordinates: json.RawMessage(`[[10,20],[30,40]]`)},
			want: []LatLng{{Lat: 20, Lng: 10}, {Lat: 40, Lng: 30}},
		},
		{
			name: "multilinestring",
			geom: model.Geometry{Type: model.GeometryMultiLineString, Coordinates: json.RawMessage(`[[[0,1],[2,3]],[[4,5]]]`)},
			want: []LatLng{{Lat: 1, Lng: 0}, {Lat: 3, Lng: 2}, {Lat: 5, Lng: 4}},
		},
		{
			name:   "multipolygon",
			geom:   model.Geometry{Type: model.GeometryMultiPolygon, Coordinates: json.RawMessage(`[[[[0,0],[1,0],[0,0]]],[[[5,5],[6,5],[5,5]]]]`)},
			length: 6,
		},
		{
			name: "unknown_tag",
			geom: model.Geometry{Type: "GeometryCollection", Coordinates: json.RawMessage(`[1,2]`)},
			want: nil,
		},
		{
			name: "short_leaf_skipped",
			geom: model.Geometry{Type: model.GeometryLineString, Coordinates: json.RawMessage(`[[1],[2,3],[4]]`)},
			want: []LatLng{{Lat: 3, Lng: 2}},
		},
		{
			name: "non_numeric_leaf_skipped",
			geom: model.Geometry{Type: model.GeometryLineString, Coordinates: json.RawMessage(`[["a","b"],[2,3]]`)},
			want: []LatLng{{Lat: 3, Lng: 2}},
		},
		{
			name: "wrong_nesting_yields_nothing",
			geom: model.Geometry{Type: model.GeometryPolygon, Coordinates: json.RawMessage(`[34.78, 32.08]`)},
			want: nil,
		},
		{
			name: "malformed_json",
			geom: model.Geometry{Type: model.GeometryPoint, Coordinates: json.RawMessage(`[34.78,`)},
			want: nil,
		},
		{
			name: "empty_coordinates",
			geom: model.Geometry{Type: model.GeometryPoint},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bounds(tt.geom)
			if tt.want != nil || tt.length == 0 {
				assert.Equal(t, tt.want, got)
			}
			if tt.length > 0 {
				assert.Len(t, got, tt.length)
			}
		})
	}
}

func TestCollectBounds(t *testing.T) {
	results := []model.QueryResult{
		{ID: 1, Geometry: g(t, model.GeometryPoint, `[34.78, 32.08]`)},
		{ID: 2, Geometry: g(t, model.GeometryLineString, `[[0,1],[2,3]]`)},
		{ID: 3, Geometry: g(t, "Unknown", `[9,9]`)},
	}

	points := CollectBounds(results)
	require.Len(t, points, 3)
	assert.Equal(t, LatLng{Lat: 32.08, Lng: 34.78}, points[0])
	assert.Equal(t, LatLng{Lat: 1, Lng: 0}, points[1])
	assert.Equal(t, LatLng{Lat: 3, Lng: 2}, points[2])
}
