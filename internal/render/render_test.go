package render

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/geoquery-cli/internal/geo"
	"github.com/sells-group/geoquery-cli/internal/model"
)

func result(t *testing.T, doc string) model.QueryResult {
	t.Helper()
	var r model.QueryResult
	require.NoError(t, json.Unmarshal([]byte(doc), &r))
	return r
}

func TestSelectMarkerForPoint(t *testing.T) {
	r := result(t, `{"id":1,"name":"Cafe Nahat","geojson":{"type":"Point","coordinates":[34.78,32.08]}}`)

	f := Select(r)

	assert.Equal(t, ModeMarker, f.Mode)
	assert.Equal(t, geo.LatLng{Lat: 32.08, Lng: 34.78}, f.Position)
	assert.Empty(t, f.Style.Color)
}

func TestSelectShapeForPointWithExtraComponents(t *testing.T) {
	// Markers require exactly two components; anything else falls back to a
	// shape overlay.
	r := result(t, `{"id":1,"geojson":{"type":"Point","coordinates":[34.78,32.08,100]}}`)

	f := Select(r)

	assert.Equal(t, ModeShape, f.Mode)
	assert.Equal(t, "#3388ff", f.Style.Color)
	assert.Equal(t, 2, f.Style.Weight)
}

func TestSelectStyles(t *testing.T) {
	tests := []struct {
		name    string
		geojson string
		weight  int
		hasFill bool
	}{
		{name: "linestring", geojson: `{"type":"LineString","coordinates":[[0,0],[1,1]]}`, weight: 3},
		{name: "multilinestring", geojson: `{"type":"MultiLineString","coordinates":[[[0,0],[1,1]]]}`, weight: 3},
		{name: "polygon", geojson: `{"type":"Polygon","coordinates":[[[0,0],[1,0],[0,0]]]}`, weight: 2, hasFill: true},
		{name: "multipolygon", geojson: `{"type":"MultiPolygon","coordinates":[[[[0,0],[1,0],[0,0]]]]}`, weight: 2, hasFill: true},
		{name: "multipoint", geojson: `{"type":"MultiPoint","coordinates":[[0,0],[1,1]]}`, weight: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Select(result(t, `{"id":1,"geojson":`+tt.geojson+`}`))

			assert.Equal(t, ModeShape, f.Mode)
			assert.Equal(t, "#3388ff", f.Style.Color)
			assert.Equal(t, tt.weight, f.Style.Weight)
			if tt.hasFill {
				assert.Equal(t, "#3388ff", f.Style.FillColor)
				assert.InDelta(t, 0.2, f.Style.FillOpacity, 1e-9)
			} else {
				assert.Empty(t, f.Style.FillColor)
			}
		})
	}
}

func TestPopupRowsOrderAndStringification(t *testing.T) {
	r := result(t, `{
		"id": 5,
		"name": "Meir Park",
		"area_sqm": 35000,
		"rating": 4.5,
		"closed_on": null,
		"public": true,
		"geojson": {"type":"Point","coordinates":[34.77,32.07]}
	}`)

	f := Select(r)

	require.Len(t, f.Popup, 6)
	assert.Equal(t, PopupRow{Key: "id", Value: "5"}, f.Popup[0])
	assert.Equal(t, PopupRow{Key: "name", Value: "Meir Park"}, f.Popup[1])
	assert.Equal(t, PopupRow{Key: "area_sqm", Value: "35000"}, f.Popup[2])
	assert.Equal(t, PopupRow{Key: "rating", Value: "4.5"}, f.Popup[3])
	assert.Equal(t, PopupRow{Key: "closed_on", Value: "null"}, f.Popup[4])
	assert.Equal(t, PopupRow{Key: "public", Value: "true"}, f.Popup[5])
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "null", FormatValue(nil))
	assert.Equal(t, "hello", FormatValue("hello"))
	assert.Equal(t, "3.5", FormatValue(3.5))
	assert.Equal(t, "3", FormatValue(float64(3)))
	assert.Equal(t, "42", FormatValue(json.Number("42")))
	assert.Equal(t, "false", FormatValue(false))
}

func TestSelectAllPreservesOrder(t *testing.T) {
	results := []model.QueryResult{
		result(t, `{"id":1,"geojson":{"type":"Point","coordinates":[1,1]}}`),
		result(t, `{"id":2,"geojson":{"type":"Polygon","coordinates":[[[0,0],[1,0],[0,0]]]}}`),
	}

	features := SelectAll(results)

	require.Len(t, features, 2)
	assert.Equal(t, int64(1), features[0].ID)
	assert.Equal(t, ModeMarker, features[0].Mode)
	assert.Equal(t, int64(2), features[1].ID)
	assert.Equal(t, ModeShape, features[1].Mode)
}
