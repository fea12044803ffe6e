package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryResultUnmarshalPreservesOrder(t *testing.T) {
	data := []byte(`{
		"id": 42,
		"name": "Cafe Nahat",
		"rating": 4.6,
		"open": true,
		"closed_on": null,
		"geojson": {"type": "Point", "coordinates": [34.78, 32.08]}
	}`)

	var r QueryResult
	require.NoError(t, json.Unmarshal(data, &r))

	assert.Equal(t, int64(42), r.ID)
	assert.Equal(t, GeometryPoint, r.Geometry.Type)

	keys := make([]string, 0, len(r.Attributes))
	for _, a := range r.Attributes {
		keys = append(keys, a.Key)
	}
	// id stays in the attribute listing; geojson never does.
	assert.Equal(t, []string{"id", "name", "rating", "open", "closed_on"}, keys)

	name, ok := r.Attr("name")
	require.True(t, ok)
	assert.Equal(t, "Cafe Nahat", name)

	closedOn, ok := r.Attr("closed_on")
	require.True(t, ok)
	assert.Nil(t, closedOn)

	_, ok = r.Attr("geojson")
	assert.False(t, ok)
}

func TestQueryResultUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not_an_object", data: `[1,2,3]`},
		{name: "non_integer_id", data: `{"id": "abc"}`},
		{name: "fractional_id", data: `{"id": 1.5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r QueryResult
			assert.Error(t, json.Unmarshal([]byte(tt.data), &r))
		})
	}
}

func TestQueryResultMarshalRoundTrip(t *testing.T) {
	data := []byte(`{"id":7,"name":"Meir Park","geojson":{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,0]]]}}`)

	var r QueryResult
	require.NoError(t, json.Unmarshal(data, &r))

	out, err := json.Marshal(r)
	require.NoError(t, err)

	var again QueryResult
	require.NoError(t, json.Unmarshal(out, &again))
	assert.Equal(t, r.ID, again.ID)
	assert.Equal(t, r.Geometry.Type, again.Geometry.Type)
	assert.Len(t, again.Attributes, len(r.Attributes))
}

func TestQueryResponseValidate(t *testing.T) {
	resp := &QueryResponse{
		ResultCount: 2,
		Results:     []QueryResult{{ID: 1}},
	}
	err := resp.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "result_count 2")
	// The mismatch is reported, never corrected.
	assert.Equal(t, 2, resp.ResultCount)
	assert.Len(t, resp.Results, 1)

	resp.ResultCount = 1
	assert.NoError(t, resp.Validate())
}

func TestResultByID(t *testing.T) {
	resp := &QueryResponse{Results: []QueryResult{{ID: 1}, {ID: 2}}}

	require.NotNil(t, resp.ResultByID(2))
	assert.Equal(t, int64(2), resp.ResultByID(2).ID)
	assert.Nil(t, resp.ResultByID(99))
}

func TestNewHistoryItem(t *testing.T) {
	resp := &QueryResponse{
		SQL:           "SELECT 1",
		ResultCount:   3,
		ExecutionTime: 12.5,
		Timestamp:     "2026-08-31T00:00:00Z",
	}

	item := NewHistoryItem("Show all cafes", resp)

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "Show all cafes", item.Question)
	assert.Equal(t, "SELECT 1", item.SQL)
	assert.Equal(t, 3, item.ResultCount)
	assert.Equal(t, 12.5, item.ExecutionTime)
	assert.Equal(t, resp.Timestamp, item.Timestamp)

	// Synthetic ids are unique per item.
	assert.NotEqual(t, item.ID, NewHistoryItem("again", resp).ID)
}

func TestGeometryPosition(t *testing.T) {
	tests := []struct {
		name   string
		geom   Geometry
		want   []float64
		wantOK bool
	}{
		{
			name:   "point",
			geom:   Geometry{Type: GeometryPoint, Coordinates: json.RawMessage(`[34.78, 32.08]`)},
			want:   []float64{34.78, 32.08},
			wantOK: true,
		},
		{
			name:   "point_with_elevation",
			geom:   Geometry{Type: GeometryPoint, Coordinates: json.RawMessage(`[34.78, 32.08, 10]`)},
			want:   []float64{34.78, 32.08, 10},
			wantOK: true,
		},
		{
			name: "not_a_point",
			geom: Geometry{Type: GeometryPolygon, Coordinates: json.RawMessage(`[[[0,0]]]`)},
		},
		{
			name: "too_few_components",
			geom: Geometry{Type: GeometryPoint, Coordinates: json.RawMessage(`[34.78]`)},
		},
		{
			name: "nested_point",
			geom: Geometry{Type: GeometryPoint, Coordinates: json.RawMessage(`[[34.78, 32.08]]`)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.geom.Position()
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNestingDepth(t *testing.T) {
	assert.Equal(t, 0, GeometryPoint.NestingDepth())
	assert.Equal(t, 1, GeometryLineString.NestingDepth())
	assert.Equal(t, 1, GeometryMultiPoint.NestingDepth())
	assert.Equal(t, 2, GeometryPolygon.NestingDepth())
	assert.Equal(t, 2, GeometryMultiLineString.NestingDepth())
	assert.Equal(t, 3, GeometryMultiPolygon.NestingDepth())
	assert.Equal(t, -1, GeometryType("Circle").NestingDepth())
}
