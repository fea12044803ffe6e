package model

import "encoding/json"

// GeometryType discriminates the supported GeoJSON geometry tags.
type GeometryType string

const (
	GeometryPoint           GeometryType = "Point"
	GeometryLineString      GeometryType = "LineString"
	GeometryPolygon         GeometryType = "Polygon"
	GeometryMultiPoint      GeometryType = "MultiPoint"
	GeometryMultiLineString GeometryType = "MultiLineString"
	GeometryMultiPolygon    GeometryType = "MultiPolygon"
)

// NestingDepth returns the coordinate nesting depth for the tag: the number
// of array levels between the coordinates value and a single position.
// Unknown tags return -1.
func (t GeometryType) NestingDepth() int {
	switch t {
	case GeometryPoint:
		return 0
	case GeometryLineString, GeometryMultiPoint:
		return 1
	case GeometryPolygon, GeometryMultiLineString:
		return 2
	case GeometryMultiPolygon:
		return 3
	default:
		return -1
	}
}

// Geometry is a GeoJSON geometry. Coordinates stay raw so malformed nesting
// degrades at bounds extraction instead of failing the whole response decode.
type Geometry struct {
	Type        GeometryType    `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// Position decodes the coordinates as a single position. It returns the
// numeric components and true only when the geometry is a Point whose
// coordinates decode to an array of at least two numbers.
func (g Geometry) Position() ([]float64, bool) {
	if g.Type != GeometryPoint {
		return nil, false
	}
	var coords []float64
	if err := json.Unmarshal(g.Coordinates, &coords); err != nil {
		return nil, false
	}
	if len(coords) < 2 {
		return nil, false
	}
	return coords, true
}
