// Package render decides how each query result is drawn and builds its popup
// content. The actual drawing surface only needs to honor the returned
// instructions.
package render

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/sells-group/geoquery-cli/internal/geo"
	"github.com/sells-group/geoquery-cli/internal/model"
)

// Mode selects how a feature is drawn.
type Mode string

const (
	// ModeMarker draws a point marker at a single position.
	ModeMarker Mode = "marker"
	// ModeShape draws the full geometry as a styled overlay.
	ModeShape Mode = "shape"
)

// Style is the stroke/fill styling for a shape overlay.
type Style struct {
	Color       string  `json:"color"`
	Weight      int     `json:"weight"`
	Opacity     float64 `json:"opacity"`
	FillColor   string  `json:"fillColor,omitempty"`
	FillOpacity float64 `json:"fillOpacity,omitempty"`
}

// PopupRow is one key/value line of a feature popup.
type PopupRow struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Feature is a single render instruction: where and how to draw one result,
// plus its on-demand popup content.
type Feature struct {
	ID       int64          `json:"id"`
	Mode     Mode           `json:"mode"`
	Position geo.LatLng     `json:"position,omitempty"`
	Geometry model.Geometry `json:"geometry"`
	Style    Style          `json:"style,omitempty"`
	Popup    []PopupRow     `json:"popup"`
}

// Select builds the render instruction for one result. Point geometries with
// exactly two coordinate components become markers; everything else becomes a
// shape overlay styled by geometry tag.
func Select(r model.QueryResult) Feature {
	f := Feature{
		ID:       r.ID,
		Geometry: r.Geometry,
		Popup:    popupRows(r),
	}

	if r.Geometry.Type == model.GeometryPoint {
		if coords, ok := r.Geometry.Position(); ok && len(coords) == 2 {
			f.Mode = ModeMarker
			f.Position = geo.LatLng{Lat: coords[1], Lng: coords[0]}
			return f
		}
	}

	f.Mode = ModeShape
	f.Style = styleFor(r.Geometry.Type)
	return f
}

// SelectAll maps Select over a result list, preserving order.
func SelectAll(results []model.QueryResult) []Feature {
	features := make([]Feature, 0, len(results))
	for _, r := range results {
		features = append(features, Select(r))
	}
	return features
}

func styleFor(t model.GeometryType) Style {
	switch t {
	case model.GeometryLineString, model.GeometryMultiLineString:
		return Style{Color: "#3388ff", Weight: 3, Opacity: 0.8}
	case model.GeometryPolygon, model.GeometryMultiPolygon:
		return Style{Color: "#3388ff", Weight: 2, Opacity: 0.8, FillColor: "#3388ff", FillOpacity: 0.2}
	default:
		return Style{Color: "#3388ff", Weight: 2}
	}
}

// popupRows projects every attribute, in source order, into display rows.
// The geometry never appears as a row; the id does, because it arrived as a
// document field alongside the rest.
func popupRows(r model.QueryResult) []PopupRow {
	rows := make([]PopupRow, 0, len(r.Attributes))
	for _, a := range r.Attributes {
		rows = append(rows, PopupRow{Key: a.Key, Value: FormatValue(a.Value)})
	}
	return rows
}

// FormatValue is the one stringification rule for attribute values: nil
// renders as the literal "null", numbers without trailing zeros, everything
// else via fmt.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	case json.Number:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
