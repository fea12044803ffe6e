package geo

import (
	"math"

	"github.com/twpayne/go-geom"
)

const (
	minZoom = 1
	maxZoom = 18

	// fitPadding leaves room around the fitted bounds, matching the padded
	// fit the map surface applies.
	fitPadding = 1.2
)

// Viewport is a map camera position.
type Viewport struct {
	Center LatLng `json:"center"`
	Zoom   int    `json:"zoom"`
}

// FitViewport computes a viewport enclosing all points. An empty point set
// leaves the viewport unchanged and returns current.
func FitViewport(points []LatLng, current Viewport) Viewport {
	if len(points) == 0 {
		return current
	}

	bounds := geom.NewBounds(geom.XY)
	for _, p := range points {
		bounds.Extend(geom.NewPointFlat(geom.XY, []float64{p.Lng, p.Lat}))
	}

	center := LatLng{
		Lat: (bounds.Min(1) + bounds.Max(1)) / 2,
		Lng: (bounds.Min(0) + bounds.Max(0)) / 2,
	}

	return Viewport{Center: center, Zoom: coveringZoom(bounds)}
}

// coveringZoom picks the largest zoom level whose world span still covers the
// padded bounds on its larger axis. A degenerate (single point) bounds clamps
// to maxZoom.
func coveringZoom(bounds *geom.Bounds) int {
	span := math.Max(bounds.Max(0)-bounds.Min(0), bounds.Max(1)-bounds.Min(1))
	span *= fitPadding
	if span <= 0 {
		return maxZoom
	}

	zoom := int(math.Floor(math.Log2(360 / span)))
	if zoom < minZoom {
		return minZoom
	}
	if zoom > maxZoom {
		return maxZoom
	}
	return zoom
}
