// Package state holds the application session state and the closed set of
// transitions that may mutate it.
package state

import (
	"github.com/sells-group/geoquery-cli/internal/geo"
	"github.com/sells-group/geoquery-cli/internal/model"
)

// HistoryCap bounds the query history; inserting beyond it evicts the oldest
// entry.
const HistoryCap = 10

// State is the full application session state. Error and IsLoading are
// mutually exclusive: entering loading clears the error and setting an error
// clears loading.
type State struct {
	CurrentQuestion string
	IsLoading       bool
	Error           string

	CurrentQuery *model.QueryResponse
	QueryHistory []model.QueryHistoryItem

	MapCenter       geo.LatLng
	MapZoom         int
	SelectedFeature *model.QueryResult

	Schema *model.SchemaResponse
}

// Initial returns the documented initial state for the given default
// viewport.
func Initial(center geo.LatLng, zoom int) State {
	return State{
		MapCenter: center,
		MapZoom:   zoom,
	}
}

// Viewport returns the state's map viewport.
func (s State) Viewport() geo.Viewport {
	return geo.Viewport{Center: s.MapCenter, Zoom: s.MapZoom}
}

// clone copies the state deeply enough that a snapshot is isolated from
// later transitions. Response and result pointers are shared; both are
// immutable once constructed.
func (s State) clone() State {
	out := s
	if s.QueryHistory != nil {
		out.QueryHistory = make([]model.QueryHistoryItem, len(s.QueryHistory))
		copy(out.QueryHistory, s.QueryHistory)
	}
	return out
}
