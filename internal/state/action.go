package state

import (
	"github.com/sells-group/geoquery-cli/internal/geo"
	"github.com/sells-group/geoquery-cli/internal/model"
)

// Action is one member of the closed transition set. Only the types in this
// file implement it.
type Action interface {
	isAction()
}

// SetQuestion records the current question text.
type SetQuestion struct{ Question string }

// SetLoading switches the loading flag. Entering loading clears any error.
type SetLoading struct{ Loading bool }

// SetError records an error message (empty clears it) and always clears
// loading.
type SetError struct{ Message string }

// SetQueryResult replaces the current response, clearing loading and error.
type SetQueryResult struct{ Response *model.QueryResponse }

// AddToHistory prepends a history item under the cap-10 eviction rule.
type AddToHistory struct{ Item model.QueryHistoryItem }

// ClearHistory empties the history.
type ClearHistory struct{}

// SetMapCenter moves the map center.
type SetMapCenter struct{ Center geo.LatLng }

// SetMapZoom changes the map zoom.
type SetMapZoom struct{ Zoom int }

// SetSelectedFeature records the selected result (nil deselects).
type SetSelectedFeature struct{ Feature *model.QueryResult }

// SetSchema caches the schema description.
type SetSchema struct{ Schema *model.SchemaResponse }

// Reset restores the documented initial state.
type Reset struct{}

func (SetQuestion) isAction()        {}
func (SetLoading) isAction()         {}
func (SetError) isAction()           {}
func (SetQueryResult) isAction()     {}
func (AddToHistory) isAction()       {}
func (ClearHistory) isAction()       {}
func (SetMapCenter) isAction()       {}
func (SetMapZoom) isAction()         {}
func (SetSelectedFeature) isAction() {}
func (SetSchema) isAction()          {}
func (Reset) isAction()              {}
