package state

import "github.com/sells-group/geoquery-cli/internal/model"

// reduce applies one action to a prior state and returns the next state. It
// is pure and total: an action type outside the closed set is identity, and
// no branch reads external state or performs I/O.
func reduce(s State, initial State, action Action) State {
	switch a := action.(type) {
	case SetQuestion:
		s.CurrentQuestion = a.Question

	case SetLoading:
		s.IsLoading = a.Loading
		if a.Loading {
			s.Error = ""
		}

	case SetError:
		s.Error = a.Message
		s.IsLoading = false

	case SetQueryResult:
		s.CurrentQuery = a.Response
		s.IsLoading = false
		s.Error = ""

	case AddToHistory:
		history := make([]model.QueryHistoryItem, 0, len(s.QueryHistory)+1)
		history = append(history, a.Item)
		history = append(history, s.QueryHistory...)
		if len(history) > HistoryCap {
			history = history[:HistoryCap]
		}
		s.QueryHistory = history

	case ClearHistory:
		s.QueryHistory = nil

	case SetMapCenter:
		s.MapCenter = a.Center

	case SetMapZoom:
		s.MapZoom = a.Zoom

	case SetSelectedFeature:
		s.SelectedFeature = a.Feature

	case SetSchema:
		s.Schema = a.Schema

	case Reset:
		return initial.clone()
	}

	return s
}
