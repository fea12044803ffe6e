// Package session sequences the query lifecycle: loading, the remote call,
// result and history updates, and failure propagation.
package session

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/sells-group/geoquery-cli/internal/model"
	"github.com/sells-group/geoquery-cli/internal/state"
	"github.com/sells-group/geoquery-cli/pkg/geosql"
)

// Session drives the query lifecycle against one state store. It is
// re-entrant: a new submission while a prior one is settling simply issues
// the next request. Completions are fenced by a monotonic sequence number so
// a slow early request cannot overwrite a later result.
type Session struct {
	store  *state.Store
	client geosql.Client
	seq    atomic.Uint64
}

// New creates a session over the given store and client.
func New(store *state.Store, client geosql.Client) *Session {
	return &Session{store: store, client: client}
}

// Store exposes the session's state store for read-side consumers.
func (s *Session) Store() *state.Store {
	return s.store
}

// ExecuteQuery runs one query lifecycle. The question must already be
// trimmed and non-empty; input validation belongs to the caller, and a blank
// question must never reach this method.
//
// On success the current result is replaced and a history item is prepended,
// in that order, before the method returns. On failure the error transition
// is applied first and the failure is then returned to the caller; the prior
// result and history are left untouched. A completion that is no longer the
// latest issued submission does not mutate loading, error, result, or
// history.
func (s *Session) ExecuteQuery(ctx context.Context, question string) (*model.QueryResponse, error) {
	id := s.seq.Add(1)

	s.store.Dispatch(state.SetLoading{Loading: true})
	s.store.Dispatch(state.SetQuestion{Question: question})

	resp, err := s.client.Query(ctx, question)
	if err != nil {
		if s.latest(id) {
			s.store.Dispatch(state.SetError{Message: geosql.ErrorMessage(err)})
		}
		return nil, err
	}

	if verr := resp.Validate(); verr != nil {
		// Data-integrity signal from the service; surface it, keep the payload.
		zap.L().Warn("session: result count mismatch", zap.Error(verr))
	}

	if s.latest(id) {
		s.store.Dispatch(state.SetQueryResult{Response: resp})
		s.store.Dispatch(state.AddToHistory{Item: model.NewHistoryItem(question, resp)})
	}

	return resp, nil
}

// LoadSchema returns the cached schema, fetching it at most once per session
// unless InvalidateSchema has been called.
func (s *Session) LoadSchema(ctx context.Context) (*model.SchemaResponse, error) {
	if snap := s.store.Snapshot(); snap.Schema != nil {
		return snap.Schema, nil
	}

	schema, err := s.client.Schema(ctx)
	if err != nil {
		return nil, err
	}

	s.store.Dispatch(state.SetSchema{Schema: schema})
	return schema, nil
}

// InvalidateSchema drops the cached schema so the next LoadSchema refetches.
func (s *Session) InvalidateSchema() {
	s.store.Dispatch(state.SetSchema{Schema: nil})
}

// SelectFeature marks the result with the given id in the current response
// as selected; an unknown id deselects.
func (s *Session) SelectFeature(id int64) {
	snap := s.store.Snapshot()
	if snap.CurrentQuery == nil {
		s.store.Dispatch(state.SetSelectedFeature{Feature: nil})
		return
	}
	s.store.Dispatch(state.SetSelectedFeature{Feature: snap.CurrentQuery.ResultByID(id)})
}

// ClearHistory empties the query history.
func (s *Session) ClearHistory() {
	s.store.Dispatch(state.ClearHistory{})
}

// Reset restores the documented initial state.
func (s *Session) Reset() {
	s.store.Dispatch(state.Reset{})
}

func (s *Session) latest(id uint64) bool {
	return s.seq.Load() == id
}
