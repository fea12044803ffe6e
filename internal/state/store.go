package state

import "sync"

// Store owns the session state. All mutation goes through Dispatch, which
// serializes transitions; Snapshot only ever observes fully-applied states.
type Store struct {
	mu      sync.Mutex
	state   State
	initial State
}

// NewStore creates a store seeded with (and resettable to) the given initial
// state.
func NewStore(initial State) *Store {
	return &Store{
		state:   initial.clone(),
		initial: initial.clone(),
	}
}

// Dispatch applies one transition under single-writer semantics.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = reduce(s.state, s.initial, action)
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}
