package interpreter

import (
	"sync"

	"github.com/AINative-Studio/ai-kit-a2ui/component"
)

// controlState is the transient working value of one uncontrolled control.
type controlState struct {
	kind  component.Kind
	value any
}

// StateStore is the registry of control state by component id. Dropping an
// entry is what re-seeds a control on its next render.
type StateStore struct {
	states map[string]*controlState
	mu     sync.Mutex
}

// NewStateStore creates an empty store.
func NewStateStore() *StateStore {
	return &StateStore{states: make(map[string]*controlState)}
}

// seed returns the current value for id, installing seedValue first when no
// state exists or the stored kind differs (a kind change is a new identity).
func (s *StateStore) seed(id string, kind component.Kind, seedValue func() any) any {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.states[id]
	if !ok || state.kind != kind {
		state = &controlState{kind: kind, value: seedValue()}
		s.states[id] = state
	}
	return state.value
}

// set records a new working value for id. A set without a prior seed is
// ignored; only rendered controls own state.
func (s *StateStore) set(id string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if state, ok := s.states[id]; ok {
		state.value = value
	}
}

// get returns the current value for id.
func (s *StateStore) get(id string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.states[id]
	if !ok {
		return nil, false
	}
	return state.value, true
}

// Forget drops state for the given ids. Called when reconciliation replaces
// or removes the nodes, so their next render re-seeds from the model.
func (s *StateStore) Forget(ids ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range ids {
		delete(s.states, id)
	}
}

// Reset drops all state. Called on surface creation: every node has a new
// identity.
func (s *StateStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states = make(map[string]*controlState)
}

// Len returns the number of tracked controls.
func (s *StateStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.states)
}
