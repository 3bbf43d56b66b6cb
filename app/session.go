// Package app holds the application services: the session state container and
// the analysis orchestrator that ties upload, progress, computation and
// history together.
package app

import (
	"sync"

	"coanalyst/domain/analysis"
	"coanalyst/domain/core"
	"coanalyst/domain/table"
)

// SessionState is everything the prototype keeps between requests: the
// uploaded dataset, the latest result and the in-flight flag. It replaces the
// scattered page-level globals of the original prototype with one container.
type SessionState struct {
	ID           core.SessionID
	DatasetID    core.DatasetID
	TableName    string
	Table        *table.Table
	Result       *analysis.Result
	Instructions string
	Parameters   map[string][]string
	InProgress   bool
	UpdatedAt    core.Timestamp
}

// HasDataset reports whether a dataset is currently loaded
func (s SessionState) HasDataset() bool {
	return s.Table != nil
}

// Session is the concurrency-safe holder of SessionState. All mutation goes
// through Dispatch so every change happens under the same lock; readers take
// value snapshots. Table and Result are treated as immutable once stored.
type Session struct {
	mu    sync.RWMutex
	state SessionState
}

// NewSession creates a session with a fresh identity and no dataset
func NewSession() *Session {
	return &Session{
		state: SessionState{
			ID:        core.SessionID(core.NewID()),
			UpdatedAt: core.Now(),
		},
	}
}

// ID returns the stable session identity
func (s *Session) ID() core.SessionID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.ID
}

// Dispatch applies a mutation to the state under the write lock. The
// function must not retain the state pointer past its return.
func (s *Session) Dispatch(fn func(*SessionState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
	s.state.UpdatedAt = core.Now()
}

// Snapshot returns a copy of the current state
func (s *Session) Snapshot() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SetDataset stores a newly uploaded table and clears any previous result
func (s *Session) SetDataset(name string, t *table.Table) core.DatasetID {
	id := core.DatasetID(core.NewID())
	s.Dispatch(func(state *SessionState) {
		state.DatasetID = id
		state.TableName = name
		state.Table = t
		state.Result = nil
		state.Instructions = ""
		state.Parameters = nil
	})
	return id
}

// ClearDataset removes the dataset and its result
func (s *Session) ClearDataset() {
	s.Dispatch(func(state *SessionState) {
		state.DatasetID = ""
		state.TableName = ""
		state.Table = nil
		state.Result = nil
		state.Instructions = ""
		state.Parameters = nil
	})
}
