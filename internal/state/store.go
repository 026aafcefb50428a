package state

import (
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/five82/portal/internal/rickmorty"
)

// Query identifies one page of the character listing.
type Query struct {
	Name   string
	Status rickmorty.Status
	Page   int
}

// Filter converts the query into client filter arguments.
func (q Query) Filter() rickmorty.CharacterFilter {
	return rickmorty.CharacterFilter{Name: q.Name, Status: q.Status}
}

// Snapshot represents the latest listing result available to the UI.
type Snapshot struct {
	Query               Query
	Characters          []rickmorty.Character
	Info                rickmorty.Info
	Loading             bool
	NotFound            bool // the API answered 404, i.e. no matches
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// IsOffline returns true when the API has failed for multiple loads in a row.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Empty reports whether a finished load produced nothing to show.
func (s Snapshot) Empty() bool {
	return !s.Loading && s.LastError == nil && !s.LastUpdated.IsZero() && len(s.Characters) == 0
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	seq      uint64
	snapshot Snapshot
}

// Begin records q as the active query and marks the store loading. The
// returned sequence number must be passed to Complete; results for older
// sequences are discarded.
func (s *Store) Begin(q Query) uint64 {
	if q.Page < 1 {
		q.Page = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	s.snapshot.Query = q
	s.snapshot.Loading = true
	return s.seq
}

// Complete stores the outcome of the load started by Begin. A 404 means the
// filters matched nothing and is recorded as an empty result. Any other error
// clears the results and counts as a failure. It reports false when seq is
// stale and the result was dropped.
func (s *Store) Complete(seq uint64, page *rickmorty.Page[rickmorty.Character], err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		return false
	}

	snap := &s.snapshot
	snap.Loading = false
	snap.LastUpdated = time.Now()
	snap.Characters = nil
	snap.Info = rickmorty.Info{}
	snap.NotFound = false

	switch {
	case err == nil:
		if page != nil {
			snap.Characters = slices.Clone(page.Results)
			snap.Info = page.Info
		}
		snap.LastError = nil
		snap.ConsecutiveFailures = 0
	case errors.Is(err, rickmorty.ErrNotFound):
		snap.NotFound = true
		snap.LastError = nil
		snap.ConsecutiveFailures = 0
	default:
		snap.LastError = err
		snap.ConsecutiveFailures++
	}
	return true
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Characters = slices.Clone(s.snapshot.Characters)
	return snap
}
