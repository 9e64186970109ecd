// Package team holds the normalized team roster state.
package team

import "sync"

// PresenceStatus is a member's current availability.
type PresenceStatus string

const (
	StatusActive  PresenceStatus = "active"
	StatusAway    PresenceStatus = "away"
	StatusOffline PresenceStatus = "offline"
)

// Member is one roster entry. Role here is the member's job title
// (developer, designer, manager), distinct from the session role used for
// access decisions.
type Member struct {
	ID         int            `json:"id"`
	Name       string         `json:"name"`
	Email      string         `json:"email"`
	Role       string         `json:"role"`
	Avatar     string         `json:"avatar"`
	Commits    int            `json:"commits"`
	Repos      int            `json:"repos"`
	Stars      int            `json:"stars"`
	JoinedDate string         `json:"joinedDate"`
	Status     PresenceStatus `json:"status"`
}

// Store is the team slice: an ordered collection keyed by member ID, plus a
// loading flag.
type Store struct {
	mu      sync.Mutex
	members []Member
	loading bool
}

// NewStore returns an empty, non-loading store.
func NewStore() *Store {
	return &Store{}
}

// ReplaceAll swaps the whole roster for the given records.
func (s *Store) ReplaceAll(records []Member) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.members = append([]Member(nil), records...)
}

// UpsertOne updates the member with a matching ID in place, preserving the
// position of every other record. An unknown ID appends.
func (s *Store) UpsertOne(record Member) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.members {
		if s.members[i].ID == record.ID {
			s.members[i] = record
			return
		}
	}
	s.members = append(s.members, record)
}

// RemoveOne deletes the member with the given ID. An absent ID is a no-op.
func (s *Store) RemoveOne(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.members {
		if s.members[i].ID == id {
			s.members = append(s.members[:i], s.members[i+1:]...)
			return
		}
	}
}

// SetLoading sets the refresh-in-progress flag.
func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = loading
}

// Loading reports whether a refresh is in progress.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// All returns a copy of the roster in insertion order.
func (s *Store) All() []Member {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Member(nil), s.members...)
}

// Get returns the member with the given ID.
func (s *Store) Get(id int) (Member, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.members {
		if s.members[i].ID == id {
			return s.members[i], true
		}
	}
	return Member{}, false
}
