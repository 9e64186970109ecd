package session

import (
	"fmt"
	"strings"
	"sync"
)

// Role is the closed set of dashboard roles. Raw role strings from the
// backend are normalized through ParseRole exactly once, at the auth
// boundary; nothing else in the client handles free-form role values.
type Role string

const (
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// ParseRole normalizes a server-reported role string into a Role.
// Unknown values are rejected rather than propagated.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleManager:
		return RoleManager, nil
	case RoleEmployee:
		return RoleEmployee, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Identity is the authenticated user as reported by the backend.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Snapshot is a read-only copy of the session state at one point in time.
// Role is the zero value whenever Identity is nil.
type Snapshot struct {
	Identity     *Identity
	Role         Role
	Initializing bool
}

// Authenticated reports whether the snapshot carries an identity.
func (s Snapshot) Authenticated() bool {
	return s.Identity != nil
}

// Store holds the current session. It is owned by the composition root and
// injected into consumers; the auth orchestrator is its only writer.
//
// Every successful mutation bumps a monotonic generation counter. Callers
// that mutate the store after an async round trip capture the generation
// before issuing the request and apply the result through the CompareAnd*
// variants, so a completion that raced with a logout or a later login is
// discarded instead of clobbering newer state.
type Store struct {
	mu           sync.Mutex
	identity     *Identity
	initializing bool
	generation   uint64
}

// NewStore returns a store in the initializing, anonymous state.
func NewStore() *Store {
	return &Store{initializing: true}
}

// Snapshot returns a copy of the current session state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{Initializing: s.initializing}
	if s.identity != nil {
		id := *s.identity
		snap.Identity = &id
		snap.Role = id.Role
	}
	return snap
}

// Generation returns the current session generation.
func (s *Store) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// SetAuthenticated installs the given identity. The store performs no
// validation of the identity itself; that happens at the auth boundary.
func (s *Store) SetAuthenticated(identity Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setAuthenticatedLocked(identity)
}

// CompareAndSetAuthenticated installs the identity only if the store's
// generation still matches gen. It reports whether the write was applied.
func (s *Store) CompareAndSetAuthenticated(gen uint64, identity Identity) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation != gen {
		return false
	}
	s.setAuthenticatedLocked(identity)
	return true
}

// Clear resets the store to the anonymous state.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
}

// CompareAndClear clears the store only if the generation still matches gen.
// It reports whether the write was applied.
func (s *Store) CompareAndClear(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation != gen {
		return false
	}
	s.clearLocked()
	return true
}

// FinishInitializing marks the one-time startup fetch as complete. The
// transition happens at most once; later calls are no-ops and nothing ever
// sets the flag back.
func (s *Store) FinishInitializing() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initializing = false
}

func (s *Store) setAuthenticatedLocked(identity Identity) {
	id := identity
	s.identity = &id
	s.generation++
}

func (s *Store) clearLocked() {
	s.identity = nil
	s.generation++
}
