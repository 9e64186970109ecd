// Package analytics holds the dashboard analytics snapshot.
package analytics

import "sync"

// TrendPoint is one day of commit activity.
type TrendPoint struct {
	Date    string `json:"date"`
	Commits int    `json:"commits"`
}

// LanguageShare is one language's slice of the distribution chart.
type LanguageShare struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// DayActivity is one weekday's commits and pull requests.
type DayActivity struct {
	Day     string `json:"day"`
	Commits int    `json:"commits"`
	PRs     int    `json:"prs"`
}

// Snapshot is the whole analytics aggregate. It has no incremental update
// path; each load replaces it entirely.
type Snapshot struct {
	TotalCommits         int             `json:"totalCommits"`
	TotalRepos           int             `json:"totalRepos"`
	TotalStars           int             `json:"totalStars"`
	TotalPRs             int             `json:"totalPRs"`
	CommitTrend          []TrendPoint    `json:"commitTrend"`
	LanguageDistribution []LanguageShare `json:"languageDistribution"`
	WeeklyActivity       []DayActivity   `json:"weeklyActivity"`
}

// Store holds at most one Snapshot plus a loading flag.
type Store struct {
	mu      sync.Mutex
	data    *Snapshot
	loading bool
}

// NewStore returns an empty, non-loading store.
func NewStore() *Store {
	return &Store{}
}

// Set replaces the snapshot wholesale.
func (s *Store) Set(snapshot Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := snapshot
	s.data = &snap
}

// Clear drops the snapshot.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
}

// Data returns a copy of the current snapshot, if one has been loaded.
func (s *Store) Data() (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		return Snapshot{}, false
	}
	return *s.data, true
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
