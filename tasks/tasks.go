// Package tasks holds the normalized task board state.
package tasks

import "sync"

// Status is a task's position on the board.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusReview     Status = "review"
	StatusDone       Status = "done"
)

// Priority is a task's urgency bucket.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Task is one board entry. AssignedTo/AssignedToID reference a team member
// by name and id without any enforced integrity; views match them ad hoc.
type Task struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Status       Status   `json:"status"`
	Priority     Priority `json:"priority"`
	AssignedTo   string   `json:"assignedTo"`
	AssignedToID int      `json:"assignedToId"`
	DueDate      string   `json:"dueDate"`
	CreatedAt    string   `json:"createdAt"`
	Tags         []string `json:"tags"`
}

// Store is the task slice: an ordered collection keyed by task ID, plus a
// loading flag. Stores do no I/O; page-level loaders populate them.
type Store struct {
	mu      sync.Mutex
	tasks   []Task
	loading bool
}

// NewStore returns an empty, non-loading store.
func NewStore() *Store {
	return &Store{}
}

// ReplaceAll swaps the whole collection for the given records. There is no
// partial merge path; a load always replaces.
func (s *Store) ReplaceAll(records []Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append([]Task(nil), records...)
}

// UpsertOne updates the record with a matching ID in place, preserving the
// position of every other record. An unknown ID appends.
func (s *Store) UpsertOne(record Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == record.ID {
			s.tasks[i] = record
			return
		}
	}
	s.tasks = append(s.tasks, record)
}

// RemoveOne deletes the record with the given ID. An absent ID is a no-op.
func (s *Store) RemoveOne(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return
		}
	}
}

// SetStatus moves the task with the given ID to a new status. An absent ID
// is a no-op, not an error.
func (s *Store) SetStatus(id string, status Status) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Status = status
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

// All returns a copy of the collection in insertion order.
func (s *Store) All() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Task(nil), s.tasks...)
}

// Get returns the task with the given ID.
func (s *Store) Get(id string) (Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return s.tasks[i], true
		}
	}
	return Task{}, false
}
