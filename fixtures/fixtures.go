// Package fixtures provides the demo data set served by the development
// server and used as a fallback where the backend has no endpoint yet.
// Each function returns a fresh copy; callers may mutate freely.
package fixtures

import (
	"github.com/gitpulse/gitpulse-go/analytics"
	"github.com/gitpulse/gitpulse-go/tasks"
	"github.com/gitpulse/gitpulse-go/team"
)

// Team returns the demo roster.
func Team() []team.Member {
	return []team.Member{
		{
			ID: 1, Name: "Vamshi Krishna", Email: "vamshi@gitpulse.dev", Role: "developer",
			Avatar:  "https://api.dicebear.com/7.x/avataaars/svg?seed=Vamshi",
			Commits: 245, Repos: 12, Stars: 38, JoinedDate: "2023-03-14", Status: team.StatusActive,
		},
		{
			ID: 2, Name: "Aarav Sharma", Email: "aarav@gitpulse.dev", Role: "developer",
			Avatar:  "https://api.dicebear.com/7.x/avataaars/svg?seed=Aarav",
			Commits: 180, Repos: 10, Stars: 25, JoinedDate: "2023-06-02", Status: team.StatusActive,
		},
		{
			ID: 3, Name: "Diya Patel", Email: "diya@gitpulse.dev", Role: "developer",
			Avatar:  "https://api.dicebear.com/7.x/avataaars/svg?seed=Diya",
			Commits: 210, Repos: 15, Stars: 42, JoinedDate: "2022-11-20", Status: team.StatusAway,
		},
		{
			ID: 4, Name: "Rohan Mehta", Email: "rohan@gitpulse.dev", Role: "developer",
			Avatar:  "https://api.dicebear.com/7.x/avataaars/svg?seed=Rohan",
			Commits: 195, Repos: 11, Stars: 31, JoinedDate: "2023-01-09", Status: team.StatusOffline,
		},
		{
			ID: 5, Name: "Sneha Reddy", Email: "sneha@gitpulse.dev", Role: "designer",
			Avatar:  "https://api.dicebear.com/7.x/avataaars/svg?seed=Sneha",
			Commits: 96, Repos: 6, Stars: 18, JoinedDate: "2024-02-27", Status: team.StatusActive,
		},
	}
}

// Tasks returns the demo task board.
func Tasks() []tasks.Task {
	return []tasks.Task{
		{
			ID: "task-1", Title: "Implement OAuth callback view",
			Description: "Handle the GitHub return trip and token extraction",
			Status:      tasks.StatusInProgress, Priority: tasks.PriorityHigh,
			AssignedTo: "Vamshi Krishna", AssignedToID: 1,
			DueDate: "2025-11-05", CreatedAt: "2025-10-20",
			Tags: []string{"auth", "frontend"},
		},
		{
			ID: "task-2", Title: "Commit trend aggregation",
			Description: "Roll daily commits into the fourteen day trend series",
			Status:      tasks.StatusTodo, Priority: tasks.PriorityMedium,
			AssignedTo: "Diya Patel", AssignedToID: 3,
			DueDate: "2025-11-12", CreatedAt: "2025-10-22",
			Tags: []string{"analytics"},
		},
		{
			ID: "task-3", Title: "Team table pagination",
			Description: "Paginate the roster once teams exceed twenty members",
			Status:      tasks.StatusReview, Priority: tasks.PriorityLow,
			AssignedTo: "Aarav Sharma", AssignedToID: 2,
			DueDate: "2025-11-01", CreatedAt: "2025-10-15",
			Tags: []string{"frontend", "ux"},
		},
		{
			ID: "task-4", Title: "Fix stale session after profile edit",
			Description: "Identity fetch races the logout action on slow networks",
			Status:      tasks.StatusDone, Priority: tasks.PriorityUrgent,
			AssignedTo: "Rohan Mehta", AssignedToID: 4,
			DueDate: "2025-10-28", CreatedAt: "2025-10-10",
			Tags: []string{"auth", "bug"},
		},
		{
			ID: "task-5", Title: "Language chart empty state",
			Description: "Show a placeholder when no language data is available",
			Status:      tasks.StatusTodo, Priority: tasks.PriorityLow,
			AssignedTo: "Sneha Reddy", AssignedToID: 5,
			DueDate: "2025-11-18", CreatedAt: "2025-10-25",
			Tags: []string{"design"},
		},
	}
}

// Analytics returns the demo analytics snapshot.
func Analytics() analytics.Snapshot {
	return analytics.Snapshot{
		TotalCommits: 926,
		TotalRepos:   54,
		TotalStars:   154,
		TotalPRs:     87,
		CommitTrend: []analytics.TrendPoint{
			{Date: "2025-10-15", Commits: 18},
			{Date: "2025-10-16", Commits: 33},
			{Date: "2025-10-17", Commits: 29},
			{Date: "2025-10-18", Commits: 20},
			{Date: "2025-10-19", Commits: 39},
			{Date: "2025-10-20", Commits: 22},
			{Date: "2025-10-21", Commits: 29},
			{Date: "2025-10-22", Commits: 20},
			{Date: "2025-10-23", Commits: 27},
			{Date: "2025-10-24", Commits: 31},
			{Date: "2025-10-25", Commits: 28},
			{Date: "2025-10-26", Commits: 23},
			{Date: "2025-10-27", Commits: 31},
			{Date: "2025-10-28", Commits: 34},
		},
		LanguageDistribution: []analytics.LanguageShare{
			{Name: "TypeScript", Value: 34},
			{Name: "JavaScript", Value: 22},
			{Name: "Python", Value: 18},
			{Name: "Go", Value: 16},
			{Name: "CSS", Value: 10},
		},
		WeeklyActivity: []analytics.DayActivity{
			{Day: "Mon", Commits: 31, PRs: 4},
			{Day: "Tue", Commits: 28, PRs: 6},
			{Day: "Wed", Commits: 35, PRs: 5},
			{Day: "Thu", Commits: 24, PRs: 3},
			{Day: "Fri", Commits: 29, PRs: 7},
			{Day: "Sat", Commits: 12, PRs: 1},
			{Day: "Sun", Commits: 8, PRs: 1},
		},
	}
}
