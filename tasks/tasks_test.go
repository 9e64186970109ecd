package tasks_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitpulse/gitpulse-go/tasks"
)

func boardFixture() []tasks.Task {
	return []tasks.Task{
		{ID: "t1", Title: "First", Status: tasks.StatusTodo, Priority: tasks.PriorityLow, Tags: []string{"a"}},
		{ID: "t2", Title: "Second", Status: tasks.StatusInProgress, Priority: tasks.PriorityHigh, Tags: []string{"b"}},
		{ID: "t3", Title: "Third", Status: tasks.StatusReview, Priority: tasks.PriorityMedium},
	}
}

func TestStore_ReplaceAll(t *testing.T) {
	s := tasks.NewStore()
	fixture := boardFixture()

	s.ReplaceAll(fixture)
	require.Equal(t, fixture, s.All())

	t.Run("idempotent", func(t *testing.T) {
		s.ReplaceAll(fixture)
		require.Equal(t, fixture, s.All())
	})

	t.Run("wholly replaces previous contents", func(t *testing.T) {
		s.ReplaceAll([]tasks.Task{{ID: "only", Title: "Only"}})
		all := s.All()
		require.Len(t, all, 1)
		require.Equal(t, "only", all[0].ID)
	})

	t.Run("detached from caller slice", func(t *testing.T) {
		input := boardFixture()
		s.ReplaceAll(input)
		input[0].Title = "mutated"
		require.Equal(t, "First", s.All()[0].Title)
	})
}

func TestStore_UpsertOne(t *testing.T) {
	t.Run("existing id replaces in place, order preserved", func(t *testing.T) {
		s := tasks.NewStore()
		s.ReplaceAll(boardFixture())

		s.UpsertOne(tasks.Task{ID: "t2", Title: "Second v2", Status: tasks.StatusDone})

		all := s.All()
		require.Equal(t, []string{"t1", "t2", "t3"}, ids(all))
		require.Equal(t, "Second v2", all[1].Title)
		require.Equal(t, tasks.StatusDone, all[1].Status)
	})

	t.Run("new id appends", func(t *testing.T) {
		s := tasks.NewStore()
		s.ReplaceAll(boardFixture())

		s.UpsertOne(tasks.Task{ID: "t4", Title: "Fourth"})

		require.Equal(t, []string{"t1", "t2", "t3", "t4"}, ids(s.All()))
	})
}

func TestStore_RemoveOne(t *testing.T) {
	s := tasks.NewStore()
	s.ReplaceAll(boardFixture())

	s.RemoveOne("t2")
	require.Equal(t, []string{"t1", "t3"}, ids(s.All()))

	t.Run("absent id is a no-op", func(t *testing.T) {
		before := s.All()
		s.RemoveOne("missing-id")
		require.Equal(t, before, s.All())
	})
}

func TestStore_SetStatus(t *testing.T) {
	t.Run("moves the matching task", func(t *testing.T) {
		s := tasks.NewStore()
		s.ReplaceAll(boardFixture())

		s.SetStatus("t1", tasks.StatusDone)

		got, ok := s.Get("t1")
		require.True(t, ok)
		require.Equal(t, tasks.StatusDone, got.Status)
	})

	t.Run("missing id leaves the collection unchanged", func(t *testing.T) {
		s := tasks.NewStore()
		s.ReplaceAll(boardFixture())
		before := s.All()

		s.SetStatus("missing-id", tasks.StatusDone)

		require.Equal(t, before, s.All())
	})
}

func TestStore_Loading(t *testing.T) {
	s := tasks.NewStore()
	require.False(t, s.Loading())

	s.SetLoading(true)
	require.True(t, s.Loading())

	s.SetLoading(false)
	require.False(t, s.Loading())
}

func TestStore_Get(t *testing.T) {
	s := tasks.NewStore()
	s.ReplaceAll(boardFixture())

	got, ok := s.Get("t3")
	require.True(t, ok)
	require.Equal(t, "Third", got.Title)

	_, ok = s.Get("nope")
	require.False(t, ok)
}

func ids(ts []tasks.Task) []string {
	out := make([]string, 0, len(ts))
	for _, task := range ts {
		out = append(out, task.ID)
	}
	return out
}
