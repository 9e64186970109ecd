package session_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitpulse/gitpulse-go/session"
)

func managerIdentity() session.Identity {
	return session.Identity{
		ID:    "user-1",
		Name:  "Priya Nair",
		Email: "priya@example.com",
		Role:  session.RoleManager,
	}
}

func TestParseRole(t *testing.T) {
	t.Run("normalizes case and whitespace", func(t *testing.T) {
		role, err := session.ParseRole("  MANAGER ")
		require.NoError(t, err)
		require.Equal(t, session.RoleManager, role)

		role, err = session.ParseRole("Employee")
		require.NoError(t, err)
		require.Equal(t, session.RoleEmployee, role)
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		_, err := session.ParseRole("superuser")
		require.Error(t, err)
		require.Contains(t, err.Error(), "unknown role")
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, err := session.ParseRole("")
		require.Error(t, err)
	})
}

func TestStore_InitialState(t *testing.T) {
	s := session.NewStore()
	snap := s.Snapshot()

	require.True(t, snap.Initializing)
	require.Nil(t, snap.Identity)
	require.Empty(t, snap.Role)
	require.False(t, snap.Authenticated())
}

func TestStore_SetAuthenticated(t *testing.T) {
	s := session.NewStore()
	s.SetAuthenticated(managerIdentity())

	snap := s.Snapshot()
	require.NotNil(t, snap.Identity)
	require.Equal(t, session.RoleManager, snap.Role)
	require.True(t, snap.Authenticated())

	// Idempotent: setting the same identity again keeps the same state.
	s.SetAuthenticated(managerIdentity())
	require.Equal(t, snap.Identity, s.Snapshot().Identity)
}

func TestStore_RolePresentIffIdentityPresent(t *testing.T) {
	s := session.NewStore()

	s.SetAuthenticated(managerIdentity())
	snap := s.Snapshot()
	require.NotNil(t, snap.Identity)
	require.NotEmpty(t, snap.Role)

	s.Clear()
	snap = s.Snapshot()
	require.Nil(t, snap.Identity)
	require.Empty(t, snap.Role)
}

func TestStore_FinishInitializingIsOneWay(t *testing.T) {
	s := session.NewStore()
	s.FinishInitializing()
	require.False(t, s.Snapshot().Initializing)

	// Nothing re-enters initialization, not even repeated calls or new logins.
	s.FinishInitializing()
	s.SetAuthenticated(managerIdentity())
	require.False(t, s.Snapshot().Initializing)
}

func TestStore_SnapshotIsACopy(t *testing.T) {
	s := session.NewStore()
	s.SetAuthenticated(managerIdentity())

	snap := s.Snapshot()
	snap.Identity.Name = "mutated"

	require.Equal(t, "Priya Nair", s.Snapshot().Identity.Name)
}

func TestStore_GenerationGuard(t *testing.T) {
	t.Run("stale set is discarded after clear", func(t *testing.T) {
		s := session.NewStore()
		gen := s.Generation()

		// A logout lands while the identity fetch is still in flight.
		s.Clear()

		applied := s.CompareAndSetAuthenticated(gen, managerIdentity())
		require.False(t, applied)
		require.Nil(t, s.Snapshot().Identity)
	})

	t.Run("stale clear is discarded after login", func(t *testing.T) {
		s := session.NewStore()
		gen := s.Generation()

		s.SetAuthenticated(managerIdentity())

		applied := s.CompareAndClear(gen)
		require.False(t, applied)
		require.NotNil(t, s.Snapshot().Identity)
	})

	t.Run("current generation applies", func(t *testing.T) {
		s := session.NewStore()

		require.True(t, s.CompareAndSetAuthenticated(s.Generation(), managerIdentity()))
		require.NotNil(t, s.Snapshot().Identity)

		require.True(t, s.CompareAndClear(s.Generation()))
		require.Nil(t, s.Snapshot().Identity)
	})
}
