package guard_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitpulse/gitpulse-go/guard"
	"github.com/gitpulse/gitpulse-go/session"
)

func snapshotFor(role session.Role) session.Snapshot {
	return session.Snapshot{
		Identity: &session.Identity{ID: "user-1", Name: "Test User", Role: role},
		Role:     role,
	}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name     string
		snap     session.Snapshot
		required []session.Role
		want     guard.Decision
	}{
		{
			name:     "initializing always pends, even with identity and role match",
			snap:     session.Snapshot{Initializing: true, Identity: &session.Identity{Role: session.RoleManager}, Role: session.RoleManager},
			required: []session.Role{session.RoleManager},
			want:     guard.Pending,
		},
		{
			name:     "initializing pends with no identity",
			snap:     session.Snapshot{Initializing: true},
			required: nil,
			want:     guard.Pending,
		},
		{
			name:     "no identity redirects to login",
			snap:     session.Snapshot{},
			required: []session.Role{session.RoleManager},
			want:     guard.RedirectLogin,
		},
		{
			name:     "wrong role redirects home",
			snap:     snapshotFor(session.RoleEmployee),
			required: []session.Role{session.RoleManager},
			want:     guard.RedirectHome,
		},
		{
			name:     "matching role allows",
			snap:     snapshotFor(session.RoleManager),
			required: []session.Role{session.RoleManager},
			want:     guard.Allow,
		},
		{
			name:     "no role restriction allows any identity",
			snap:     snapshotFor(session.RoleEmployee),
			required: nil,
			want:     guard.Allow,
		},
		{
			name:     "role in multi-role set allows",
			snap:     snapshotFor(session.RoleEmployee),
			required: []session.Role{session.RoleManager, session.RoleEmployee},
			want:     guard.Allow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, guard.Decide(tt.snap, tt.required...))
		})
	}
}

func TestDecide_IsPure(t *testing.T) {
	snap := snapshotFor(session.RoleManager)

	first := guard.Decide(snap, session.RoleManager)
	second := guard.Decide(snap, session.RoleManager)

	require.Equal(t, first, second)
	require.Equal(t, session.RoleManager, snap.Role, "Decide must not mutate its input")
}

func TestDecision_String(t *testing.T) {
	require.Equal(t, "pending", guard.Pending.String())
	require.Equal(t, "allow", guard.Allow.String())
	require.Equal(t, "redirect-login", guard.RedirectLogin.String())
	require.Equal(t, "redirect-home", guard.RedirectHome.String())
}
