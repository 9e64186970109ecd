package devserver

import (
	"net/http"

	"github.com/gitpulse/gitpulse-go/fixtures"
	"github.com/gitpulse/gitpulse-go/session"
)

func (s *Server) handleTeam(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireRole(w, r, session.RoleManager); !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"team":    fixtures.Team(),
	})
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireRole(w, r, session.RoleManager); !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"analytics": fixtures.Analytics(),
	})
}
