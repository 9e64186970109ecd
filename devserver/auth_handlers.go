package devserver

import (
	"net/http"

	"github.com/gitpulse/gitpulse-go/auth"
	"github.com/gitpulse/gitpulse-go/session"
)

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user": map[string]any{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  string(user.Role),
		},
	})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "Invalid request body"})
		return
	}

	role, err := session.ParseRole(body.Role)
	if err != nil {
		writeJSON(w, http.StatusOK, map[string]any{"success": false, "message": "Unknown role"})
		return
	}
	if len(body.Password) < auth.MinPasswordLength {
		writeJSON(w, http.StatusOK, map[string]any{"success": false, "message": "Password must be at least 6 characters"})
		return
	}

	// Registration never opens a session; the user logs in separately.
	if _, err := s.users.Create(body.Name, body.Email, body.Password, role, ""); err != nil {
		s.log.Debug().Err(err).Str("email", body.Email).Msg("registration rejected")
		writeJSON(w, http.StatusOK, map[string]any{"success": false, "message": "Email already registered"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Account created, please log in"})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "Invalid request body"})
		return
	}

	user, err := s.users.Authenticate(body.Email, body.Password)
	if err != nil {
		writeJSON(w, http.StatusOK, map[string]any{"success": false, "message": "Invalid email or password"})
		return
	}

	s.openSession(w, user.ID)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.closeSession(w, r)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// handleGithubRedirect simulates the GitHub OAuth round trip in one step:
// it issues a signup token for a fixed demo GitHub account and redirects to
// the profile completion view with the token in the query string.
func (s *Server) handleGithubRedirect(w http.ResponseWriter, r *http.Request) {
	token, err := issueSignupToken(s.tokenSecret, "octo-dev", "Octo Developer")
	if err != nil {
		s.log.Error().Err(err).Msg("failed to issue signup token")
		writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "message": "Failed to start GitHub signup"})
		return
	}

	http.Redirect(w, r, s.completeProfileURL+"?token="+token, http.StatusFound)
}

func (s *Server) handleCompleteSignup(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Token    string `json:"token"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "Invalid request body"})
		return
	}

	githubLogin, name, err := verifySignupToken(s.tokenSecret, body.Token)
	if err != nil {
		writeJSON(w, http.StatusOK, map[string]any{"success": false, "message": "Invalid or expired signup token"})
		return
	}

	role, err := session.ParseRole(body.Role)
	if err != nil {
		writeJSON(w, http.StatusOK, map[string]any{"success": false, "message": "Unknown role"})
		return
	}
	if len(body.Password) < auth.MinPasswordLength {
		writeJSON(w, http.StatusOK, map[string]any{"success": false, "message": "Password must be at least 6 characters"})
		return
	}

	email := githubLogin + "@users.gitpulse.dev"
	user, err := s.users.Create(name, email, body.Password, role, githubLogin)
	if err != nil {
		writeJSON(w, http.StatusOK, map[string]any{"success": false, "message": "Account already completed"})
		return
	}

	s.openSession(w, user.ID)
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "role": string(role)})
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "Unauthorized"})
		return
	}

	var body struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "Invalid request body"})
		return
	}
	if body.Name == "" {
		writeJSON(w, http.StatusOK, map[string]any{"success": false, "message": "Name is required"})
		return
	}

	if err := s.users.UpdateProfile(user.ID, body.Name, body.Email); err != nil {
		writeJSON(w, http.StatusOK, map[string]any{"success": false, "message": "Email already registered"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (s *Server) handleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "Unauthorized"})
		return
	}

	var body struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "Invalid request body"})
		return
	}
	if len(body.NewPassword) < auth.MinPasswordLength {
		writeJSON(w, http.StatusOK, map[string]any{"success": false, "message": "Password must be at least 6 characters"})
		return
	}

	if err := s.users.UpdatePassword(user.ID, body.CurrentPassword, body.NewPassword); err != nil {
		writeJSON(w, http.StatusOK, map[string]any{"success": false, "message": "Current password is incorrect"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
