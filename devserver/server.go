// Package devserver is an in-process implementation of the GitPulse backend
// contract, backed by fixture data and an in-memory user store. It exists so
// the client can be developed and tested end to end without the real
// backend, which is also how the original dashboard ran day to day.
package devserver

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gitpulse/gitpulse-go/session"
)

const sessionCookie = "gitpulse_session"

// Options configures a Server.
type Options struct {
	// CompleteProfileURL is where the simulated GitHub handoff redirects.
	CompleteProfileURL string
	// SignupTokenSecret signs the handoff's signup tokens.
	SignupTokenSecret string
	// Logger receives request logs.
	Logger zerolog.Logger
	// SeedUsers installs the default demo accounts.
	SeedUsers bool
}

// Server implements the backend HTTP contract under /api.
type Server struct {
	log                zerolog.Logger
	users              *UserRepo
	completeProfileURL string
	tokenSecret        []byte
	router             chi.Router

	sessionsMu sync.Mutex
	sessions   map[string]string // session ID -> user ID
}

// New builds a ready-to-serve Server.
func New(opts Options) (*Server, error) {
	s := &Server{
		log:                opts.Logger,
		users:              NewUserRepo(),
		completeProfileURL: opts.CompleteProfileURL,
		tokenSecret:        []byte(opts.SignupTokenSecret),
		sessions:           make(map[string]string),
	}
	if opts.SeedUsers {
		if err := s.users.Seed(); err != nil {
			return nil, err
		}
	}
	s.initRoutes()
	return s, nil
}

// Users exposes the account store, primarily for tests.
func (s *Server) Users() *UserRepo {
	return s.users
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) initRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/auth/me", s.handleMe)
		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/login", s.handleLogin)
		r.Post("/auth/logout", s.handleLogout)
		r.Get("/auth/github/redirect", s.handleGithubRedirect)
		r.Post("/auth/complete-signup", s.handleCompleteSignup)
		r.Put("/auth/update-profile", s.handleUpdateProfile)
		r.Put("/auth/update-password", s.handleUpdatePassword)

		r.Get("/manager/team", s.handleTeam)
		r.Get("/manager/analytics", s.handleAnalytics)
	})

	s.router = r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.log.Debug().Str("method", r.Method).Str("path", r.URL.Path).Msg("request")
		next.ServeHTTP(w, r)
	})
}

// Session handling.

func (s *Server) openSession(w http.ResponseWriter, userID string) {
	id := uuid.New().String()

	s.sessionsMu.Lock()
	s.sessions[id] = userID
	s.sessionsMu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) closeSession(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		s.sessionsMu.Lock()
		delete(s.sessions, cookie.Value)
		s.sessionsMu.Unlock()
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// currentUser resolves the session cookie to a user.
func (s *Server) currentUser(r *http.Request) (*User, bool) {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil {
		return nil, false
	}

	s.sessionsMu.Lock()
	userID, ok := s.sessions[cookie.Value]
	s.sessionsMu.Unlock()
	if !ok {
		return nil, false
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, false
	}
	return user, true
}

// requireRole resolves the session and enforces a role, writing the error
// response itself when the check fails.
func (s *Server) requireRole(w http.ResponseWriter, r *http.Request, role session.Role) (*User, bool) {
	user, ok := s.currentUser(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "Unauthorized"})
		return nil, false
	}
	if user.Role != role {
		writeJSON(w, http.StatusForbidden, map[string]any{"success": false, "message": "Forbidden"})
		return nil, false
	}
	return user, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
