// Package auth coordinates the client session lifecycle: startup bootstrap,
// login, registration, the GitHub signup handoff, profile mutation, and
// logout. The orchestrator is the sole writer of the session store; every
// operation returns either nil or a *Failure carrying a display message.
package auth

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/gitpulse/gitpulse-go/gateway"
	"github.com/gitpulse/gitpulse-go/session"
)

const (
	routeMe             = "/auth/me"
	routeRegister       = "/auth/register"
	routeLogin          = "/auth/login"
	routeLogout         = "/auth/logout"
	routeCompleteSignup = "/auth/complete-signup"
	routeUpdateProfile  = "/auth/update-profile"
	routeUpdatePassword = "/auth/update-password"
	routeGithubRedirect = "/auth/github/redirect"
)

// Orchestrator drives all session state transitions through the gateway.
type Orchestrator struct {
	gw        *gateway.Client
	store     *session.Store
	validator *Validator
	log       zerolog.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets the diagnostic logger.
func WithLogger(log zerolog.Logger) Option {
	return func(o *Orchestrator) { o.log = log }
}

// NewOrchestrator creates an Orchestrator over the given transport and
// session store.
func NewOrchestrator(gw *gateway.Client, store *session.Store, options ...Option) (*Orchestrator, error) {
	if gw == nil {
		return nil, errors.New("[NewOrchestrator] gateway client is required")
	}
	if store == nil {
		return nil, errors.New("[NewOrchestrator] session store is required")
	}

	o := &Orchestrator{
		gw:        gw,
		store:     store,
		validator: NewValidator(),
		log:       zerolog.Nop(),
	}
	for _, opt := range options {
		opt(o)
	}
	return o, nil
}

// Wire shapes. Success is a pointer so a response that omits the field is
// distinguishable from success=false and classified as malformed.

type envelope struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
}

type identityPayload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type meResponse struct {
	Success *bool            `json:"success"`
	User    *identityPayload `json:"user"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type completeSignupRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type completeSignupResponse struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
	Role    string `json:"role"`
}

type profileUpdateRequest struct {
	Name  string  `json:"name"`
	Email *string `json:"email,omitempty"`
}

type passwordUpdateRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// Bootstrap runs the one-time startup identity fetch. Any outcome, including
// an unreachable backend, leaves the session in a settled state: identity on
// success, anonymous otherwise, and initializing cleared exactly once.
func (o *Orchestrator) Bootstrap(ctx context.Context) {
	defer o.store.FinishInitializing()

	if err := o.refreshIdentity(ctx); err != nil {
		o.log.Debug().Err(err).Msg("bootstrap resolved anonymous")
	}
}

// Login posts credentials and, on success, re-fetches the identity from
// /auth/me. The login response body is never trusted as an identity source.
func (o *Orchestrator) Login(ctx context.Context, email, password string) error {
	if err := o.validator.ValidateCredentials(email, password); err != nil {
		return invalidInput(err)
	}

	resp, err := o.gw.Post(ctx, routeLogin, credentialsRequest{Email: email, Password: password})
	if err != nil {
		return networkFailure("Login failed")
	}
	if fail := checkEnvelope(resp, "Login failed"); fail != nil {
		return fail
	}

	if err := o.refreshIdentity(ctx); err != nil {
		o.log.Warn().Err(err).Msg("login accepted but identity fetch failed")
		return malformed("Login failed")
	}
	return nil
}

// Register posts a new account. Registration never establishes a session;
// the server requires a separate login. The role travels upper-cased on the
// wire.
func (o *Orchestrator) Register(ctx context.Context, email, password string, role session.Role, name string) error {
	if err := o.validator.ValidateRegistration(name, email, password); err != nil {
		return invalidInput(err)
	}

	resp, err := o.gw.Post(ctx, routeRegister, registerRequest{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     strings.ToUpper(string(role)),
	})
	if err != nil {
		return networkFailure("Signup failed")
	}
	if fail := checkEnvelope(resp, "Signup failed"); fail != nil {
		return fail
	}
	return nil
}

// GithubHandoffURL returns the address the caller should send the whole page
// to for the GitHub OAuth handoff. The return trip lands on the profile
// completion view with a signup token in the query string; no session state
// changes here.
func (o *Orchestrator) GithubHandoffURL() string {
	return o.gw.BaseURL() + routeGithubRedirect
}

// CompleteProfile exchanges a one-time signup token for a full account.
// Password and confirmation are checked locally before any network call.
// On success it returns the server-declared role, which the caller uses to
// pick a landing page.
func (o *Orchestrator) CompleteProfile(ctx context.Context, token, password, confirm string, role session.Role) (session.Role, error) {
	if err := o.validator.ValidateProfileCompletion(token, password, confirm); err != nil {
		return "", invalidInput(err)
	}

	resp, err := o.gw.Post(ctx, routeCompleteSignup, completeSignupRequest{
		Token:    token,
		Password: password,
		Role:     string(role),
	})
	if err != nil {
		return "", networkFailure("Failed to complete profile")
	}

	var body completeSignupResponse
	if err := json.Unmarshal(resp.Body, &body); err != nil || body.Success == nil {
		return "", malformed("Failed to complete profile")
	}
	if !*body.Success {
		return "", serverRejected(body.Message, "Failed to complete profile")
	}

	declaredRole, err := session.ParseRole(body.Role)
	if err != nil {
		o.log.Warn().Str("role", body.Role).Msg("complete-signup returned unknown role")
		return "", malformed("Failed to complete profile")
	}
	return declaredRole, nil
}

// UpdateProfile mutates name and optionally email, then re-fetches the
// identity. A failed re-fetch after an accepted mutation still reports
// success and leaves the session stale; the next bootstrap reconciles it.
func (o *Orchestrator) UpdateProfile(ctx context.Context, name, email string) error {
	if err := o.validator.ValidateProfileUpdate(name, email); err != nil {
		return invalidInput(err)
	}

	body := profileUpdateRequest{Name: name}
	if email != "" {
		body.Email = &email
	}

	resp, err := o.gw.Put(ctx, routeUpdateProfile, body)
	if err != nil {
		return networkFailure("Profile update failed")
	}
	if fail := checkEnvelope(resp, "Profile update failed"); fail != nil {
		return fail
	}

	if err := o.refreshIdentity(ctx); err != nil {
		o.log.Warn().Err(err).Msg("profile updated but session refresh failed, session is stale")
	}
	return nil
}

// UpdatePassword changes the password. It never touches the session store.
func (o *Orchestrator) UpdatePassword(ctx context.Context, current, updated string) error {
	if err := o.validator.ValidatePasswordChange(current, updated); err != nil {
		return invalidInput(err)
	}

	resp, err := o.gw.Put(ctx, routeUpdatePassword, passwordUpdateRequest{
		CurrentPassword: current,
		NewPassword:     updated,
	})
	if err != nil {
		return networkFailure("Password update failed")
	}
	if fail := checkEnvelope(resp, "Password update failed"); fail != nil {
		return fail
	}
	return nil
}

// Logout clears the session optimistically before the server call: after an
// explicit user logout the client must never keep claiming authentication,
// even when the network is down. A failed server call leaves a dangling
// server session and is reported so the UI can surface it.
func (o *Orchestrator) Logout(ctx context.Context) error {
	o.store.Clear()

	resp, err := o.gw.Post(ctx, routeLogout, nil)
	if err != nil {
		o.log.Warn().Err(err).Msg("logout request failed, local session already cleared")
		return networkFailure("Logout failed on the server, local session cleared")
	}
	if fail := checkEnvelope(resp, "Logout failed"); fail != nil {
		return fail
	}
	return nil
}

// refreshIdentity fetches /auth/me and reconciles the session store. The
// generation captured before the request fences the write: if a logout or a
// later login lands while this fetch is in flight, the stale completion is
// discarded.
func (o *Orchestrator) refreshIdentity(ctx context.Context) error {
	gen := o.store.Generation()

	resp, err := o.gw.Get(ctx, routeMe)
	if err != nil {
		o.store.CompareAndClear(gen)
		return errors.Wrap(err, "[Orchestrator.refreshIdentity] fetch")
	}

	var body meResponse
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		o.store.CompareAndClear(gen)
		return errors.Wrap(err, "[Orchestrator.refreshIdentity] decode")
	}
	if body.Success == nil || !*body.Success || body.User == nil {
		o.store.CompareAndClear(gen)
		return errors.New("[Orchestrator.refreshIdentity] no authenticated user")
	}

	role, err := session.ParseRole(body.User.Role)
	if err != nil {
		o.store.CompareAndClear(gen)
		return errors.Wrap(err, "[Orchestrator.refreshIdentity] role")
	}

	if !o.store.CompareAndSetAuthenticated(gen, session.Identity{
		ID:    body.User.ID,
		Name:  body.User.Name,
		Email: body.User.Email,
		Role:  role,
	}) {
		o.log.Debug().Msg("discarded stale identity fetch")
	}
	return nil
}

// checkEnvelope classifies a generic {success, message} response.
func checkEnvelope(resp *gateway.Response, fallback string) *Failure {
	var env envelope
	if err := json.Unmarshal(resp.Body, &env); err != nil || env.Success == nil {
		return malformed(fallback)
	}
	if !*env.Success {
		return serverRejected(env.Message, fallback)
	}
	return nil
}
