// Package app is the composition root: it wires configuration, transport,
// the session store, the auth orchestrator, and the domain stores, and
// carries the page-level loaders that populate the stores from the backend.
package app

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/gitpulse/gitpulse-go/analytics"
	"github.com/gitpulse/gitpulse-go/auth"
	"github.com/gitpulse/gitpulse-go/fixtures"
	"github.com/gitpulse/gitpulse-go/gateway"
	"github.com/gitpulse/gitpulse-go/internal/config"
	"github.com/gitpulse/gitpulse-go/session"
	"github.com/gitpulse/gitpulse-go/tasks"
	"github.com/gitpulse/gitpulse-go/team"
)

// App owns every state container and the orchestrator that mutates the
// session. Stores are plain fields, injected into whatever consumes them;
// nothing here is a package-level singleton.
type App struct {
	Gateway   *gateway.Client
	Session   *session.Store
	Auth      *auth.Orchestrator
	Team      *team.Store
	Tasks     *tasks.Store
	Analytics *analytics.Store

	log zerolog.Logger
}

// New wires an App from startup configuration.
func New(cfg config.Config, log zerolog.Logger) (*App, error) {
	gw, err := gateway.New(cfg.BaseURL,
		gateway.WithLogger(log),
		gateway.WithDevLogging(cfg.DevLogging),
	)
	if err != nil {
		return nil, errors.Wrap(err, "[app.New] gateway")
	}

	store := session.NewStore()
	orchestrator, err := auth.NewOrchestrator(gw, store, auth.WithLogger(log))
	if err != nil {
		return nil, errors.Wrap(err, "[app.New] orchestrator")
	}

	return &App{
		Gateway:   gw,
		Session:   store,
		Auth:      orchestrator,
		Team:      team.NewStore(),
		Tasks:     tasks.NewStore(),
		Analytics: analytics.NewStore(),
		log:       log,
	}, nil
}

type teamResponse struct {
	Success *bool         `json:"success"`
	Team    []team.Member `json:"team"`
}

type analyticsResponse struct {
	Success   *bool               `json:"success"`
	Analytics *analytics.Snapshot `json:"analytics"`
}

// LoadTeam fetches the roster and replaces the team store. On failure the
// store keeps its previous contents.
func (a *App) LoadTeam(ctx context.Context) error {
	a.Team.SetLoading(true)
	defer a.Team.SetLoading(false)

	resp, err := a.Gateway.Get(ctx, "/manager/team")
	if err != nil {
		return errors.Wrap(err, "[App.LoadTeam] fetch")
	}

	var body teamResponse
	if err := json.Unmarshal(resp.Body, &body); err != nil || body.Success == nil {
		return errors.New("[App.LoadTeam] malformed response")
	}
	if !*body.Success {
		return errors.New("[App.LoadTeam] server rejected request")
	}

	a.Team.ReplaceAll(body.Team)
	return nil
}

// LoadAnalytics fetches the analytics aggregate and replaces the snapshot.
func (a *App) LoadAnalytics(ctx context.Context) error {
	a.Analytics.SetLoading(true)
	defer a.Analytics.SetLoading(false)

	resp, err := a.Gateway.Get(ctx, "/manager/analytics")
	if err != nil {
		return errors.Wrap(err, "[App.LoadAnalytics] fetch")
	}

	var body analyticsResponse
	if err := json.Unmarshal(resp.Body, &body); err != nil || body.Success == nil {
		return errors.New("[App.LoadAnalytics] malformed response")
	}
	if !*body.Success || body.Analytics == nil {
		return errors.New("[App.LoadAnalytics] server rejected request")
	}

	a.Analytics.Set(*body.Analytics)
	return nil
}

// LoadTasks populates the task board. The backend has no task endpoint yet,
// so this loads the fixture board, matching the original dashboard.
func (a *App) LoadTasks(_ context.Context) error {
	a.Tasks.SetLoading(true)
	defer a.Tasks.SetLoading(false)

	a.Tasks.ReplaceAll(fixtures.Tasks())
	return nil
}
