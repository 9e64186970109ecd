// The gitpulse command is a terminal front end for the GitPulse backend:
// log in, inspect the current session, and pull the manager dashboards.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/rs/zerolog"

	"github.com/gitpulse/gitpulse-go/app"
	"github.com/gitpulse/gitpulse-go/auth"
	"github.com/gitpulse/gitpulse-go/guard"
	"github.com/gitpulse/gitpulse-go/internal/config"
	"github.com/gitpulse/gitpulse-go/session"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if cfg.DevLogging {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.WarnLevel)
	}

	a, err := app.New(cfg, logger)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		usage()
		return nil
	}

	ctx := context.Background()
	a.Auth.Bootstrap(ctx)

	switch args[0] {
	case "login":
		return cmdLogin(ctx, a, args[1:])
	case "me":
		return cmdMe(a)
	case "team":
		return cmdTeam(ctx, a)
	case "analytics":
		return cmdAnalytics(ctx, a)
	case "tasks":
		return cmdTasks(ctx, a)
	case "github":
		fmt.Println("Open this URL in a browser to sign in with GitHub:")
		fmt.Println(a.Auth.GithubHandoffURL())
		return nil
	case "complete-profile":
		return cmdCompleteProfile(ctx, a, args[1:])
	case "logout":
		return cmdLogout(ctx, a)
	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage() {
	figure.NewFigure("GitPulse", "cybermedium", true).Print()
	fmt.Println()
	fmt.Println("usage: gitpulse <login email password | me | team | analytics | tasks | github | complete-profile | logout>")
}

func cmdLogin(ctx context.Context, a *app.App, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: gitpulse login <email> <password>")
	}
	if err := a.Auth.Login(ctx, args[0], args[1]); err != nil {
		return err
	}

	snap := a.Session.Snapshot()
	fmt.Printf("Logged in as %s (%s)\n", snap.Identity.Name, snap.Role)
	return nil
}

func cmdMe(a *app.App) error {
	snap := a.Session.Snapshot()
	if snap.Identity == nil {
		fmt.Println("Not logged in")
		return nil
	}
	fmt.Printf("%s <%s> role=%s\n", snap.Identity.Name, snap.Identity.Email, snap.Role)
	return nil
}

func cmdTeam(ctx context.Context, a *app.App) error {
	if err := requireRole(a, session.RoleManager); err != nil {
		return err
	}
	if err := a.LoadTeam(ctx); err != nil {
		return err
	}
	for _, m := range a.Team.All() {
		fmt.Printf("%-3d %-16s %-10s commits=%-4d repos=%-3d stars=%-3d %s\n",
			m.ID, m.Name, m.Role, m.Commits, m.Repos, m.Stars, m.Status)
	}
	return nil
}

func cmdAnalytics(ctx context.Context, a *app.App) error {
	if err := requireRole(a, session.RoleManager); err != nil {
		return err
	}
	if err := a.LoadAnalytics(ctx); err != nil {
		return err
	}

	snap, ok := a.Analytics.Data()
	if !ok {
		fmt.Println("No analytics loaded")
		return nil
	}
	fmt.Printf("commits=%d repos=%d stars=%d prs=%d\n",
		snap.TotalCommits, snap.TotalRepos, snap.TotalStars, snap.TotalPRs)
	for _, lang := range snap.LanguageDistribution {
		fmt.Printf("  %-12s %d%%\n", lang.Name, lang.Value)
	}
	return nil
}

func cmdTasks(ctx context.Context, a *app.App) error {
	if err := requireRole(a); err != nil {
		return err
	}
	if err := a.LoadTasks(ctx); err != nil {
		return err
	}
	for _, t := range a.Tasks.All() {
		fmt.Printf("%-8s [%-11s] %-40s %s\n", t.ID, t.Status, t.Title, t.AssignedTo)
	}
	return nil
}

func cmdCompleteProfile(ctx context.Context, a *app.App, args []string) error {
	if len(args) != 4 {
		return fmt.Errorf("usage: gitpulse complete-profile <token> <password> <confirm> <manager|employee>")
	}
	token, password, confirm := args[0], args[1], args[2]

	role, err := session.ParseRole(args[3])
	if err != nil {
		return err
	}

	fmt.Printf("Completing signup for %s\n", auth.PeekSignupToken(token))
	declared, err := a.Auth.CompleteProfile(ctx, token, password, confirm, role)
	if err != nil {
		return err
	}
	fmt.Printf("Profile completed, continue as %s\n", declared)
	return nil
}

func cmdLogout(ctx context.Context, a *app.App) error {
	if err := a.Auth.Logout(ctx); err != nil {
		// Local session is already cleared; the server-side failure is
		// informational.
		fmt.Println("Logged out locally;", err)
		return nil
	}
	fmt.Println("Logged out")
	return nil
}

// requireRole maps a guard decision to CLI behavior.
func requireRole(a *app.App, roles ...session.Role) error {
	switch guard.Decide(a.Session.Snapshot(), roles...) {
	case guard.Allow:
		return nil
	case guard.RedirectLogin:
		return fmt.Errorf("not logged in, run: gitpulse login <email> <password>")
	case guard.RedirectHome:
		return fmt.Errorf("this view requires one of roles %v", roles)
	default:
		return fmt.Errorf("session still initializing")
	}
}
