// Package guard derives routing decisions from session state. Decide is pure
// and total; the caller performs the actual navigation.
package guard

import "github.com/gitpulse/gitpulse-go/session"

// Decision is the outcome of an access check.
type Decision int

const (
	// Pending means the startup identity fetch has not finished; render a
	// loading state and do not redirect.
	Pending Decision = iota
	// Allow grants access to the requested view.
	Allow
	// RedirectLogin sends an unauthenticated user to the login view.
	RedirectLogin
	// RedirectHome sends an authenticated user without the required role
	// back to the home view.
	RedirectHome
)

func (d Decision) String() string {
	switch d {
	case Pending:
		return "pending"
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect-login"
	case RedirectHome:
		return "redirect-home"
	}
	return "unknown"
}

// Decide maps session state and an optional role restriction to a Decision.
// With no required roles, any authenticated identity is allowed.
func Decide(snap session.Snapshot, requiredRoles ...session.Role) Decision {
	if snap.Initializing {
		return Pending
	}
	if snap.Identity == nil {
		return RedirectLogin
	}
	if len(requiredRoles) == 0 {
		return Allow
	}
	for _, role := range requiredRoles {
		if snap.Role == role {
			return Allow
		}
	}
	return RedirectHome
}
