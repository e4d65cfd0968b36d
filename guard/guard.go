// Package guard enforces authentication and role rules before a navigation
// is allowed to proceed.
package guard

import (
	"net/url"

	"github.com/jrsteele09/go-gamehub-client/notify"
	"github.com/jrsteele09/go-gamehub-client/routes"
	"github.com/jrsteele09/go-gamehub-client/users"
)

// SessionView is the read-only slice of session state the guard consults.
type SessionView interface {
	IsLoggedIn() bool
	Identity() *users.Identity
}

// Action says what should happen to a navigation.
type Action int

const (
	Proceed Action = iota
	Redirect
)

// Decision is the guard's verdict on one navigation. When Action is
// Redirect, Target names the route to go to instead and Query carries any
// parameters to attach.
type Decision struct {
	Action Action
	Target string
	Query  url.Values
}

// Guard evaluates navigations against the current session.
type Guard struct {
	session  SessionView
	notifier notify.Notifier
}

// New creates a Guard over the given session view.
func New(session SessionView, notifier notify.Notifier) *Guard {
	return &Guard{session: session, notifier: notifier}
}

// Evaluate runs the decision sequence for a navigation to the given route.
// fullPath is the complete requested path (including any parameters), kept
// through the login redirect so the user can be sent back after
// authenticating.
func (g *Guard) Evaluate(to routes.Route, fullPath string) Decision {
	// Logged-in users have no business on guest-only pages.
	if to.Meta.Guest && g.session.IsLoggedIn() {
		return Decision{Action: Redirect, Target: routes.PathHome}
	}

	if to.Meta.RequiresAuth && !g.session.IsLoggedIn() {
		g.notifier.Warning("Please log in first")
		query := url.Values{}
		query.Set(routes.RedirectQueryParam, fullPath)
		return Decision{Action: Redirect, Target: routes.PathLogin, Query: query}
	}

	// The role check is skipped when no identity is present: RequiresAuth
	// already passed above, and the guard must never dereference a nil
	// identity.
	if len(to.Meta.Roles) > 0 {
		identity := g.session.Identity()
		if identity != nil && !satisfiesAny(identity.Role, to.Meta.Roles) {
			g.notifier.Error("You do not have permission to access this page")
			return Decision{Action: Redirect, Target: routes.PathHome}
		}
	}

	return Decision{Action: Proceed}
}

// satisfiesAny reports whether the held role covers at least one of the
// required roles through the capability table, so admin passes any check.
func satisfiesAny(held users.Role, required []users.Role) bool {
	for _, r := range required {
		if held.HasCapability(r) {
			return true
		}
	}
	return false
}
