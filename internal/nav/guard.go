package nav

import "github.com/tinkerlab/tinkeralpha/internal/auth"

// SessionInfo is the slice of the auth session the guard reads.
// Satisfied by *auth.Session.
type SessionInfo interface {
	IsAuthenticated() bool
	CurrentRole() auth.Role
}

// DecisionKind classifies a guard outcome.
type DecisionKind int

const (
	// DecisionAllow admits the learner to the requested route.
	DecisionAllow DecisionKind = iota
	// DecisionRedirect sends the learner to RedirectTo instead.
	DecisionRedirect
	// DecisionNotFound means the path matches no route; the learner is
	// signed in, so the not-found screen is appropriate.
	DecisionNotFound
)

// Decision is the outcome of authorizing one navigation.
type Decision struct {
	Kind       DecisionKind
	Path       string
	RedirectTo string
	Route      Route
	Params     map[string]string
}

// Guard authorizes navigations against the live session. Each call
// reads session state fresh; a decision is never cached, so a sign-out
// between navigations takes effect on the very next one.
type Guard struct {
	session SessionInfo
}

// NewGuard creates a guard over the given session.
func NewGuard(session SessionInfo) *Guard {
	return &Guard{session: session}
}

// Authorize decides whether the learner may visit path.
//
// Unauthenticated access to anything non-public redirects to the
// sign-in screen, including unknown paths; the not-found screen itself
// sits behind the session. A signed-in learner lacking a route's
// required role is sent to the dashboard rather than sign-in.
func (g *Guard) Authorize(path string) Decision {
	authed := g.session.IsAuthenticated()

	route, params, ok := Match(path)
	if !ok {
		if !authed {
			return Decision{Kind: DecisionRedirect, Path: path, RedirectTo: PathSignIn}
		}
		return Decision{Kind: DecisionNotFound, Path: path}
	}

	if route.Public {
		return Decision{Kind: DecisionAllow, Path: path, Route: route, Params: params}
	}
	if !authed {
		return Decision{Kind: DecisionRedirect, Path: path, RedirectTo: PathSignIn}
	}
	if route.Role != "" && g.session.CurrentRole() != route.Role {
		return Decision{Kind: DecisionRedirect, Path: path, RedirectTo: PathDashboard}
	}
	return Decision{Kind: DecisionAllow, Path: path, Route: route, Params: params}
}
