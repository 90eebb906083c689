// Package nav implements path-based navigation: a route table, the
// guard that authorizes each navigation, and a screen-stack router.
package nav

import (
	"strings"

	"github.com/tinkerlab/tinkeralpha/internal/auth"
)

// Well-known paths used as redirect and fallback targets.
const (
	PathRoot        = "/"
	PathSignIn      = "/signin"
	PathRegister    = "/register"
	PathDashboard   = "/dashboard"
	PathActivities  = "/activities"
	PathStarVault   = "/starvault"
	PathAddActivity = "/add-activity"
	PathNotFound    = "/404"
)

// ActivityPath returns the path for one activity's screen.
func ActivityPath(activityID string) string {
	return "/activity/" + activityID
}

// Route is one entry in the route table. A path segment starting with
// ':' matches any single segment and is captured as a param.
type Route struct {
	Path   string
	Public bool      // reachable without a session
	Role   auth.Role // required role ("" means any signed-in learner)
}

// routes is the full table. Everything not listed here falls through to
// the catch-all handling in Guard.Authorize, which still requires a
// session before admitting the learner to the not-found screen.
var routes = []Route{
	{Path: PathSignIn, Public: true},
	{Path: PathRegister, Public: true},
	{Path: PathRoot},
	{Path: PathDashboard},
	{Path: PathActivities},
	{Path: "/activity/:id"},
	{Path: PathStarVault},
	{Path: PathAddActivity, Role: auth.RoleTeacher},
}

// Match resolves a path against the route table, capturing any pattern
// params.
func Match(path string) (Route, map[string]string, bool) {
	for _, r := range routes {
		if params, ok := matchPattern(r.Path, path); ok {
			return r, params, true
		}
	}
	return Route{}, nil, false
}

func matchPattern(pattern, path string) (map[string]string, bool) {
	if !strings.Contains(pattern, ":") {
		if pattern == path {
			return nil, true
		}
		return nil, false
	}

	pSegs := strings.Split(strings.Trim(pattern, "/"), "/")
	segs := strings.Split(strings.Trim(path, "/"), "/")
	if len(pSegs) != len(segs) {
		return nil, false
	}

	params := make(map[string]string)
	for i, ps := range pSegs {
		if strings.HasPrefix(ps, ":") {
			if segs[i] == "" {
				return nil, false
			}
			params[ps[1:]] = segs[i]
			continue
		}
		if ps != segs[i] {
			return nil, false
		}
	}
	return params, true
}
