package nav

import (
	"testing"

	"github.com/tinkerlab/tinkeralpha/internal/auth"
)

// stubSession is a fixed session state for guard tests.
type stubSession struct {
	authed bool
	role   auth.Role
}

func (s *stubSession) IsAuthenticated() bool  { return s.authed }
func (s *stubSession) CurrentRole() auth.Role { return s.role }

func TestMatch(t *testing.T) {
	r, params, ok := Match("/activity/circuit")
	if !ok {
		t.Fatal("expected /activity/circuit to match")
	}
	if r.Path != "/activity/:id" {
		t.Errorf("route = %q", r.Path)
	}
	if params["id"] != "circuit" {
		t.Errorf("params = %v", params)
	}

	if _, _, ok := Match("/activity/"); ok {
		t.Error("empty param segment should not match")
	}
	if _, _, ok := Match("/activity/circuit/extra"); ok {
		t.Error("extra segments should not match")
	}
	if _, _, ok := Match("/quiz"); ok {
		t.Error("unknown path should not match")
	}
}

func TestAuthorize(t *testing.T) {
	student := &stubSession{authed: true, role: auth.RoleStudent}
	teacher := &stubSession{authed: true, role: auth.RoleTeacher}
	unknown := &stubSession{authed: true, role: auth.RoleUnknown}
	anon := &stubSession{}

	tests := []struct {
		name     string
		session  SessionInfo
		path     string
		want     DecisionKind
		redirect string
	}{
		{"anon dashboard", anon, PathDashboard, DecisionRedirect, PathSignIn},
		{"anon activity", anon, "/activity/circuit", DecisionRedirect, PathSignIn},
		{"anon unknown path", anon, "/quiz", DecisionRedirect, PathSignIn},
		{"anon signin", anon, PathSignIn, DecisionAllow, ""},
		{"anon register", anon, PathRegister, DecisionAllow, ""},
		{"student dashboard", student, PathDashboard, DecisionAllow, ""},
		{"student activity", student, "/activity/circuit", DecisionAllow, ""},
		{"student starvault", student, PathStarVault, DecisionAllow, ""},
		{"student add-activity", student, PathAddActivity, DecisionRedirect, PathDashboard},
		{"unknown role add-activity", unknown, PathAddActivity, DecisionRedirect, PathDashboard},
		{"unknown role dashboard", unknown, PathDashboard, DecisionAllow, ""},
		{"teacher add-activity", teacher, PathAddActivity, DecisionAllow, ""},
		{"student unknown path", student, "/quiz", DecisionNotFound, ""},
		{"student signin", student, PathSignIn, DecisionAllow, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewGuard(tt.session).Authorize(tt.path)
			if d.Kind != tt.want {
				t.Fatalf("kind = %v, want %v", d.Kind, tt.want)
			}
			if d.RedirectTo != tt.redirect {
				t.Errorf("redirect = %q, want %q", d.RedirectTo, tt.redirect)
			}
		})
	}
}

func TestAuthorizeReadsSessionFresh(t *testing.T) {
	sess := &stubSession{authed: true, role: auth.RoleStudent}
	g := NewGuard(sess)

	if d := g.Authorize(PathDashboard); d.Kind != DecisionAllow {
		t.Fatalf("signed in: kind = %v", d.Kind)
	}

	// Sign out between navigations; the same guard must notice.
	sess.authed = false
	d := g.Authorize(PathDashboard)
	if d.Kind != DecisionRedirect || d.RedirectTo != PathSignIn {
		t.Errorf("after sign-out: %+v", d)
	}
}

func TestAuthorizeCapturesParams(t *testing.T) {
	g := NewGuard(&stubSession{authed: true, role: auth.RoleStudent})
	d := g.Authorize("/activity/motor")
	if d.Kind != DecisionAllow {
		t.Fatalf("kind = %v", d.Kind)
	}
	if d.Params["id"] != "motor" {
		t.Errorf("params = %v", d.Params)
	}
}
