package nav

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/tinkerlab/tinkeralpha/internal/auth"
	"github.com/tinkerlab/tinkeralpha/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func newTestRouter(sess SessionInfo) *Router {
	factory := func(route Route, params map[string]string) screen.Screen {
		title := route.Path
		if id := params["id"]; id != "" {
			title = "/activity/" + id
		}
		return &stubScreen{title: title}
	}
	return New(&stubScreen{title: "initial"}, NewGuard(sess), factory)
}

func TestPush(t *testing.T) {
	r := newTestRouter(&stubSession{})

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	r := newTestRouter(&stubSession{})

	r.Push(&stubScreen{title: "second"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "initial" {
		t.Errorf("expected active 'initial', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	r := newTestRouter(&stubSession{})

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	r := newTestRouter(&stubSession{})

	s2 := &stubScreen{title: "second"}
	r.Replace(s2)

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on replaced screen")
	}
}

func TestNavigateAllowedPushes(t *testing.T) {
	r := newTestRouter(&stubSession{authed: true, role: auth.RoleStudent})

	r.Update(NavigateMsg{Path: "/activity/circuit"})

	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2", r.Depth())
	}
	if r.Active().Title() != "/activity/circuit" {
		t.Errorf("active = %q", r.Active().Title())
	}
}

func TestNavigateRedirectsUnauthenticated(t *testing.T) {
	r := newTestRouter(&stubSession{})

	r.Update(NavigateMsg{Path: PathDashboard})

	// The redirect replaces instead of pushing: no history entry for
	// the screen the learner never reached.
	if r.Depth() != 1 {
		t.Errorf("depth = %d, want 1", r.Depth())
	}
	if r.Active().Title() != PathSignIn {
		t.Errorf("active = %q, want sign-in", r.Active().Title())
	}
}

func TestNavigateRoleRedirect(t *testing.T) {
	r := newTestRouter(&stubSession{authed: true, role: auth.RoleStudent})

	r.Update(NavigateMsg{Path: PathAddActivity})

	if r.Active().Title() != PathDashboard {
		t.Errorf("active = %q, want dashboard", r.Active().Title())
	}
}

func TestNavigateUnknownPath(t *testing.T) {
	r := newTestRouter(&stubSession{authed: true, role: auth.RoleStudent})

	r.Update(NavigateMsg{Path: "/quiz"})

	if r.Active().Title() != PathNotFound {
		t.Errorf("active = %q, want not-found", r.Active().Title())
	}
}

func TestNavigateReplaceSwapsTop(t *testing.T) {
	r := newTestRouter(&stubSession{authed: true, role: auth.RoleStudent})

	r.Update(NavigateMsg{Path: PathActivities})
	r.Update(NavigateMsg{Path: "/activity/motor", Replace: true})

	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2", r.Depth())
	}
	if r.Active().Title() != "/activity/motor" {
		t.Errorf("active = %q", r.Active().Title())
	}
}

func TestReset(t *testing.T) {
	r := newTestRouter(&stubSession{authed: true, role: auth.RoleStudent})
	r.Update(NavigateMsg{Path: PathActivities})
	r.Update(NavigateMsg{Path: "/activity/circuit"})

	signin := &stubScreen{title: PathSignIn}
	r.Reset(signin)

	if r.Depth() != 1 {
		t.Errorf("depth = %d, want 1", r.Depth())
	}
	if r.Active().Title() != PathSignIn {
		t.Errorf("active = %q", r.Active().Title())
	}
	if !signin.initRan {
		t.Error("expected Init() to run on reset screen")
	}
}
