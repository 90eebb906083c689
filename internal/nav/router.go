package nav

import (
	tea "charm.land/bubbletea/v2"

	"github.com/tinkerlab/tinkeralpha/internal/screen"
)

// PushScreenMsg requests the router to push a new screen onto the stack.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg requests the router to pop the current screen off the stack.
type PopScreenMsg struct{}

// ReplaceScreenMsg requests the router to replace the current screen.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// NavigateMsg requests a guarded navigation to a path. Replace swaps
// the top of the stack instead of pushing.
type NavigateMsg struct {
	Path    string
	Replace bool
}

// Navigate returns a command that delivers a NavigateMsg.
func Navigate(path string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Path: path} }
}

// NavigateReplace returns a command that delivers a replacing NavigateMsg.
func NavigateReplace(path string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Path: path, Replace: true} }
}

// ScreenFactory builds the screen for an authorized route. The
// not-found case arrives as a route with Path set to PathNotFound.
type ScreenFactory func(route Route, params map[string]string) screen.Screen

// maxRedirects bounds redirect chains. The table only redirects to the
// sign-in screen and the dashboard, so one hop suffices in practice.
const maxRedirects = 4

// Router manages a stack of screens and authorizes every path
// navigation through the guard before building the target screen.
type Router struct {
	stack   []screen.Screen
	guard   *Guard
	factory ScreenFactory
}

// New creates a Router with the given initial screen.
func New(initial screen.Screen, guard *Guard, factory ScreenFactory) *Router {
	return &Router{
		stack:   []screen.Screen{initial},
		guard:   guard,
		factory: factory,
	}
}

// Push adds a screen on top of the stack and calls its Init().
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop removes the top screen. No-op if stack depth would become 0.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) <= 1 {
		return nil
	}
	r.stack = r.stack[:len(r.stack)-1]
	return nil
}

// Replace swaps the top screen for a new one and calls its Init().
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	if len(r.stack) == 0 {
		return r.Push(s)
	}
	r.stack[len(r.stack)-1] = s
	return s.Init()
}

// Navigate authorizes path and shows the resulting screen. Redirects
// always replace rather than push, so a bounced navigation leaves no
// intermediate entry to pop back into.
func (r *Router) Navigate(path string, replace bool) tea.Cmd {
	for hop := 0; hop < maxRedirects; hop++ {
		d := r.guard.Authorize(path)
		switch d.Kind {
		case DecisionAllow:
			return r.show(r.factory(d.Route, d.Params), replace)
		case DecisionNotFound:
			return r.show(r.factory(Route{Path: PathNotFound}, nil), replace)
		case DecisionRedirect:
			path = d.RedirectTo
			replace = true
		}
	}
	return nil
}

func (r *Router) show(s screen.Screen, replace bool) tea.Cmd {
	if s == nil {
		return nil
	}
	if replace {
		return r.Replace(s)
	}
	return r.Push(s)
}

// Active returns the top screen on the stack.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Depth returns the number of screens on the stack.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Reset clears the stack down to a single screen. Used after sign-out
// so history cannot lead back into guarded screens.
func (r *Router) Reset(s screen.Screen) tea.Cmd {
	r.stack = r.stack[:0]
	return r.Push(s)
}

// Update forwards a message to the active screen and handles navigation messages.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	case NavigateMsg:
		return r.Navigate(msg.Path, msg.Replace)
	}

	active := r.Active()
	if active == nil {
		return nil
	}

	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
