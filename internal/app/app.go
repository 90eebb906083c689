// Package app wires the portal together: the session, the guarded
// router, the screens, and the root Bubble Tea model.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tinkerlab/tinkeralpha/internal/activities"
	"github.com/tinkerlab/tinkeralpha/internal/auth"
	"github.com/tinkerlab/tinkeralpha/internal/nav"
	"github.com/tinkerlab/tinkeralpha/internal/screen"
	activityscreen "github.com/tinkerlab/tinkeralpha/internal/screens/activity"
	"github.com/tinkerlab/tinkeralpha/internal/screens/activitylist"
	"github.com/tinkerlab/tinkeralpha/internal/screens/addactivity"
	"github.com/tinkerlab/tinkeralpha/internal/screens/home"
	"github.com/tinkerlab/tinkeralpha/internal/screens/notfound"
	"github.com/tinkerlab/tinkeralpha/internal/screens/signin"
	"github.com/tinkerlab/tinkeralpha/internal/screens/starvault"
	"github.com/tinkerlab/tinkeralpha/internal/screens/welcome"
	"github.com/tinkerlab/tinkeralpha/internal/stars"
	"github.com/tinkerlab/tinkeralpha/internal/store"
	"github.com/tinkerlab/tinkeralpha/internal/ui/layout"
)

// Options carries the app's dependencies, built in cmd and injected here.
type Options struct {
	Session     *auth.Session
	StarService *stars.Service
	EventRepo   store.EventRepo
	SnapRepo    store.SnapshotRepo
	Guide       activityscreen.Guide

	// LatestVersion, when non-empty, surfaces an update notice on the
	// dashboard.
	LatestVersion string
}

type totalsMsg struct {
	Total int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *nav.Router
	width  int
	height int

	// persisted star total at startup; session awards add on top
	baseStars int
}

// newAppModel creates the root model with the splash screen on the stack.
// The header's star total warms up from the latest snapshot; the live
// event-store total replaces it once Init's query returns.
func newAppModel(opts Options) *AppModel {
	m := &AppModel{opts: opts}
	m.baseStars = snapshotStars(context.Background(), opts.SnapRepo)

	guard := nav.NewGuard(opts.Session)
	m.router = nav.New(welcome.New(), guard, m.buildScreen)
	return m
}

// snapshotStars reads the star total from the most recent snapshot.
// Returns 0 when there is no snapshot or it cannot be read.
func snapshotStars(ctx context.Context, repo store.SnapshotRepo) int {
	if repo == nil {
		return 0
	}
	snap, err := repo.Latest(ctx)
	if err != nil || snap == nil || snap.Data.Stars == nil {
		return 0
	}
	return snap.Data.Stars.TotalStars
}

// buildScreen maps an authorized route to its screen.
func (m *AppModel) buildScreen(route nav.Route, params map[string]string) screen.Screen {
	switch route.Path {
	case nav.PathSignIn, nav.PathRegister:
		return signin.New(m.opts.Session)
	case nav.PathRoot, nav.PathDashboard:
		return home.New(m.opts.Session, m.opts.StarService, m.opts.LatestVersion)
	case nav.PathActivities:
		return activitylist.New(m.opts.StarService)
	case nav.PathStarVault:
		return starvault.New(m.opts.StarService, m.opts.EventRepo)
	case nav.PathAddActivity:
		return addactivity.New()
	case "/activity/:id":
		a, err := activities.Get(params["id"])
		if err != nil {
			return notfound.New()
		}
		return activityscreen.New(a, m.opts.StarService, m.opts.Guide)
	default:
		return notfound.New()
	}
}

func (m *AppModel) Init() tea.Cmd {
	if m.opts.StarService == nil {
		return nil
	}
	return func() tea.Msg {
		_, total, _ := m.opts.StarService.Totals(context.Background())
		return totalsMsg{Total: total}
	}
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case totalsMsg:
		m.baseStars = msg.Total
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m *AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.starCount(), m.badgeCount(), m.width)

	footerHints := m.footerHints(active)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// starCount is the persisted baseline plus stars earned this session.
func (m *AppModel) starCount() int {
	if m.opts.StarService == nil {
		return 0
	}
	return m.baseStars + m.opts.StarService.SessionStars()
}

func (m *AppModel) badgeCount() int {
	if m.opts.StarService == nil {
		return 0
	}
	count := 0
	for _, a := range m.opts.StarService.SessionAwards {
		if a.Badge != "" {
			count++
		}
	}
	return count
}

func (m *AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if provider, ok := active.(screen.KeyHintProvider); ok {
		hints := provider.KeyHints()
		return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program and writes a state snapshot on the
// way out.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}

	if opts.SnapRepo != nil && opts.StarService != nil {
		saveSnapshot(context.Background(), opts)
	}
	return nil
}

// snapshotKeep bounds how many snapshots stay on disk.
const snapshotKeep = 10

func saveSnapshot(ctx context.Context, opts Options) {
	data := store.SnapshotData{
		Version: 1,
		Stars:   opts.StarService.SnapshotData(ctx),
	}

	if opts.EventRepo != nil {
		done, err := opts.EventRepo.CompletedActivities(ctx)
		if err == nil {
			for _, a := range activities.All() {
				data.Activities = append(data.Activities, store.ActivityProgressData{
					ActivityID: a.ID,
					Complete:   done[a.ID],
				})
			}
		}
	}

	if err := opts.SnapRepo.Save(ctx, &store.Snapshot{Data: data}); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to save snapshot: %v\n", err)
		return
	}
	_ = opts.SnapRepo.Prune(ctx, snapshotKeep)
}
