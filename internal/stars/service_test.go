package stars

import (
	"context"
	"testing"

	"github.com/tinkerlab/tinkeralpha/internal/activities"
	"github.com/tinkerlab/tinkeralpha/internal/stagegraph"
	"github.com/tinkerlab/tinkeralpha/internal/store"
)

// fakeEventRepo captures appended stage events and serves canned totals.
type fakeEventRepo struct {
	appended  []store.StageEventData
	totals    map[string]int
	completed map[string]bool
}

func (f *fakeEventRepo) AppendSessionEvent(ctx context.Context, data store.SessionEventData) error {
	return nil
}

func (f *fakeEventRepo) AppendStageEvent(ctx context.Context, data store.StageEventData) error {
	f.appended = append(f.appended, data)
	return nil
}

func (f *fakeEventRepo) AppendMascotRequest(ctx context.Context, data store.MascotRequestEventData) error {
	return nil
}

func (f *fakeEventRepo) QueryStageEvents(ctx context.Context, opts store.QueryOpts) ([]store.StageEventRecord, error) {
	return nil, nil
}

func (f *fakeEventRepo) QueryMascotRequests(ctx context.Context, opts store.QueryOpts) ([]store.MascotRequestRecord, error) {
	return nil, nil
}

func (f *fakeEventRepo) MascotUsageByModel(ctx context.Context) ([]store.MascotUsage, error) {
	return nil, nil
}

func (f *fakeEventRepo) StarTotals(ctx context.Context) (map[string]int, int, error) {
	total := 0
	for _, n := range f.totals {
		total += n
	}
	return f.totals, total, nil
}

func (f *fakeEventRepo) CompletedActivities(ctx context.Context) (map[string]bool, error) {
	return f.completed, nil
}

func TestAwardStagePersistsEvent(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := NewService(repo)

	a, err := activities.Get("circuit")
	if err != nil {
		t.Fatal(err)
	}
	build, _ := a.Graph.Get("build")

	award, err := svc.AwardStage(context.Background(), "run-1", a, build, "lamp lit")
	if err != nil {
		t.Fatalf("award: %v", err)
	}
	if award.Stars != 3 {
		t.Errorf("stars = %d, want 3", award.Stars)
	}
	if award.ActivityComplete {
		t.Error("build stage should not complete the activity")
	}

	if len(repo.appended) != 1 {
		t.Fatalf("appended %d events, want 1", len(repo.appended))
	}
	ev := repo.appended[0]
	if ev.RunID != "run-1" || ev.ActivityID != "circuit" || ev.StageID != "build" {
		t.Errorf("event = %+v", ev)
	}
	if ev.Evidence != "lamp lit" {
		t.Errorf("evidence = %q", ev.Evidence)
	}

	if got := svc.SessionStars(); got != 3 {
		t.Errorf("session stars = %d, want 3", got)
	}
}

func TestTerminalStageEarnsBadge(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := NewService(repo)

	a, _ := activities.Get("circuit")
	terminal := a.Graph.Terminal()

	award, err := svc.AwardStage(context.Background(), "run-1", a, terminal, "")
	if err != nil {
		t.Fatal(err)
	}
	if !award.ActivityComplete {
		t.Error("terminal stage should mark the activity complete")
	}
	if award.Badge != "Circuit Master" {
		t.Errorf("badge = %q, want Circuit Master", award.Badge)
	}
	if !repo.appended[0].ActivityComplete {
		t.Error("persisted event should carry activity_complete")
	}
}

func TestSessionAccumulationAndReset(t *testing.T) {
	svc := NewService(nil) // in-memory only

	a, _ := activities.Get("motor")
	for _, id := range []string{"intro", "build"} {
		st, _ := a.Graph.Get(stagegraph.StageID(id))
		if _, err := svc.AwardStage(context.Background(), "run-1", a, st, ""); err != nil {
			t.Fatal(err)
		}
	}
	if got := svc.SessionStars(); got != 4 {
		t.Errorf("session stars = %d, want 4", got)
	}

	svc.ResetSession()
	if got := svc.SessionStars(); got != 0 {
		t.Errorf("session stars after reset = %d, want 0", got)
	}
}

func TestBadges(t *testing.T) {
	repo := &fakeEventRepo{completed: map[string]bool{
		"robot":   true,
		"circuit": true,
	}}
	svc := NewService(repo)

	badges, err := svc.Badges(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(badges) != 2 {
		t.Fatalf("got %d badges, want 2", len(badges))
	}
	// Display order, not completion order.
	if badges[0].ActivityID != "circuit" || badges[1].ActivityID != "robot" {
		t.Errorf("badges = %+v", badges)
	}
	if badges[0].Name != "Circuit Master" {
		t.Errorf("badge name = %q", badges[0].Name)
	}
}

func TestSnapshotData(t *testing.T) {
	repo := &fakeEventRepo{totals: map[string]int{"circuit": 16, "motor": 4}}
	svc := NewService(repo)

	data := svc.SnapshotData(context.Background())
	if data.TotalStars != 20 {
		t.Errorf("total = %d, want 20", data.TotalStars)
	}
	if data.ByActivity["circuit"] != 16 {
		t.Errorf("circuit = %d, want 16", data.ByActivity["circuit"])
	}
}
