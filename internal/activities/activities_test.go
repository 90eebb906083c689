package activities

import (
	"testing"

	"github.com/tinkerlab/tinkeralpha/internal/stagegraph"
)

func TestBuiltinActivities(t *testing.T) {
	all := All()
	if len(all) < 4 {
		t.Fatalf("got %d activities, want at least 4", len(all))
	}

	wantOrder := []string{"circuit", "motor", "traffic", "robot"}
	for i, id := range wantOrder {
		if all[i].ID != id {
			t.Errorf("activity[%d] = %q, want %q", i, all[i].ID, id)
		}
	}
}

func TestEveryGraphSharesTheStandardShape(t *testing.T) {
	for _, a := range All() {
		g := a.Graph
		if g == nil {
			t.Fatalf("%s: nil graph", a.ID)
		}

		if g.First().Kind != stagegraph.KindIntro {
			t.Errorf("%s: first stage kind = %v, want intro", a.ID, g.First().Kind)
		}
		if g.Terminal().Kind != stagegraph.KindComplete {
			t.Errorf("%s: terminal stage kind = %v, want complete", a.ID, g.Terminal().Kind)
		}
		if _, ok := g.Next(g.Terminal().ID); ok {
			t.Errorf("%s: terminal stage has a successor", a.ID)
		}
		if _, ok := g.Prev(g.First().ID); ok {
			t.Errorf("%s: first stage has a predecessor", a.ID)
		}
	}
}

func TestRewardPattern(t *testing.T) {
	for _, a := range All() {
		if got := a.Graph.TotalStars(); got != 16 {
			t.Errorf("%s: total stars = %d, want 16", a.ID, got)
		}
	}
}

func TestGet(t *testing.T) {
	a, err := Get("circuit")
	if err != nil {
		t.Fatalf("get circuit: %v", err)
	}
	if a.Badge != "Circuit Master" {
		t.Errorf("badge = %q, want Circuit Master", a.Badge)
	}
	if a.NextActivityID != "motor" {
		t.Errorf("next = %q, want motor", a.NextActivityID)
	}

	if _, err := Get("submarine"); err == nil {
		t.Error("expected error for unknown activity")
	}
}

func TestRegisterCustomActivity(t *testing.T) {
	g, err := stagegraph.New("windmill", StandardStages("Build the Windmill", "Wind Power Lab", "Blade Puzzle"))
	if err != nil {
		t.Fatalf("build graph: %v", err)
	}

	custom := Activity{
		ID:      "windmill",
		Title:   "Windmill Power",
		Subject: "Energy",
		Badge:   "Wind Wizard",
		Graph:   g,
	}
	if err := Register(custom); err != nil {
		t.Fatalf("register: %v", err)
	}
	t.Cleanup(func() { delete(registry, "windmill") })

	got, err := Get("windmill")
	if err != nil {
		t.Fatalf("get after register: %v", err)
	}
	if got.Title != "Windmill Power" {
		t.Errorf("title = %q", got.Title)
	}

	// Duplicate registration is rejected.
	if err := Register(custom); err == nil {
		t.Error("expected error registering duplicate activity")
	}

	// Mismatched graph is rejected.
	bad := custom
	bad.ID = "other"
	if err := Register(bad); err == nil {
		t.Error("expected error for ID/graph mismatch")
	}
}
