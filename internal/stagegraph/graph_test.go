package stagegraph

import "testing"

func testStages() []Stage {
	return []Stage{
		{ID: "intro", Name: "Introduction", Kind: KindIntro, Order: 1, RewardStars: 1, CompletionMessage: "Ready to build!"},
		{ID: "build", Name: "Build It", Kind: KindHandsOn, Order: 2, RewardStars: 3, CompletionMessage: "Great job!"},
		{ID: "practice", Name: "Try It Out", Kind: KindPractice, Order: 3, RewardStars: 5, CompletionMessage: "Amazing work!"},
		{ID: "puzzle", Name: "Puzzle Time", Kind: KindPuzzle, Order: 4, RewardStars: 7, CompletionMessage: "Puzzle master!"},
		{ID: "complete", Name: "All Done", Kind: KindComplete, Order: 5, RewardStars: 0, CompletionMessage: "You did it!"},
	}
}

func testGraph(t *testing.T) *Graph {
	t.Helper()
	g, err := New("circuit", testStages())
	if err != nil {
		t.Fatalf("build graph: %v", err)
	}
	return g
}

func TestFirstHasNoPredecessor(t *testing.T) {
	g := testGraph(t)

	first := g.First()
	if first.ID != "intro" {
		t.Errorf("first = %q, want intro", first.ID)
	}
	if _, ok := g.Prev(first.ID); ok {
		t.Error("first stage must have no predecessor")
	}
}

func TestTerminalHasNoSuccessor(t *testing.T) {
	g := testGraph(t)

	term := g.Terminal()
	if term.ID != "complete" {
		t.Errorf("terminal = %q, want complete", term.ID)
	}
	if _, ok := g.Next(term.ID); ok {
		t.Error("terminal stage must have no successor")
	}
}

func TestNextWalksInOrder(t *testing.T) {
	g := testGraph(t)

	want := []StageID{"intro", "build", "practice", "puzzle", "complete"}
	cur := g.First()
	for i, id := range want {
		if cur.ID != id {
			t.Fatalf("step %d: got %q, want %q", i, cur.ID, id)
		}
		next, ok := g.Next(cur.ID)
		if i == len(want)-1 {
			if ok {
				t.Fatal("walked past terminal stage")
			}
			break
		}
		if !ok {
			t.Fatalf("no successor after %q", cur.ID)
		}
		cur = next
	}
}

func TestNewSortsByOrder(t *testing.T) {
	stages := testStages()
	// Shuffle the input; the graph must come out ordered.
	stages[0], stages[3] = stages[3], stages[0]
	stages[1], stages[4] = stages[4], stages[1]

	g, err := New("circuit", stages)
	if err != nil {
		t.Fatalf("build graph: %v", err)
	}
	if g.First().ID != "intro" {
		t.Errorf("first = %q, want intro", g.First().ID)
	}
	if g.Terminal().ID != "complete" {
		t.Errorf("terminal = %q, want complete", g.Terminal().ID)
	}
}

func TestGetAndIndexOf(t *testing.T) {
	g := testGraph(t)

	s, ok := g.Get("practice")
	if !ok || s.RewardStars != 5 {
		t.Errorf("Get(practice) = %+v, %v", s, ok)
	}
	if g.IndexOf("practice") != 2 {
		t.Errorf("IndexOf(practice) = %d, want 2", g.IndexOf("practice"))
	}

	if _, ok := g.Get("nonexistent"); ok {
		t.Error("Get of unknown stage should fail")
	}
	if g.IndexOf("nonexistent") != -1 {
		t.Error("IndexOf of unknown stage should be -1")
	}
}

func TestTotalStars(t *testing.T) {
	g := testGraph(t)
	if g.TotalStars() != 16 {
		t.Errorf("total stars = %d, want 16", g.TotalStars())
	}
}
