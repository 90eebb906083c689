package mascot

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/tinkerlab/tinkeralpha/internal/activities"
	"github.com/tinkerlab/tinkeralpha/internal/llm"
	"github.com/tinkerlab/tinkeralpha/internal/stagegraph"
)

func testStage(t *testing.T) (activities.Activity, int) {
	t.Helper()
	a, err := activities.Get("circuit")
	if err != nil {
		t.Fatal(err)
	}
	return a, 0
}

func TestHintWithProvider(t *testing.T) {
	content, _ := json.Marshal(map[string]string{
		"hint":  "Look at the battery ends.",
		"cheer": "You've got this!",
	})
	mock := llm.NewMockProvider(llm.MockReply{Content: content})
	svc := NewService(mock, DefaultConfig())

	a, _ := testStage(t)
	build, _ := a.Graph.Get("build")

	hint, err := svc.Hint(context.Background(), a, build)
	if err != nil {
		t.Fatalf("hint: %v", err)
	}
	if hint != "Look at the battery ends. You've got this!" {
		t.Errorf("hint = %q", hint)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("provider calls = %d, want 1", len(mock.Calls))
	}
	sent := mock.Calls[0]
	if sent.Schema != HintSchema {
		t.Error("prompt should carry the hint schema")
	}
	if !strings.Contains(sent.User, build.Name) {
		t.Error("prompt should name the current stage")
	}
}

func TestHintWithoutProviderUsesCannedLine(t *testing.T) {
	svc := NewService(nil, DefaultConfig())

	a, _ := testStage(t)
	for _, id := range []string{"intro", "build", "practice", "puzzle"} {
		st, ok := a.Graph.Get(stagegraph.StageID(id))
		if !ok {
			t.Fatalf("missing stage %s", id)
		}
		hint, err := svc.Hint(context.Background(), a, st)
		if err != nil {
			t.Fatalf("%s: %v", id, err)
		}
		if hint == "" {
			t.Errorf("%s: empty canned hint", id)
		}
	}
}

func TestHintProviderErrorSurfaces(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue returns provider unavailable
	svc := NewService(mock, DefaultConfig())

	a, _ := testStage(t)
	if _, err := svc.Hint(context.Background(), a, a.Graph.First()); err == nil {
		t.Error("expected an error when the provider fails")
	}
}

func TestCheerVariesByKind(t *testing.T) {
	svc := NewService(nil, DefaultConfig())
	a, _ := testStage(t)

	puzzle, _ := a.Graph.Get("puzzle")
	terminal := a.Graph.Terminal()

	if svc.Cheer(puzzle) == svc.Cheer(terminal) {
		t.Error("puzzle and completion cheers should differ")
	}
}
