package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProfileLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	// Signed out: no profile.
	rec, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if rec != nil {
		t.Fatal("expected nil profile when none stored")
	}

	// Sign in.
	err = repo.Save(ctx, ProfileRecord{
		AuthToken:  "tok-123",
		UserRecord: `{"name":"Sonali","role":"STUDENT"}`,
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	rec, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if rec == nil {
		t.Fatal("expected stored profile")
	}
	if rec.AuthToken != "tok-123" {
		t.Errorf("auth token = %q, want %q", rec.AuthToken, "tok-123")
	}

	// Saving again replaces rather than accumulates.
	err = repo.Save(ctx, ProfileRecord{
		AuthToken:  "tok-456",
		UserRecord: `{"name":"Sonali","role":"TEACHER"}`,
	})
	if err != nil {
		t.Fatalf("re-save: %v", err)
	}
	rec, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load after re-save: %v", err)
	}
	if rec.AuthToken != "tok-456" {
		t.Errorf("auth token = %q, want %q", rec.AuthToken, "tok-456")
	}

	// Sign out clears token and record together.
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	rec, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load after clear: %v", err)
	}
	if rec != nil {
		t.Fatal("expected nil profile after clear")
	}
}

func TestStageEventsAndStarTotals(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []StageEventData{
		{RunID: "r1", ActivityID: "circuit", StageID: "build", StageName: "Build Your Circuit", Stars: 3, Evidence: "confirm-button"},
		{RunID: "r1", ActivityID: "circuit", StageID: "practice", StageName: "Interactive Activity", Stars: 5, Evidence: "confirm-button"},
		{RunID: "r2", ActivityID: "motor", StageID: "build", StageName: "Build Your Motor", Stars: 3, Evidence: "confirm-button"},
		{RunID: "r1", ActivityID: "circuit", StageID: "puzzle", StageName: "Puzzle Challenge", Stars: 7, ActivityComplete: true, Evidence: "confirm-button"},
	}
	for _, e := range events {
		if err := repo.AppendStageEvent(ctx, e); err != nil {
			t.Fatalf("append stage event: %v", err)
		}
	}

	byActivity, total, err := repo.StarTotals(ctx)
	if err != nil {
		t.Fatalf("star totals: %v", err)
	}
	if total != 18 {
		t.Errorf("total stars = %d, want 18", total)
	}
	if byActivity["circuit"] != 15 {
		t.Errorf("circuit stars = %d, want 15", byActivity["circuit"])
	}
	if byActivity["motor"] != 3 {
		t.Errorf("motor stars = %d, want 3", byActivity["motor"])
	}

	done, err := repo.CompletedActivities(ctx)
	if err != nil {
		t.Fatalf("completed activities: %v", err)
	}
	if !done["circuit"] {
		t.Error("expected circuit to be complete")
	}
	if done["motor"] {
		t.Error("motor should not be complete")
	}
}

func TestStageEventSequenceOrdering(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendStageEvent(ctx, StageEventData{
			RunID: "r1", ActivityID: "robot", StageID: "intro", Stars: 1,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	records, err := repo.QueryStageEvents(ctx, QueryOpts{ActivityID: "robot"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	// Newest first: sequences strictly decreasing.
	for i := 1; i < len(records); i++ {
		if records[i].Sequence >= records[i-1].Sequence {
			t.Errorf("records not ordered newest-first: seq[%d]=%d, seq[%d]=%d",
				i-1, records[i-1].Sequence, i, records[i].Sequence)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: 1,
			Stars:   &StarsSnapshotData{TotalStars: 15, ByActivity: map[string]int{"circuit": 15}},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Stars == nil || snap.Data.Stars.TotalStars != 15 {
		t.Errorf("stars data = %+v, want total 15", snap.Data.Stars)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 2); err != nil {
		t.Fatalf("prune: %v", err)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest after prune: %v", err)
	}
	if snap == nil || snap.Sequence != 4 {
		t.Fatalf("latest after prune = %+v, want sequence 4", snap)
	}
}
