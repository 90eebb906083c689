package app

import (
	"context"
	"errors"
	"testing"

	"github.com/tinkerlab/tinkeralpha/internal/store"
)

// fakeSnapRepo serves a fixed latest snapshot.
type fakeSnapRepo struct {
	latest *store.Snapshot
	err    error
}

func (f *fakeSnapRepo) Save(context.Context, *store.Snapshot) error { return nil }
func (f *fakeSnapRepo) Prune(context.Context, int) error            { return nil }

func (f *fakeSnapRepo) Latest(context.Context) (*store.Snapshot, error) {
	return f.latest, f.err
}

func TestSnapshotStarsWarmsFromLatest(t *testing.T) {
	repo := &fakeSnapRepo{latest: &store.Snapshot{
		Data: store.SnapshotData{
			Version: 1,
			Stars:   &store.StarsSnapshotData{TotalStars: 9},
		},
	}}

	if got := snapshotStars(context.Background(), repo); got != 9 {
		t.Errorf("snapshot stars = %d, want 9", got)
	}
}

func TestSnapshotStarsDegradesToZero(t *testing.T) {
	cases := []struct {
		name string
		repo store.SnapshotRepo
	}{
		{"nil repo", nil},
		{"no snapshot yet", &fakeSnapRepo{}},
		{"read error", &fakeSnapRepo{err: errors.New("db closed")}},
		{"snapshot without star data", &fakeSnapRepo{latest: &store.Snapshot{}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := snapshotStars(context.Background(), tc.repo); got != 0 {
				t.Errorf("snapshot stars = %d, want 0", got)
			}
		})
	}
}
