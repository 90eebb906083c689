package stagegraph

import (
	"strings"
	"testing"
)

func TestValidate_DuplicateID(t *testing.T) {
	stages := testStages()
	stages[1].ID = "intro"

	_, err := New("circuit", stages)
	if err == nil || !strings.Contains(err.Error(), "duplicate stage ID") {
		t.Errorf("expected duplicate ID error, got %v", err)
	}
}

func TestValidate_DuplicateOrder(t *testing.T) {
	stages := testStages()
	stages[2].Order = stages[1].Order

	_, err := New("circuit", stages)
	if err == nil || !strings.Contains(err.Error(), "duplicate stage order") {
		t.Errorf("expected duplicate order error, got %v", err)
	}
}

func TestValidate_NegativeReward(t *testing.T) {
	stages := testStages()
	stages[3].RewardStars = -1

	_, err := New("circuit", stages)
	if err == nil || !strings.Contains(err.Error(), "RewardStars") {
		t.Errorf("expected reward error, got %v", err)
	}
}

func TestValidate_Shape(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func([]Stage) []Stage
		wantErr string
	}{
		{
			name: "missing intro first",
			mutate: func(s []Stage) []Stage {
				s[0].Kind = KindHandsOn
				return s
			},
			wantErr: "must be an intro stage",
		},
		{
			name: "missing terminal completion",
			mutate: func(s []Stage) []Stage {
				s[4].Kind = KindPuzzle
				return s
			},
			wantErr: "must be a completion stage",
		},
		{
			name: "two completion stages",
			mutate: func(s []Stage) []Stage {
				s[3].Kind = KindComplete
				return s
			},
			wantErr: "exactly one completion stage",
		},
		{
			name: "too few stages",
			mutate: func(s []Stage) []Stage {
				return s[:1]
			},
			wantErr: "at least an entry and a terminal",
		},
		{
			name: "empty activity ID is separate check",
			mutate: func(s []Stage) []Stage {
				return s
			},
			wantErr: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New("circuit", tt.mutate(testStages()))
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("got %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_EmptyActivityID(t *testing.T) {
	_, err := New("", testStages())
	if err == nil || !strings.Contains(err.Error(), "activity ID") {
		t.Errorf("expected activity ID error, got %v", err)
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	stages := testStages()
	stages[1].ID = "intro"
	stages[2].RewardStars = -3

	_, err := New("circuit", stages)
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "duplicate stage ID") || !strings.Contains(msg, "RewardStars") {
		t.Errorf("expected combined error listing all problems, got: %s", msg)
	}
}
