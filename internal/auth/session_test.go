package auth

import (
	"context"
	"testing"

	"github.com/tinkerlab/tinkeralpha/internal/store"
)

// memProfiles is an in-memory ProfileRepo for tests.
type memProfiles struct {
	rec *store.ProfileRecord
}

func (m *memProfiles) Load(ctx context.Context) (*store.ProfileRecord, error) {
	if m.rec == nil {
		return nil, nil
	}
	cp := *m.rec
	return &cp, nil
}

func (m *memProfiles) Save(ctx context.Context, rec store.ProfileRecord) error {
	m.rec = &rec
	return nil
}

func (m *memProfiles) Clear(ctx context.Context) error {
	m.rec = nil
	return nil
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
	}{
		{"STUDENT", RoleStudent},
		{"PARENT", RoleParent},
		{"TEACHER", RoleTeacher},
		{"", RoleUnknown},
		{"teacher", RoleUnknown}, // case-sensitive, typos never match
		{"ADMIN", RoleUnknown},
	}
	for _, tt := range tests {
		if got := ParseRole(tt.in); got != tt.want {
			t.Errorf("ParseRole(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLoad_NoProfile(t *testing.T) {
	s, err := Load(context.Background(), &memProfiles{}, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.IsAuthenticated() {
		t.Error("expected unauthenticated session with no profile")
	}
	if s.CurrentRole() != RoleUnknown {
		t.Errorf("role = %q, want UNKNOWN", s.CurrentRole())
	}
}

func TestLoad_ValidProfile(t *testing.T) {
	profiles := &memProfiles{rec: &store.ProfileRecord{
		AuthToken:  "tok",
		UserRecord: `{"name":"Sonali","role":"TEACHER"}`,
	}}

	s, err := Load(context.Background(), profiles, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !s.IsAuthenticated() {
		t.Error("expected authenticated session")
	}
	if s.CurrentRole() != RoleTeacher {
		t.Errorf("role = %q, want TEACHER", s.CurrentRole())
	}
	if s.LearnerName() != "Sonali" {
		t.Errorf("name = %q, want Sonali", s.LearnerName())
	}
}

func TestLoad_MalformedRecordDegradesToUnknown(t *testing.T) {
	tests := []struct {
		name   string
		record string
	}{
		{"invalid json", `{not json`},
		{"missing role", `{"name":"Sonali"}`},
		{"bad role value", `{"name":"Sonali","role":"WIZARD"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profiles := &memProfiles{rec: &store.ProfileRecord{
				AuthToken:  "tok",
				UserRecord: tt.record,
			}}
			s, err := Load(context.Background(), profiles, nil)
			if err != nil {
				t.Fatalf("malformed record must not error: %v", err)
			}
			if !s.IsAuthenticated() {
				t.Error("token present: session should still be authenticated")
			}
			if s.CurrentRole() != RoleUnknown {
				t.Errorf("role = %q, want UNKNOWN", s.CurrentRole())
			}
		})
	}
}

func TestSignInSignOut(t *testing.T) {
	profiles := &memProfiles{}
	ctx := context.Background()

	s, err := Load(ctx, profiles, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if err := s.SignIn(ctx, "Ravi", RoleStudent); err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if !s.IsAuthenticated() {
		t.Error("expected authenticated after sign-in")
	}
	if s.CurrentRole() != RoleStudent {
		t.Errorf("role = %q, want STUDENT", s.CurrentRole())
	}
	if profiles.rec == nil || profiles.rec.AuthToken == "" {
		t.Error("expected persisted credential after sign-in")
	}

	// A reloaded session sees the persisted state.
	s2, err := Load(ctx, profiles, nil)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !s2.IsAuthenticated() || s2.CurrentRole() != RoleStudent {
		t.Error("expected reloaded session to be authenticated STUDENT")
	}

	if err := s.SignOut(ctx); err != nil {
		t.Fatalf("sign out: %v", err)
	}
	if s.IsAuthenticated() {
		t.Error("expected unauthenticated after sign-out")
	}
	if s.CurrentRole() != RoleUnknown {
		t.Errorf("role after sign-out = %q, want UNKNOWN", s.CurrentRole())
	}
	if s.LearnerName() != "" {
		t.Errorf("name after sign-out = %q, want empty", s.LearnerName())
	}
	if profiles.rec != nil {
		t.Error("expected profile cleared after sign-out")
	}
}
