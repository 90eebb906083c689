// Package auth holds the process-wide session: the authentication
// credential and the role claim read by every role-aware component.
// Sign-in and sign-out are the only writers; everything else takes
// read-only snapshots. State is persisted through the store's profile
// record so a session survives restarts until explicit sign-out.
package auth

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/tinkerlab/tinkeralpha/internal/store"
)

// UserRecord is the structured user record stored alongside the credential.
type UserRecord struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// Session is the single process-wide authentication context.
// There is exactly one logical writer (sign-in/sign-out); reads are
// instantaneous snapshots, so no locking is needed.
type Session struct {
	profiles store.ProfileRepo
	events   store.EventRepo

	authenticated bool
	learnerName   string
	role          Role
}

// Load builds a Session from the persisted profile record.
// A missing profile yields an unauthenticated session. A present token
// with a malformed user record yields an authenticated session with
// RoleUnknown: degraded, never an error.
func Load(ctx context.Context, profiles store.ProfileRepo, events store.EventRepo) (*Session, error) {
	s := &Session{profiles: profiles, events: events, role: RoleUnknown}

	rec, err := profiles.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if rec == nil || rec.AuthToken == "" {
		return s, nil
	}

	s.authenticated = true
	s.learnerName, s.role = parseUserRecord(rec.UserRecord)
	return s, nil
}

// IsAuthenticated reports whether an authentication token exists.
func (s *Session) IsAuthenticated() bool {
	return s.authenticated
}

// CurrentRole returns the session's role claim.
// Returns RoleUnknown when unauthenticated or the stored record is malformed.
func (s *Session) CurrentRole() Role {
	if !s.authenticated {
		return RoleUnknown
	}
	return s.role
}

// LearnerName returns the signed-in learner's display name, or "".
func (s *Session) LearnerName() string {
	if !s.authenticated {
		return ""
	}
	return s.learnerName
}

// SignIn issues a fresh credential, persists the user record, and marks
// the session authenticated.
func (s *Session) SignIn(ctx context.Context, name string, role Role) error {
	record, err := json.Marshal(UserRecord{Name: name, Role: string(role)})
	if err != nil {
		return fmt.Errorf("marshal user record: %w", err)
	}

	err = s.profiles.Save(ctx, store.ProfileRecord{
		AuthToken:  uuid.NewString(),
		UserRecord: string(record),
	})
	if err != nil {
		return fmt.Errorf("persist profile: %w", err)
	}

	s.authenticated = true
	s.learnerName = name
	s.role = role

	if s.events != nil {
		_ = s.events.AppendSessionEvent(ctx, store.SessionEventData{
			Action:      "signin",
			LearnerName: name,
			Role:        string(role),
		})
	}
	return nil
}

// SignOut clears the credential and the user record together and resets
// the in-memory state. After SignOut the session reads as unauthenticated.
func (s *Session) SignOut(ctx context.Context) error {
	if err := s.profiles.Clear(ctx); err != nil {
		return fmt.Errorf("clear profile: %w", err)
	}

	prevRole := s.role
	s.authenticated = false
	s.learnerName = ""
	s.role = RoleUnknown

	if s.events != nil {
		_ = s.events.AppendSessionEvent(ctx, store.SessionEventData{
			Action: "signout",
			Role:   string(prevRole),
		})
	}
	return nil
}

// parseUserRecord extracts name and role from the stored JSON record.
// Malformed JSON or a missing role degrade to RoleUnknown.
func parseUserRecord(raw string) (string, Role) {
	var rec UserRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return "", RoleUnknown
	}
	return rec.Name, ParseRole(rec.Role)
}
