package store

import (
	"context"
	"fmt"

	"github.com/tinkerlab/tinkeralpha/ent"
	"github.com/tinkerlab/tinkeralpha/ent/profile"
)

// profileRepo implements ProfileRepo using the ent client.
type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Load(ctx context.Context) (*ProfileRecord, error) {
	p, err := r.client.Profile.Query().
		Order(ent.Desc(profile.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query profile: %w", err)
	}
	return &ProfileRecord{
		AuthToken:  p.AuthToken,
		UserRecord: p.UserRecord,
	}, nil
}

func (r *profileRepo) Save(ctx context.Context, rec ProfileRecord) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	// Replace rather than update: the profile row is a singleton.
	if _, err := tx.Profile.Delete().Exec(ctx); err != nil {
		tx.Rollback()
		return fmt.Errorf("clear old profile: %w", err)
	}

	_, err = tx.Profile.Create().
		SetAuthToken(rec.AuthToken).
		SetUserRecord(rec.UserRecord).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("save profile: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit profile: %w", err)
	}
	return nil
}

func (r *profileRepo) Clear(ctx context.Context) error {
	if _, err := r.client.Profile.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear profile: %w", err)
	}
	return nil
}
