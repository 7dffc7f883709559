package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jastipid/storefront/internal/apperror"
	"github.com/jastipid/storefront/internal/storage"
)

const (
	keyProfiles = "jastip_profiles"
	keyCurrent  = "jastip_current_profile"
)

type profileList struct {
	SchemaVersion int       `json:"schema_version"`
	Profiles      []Profile `json:"profiles"`
}

type storeRepo struct{ kv storage.Store }

// NewStoreRepository persists profiles in the shared key-value store.
func NewStoreRepository(kv storage.Store) Repository { return &storeRepo{kv: kv} }

func (r *storeRepo) LoadAll(ctx context.Context) ([]Profile, error) {
	raw, err := r.kv.Get(ctx, keyProfiles)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Persist("failed to load profiles", err)
	}

	var list profileList
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, apperror.Persist("corrupt profile list", err)
	}
	if list.SchemaVersion > storage.SchemaVersion {
		return nil, apperror.Persist(
			fmt.Sprintf("profile list schema version %d is newer than supported %d", list.SchemaVersion, storage.SchemaVersion), nil)
	}
	return list.Profiles, nil
}

func (r *storeRepo) SaveAll(ctx context.Context, profiles []Profile) error {
	data, err := json.Marshal(profileList{SchemaVersion: storage.SchemaVersion, Profiles: profiles})
	if err != nil {
		return apperror.Persist("failed to encode profiles", err)
	}
	if err := r.kv.Set(ctx, keyProfiles, string(data)); err != nil {
		return apperror.Persist("failed to save profiles", err)
	}
	return nil
}

func (r *storeRepo) CurrentID(ctx context.Context) (string, error) {
	id, err := r.kv.Get(ctx, keyCurrent)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		return "", apperror.Persist("failed to load current profile id", err)
	}
	return id, nil
}

func (r *storeRepo) SetCurrentID(ctx context.Context, id string) error {
	if err := r.kv.Set(ctx, keyCurrent, id); err != nil {
		return apperror.Persist("failed to save current profile id", err)
	}
	return nil
}

func (r *storeRepo) ClearCurrentID(ctx context.Context) error {
	if err := r.kv.Delete(ctx, keyCurrent); err != nil {
		return apperror.Persist("failed to clear current profile id", err)
	}
	return nil
}
