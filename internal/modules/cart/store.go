package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jastipid/storefront/internal/apperror"
	"github.com/jastipid/storefront/internal/storage"
)

const keyCart = "jastip_cart"

type cartDoc struct {
	SchemaVersion int             `json:"schema_version"`
	Lines         map[string]Line `json:"lines"`
}

type storeRepo struct{ kv storage.Store }

// NewStoreRepository persists the cart in the shared key-value store.
func NewStoreRepository(kv storage.Store) Repository { return &storeRepo{kv: kv} }

func (r *storeRepo) Load(ctx context.Context) (map[string]Line, error) {
	raw, err := r.kv.Get(ctx, keyCart)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return map[string]Line{}, nil
	}
	if err != nil {
		return nil, apperror.Persist("failed to load cart", err)
	}

	var doc cartDoc
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, apperror.Persist("corrupt cart", err)
	}
	if doc.SchemaVersion > storage.SchemaVersion {
		return nil, apperror.Persist(
			fmt.Sprintf("cart schema version %d is newer than supported %d", doc.SchemaVersion, storage.SchemaVersion), nil)
	}
	if doc.Lines == nil {
		doc.Lines = map[string]Line{}
	}
	return doc.Lines, nil
}

func (r *storeRepo) Save(ctx context.Context, lines map[string]Line) error {
	data, err := json.Marshal(cartDoc{SchemaVersion: storage.SchemaVersion, Lines: lines})
	if err != nil {
		return apperror.Persist("failed to encode cart", err)
	}
	if err := r.kv.Set(ctx, keyCart, string(data)); err != nil {
		return apperror.Persist("failed to save cart", err)
	}
	return nil
}

func (r *storeRepo) Clear(ctx context.Context) error {
	if err := r.kv.Delete(ctx, keyCart); err != nil {
		return apperror.Persist("failed to clear cart", err)
	}
	return nil
}
