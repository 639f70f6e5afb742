package repository

import (
	"context"
	"fmt"

	"github.com/zakispin/spinshop/pkg/kv"
)

const identityKey = "spinshop:identity"

// IdentityRepository persists the signed-in user's display identity.
// Authentication itself happens at an external provider; the core only
// ever sees the opaque display string.
type IdentityRepository struct {
	store kv.Store
}

// NewIdentityRepository creates an IdentityRepository on the given store.
func NewIdentityRepository(store kv.Store) *IdentityRepository {
	return &IdentityRepository{store: store}
}

// Save records the display identity of the signed-in user.
func (r *IdentityRepository) Save(ctx context.Context, displayName string) error {
	if err := r.store.Set(ctx, identityKey, []byte(displayName), 0); err != nil {
		return fmt.Errorf("save identity: %w", err)
	}
	return nil
}

// Load returns the display identity, with found=false when nobody is
// signed in.
func (r *IdentityRepository) Load(ctx context.Context) (string, bool, error) {
	data, found, err := r.store.Get(ctx, identityKey)
	if err != nil {
		return "", false, fmt.Errorf("load identity: %w", err)
	}
	if !found {
		return "", false, nil
	}
	return string(data), true, nil
}

// Delete clears the identity on logout. Idempotent.
func (r *IdentityRepository) Delete(ctx context.Context) error {
	if err := r.store.Delete(ctx, identityKey); err != nil {
		return fmt.Errorf("delete identity: %w", err)
	}
	return nil
}
