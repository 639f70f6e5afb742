package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zakispin/spinshop/internal/model"
	"github.com/zakispin/spinshop/pkg/kv"
)

func TestOfferRepository_SaveLoadRoundTrip(t *testing.T) {
	store := kv.NewMemoryStore()
	repo := NewOfferRepository(store)
	ctx := context.Background()

	want := &model.Offer{
		Kind:      model.KindDiscount,
		Magnitude: 30,
		Label:     "30% off all products",
		ExpiresAt: time.Now().Add(24 * time.Hour).UTC().Truncate(time.Millisecond),
	}
	require.NoError(t, repo.Save(ctx, want, 24*time.Hour))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want.Kind, got.Kind)
	assert.Equal(t, want.Magnitude, got.Magnitude)
	assert.Equal(t, want.Label, got.Label)
	assert.True(t, want.ExpiresAt.Equal(got.ExpiresAt))
}

func TestOfferRepository_LoadAbsent(t *testing.T) {
	repo := NewOfferRepository(kv.NewMemoryStore())

	offer, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.Nil(t, offer)
}

func TestOfferRepository_CorruptedRecordIsDiscarded(t *testing.T) {
	store := kv.NewMemoryStore()
	repo := NewOfferRepository(store)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "spinshop:offer", []byte("{broken"), 0))

	offer, err := repo.Load(ctx)
	require.NoError(t, err, "corruption is absorbed, not surfaced")
	assert.Nil(t, offer)

	_, found, err := store.Get(ctx, "spinshop:offer")
	require.NoError(t, err)
	assert.False(t, found, "the corrupted record must be deleted")
}

func TestOfferRepository_DeleteIsIdempotent(t *testing.T) {
	repo := NewOfferRepository(kv.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx))
	require.NoError(t, repo.Delete(ctx))
}

func TestOfferRepository_StoreTTLEvictsRecord(t *testing.T) {
	store := kv.NewMemoryStore()
	repo := NewOfferRepository(store)
	ctx := context.Background()

	offer := &model.Offer{Kind: model.KindFreeShipping, ExpiresAt: time.Now().Add(30 * time.Millisecond)}
	require.NoError(t, repo.Save(ctx, offer, 30*time.Millisecond))

	time.Sleep(50 * time.Millisecond)

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got, "the store must evict the record after its TTL")
}
