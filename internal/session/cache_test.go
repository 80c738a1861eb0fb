package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bima595/SIMS-PPOB-Satria-Abimanyu/internal/model"
)

func TestMemoryUserCacheRoundTrip(t *testing.T) {
	uc := NewMemoryUserCache()
	ctx := context.Background()

	u := model.User{
		Email:        "user@example.com",
		FirstName:    "Budi",
		LastName:     "Santoso",
		ProfileImage: "https://cdn/img.png",
	}
	require.NoError(t, uc.Set(ctx, "tok-1", u))

	got, err := uc.Get(ctx, "tok-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, u, *got, "cached user must round-trip deep-equal")
}

func TestMemoryUserCacheMiss(t *testing.T) {
	uc := NewMemoryUserCache()
	got, err := uc.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryUserCacheDiscardsCorruptEntry(t *testing.T) {
	uc := NewMemoryUserCache()
	uc.put("tok-1", []byte("{not json"))

	got, err := uc.Get(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Nil(t, got, "corrupt entry must read as a miss")

	// The corrupt entry was dropped, not left behind.
	uc.mu.RLock()
	_, ok := uc.entries[cacheKey("tok-1")]
	uc.mu.RUnlock()
	assert.False(t, ok)
}

func TestMemoryUserCacheDelete(t *testing.T) {
	uc := NewMemoryUserCache()
	ctx := context.Background()
	require.NoError(t, uc.Set(ctx, "tok-1", model.User{Email: "a@b.c"}))
	require.NoError(t, uc.Delete(ctx, "tok-1"))

	got, err := uc.Get(ctx, "tok-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}
