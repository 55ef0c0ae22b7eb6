package memory

import (
	"context"
	"errors"
	"testing"

	"cookbook/internal/domain/recipes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeStore_EnsureInitialized_Idempotent(t *testing.T) {
	ctx := context.Background()
	s := NewRecipeStore()

	created, err := s.EnsureInitialized(ctx)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = s.EnsureInitialized(ctx)
	require.NoError(t, err)
	assert.False(t, created)

	items, err := s.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	for i, r := range items {
		assert.Equal(t, int64(i+1), r.ID)
		assert.Equal(t, recipes.SeedSet()[i].Name, r.Name)
	}
}

func TestRecipeStore_FetchAll_ReturnsCopy(t *testing.T) {
	s := NewRecipeStoreWith([]recipes.Recipe{{Name: "Cachapa"}})

	items, err := s.FetchAll(context.Background())
	require.NoError(t, err)
	items[0].Name = "changed"

	again, err := s.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Cachapa", again[0].Name)

	created, err := s.EnsureInitialized(context.Background())
	require.NoError(t, err)
	assert.False(t, created, "precargado cuenta como existente")
}

func TestRecipeStore_FailFetch(t *testing.T) {
	s := NewRecipeStore()
	s.FailFetch = errors.New("disk gone")

	_, err := s.FetchAll(context.Background())
	require.EqualError(t, err, "disk gone")
}
