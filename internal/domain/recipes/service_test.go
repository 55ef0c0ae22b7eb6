package recipes

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"cookbook/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test store (in-memory)
// -------------------------

type testStore struct {
	exists   bool
	items    []Recipe
	initErr  error
	fetchErr error

	initCalls int
}

func (s *testStore) EnsureInitialized(ctx context.Context) (bool, error) {
	s.initCalls++
	if s.initErr != nil {
		return false, s.initErr
	}
	if s.exists {
		return false, nil
	}
	for i, r := range SeedSet() {
		r.ID = int64(i + 1)
		s.items = append(s.items, r)
	}
	s.exists = true
	return true, nil
}

func (s *testStore) FetchAll(ctx context.Context) ([]Recipe, error) {
	if s.fetchErr != nil {
		return nil, s.fetchErr
	}
	return append([]Recipe(nil), s.items...), nil
}

func newTestService(store Store) (*Service, *bytes.Buffer) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Debug, Out: &buf})
	svc := NewService(store, log)
	svc.newID = func() string { return "render-1" }
	return svc, &buf
}

// -------------------------
// Tests
// -------------------------

func TestService_Render_EndToEnd(t *testing.T) {
	store := &testStore{}
	svc, _ := newTestService(store)
	ctx := context.Background()

	v, err := svc.Render(ctx, "")
	require.NoError(t, err)
	assert.True(t, v.Seeded)
	assert.Equal(t, 3, v.Total)
	assert.Equal(t, 3, v.Matched)
	assert.Equal(t, "render-1", v.RenderID)

	v, err = svc.Render(ctx, "Media")
	require.NoError(t, err)
	assert.False(t, v.Seeded)
	assert.Equal(t, []string{"Arepa de Reina Pepiada"}, names(v.Recipes))

	v, err = svc.Render(ctx, "queso")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ensalada César"}, names(v.Recipes))

	v, err = svc.Render(ctx, "Pabellón")
	require.NoError(t, err)
	assert.Empty(t, v.Recipes)
	assert.True(t, v.Empty)
	assert.Equal(t, NoResultsMessage, v.EmptyMessage)
	assert.Equal(t, 3, v.Total)

	assert.Equal(t, 4, store.initCalls, "cada render re-ejecuta la inicialización")
}

func TestService_EnsureInitialized_Idempotent(t *testing.T) {
	store := &testStore{}
	svc, logs := newTestService(store)
	ctx := context.Background()

	created, err := svc.EnsureInitialized(ctx)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.EnsureInitialized(ctx)
	require.NoError(t, err)
	assert.False(t, created)

	items, warn := svc.FetchAll(ctx)
	require.NoError(t, warn)
	assert.Len(t, items, 3)
	assert.Equal(t, 1, strings.Count(logs.String(), "catalog initialized"))
}

func TestService_Render_UnreadableStoreIsWarning(t *testing.T) {
	store := &testStore{exists: true, fetchErr: errors.New("file is not a database")}
	svc, logs := newTestService(store)

	v, err := svc.Render(context.Background(), "")
	require.NoError(t, err)
	assert.NotNil(t, v.Recipes)
	assert.Empty(t, v.Recipes)
	assert.True(t, v.Empty)
	assert.Contains(t, v.Warning, "store unreadable")
	assert.Contains(t, v.Warning, "file is not a database")
	assert.Contains(t, logs.String(), "level=warn")

	_, warn := svc.FetchAll(context.Background())
	assert.ErrorIs(t, warn, ErrStoreUnreadable)
}

func TestService_Render_InitFailureAborts(t *testing.T) {
	store := &testStore{initErr: errors.New("read-only filesystem")}
	svc, logs := newTestService(store)

	_, err := svc.Render(context.Background(), "x")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrStoreUnreadable)
	assert.Contains(t, logs.String(), "render aborted")
	assert.Contains(t, logs.String(), "render_id=render-1")
}

func TestService_FetchAll_NilBecomesEmpty(t *testing.T) {
	svc, _ := newTestService(&testStore{exists: true})

	items, warn := svc.FetchAll(context.Background())
	require.NoError(t, warn)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestSeedSet_Literals(t *testing.T) {
	seed := SeedSet()
	require.Len(t, seed, 3)

	assert.Equal(t, "Arepa de Reina Pepiada", seed[0].Name)
	assert.Equal(t, "Desayunos", seed[0].Category)
	assert.Equal(t, "Harina de maíz, aguacate, pollo, mayonesa", seed[0].Ingredients)
	assert.Equal(t, "30 min", seed[0].PrepTime)
	assert.Equal(t, DifficultyMedium, seed[0].Difficulty)

	assert.Equal(t, "Pabellón Criollo", seed[1].Name)
	assert.Equal(t, "Almuerzos", seed[1].Category)
	assert.Equal(t, "1.5 h", seed[1].PrepTime)
	assert.Equal(t, DifficultyHigh, seed[1].Difficulty)

	assert.Equal(t, "Ensalada César", seed[2].Name)
	assert.Equal(t, "Ensaladas", seed[2].Category)
	assert.Equal(t, "15 min", seed[2].PrepTime)
	assert.Equal(t, DifficultyLow, seed[2].Difficulty)

	for _, r := range seed {
		assert.Zero(t, r.ID)
		assert.NotEmpty(t, r.Instructions)
		assert.NotEmpty(t, r.ImageURL)
	}

	seed[0].Name = "mutated"
	assert.Equal(t, "Arepa de Reina Pepiada", SeedSet()[0].Name)
}
