package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Necesita un Postgres descartable: TEST_DB_DSN=postgres://... go test ./...
func TestRecipesRepo_Postgres(t *testing.T) {
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}

	ctx := context.Background()
	db, err := Open(ctx, dsn)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.ExecContext(ctx, `DROP TABLE IF EXISTS recipes`)
	require.NoError(t, err)
	t.Cleanup(func() { _, _ = db.ExecContext(context.Background(), `DROP TABLE IF EXISTS recipes`) })

	repo := NewRecipesRepo(db)

	created, err := repo.EnsureInitialized(ctx)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.EnsureInitialized(ctx)
	require.NoError(t, err)
	assert.False(t, created)

	items, err := repo.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Arepa de Reina Pepiada", items[0].Name)
	assert.Equal(t, "Ensalada César", items[2].Name)
}
