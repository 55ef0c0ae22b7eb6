package sqlite

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"cookbook/internal/domain/recipes"
)

const schema = `
	CREATE TABLE IF NOT EXISTS recipes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		category TEXT,
		ingredients TEXT,
		instructions TEXT,
		image_url TEXT,
		prep_time TEXT,
		difficulty TEXT
	)
`

// RecipesRepo guarda el catálogo en un archivo sqlite local.
// Cada llamada abre, usa y cierra el archivo.
type RecipesRepo struct {
	path string
	stat func(string) (os.FileInfo, error)
}

func NewRecipesRepo(path string) *RecipesRepo {
	return &RecipesRepo{path: path, stat: os.Stat}
}

// Path devuelve la ruta del archivo.
func (r *RecipesRepo) Path() string { return r.path }

// EnsureInitialized hace un único chequeo de existencia del archivo; si no
// existe crea la tabla y carga el set inicial en una sola transacción.
// Dos primeros arranques simultáneos pueden competir: no hay lock.
func (r *RecipesRepo) EnsureInitialized(ctx context.Context) (bool, error) {
	if strings.TrimSpace(r.path) == "" {
		return false, errors.New("sqlite: empty path")
	}

	_, err := r.stat(r.path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("sqlite: stat %s: %w", r.path, err)
	}

	db, err := open(ctx, r.path, "rwc")
	if err != nil {
		return false, err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schema); err != nil {
		return false, fmt.Errorf("sqlite: create schema: %w", err)
	}

	args := make([]any, 0, len(recipes.SeedSet())*7)
	values := make([]string, 0, len(recipes.SeedSet()))
	for _, p := range recipes.SeedSet() {
		values = append(values, "(?, ?, ?, ?, ?, ?, ?)")
		args = append(args,
			p.Name,
			p.Category,
			p.Ingredients,
			p.Instructions,
			p.ImageURL,
			p.PrepTime,
			p.Difficulty,
		)
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO recipes (name, category, ingredients, instructions, image_url, prep_time, difficulty)
		VALUES `+strings.Join(values, ", "), args...); err != nil {
		return false, fmt.Errorf("sqlite: insert seed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}

func (r *RecipesRepo) FetchAll(ctx context.Context) ([]recipes.Recipe, error) {
	db, err := open(ctx, r.path, "ro")
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `
		SELECT
			id, name,
			COALESCE(category, ''),
			COALESCE(ingredients, ''),
			COALESCE(instructions, ''),
			COALESCE(image_url, ''),
			COALESCE(prep_time, ''),
			COALESCE(difficulty, '')
		FROM recipes
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]recipes.Recipe, 0)
	for rows.Next() {
		var p recipes.Recipe
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Category,
			&p.Ingredients,
			&p.Instructions,
			&p.ImageURL,
			&p.PrepTime,
			&p.Difficulty,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}
