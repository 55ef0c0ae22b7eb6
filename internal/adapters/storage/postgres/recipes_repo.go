package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"cookbook/internal/domain/recipes"
)

type RecipesRepo struct {
	db *sql.DB
}

func NewRecipesRepo(db *sql.DB) *RecipesRepo {
	return &RecipesRepo{db: db}
}

// EnsureInitialized usa la existencia de la tabla como "el store existe".
// Esquema y set inicial se commitean juntos.
func (r *RecipesRepo) EnsureInitialized(ctx context.Context) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx,
		`SELECT to_regclass('recipes') IS NOT NULL`,
	).Scan(&exists); err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS recipes (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			category TEXT,
			ingredients TEXT,
			instructions TEXT,
			image_url TEXT,
			prep_time TEXT,
			difficulty TEXT
		)
	`); err != nil {
		return false, fmt.Errorf("postgres: create schema: %w", err)
	}

	seed := recipes.SeedSet()
	args := make([]any, 0, len(seed)*7)
	values := make([]string, 0, len(seed))
	argN := 1
	for _, p := range seed {
		values = append(values, fmt.Sprintf("($%d,$%d,$%d,$%d,$%d,$%d,$%d)",
			argN, argN+1, argN+2, argN+3, argN+4, argN+5, argN+6))
		argN += 7
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
		VALUES `+strings.Join(values, ","), args...); err != nil {
		return false, fmt.Errorf("postgres: insert seed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}

func (r *RecipesRepo) FetchAll(ctx context.Context) ([]recipes.Recipe, error) {
	rows, err := r.db.QueryContext(ctx, `
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
