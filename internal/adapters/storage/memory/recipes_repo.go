package memory

import (
	"context"
	"sync"

	"cookbook/internal/domain/recipes"
)

// RecipeStore es un catálogo en memoria. El "archivo" existe desde el primer
// EnsureInitialized (o desde el constructor si se precarga).
type RecipeStore struct {
	mu          sync.RWMutex
	initialized bool
	nextID      int64
	items       []recipes.Recipe

	// FailFetch simula un store ilegible (tests).
	FailFetch error
}

func NewRecipeStore() *RecipeStore {
	return &RecipeStore{nextID: 1}
}

// NewRecipeStoreWith arranca ya inicializado con items (IDs asignados acá).
func NewRecipeStoreWith(items []recipes.Recipe) *RecipeStore {
	s := NewRecipeStore()
	s.insertLocked(items)
	s.initialized = true
	return s
}

func (s *RecipeStore) EnsureInitialized(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return false, nil
	}
	s.insertLocked(recipes.SeedSet())
	s.initialized = true
	return true, nil
}

func (s *RecipeStore) FetchAll(ctx context.Context) ([]recipes.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.FailFetch != nil {
		return nil, s.FailFetch
	}

	out := make([]recipes.Recipe, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *RecipeStore) insertLocked(items []recipes.Recipe) {
	for _, r := range items {
		r.ID = s.nextID
		s.nextID++
		s.items = append(s.items, r)
	}
}
