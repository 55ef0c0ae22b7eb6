package recipes

import (
	"context"
	"fmt"

	"cookbook/internal/platform/logger"

	"github.com/google/uuid"
)

type Service struct {
	store Store
	log   logger.Logger
	newID func() string
}

func NewService(store Store, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		store: store,
		log:   log,
		newID: uuid.NewString,
	}
}

// EnsureInitialized es idempotente; los errores acá no se recuperan.
func (s *Service) EnsureInitialized(ctx context.Context) (bool, error) {
	created, err := s.store.EnsureInitialized(ctx)
	if err != nil {
		return false, fmt.Errorf("initialize catalog: %w", err)
	}
	if created {
		s.log.Info("catalog initialized", map[string]any{"recipes": len(SeedSet())})
	}
	return created, nil
}

// FetchAll nunca corta el render: si el store falla devuelve un slice vacío
// y un warning que envuelve ErrStoreUnreadable.
func (s *Service) FetchAll(ctx context.Context) ([]Recipe, error) {
	items, err := s.store.FetchAll(ctx)
	if err != nil {
		s.log.Warn("catalog unreadable", map[string]any{"error": err.Error()})
		return []Recipe{}, fmt.Errorf("%w: %v", ErrStoreUnreadable, err)
	}
	if items == nil {
		items = []Recipe{}
	}
	return items, nil
}

// Render corre el pipeline completo de una interacción:
// inicializar, leer, filtrar y armar el view model.
func (s *Service) Render(ctx context.Context, query string) (View, error) {
	v := View{
		RenderID: s.newID(),
		Query:    query,
	}
	log := s.log.With(map[string]any{"render_id": v.RenderID})

	created, err := s.EnsureInitialized(ctx)
	if err != nil {
		log.Error("render aborted", map[string]any{"error": err.Error()})
		return View{}, err
	}
	v.Seeded = created

	all, warn := s.FetchAll(ctx)
	if warn != nil {
		v.Warning = warn.Error()
	}

	v.Recipes = Filter(all, query)
	v.Total = len(all)
	v.Matched = len(v.Recipes)
	if v.Matched == 0 {
		v.Empty = true
		v.EmptyMessage = NoResultsMessage
	}

	log.Debug("render done", map[string]any{
		"query":   query,
		"total":   v.Total,
		"matched": v.Matched,
	})
	return v, nil
}
