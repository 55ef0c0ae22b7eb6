// Package app arma el catálogo y el handler HTTP a partir de la config.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mem "cookbook/internal/adapters/storage/memory"
	pg "cookbook/internal/adapters/storage/postgres"
	"cookbook/internal/adapters/storage/sqlite"
	"cookbook/internal/domain/recipes"
	"cookbook/internal/platform/config"
	"cookbook/internal/platform/logger"
	"cookbook/internal/router"
)

// OpenStore devuelve el store elegido por cfg.StoreDriver y una función de cierre.
func OpenStore(ctx context.Context, cfg config.Config) (recipes.Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.StoreDriver {
	case config.DriverSQLite:
		return sqlite.NewRecipesRepo(cfg.DBPath), noop, nil
	case config.DriverPostgres:
		db, err := pg.Open(ctx, cfg.DBDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		return pg.NewRecipesRepo(db), db.Close, nil
	case config.DriverMemory:
		return mem.NewRecipeStore(), noop, nil
	default:
		return nil, nil, fmt.Errorf("%w: unknown store_driver %q", config.ErrInvalidConfig, cfg.StoreDriver)
	}
}

// NewServer arma el *http.Server con los timeouts de siempre.
func NewServer(cfg config.Config, store recipes.Store, log logger.Logger) *http.Server {
	return &http.Server{
		Addr: cfg.Addr(),
		Handler: router.NewRouter(router.Options{
			Store:       store,
			Logger:      log,
			CORSOrigins: cfg.CORSOrigins,
		}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
}

const shutdownTimeout = 5 * time.Second

// Serve corre srv hasta que ctx se cancele o llegue SIGINT/SIGTERM, y después
// hace Shutdown. Un cierre ordenado devuelve nil.
func Serve(ctx context.Context, srv *http.Server, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	log.Info("shutting down", nil)
	return srv.Shutdown(shutdownCtx)
}
