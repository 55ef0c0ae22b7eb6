// Command cookbook es el CLI del recetario: inicializa el catálogo, busca,
// exporta y levanta el server HTTP.
package main

import (
	"context"
	"fmt"
	"os"

	"cookbook/internal/app"
	"cookbook/internal/domain/recipes"
	"cookbook/internal/platform/config"
	"cookbook/internal/platform/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cli junta el estado de una invocación: viper y flags no se comparten
// entre ejecuciones.
type cli struct {
	v          *viper.Viper
	configFile string
}

func newRootCmd() *cobra.Command {
	c := &cli{v: config.NewViper()}

	root := &cobra.Command{
		Use:   "cookbook",
		Short: "Recetario: catálogo local con búsqueda por texto libre",
		Long: `cookbook guarda un recetario en un archivo local (sqlite por defecto),
lo siembra con tres recetas la primera vez y permite buscar por
categoría, ingredientes, instrucciones o dificultad.

Examples:
  cookbook init
  cookbook search queso
  cookbook search --server http://localhost:8080 almuerzos
  cookbook export --format yaml
  cookbook serve --port 9090`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.configFile, "config", "", "config file (default ./cookbook.yaml if present)")
	pf.String("store-driver", "", "sqlite|postgres|memory")
	pf.String("db-path", "", "sqlite file path (default cookbook.db)")
	pf.String("db-dsn", "", "postgres DSN")
	pf.String("log-level", "", "debug|info|warn|error")
	pf.String("log-format", "", "text|json")

	c.bindFlag(root, "store_driver", "store-driver")
	c.bindFlag(root, "db_path", "db-path")
	c.bindFlag(root, "db_dsn", "db-dsn")
	c.bindFlag(root, "log_level", "log-level")
	c.bindFlag(root, "log_format", "log-format")

	root.AddCommand(newInitCmd(c), newSearchCmd(c), newExportCmd(c), newServeCmd(c))
	return root
}

func (c *cli) bindFlag(cmd *cobra.Command, key, flag string) {
	if err := c.v.BindPFlag(key, cmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}

// session es lo que necesita cada subcomando que toca el catálogo.
type session struct {
	cfg   config.Config
	log   logger.Logger
	store recipes.Store
	svc   *recipes.Service
	close func() error
}

func (c *cli) newSession(ctx context.Context) (*session, error) {
	cfg, err := config.Load(c.v, c.configFile)
	if err != nil {
		return nil, err
	}
	lg := cfg.Logger()

	store, closeFn, err := app.OpenStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &session{
		cfg:   cfg,
		log:   lg,
		store: store,
		svc:   recipes.NewService(store, lg),
		close: closeFn,
	}, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, failStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}
