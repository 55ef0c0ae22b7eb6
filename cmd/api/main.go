package main

import (
	"context"
	"fmt"
	"os"

	"cookbook/internal/app"
	"cookbook/internal/platform/config"
)

// @title Cookbook API
// @version 1.0
// @description Recetario: catálogo sembrado localmente con búsqueda por texto libre.
// @BasePath /
func main() {
	cfg, err := config.Load(config.NewViper(), "")
	if err != nil {
		// sin config no hay logger todavía
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}
	lg := cfg.Logger().With(map[string]any{"store": cfg.StoreDriver})

	store, closeStore, err := app.OpenStore(context.Background(), cfg)
	if err != nil {
		lg.Error("store error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	err = app.Serve(context.Background(), app.NewServer(cfg, store, lg), lg)
	_ = closeStore()
	if err != nil {
		lg.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
