package recipes

import (
	"context"
	"errors"
)

// ErrStoreUnreadable cubre archivo borrado, corrupto o sin permisos.
// Es recuperable: el render sigue con un catálogo vacío.
var ErrStoreUnreadable = errors.New("store unreadable")

// Store es el puerto de persistencia del catálogo.
type Store interface {
	// EnsureInitialized crea el esquema y carga el set inicial solo si el
	// store todavía no existe. Devuelve true si lo creó en esta llamada.
	EnsureInitialized(ctx context.Context) (bool, error)

	// FetchAll devuelve todas las recetas en orden de creación.
	FetchAll(ctx context.Context) ([]Recipe, error)
}
