package recipes

// NoResultsMessage es el texto que la UI muestra cuando el filtro no deja nada.
const NoResultsMessage = "No se encontraron coincidencias en el manual."

// View es el view model de un ciclo de render.
type View struct {
	RenderID string

	Query   string
	Recipes []Recipe

	Total   int // recetas en el catálogo antes de filtrar
	Matched int

	Empty        bool
	EmptyMessage string

	// Seeded es true si este render creó el catálogo.
	Seeded bool

	// Warning viene seteado si el store no se pudo leer.
	Warning string
}
