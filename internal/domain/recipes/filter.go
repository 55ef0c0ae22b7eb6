package recipes

import "strings"

// searchFields son los campos donde busca el filtro.
// El nombre NO se busca.
var searchFields = []func(Recipe) string{
	func(r Recipe) string { return r.Category },
	func(r Recipe) string { return r.Instructions },
	func(r Recipe) string { return r.Ingredients },
	func(r Recipe) string { return r.Difficulty },
}

// Filter devuelve las recetas que contienen query (sin distinguir
// mayúsculas) en alguno de los campos de búsqueda, en el mismo orden.
// Query vacío => todas. No se hace trim: los espacios son texto literal.
func Filter(records []Recipe, query string) []Recipe {
	q := strings.ToLower(query)

	out := make([]Recipe, 0, len(records))
	for _, r := range records {
		if matchesLower(r, q) {
			out = append(out, r)
		}
	}
	return out
}

// Matches indica si una receta pasa el filtro para query.
func Matches(r Recipe, query string) bool {
	return matchesLower(r, strings.ToLower(query))
}

func matchesLower(r Recipe, q string) bool {
	for _, field := range searchFields {
		if strings.Contains(strings.ToLower(field(r)), q) {
			return true
		}
	}
	return false
}
