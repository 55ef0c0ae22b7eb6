package recipes

// Etiquetas de dificultad usadas por el set inicial.
// Es texto libre: cualquier otro valor es válido.
const (
	DifficultyLow    = "Baja"
	DifficultyMedium = "Media"
	DifficultyHigh   = "Alta"
)

// Recipe es un plato del recetario.
// Todos los campos de texto pueden venir vacíos, pero nunca faltan.
type Recipe struct {
	ID int64 // lo asigna el store al crear; inmutable

	Name         string
	Category     string
	Ingredients  string // lista libre en un solo string
	Instructions string
	ImageURL     string
	PrepTime     string // ej: "30 min"
	Difficulty   string // ej: Baja/Media/Alta
}
