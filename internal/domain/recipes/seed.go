package recipes

// SeedSet devuelve el repertorio inicial (sin IDs; los asigna el store).
// Se devuelve una copia nueva en cada llamada.
func SeedSet() []Recipe {
	return []Recipe{
		{
			Name:         "Arepa de Reina Pepiada",
			Category:     "Desayunos",
			Ingredients:  "Harina de maíz, aguacate, pollo, mayonesa",
			Instructions: "Preparar la masa de arepa, asar. Mezclar pollo desmechado con aguacate y mayonesa. Rellenar.",
			ImageURL:     "https://images.unsplash.com/photo-1541518763669-279f00ed51ca?q=80&w=500",
			PrepTime:     "30 min",
			Difficulty:   DifficultyMedium,
		},
		{
			Name:         "Pabellón Criollo",
			Category:     "Almuerzos",
			Ingredients:  "Arroz blanco, caraotas negras, carne mechada, tajadas",
			Instructions: "Cocinar los componentes por separado. Servir de forma tradicional acompañando con plátano frito.",
			ImageURL:     "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?q=80&w=500",
			PrepTime:     "1.5 h",
			Difficulty:   DifficultyHigh,
		},
		{
			Name:         "Ensalada César",
			Category:     "Ensaladas",
			Ingredients:  "Lechuga romana, croutons, queso parmesano, aderezo",
			Instructions: "Mezclar la lechuga con el aderezo, añadir croutons y queso al gusto.",
			ImageURL:     "https://images.unsplash.com/photo-1550304943-4f24f54ddde9?q=80&w=500",
			PrepTime:     "15 min",
			Difficulty:   DifficultyLow,
		},
	}
}
