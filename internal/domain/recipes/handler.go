package recipes

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
)

//go:embed page.html.tmpl
var pageTemplate string

var page = template.Must(template.New("page").Parse(pageTemplate))

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/", pageHandler(svc))
	r.Get("/recipes", listRecipesHandler(svc))
}

// recipeResponse es una receta tal como la devuelve la API.
type recipeResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Ingredients  string `json:"ingredients"`
	Instructions string `json:"instructions"`
	ImageURL     string `json:"image_url"`
	PrepTime     string `json:"prep_time"`
	Difficulty   string `json:"difficulty"`
}

// viewResponse es el resultado de un ciclo de búsqueda.
type viewResponse struct {
	RenderID     string           `json:"render_id"`
	Query        string           `json:"query"`
	Total        int              `json:"total"`
	Matched      int              `json:"matched"`
	Empty        bool             `json:"empty"`
	EmptyMessage string           `json:"empty_message,omitempty"`
	Seeded       bool             `json:"seeded"`
	Warning      string           `json:"warning,omitempty"`
	Recipes      []recipeResponse `json:"recipes"`
}

// listRecipesHandler godoc
// @Summary Buscar recetas
// @Description Devuelve las recetas del recetario filtradas por texto libre. La búsqueda no distingue mayúsculas y revisa categoría, ingredientes, instrucciones y dificultad. Sin `q` devuelve todo. Si el catálogo no se puede leer responde 200 con lista vacía y `warning`.
// @Tags recipes
// @Produce json
// @Param q query string false "Texto a buscar (se usa literal, sin trim)"
// @Success 200 {object} viewResponse
// @Failure 500 {string} string "internal error"
// @Router /recipes [get]
func listRecipesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := svc.Render(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toViewResponse(v))
	}
}

// pageHandler godoc
// @Summary Página del recetario
// @Description Página HTML con el buscador y las tarjetas de recetas.
// @Tags recipes
// @Produce html
// @Param q query string false "Texto a buscar"
// @Success 200 {string} string "html"
// @Failure 500 {string} string "internal error"
// @Router / [get]
func pageHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := svc.Render(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		// Render a buffer para no escribir media página si el template falla.
		var buf bytes.Buffer
		if err := page.Execute(&buf, v); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = buf.WriteTo(w)
	}
}

func toRecipeResponse(r Recipe) recipeResponse {
	return recipeResponse{
		ID:           r.ID,
		Name:         r.Name,
		Category:     r.Category,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
		ImageURL:     r.ImageURL,
		PrepTime:     r.PrepTime,
		Difficulty:   r.Difficulty,
	}
}

func toViewResponse(v View) viewResponse {
	out := make([]recipeResponse, 0, len(v.Recipes))
	for _, r := range v.Recipes {
		out = append(out, toRecipeResponse(r))
	}
	return viewResponse{
		RenderID:     v.RenderID,
		Query:        v.Query,
		Total:        v.Total,
		Matched:      v.Matched,
		Empty:        v.Empty,
		EmptyMessage: v.EmptyMessage,
		Seeded:       v.Seeded,
		Warning:      v.Warning,
		Recipes:      out,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
