package recipes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func seeded() []Recipe {
	out := SeedSet()
	for i := range out {
		out[i].ID = int64(i + 1)
	}
	return out
}

func names(rs []Recipe) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.Name)
	}
	return out
}

func TestFilter_SeedQueries(t *testing.T) {
	cases := []struct {
		query string
		want  []string
	}{
		{"", []string{"Arepa de Reina Pepiada", "Pabellón Criollo", "Ensalada César"}},
		{"Media", []string{"Arepa de Reina Pepiada"}},
		{"queso", []string{"Ensalada César"}},
		{"Pabellón", []string{}},
		{"xyzzy", []string{}},
		{"AGUACATE", []string{"Arepa de Reina Pepiada"}},
		{"almuerzos", []string{"Pabellón Criollo"}},
		{"plátano", []string{"Pabellón Criollo"}},
		{"Alta", []string{"Pabellón Criollo"}}, // dificultad también se busca
	}

	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			assert.Equal(t, tc.want, names(Filter(seeded(), tc.query)))
		})
	}
}

func TestFilter_EmptyQueryKeepsOrder(t *testing.T) {
	in := seeded()
	in[0], in[2] = in[2], in[0]

	assert.Equal(t, in, Filter(in, ""))
}

func TestFilter_WhitespaceIsLiteral(t *testing.T) {
	rs := []Recipe{
		{Name: "a", Category: "Sopas"},
		{Name: "b", Ingredients: "pan, queso"},
	}

	assert.Equal(t, []string{"b"}, names(Filter(rs, " ")))
	assert.Equal(t, []string{}, names(Filter(rs, " queso ")))
	assert.Equal(t, []string{"b"}, names(Filter(rs, ", q")))
}

func TestFilter_NameIsNotSearched(t *testing.T) {
	rs := []Recipe{{Name: "Tequeños", Category: "Pasapalos"}}

	assert.Empty(t, Filter(rs, "tequeños"))
	assert.Len(t, Filter(rs, "pasa"), 1)
}

func TestFilter_NilInput(t *testing.T) {
	out := Filter(nil, "x")
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

// Cualquier substring de categoría, ingredientes o instrucciones debe incluir
// la receta, y la salida siempre es subsecuencia ordenada de la entrada.
func TestFilter_Properties(t *testing.T) {
	in := seeded()

	for _, r := range in {
		for _, field := range []string{r.Category, r.Ingredients, r.Instructions} {
			for _, q := range substrings(field) {
				out := Filter(in, q)
				assert.Contains(t, names(out), r.Name, "query %q", q)
				assert.True(t, isSubsequence(out, in), "query %q reordered output", q)

				out = Filter(in, strings.ToUpper(q))
				assert.Contains(t, names(out), r.Name, "upper query %q", q)
			}
		}
	}
}

func TestMatches(t *testing.T) {
	r := Recipe{Instructions: "Freír en aceite"}
	assert.True(t, Matches(r, "FREÍR"))
	assert.False(t, Matches(r, "hornear"))
}

// substrings toma ventanas de varios tamaños; no hace falta el set completo.
func substrings(s string) []string {
	rs := []rune(s)
	out := make([]string, 0)
	for _, size := range []int{1, 3, 7} {
		for i := 0; i+size <= len(rs); i += size {
			out = append(out, string(rs[i:i+size]))
		}
	}
	return out
}

func isSubsequence(sub, full []Recipe) bool {
	j := 0
	for _, r := range full {
		if j < len(sub) && sub[j].ID == r.ID {
			j++
		}
	}
	return j == len(sub)
}
