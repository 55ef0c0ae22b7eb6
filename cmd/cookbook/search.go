package main

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"cookbook/internal/domain/recipes"
	"cookbook/internal/platform/httpclient"

	"github.com/spf13/cobra"
)

func newSearchCmd(c *cli) *cobra.Command {
	var (
		server  string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Busca recetas por categoría, ingredientes, instrucciones o dificultad",
		Long: `Busca sin distinguir mayúsculas. Sin query lista todo.
El query se usa literal: los espacios cuentan.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}

			var (
				view recipes.View
				err  error
			)
			if strings.TrimSpace(server) != "" {
				view, err = remoteSearch(cmd.Context(), server, timeout, query)
			} else {
				view, err = c.localSearch(cmd.Context(), query)
			}
			if err != nil {
				return err
			}

			renderView(cmd.OutOrStdout(), view)
			return nil
		},
	}

	cmd.Flags().StringVar(&server, "server", "", "base URL of a running cookbook API (e.g. http://localhost:8080)")
	cmd.Flags().DurationVar(&timeout, "timeout", httpclient.DefaultTimeout, "HTTP timeout when using --server")
	return cmd
}

func (c *cli) localSearch(ctx context.Context, query string) (recipes.View, error) {
	rt, err := c.newSession(ctx)
	if err != nil {
		return recipes.View{}, err
	}
	defer rt.close()

	return rt.svc.Render(ctx, query)
}

// remoteView refleja el JSON de GET /recipes.
type remoteView struct {
	RenderID     string `json:"render_id"`
	Query        string `json:"query"`
	Total        int    `json:"total"`
	Matched      int    `json:"matched"`
	Empty        bool   `json:"empty"`
	EmptyMessage string `json:"empty_message"`
	Seeded       bool   `json:"seeded"`
	Warning      string `json:"warning"`
	Recipes      []struct {
		ID           int64  `json:"id"`
		Name         string `json:"name"`
		Category     string `json:"category"`
		Ingredients  string `json:"ingredients"`
		Instructions string `json:"instructions"`
		ImageURL     string `json:"image_url"`
		PrepTime     string `json:"prep_time"`
		Difficulty   string `json:"difficulty"`
	} `json:"recipes"`
}

func remoteSearch(ctx context.Context, baseURL string, timeout time.Duration, query string) (recipes.View, error) {
	c, err := httpclient.New(baseURL, timeout)
	if err != nil {
		return recipes.View{}, err
	}

	var rv remoteView
	if err := c.GetJSON(ctx, "/recipes", url.Values{"q": {query}}, &rv); err != nil {
		return recipes.View{}, err
	}

	v := recipes.View{
		RenderID:     rv.RenderID,
		Query:        rv.Query,
		Total:        rv.Total,
		Matched:      rv.Matched,
		Empty:        rv.Empty,
		EmptyMessage: rv.EmptyMessage,
		Seeded:       rv.Seeded,
		Warning:      rv.Warning,
		Recipes:      make([]recipes.Recipe, 0, len(rv.Recipes)),
	}
	for _, r := range rv.Recipes {
		v.Recipes = append(v.Recipes, recipes.Recipe{
			ID:           r.ID,
			Name:         r.Name,
			Category:     r.Category,
			Ingredients:  r.Ingredients,
			Instructions: r.Instructions,
			ImageURL:     r.ImageURL,
			PrepTime:     r.PrepTime,
			Difficulty:   r.Difficulty,
		})
	}
	return v, nil
}

func renderView(w io.Writer, v recipes.View) {
	if v.Seeded {
		fmt.Fprintln(w, passStyle.Render("Base de datos inicializada correctamente."))
	}
	if v.Warning != "" {
		fmt.Fprintln(w, warnStyle.Render("Error de base de datos: "+v.Warning))
	}
	if v.Empty {
		msg := v.EmptyMessage
		if msg == "" {
			msg = recipes.NoResultsMessage
		}
		fmt.Fprintln(w, mutedStyle.Render(msg))
		return
	}

	for _, r := range v.Recipes {
		fmt.Fprintln(w, cardStyle.Render(renderCard(r)))
	}
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("%d de %d recetas", v.Matched, v.Total)))
}

func renderCard(r recipes.Recipe) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(r.Name))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s   %s %s   %s %s\n",
		labelStyle.Render("Categoría:"), r.Category,
		labelStyle.Render("Tiempo:"), r.PrepTime,
		labelStyle.Render("Dificultad:"), r.Difficulty,
	)
	b.WriteString(labelStyle.Render("Ingredientes"))
	b.WriteString("\n")
	b.WriteString(r.Ingredients)
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Instrucciones"))
	b.WriteString("\n")
	b.WriteString(r.Instructions)
	if r.ImageURL != "" {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(r.ImageURL))
	}
	return b.String()
}
