package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"cookbook/internal/domain/recipes"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newExportCmd(c *cli) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Vuelca el catálogo completo en JSON o YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := c.newSession(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.close()

			if _, err := rt.svc.EnsureInitialized(cmd.Context()); err != nil {
				return err
			}
			items, warn := rt.svc.FetchAll(cmd.Context())
			if warn != nil {
				// exportar vacío en silencio sería engañoso
				return warn
			}

			return writeExport(cmd.OutOrStdout(), format, items)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "json|yaml")
	return cmd
}

// exportRecipe fija los nombres de campo del volcado.
type exportRecipe struct {
	ID           int64  `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	Category     string `json:"category" yaml:"category"`
	Ingredients  string `json:"ingredients" yaml:"ingredients"`
	Instructions string `json:"instructions" yaml:"instructions"`
	ImageURL     string `json:"image_url" yaml:"image_url"`
	PrepTime     string `json:"prep_time" yaml:"prep_time"`
	Difficulty   string `json:"difficulty" yaml:"difficulty"`
}

func writeExport(w io.Writer, format string, items []recipes.Recipe) error {
	out := make([]exportRecipe, 0, len(items))
	for _, r := range items {
		out = append(out, exportRecipe(r))
	}

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", format)
	}
}
