package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInitCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Crea y siembra el catálogo si todavía no existe",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := c.newSession(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.close()

			created, err := rt.svc.EnsureInitialized(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if created {
				fmt.Fprintln(out, passStyle.Render("Base de datos inicializada correctamente."))
				return nil
			}
			fmt.Fprintln(out, mutedStyle.Render("El catálogo ya existe; nada que hacer."))
			return nil
		},
	}
}
