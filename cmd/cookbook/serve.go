package main

import (
	"cookbook/internal/app"

	"github.com/spf13/cobra"
)

func newServeCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Levanta la página y la API HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := c.newSession(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.close()

			lg := rt.log.With(map[string]any{"store": rt.cfg.StoreDriver})
			return app.Serve(cmd.Context(), app.NewServer(rt.cfg, rt.store, lg), lg)
		},
	}

	cmd.Flags().String("port", "", "listen port (default 8080)")
	if err := c.v.BindPFlag("port", cmd.Flags().Lookup("port")); err != nil {
		panic(err)
	}
	return cmd
}
