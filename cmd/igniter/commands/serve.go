package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the generator as an HTTP service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			return c.app.Serve(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringP("config", "c", "", "Path to the server configuration file (default igniter.yaml)")
	return cmd
}
