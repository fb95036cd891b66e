package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <file>",
		Short: "Render a single project file to stdout",
		Long: "Render one generated artifact without packaging. " +
			"Known files are Application.java, application.yaml and pom.xml.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := c.app.GenerateFile(cmd.Context(), requestFromFlags(cmd), args[0])
			if err != nil {
				return err
			}

			_, _ = fmt.Fprint(cmd.OutOrStdout(), body)
			return nil
		},
	}

	addRequestFlags(cmd)
	return cmd
}
