package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newVersionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "versions",
		Short: "List the available starter versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			refresh, _ := cmd.Flags().GetBool("refresh")

			records, def, err := c.app.Versions(cmd.Context(), refresh)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, record := range records {
				marker := " "
				if record.StarterVersion == def {
					marker = "*"
				}
				_, _ = fmt.Fprintf(out, "%s %s (camunda %s, spring boot %s)\n",
					marker, record.StarterVersion, record.CamundaVersion, record.SpringBootVersion)
			}
			return nil
		},
	}

	cmd.Flags().Bool("refresh", false, "Fetch the published catalog before listing")
	return cmd
}
