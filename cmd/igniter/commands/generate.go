package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bpmlabs/igniter/internal/core/domain"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a starter project archive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := requestFromFlags(cmd)

			archive, err := c.app.Generate(cmd.Context(), req)
			if err != nil {
				return err
			}

			output, _ := cmd.Flags().GetString("output")
			if output == "-" {
				_, err := cmd.OutOrStdout().Write(archive)
				return err
			}
			if output == "" {
				artifact := req.Artifact
				if artifact == "" {
					artifact = domain.DefaultArtifact
				}
				output = artifact + ".zip"
			}

			if err := os.WriteFile(output, archive, domain.FilePerm); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
			return nil
		},
	}

	addRequestFlags(cmd)
	cmd.Flags().StringP("output", "o", "", "Archive destination path, or - for stdout (default <artifact>.zip)")
	return cmd
}
