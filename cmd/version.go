package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cloudposse/yamlbridge/pkg/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   "Print the CLI version",
		Long:    `This command prints the CLI version`,
		Example: "yamlbridge version",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.String())
			return err
		},
	}
}
