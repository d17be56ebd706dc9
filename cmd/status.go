package cmd

import (
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the stored session",
		Long:  `Prints who is signed in, the selected repository and the screen gitrack opens with.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApplication(cmd.Root().Version)
			if err != nil {
				return err
			}
			return application.PrintStatus(cmd.OutOrStdout())
		},
	}
}
