package cmd

import (
	"errors"
	"fmt"

	"gitrack/internal/session"

	"github.com/spf13/cobra"
)

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored GitHub token",
		Long: `Removes the token from the session file. The selected repository is
kept, so the next sign-in goes straight to it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApplication(cmd.Root().Version)
			if err != nil {
				return err
			}
			err = application.Services().Logout()
			if errors.Is(err, session.ErrNoCredential) {
				fmt.Fprintln(cmd.OutOrStdout(), "Not signed in.")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return nil
		},
	}
}
