package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the sites in the password file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := openVault(); err != nil {
				return err
			}
			for _, site := range appCtx.Passwords.Sites() {
				fmt.Fprintln(cmd.OutOrStdout(), site)
			}
			return nil
		},
	}
}
