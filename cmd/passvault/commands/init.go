package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create an empty password file (truncates an existing one)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := appCtx.Config.PasswordPath()
			if err := appCtx.Passwords.InitializeEmpty(path, nil); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Password file created at %s\n", path)
			return nil
		},
	}
}
