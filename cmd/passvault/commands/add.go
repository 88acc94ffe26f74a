package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"passvault/internal/domain"
)

// add <site>: encrypt a password and append it to the password file.
func addCmd() *cobra.Command {
	var secret string
	cmd := &cobra.Command{
		Use:   "add <site>",
		Short: "Store a password for a site",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			site := args[0]
			if _, err := appCtx.Keys.Load(appCtx.Config.KeyPath()); err != nil {
				return err
			}

			path := appCtx.Config.PasswordPath()
			err := appCtx.Passwords.Load(path)
			switch {
			case errors.Is(err, domain.ErrPath):
				if err := appCtx.Passwords.InitializeEmpty(path, nil); err != nil {
					return err
				}
			case err != nil:
				return err
			}

			if secret == "" {
				p := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
				if secret, err = p.secret(fmt.Sprintf("Password for %s: ", site)); err != nil {
					return err
				}
			}
			if err := appCtx.Passwords.Add(site, secret); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Stored password for %s\n", site)
			return nil
		},
	}
	cmd.Flags().StringVar(&secret, "password", "", "password to store (prompted when omitted)")
	return cmd
}
