package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"passvault/internal/crypto"
)

// errKeyExists guards the key an existing password file was sealed with.
var errKeyExists = errors.New("key file already exists; use --force to replace it")

func keygenCmd() *cobra.Command {
	var force, show bool
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a new key and write it to the key file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := appCtx.Config.KeyPath()
			if !force {
				_, err := os.Stat(path)
				if err == nil {
					return fmt.Errorf("%s: %w", path, errKeyExists)
				}
				if !errors.Is(err, fs.ErrNotExist) {
					return err
				}
			}
			k, err := appCtx.Keys.Create(path)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Key written to %s.\nFingerprint: %s\n", path, crypto.Fingerprint(k))
			if show {
				fmt.Fprintf(cmd.OutOrStdout(), "Key: %s\n", crypto.B64(k))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "replace an existing key file")
	cmd.Flags().BoolVar(&show, "show", false, "also print the key as URL-safe base64")
	return cmd
}
