package commands

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"passvault/internal/app"
	"passvault/internal/logger"
)

var (
	dir      string
	keyFile  string
	passFile string
	logLevel string

	appCtx *app.App
	log    = logger.New()
)

// Execute runs the root command against os.Args.
func Execute() error {
	root := newRootCmd()
	defer func() { _ = log.Log.Sync() }()
	if err := root.Execute(); err != nil {
		log.Log.Debug("command failed", zap.Error(err))
		return err
	}
	return nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "passvault",
		Short:        "Local encrypted password store",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := log.Init(logLevel); err != nil {
				return err
			}
			appCtx = app.New(app.Config{
				Dir:      dir,
				KeyFile:  keyFile,
				PassFile: passFile,
				Logger:   log.Log,
			})
			return nil
		},
	}
	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)

	root.PersistentFlags().StringVar(&dir, "dir", app.DefaultDir(), "base directory for key and password files (env "+app.DirEnv+")")
	root.PersistentFlags().StringVar(&keyFile, "key", app.DefaultKeyFile, "key file")
	root.PersistentFlags().StringVar(&passFile, "file", app.DefaultPasswordFile, "password file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(keygenCmd(), initCmd(), addCmd(), getCmd(), listCmd(), shellCmd())
	return root
}

// openVault loads the key and the password file.
func openVault() error {
	if _, err := appCtx.Keys.Load(appCtx.Config.KeyPath()); err != nil {
		return err
	}
	return appCtx.Passwords.Load(appCtx.Config.PasswordPath())
}
