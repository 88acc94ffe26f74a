package app

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

const (
	// DirEnv overrides the default working directory for key and password files.
	DirEnv = "PASSVAULT_DIR"

	DefaultKeyFile      = "passvault.key"
	DefaultPasswordFile = "passwords.txt"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Dir      string      // base directory for relative paths; "" means the current directory
	KeyFile  string      // key file, relative to Dir unless absolute
	PassFile string      // password file, relative to Dir unless absolute
	Logger   *zap.Logger // optional; defaults to a no-op logger
}

// DefaultDir returns $PASSVAULT_DIR or ".".
func DefaultDir() string {
	if d := os.Getenv(DirEnv); d != "" {
		return d
	}
	return "."
}

// KeyPath resolves the key file path.
func (c Config) KeyPath() string { return c.resolve(c.KeyFile, DefaultKeyFile) }

// PasswordPath resolves the password file path.
func (c Config) PasswordPath() string { return c.resolve(c.PassFile, DefaultPasswordFile) }

// Resolve joins a user-supplied path onto Dir unless it is absolute.
func (c Config) Resolve(p string) string { return c.resolve(p, "") }

func (c Config) resolve(p, def string) string {
	if p == "" {
		p = def
	}
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	dir := c.Dir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, p)
}
