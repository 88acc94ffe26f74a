package app

import (
	"go.uber.org/zap"

	"passvault/internal/logger"
	"passvault/internal/services/key"
	"passvault/internal/services/password"
	"passvault/internal/store"
)

// App bundles the services for one CLI session.
type App struct {
	Config    Config
	Keys      *key.Service
	Passwords *password.Service
	Log       *zap.Logger
}

// New constructs the dependency graph from cfg.
func New(cfg Config) *App {
	log := logger.OrNop(cfg.Logger)

	// File-based stores
	keyStore := store.NewKeyFileStore()
	recordStore := store.NewRecordFileStore()

	keys := key.New(keyStore, log.Named("keys"))
	passwords := password.New(keys, recordStore, log.Named("passwords"))

	return &App{
		Config:    cfg,
		Keys:      keys,
		Passwords: passwords,
		Log:       log,
	}
}
