package bootstrap

import (
	"barberbook/internal/pkg/config"
	"barberbook/internal/pkg/tokenstore"
	"barberbook/internal/session"

	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		NewTokenStore,
		session.New,
	),
)

func NewTokenStore(cfg config.Config) tokenstore.Store {
	if cfg.Session.TokenPath == "" {
		return tokenstore.NewMemoryStore()
	}
	return tokenstore.NewFileStore(cfg.Session.TokenPath)
}
