package app

import (
	"context"
	"log/slog"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/tirumala-planners/site-backend/config"
	"github.com/tirumala-planners/site-backend/pkg/database"
	"github.com/tirumala-planners/site-backend/pkg/email"
)

// InfraModule provides all infrastructure dependencies.
var InfraModule = fx.Module("infra",
	fx.Provide(ProvideDBClient),
	fx.Provide(ProvideEmailClient),
)

func ProvideDBClient(lc fx.Lifecycle, cfg *config.Config) (*gorm.DB, error) {
	db, err := database.NewClient(cfg.Database)
	if err != nil {
		return nil, err
	}

	// Idempotent: creates the contacts table on first start only.
	if err := database.Migrate(db); err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing database connection")
			return database.Close(db)
		},
	})
	return db, nil
}

func ProvideEmailClient(cfg *config.Config) (*email.Client, error) {
	return email.NewFromCentral(cfg.Email)
}
