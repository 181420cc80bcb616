package bootstrap

import (
	"context"
	"log/slog"

	"home-dispatch/internal/infra/db"
	"home-dispatch/internal/pkg/config"
	"home-dispatch/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
	fx.Invoke(RunMigrations),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

// RunMigrations applies the embedded migrations on start when DB_AUTO_MIGRATE is set.
func RunMigrations(lc fx.Lifecycle, cfg config.Config, pool *pgxpool.Pool, logger *slog.Logger) {
	if !cfg.DB.AutoMigrate {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			m, err := db.NewMigrator(pool, migrations.FS, logger)
			if err != nil {
				return err
			}
			defer m.Close()
			return m.Up(ctx)
		},
	})
}
