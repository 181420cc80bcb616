package bootstrap

import (
	"context"
	"log/slog"

	"home-dispatch/internal/infra/notifier"
	"home-dispatch/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		func() *notifier.Hub { return notifier.NewHub(0) },
		NewListener,
		NewLocationBroker,
		func(b *notifier.LocationBroker) shared.LocationPublisher { return b },
	),
	fx.Invoke(func(*notifier.Listener, *notifier.LocationBroker) {}),
)

func NewListener(lc fx.Lifecycle, pool *pgxpool.Pool, source notifier.SnapshotSource, hub *notifier.Hub, logger *slog.Logger) *notifier.Listener {
	l := notifier.NewListener(notifier.NewPgFeed(pool), source, hub, logger)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			l.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			l.Stop()
			return nil
		},
	})
	return l
}

func NewLocationBroker(lc fx.Lifecycle, client *redis.Client, hub *notifier.Hub, logger *slog.Logger) *notifier.LocationBroker {
	b := notifier.NewLocationBroker(client, hub, logger)
	lc.Append(fx.Hook{
		// the subscription outlives OnStart, so it must not inherit the start deadline
		OnStart: func(ctx context.Context) error {
			return b.Start(context.WithoutCancel(ctx))
		},
		OnStop: func(_ context.Context) error {
			return b.Stop()
		},
	})
	return b
}
