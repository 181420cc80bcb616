package bootstrap

import (
	"context"
	"log/slog"

	"home-dispatch/internal/infra/outbox"
	"home-dispatch/internal/pkg/clock"
	"home-dispatch/internal/pkg/config"
	"home-dispatch/internal/usecase/commands"
	"home-dispatch/internal/usecase/shared"
	"home-dispatch/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Invoke(
		RegisterSweeper,
		RegisterOutboxRelay,
	),
)

func RegisterSweeper(lc fx.Lifecycle, cfg config.Config, dispatch commands.DispatchCommands, logger *slog.Logger) {
	sweeper := worker.NewSweeper(dispatch, cfg.Dispatch.SweepInterval, logger)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			sweeper.Start(context.WithoutCancel(ctx))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			sweeper.Stop()
			// let background sibling expiry from recent accepts finish
			return dispatch.Drain(ctx)
		},
	})
}

// RegisterOutboxRelay starts the AMQP relay only when OUTBOX_AMQP_URL is set;
// otherwise jobs accumulate in notification_jobs for another consumer.
func RegisterOutboxRelay(lc fx.Lifecycle, cfg config.Config, uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) {
	if cfg.Outbox.AMQPURL == "" {
		logger.Info("outbox relay disabled", "reason", "OUTBOX_AMQP_URL not set")
		return
	}

	var (
		publisher *outbox.AMQPPublisher
		relay     *worker.OutboxRelay
	)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p, err := outbox.NewAMQPPublisher(cfg.Outbox.AMQPURL, cfg.Outbox.Exchange)
			if err != nil {
				return err
			}
			publisher = p
			uc := commands.NewOutboxUseCase(uow, publisher, clk, cfg.Outbox.BatchSize, cfg.Outbox.MaxAttempts)
			relay = worker.NewOutboxRelay(uc, cfg.Outbox.PollInterval, cfg.Outbox.BatchSize, logger)
			relay.Start(context.WithoutCancel(ctx))
			return nil
		},
		OnStop: func(_ context.Context) error {
			if relay != nil {
				relay.Stop()
			}
			if publisher != nil {
				return publisher.Close()
			}
			return nil
		},
	})
}
