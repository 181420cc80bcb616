package commands

import (
	"context"
	"log/slog"
	"time"

	"home-dispatch/internal/pkg/clock"
	"home-dispatch/internal/usecase/shared"
)

const outboxRetryBase = 5 * time.Second

type RelayResult struct {
	Sent   int
	Failed int
}

type OutboxCommands interface {
	// RelayDue publishes one batch of due notification jobs.
	RelayDue(ctx context.Context) (*RelayResult, error)
}

type outboxUseCaseImpl struct {
	uow         shared.UnitOfWork
	publisher   shared.JobPublisher
	clock       clock.Clock
	batchSize   int32
	maxAttempts int32
}

func NewOutboxUseCase(uow shared.UnitOfWork, publisher shared.JobPublisher, clk clock.Clock, batchSize, maxAttempts int32) OutboxCommands {
	return &outboxUseCaseImpl{
		uow:         uow,
		publisher:   publisher,
		clock:       clk,
		batchSize:   batchSize,
		maxAttempts: maxAttempts,
	}
}

// RelayDue holds the claimed rows locked for the whole batch, so concurrent
// relays skip them instead of publishing twice.
func (uc *outboxUseCaseImpl) RelayDue(ctx context.Context) (*RelayResult, error) {
	res := &RelayResult{}
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		*res = RelayResult{}
		now := uc.clock.Now()
		jobs, err := tx.Notifications().ClaimDue(ctx, tx.DB(), now, uc.batchSize)
		if err != nil {
			return err
		}

		for _, job := range jobs {
			perr := uc.publisher.Publish(ctx, job.Kind, job.Topic, job.Payload)
			if perr == nil {
				if err = tx.Notifications().MarkSent(ctx, tx.DB(), job.ID, now); err != nil {
					return err
				}
				res.Sent++
				continue
			}

			res.Failed++
			slog.Warn("notification publish failed",
				"job_id", job.ID.String(),
				"kind", job.Kind,
				"attempt", job.Attempts+1,
				"error", perr.Error())
			retryAt := now.Add(retryDelay(job.Attempts))
			if err = tx.Notifications().MarkFailed(ctx, tx.DB(), job.ID, perr.Error(), uc.maxAttempts, retryAt, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// retryDelay grows quadratically with the attempts already made.
func retryDelay(attempts int32) time.Duration {
	n := time.Duration(attempts + 1)
	return n * n * outboxRetryBase
}
