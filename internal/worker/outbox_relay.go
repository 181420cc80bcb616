package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"home-dispatch/internal/usecase/commands"
)

// OutboxRelay drains due notification jobs to the broker. A full batch is
// followed immediately by another instead of waiting for the next tick.
type OutboxRelay struct {
	outbox    commands.OutboxCommands
	interval  time.Duration
	batchSize int32
	logger    *slog.Logger

	stopChan chan struct{}
	wg       sync.WaitGroup
}

func NewOutboxRelay(outbox commands.OutboxCommands, interval time.Duration, batchSize int32, logger *slog.Logger) *OutboxRelay {
	return &OutboxRelay{
		outbox:    outbox,
		interval:  interval,
		batchSize: batchSize,
		logger:    logger.With("component", "outbox_relay"),
		stopChan:  make(chan struct{}),
	}
}

func (r *OutboxRelay) Start(ctx context.Context) {
	r.logger.Info("starting outbox relay", "interval", r.interval.String())
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.run(ctx)
	}()
}

func (r *OutboxRelay) Stop() {
	r.logger.Info("stopping outbox relay")
	close(r.stopChan)
	r.wg.Wait()
}

func (r *OutboxRelay) run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.drain(ctx)
		case <-r.stopChan:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (r *OutboxRelay) drain(ctx context.Context) {
	for {
		select {
		case <-r.stopChan:
			return
		default:
		}
		res, err := r.outbox.RelayDue(ctx)
		if err != nil {
			r.logger.Error("outbox relay failed", "error", err.Error())
			return
		}
		if res.Sent > 0 || res.Failed > 0 {
			r.logger.Debug("outbox batch relayed", "sent", res.Sent, "failed", res.Failed)
		}
		if int32(res.Sent+res.Failed) < r.batchSize {
			return
		}
	}
}
