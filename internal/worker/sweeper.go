package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"home-dispatch/internal/usecase/commands"
)

// Sweeper periodically expires stale dispatch requests and re-broadcasts
// bookings left without a live offer.
type Sweeper struct {
	dispatch commands.DispatchCommands
	interval time.Duration
	logger   *slog.Logger

	stopChan chan struct{}
	wg       sync.WaitGroup
}

func NewSweeper(dispatch commands.DispatchCommands, interval time.Duration, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		dispatch: dispatch,
		interval: interval,
		logger:   logger.With("component", "dispatch_sweeper"),
		stopChan: make(chan struct{}),
	}
}

func (s *Sweeper) Start(ctx context.Context) {
	s.logger.Info("starting dispatch sweeper", "interval", s.interval.String())
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.run(ctx)
	}()
}

func (s *Sweeper) Stop() {
	s.logger.Info("stopping dispatch sweeper")
	close(s.stopChan)
	s.wg.Wait()
}

func (s *Sweeper) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep(ctx)
		case <-s.stopChan:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()
	if _, err := s.dispatch.SweepExpired(ctx); err != nil {
		s.logger.Error("dispatch sweep failed", "error", err.Error())
	}
}
