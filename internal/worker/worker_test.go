//go:build unit

package worker_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"home-dispatch/internal/usecase/commands"
	"home-dispatch/internal/worker"
	commandsmock "home-dispatch/tests/mock/commands"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func waitFor(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not run in time")
	}
}

func TestOutboxRelay_DrainsFullBatchesBeforeSleeping(t *testing.T) {
	ctrl := gomock.NewController(t)
	outbox := commandsmock.NewMockOutboxCommands(ctrl)
	done := make(chan struct{})

	gomock.InOrder(
		outbox.EXPECT().RelayDue(gomock.Any()).Return(&commands.RelayResult{Sent: 2}, nil),
		outbox.EXPECT().RelayDue(gomock.Any()).Return(&commands.RelayResult{Sent: 1, Failed: 1}, nil),
		outbox.EXPECT().RelayDue(gomock.Any()).DoAndReturn(func(context.Context) (*commands.RelayResult, error) {
			close(done)
			return &commands.RelayResult{}, nil
		}),
	)
	outbox.EXPECT().RelayDue(gomock.Any()).Return(&commands.RelayResult{}, nil).AnyTimes()

	relay := worker.NewOutboxRelay(outbox, 20*time.Millisecond, 2, discardLogger())
	relay.Start(context.Background())
	waitFor(t, done)
	relay.Stop()
}

func TestOutboxRelay_ErrorEndsTheTickOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	outbox := commandsmock.NewMockOutboxCommands(ctrl)
	done := make(chan struct{})

	gomock.InOrder(
		outbox.EXPECT().RelayDue(gomock.Any()).Return(nil, errors.New("broker down")),
		outbox.EXPECT().RelayDue(gomock.Any()).DoAndReturn(func(context.Context) (*commands.RelayResult, error) {
			close(done)
			return &commands.RelayResult{}, nil
		}),
	)
	outbox.EXPECT().RelayDue(gomock.Any()).Return(&commands.RelayResult{}, nil).AnyTimes()

	relay := worker.NewOutboxRelay(outbox, 20*time.Millisecond, 10, discardLogger())
	relay.Start(context.Background())
	waitFor(t, done)
	relay.Stop()
}

func TestSweeper_RunsOnEveryTickAndSurvivesErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	dispatch := commandsmock.NewMockDispatchCommands(ctrl)
	done := make(chan struct{})

	gomock.InOrder(
		dispatch.EXPECT().SweepExpired(gomock.Any()).Return(nil, errors.New("store unavailable")),
		dispatch.EXPECT().SweepExpired(gomock.Any()).DoAndReturn(func(ctx context.Context) (*commands.SweepResult, error) {
			_, hasDeadline := ctx.Deadline()
			require.True(t, hasDeadline, "each sweep is bounded by the interval")
			close(done)
			return &commands.SweepResult{ExpiredBookings: 1}, nil
		}),
	)
	dispatch.EXPECT().SweepExpired(gomock.Any()).Return(&commands.SweepResult{}, nil).AnyTimes()

	sweeper := worker.NewSweeper(dispatch, 20*time.Millisecond, discardLogger())
	sweeper.Start(context.Background())
	waitFor(t, done)
	sweeper.Stop()
}

func TestSweeper_StopsWithContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	dispatch := commandsmock.NewMockDispatchCommands(ctrl)
	dispatch.EXPECT().SweepExpired(gomock.Any()).Return(&commands.SweepResult{}, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	sweeper := worker.NewSweeper(dispatch, time.Hour, discardLogger())
	sweeper.Start(ctx)
	cancel()

	stopped := make(chan struct{})
	go func() {
		sweeper.Stop()
		close(stopped)
	}()
	waitFor(t, stopped)
}
