//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"home-dispatch/internal/domain/booking"
	"home-dispatch/internal/domain/dispatch"
	"home-dispatch/internal/pkg/clock"
	"home-dispatch/internal/pkg/errs"
	"home-dispatch/internal/usecase/commands"
	"home-dispatch/internal/usecase/shared"
	"home-dispatch/tests/common/builder"
	"home-dispatch/tests/common/memstore"
	sharedmock "home-dispatch/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DispatchUseCaseTestSuite struct {
	suite.Suite
	ctx      context.Context
	clock    *clock.MockClock
	store    *memstore.Store
	mockCtrl *gomock.Controller
	selector *sharedmock.MockCandidateSelector
	policy   commands.DispatchPolicy
	uc       commands.DispatchCommands
}

func (s *DispatchUseCaseTestSuite) SetupTest() {
	s.reset()
}

// SetupSubTest gives every s.Run its own store so sweeps only see their own bookings.
func (s *DispatchUseCaseTestSuite) SetupSubTest() {
	if s.uc != nil {
		s.Require().NoError(s.uc.Drain(s.ctx))
	}
	s.reset()
}

func (s *DispatchUseCaseTestSuite) reset() {
	s.ctx = context.Background()
	s.clock = clock.NewMockClock(builder.DefaultNow)
	s.store = memstore.New(s.clock)
	s.mockCtrl = gomock.NewController(s.T())
	s.selector = sharedmock.NewMockCandidateSelector(s.mockCtrl)
	s.policy = commands.DispatchPolicy{
		RequestTimeout: time.Minute,
		Rebroadcast:    true,
		MaxRounds:      3,
		SiblingExpiry:  time.Second,
	}
	s.uc = commands.NewDispatchUseCase(s.store, s.selector, s.clock, s.policy)
}

func (s *DispatchUseCaseTestSuite) TearDownTest() {
	s.Require().NoError(s.uc.Drain(s.ctx))
}

func TestDispatchUseCaseSuite(t *testing.T) {
	suite.Run(t, new(DispatchUseCaseTestSuite))
}

func (s *DispatchUseCaseTestSuite) seedPending() *booking.Booking {
	b := builder.NewBookingBuilder().WithNow(s.clock.Now()).MustBuildDomain()
	s.store.PutBooking(b)
	return b
}

func (s *DispatchUseCaseTestSuite) broadcast(b *booking.Booking, providers ...uuid.UUID) {
	_, err := s.uc.Broadcast(s.ctx, b.ID(), providers)
	s.Require().NoError(err)
}

func (s *DispatchUseCaseTestSuite) requestStatuses(bookingID uuid.UUID) map[uuid.UUID]dispatch.RequestStatus {
	out := map[uuid.UUID]dispatch.RequestStatus{}
	for _, r := range s.store.Requests(bookingID) {
		out[r.ProviderID()] = r.Status()
	}
	return out
}

func (s *DispatchUseCaseTestSuite) jobsOfKind(kind string) []memstore.Job {
	var out []memstore.Job
	for _, j := range s.store.Jobs() {
		if j.Kind == kind {
			out = append(out, j)
		}
	}
	return out
}

func (s *DispatchUseCaseTestSuite) eventKinds(bookingID uuid.UUID) []booking.EventKind {
	var out []booking.EventKind
	for _, e := range s.store.Events(bookingID) {
		out = append(out, e.Kind)
	}
	return out
}

// ================================================================================
// Broadcast
// ================================================================================

func (s *DispatchUseCaseTestSuite) TestBroadcast() {
	s.Run("success: one offer and one job per provider", func() {
		b := s.seedPending()
		p1, p2 := uuid.New(), uuid.New()

		views, err := s.uc.Broadcast(s.ctx, b.ID(), []uuid.UUID{p1, p2, p1})

		s.Require().NoError(err)
		s.Require().Len(views, 2)
		for _, v := range views {
			s.Equal(dispatch.RequestPending.String(), v.Status)
			s.Equal(int32(1), v.BroadcastRound)
		}
		s.Equal(int32(1), s.store.Booking(b.ID()).BroadcastRound())

		offers := s.jobsOfKind(commands.NotifyJobOffer)
		s.Require().Len(offers, 2)
		s.Equal(commands.ProviderTopic(p1), offers[0].Topic)
		s.Equal(commands.ProviderTopic(p2), offers[1].Topic)

		var payload commands.JobOfferPayload
		s.Require().NoError(json.Unmarshal(offers[0].Payload, &payload))
		s.Equal(b.ID(), payload.BookingID)
		s.Equal(p1, payload.ProviderID)
		s.Equal("plumbing", payload.ServiceCategory)
		s.Equal(int32(1), payload.Round)

		s.Equal([]booking.EventKind{booking.EventProvidersNotified}, s.eventKinds(b.ID()))
	})

	s.Run("second round skips providers already offered", func() {
		b := s.seedPending()
		p1, p2 := uuid.New(), uuid.New()
		s.broadcast(b, p1)

		views, err := s.uc.Broadcast(s.ctx, b.ID(), []uuid.UUID{p1, p2})

		s.Require().NoError(err)
		s.Require().Len(views, 1)
		s.Equal(p2, views[0].ProviderID)
		s.Equal(int32(2), views[0].BroadcastRound)
		s.Len(s.store.Requests(b.ID()), 2)
	})

	s.Run("error: every candidate already offered rolls back the round", func() {
		b := s.seedPending()
		p1 := uuid.New()
		s.broadcast(b, p1)

		_, err := s.uc.Broadcast(s.ctx, b.ID(), []uuid.UUID{p1})

		s.True(errs.Is(err, errs.ErrNoCandidates))
		s.Equal(int32(1), s.store.Booking(b.ID()).BroadcastRound())
	})

	s.Run("error: empty candidate list", func() {
		b := s.seedPending()
		_, err := s.uc.Broadcast(s.ctx, b.ID(), nil)
		s.True(errs.Is(err, errs.ErrNoCandidates))
		s.Empty(s.store.Requests(b.ID()))
	})

	s.Run("error: booking is not pending", func() {
		bb := builder.NewBookingBuilder()
		confirmed := bb.BuildInStatus(booking.StatusConfirmed, uuid.New(), 1)
		s.store.PutBooking(confirmed)

		_, err := s.uc.Broadcast(s.ctx, confirmed.ID(), []uuid.UUID{uuid.New()})
		s.True(errs.Is(err, errs.ErrInvalidTransition))
	})

	s.Run("error: unknown booking", func() {
		_, err := s.uc.Broadcast(s.ctx, uuid.New(), []uuid.UUID{uuid.New()})
		s.True(errs.Is(err, errs.ErrBookingNotFound))
	})
}

// ================================================================================
// Dispatch
// ================================================================================

func (s *DispatchUseCaseTestSuite) TestDispatch() {
	s.Run("success: asks the selector and excludes offered providers", func() {
		b := s.seedPending()
		p1, p2 := uuid.New(), uuid.New()
		s.broadcast(b, p1)

		s.selector.EXPECT().SelectCandidates(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, q shared.CandidateQuery) ([]uuid.UUID, error) {
				s.Equal(b.ID(), q.BookingID)
				s.Equal("plumbing", q.Category)
				s.Require().NotNil(q.Location)
				s.Contains(q.Exclude, p1)
				return []uuid.UUID{p2}, nil
			}).Times(1)

		views, err := s.uc.Dispatch(s.ctx, b.ID())

		s.Require().NoError(err)
		s.Require().Len(views, 1)
		s.Equal(p2, views[0].ProviderID)
	})

	s.Run("error: selector failure is returned", func() {
		b := s.seedPending()
		boom := errors.New("redis down")
		s.selector.EXPECT().SelectCandidates(gomock.Any(), gomock.Any()).Return(nil, boom).Times(1)

		_, err := s.uc.Dispatch(s.ctx, b.ID())
		s.True(errs.Is(err, boom))
	})

	s.Run("error: non-pending booking never reaches the selector", func() {
		bb := builder.NewBookingBuilder()
		confirmed := bb.BuildInStatus(booking.StatusConfirmed, uuid.New(), 1)
		s.store.PutBooking(confirmed)

		_, err := s.uc.Dispatch(s.ctx, confirmed.ID())
		s.True(errs.Is(err, errs.ErrInvalidTransition))
	})
}

// ================================================================================
// AcceptBooking
// ================================================================================

func (s *DispatchUseCaseTestSuite) TestAcceptBooking() {
	s.Run("success: confirms and expires the other offers", func() {
		b := s.seedPending()
		winner, other := uuid.New(), uuid.New()
		s.broadcast(b, winner, other)
		s.clock.Add(10 * time.Second)

		view, err := s.uc.AcceptBooking(s.ctx, b.ID(), winner)

		s.Require().NoError(err)
		s.Equal(booking.StatusConfirmed.String(), view.Status)
		s.Require().NotNil(view.ProviderID)
		s.Equal(winner, *view.ProviderID)
		s.Equal(b.Version()+1, view.StatusVersion)

		s.Require().NoError(s.uc.Drain(s.ctx))
		statuses := s.requestStatuses(b.ID())
		s.Equal(dispatch.RequestAccepted, statuses[winner])
		s.Equal(dispatch.RequestExpired, statuses[other])

		s.Equal([]booking.EventKind{booking.EventProvidersNotified, booking.EventAccepted}, s.eventKinds(b.ID()))
		changed := s.jobsOfKind(commands.NotifyStatusChanged)
		s.Require().Len(changed, 1)
		s.Equal(commands.BookingTopic(b.ID()), changed[0].Topic)

		var payload commands.StatusChangedPayload
		s.Require().NoError(json.Unmarshal(changed[0].Payload, &payload))
		s.Equal("PENDING", payload.From)
		s.Equal("CONFIRMED", payload.To)
	})

	s.Run("error: second accept loses", func() {
		b := s.seedPending()
		first, second := uuid.New(), uuid.New()
		s.broadcast(b, first, second)

		_, err := s.uc.AcceptBooking(s.ctx, b.ID(), first)
		s.Require().NoError(err)

		_, err = s.uc.AcceptBooking(s.ctx, b.ID(), second)
		s.True(errs.Is(err, errs.ErrAlreadyClaimed))
		s.Equal(first, *s.store.Booking(b.ID()).ProviderID())
	})

	s.Run("error: provider was never offered the booking", func() {
		b := s.seedPending()
		s.broadcast(b, uuid.New())

		_, err := s.uc.AcceptBooking(s.ctx, b.ID(), uuid.New())
		s.True(errs.Is(err, errs.ErrRequestNotFound))
	})

	s.Run("error: rejected offer cannot be accepted", func() {
		b := s.seedPending()
		p := uuid.New()
		s.broadcast(b, p)
		s.Require().NoError(s.uc.RejectBooking(s.ctx, b.ID(), p))

		_, err := s.uc.AcceptBooking(s.ctx, b.ID(), p)
		s.True(errs.Is(err, errs.ErrRequestNotFound))
	})

	s.Run("error: booking cancelled under a pending offer gives the claim back", func() {
		b := s.seedPending()
		p := uuid.New()
		s.broadcast(b, p)

		broadcasted := s.store.Booking(b.ID())
		cancelled, err := broadcasted.Transition(booking.TransitionInput{
			Target: booking.StatusCancelled,
			Actor:  builder.NewBookingBuilder().WithCustomer(b.CustomerID()).Customer(),
			Now:    s.clock.Now(),
		})
		s.Require().NoError(err)
		s.store.PutBooking(cancelled)

		_, err = s.uc.AcceptBooking(s.ctx, b.ID(), p)

		s.True(errs.Is(err, errs.ErrBookingNoLongerAvailable))
		s.Equal(dispatch.RequestExpired, s.requestStatuses(b.ID())[p])
		s.Equal(booking.StatusCancelled, s.store.Booking(b.ID()).Status())
		s.Empty(s.jobsOfKind(commands.NotifyStatusChanged))
	})

	s.Run("error: commit failure leaves nothing behind", func() {
		b := s.seedPending()
		p := uuid.New()
		s.broadcast(b, p)

		boom := errors.New("commit failed")
		s.store.FailCommit = boom
		defer func() { s.store.FailCommit = nil }()

		_, err := s.uc.AcceptBooking(s.ctx, b.ID(), p)
		s.True(errs.Is(err, boom))
		s.Equal(booking.StatusPending, s.store.Booking(b.ID()).Status())
		s.Equal(dispatch.RequestPending, s.requestStatuses(b.ID())[p])
	})
}

func (s *DispatchUseCaseTestSuite) TestAcceptBooking_ConcurrentClaimsHaveOneWinner() {
	for round := 0; round < 20; round++ {
		b := s.seedPending()
		providers := make([]uuid.UUID, 8)
		for i := range providers {
			providers[i] = uuid.New()
		}
		s.broadcast(b, providers...)

		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			winners []uuid.UUID
			losers  int
			other   []error
		)
		start := make(chan struct{})
		for _, p := range providers {
			wg.Add(1)
			go func(p uuid.UUID) {
				defer wg.Done()
				<-start
				_, err := s.uc.AcceptBooking(s.ctx, b.ID(), p)
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					winners = append(winners, p)
				case errs.Is(err, errs.ErrAlreadyClaimed):
					losers++
				default:
					other = append(other, err)
				}
			}(p)
		}
		close(start)
		wg.Wait()
		s.Require().NoError(s.uc.Drain(s.ctx))

		s.Require().Empty(other)
		s.Require().Len(winners, 1)
		s.Equal(len(providers)-1, losers)

		stored := s.store.Booking(b.ID())
		s.Equal(booking.StatusConfirmed, stored.Status())
		s.Equal(winners[0], *stored.ProviderID())

		accepted := 0
		for _, st := range s.requestStatuses(b.ID()) {
			if st == dispatch.RequestAccepted {
				accepted++
			}
		}
		s.Equal(1, accepted)
	}
}

// ================================================================================
// RejectBooking
// ================================================================================

func (s *DispatchUseCaseTestSuite) TestRejectBooking() {
	s.Run("success: pending offer becomes rejected", func() {
		b := s.seedPending()
		p := uuid.New()
		s.broadcast(b, p)

		s.Require().NoError(s.uc.RejectBooking(s.ctx, b.ID(), p))
		s.Equal(dispatch.RequestRejected, s.requestStatuses(b.ID())[p])
		s.Equal(booking.StatusPending, s.store.Booking(b.ID()).Status())
	})

	s.Run("already resolved offer is a no-op", func() {
		b := s.seedPending()
		p := uuid.New()
		s.broadcast(b, p)
		s.Require().NoError(s.uc.RejectBooking(s.ctx, b.ID(), p))

		s.NoError(s.uc.RejectBooking(s.ctx, b.ID(), p))
	})

	s.Run("error: unknown pair", func() {
		b := s.seedPending()
		err := s.uc.RejectBooking(s.ctx, b.ID(), uuid.New())
		s.True(errs.Is(err, errs.ErrRequestNotFound))
	})
}

// ================================================================================
// SweepExpired
// ================================================================================

func (s *DispatchUseCaseTestSuite) TestSweepExpired() {
	s.Run("stale offers expire and the booking is re-broadcast", func() {
		b := s.seedPending()
		p1, p2 := uuid.New(), uuid.New()
		s.broadcast(b, p1)
		s.clock.Add(2 * time.Minute)

		s.selector.EXPECT().SelectCandidates(gomock.Any(), gomock.Any()).
			Return([]uuid.UUID{p1, p2}, nil).Times(1)

		res, err := s.uc.SweepExpired(s.ctx)

		s.Require().NoError(err)
		s.Equal(&commands.SweepResult{ExpiredBookings: 1, Rebroadcast: 1}, res)
		statuses := s.requestStatuses(b.ID())
		s.Equal(dispatch.RequestExpired, statuses[p1])
		s.Equal(dispatch.RequestPending, statuses[p2])
		s.Equal(int32(2), s.store.Booking(b.ID()).BroadcastRound())
	})

	s.Run("fresh offers are left alone", func() {
		b := s.seedPending()
		p := uuid.New()
		s.broadcast(b, p)
		s.clock.Add(30 * time.Second)

		res, err := s.uc.SweepExpired(s.ctx)

		s.Require().NoError(err)
		s.Equal(&commands.SweepResult{}, res)
		s.Equal(dispatch.RequestPending, s.requestStatuses(b.ID())[p])
	})

	s.Run("no new candidates spends a round and exhausts only at the last one", func() {
		b := s.seedPending()
		p := uuid.New()
		s.broadcast(b, p)
		s.clock.Add(2 * time.Minute)

		s.selector.EXPECT().SelectCandidates(gomock.Any(), gomock.Any()).
			Return([]uuid.UUID{p}, nil).Times(2)

		res, err := s.uc.SweepExpired(s.ctx)

		s.Require().NoError(err)
		s.Equal(&commands.SweepResult{ExpiredBookings: 1, Deferred: 1}, res)
		s.Nil(s.store.ExhaustedAt(b.ID()))
		s.Equal(int32(2), s.store.Booking(b.ID()).BroadcastRound())
		s.Empty(s.jobsOfKind(commands.NotifyDispatchExhausted))

		// round 3 of 3 finds nobody either
		res, err = s.uc.SweepExpired(s.ctx)

		s.Require().NoError(err)
		s.Equal(&commands.SweepResult{Exhausted: 1}, res)
		s.NotNil(s.store.ExhaustedAt(b.ID()))
		s.Equal(booking.StatusPending, s.store.Booking(b.ID()).Status())
		s.Contains(s.eventKinds(b.ID()), booking.EventDispatchExhausted)

		exhausted := s.jobsOfKind(commands.NotifyDispatchExhausted)
		s.Require().Len(exhausted, 1)
		var payload commands.DispatchExhaustedPayload
		s.Require().NoError(json.Unmarshal(exhausted[0].Payload, &payload))
		s.Equal(b.CustomerID(), payload.CustomerID)

		res, err = s.uc.SweepExpired(s.ctx)
		s.Require().NoError(err)
		s.Equal(&commands.SweepResult{}, res)
	})

	s.Run("a provider coming online between sweeps gets the deferred booking", func() {
		b := s.seedPending()
		first, late := uuid.New(), uuid.New()
		s.broadcast(b, first)
		s.clock.Add(2 * time.Minute)

		gomock.InOrder(
			s.selector.EXPECT().SelectCandidates(gomock.Any(), gomock.Any()).Return(nil, nil),
			s.selector.EXPECT().SelectCandidates(gomock.Any(), gomock.Any()).Return([]uuid.UUID{late}, nil),
		)

		res, err := s.uc.SweepExpired(s.ctx)
		s.Require().NoError(err)
		s.Equal(1, res.Deferred)

		res, err = s.uc.SweepExpired(s.ctx)
		s.Require().NoError(err)
		s.Equal(&commands.SweepResult{Rebroadcast: 1}, res)
		s.Equal(dispatch.RequestPending, s.requestStatuses(b.ID())[late])
		s.Equal(int32(3), s.store.Booking(b.ID()).BroadcastRound())
		s.Nil(s.store.ExhaustedAt(b.ID()))
	})

	s.Run("max rounds reached is exhausted without asking the selector", func() {
		b := s.seedPending()
		s.broadcast(b, uuid.New())
		s.broadcast(b, uuid.New())
		s.broadcast(b, uuid.New())
		s.clock.Add(2 * time.Minute)

		res, err := s.uc.SweepExpired(s.ctx)

		s.Require().NoError(err)
		s.Equal(1, res.Exhausted)
		s.Equal(0, res.Rebroadcast)
	})

	s.Run("never broadcast booking is picked up once stale", func() {
		b := s.seedPending()
		p := uuid.New()
		s.clock.Add(2 * time.Minute)

		s.selector.EXPECT().SelectCandidates(gomock.Any(), gomock.Any()).
			Return([]uuid.UUID{p}, nil).Times(1)

		res, err := s.uc.SweepExpired(s.ctx)

		s.Require().NoError(err)
		s.Equal(1, res.Rebroadcast)
		s.Equal(int32(1), s.store.Booking(b.ID()).BroadcastRound())
	})

	s.Run("selector failure is counted and the sweep continues", func() {
		b := s.seedPending()
		s.broadcast(b, uuid.New())
		s.clock.Add(2 * time.Minute)

		s.selector.EXPECT().SelectCandidates(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("redis down")).Times(1)

		res, err := s.uc.SweepExpired(s.ctx)

		s.Require().NoError(err)
		s.Equal(1, res.Failed)
		s.Nil(s.store.ExhaustedAt(b.ID()))
	})
}

func TestSweepExpired_RebroadcastDisabled(t *testing.T) {
	clk := clock.NewMockClock(builder.DefaultNow)
	store := memstore.New(clk)
	ctrl := gomock.NewController(t)
	selector := sharedmock.NewMockCandidateSelector(ctrl)
	uc := commands.NewDispatchUseCase(store, selector, clk, commands.DispatchPolicy{
		RequestTimeout: time.Minute,
		MaxRounds:      3,
	})

	b := builder.NewBookingBuilder().WithNow(clk.Now()).MustBuildDomain()
	store.PutBooking(b)
	_, err := uc.Broadcast(context.Background(), b.ID(), []uuid.UUID{uuid.New()})
	if err != nil {
		t.Fatal(err)
	}
	clk.Add(2 * time.Minute)

	res, err := uc.SweepExpired(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Exhausted != 1 || res.Rebroadcast != 0 {
		t.Fatalf("unexpected sweep result %+v", res)
	}
}
