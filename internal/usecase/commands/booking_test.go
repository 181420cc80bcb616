//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"home-dispatch/internal/domain/booking"
	"home-dispatch/internal/domain/user"
	"home-dispatch/internal/pkg/clock"
	"home-dispatch/internal/pkg/errs"
	"home-dispatch/internal/usecase/commands"
	"home-dispatch/internal/usecase/queries"
	"home-dispatch/internal/usecase/shared"
	"home-dispatch/tests/common/builder"
	"home-dispatch/tests/common/memstore"
	commandsmock "home-dispatch/tests/mock/commands"
	queriesmock "home-dispatch/tests/mock/queries"
	sharedmock "home-dispatch/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingUseCaseTestSuite struct {
	suite.Suite
	ctx          context.Context
	clock        *clock.MockClock
	store        *memstore.Store
	mockCtrl     *gomock.Controller
	mockDispatch *commandsmock.MockDispatchCommands
	mockGeocoder *sharedmock.MockGeocoder
	mockQueries  *queriesmock.MockBookingQueries
	uc           commands.BookingCommands
	builder      *builder.BookingBuilder
}

func (s *BookingUseCaseTestSuite) SetupSubTest() {
	s.ctx = context.Background()
	s.clock = clock.NewMockClock(builder.DefaultNow)
	s.store = memstore.New(s.clock)
	s.mockCtrl = gomock.NewController(s.T())
	s.mockDispatch = commandsmock.NewMockDispatchCommands(s.mockCtrl)
	s.mockGeocoder = sharedmock.NewMockGeocoder(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.uc = commands.NewBookingUseCase(s.store, s.mockDispatch, s.mockGeocoder, s.mockQueries, s.clock)
	s.builder = builder.NewBookingBuilder()

	// views come straight from the store so assertions see what was committed
	s.mockQueries.EXPECT().GetByIDSystem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
			b := s.store.Booking(id)
			if b == nil {
				return nil, errs.ErrBookingNotFound
			}
			return queries.NewBookingView(b), nil
		}).AnyTimes()
}

func TestBookingUseCaseSuite(t *testing.T) {
	suite.Run(t, new(BookingUseCaseTestSuite))
}

func (s *BookingUseCaseTestSuite) expectDispatch(providers int, err error) {
	s.mockDispatch.EXPECT().Dispatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID) ([]*queries.RequestView, error) {
			if err != nil {
				return nil, err
			}
			return make([]*queries.RequestView, providers), nil
		}).Times(1)
}

func (s *BookingUseCaseTestSuite) TestCreateBooking() {
	s.Run("success: stores a pending booking and reports the broadcast", func() {
		s.expectDispatch(3, nil)

		res, err := s.uc.CreateBooking(s.ctx, s.builder.BuildCommand(), s.builder.Customer(), nil)

		s.Require().NoError(err)
		s.False(res.Replayed)
		s.Equal(commands.DispatchOutcome{Status: commands.DispatchBroadcast, Providers: 3}, res.Dispatch)
		s.Equal(booking.StatusPending.String(), res.Booking.Status)
		s.Equal(s.builder.CustomerID, res.Booking.CustomerID)
		s.Equal(builder.DefaultNow, res.Booking.CreatedAt)

		events := s.store.Events(res.Booking.ID)
		s.Require().Len(events, 1)
		s.Equal(booking.EventCreated, events[0].Kind)
	})

	s.Run("no candidates still creates the booking", func() {
		s.expectDispatch(0, errs.Wrap(errs.ErrNoCandidates, "booking"))

		res, err := s.uc.CreateBooking(s.ctx, s.builder.BuildCommand(), s.builder.Customer(), nil)

		s.Require().NoError(err)
		s.Equal(commands.DispatchNoCandidates, res.Dispatch.Status)
		s.NotNil(s.store.Booking(res.Booking.ID))
	})

	s.Run("dispatch failure still creates the booking", func() {
		s.expectDispatch(0, errors.New("redis down"))

		res, err := s.uc.CreateBooking(s.ctx, s.builder.BuildCommand(), s.builder.Customer(), nil)

		s.Require().NoError(err)
		s.Equal(commands.DispatchFailed, res.Dispatch.Status)
	})

	s.Run("error: only customers create bookings", func() {
		for _, role := range []user.Role{user.RoleProvider, user.RoleAdmin} {
			_, err := s.uc.CreateBooking(s.ctx, s.builder.BuildCommand(), user.Actor{ID: uuid.New(), Role: role}, nil)
			s.True(errs.Is(err, errs.ErrForbidden))
		}
		s.Empty(s.store.Bookings())
	})

	s.Run("error: invalid input stores nothing", func() {
		cmd := s.builder.BuildCommand()
		cmd.Category = "Not A Slug!"

		_, err := s.uc.CreateBooking(s.ctx, cmd, s.builder.Customer(), nil)

		s.True(errs.Is(err, booking.ErrInvalidCategory))
		s.Empty(s.store.Bookings())
	})
}

func (s *BookingUseCaseTestSuite) TestCreateBooking_Geocoding() {
	s.Run("missing coordinates are geocoded from the address", func() {
		s.builder.WithoutLocation()
		loc, err := booking.NewLocation(35.0, 139.0)
		s.Require().NoError(err)

		s.mockGeocoder.EXPECT().Geocode(gomock.Any(), "1-9-1 Marunouchi, Tokyo, 100-0005").
			Return(&loc, nil).Times(1)
		s.expectDispatch(1, nil)

		res, err := s.uc.CreateBooking(s.ctx, s.builder.BuildCommand(), s.builder.Customer(), nil)

		s.Require().NoError(err)
		s.Require().NotNil(res.Booking.Location)
		s.Equal(queries.LocationView{Lat: 35.0, Lng: 139.0}, *res.Booking.Location)
	})

	s.Run("geocoder failure leaves the booking without coordinates", func() {
		s.builder.WithoutLocation()
		s.mockGeocoder.EXPECT().Geocode(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("quota exceeded")).Times(1)
		s.expectDispatch(1, nil)

		res, err := s.uc.CreateBooking(s.ctx, s.builder.BuildCommand(), s.builder.Customer(), nil)

		s.Require().NoError(err)
		s.Nil(res.Booking.Location)
	})

	s.Run("supplied coordinates skip the geocoder", func() {
		s.expectDispatch(1, nil)

		_, err := s.uc.CreateBooking(s.ctx, s.builder.BuildCommand(), s.builder.Customer(), nil)
		s.Require().NoError(err)
	})
}

func (s *BookingUseCaseTestSuite) TestCreateBooking_Idempotency() {
	s.Run("replay returns the original booking without dispatching again", func() {
		key := uuid.New()
		s.expectDispatch(2, nil)

		first, err := s.uc.CreateBooking(s.ctx, s.builder.BuildCommand(), s.builder.Customer(), &key)
		s.Require().NoError(err)

		second, err := s.uc.CreateBooking(s.ctx, s.builder.BuildCommand(), s.builder.Customer(), &key)
		s.Require().NoError(err)

		s.True(second.Replayed)
		s.Equal(commands.DispatchReplayed, second.Dispatch.Status)
		s.Equal(first.Booking.ID, second.Booking.ID)
		s.Len(s.store.Bookings(), 1)

		rec := s.store.Idempotency(key, s.builder.CustomerID)
		s.Require().NotNil(rec)
		s.Equal(shared.IdempotencyCompleted, rec.Status)
		s.Equal(first.Booking.ID, *rec.ResultBookingID)
	})

	s.Run("same key from another customer is independent", func() {
		key := uuid.New()
		s.expectDispatch(1, nil)
		s.expectDispatch(1, nil)

		first, err := s.uc.CreateBooking(s.ctx, s.builder.BuildCommand(), s.builder.Customer(), &key)
		s.Require().NoError(err)
		other := user.Actor{ID: uuid.New(), Role: user.RoleCustomer}
		second, err := s.uc.CreateBooking(s.ctx, s.builder.BuildCommand(), other, &key)
		s.Require().NoError(err)

		s.NotEqual(first.Booking.ID, second.Booking.ID)
		s.False(second.Replayed)
	})

	s.Run("error: same key with a different body", func() {
		key := uuid.New()
		s.expectDispatch(1, nil)
		_, err := s.uc.CreateBooking(s.ctx, s.builder.BuildCommand(), s.builder.Customer(), &key)
		s.Require().NoError(err)

		changed := s.builder.BuildCommand()
		changed.EstimatedCost++
		_, err = s.uc.CreateBooking(s.ctx, changed, s.builder.Customer(), &key)

		s.True(errs.Is(err, errs.ErrIdempotencyConflict))
		s.Len(s.store.Bookings(), 1)
	})

	s.Run("error: key still processing", func() {
		key := uuid.New()
		s.store.PutIdempotency(shared.IdempotencyRecord{
			Key:         key,
			UserID:      s.builder.CustomerID,
			Endpoint:    "POST /api/bookings",
			Status:      shared.IdempotencyProcessing,
			RequestHash: hashOf(s, key),
			ExpiresAt:   s.clock.Now().Add(time.Hour),
		})

		_, err := s.uc.CreateBooking(s.ctx, s.builder.BuildCommand(), s.builder.Customer(), &key)
		s.True(errs.Is(err, errs.ErrIdempotencyInProgress))
		s.Empty(s.store.Bookings())
	})

	s.Run("expired key is claimed afresh", func() {
		key := uuid.New()
		s.store.PutIdempotency(shared.IdempotencyRecord{
			Key:         key,
			UserID:      s.builder.CustomerID,
			Endpoint:    "POST /api/bookings",
			Status:      shared.IdempotencyCompleted,
			RequestHash: "stale-hash",
			ExpiresAt:   s.clock.Now().Add(-time.Minute),
		})
		s.expectDispatch(1, nil)

		res, err := s.uc.CreateBooking(s.ctx, s.builder.BuildCommand(), s.builder.Customer(), &key)

		s.Require().NoError(err)
		s.False(res.Replayed)
		rec := s.store.Idempotency(key, s.builder.CustomerID)
		s.Equal(res.Booking.ID, *rec.ResultBookingID)
		s.True(rec.ExpiresAt.After(s.clock.Now()))
	})

	s.Run("failed create releases the key", func() {
		key := uuid.New()
		s.store.FailCommit = errors.New("commit failed")
		_, err := s.uc.CreateBooking(s.ctx, s.builder.BuildCommand(), s.builder.Customer(), &key)
		s.Require().Error(err)
		s.store.FailCommit = nil

		s.Nil(s.store.Idempotency(key, s.builder.CustomerID))
		s.expectDispatch(1, nil)
		res, err := s.uc.CreateBooking(s.ctx, s.builder.BuildCommand(), s.builder.Customer(), &key)
		s.Require().NoError(err)
		s.False(res.Replayed)
	})
}

// hashOf captures the request hash the use case stores for the builder's command.
func hashOf(s *BookingUseCaseTestSuite, key uuid.UUID) string {
	probe := memstore.New(s.clock)
	ctrl := gomock.NewController(s.T())
	d := commandsmock.NewMockDispatchCommands(ctrl)
	d.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil, errs.ErrNoCandidates).AnyTimes()
	q := queriesmock.NewMockBookingQueries(ctrl)
	q.EXPECT().GetByIDSystem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
			return queries.NewBookingView(probe.Booking(id)), nil
		}).AnyTimes()

	uc := commands.NewBookingUseCase(probe, d, nil, q, s.clock)
	_, err := uc.CreateBooking(s.ctx, s.builder.BuildCommand(), s.builder.Customer(), &key)
	s.Require().NoError(err)
	return probe.Idempotency(key, s.builder.CustomerID).RequestHash
}
