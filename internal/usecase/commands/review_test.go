//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"home-dispatch/internal/domain/booking"
	"home-dispatch/internal/domain/user"
	"home-dispatch/internal/pkg/clock"
	"home-dispatch/internal/pkg/errs"
	"home-dispatch/internal/usecase/commands"
	"home-dispatch/tests/common/builder"
	"home-dispatch/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type ReviewUseCaseTestSuite struct {
	suite.Suite
	ctx      context.Context
	clock    *clock.MockClock
	store    *memstore.Store
	uc       commands.ReviewCommands
	builder  *builder.BookingBuilder
	provider uuid.UUID
}

func (s *ReviewUseCaseTestSuite) SetupSubTest() {
	s.ctx = context.Background()
	s.clock = clock.NewMockClock(builder.DefaultNow)
	s.store = memstore.New(s.clock)
	s.uc = commands.NewReviewUseCase(s.store, s.clock)
	s.builder = builder.NewBookingBuilder()
	s.provider = uuid.New()
}

func TestReviewUseCaseSuite(t *testing.T) {
	suite.Run(t, new(ReviewUseCaseTestSuite))
}

func (s *ReviewUseCaseTestSuite) seed(status booking.Status) (*booking.Booking, user.Actor) {
	b := s.builder.WithCustomer(uuid.New()).BuildInStatus(status, s.provider, 4)
	s.store.PutBooking(b)
	return b, user.Actor{ID: b.CustomerID(), Role: user.RoleCustomer}
}

func (s *ReviewUseCaseTestSuite) TestSubmitReview() {
	s.Run("success: review stored, stats refreshed, provider notified", func() {
		b, customer := s.seed(booking.StatusCompleted)

		view, err := s.uc.SubmitReview(s.ctx, b.ID(), customer, commands.SubmitReviewInput{Rating: 4, Comment: "  Fixed the leak  "})

		s.Require().NoError(err)
		s.Equal(b.ID(), view.BookingID)
		s.Equal(s.provider, view.ProviderID)
		s.Equal(4, view.Rating)
		s.Equal("Fixed the leak", view.Comment)
		s.Require().NotNil(s.store.Review(b.ID()))

		stats, ok := s.store.ProviderStats(s.provider)
		s.Require().True(ok)
		s.Equal(1, stats.TotalReviews)
		s.InDelta(4.0, stats.AverageRating, 1e-9)
		s.Equal(1, stats.Counts[3])

		events := s.store.Events(b.ID())
		s.Require().NotEmpty(events)
		s.Equal(booking.EventReviewed, events[len(events)-1].Kind)

		jobs := s.store.Jobs()
		s.Require().Len(jobs, 1)
		s.Equal(commands.NotifyReviewReceived, jobs[0].Kind)
		s.Equal(commands.ProviderTopic(s.provider), jobs[0].Topic)
		var payload commands.ReviewReceivedPayload
		s.Require().NoError(json.Unmarshal(jobs[0].Payload, &payload))
		s.Equal(view.ID, payload.ReviewID)
		s.Equal(4, payload.Rating)
	})

	s.Run("success: stats average over every review of the provider", func() {
		first, c1 := s.seed(booking.StatusCompleted)
		second, c2 := s.seed(booking.StatusCompleted)

		_, err := s.uc.SubmitReview(s.ctx, first.ID(), c1, commands.SubmitReviewInput{Rating: 5})
		s.Require().NoError(err)
		_, err = s.uc.SubmitReview(s.ctx, second.ID(), c2, commands.SubmitReviewInput{Rating: 2})
		s.Require().NoError(err)

		stats, _ := s.store.ProviderStats(s.provider)
		s.Equal(2, stats.TotalReviews)
		s.InDelta(3.5, stats.AverageRating, 1e-9)
		s.Equal([5]int{0, 1, 0, 0, 1}, stats.Counts)
	})

	s.Run("error: second review of the same booking", func() {
		b, customer := s.seed(booking.StatusCompleted)
		_, err := s.uc.SubmitReview(s.ctx, b.ID(), customer, commands.SubmitReviewInput{Rating: 5})
		s.Require().NoError(err)

		_, err = s.uc.SubmitReview(s.ctx, b.ID(), customer, commands.SubmitReviewInput{Rating: 1})

		s.True(errs.Is(err, errs.ErrAlreadyReviewed), "got %v", err)
		s.Equal(5, s.store.Review(b.ID()).Rating().Value())
		stats, _ := s.store.ProviderStats(s.provider)
		s.Equal(1, stats.TotalReviews)
		s.Len(s.store.Jobs(), 1)
	})

	s.Run("error: concurrent reviews of one booking store exactly one", func() {
		b, customer := s.seed(booking.StatusCompleted)

		var wg sync.WaitGroup
		results := make([]error, 8)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, results[i] = s.uc.SubmitReview(s.ctx, b.ID(), customer, commands.SubmitReviewInput{Rating: 3})
			}(i)
		}
		wg.Wait()

		succeeded := 0
		for _, err := range results {
			if err == nil {
				succeeded++
				continue
			}
			s.True(errs.Is(err, errs.ErrAlreadyReviewed), "got %v", err)
		}
		s.Equal(1, succeeded)
		stats, _ := s.store.ProviderStats(s.provider)
		s.Equal(1, stats.TotalReviews)
	})

	s.Run("error: booking not completed", func() {
		for _, status := range []booking.Status{booking.StatusPending, booking.StatusInProgress, booking.StatusCancelled} {
			b, customer := s.seed(status)
			_, err := s.uc.SubmitReview(s.ctx, b.ID(), customer, commands.SubmitReviewInput{Rating: 5})
			s.True(errs.Is(err, errs.ErrNotReviewable), "%s: got %v", status, err)
			s.Nil(s.store.Review(b.ID()))
		}
		s.Empty(s.store.Jobs())
	})

	s.Run("error: only the booking's customer may review", func() {
		b, _ := s.seed(booking.StatusCompleted)
		for _, actor := range []user.Actor{
			{ID: uuid.New(), Role: user.RoleCustomer},
			{ID: s.provider, Role: user.RoleProvider},
			{ID: uuid.New(), Role: user.RoleAdmin},
		} {
			_, err := s.uc.SubmitReview(s.ctx, b.ID(), actor, commands.SubmitReviewInput{Rating: 5})
			s.True(errs.Is(err, errs.ErrForbidden), "%s: got %v", actor.Role, err)
		}
		s.Nil(s.store.Review(b.ID()))
	})

	s.Run("error: invalid rating", func() {
		b, customer := s.seed(booking.StatusCompleted)
		_, err := s.uc.SubmitReview(s.ctx, b.ID(), customer, commands.SubmitReviewInput{Rating: 6})
		s.True(errs.Is(err, errs.ErrDomainValidation), "got %v", err)
	})

	s.Run("error: unknown booking", func() {
		_, err := s.uc.SubmitReview(s.ctx, uuid.New(), user.Actor{ID: uuid.New(), Role: user.RoleCustomer}, commands.SubmitReviewInput{Rating: 5})
		s.True(errs.Is(err, errs.ErrBookingNotFound), "got %v", err)
	})

	s.Run("error: failed commit leaves nothing behind", func() {
		b, customer := s.seed(booking.StatusCompleted)
		s.store.FailCommit = errors.New("connection lost")

		_, err := s.uc.SubmitReview(s.ctx, b.ID(), customer, commands.SubmitReviewInput{Rating: 5})

		s.Require().Error(err)
		s.Nil(s.store.Review(b.ID()))
		_, ok := s.store.ProviderStats(s.provider)
		s.False(ok)
	})
}
