//go:build unit

package review_test

import (
	"strings"
	"testing"

	"home-dispatch/internal/domain/booking"
	"home-dispatch/internal/domain/review"
	"home-dispatch/internal/domain/user"
	"home-dispatch/internal/pkg/errs"
	"home-dispatch/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReviewBuilder)
	errIs  error
}

func TestReview(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewReviewBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, b.Booking.ID(), actual.BookingID())
		assert.Equal(t, b.Booking.CustomerID(), actual.CustomerID())
		assert.Equal(t, *b.Booking.ProviderID(), actual.ProviderID())
		assert.Equal(t, 5, actual.Rating().Value())
		assert.Equal(t, "Fixed the leak in no time", actual.Comment().String())
		assert.Equal(t, b.Now, actual.CreatedAt())
	})

	t.Run("rating validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "below minimum rating", mutate: func(b *builder.ReviewBuilder) { b.WithRating(0) }, errIs: review.ErrInvalidRating},
			{name: "minimum valid rating", mutate: func(b *builder.ReviewBuilder) { b.WithRating(1) }},
			{name: "maximum valid rating", mutate: func(b *builder.ReviewBuilder) { b.WithRating(5) }},
			{name: "above maximum rating", mutate: func(b *builder.ReviewBuilder) { b.WithRating(6) }, errIs: review.ErrInvalidRating},
		})
	})

	t.Run("comment validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "empty comment is allowed", mutate: func(b *builder.ReviewBuilder) { b.WithComment("") }},
			{
				name:   "maximum length counts runes",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment(strings.Repeat("良", review.MaxCommentLength)) },
			},
			{
				name:   "comment exceeds maximum length",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment(strings.Repeat("a", review.MaxCommentLength+1)) },
				errIs:  review.ErrCommentTooLong,
			},
		})
	})

	t.Run("eligibility", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name: "booking not completed yet",
				mutate: func(b *builder.ReviewBuilder) {
					b.WithBooking(builder.NewBookingBuilder().BuildInStatus(booking.StatusInProgress, uuid.New(), 3))
				},
				errIs: errs.ErrNotReviewable,
			},
			{
				name: "cancelled booking",
				mutate: func(b *builder.ReviewBuilder) {
					b.WithBooking(builder.NewBookingBuilder().BuildInStatus(booking.StatusCancelled, uuid.New(), 1))
				},
				errIs: errs.ErrNotReviewable,
			},
			{
				name:   "another customer",
				mutate: func(b *builder.ReviewBuilder) { b.Actor = user.Actor{ID: uuid.New(), Role: user.RoleCustomer} },
				errIs:  errs.ErrForbidden,
			},
			{
				name:   "the provider reviewing itself",
				mutate: func(b *builder.ReviewBuilder) { b.Actor = user.Actor{ID: *b.Booking.ProviderID(), Role: user.RoleProvider} },
				errIs:  errs.ErrForbidden,
			},
			{
				name:   "admin",
				mutate: func(b *builder.ReviewBuilder) { b.Actor = user.Actor{ID: uuid.New(), Role: user.RoleAdmin} },
				errIs:  errs.ErrForbidden,
			},
		})
	})

	t.Run("comment trimming", func(t *testing.T) {
		actual, err := builder.NewReviewBuilder().WithComment("  Tidy work  ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "Tidy work", actual.Comment().String())
	})

	t.Run("validation errors are marked for the transport layer", func(t *testing.T) {
		_, err := builder.NewReviewBuilder().WithRating(9).BuildDomain()
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewReviewBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.True(t, errs.Is(err, c.errIs), "got %v", err)
			}
		})
	}
}
