//go:build unit || e2e

package builder

import (
	"time"

	"home-dispatch/internal/domain/booking"
	"home-dispatch/internal/domain/review"
	"home-dispatch/internal/domain/user"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	Booking *booking.Booking
	Actor   user.Actor
	Rating  int
	Comment string
	Now     time.Time
}

// NewReviewBuilder starts from a COMPLETED booking reviewed by its customer.
func NewReviewBuilder() *ReviewBuilder {
	bb := NewBookingBuilder()
	return &ReviewBuilder{
		Booking: bb.BuildInStatus(booking.StatusCompleted, uuid.New(), 4),
		Actor:   bb.Customer(),
		Rating:  5,
		Comment: "Fixed the leak in no time",
		Now:     DefaultNow.Add(2 * time.Hour),
	}
}

func (b *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(b)
	return b
}

func (b *ReviewBuilder) WithRating(r int) *ReviewBuilder {
	b.Rating = r
	return b
}

func (b *ReviewBuilder) WithComment(c string) *ReviewBuilder {
	b.Comment = c
	return b
}

func (b *ReviewBuilder) WithBooking(bk *booking.Booking) *ReviewBuilder {
	b.Booking = bk
	b.Actor = user.Actor{ID: bk.CustomerID(), Role: user.RoleCustomer}
	return b
}

func (b *ReviewBuilder) BuildDomain() (*review.Review, error) {
	return review.NewReview(b.Booking, b.Actor, b.Rating, b.Comment, b.Now)
}

func (b *ReviewBuilder) MustBuildDomain() *review.Review {
	r, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return r
}
