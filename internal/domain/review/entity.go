package review

import (
	"time"

	"home-dispatch/internal/domain/booking"
	"home-dispatch/internal/domain/user"
	"home-dispatch/internal/pkg/errs"

	"github.com/google/uuid"
)

// Review is a customer's rating of the provider who completed a booking.
// A booking carries at most one.
type Review struct {
	id         uuid.UUID
	bookingID  uuid.UUID
	customerID uuid.UUID
	providerID uuid.UUID
	rating     Rating
	comment    Comment
	createdAt  time.Time
}

// NewReview rates the provider of b on behalf of actor. Only the booking's
// customer may review, and only once the job is COMPLETED.
func NewReview(b *booking.Booking, actor user.Actor, rating int, comment string, now time.Time) (*Review, error) {
	r, err := NewRating(rating)
	if err != nil {
		return nil, err
	}
	c, err := NewComment(comment)
	if err != nil {
		return nil, err
	}
	if err = CheckEligible(b, actor); err != nil {
		return nil, err
	}
	return &Review{
		id:         uuid.New(),
		bookingID:  b.ID(),
		customerID: b.CustomerID(),
		providerID: *b.ProviderID(),
		rating:     r,
		comment:    c,
		createdAt:  now,
	}, nil
}

func CheckEligible(b *booking.Booking, actor user.Actor) error {
	if !actor.IsCustomer() || b.CustomerID() != actor.ID {
		return errs.Wrapf(errs.ErrForbidden, "booking %s", b.ID())
	}
	if b.Status() != booking.StatusCompleted || b.ProviderID() == nil {
		return errs.Wrapf(errs.ErrNotReviewable, "booking %s is %s", b.ID(), b.Status())
	}
	return nil
}

func Reconstruct(id, bookingID, customerID, providerID uuid.UUID, rating int, comment string, createdAt time.Time) *Review {
	return &Review{
		id:         id,
		bookingID:  bookingID,
		customerID: customerID,
		providerID: providerID,
		rating:     Rating{value: rating},
		comment:    Comment{text: comment},
		createdAt:  createdAt,
	}
}

func (r *Review) ID() uuid.UUID         { return r.id }
func (r *Review) BookingID() uuid.UUID  { return r.bookingID }
func (r *Review) CustomerID() uuid.UUID { return r.customerID }
func (r *Review) ProviderID() uuid.UUID { return r.providerID }
func (r *Review) Rating() Rating        { return r.rating }
func (r *Review) Comment() Comment      { return r.comment }
func (r *Review) CreatedAt() time.Time  { return r.createdAt }
