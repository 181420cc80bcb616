package commands

import (
	"context"
	"log/slog"

	"home-dispatch/internal/domain/booking"
	"home-dispatch/internal/domain/review"
	"home-dispatch/internal/domain/user"
	"home-dispatch/internal/infra"
	"home-dispatch/internal/pkg/clock"
	"home-dispatch/internal/pkg/errs"
	"home-dispatch/internal/usecase/queries"
	"home-dispatch/internal/usecase/shared"

	"github.com/google/uuid"
)

type SubmitReviewInput struct {
	Rating  int
	Comment string
}

type ReviewCommands interface {
	// SubmitReview rates the provider of a COMPLETED booking, once per booking,
	// and refreshes the provider's rating stats in the same transaction.
	SubmitReview(ctx context.Context, bookingID uuid.UUID, actor user.Actor, in SubmitReviewInput) (*queries.ReviewView, error)
}

type reviewUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewUseCase(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow, clock: clk}
}

func (uc *reviewUseCaseImpl) SubmitReview(ctx context.Context, bookingID uuid.UUID, actor user.Actor, in SubmitReviewInput) (*queries.ReviewView, error) {
	var saved *review.Review
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := loadBooking(ctx, tx.Reads(), bookingID)
		if err != nil {
			return err
		}
		now := uc.clock.Now()
		rev, err := review.NewReview(b, actor, in.Rating, in.Comment, now)
		if err != nil {
			return err
		}

		stored, err := tx.Reviews().Create(ctx, tx.DB(), rev)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Wrapf(errs.ErrAlreadyReviewed, "booking %s", bookingID)
			}
			return err
		}
		if err = tx.RatingStats().Recalc(ctx, tx.DB(), stored.ProviderID(), now); err != nil {
			return err
		}
		if err = tx.Events().Append(ctx, tx.DB(), booking.NewReviewedEvent(b.ID(), actor, stored.Rating().Value(), now)); err != nil {
			return err
		}
		payload := ReviewReceivedPayload{
			BookingID:  b.ID(),
			ReviewID:   stored.ID(),
			ProviderID: stored.ProviderID(),
			Rating:     stored.Rating().Value(),
		}
		if err = enqueue(ctx, tx, NotifyReviewReceived, ProviderTopic(stored.ProviderID()), payload, now); err != nil {
			return err
		}
		saved = stored
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("booking reviewed",
		"booking_id", saved.BookingID().String(),
		"provider_id", saved.ProviderID().String(),
		"rating", saved.Rating().Value())
	return queries.NewReviewView(saved), nil
}
