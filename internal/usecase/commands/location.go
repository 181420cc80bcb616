package commands

import (
	"context"

	"home-dispatch/internal/domain/booking"
	"home-dispatch/internal/domain/user"
	"home-dispatch/internal/pkg/clock"
	"home-dispatch/internal/pkg/errs"
	"home-dispatch/internal/usecase/shared"

	"github.com/google/uuid"
)

type LocationCommands interface {
	// ReportLocation relays the assigned provider's position while travelling to or working on the job.
	ReportLocation(ctx context.Context, bookingID uuid.UUID, actor user.Actor, lat, lng float64) error
}

type locationUseCaseImpl struct {
	uow       shared.UnitOfWork
	publisher shared.LocationPublisher
	clock     clock.Clock
}

func NewLocationUseCase(uow shared.UnitOfWork, publisher shared.LocationPublisher, clk clock.Clock) LocationCommands {
	return &locationUseCaseImpl{uow: uow, publisher: publisher, clock: clk}
}

func (uc *locationUseCaseImpl) ReportLocation(ctx context.Context, bookingID uuid.UUID, actor user.Actor, lat, lng float64) error {
	loc, err := booking.NewLocation(lat, lng)
	if err != nil {
		return err
	}
	b, err := loadBooking(ctx, uc.uow.CommandReads(), bookingID)
	if err != nil {
		return err
	}
	if !actor.IsProvider() || !b.IsAssignedTo(actor.ID) {
		return errs.Mark(errs.Newf("%s %s is not assigned to booking %s", actor.Role, actor.ID, bookingID), errs.ErrForbidden)
	}
	if b.Status() != booking.StatusEnRoute && b.Status() != booking.StatusInProgress {
		return errs.Mark(errs.Newf("booking %s is %s; location is shared only en route or in progress", bookingID, b.Status()), errs.ErrInvalidTransition)
	}

	return uc.publisher.PublishLocation(ctx, shared.LocationUpdate{
		BookingID:  bookingID,
		ProviderID: actor.ID,
		Lat:        loc.Lat(),
		Lng:        loc.Lng(),
		At:         uc.clock.Now(),
	})
}
