package commands

import (
	"context"
	"log/slog"

	"home-dispatch/internal/domain/booking"
	"home-dispatch/internal/domain/user"
	"home-dispatch/internal/infra"
	"home-dispatch/internal/pkg/clock"
	"home-dispatch/internal/pkg/errs"
	"home-dispatch/internal/usecase/queries"
	"home-dispatch/internal/usecase/shared"

	"github.com/google/uuid"
)

type TransitionCommand struct {
	BookingID uuid.UUID
	Target    booking.Status
	Actor     user.Actor
	// OTP is required when Target is IN_PROGRESS.
	OTP       string
	FinalCost *int64
	// ExpectedStatus, when set, must equal the stored status.
	ExpectedStatus *booking.Status
	Reason         string
}

type LifecycleCommands interface {
	Transition(ctx context.Context, cmd TransitionCommand) (*queries.BookingView, error)
}

type lifecycleUseCaseImpl struct {
	uow   shared.UnitOfWork
	otp   OtpCommands
	clock clock.Clock
}

func NewLifecycleUseCase(uow shared.UnitOfWork, otp OtpCommands, clk clock.Clock) LifecycleCommands {
	return &lifecycleUseCaseImpl{uow: uow, otp: otp, clock: clk}
}

func (uc *lifecycleUseCaseImpl) Transition(ctx context.Context, cmd TransitionCommand) (*queries.BookingView, error) {
	var saved *booking.Booking
	var mismatch error
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		mismatch = nil
		b, err := loadBooking(ctx, tx.Reads(), cmd.BookingID)
		if err != nil {
			return err
		}
		if err = uc.precheck(b, cmd); err != nil {
			return err
		}

		if cmd.Target == booking.StatusInProgress {
			if err = uc.otp.Validate(ctx, tx, b.ID(), cmd.OTP); err != nil {
				if IsOtpMismatch(err) {
					// commit the failure count and nothing else
					mismatch = err
					return nil
				}
				return err
			}
		}

		next, err := b.Transition(booking.TransitionInput{
			Target:    cmd.Target,
			Actor:     cmd.Actor,
			FinalCost: cmd.FinalCost,
			Reason:    cmd.Reason,
			Now:       uc.clock.Now(),
		})
		if err != nil {
			return err
		}
		written, err := tx.Bookings().Transition(ctx, tx.DB(), b, next)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, errs.ErrConcurrentModification)
			}
			return err
		}

		if cmd.Target == booking.StatusCancelled {
			if err = tx.Otps().Delete(ctx, tx.DB(), b.ID()); err != nil {
				return err
			}
		}
		if err = recordTransition(ctx, tx, b, written, booking.EventStatusChanged, cmd.Actor); err != nil {
			return err
		}
		saved = written
		return nil
	})
	if err != nil {
		return nil, err
	}
	if mismatch != nil {
		return nil, mismatch
	}

	slog.Info("booking transitioned",
		"booking_id", saved.ID().String(),
		"status", saved.Status().String(),
		"actor_role", cmd.Actor.Role.String())
	return queries.NewBookingView(saved), nil
}

// precheck rejects the command before any write, in the order callers rely on.
func (uc *lifecycleUseCaseImpl) precheck(b *booking.Booking, cmd TransitionCommand) error {
	if cmd.Target == booking.StatusConfirmed {
		return errs.Mark(errs.New("bookings are confirmed only by accepting a dispatch request"), errs.ErrInvalidTransition)
	}
	if !b.IsParty(cmd.Actor) {
		return errs.Mark(errs.Newf("%s %s is not a party to booking %s", cmd.Actor.Role, cmd.Actor.ID, b.ID()), errs.ErrForbidden)
	}
	if cmd.Target == booking.StatusInProgress && b.Status() == booking.StatusInProgress {
		return errs.Wrapf(errs.ErrInvalidOtp, "booking %s already started", b.ID())
	}
	if cmd.ExpectedStatus != nil && *cmd.ExpectedStatus != b.Status() {
		return errs.Mark(errs.Newf("booking %s is %s, caller expected %s", b.ID(), b.Status(), *cmd.ExpectedStatus), errs.ErrConcurrentModification)
	}
	if err := booking.ValidateTransition(b.Status(), cmd.Target); err != nil {
		return err
	}
	return b.AuthorizeTransition(cmd.Actor, cmd.Target)
}
