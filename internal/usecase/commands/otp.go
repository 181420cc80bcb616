package commands

import (
	"context"
	"log/slog"
	"time"

	"home-dispatch/internal/domain/booking"
	"home-dispatch/internal/domain/otp"
	"home-dispatch/internal/domain/user"
	"home-dispatch/internal/infra"
	"home-dispatch/internal/pkg/clock"
	"home-dispatch/internal/pkg/errs"
	"home-dispatch/internal/usecase/shared"

	"github.com/google/uuid"
)

// errOtpMismatch is the one validation failure that counts against the attempt limit.
var errOtpMismatch = errs.Mark(errs.New("otp does not match"), errs.ErrInvalidOtp)

// IsOtpMismatch reports a wrong code. Its failure count lives in the
// validating transaction, which the caller must commit.
func IsOtpMismatch(err error) bool {
	return errs.Is(err, errOtpMismatch)
}

type OtpResult struct {
	Code     string    `json:"code"`
	IssuedAt time.Time `json:"issued_at"`
	Locked   bool      `json:"locked"`
}

type OtpCommands interface {
	Issue(ctx context.Context, bookingID uuid.UUID, actor user.Actor) (*OtpResult, error)
	// Get discloses the active code to the customer, issuing one when none exists.
	Get(ctx context.Context, bookingID uuid.UUID, actor user.Actor) (*OtpResult, error)
	// Validate locks the active challenge and consumes it inside tx. A
	// mismatch is counted inside tx too; see IsOtpMismatch.
	Validate(ctx context.Context, tx shared.Tx, bookingID uuid.UUID, code string) error
}

type otpUseCaseImpl struct {
	uow         shared.UnitOfWork
	generator   otp.Generator
	clock       clock.Clock
	maxAttempts int
}

func NewOtpUseCase(uow shared.UnitOfWork, generator otp.Generator, clk clock.Clock, maxFailedAttempts int) OtpCommands {
	return &otpUseCaseImpl{
		uow:         uow,
		generator:   generator,
		clock:       clk,
		maxAttempts: maxFailedAttempts,
	}
}

func (uc *otpUseCaseImpl) Issue(ctx context.Context, bookingID uuid.UUID, actor user.Actor) (*OtpResult, error) {
	var res *OtpResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := uc.loadForDisclosure(ctx, tx, bookingID, actor)
		if err != nil {
			return err
		}
		res, err = uc.issue(ctx, tx, b, actor)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (uc *otpUseCaseImpl) Get(ctx context.Context, bookingID uuid.UUID, actor user.Actor) (*OtpResult, error) {
	var res *OtpResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := uc.loadForDisclosure(ctx, tx, bookingID, actor)
		if err != nil {
			return err
		}

		ch, err := tx.Reads().OtpByBooking(ctx, bookingID)
		switch {
		case err == nil && !ch.IsConsumed():
			res = &OtpResult{Code: ch.Code(), IssuedAt: ch.CreatedAt(), Locked: ch.IsLocked(uc.maxAttempts)}
			return nil
		case err != nil && !infra.IsKind(err, infra.KindNotFound):
			return err
		}
		res, err = uc.issue(ctx, tx, b, actor)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (uc *otpUseCaseImpl) Validate(ctx context.Context, tx shared.Tx, bookingID uuid.UUID, code string) error {
	ch, err := tx.Otps().Lock(ctx, tx.DB(), bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Wrapf(errs.ErrInvalidOtp, "no otp issued for booking %s", bookingID)
		}
		return err
	}
	if ch.IsConsumed() {
		return errs.Wrapf(errs.ErrInvalidOtp, "otp for booking %s already used", bookingID)
	}
	if ch.IsLocked(uc.maxAttempts) {
		return errs.Wrapf(errs.ErrOtpLocked, "booking %s", bookingID)
	}
	if !ch.Matches(code) {
		attempts, ferr := tx.Otps().RecordFailure(ctx, tx.DB(), bookingID)
		if ferr != nil {
			return ferr
		}
		if uc.maxAttempts > 0 && int(attempts) == uc.maxAttempts {
			slog.Warn("otp locked after failed attempts",
				"booking_id", bookingID.String(),
				"attempts", attempts)
		}
		return errs.Wrapf(errOtpMismatch, "booking %s", bookingID)
	}

	consumed, err := tx.Otps().Consume(ctx, tx.DB(), bookingID, code, uc.clock.Now())
	if err != nil {
		return err
	}
	if !consumed {
		return errs.Wrapf(errs.ErrInvalidOtp, "otp for booking %s already used", bookingID)
	}
	return nil
}

// loadForDisclosure admits the booking's customer and admins while the booking is OTP-eligible.
func (uc *otpUseCaseImpl) loadForDisclosure(ctx context.Context, tx shared.Tx, bookingID uuid.UUID, actor user.Actor) (*booking.Booking, error) {
	b, err := loadBooking(ctx, tx.Reads(), bookingID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && !(actor.IsCustomer() && b.CustomerID() == actor.ID) {
		return nil, errs.Mark(errs.Newf("%s %s cannot read the otp of booking %s", actor.Role, actor.ID, bookingID), errs.ErrForbidden)
	}
	if !b.Status().OtpEligible() {
		return nil, errs.Mark(errs.Newf("booking %s is %s; otp needs CONFIRMED or EN_ROUTE", bookingID, b.Status()), errs.ErrInvalidTransition)
	}
	return b, nil
}

func (uc *otpUseCaseImpl) issue(ctx context.Context, tx shared.Tx, b *booking.Booking, actor user.Actor) (*OtpResult, error) {
	code, err := uc.generator.Generate()
	if err != nil {
		return nil, errs.Wrap(err, "generate otp")
	}
	now := uc.clock.Now()
	ch, err := tx.Otps().Upsert(ctx, tx.DB(), otp.NewChallenge(b.ID(), code, now))
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, errs.ErrInvalidTransition)
		}
		return nil, err
	}

	event := booking.LifecycleEvent{
		BookingID: b.ID(),
		Kind:      booking.EventOtpIssued,
		Actor:     &actor,
		At:        now,
	}
	if err = tx.Events().Append(ctx, tx.DB(), event); err != nil {
		return nil, err
	}
	return &OtpResult{Code: ch.Code(), IssuedAt: ch.CreatedAt()}, nil
}
