package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"home-dispatch/internal/domain/booking"
	"home-dispatch/internal/domain/user"
	"home-dispatch/internal/infra"
	"home-dispatch/internal/pkg/clock"
	"home-dispatch/internal/pkg/errs"
	"home-dispatch/internal/usecase/queries"
	"home-dispatch/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	createBookingEndpoint = "POST /api/bookings"
	idempotencyTTL        = 24 * time.Hour
)

// Dispatch outcomes reported with a newly created booking.
const (
	DispatchBroadcast    = "broadcast"
	DispatchNoCandidates = "no_candidates"
	DispatchFailed       = "failed"
	DispatchReplayed     = "replayed"
)

type CreateBookingRequest struct {
	Category      string     `json:"service_category"`
	Requirements  string     `json:"requirements"`
	AddressLine   string     `json:"address_line"`
	City          string     `json:"city"`
	PostalCode    string     `json:"postal_code"`
	Latitude      *float64   `json:"latitude"`
	Longitude     *float64   `json:"longitude"`
	EstimatedCost int64      `json:"estimated_cost"`
	ScheduledAt   *time.Time `json:"scheduled_at"`
}

type DispatchOutcome struct {
	Status    string `json:"status"`
	Providers int    `json:"providers"`
}

type CreateBookingResult struct {
	Booking  *queries.BookingView
	Dispatch DispatchOutcome
	Replayed bool
}

type BookingCommands interface {
	// CreateBooking stores a PENDING booking and dispatches it. A nil
	// idempotencyKey disables replay protection.
	CreateBooking(ctx context.Context, req CreateBookingRequest, actor user.Actor, idempotencyKey *uuid.UUID) (*CreateBookingResult, error)
}

type bookingUseCaseImpl struct {
	uow      shared.UnitOfWork
	dispatch DispatchCommands
	geocoder shared.Geocoder
	queries  queries.BookingQueries
	clock    clock.Clock
}

// NewBookingUseCase accepts a nil geocoder; bookings without coordinates are then dispatched by category alone.
func NewBookingUseCase(
	uow shared.UnitOfWork,
	dispatch DispatchCommands,
	geocoder shared.Geocoder,
	bookingQueries queries.BookingQueries,
	clk clock.Clock,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:      uow,
		dispatch: dispatch,
		geocoder: geocoder,
		queries:  bookingQueries,
		clock:    clk,
	}
}

func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, req CreateBookingRequest, actor user.Actor, idempotencyKey *uuid.UUID) (*CreateBookingResult, error) {
	if !actor.IsCustomer() {
		return nil, errs.Mark(errs.Newf("%s cannot create bookings", actor.Role), errs.ErrForbidden)
	}

	now := uc.clock.Now()
	b, err := booking.NewBooking(booking.NewBookingParams{
		CustomerID:    actor.ID,
		Category:      req.Category,
		Requirements:  req.Requirements,
		AddressLine:   req.AddressLine,
		City:          req.City,
		PostalCode:    req.PostalCode,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		EstimatedCost: req.EstimatedCost,
		ScheduledAt:   req.ScheduledAt,
	}, now)
	if err != nil {
		return nil, err
	}

	var (
		created  *booking.Booking
		replayID *uuid.UUID
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, replayID = nil, nil
		if idempotencyKey != nil {
			prior, ierr := uc.claimIdempotencyKey(ctx, tx, *idempotencyKey, actor.ID, requestHash(req), now)
			if ierr != nil {
				return ierr
			}
			if prior != nil {
				replayID = prior
				return nil
			}
		}

		saved, derr := tx.Bookings().Create(ctx, tx.DB(), b)
		if derr != nil {
			return derr
		}
		if derr = tx.Events().Append(ctx, tx.DB(), booking.NewCreatedEvent(saved)); derr != nil {
			return derr
		}
		if idempotencyKey != nil {
			if derr = tx.Idempotency().Complete(ctx, tx.DB(), *idempotencyKey, actor.ID, saved.ID()); derr != nil {
				return derr
			}
		}
		created = saved
		return nil
	})
	if err != nil {
		return nil, err
	}

	if replayID != nil {
		view, qerr := uc.queries.GetByIDSystem(ctx, *replayID)
		if qerr != nil {
			return nil, qerr
		}
		return &CreateBookingResult{Booking: view, Dispatch: DispatchOutcome{Status: DispatchReplayed}, Replayed: true}, nil
	}

	slog.Info("booking created",
		"booking_id", created.ID().String(),
		"customer_id", actor.ID.String(),
		"service_category", created.Category().String())

	uc.geocode(ctx, created)
	outcome := uc.dispatchNew(ctx, created.ID())

	view, err := uc.queries.GetByIDSystem(ctx, created.ID())
	if err != nil {
		return nil, err
	}
	return &CreateBookingResult{Booking: view, Dispatch: outcome}, nil
}

// claimIdempotencyKey returns the booking a completed earlier request produced,
// or nil when this request now owns the key. It runs inside the creating
// transaction, so a failed create releases the key.
func (uc *bookingUseCaseImpl) claimIdempotencyKey(ctx context.Context, tx shared.Tx, key, userID uuid.UUID, hash string, now time.Time) (*uuid.UUID, error) {
	expiresAt := now.Add(idempotencyTTL)
	inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), key, userID, createBookingEndpoint, hash, expiresAt)
	if err != nil {
		return nil, err
	}
	if inserted {
		return nil, nil
	}

	rec, err := tx.Reads().IdempotencyByKey(ctx, key, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrap(errs.ErrIdempotencyInProgress, "idempotency key vanished")
		}
		return nil, err
	}

	if rec.ExpiresAt.Before(now) {
		claimed, cerr := tx.Idempotency().ClaimExpired(ctx, tx.DB(), key, userID, hash, expiresAt)
		if cerr != nil {
			return nil, cerr
		}
		if claimed {
			return nil, nil
		}
	}

	if rec.RequestHash != hash || rec.Endpoint != createBookingEndpoint {
		return nil, errs.Wrapf(errs.ErrIdempotencyConflict, "key %s", key)
	}
	switch rec.Status {
	case shared.IdempotencyCompleted:
		if rec.ResultBookingID == nil {
			return nil, errs.New("completed idempotency key has no result booking")
		}
		return rec.ResultBookingID, nil
	case shared.IdempotencyProcessing:
		return nil, errs.Wrapf(errs.ErrIdempotencyInProgress, "key %s", key)
	default:
		return nil, errs.Newf("invalid idempotency key status %q", rec.Status)
	}
}

// geocode fills a missing location. Failures leave the booking without coordinates.
func (uc *bookingUseCaseImpl) geocode(ctx context.Context, b *booking.Booking) {
	if b.Location() != nil || uc.geocoder == nil {
		return
	}
	loc, err := uc.geocoder.Geocode(ctx, b.Address().Full())
	if err != nil || loc == nil {
		attrs := []any{"booking_id", b.ID().String()}
		if err != nil {
			attrs = append(attrs, "error", err.Error())
		}
		slog.Warn("geocoding failed", attrs...)
		return
	}
	err = uc.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().UpdateLocation(ctx, tx.DB(), b.ID(), *loc)
	})
	if err != nil {
		slog.Warn("failed to store geocoded location",
			"booking_id", b.ID().String(),
			"error", err.Error())
		return
	}
	b.SetLocation(*loc)
}

func (uc *bookingUseCaseImpl) dispatchNew(ctx context.Context, bookingID uuid.UUID) DispatchOutcome {
	reqs, err := uc.dispatch.Dispatch(ctx, bookingID)
	switch {
	case err == nil:
		return DispatchOutcome{Status: DispatchBroadcast, Providers: len(reqs)}
	case errs.Is(err, errs.ErrNoCandidates):
		return DispatchOutcome{Status: DispatchNoCandidates}
	default:
		slog.Warn("initial dispatch failed",
			"booking_id", bookingID.String(),
			"error", err.Error())
		return DispatchOutcome{Status: DispatchFailed}
	}
}

func requestHash(req CreateBookingRequest) string {
	data, _ := json.Marshal(req)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
