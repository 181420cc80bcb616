package repository

import (
	"context"
	"time"

	"home-dispatch/internal/domain/booking"
	"home-dispatch/internal/infra"
	"home-dispatch/internal/infra/repository/converter"
	sqlc "home-dispatch/internal/infra/sqlc/generated"
	"home-dispatch/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.Bookings, error)
	ConfirmBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.ConfirmBookingParams) (sqlc.Bookings, error)
	TransitionBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.TransitionBookingParams) (sqlc.Bookings, error)
	StartBroadcastRound(ctx context.Context, db sqlc.DBTX, arg sqlc.StartBroadcastRoundParams) (int32, error)
	UpdateBookingLocation(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingLocationParams) error
	MarkDispatchExhausted(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkDispatchExhaustedParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (*booking.Booking, error) {
	row, err := r.queries.CreateBooking(ctx, tx, converter.BookingToCreateParams(b))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return converter.BookingFromRow(row), nil
}

func (r *BookingRepository) Confirm(ctx context.Context, tx sqlc.DBTX, bookingID, providerID uuid.UUID, at time.Time) (*booking.Booking, error) {
	row, err := r.queries.ConfirmBooking(ctx, tx, sqlc.ConfirmBookingParams{
		ProviderID:  pgconv.UUIDToPgtype(providerID),
		ConfirmedAt: pgconv.TimeToPgtype(at),
		ID:          bookingID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking is no longer pending", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to confirm booking", err)
	}
	return converter.BookingFromRow(row), nil
}

func (r *BookingRepository) Transition(ctx context.Context, tx sqlc.DBTX, prev, next *booking.Booking) (*booking.Booking, error) {
	row, err := r.queries.TransitionBooking(ctx, tx, converter.BookingToTransitionParams(prev, next))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking status or version changed", err, infra.KindConflict)
		}
		return nil, infra.WrapRepoErr("failed to transition booking", err)
	}
	return converter.BookingFromRow(row), nil
}

func (r *BookingRepository) StartBroadcastRound(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID, at time.Time) (int32, error) {
	round, err := r.queries.StartBroadcastRound(ctx, tx, sqlc.StartBroadcastRoundParams{
		UpdatedAt: pgconv.TimeToPgtype(at),
		ID:        bookingID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("booking is not pending", err, infra.KindConflict)
		}
		return 0, infra.WrapRepoErr("failed to start broadcast round", err)
	}
	return round, nil
}

func (r *BookingRepository) UpdateLocation(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID, loc booking.Location) error {
	err := r.queries.UpdateBookingLocation(ctx, tx, sqlc.UpdateBookingLocationParams{
		Latitude:  pgtype.Float8{Float64: loc.Lat(), Valid: true},
		Longitude: pgtype.Float8{Float64: loc.Lng(), Valid: true},
		ID:        bookingID,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update booking location", err)
	}
	return nil
}

func (r *BookingRepository) MarkDispatchExhausted(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID, at time.Time) (bool, error) {
	n, err := r.queries.MarkDispatchExhausted(ctx, tx, sqlc.MarkDispatchExhaustedParams{
		ExhaustedAt: pgconv.TimeToPgtype(at),
		ID:          bookingID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark dispatch exhausted", err)
	}
	return n > 0, nil
}
