package uow

import (
	"context"
	"time"

	"home-dispatch/internal/domain/booking"
	"home-dispatch/internal/domain/dispatch"
	"home-dispatch/internal/domain/otp"
	"home-dispatch/internal/infra"
	"home-dispatch/internal/infra/repository/converter"
	sqlc "home-dispatch/internal/infra/sqlc/generated"
	"home-dispatch/internal/pkg/pgconv"
	"home-dispatch/internal/usecase/shared"

	"github.com/google/uuid"
)

type commandReadQueries interface {
	GetBooking(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	GetBookingRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.GetBookingRequestParams) (sqlc.BookingRequests, error)
	GetOtpChallenge(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) (sqlc.OtpChallenges, error)
	GetIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetIdempotencyKeyParams) (sqlc.IdempotencyKeys, error)
	ListUnmatchedBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUnmatchedBookingsParams) ([]sqlc.ListUnmatchedBookingsRow, error)
}

// commandReads loads write-side state through whichever handle it was built
// with: the open transaction inside Within, the pool otherwise.
type commandReads struct {
	q    commandReadQueries
	dbtx sqlc.DBTX
}

func newCommandReads(q commandReadQueries, dbtx sqlc.DBTX) *commandReads {
	return &commandReads{q: q, dbtx: dbtx}
}

func (r *commandReads) BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.q.GetBooking(ctx, r.dbtx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load booking", err)
	}
	return converter.BookingFromRow(row), nil
}

func (r *commandReads) RequestFor(ctx context.Context, bookingID, providerID uuid.UUID) (*dispatch.Request, error) {
	row, err := r.q.GetBookingRequest(ctx, r.dbtx, sqlc.GetBookingRequestParams{
		BookingID:  bookingID,
		ProviderID: providerID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load booking request", err)
	}
	return converter.RequestFromRow(row), nil
}

func (r *commandReads) OtpByBooking(ctx context.Context, bookingID uuid.UUID) (*otp.Challenge, error) {
	row, err := r.q.GetOtpChallenge(ctx, r.dbtx, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load otp challenge", err)
	}
	return converter.ChallengeFromRow(row), nil
}

func (r *commandReads) IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	row, err := r.q.GetIdempotencyKey(ctx, r.dbtx, sqlc.GetIdempotencyKeyParams{Key: key, UserID: userID})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load idempotency key", err)
	}
	return &shared.IdempotencyRecord{
		Key:             row.Key,
		UserID:          row.UserID,
		Endpoint:        row.Endpoint,
		Status:          row.Status,
		RequestHash:     row.RequestHash,
		ResultBookingID: pgconv.UUIDPtrFromPgtype(row.ResultBookingID),
		ExpiresAt:       pgconv.TimeFromPgtype(row.ExpiresAt),
	}, nil
}

func (r *commandReads) UnmatchedBookings(ctx context.Context, staleBefore time.Time, limit int32) ([]shared.UnmatchedBooking, error) {
	rows, err := r.q.ListUnmatchedBookings(ctx, r.dbtx, sqlc.ListUnmatchedBookingsParams{
		StaleBefore: pgconv.TimeToPgtype(staleBefore),
		RowLimit:    limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list unmatched bookings", err)
	}
	out := make([]shared.UnmatchedBooking, len(rows))
	for i, row := range rows {
		out[i] = shared.UnmatchedBooking{ID: row.ID, BroadcastRound: row.BroadcastRound}
	}
	return out, nil
}
