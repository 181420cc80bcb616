package repository

import (
	"context"
	"time"

	"home-dispatch/internal/domain/dispatch"
	"home-dispatch/internal/infra"
	"home-dispatch/internal/infra/repository/converter"
	sqlc "home-dispatch/internal/infra/sqlc/generated"
	"home-dispatch/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingRequestWriteQueries interface {
	CreateBookingRequests(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingRequestsParams) ([]sqlc.BookingRequests, error)
	AcceptBookingRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.AcceptBookingRequestParams) (sqlc.BookingRequests, error)
	HasAcceptedRequest(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) (bool, error)
	ExpireAcceptedRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.ExpireAcceptedRequestParams) (int64, error)
	RejectBookingRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.RejectBookingRequestParams) (int64, error)
	ExpirePendingRequestsForBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.ExpirePendingRequestsForBookingParams) (int64, error)
	ExpireStaleRequests(ctx context.Context, db sqlc.DBTX, arg sqlc.ExpireStaleRequestsParams) ([]uuid.UUID, error)
	ListOfferedProviderIDs(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) ([]uuid.UUID, error)
}

type BookingRequestRepository struct {
	queries BookingRequestWriteQueries
	db      sqlc.DBTX
}

func NewBookingRequestRepository(queries BookingRequestWriteQueries, db sqlc.DBTX) *BookingRequestRepository {
	return &BookingRequestRepository{
		queries: queries,
		db:      db,
	}
}

// CreateBatch inserts reqs in one statement. Providers that already hold a
// request for the booking are skipped, so the result may be shorter than reqs.
func (r *BookingRequestRepository) CreateBatch(ctx context.Context, tx sqlc.DBTX, reqs []*dispatch.Request) ([]*dispatch.Request, error) {
	if len(reqs) == 0 {
		return nil, nil
	}
	rows, err := r.queries.CreateBookingRequests(ctx, tx, converter.RequestsToCreateParams(reqs))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create booking requests", err)
	}
	out := make([]*dispatch.Request, len(rows))
	for i, row := range rows {
		out[i] = converter.RequestFromRow(row)
	}
	return out, nil
}

func (r *BookingRequestRepository) Accept(ctx context.Context, tx sqlc.DBTX, bookingID, providerID uuid.UUID, at time.Time) (*dispatch.Request, bool, error) {
	row, err := r.queries.AcceptBookingRequest(ctx, tx, sqlc.AcceptBookingRequestParams{
		RespondedAt: pgconv.TimeToPgtype(at),
		BookingID:   bookingID,
		ProviderID:  providerID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, false, nil
		}
		// A concurrent winner that slipped past NOT EXISTS surfaces as a
		// unique violation on the partial index (KindDuplicateKey). The
		// enclosing transaction is aborted at that point.
		return nil, false, infra.WrapRepoErr("failed to accept booking request", err)
	}
	return converter.RequestFromRow(row), true, nil
}

func (r *BookingRequestRepository) HasAccepted(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID) (bool, error) {
	ok, err := r.queries.HasAcceptedRequest(ctx, tx, bookingID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check accepted request", err)
	}
	return ok, nil
}

func (r *BookingRequestRepository) ExpireAccepted(ctx context.Context, tx sqlc.DBTX, requestID uuid.UUID, at time.Time) error {
	_, err := r.queries.ExpireAcceptedRequest(ctx, tx, sqlc.ExpireAcceptedRequestParams{
		RespondedAt: pgconv.TimeToPgtype(at),
		ID:          requestID,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to expire accepted request", err)
	}
	return nil
}

func (r *BookingRequestRepository) Reject(ctx context.Context, tx sqlc.DBTX, bookingID, providerID uuid.UUID, at time.Time) (bool, error) {
	n, err := r.queries.RejectBookingRequest(ctx, tx, sqlc.RejectBookingRequestParams{
		RespondedAt: pgconv.TimeToPgtype(at),
		BookingID:   bookingID,
		ProviderID:  providerID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to reject booking request", err)
	}
	return n > 0, nil
}

func (r *BookingRequestRepository) ExpirePendingForBooking(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID, at time.Time) (int64, error) {
	n, err := r.queries.ExpirePendingRequestsForBooking(ctx, tx, sqlc.ExpirePendingRequestsForBookingParams{
		RespondedAt: pgconv.TimeToPgtype(at),
		BookingID:   bookingID,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to expire sibling requests", err)
	}
	return n, nil
}

// ExpireStale returns the distinct bookings that lost at least one pending request.
func (r *BookingRequestRepository) ExpireStale(ctx context.Context, tx sqlc.DBTX, cutoff, at time.Time) ([]uuid.UUID, error) {
	ids, err := r.queries.ExpireStaleRequests(ctx, tx, sqlc.ExpireStaleRequestsParams{
		RespondedAt: pgconv.TimeToPgtype(at),
		Cutoff:      pgconv.TimeToPgtype(cutoff),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to expire stale requests", err)
	}
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}

func (r *BookingRequestRepository) OfferedProviderIDs(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := r.queries.ListOfferedProviderIDs(ctx, tx, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list offered providers", err)
	}
	return ids, nil
}
