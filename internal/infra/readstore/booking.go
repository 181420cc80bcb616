package readstore

import (
	"context"
	"encoding/json"

	"home-dispatch/internal/infra"
	"home-dispatch/internal/infra/repository/converter"
	sqlc "home-dispatch/internal/infra/sqlc/generated"
	"home-dispatch/internal/pkg/pgconv"
	"home-dispatch/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingViewQueries interface {
	GetBooking(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	ListBookingsByCustomer(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByCustomerParams) ([]sqlc.Bookings, error)
	ListBookingsByProvider(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByProviderParams) ([]sqlc.Bookings, error)
	ListRequestsByBooking(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) ([]sqlc.BookingRequests, error)
	GetBookingRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.GetBookingRequestParams) (sqlc.BookingRequests, error)
	ListPendingOffersByProvider(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPendingOffersByProviderParams) ([]sqlc.ListPendingOffersByProviderRow, error)
	ListLifecycleEvents(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) ([]sqlc.BookingLifecycleEvents, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBooking(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view by id", err)
	}
	return bookingView(row), nil
}

func (r *BookingReadStore) ListByCustomer(ctx context.Context, customerID uuid.UUID, after *queries.CursorKey, limit int32) ([]*queries.BookingView, error) {
	createdAt, id := keysetParams(after)
	rows, err := r.queries.ListBookingsByCustomer(ctx, r.db, sqlc.ListBookingsByCustomerParams{
		CustomerID:      customerID,
		CursorCreatedAt: createdAt,
		CursorID:        id,
		RowLimit:        limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by customer", err)
	}
	return bookingViews(rows), nil
}

func (r *BookingReadStore) ListByProvider(ctx context.Context, providerID uuid.UUID, after *queries.CursorKey, limit int32) ([]*queries.BookingView, error) {
	createdAt, id := keysetParams(after)
	rows, err := r.queries.ListBookingsByProvider(ctx, r.db, sqlc.ListBookingsByProviderParams{
		ProviderID:      pgconv.UUIDToPgtype(providerID),
		CursorCreatedAt: createdAt,
		CursorID:        id,
		RowLimit:        limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by provider", err)
	}
	return bookingViews(rows), nil
}

func (r *BookingReadStore) RequestsByBooking(ctx context.Context, bookingID uuid.UUID) ([]*queries.RequestView, error) {
	rows, err := r.queries.ListRequestsByBooking(ctx, r.db, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking requests", err)
	}
	out := make([]*queries.RequestView, len(rows))
	for i, row := range rows {
		out[i] = queries.NewRequestView(converter.RequestFromRow(row))
	}
	return out, nil
}

func (r *BookingReadStore) RequestFor(ctx context.Context, bookingID, providerID uuid.UUID) (*queries.RequestView, error) {
	row, err := r.queries.GetBookingRequest(ctx, r.db, sqlc.GetBookingRequestParams{
		BookingID:  bookingID,
		ProviderID: providerID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking request", err)
	}
	return queries.NewRequestView(converter.RequestFromRow(row)), nil
}

func (r *BookingReadStore) PendingOffers(ctx context.Context, providerID uuid.UUID, limit int32) ([]*queries.OfferView, error) {
	rows, err := r.queries.ListPendingOffersByProvider(ctx, r.db, sqlc.ListPendingOffersByProviderParams{
		ProviderID: providerID,
		RowLimit:   limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending offers", err)
	}
	out := make([]*queries.OfferView, len(rows))
	for i, row := range rows {
		out[i] = &queries.OfferView{
			RequestID:       row.RequestID,
			BookingID:       row.BookingID,
			BroadcastRound:  row.BroadcastRound,
			OfferedAt:       pgconv.TimeFromPgtype(row.OfferedAt),
			ServiceCategory: row.ServiceCategory,
			Requirements:    row.Requirements,
			AddressLine:     row.AddressLine,
			City:            pgconv.StringFromPgtype(row.City),
			Location:        locationView(row.Latitude, row.Longitude),
			EstimatedCost:   row.EstimatedCost,
			ScheduledAt:     pgconv.TimePtrFromPgtype(row.ScheduledAt),
		}
	}
	return out, nil
}

func (r *BookingReadStore) EventsByBooking(ctx context.Context, bookingID uuid.UUID) ([]*queries.LifecycleEventView, error) {
	rows, err := r.queries.ListLifecycleEvents(ctx, r.db, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list lifecycle events", err)
	}
	out := make([]*queries.LifecycleEventView, len(rows))
	for i, row := range rows {
		out[i] = &queries.LifecycleEventView{
			ID:         row.ID,
			BookingID:  row.BookingID,
			Kind:       row.Kind,
			FromStatus: pgconv.StringPtrFromPgtype(row.FromStatus),
			ToStatus:   pgconv.StringPtrFromPgtype(row.ToStatus),
			ActorID:    pgconv.UUIDPtrFromPgtype(row.ActorID),
			ActorRole:  pgconv.StringPtrFromPgtype(row.ActorRole),
			Metadata:   json.RawMessage(row.Metadata),
			CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return out, nil
}

func bookingView(row sqlc.Bookings) *queries.BookingView {
	v := queries.NewBookingView(converter.BookingFromRow(row))
	v.DispatchExhaustedAt = pgconv.TimePtrFromPgtype(row.DispatchExhaustedAt)
	return v
}

func bookingViews(rows []sqlc.Bookings) []*queries.BookingView {
	out := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		out[i] = bookingView(row)
	}
	return out
}

func keysetParams(after *queries.CursorKey) (pgtype.Timestamptz, pgtype.UUID) {
	if after == nil {
		return pgtype.Timestamptz{}, pgtype.UUID{}
	}
	return pgconv.TimeToPgtype(after.CreatedAt), pgconv.UUIDToPgtype(after.ID)
}

func locationView(lat, lng pgtype.Float8) *queries.LocationView {
	if !lat.Valid || !lng.Valid {
		return nil
	}
	return &queries.LocationView{Lat: lat.Float64, Lng: lng.Float64}
}
