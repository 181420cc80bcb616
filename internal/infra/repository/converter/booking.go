package converter

import (
	"home-dispatch/internal/domain/booking"
	"home-dispatch/internal/domain/user"
	sqlc "home-dispatch/internal/infra/sqlc/generated"
	"home-dispatch/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	params := sqlc.CreateBookingParams{
		ID:              b.ID(),
		CustomerID:      b.CustomerID(),
		ServiceCategory: b.Category().String(),
		Requirements:    b.Requirements(),
		AddressLine:     b.Address().Line(),
		City:            pgconv.OptionalString(b.Address().City()),
		PostalCode:      pgconv.OptionalString(b.Address().PostalCode()),
		EstimatedCost:   b.EstimatedCost().Minor(),
		ScheduledAt:     pgconv.TimePtrToPgtype(b.ScheduledAt()),
		CreatedAt:       pgconv.TimeToPgtype(b.CreatedAt()),
	}
	if loc := b.Location(); loc != nil {
		params.Latitude = pgtype.Float8{Float64: loc.Lat(), Valid: true}
		params.Longitude = pgtype.Float8{Float64: loc.Lng(), Valid: true}
	}
	return params
}

// BookingToTransitionParams guards the write with prev and persists next.
func BookingToTransitionParams(prev, next *booking.Booking) sqlc.TransitionBookingParams {
	params := sqlc.TransitionBookingParams{
		NextStatus:      next.Status().String(),
		StartedAt:       pgconv.TimePtrToPgtype(next.StartedAt()),
		CompletedAt:     pgconv.TimePtrToPgtype(next.CompletedAt()),
		CancelledAt:     pgconv.TimePtrToPgtype(next.CancelledAt()),
		CancelReason:    pgconv.OptionalString(next.CancelReason()),
		UpdatedAt:       pgconv.TimeToPgtype(next.UpdatedAt()),
		ID:              prev.ID(),
		ExpectedStatus:  prev.Status().String(),
		ExpectedVersion: prev.Version(),
	}
	if fc := next.FinalCost(); fc != nil {
		params.FinalCost = pgtype.Int8{Int64: fc.Minor(), Valid: true}
	}
	if by := next.CancelledBy(); by != nil {
		params.CancelledBy = pgtype.Text{String: by.String(), Valid: true}
	}
	return params
}

func BookingFromRow(row sqlc.Bookings) *booking.Booking {
	var cancelledBy *user.Role
	if row.CancelledBy.Valid {
		r := user.Role(row.CancelledBy.String)
		cancelledBy = &r
	}
	return booking.Reconstruct(booking.ReconstructParams{
		ID:             row.ID,
		CustomerID:     row.CustomerID,
		ProviderID:     pgconv.UUIDPtrFromPgtype(row.ProviderID),
		Category:       row.ServiceCategory,
		Requirements:   row.Requirements,
		AddressLine:    row.AddressLine,
		City:           pgconv.StringFromPgtype(row.City),
		PostalCode:     pgconv.StringFromPgtype(row.PostalCode),
		Latitude:       pgconv.Float64PtrFromPgtype(row.Latitude),
		Longitude:      pgconv.Float64PtrFromPgtype(row.Longitude),
		EstimatedCost:  row.EstimatedCost,
		FinalCost:      pgconv.Int64PtrFromPgtype(row.FinalCost),
		ScheduledAt:    pgconv.TimePtrFromPgtype(row.ScheduledAt),
		Status:         booking.Status(row.Status),
		PaymentStatus:  booking.PaymentStatus(row.PaymentStatus),
		Version:        row.StatusVersion,
		BroadcastRound: row.BroadcastRound,
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
		ConfirmedAt:    pgconv.TimePtrFromPgtype(row.ConfirmedAt),
		StartedAt:      pgconv.TimePtrFromPgtype(row.StartedAt),
		CompletedAt:    pgconv.TimePtrFromPgtype(row.CompletedAt),
		CancelledAt:    pgconv.TimePtrFromPgtype(row.CancelledAt),
		CancelledBy:    cancelledBy,
		CancelReason:   pgconv.StringFromPgtype(row.CancelReason),
	})
}
