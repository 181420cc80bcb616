package converter

import (
	"home-dispatch/internal/domain/review"
	sqlc "home-dispatch/internal/infra/sqlc/generated"
	"home-dispatch/internal/pkg/pgconv"
)

func ReviewToCreateParams(r *review.Review) sqlc.CreateReviewParams {
	return sqlc.CreateReviewParams{
		ID:         r.ID(),
		BookingID:  r.BookingID(),
		CustomerID: r.CustomerID(),
		ProviderID: r.ProviderID(),
		Rating:     int32(r.Rating().Value()), // #nosec G115 -- bounded 1..5
		Comment:    r.Comment().String(),
		CreatedAt:  pgconv.TimeToPgtype(r.CreatedAt()),
	}
}

func ReviewFromRow(row sqlc.Reviews) *review.Review {
	return review.Reconstruct(
		row.ID,
		row.BookingID,
		row.CustomerID,
		row.ProviderID,
		int(row.Rating),
		row.Comment,
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}
