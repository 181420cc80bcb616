package readstore

import (
	"context"

	"home-dispatch/internal/infra"
	sqlc "home-dispatch/internal/infra/sqlc/generated"
	"home-dispatch/internal/pkg/pgconv"
	"home-dispatch/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReviewViewQueries interface {
	GetReviewByBooking(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) (sqlc.Reviews, error)
	ListReviewsByProvider(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReviewsByProviderParams) ([]sqlc.Reviews, error)
	GetProviderRatingStats(ctx context.Context, db sqlc.DBTX, providerID uuid.UUID) (sqlc.ProviderRatingStats, error)
	CountCompletedJobsByProvider(ctx context.Context, db sqlc.DBTX, providerID pgtype.UUID) (int64, error)
}

type ReviewReadStore struct {
	queries ReviewViewQueries
	db      sqlc.DBTX
}

func NewReviewReadStore(queries ReviewViewQueries, db sqlc.DBTX) *ReviewReadStore {
	return &ReviewReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewReadStore) FindByBooking(ctx context.Context, bookingID uuid.UUID) (*queries.ReviewView, error) {
	row, err := r.queries.GetReviewByBooking(ctx, r.db, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get review by booking", err)
	}
	return reviewView(row), nil
}

func (r *ReviewReadStore) ListByProvider(ctx context.Context, providerID uuid.UUID, after *queries.CursorKey, limit int32) ([]*queries.ReviewView, error) {
	createdAt, id := keysetParams(after)
	rows, err := r.queries.ListReviewsByProvider(ctx, r.db, sqlc.ListReviewsByProviderParams{
		ProviderID:      providerID,
		CursorCreatedAt: createdAt,
		CursorID:        id,
		RowLimit:        limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews by provider", err)
	}
	out := make([]*queries.ReviewView, len(rows))
	for i, row := range rows {
		out[i] = reviewView(row)
	}
	return out, nil
}

// ProviderStats combines the rating aggregate with the completed job count.
// A provider without reviews has no stats row and reports zeros.
func (r *ReviewReadStore) ProviderStats(ctx context.Context, providerID uuid.UUID) (*queries.ProviderStatsView, error) {
	jobs, err := r.queries.CountCompletedJobsByProvider(ctx, r.db, pgconv.UUIDToPgtype(providerID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count completed jobs", err)
	}
	view := &queries.ProviderStatsView{ProviderID: providerID, JobsCompleted: jobs}

	row, err := r.queries.GetProviderRatingStats(ctx, r.db, providerID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return view, nil
		}
		return nil, infra.WrapRepoErr("failed to get provider rating stats", err)
	}
	avg, err := pgconv.Float64PtrFromNumeric(row.AverageRating)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid average rating", err)
	}
	if avg != nil {
		view.AverageRating = *avg
	}
	view.TotalReviews = row.TotalReviews
	view.Rating1Count = row.Rating1Count
	view.Rating2Count = row.Rating2Count
	view.Rating3Count = row.Rating3Count
	view.Rating4Count = row.Rating4Count
	view.Rating5Count = row.Rating5Count
	view.UpdatedAt = pgconv.TimePtrFromPgtype(row.UpdatedAt)
	return view, nil
}

func reviewView(row sqlc.Reviews) *queries.ReviewView {
	return &queries.ReviewView{
		ID:         row.ID,
		BookingID:  row.BookingID,
		CustomerID: row.CustomerID,
		ProviderID: row.ProviderID,
		Rating:     int(row.Rating),
		Comment:    row.Comment,
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
