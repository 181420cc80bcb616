package repository

import (
	"context"
	"time"

	"home-dispatch/internal/infra"
	sqlc "home-dispatch/internal/infra/sqlc/generated"
	"home-dispatch/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RatingStatsWriteQueries interface {
	LockProviderRatingStats(ctx context.Context, db sqlc.DBTX, arg sqlc.LockProviderRatingStatsParams) error
	RecalcProviderRatingStats(ctx context.Context, db sqlc.DBTX, arg sqlc.RecalcProviderRatingStatsParams) error
}

type RatingStatsRepository struct {
	queries RatingStatsWriteQueries
	db      sqlc.DBTX
}

func NewRatingStatsRepository(queries RatingStatsWriteQueries, db sqlc.DBTX) *RatingStatsRepository {
	return &RatingStatsRepository{queries: queries, db: db}
}

// Recalc rebuilds the provider's aggregate from its reviews. The stats row is
// locked first, so the aggregate statement runs after any concurrent review
// of the same provider has committed and sees it.
func (r *RatingStatsRepository) Recalc(ctx context.Context, tx sqlc.DBTX, providerID uuid.UUID, at time.Time) error {
	ts := pgconv.TimeToPgtype(at)
	if err := r.queries.LockProviderRatingStats(ctx, tx, sqlc.LockProviderRatingStatsParams{
		ProviderID: providerID,
		UpdatedAt:  ts,
	}); err != nil {
		return infra.WrapRepoErr("failed to lock provider rating stats", err)
	}
	if err := r.queries.RecalcProviderRatingStats(ctx, tx, sqlc.RecalcProviderRatingStatsParams{
		UpdatedAt:  ts,
		ProviderID: providerID,
	}); err != nil {
		return infra.WrapRepoErr("failed to recalculate provider rating stats", err)
	}
	return nil
}
