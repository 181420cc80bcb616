package repository

import (
	"context"

	"home-dispatch/internal/domain/review"
	"home-dispatch/internal/infra"
	"home-dispatch/internal/infra/repository/converter"
	sqlc "home-dispatch/internal/infra/sqlc/generated"
)

type ReviewWriteQueries interface {
	CreateReview(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReviewParams) (sqlc.Reviews, error)
}

type ReviewRepository struct {
	queries ReviewWriteQueries
	db      sqlc.DBTX
}

func NewReviewRepository(queries ReviewWriteQueries, db sqlc.DBTX) *ReviewRepository {
	return &ReviewRepository{
		queries: queries,
		db:      db,
	}
}

// Create stores rev; a second review of the same booking is KindDuplicateKey.
func (r *ReviewRepository) Create(ctx context.Context, tx sqlc.DBTX, rev *review.Review) (*review.Review, error) {
	row, err := r.queries.CreateReview(ctx, tx, converter.ReviewToCreateParams(rev))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create review", err)
	}
	return converter.ReviewFromRow(row), nil
}
