package repository

import (
	"context"

	"home-dispatch/internal/domain/booking"
	"home-dispatch/internal/infra"
	"home-dispatch/internal/infra/repository/converter"
	sqlc "home-dispatch/internal/infra/sqlc/generated"
	"home-dispatch/internal/pkg/errs"
)

type LifecycleEventWriteQueries interface {
	CreateLifecycleEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateLifecycleEventParams) error
}

type LifecycleEventRepository struct {
	queries LifecycleEventWriteQueries
	db      sqlc.DBTX
}

func NewLifecycleEventRepository(queries LifecycleEventWriteQueries, db sqlc.DBTX) *LifecycleEventRepository {
	return &LifecycleEventRepository{
		queries: queries,
		db:      db,
	}
}

func (r *LifecycleEventRepository) Append(ctx context.Context, tx sqlc.DBTX, e booking.LifecycleEvent) error {
	params, err := converter.EventToCreateParams(e)
	if err != nil {
		return errs.Wrap(err, "failed to encode lifecycle event metadata")
	}
	if err := r.queries.CreateLifecycleEvent(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to append lifecycle event", err)
	}
	return nil
}
