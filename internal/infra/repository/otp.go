package repository

import (
	"context"
	"time"

	"home-dispatch/internal/domain/otp"
	"home-dispatch/internal/infra"
	"home-dispatch/internal/infra/repository/converter"
	sqlc "home-dispatch/internal/infra/sqlc/generated"
	"home-dispatch/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OtpWriteQueries interface {
	UpsertOtpChallenge(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertOtpChallengeParams) (sqlc.OtpChallenges, error)
	LockOtpChallenge(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) (sqlc.OtpChallenges, error)
	ConsumeOtpChallenge(ctx context.Context, db sqlc.DBTX, arg sqlc.ConsumeOtpChallengeParams) (int64, error)
	RecordOtpFailure(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) (int32, error)
	DeleteOtpChallenge(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) error
}

type OtpRepository struct {
	queries OtpWriteQueries
	db      sqlc.DBTX
}

func NewOtpRepository(queries OtpWriteQueries, db sqlc.DBTX) *OtpRepository {
	return &OtpRepository{
		queries: queries,
		db:      db,
	}
}

// Upsert replaces an unconsumed challenge. A consumed one is kept and
// reported as KindConflict.
func (r *OtpRepository) Upsert(ctx context.Context, tx sqlc.DBTX, c *otp.Challenge) (*otp.Challenge, error) {
	row, err := r.queries.UpsertOtpChallenge(ctx, tx, sqlc.UpsertOtpChallengeParams{
		BookingID: c.BookingID(),
		Code:      c.Code(),
		CreatedAt: pgconv.TimeToPgtype(c.CreatedAt()),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("otp challenge already consumed", err, infra.KindConflict)
		}
		return nil, infra.WrapRepoErr("failed to upsert otp challenge", err)
	}
	return converter.ChallengeFromRow(row), nil
}

// Lock reads the challenge and holds its row lock until tx ends, so
// concurrent validations of one booking see each other's failures.
func (r *OtpRepository) Lock(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID) (*otp.Challenge, error) {
	row, err := r.queries.LockOtpChallenge(ctx, tx, bookingID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("otp challenge not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock otp challenge", err)
	}
	return converter.ChallengeFromRow(row), nil
}

func (r *OtpRepository) Consume(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID, code string, at time.Time) (bool, error) {
	n, err := r.queries.ConsumeOtpChallenge(ctx, tx, sqlc.ConsumeOtpChallengeParams{
		ConsumedAt: pgconv.TimeToPgtype(at),
		BookingID:  bookingID,
		Code:       code,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to consume otp challenge", err)
	}
	return n == 1, nil
}

func (r *OtpRepository) RecordFailure(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID) (int32, error) {
	attempts, err := r.queries.RecordOtpFailure(ctx, tx, bookingID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("otp challenge not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to record otp failure", err)
	}
	return attempts, nil
}

func (r *OtpRepository) Delete(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID) error {
	if err := r.queries.DeleteOtpChallenge(ctx, tx, bookingID); err != nil {
		return infra.WrapRepoErr("failed to delete otp challenge", err)
	}
	return nil
}
