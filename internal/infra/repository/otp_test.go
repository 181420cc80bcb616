//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"home-dispatch/internal/domain/otp"
	"home-dispatch/internal/infra"
	"home-dispatch/internal/infra/repository"
	sqlc "home-dispatch/internal/infra/sqlc/generated"
	"home-dispatch/internal/pkg/pgconv"
	"home-dispatch/tests/common/builder"
	repositorymock "home-dispatch/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOtpRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	challenge := otp.NewChallenge(uuid.New(), "482913", builder.DefaultNow)
	params := sqlc.UpsertOtpChallengeParams{
		BookingID: challenge.BookingID(),
		Code:      "482913",
		CreatedAt: pgconv.TimeToPgtype(builder.DefaultNow),
	}

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockOtpWriteQueries)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: fresh challenge stored",
			setupMock: func(m *repositorymock.MockOtpWriteQueries) {
				m.EXPECT().UpsertOtpChallenge(ctx, gomock.Any(), params).Return(sqlc.OtpChallenges{
					BookingID: params.BookingID,
					Code:      params.Code,
					CreatedAt: params.CreatedAt,
				}, nil)
			},
		},
		{
			name: "error: consumed challenge is kept",
			setupMock: func(m *repositorymock.MockOtpWriteQueries) {
				m.EXPECT().UpsertOtpChallenge(ctx, gomock.Any(), params).Return(sqlc.OtpChallenges{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindConflict,
		},
		{
			name: "error: database error",
			setupMock: func(m *repositorymock.MockOtpWriteQueries) {
				m.EXPECT().UpsertOtpChallenge(ctx, gomock.Any(), params).Return(sqlc.OtpChallenges{}, errors.New("broken pipe"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := repositorymock.NewMockOtpWriteQueries(ctrl)
			repo := repository.NewOtpRepository(q, &mockDBTX{})
			tc.setupMock(q)

			stored, err := repo.Upsert(ctx, &mockDBTX{}, challenge)

			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
				assert.Nil(t, stored)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "482913", stored.Code())
			assert.Equal(t, int32(0), stored.FailedAttempts())
			assert.False(t, stored.IsConsumed())
		})
	}
}

func TestOtpRepository_Consume(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()
	at := builder.DefaultNow.Add(30 * time.Minute)

	testCases := []struct {
		name     string
		affected int64
		dbErr    error
		expected bool
	}{
		{name: "matching code consumed", affected: 1, expected: true},
		{name: "wrong or already consumed code", affected: 0, expected: false},
		{name: "database error", dbErr: errors.New("timeout")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := repositorymock.NewMockOtpWriteQueries(ctrl)
			repo := repository.NewOtpRepository(q, &mockDBTX{})

			q.EXPECT().ConsumeOtpChallenge(ctx, gomock.Any(), sqlc.ConsumeOtpChallengeParams{
				ConsumedAt: pgconv.TimeToPgtype(at),
				BookingID:  bookingID,
				Code:       "482913",
			}).Return(tc.affected, tc.dbErr)

			ok, err := repo.Consume(ctx, &mockDBTX{}, bookingID, "482913", at)
			if tc.dbErr != nil {
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, ok)
		})
	}
}

func TestOtpRepository_Lock(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()

	testCases := []struct {
		name       string
		row        sqlc.OtpChallenges
		dbErr      error
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "row carries the failure count",
			row: sqlc.OtpChallenges{
				BookingID:      bookingID,
				Code:           "482913",
				CreatedAt:      pgconv.TimeToPgtype(builder.DefaultNow),
				FailedAttempts: 4,
			},
		},
		{name: "no challenge", dbErr: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "lock wait aborted", dbErr: errors.New("canceling statement due to lock timeout"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := repositorymock.NewMockOtpWriteQueries(ctrl)
			repo := repository.NewOtpRepository(q, &mockDBTX{})
			q.EXPECT().LockOtpChallenge(ctx, gomock.Any(), bookingID).Return(tc.row, tc.dbErr)

			c, err := repo.Lock(ctx, &mockDBTX{}, bookingID)
			if tc.dbErr != nil {
				assert.Nil(t, c)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int32(4), c.FailedAttempts())
			assert.False(t, c.IsConsumed())
			assert.True(t, c.Matches("482913"))
		})
	}
}

func TestOtpRepository_RecordFailureAndDelete(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()

	t.Run("failure counter returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockOtpWriteQueries(ctrl)
		repo := repository.NewOtpRepository(q, &mockDBTX{})
		q.EXPECT().RecordOtpFailure(ctx, gomock.Any(), bookingID).Return(int32(3), nil)

		n, err := repo.RecordFailure(ctx, &mockDBTX{}, bookingID)
		require.NoError(t, err)
		assert.Equal(t, int32(3), n)
	})

	t.Run("no challenge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockOtpWriteQueries(ctrl)
		repo := repository.NewOtpRepository(q, &mockDBTX{})
		q.EXPECT().RecordOtpFailure(ctx, gomock.Any(), bookingID).Return(int32(0), pgx.ErrNoRows)

		_, err := repo.RecordFailure(ctx, &mockDBTX{}, bookingID)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("delete wraps driver errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockOtpWriteQueries(ctrl)
		repo := repository.NewOtpRepository(q, &mockDBTX{})
		q.EXPECT().DeleteOtpChallenge(ctx, gomock.Any(), bookingID).Return(nil)
		q.EXPECT().DeleteOtpChallenge(ctx, gomock.Any(), bookingID).Return(errors.New("conn closed"))

		require.NoError(t, repo.Delete(ctx, &mockDBTX{}, bookingID))
		assert.True(t, infra.IsKind(repo.Delete(ctx, &mockDBTX{}, bookingID), infra.KindDBFailure))
	})
}
