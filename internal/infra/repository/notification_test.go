//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"home-dispatch/internal/infra"
	"home-dispatch/internal/infra/repository"
	sqlc "home-dispatch/internal/infra/sqlc/generated"
	"home-dispatch/internal/pkg/errs"
	"home-dispatch/internal/pkg/pgconv"
	"home-dispatch/tests/common/builder"
	repositorymock "home-dispatch/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newNotificationRepo(t *testing.T) (*repository.NotificationRepository, *repositorymock.MockNotificationWriteQueries) {
	ctrl := gomock.NewController(t)
	q := repositorymock.NewMockNotificationWriteQueries(ctrl)
	return repository.NewNotificationRepository(q, &mockDBTX{}), q
}

func TestNotificationRepository_CreateJob(t *testing.T) {
	ctx := context.Background()
	payload := []byte(`{"booking_id":"b"}`)

	t.Run("success", func(t *testing.T) {
		repo, q := newNotificationRepo(t)
		q.EXPECT().CreateNotificationJob(ctx, gomock.Any(), sqlc.CreateNotificationJobParams{
			Kind:    "job_offer",
			Topic:   "provider:123",
			Payload: payload,
			RunAt:   pgconv.TimeToPgtype(builder.DefaultNow),
		}).Return(nil)

		require.NoError(t, repo.CreateJob(ctx, &mockDBTX{}, "job_offer", "provider:123", payload, builder.DefaultNow))
	})

	t.Run("database error marks store unavailable", func(t *testing.T) {
		repo, q := newNotificationRepo(t)
		q.EXPECT().CreateNotificationJob(ctx, gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

		err := repo.CreateJob(ctx, &mockDBTX{}, "job_offer", "provider:123", payload, builder.DefaultNow)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.True(t, errs.Is(err, errs.ErrStoreUnavailable))
	})
}

func TestNotificationRepository_ClaimDue(t *testing.T) {
	ctx := context.Background()

	t.Run("rows become jobs", func(t *testing.T) {
		repo, q := newNotificationRepo(t)
		rows := []sqlc.NotificationJobs{
			{ID: uuid.New(), Kind: "job_offer", Topic: "provider:a", Payload: []byte(`{}`), Status: "queued", RunAt: pgconv.TimeToPgtype(builder.DefaultNow)},
			{ID: uuid.New(), Kind: "dispatch_exhausted", Topic: "customer:c", Payload: []byte(`{}`), Status: "queued", Attempts: 2, RunAt: pgconv.TimeToPgtype(builder.DefaultNow)},
		}
		q.EXPECT().ClaimDueNotificationJobs(ctx, gomock.Any(), sqlc.ClaimDueNotificationJobsParams{
			Now:      pgconv.TimeToPgtype(builder.DefaultNow),
			RowLimit: 50,
		}).Return(rows, nil)

		jobs, err := repo.ClaimDue(ctx, &mockDBTX{}, builder.DefaultNow, 50)
		require.NoError(t, err)
		require.Len(t, jobs, 2)
		assert.Equal(t, rows[0].ID, jobs[0].ID)
		assert.Equal(t, "dispatch_exhausted", jobs[1].Kind)
		assert.Equal(t, int32(2), jobs[1].Attempts)
		assert.True(t, builder.DefaultNow.Equal(jobs[1].RunAt))
	})

	t.Run("database error", func(t *testing.T) {
		repo, q := newNotificationRepo(t)
		q.EXPECT().ClaimDueNotificationJobs(ctx, gomock.Any(), gomock.Any()).Return(nil, errors.New("conn reset"))

		jobs, err := repo.ClaimDue(ctx, &mockDBTX{}, builder.DefaultNow, 50)
		assert.Nil(t, jobs)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestNotificationRepository_Mark(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	at := builder.DefaultNow
	retryAt := at.Add(30 * time.Second)

	t.Run("sent", func(t *testing.T) {
		repo, q := newNotificationRepo(t)
		q.EXPECT().MarkNotificationJobSent(ctx, gomock.Any(), sqlc.MarkNotificationJobSentParams{
			UpdatedAt: pgconv.TimeToPgtype(at),
			ID:        id,
		}).Return(nil)

		require.NoError(t, repo.MarkSent(ctx, &mockDBTX{}, id, at))
	})

	t.Run("failed records cause and retry policy", func(t *testing.T) {
		repo, q := newNotificationRepo(t)
		q.EXPECT().MarkNotificationJobFailed(ctx, gomock.Any(), sqlc.MarkNotificationJobFailedParams{
			LastError:   pgtype.Text{String: "broker unreachable", Valid: true},
			MaxAttempts: 5,
			RetryAt:     pgconv.TimeToPgtype(retryAt),
			UpdatedAt:   pgconv.TimeToPgtype(at),
			ID:          id,
		}).Return(nil)

		require.NoError(t, repo.MarkFailed(ctx, &mockDBTX{}, id, "broker unreachable", 5, retryAt, at))
	})

	t.Run("mark error is wrapped", func(t *testing.T) {
		repo, q := newNotificationRepo(t)
		q.EXPECT().MarkNotificationJobSent(ctx, gomock.Any(), gomock.Any()).Return(errors.New("gone"))

		assert.True(t, infra.IsKind(repo.MarkSent(ctx, &mockDBTX{}, id, at), infra.KindDBFailure))
	})
}
