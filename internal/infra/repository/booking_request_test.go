//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"home-dispatch/internal/domain/dispatch"
	"home-dispatch/internal/infra"
	"home-dispatch/internal/infra/repository"
	sqlc "home-dispatch/internal/infra/sqlc/generated"
	"home-dispatch/internal/pkg/pgconv"
	"home-dispatch/tests/common/builder"
	repositorymock "home-dispatch/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func requestRow(r *dispatch.Request) sqlc.BookingRequests {
	return sqlc.BookingRequests{
		ID:             r.ID(),
		BookingID:      r.BookingID(),
		ProviderID:     r.ProviderID(),
		Status:         string(r.Status()),
		BroadcastRound: r.Round(),
		CreatedAt:      pgconv.TimeToPgtype(r.CreatedAt()),
		RespondedAt:    pgconv.TimePtrToPgtype(r.RespondedAt()),
	}
}

func newRequestRepo(t *testing.T) (*repository.BookingRequestRepository, *repositorymock.MockBookingRequestWriteQueries, *mockDBTX) {
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockBookingRequestWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	return repository.NewBookingRequestRepository(mockQueries, mockDB), mockQueries, mockDB
}

func TestBookingRequestRepository_CreateBatch(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()
	p1, p2 := uuid.New(), uuid.New()
	reqs, err := dispatch.NewRequests(bookingID, []uuid.UUID{p1, p2}, nil, 1, builder.DefaultNow)
	require.NoError(t, err)

	t.Run("success: one statement for the whole round", func(t *testing.T) {
		repo, mockQueries, mockDB := newRequestRepo(t)
		mockQueries.EXPECT().CreateBookingRequests(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateBookingRequestsParams) ([]sqlc.BookingRequests, error) {
				assert.Equal(t, bookingID, arg.BookingID)
				assert.Equal(t, []uuid.UUID{p1, p2}, arg.ProviderIds)
				assert.Equal(t, int32(1), arg.BroadcastRound)
				assert.Len(t, arg.Ids, 2)
				// p2 already held a request for the booking
				return []sqlc.BookingRequests{requestRow(reqs[0])}, nil
			})

		created, err := repo.CreateBatch(ctx, mockDB, reqs)
		require.NoError(t, err)
		require.Len(t, created, 1)
		assert.Equal(t, p1, created[0].ProviderID())
		assert.Equal(t, dispatch.RequestPending, created[0].Status())
	})

	t.Run("success: empty batch skips the database", func(t *testing.T) {
		repo, _, mockDB := newRequestRepo(t)
		created, err := repo.CreateBatch(ctx, mockDB, nil)
		require.NoError(t, err)
		assert.Empty(t, created)
	})

	t.Run("error: foreign key violation", func(t *testing.T) {
		repo, mockQueries, mockDB := newRequestRepo(t)
		mockQueries.EXPECT().CreateBookingRequests(ctx, mockDB, gomock.Any()).
			Return(nil, &pgconn.PgError{Code: "23503"})

		_, err := repo.CreateBatch(ctx, mockDB, reqs)
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated), "got %v", err)
	})
}

func TestBookingRequestRepository_Accept(t *testing.T) {
	ctx := context.Background()
	bookingID, providerID := uuid.New(), uuid.New()
	at := builder.DefaultNow.Add(30 * time.Second)
	accepted := dispatch.ReconstructRequest(uuid.New(), bookingID, providerID, dispatch.RequestAccepted, 1, builder.DefaultNow, &at)

	testCases := []struct {
		name        string
		setupMock   func(*repositorymock.MockBookingRequestWriteQueries, *mockDBTX)
		expectOK    bool
		expectedErr bool
		expectKind  infra.RepositoryErrorKind
	}{
		{
			name: "success: pending request claimed",
			setupMock: func(mock *repositorymock.MockBookingRequestWriteQueries, tx *mockDBTX) {
				mock.EXPECT().AcceptBookingRequest(ctx, tx, sqlc.AcceptBookingRequestParams{
					RespondedAt: pgconv.TimeToPgtype(at),
					BookingID:   bookingID,
					ProviderID:  providerID,
				}).Return(requestRow(accepted), nil)
			},
			expectOK: true,
		},
		{
			name: "success: nothing claimable is not an error",
			setupMock: func(mock *repositorymock.MockBookingRequestWriteQueries, tx *mockDBTX) {
				mock.EXPECT().AcceptBookingRequest(ctx, tx, gomock.Any()).Return(sqlc.BookingRequests{}, pgx.ErrNoRows)
			},
		},
		{
			name: "error: concurrent winner hits the unique index",
			setupMock: func(mock *repositorymock.MockBookingRequestWriteQueries, tx *mockDBTX) {
				mock.EXPECT().AcceptBookingRequest(ctx, tx, gomock.Any()).Return(sqlc.BookingRequests{}, &pgconn.PgError{Code: "23505"})
			},
			expectedErr: true,
			expectKind:  infra.KindDuplicateKey,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockBookingRequestWriteQueries, tx *mockDBTX) {
				mock.EXPECT().AcceptBookingRequest(ctx, tx, gomock.Any()).Return(sqlc.BookingRequests{}, errors.New("down"))
			},
			expectedErr: true,
			expectKind:  infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mockQueries, mockDB := newRequestRepo(t)
			tc.setupMock(mockQueries, mockDB)

			req, ok, err := repo.Accept(ctx, mockDB, bookingID, providerID, at)

			if tc.expectedErr {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectOK, ok)
			if tc.expectOK {
				assert.Equal(t, dispatch.RequestAccepted, req.Status())
				assert.Equal(t, at, *req.RespondedAt())
			} else {
				assert.Nil(t, req)
			}
		})
	}
}

func TestBookingRequestRepository_Reject(t *testing.T) {
	ctx := context.Background()
	bookingID, providerID := uuid.New(), uuid.New()

	testCases := []struct {
		name     string
		affected int64
		dbErr    error
		expected bool
	}{
		{name: "pending request rejected", affected: 1, expected: true},
		{name: "no pending request", affected: 0, expected: false},
		{name: "database error", dbErr: errors.New("down")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mockQueries, mockDB := newRequestRepo(t)
			mockQueries.EXPECT().RejectBookingRequest(ctx, mockDB, gomock.Any()).Return(tc.affected, tc.dbErr)

			ok, err := repo.Reject(ctx, mockDB, bookingID, providerID, builder.DefaultNow)
			if tc.dbErr != nil {
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, ok)
		})
	}
}

func TestBookingRequestRepository_ExpireStale(t *testing.T) {
	ctx := context.Background()
	cutoff := builder.DefaultNow
	at := cutoff.Add(time.Minute)
	b1, b2 := uuid.New(), uuid.New()

	t.Run("success: bookings are deduplicated in order", func(t *testing.T) {
		repo, mockQueries, mockDB := newRequestRepo(t)
		mockQueries.EXPECT().ExpireStaleRequests(ctx, mockDB, sqlc.ExpireStaleRequestsParams{
			RespondedAt: pgconv.TimeToPgtype(at),
			Cutoff:      pgconv.TimeToPgtype(cutoff),
		}).Return([]uuid.UUID{b1, b2, b1, b2, b2}, nil)

		ids, err := repo.ExpireStale(ctx, mockDB, cutoff, at)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{b1, b2}, ids)
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		repo, mockQueries, mockDB := newRequestRepo(t)
		mockQueries.EXPECT().ExpireStaleRequests(ctx, mockDB, gomock.Any()).Return(nil, errors.New("down"))

		_, err := repo.ExpireStale(ctx, mockDB, cutoff, at)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestBookingRequestRepository_Siblings(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()
	at := builder.DefaultNow

	repo, mockQueries, mockDB := newRequestRepo(t)
	mockQueries.EXPECT().ExpirePendingRequestsForBooking(ctx, mockDB, sqlc.ExpirePendingRequestsForBookingParams{
		RespondedAt: pgconv.TimeToPgtype(at),
		BookingID:   bookingID,
	}).Return(int64(3), nil)
	mockQueries.EXPECT().HasAcceptedRequest(ctx, mockDB, bookingID).Return(true, nil)
	offered := []uuid.UUID{uuid.New(), uuid.New()}
	mockQueries.EXPECT().ListOfferedProviderIDs(ctx, mockDB, bookingID).Return(offered, nil)

	n, err := repo.ExpirePendingForBooking(ctx, mockDB, bookingID, at)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	has, err := repo.HasAccepted(ctx, mockDB, bookingID)
	require.NoError(t, err)
	assert.True(t, has)

	ids, err := repo.OfferedProviderIDs(ctx, mockDB, bookingID)
	require.NoError(t, err)
	assert.Equal(t, offered, ids)
}
