package shared

import (
	"context"
	"time"

	"home-dispatch/internal/domain/booking"
	"home-dispatch/internal/domain/dispatch"
	"home-dispatch/internal/domain/otp"
	"home-dispatch/internal/domain/review"
	sqlc "home-dispatch/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: every statement commits on its own; used where steps must not share a transaction
	WithDB(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Requests() BookingRequestRepository
	Otps() OtpRepository
	Events() LifecycleEventRepository
	Notifications() NotificationRepository
	Idempotency() IdempotencyRepository
	Reviews() ReviewRepository
	RatingStats() RatingStatsRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	RequestFor(ctx context.Context, bookingID, providerID uuid.UUID) (*dispatch.Request, error)
	OtpByBooking(ctx context.Context, bookingID uuid.UUID) (*otp.Challenge, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
	// UnmatchedBookings lists PENDING bookings with no live offer: broadcast
	// at least once, or never broadcast and created before staleBefore.
	UnmatchedBookings(ctx context.Context, staleBefore time.Time, limit int32) ([]UnmatchedBooking, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (*booking.Booking, error)
	// Confirm is the PENDING -> CONFIRMED compare-and-swap; a lost race is KindNotFound.
	Confirm(ctx context.Context, tx sqlc.DBTX, bookingID, providerID uuid.UUID, at time.Time) (*booking.Booking, error)
	// Transition writes next guarded by prev's status and version; a lost race is KindConflict.
	Transition(ctx context.Context, tx sqlc.DBTX, prev, next *booking.Booking) (*booking.Booking, error)
	StartBroadcastRound(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID, at time.Time) (int32, error)
	UpdateLocation(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID, loc booking.Location) error
	MarkDispatchExhausted(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID, at time.Time) (bool, error)
}

type BookingRequestRepository interface {
	CreateBatch(ctx context.Context, tx sqlc.DBTX, reqs []*dispatch.Request) ([]*dispatch.Request, error)
	// Accept reports won=false when the guarded update touched no row and
	// KindDuplicateKey when a concurrent winner committed first.
	Accept(ctx context.Context, tx sqlc.DBTX, bookingID, providerID uuid.UUID, at time.Time) (req *dispatch.Request, won bool, err error)
	HasAccepted(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID) (bool, error)
	ExpireAccepted(ctx context.Context, tx sqlc.DBTX, requestID uuid.UUID, at time.Time) error
	Reject(ctx context.Context, tx sqlc.DBTX, bookingID, providerID uuid.UUID, at time.Time) (bool, error)
	ExpirePendingForBooking(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID, at time.Time) (int64, error)
	ExpireStale(ctx context.Context, tx sqlc.DBTX, cutoff, at time.Time) ([]uuid.UUID, error)
	OfferedProviderIDs(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID) ([]uuid.UUID, error)
}

type OtpRepository interface {
	Upsert(ctx context.Context, tx sqlc.DBTX, c *otp.Challenge) (*otp.Challenge, error)
	// Lock reads the challenge FOR UPDATE; a missing one is KindNotFound.
	Lock(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID) (*otp.Challenge, error)
	Consume(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID, code string, at time.Time) (bool, error)
	RecordFailure(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID) (int32, error)
	Delete(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID) error
}

type LifecycleEventRepository interface {
	Append(ctx context.Context, tx sqlc.DBTX, e booking.LifecycleEvent) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]NotificationJob, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) error
	MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, cause string, maxAttempts int32, retryAt, at time.Time) error
}

type IdempotencyRepository interface {
	// TryInsert reports whether this call created the key.
	TryInsert(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	Complete(ctx context.Context, tx sqlc.DBTX, key, userID, bookingID uuid.UUID) error
	ClaimExpired(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, requestHash string, expiresAt time.Time) (bool, error)
}

type ReviewRepository interface {
	// Create reports a second review of the same booking as KindDuplicateKey.
	Create(ctx context.Context, tx sqlc.DBTX, r *review.Review) (*review.Review, error)
}

type RatingStatsRepository interface {
	Recalc(ctx context.Context, tx sqlc.DBTX, providerID uuid.UUID, at time.Time) error
}
