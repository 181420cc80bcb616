package queries

import (
	"context"
	"time"

	"home-dispatch/internal/domain/review"
	"home-dispatch/internal/domain/user"
	"home-dispatch/internal/infra"
	"home-dispatch/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReviewView struct {
	ID         uuid.UUID `json:"id"`
	BookingID  uuid.UUID `json:"booking_id"`
	CustomerID uuid.UUID `json:"customer_id"`
	ProviderID uuid.UUID `json:"provider_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

// ProviderStatsView is a provider's public track record. A provider nobody
// has reviewed yet has zero counts and a zero average.
type ProviderStatsView struct {
	ProviderID    uuid.UUID  `json:"provider_id"`
	JobsCompleted int64      `json:"jobs_completed"`
	TotalReviews  int32      `json:"total_reviews"`
	AverageRating float64    `json:"average_rating"`
	Rating1Count  int32      `json:"rating_1_count"`
	Rating2Count  int32      `json:"rating_2_count"`
	Rating3Count  int32      `json:"rating_3_count"`
	Rating4Count  int32      `json:"rating_4_count"`
	Rating5Count  int32      `json:"rating_5_count"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

func NewReviewView(r *review.Review) *ReviewView {
	return &ReviewView{
		ID:         r.ID(),
		BookingID:  r.BookingID(),
		CustomerID: r.CustomerID(),
		ProviderID: r.ProviderID(),
		Rating:     r.Rating().Value(),
		Comment:    r.Comment().String(),
		CreatedAt:  r.CreatedAt(),
	}
}

type ReviewReadStore interface {
	FindByBooking(ctx context.Context, bookingID uuid.UUID) (*ReviewView, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID, after *CursorKey, limit int32) ([]*ReviewView, error)
	ProviderStats(ctx context.Context, providerID uuid.UUID) (*ProviderStatsView, error)
}

type ReviewQueries interface {
	// GetByBooking is visible to whoever may read the booking itself.
	GetByBooking(ctx context.Context, actor user.Actor, bookingID uuid.UUID) (*ReviewView, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewView, *Cursor, error)
	ProviderStats(ctx context.Context, providerID uuid.UUID) (*ProviderStatsView, error)
}

type reviewQueriesImpl struct {
	store    ReviewReadStore
	bookings BookingQueries
}

func NewReviewQueries(store ReviewReadStore, bookings BookingQueries) ReviewQueries {
	return &reviewQueriesImpl{store: store, bookings: bookings}
}

func (q *reviewQueriesImpl) GetByBooking(ctx context.Context, actor user.Actor, bookingID uuid.UUID) (*ReviewView, error) {
	if _, err := q.bookings.GetByID(ctx, actor, bookingID); err != nil {
		return nil, err
	}
	view, err := q.store.FindByBooking(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(errs.ErrReviewNotFound, "booking %s", bookingID)
		}
		return nil, err
	}
	return view, nil
}

func (q *reviewQueriesImpl) ListByProvider(ctx context.Context, providerID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewView, *Cursor, error) {
	limit = ValidateLimit(limit)

	var after *CursorKey
	if cursor != nil && cursor.After != "" {
		key, err := DecodeAfterCursor(cursor.After)
		if err != nil {
			return nil, nil, err
		}
		after = key
	}

	rows, err := q.store.ListByProvider(ctx, providerID, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *reviewQueriesImpl) ProviderStats(ctx context.Context, providerID uuid.UUID) (*ProviderStatsView, error) {
	return q.store.ProviderStats(ctx, providerID)
}
