package queries

import (
	"context"

	"home-dispatch/internal/domain/user"
	"home-dispatch/internal/infra"
	"home-dispatch/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, after *CursorKey, limit int32) ([]*BookingView, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID, after *CursorKey, limit int32) ([]*BookingView, error)
	RequestsByBooking(ctx context.Context, bookingID uuid.UUID) ([]*RequestView, error)
	RequestFor(ctx context.Context, bookingID, providerID uuid.UUID) (*RequestView, error)
	PendingOffers(ctx context.Context, providerID uuid.UUID, limit int32) ([]*OfferView, error)
	EventsByBooking(ctx context.Context, bookingID uuid.UUID) ([]*LifecycleEventView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*BookingDetailView, error)
	// GetByIDSystem skips authorization; for idempotent replays and change fan-out.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, actor user.Actor, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error)
	ListEvents(ctx context.Context, actor user.Actor, id uuid.UUID) ([]*LifecycleEventView, error)
	ListPendingOffers(ctx context.Context, actor user.Actor, limit int) ([]*OfferView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*BookingDetailView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}

	switch {
	case actor.IsAdmin(), actor.IsCustomer() && view.CustomerID == actor.ID:
		reqs, err := q.store.RequestsByBooking(ctx, id)
		if err != nil {
			return nil, err
		}
		return &BookingDetailView{BookingView: view, Requests: reqs}, nil
	case actor.IsProvider():
		// an offered provider sees the booking and only its own request
		req, err := q.store.RequestFor(ctx, id, actor.ID)
		if err != nil && !infra.IsKind(err, infra.KindNotFound) {
			return nil, err
		}
		assigned := view.ProviderID != nil && *view.ProviderID == actor.ID
		if req == nil && !assigned {
			return nil, errs.ErrForbidden
		}
		detail := &BookingDetailView{BookingView: view, Requests: []*RequestView{}}
		if req != nil {
			detail.Requests = append(detail.Requests, req)
		}
		return detail, nil
	default:
		return nil, errs.ErrForbidden
	}
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, actor user.Actor, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	limit = ValidateLimit(limit)

	var after *CursorKey
	if cursor != nil && cursor.After != "" {
		key, err := DecodeAfterCursor(cursor.After)
		if err != nil {
			return nil, nil, err
		}
		after = key
	}

	var rows []*BookingView
	var err error
	switch actor.Role {
	case user.RoleCustomer:
		rows, err = q.store.ListByCustomer(ctx, actor.ID, after, int32(limit+1))
	case user.RoleProvider:
		rows, err = q.store.ListByProvider(ctx, actor.ID, after, int32(limit+1))
	default:
		return nil, nil, errs.ErrForbidden
	}
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

func (q *bookingQueriesImpl) ListEvents(ctx context.Context, actor user.Actor, id uuid.UUID) ([]*LifecycleEventView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanView(actor, view) {
		return nil, errs.ErrForbidden
	}
	return q.store.EventsByBooking(ctx, id)
}

func (q *bookingQueriesImpl) ListPendingOffers(ctx context.Context, actor user.Actor, limit int) ([]*OfferView, error) {
	if !actor.IsProvider() {
		return nil, errs.ErrForbidden
	}
	return q.store.PendingOffers(ctx, actor.ID, int32(ValidateLimit(limit)))
}

// CanView reports whether actor is a party to the booking.
func CanView(actor user.Actor, v *BookingView) bool {
	switch actor.Role {
	case user.RoleAdmin:
		return true
	case user.RoleCustomer:
		return v.CustomerID == actor.ID
	case user.RoleProvider:
		return v.ProviderID != nil && *v.ProviderID == actor.ID
	default:
		return false
	}
}
