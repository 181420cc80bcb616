package booking

import (
	"time"

	"home-dispatch/internal/domain/user"

	"github.com/google/uuid"
)

type EventKind string

const (
	EventCreated           EventKind = "created"
	EventProvidersNotified EventKind = "providers_notified"
	EventAccepted          EventKind = "accepted"
	EventStatusChanged     EventKind = "status_changed"
	EventDispatchExhausted EventKind = "dispatch_exhausted"
	EventOtpIssued         EventKind = "otp_issued"
	EventReviewed          EventKind = "reviewed"
)

func (k EventKind) String() string {
	return string(k)
}

// LifecycleEvent is an append-only audit record for one booking.
type LifecycleEvent struct {
	BookingID uuid.UUID
	Kind      EventKind
	From      *Status
	To        *Status
	Actor     *user.Actor
	Metadata  map[string]any
	At        time.Time
}

func NewCreatedEvent(b *Booking) LifecycleEvent {
	to := b.status
	return LifecycleEvent{
		BookingID: b.id,
		Kind:      EventCreated,
		To:        &to,
		Actor:     &user.Actor{ID: b.customerID, Role: user.RoleCustomer},
		Metadata:  map[string]any{"service_category": b.category.String()},
		At:        b.createdAt,
	}
}

// NewTransitionEvent records prev -> next as performed by actor.
func NewTransitionEvent(prev, next *Booking, kind EventKind, actor user.Actor) LifecycleEvent {
	from, to := prev.status, next.status
	meta := map[string]any{"status_version": next.version}
	if next.providerID != nil {
		meta["provider_id"] = next.providerID.String()
	}
	if next.finalCost != nil {
		meta["final_cost"] = next.finalCost.Minor()
	}
	if to == StatusCancelled && next.cancelReason != "" {
		meta["reason"] = next.cancelReason
	}
	return LifecycleEvent{
		BookingID: next.id,
		Kind:      kind,
		From:      &from,
		To:        &to,
		Actor:     &actor,
		Metadata:  meta,
		At:        next.updatedAt,
	}
}

func NewProvidersNotifiedEvent(bookingID uuid.UUID, round int32, providerIDs []uuid.UUID, at time.Time) LifecycleEvent {
	ids := make([]string, len(providerIDs))
	for i, id := range providerIDs {
		ids[i] = id.String()
	}
	return LifecycleEvent{
		BookingID: bookingID,
		Kind:      EventProvidersNotified,
		Metadata:  map[string]any{"round": round, "provider_ids": ids},
		At:        at,
	}
}

func NewDispatchExhaustedEvent(bookingID uuid.UUID, rounds int32, at time.Time) LifecycleEvent {
	return LifecycleEvent{
		BookingID: bookingID,
		Kind:      EventDispatchExhausted,
		Metadata:  map[string]any{"rounds": rounds},
		At:        at,
	}
}

// NewAcceptedEvent records the dispatch claim that moved a booking out of PENDING.
func NewAcceptedEvent(next *Booking) LifecycleEvent {
	prev := *next
	prev.status = StatusPending
	prev.providerID = nil
	return NewTransitionEvent(&prev, next, EventAccepted, user.Actor{ID: *next.providerID, Role: user.RoleProvider})
}

func NewReviewedEvent(bookingID uuid.UUID, customer user.Actor, rating int, at time.Time) LifecycleEvent {
	return LifecycleEvent{
		BookingID: bookingID,
		Kind:      EventReviewed,
		Actor:     &customer,
		Metadata:  map[string]any{"rating": rating},
		At:        at,
	}
}
