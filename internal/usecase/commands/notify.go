package commands

import (
	"context"
	"encoding/json"
	"time"

	"home-dispatch/internal/domain/booking"
	"home-dispatch/internal/domain/dispatch"
	"home-dispatch/internal/domain/user"
	"home-dispatch/internal/pkg/errs"
	"home-dispatch/internal/usecase/shared"

	"github.com/google/uuid"
)

// Notification job kinds double as AMQP routing keys.
const (
	NotifyJobOffer          = "job_offer"
	NotifyStatusChanged     = "booking_status_changed"
	NotifyDispatchExhausted = "dispatch_exhausted"
	NotifyReviewReceived    = "review_received"
)

func ProviderTopic(providerID uuid.UUID) string {
	return "provider." + providerID.String()
}

func BookingTopic(bookingID uuid.UUID) string {
	return "booking." + bookingID.String()
}

type JobOfferPayload struct {
	BookingID       uuid.UUID `json:"booking_id"`
	RequestID       uuid.UUID `json:"request_id"`
	ProviderID      uuid.UUID `json:"provider_id"`
	Round           int32     `json:"round"`
	ServiceCategory string    `json:"service_category"`
	EstimatedCost   int64     `json:"estimated_cost"`
}

type StatusChangedPayload struct {
	BookingID     uuid.UUID  `json:"booking_id"`
	CustomerID    uuid.UUID  `json:"customer_id"`
	ProviderID    *uuid.UUID `json:"provider_id"`
	From          string     `json:"from"`
	To            string     `json:"to"`
	StatusVersion int32      `json:"status_version"`
}

type DispatchExhaustedPayload struct {
	BookingID  uuid.UUID `json:"booking_id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Rounds     int32     `json:"rounds"`
}

type ReviewReceivedPayload struct {
	BookingID  uuid.UUID `json:"booking_id"`
	ReviewID   uuid.UUID `json:"review_id"`
	ProviderID uuid.UUID `json:"provider_id"`
	Rating     int       `json:"rating"`
}

func enqueue(ctx context.Context, tx shared.Tx, kind, topic string, payload any, at time.Time) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrapf(err, "marshal %s payload", kind)
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), kind, topic, body, at)
}

func enqueueJobOffers(ctx context.Context, tx shared.Tx, b *booking.Booking, reqs []*dispatch.Request, at time.Time) error {
	for _, r := range reqs {
		payload := JobOfferPayload{
			BookingID:       b.ID(),
			RequestID:       r.ID(),
			ProviderID:      r.ProviderID(),
			Round:           r.Round(),
			ServiceCategory: b.Category().String(),
			EstimatedCost:   b.EstimatedCost().Minor(),
		}
		if err := enqueue(ctx, tx, NotifyJobOffer, ProviderTopic(r.ProviderID()), payload, at); err != nil {
			return err
		}
	}
	return nil
}

func enqueueStatusChanged(ctx context.Context, tx shared.Tx, from booking.Status, next *booking.Booking) error {
	payload := StatusChangedPayload{
		BookingID:     next.ID(),
		CustomerID:    next.CustomerID(),
		ProviderID:    next.ProviderID(),
		From:          from.String(),
		To:            next.Status().String(),
		StatusVersion: next.Version(),
	}
	return enqueue(ctx, tx, NotifyStatusChanged, BookingTopic(next.ID()), payload, next.UpdatedAt())
}

func enqueueDispatchExhausted(ctx context.Context, tx shared.Tx, b *booking.Booking, at time.Time) error {
	payload := DispatchExhaustedPayload{
		BookingID:  b.ID(),
		CustomerID: b.CustomerID(),
		Rounds:     b.BroadcastRound(),
	}
	return enqueue(ctx, tx, NotifyDispatchExhausted, BookingTopic(b.ID()), payload, at)
}

// recordTransition appends the audit event and the status notification for prev -> next.
func recordTransition(ctx context.Context, tx shared.Tx, prev, next *booking.Booking, kind booking.EventKind, actor user.Actor) error {
	if err := tx.Events().Append(ctx, tx.DB(), booking.NewTransitionEvent(prev, next, kind, actor)); err != nil {
		return err
	}
	return enqueueStatusChanged(ctx, tx, prev.Status(), next)
}
