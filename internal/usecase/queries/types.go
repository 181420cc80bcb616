package queries

import (
	"encoding/json"
	"time"

	"home-dispatch/internal/domain/booking"
	"home-dispatch/internal/domain/dispatch"

	"github.com/google/uuid"
)

type AddressView struct {
	Line       string `json:"line"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
}

type LocationView struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// BookingView is the read projection of a booking. Null fields mean "not yet known".
type BookingView struct {
	ID                  uuid.UUID     `json:"id"`
	CustomerID          uuid.UUID     `json:"customer_id"`
	ProviderID          *uuid.UUID    `json:"provider_id"`
	Status              string        `json:"status"`
	ServiceCategory     string        `json:"service_category"`
	Requirements        string        `json:"requirements"`
	Address             AddressView   `json:"address"`
	Location            *LocationView `json:"location"`
	EstimatedCost       int64         `json:"estimated_cost"`
	FinalCost           *int64        `json:"final_cost"`
	PaymentStatus       string        `json:"payment_status"`
	ScheduledAt         *time.Time    `json:"scheduled_at"`
	StatusVersion       int32         `json:"status_version"`
	BroadcastRound      int32         `json:"broadcast_round"`
	DispatchExhaustedAt *time.Time    `json:"dispatch_exhausted_at,omitempty"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
	ConfirmedAt         *time.Time    `json:"confirmed_at"`
	StartedAt           *time.Time    `json:"started_at"`
	CompletedAt         *time.Time    `json:"completed_at"`
	CancelledAt         *time.Time    `json:"cancelled_at"`
	CancelledBy         *string       `json:"cancelled_by"`
	CancelReason        *string       `json:"cancel_reason,omitempty"`
}

type RequestView struct {
	ID             uuid.UUID  `json:"id"`
	BookingID      uuid.UUID  `json:"booking_id"`
	ProviderID     uuid.UUID  `json:"provider_id"`
	Status         string     `json:"status"`
	BroadcastRound int32      `json:"broadcast_round"`
	CreatedAt      time.Time  `json:"created_at"`
	RespondedAt    *time.Time `json:"responded_at"`
}

// BookingDetailView adds the dispatch history visible to the caller.
type BookingDetailView struct {
	*BookingView
	Requests []*RequestView `json:"requests"`
}

// OfferView is a pending request as its provider sees it.
type OfferView struct {
	RequestID       uuid.UUID     `json:"request_id"`
	BookingID       uuid.UUID     `json:"booking_id"`
	BroadcastRound  int32         `json:"broadcast_round"`
	OfferedAt       time.Time     `json:"offered_at"`
	ServiceCategory string        `json:"service_category"`
	Requirements    string        `json:"requirements"`
	AddressLine     string        `json:"address_line"`
	City            string        `json:"city,omitempty"`
	Location        *LocationView `json:"location"`
	EstimatedCost   int64         `json:"estimated_cost"`
	ScheduledAt     *time.Time    `json:"scheduled_at"`
}

type LifecycleEventView struct {
	ID         uuid.UUID       `json:"id"`
	BookingID  uuid.UUID       `json:"booking_id"`
	Kind       string          `json:"kind"`
	FromStatus *string         `json:"from_status"`
	ToStatus   *string         `json:"to_status"`
	ActorID    *uuid.UUID      `json:"actor_id"`
	ActorRole  *string         `json:"actor_role"`
	Metadata   json.RawMessage `json:"metadata"`
	CreatedAt  time.Time       `json:"created_at"`
}

func NewBookingView(b *booking.Booking) *BookingView {
	v := &BookingView{
		ID:              b.ID(),
		CustomerID:      b.CustomerID(),
		ProviderID:      b.ProviderID(),
		Status:          b.Status().String(),
		ServiceCategory: b.Category().String(),
		Requirements:    b.Requirements(),
		Address: AddressView{
			Line:       b.Address().Line(),
			City:       b.Address().City(),
			PostalCode: b.Address().PostalCode(),
		},
		EstimatedCost:  b.EstimatedCost().Minor(),
		PaymentStatus:  b.PaymentStatus().String(),
		ScheduledAt:    b.ScheduledAt(),
		StatusVersion:  b.Version(),
		BroadcastRound: b.BroadcastRound(),
		CreatedAt:      b.CreatedAt(),
		UpdatedAt:      b.UpdatedAt(),
		ConfirmedAt:    b.ConfirmedAt(),
		StartedAt:      b.StartedAt(),
		CompletedAt:    b.CompletedAt(),
		CancelledAt:    b.CancelledAt(),
	}
	if loc := b.Location(); loc != nil {
		v.Location = &LocationView{Lat: loc.Lat(), Lng: loc.Lng()}
	}
	if fc := b.FinalCost(); fc != nil {
		minor := fc.Minor()
		v.FinalCost = &minor
	}
	if by := b.CancelledBy(); by != nil {
		s := by.String()
		v.CancelledBy = &s
	}
	if reason := b.CancelReason(); reason != "" {
		v.CancelReason = &reason
	}
	return v
}

func NewRequestView(r *dispatch.Request) *RequestView {
	return &RequestView{
		ID:             r.ID(),
		BookingID:      r.BookingID(),
		ProviderID:     r.ProviderID(),
		Status:         r.Status().String(),
		BroadcastRound: r.Round(),
		CreatedAt:      r.CreatedAt(),
		RespondedAt:    r.RespondedAt(),
	}
}

func NewRequestViews(reqs []*dispatch.Request) []*RequestView {
	out := make([]*RequestView, len(reqs))
	for i, r := range reqs {
		out[i] = NewRequestView(r)
	}
	return out
}
