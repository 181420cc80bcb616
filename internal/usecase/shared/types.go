package shared

import (
	"context"
	"time"

	"home-dispatch/internal/domain/booking"

	"github.com/google/uuid"
)

const (
	IdempotencyProcessing = "processing"
	IdempotencyCompleted  = "completed"
)

type IdempotencyRecord struct {
	Key             uuid.UUID
	UserID          uuid.UUID
	Endpoint        string
	Status          string
	RequestHash     string
	ResultBookingID *uuid.UUID
	ExpiresAt       time.Time
}

type UnmatchedBooking struct {
	ID             uuid.UUID
	BroadcastRound int32
}

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	Attempts int32
	RunAt    time.Time
}

// CandidateQuery describes what a booking needs from a provider.
type CandidateQuery struct {
	BookingID uuid.UUID
	Category  string
	Location  *booking.Location
	Exclude   map[uuid.UUID]struct{}
}

// CandidateSelector resolves eligible providers for a booking. It is a pure
// input to dispatch: the engine never ranks or filters beyond Exclude.
type CandidateSelector interface {
	SelectCandidates(ctx context.Context, q CandidateQuery) ([]uuid.UUID, error)
}

// Geocoder resolves a free-text address to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*booking.Location, error)
}

// AvailabilityStore tracks which providers are online, where, and for what.
type AvailabilityStore interface {
	SetOnline(ctx context.Context, providerID uuid.UUID, categories []string, loc booking.Location) error
	SetOffline(ctx context.Context, providerID uuid.UUID) error
}

// LocationUpdate is one live position report from the assigned provider.
type LocationUpdate struct {
	BookingID  uuid.UUID `json:"booking_id"`
	ProviderID uuid.UUID `json:"provider_id"`
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	At         time.Time `json:"at"`
}

type LocationPublisher interface {
	PublishLocation(ctx context.Context, u LocationUpdate) error
}

// JobPublisher hands a notification job to the delivery transport.
type JobPublisher interface {
	Publish(ctx context.Context, kind, topic string, payload []byte) error
}
