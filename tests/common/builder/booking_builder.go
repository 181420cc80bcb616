//go:build unit || e2e

package builder

import (
	"time"

	"home-dispatch/internal/domain/booking"
	"home-dispatch/internal/domain/user"
	reqdto "home-dispatch/internal/handler/dto/request"
	"home-dispatch/internal/usecase/commands"
	"home-dispatch/internal/usecase/queries"

	"github.com/google/uuid"
)

var DefaultNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

type BookingBuilder struct {
	CustomerID    uuid.UUID
	Category      string
	Requirements  string
	AddressLine   string
	City          string
	PostalCode    string
	Latitude      *float64
	Longitude     *float64
	EstimatedCost int64
	ScheduledAt   *time.Time
	Now           time.Time
}

func NewBookingBuilder() *BookingBuilder {
	lat, lng := 35.6812, 139.7671
	return &BookingBuilder{
		CustomerID:    uuid.New(),
		Category:      "plumbing",
		Requirements:  "Kitchen sink is leaking",
		AddressLine:   "1-9-1 Marunouchi",
		City:          "Tokyo",
		PostalCode:    "100-0005",
		Latitude:      &lat,
		Longitude:     &lng,
		EstimatedCost: 12000,
		Now:           DefaultNow,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithCustomer(id uuid.UUID) *BookingBuilder {
	b.CustomerID = id
	return b
}

func (b *BookingBuilder) WithCategory(c string) *BookingBuilder {
	b.Category = c
	return b
}

func (b *BookingBuilder) WithoutLocation() *BookingBuilder {
	b.Latitude, b.Longitude = nil, nil
	return b
}

func (b *BookingBuilder) WithNow(t time.Time) *BookingBuilder {
	b.Now = t
	return b
}

func (b *BookingBuilder) Customer() user.Actor {
	return user.Actor{ID: b.CustomerID, Role: user.RoleCustomer}
}

func (b *BookingBuilder) BuildParams() booking.NewBookingParams {
	return booking.NewBookingParams{
		CustomerID:    b.CustomerID,
		Category:      b.Category,
		Requirements:  b.Requirements,
		AddressLine:   b.AddressLine,
		City:          b.City,
		PostalCode:    b.PostalCode,
		Latitude:      b.Latitude,
		Longitude:     b.Longitude,
		EstimatedCost: b.EstimatedCost,
		ScheduledAt:   b.ScheduledAt,
	}
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	return booking.NewBooking(b.BuildParams(), b.Now)
}

// MustBuildDomain panics on invalid builder state; for fixtures only.
func (b *BookingBuilder) MustBuildDomain() *booking.Booking {
	bk, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return bk
}

// BuildInStatus returns a persisted-looking booking already moved to status.
// providerID is ignored for PENDING.
func (b *BookingBuilder) BuildInStatus(status booking.Status, providerID uuid.UUID, version int32) *booking.Booking {
	p := booking.ReconstructParams{
		ID:            uuid.New(),
		CustomerID:    b.CustomerID,
		Category:      b.Category,
		Requirements:  b.Requirements,
		AddressLine:   b.AddressLine,
		City:          b.City,
		PostalCode:    b.PostalCode,
		Latitude:      b.Latitude,
		Longitude:     b.Longitude,
		EstimatedCost: b.EstimatedCost,
		ScheduledAt:   b.ScheduledAt,
		Status:        status,
		PaymentStatus: booking.PaymentPending,
		Version:       version,
		CreatedAt:     b.Now,
		UpdatedAt:     b.Now,
	}
	if status.HasProvider() {
		pid := providerID
		confirmed := b.Now
		p.ProviderID = &pid
		p.ConfirmedAt = &confirmed
		p.BroadcastRound = 1
	}
	return booking.Reconstruct(p)
}

func (b *BookingBuilder) BuildCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		Category:      b.Category,
		Requirements:  b.Requirements,
		AddressLine:   b.AddressLine,
		City:          b.City,
		PostalCode:    b.PostalCode,
		Latitude:      b.Latitude,
		Longitude:     b.Longitude,
		EstimatedCost: b.EstimatedCost,
		ScheduledAt:   b.ScheduledAt,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ServiceCategory: b.Category,
		Requirements:    b.Requirements,
		AddressLine:     b.AddressLine,
		City:            b.City,
		PostalCode:      b.PostalCode,
		Latitude:        b.Latitude,
		Longitude:       b.Longitude,
		EstimatedCost:   b.EstimatedCost,
		ScheduledAt:     b.ScheduledAt,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return queries.NewBookingView(b.MustBuildDomain())
}
