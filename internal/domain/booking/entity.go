package booking

import (
	"strings"
	"time"

	"home-dispatch/internal/domain/user"
	"home-dispatch/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCustomerRequired = errs.Mark(errs.New("customer id is required"), errs.ErrDomainValidation)

type Booking struct {
	id             uuid.UUID
	customerID     uuid.UUID
	providerID     *uuid.UUID
	category       ServiceCategory
	requirements   string
	address        Address
	location       *Location
	estimatedCost  Money
	finalCost      *Money
	scheduledAt    *time.Time
	status         Status
	paymentStatus  PaymentStatus
	version        int32
	broadcastRound int32
	createdAt      time.Time
	updatedAt      time.Time
	confirmedAt    *time.Time
	startedAt      *time.Time
	completedAt    *time.Time
	cancelledAt    *time.Time
	cancelledBy    *user.Role
	cancelReason   string
}

type NewBookingParams struct {
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
}

func NewBooking(p NewBookingParams, now time.Time) (*Booking, error) {
	if p.CustomerID == uuid.Nil {
		return nil, ErrCustomerRequired
	}
	category, err := NewServiceCategory(p.Category)
	if err != nil {
		return nil, err
	}
	address, err := NewAddress(p.AddressLine, p.City, p.PostalCode)
	if err != nil {
		return nil, err
	}
	requirements := strings.TrimSpace(p.Requirements)
	if len([]rune(requirements)) > MaxRequirementsLength {
		return nil, ErrRequirementsTooLong
	}
	cost, err := NewMoney(p.EstimatedCost)
	if err != nil {
		return nil, err
	}

	var location *Location
	if p.Latitude != nil && p.Longitude != nil {
		loc, lerr := NewLocation(*p.Latitude, *p.Longitude)
		if lerr != nil {
			return nil, lerr
		}
		location = &loc
	} else if p.Latitude != nil || p.Longitude != nil {
		return nil, ErrInvalidLocation
	}

	return &Booking{
		id:            uuid.New(),
		customerID:    p.CustomerID,
		category:      category,
		requirements:  requirements,
		address:       address,
		location:      location,
		estimatedCost: cost,
		scheduledAt:   p.ScheduledAt,
		status:        StatusPending,
		paymentStatus: PaymentPending,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructParams carries persisted state; it is trusted and not re-validated.
type ReconstructParams struct {
	ID             uuid.UUID
	CustomerID     uuid.UUID
	ProviderID     *uuid.UUID
	Category       string
	Requirements   string
	AddressLine    string
	City           string
	PostalCode     string
	Latitude       *float64
	Longitude      *float64
	EstimatedCost  int64
	FinalCost      *int64
	ScheduledAt    *time.Time
	Status         Status
	PaymentStatus  PaymentStatus
	Version        int32
	BroadcastRound int32
	CreatedAt      time.Time
	UpdatedAt      time.Time
	ConfirmedAt    *time.Time
	StartedAt      *time.Time
	CompletedAt    *time.Time
	CancelledAt    *time.Time
	CancelledBy    *user.Role
	CancelReason   string
}

func Reconstruct(p ReconstructParams) *Booking {
	b := &Booking{
		id:             p.ID,
		customerID:     p.CustomerID,
		providerID:     p.ProviderID,
		category:       ServiceCategory{value: p.Category},
		requirements:   p.Requirements,
		address:        Address{line: p.AddressLine, city: p.City, postalCode: p.PostalCode},
		estimatedCost:  Money{minor: p.EstimatedCost},
		scheduledAt:    p.ScheduledAt,
		status:         p.Status,
		paymentStatus:  p.PaymentStatus,
		version:        p.Version,
		broadcastRound: p.BroadcastRound,
		createdAt:      p.CreatedAt,
		updatedAt:      p.UpdatedAt,
		confirmedAt:    p.ConfirmedAt,
		startedAt:      p.StartedAt,
		completedAt:    p.CompletedAt,
		cancelledAt:    p.CancelledAt,
		cancelledBy:    p.CancelledBy,
		cancelReason:   p.CancelReason,
	}
	if p.Latitude != nil && p.Longitude != nil {
		b.location = &Location{lat: *p.Latitude, lng: *p.Longitude}
	}
	if p.FinalCost != nil {
		b.finalCost = &Money{minor: *p.FinalCost}
	}
	return b
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) CustomerID() uuid.UUID        { return b.customerID }
func (b *Booking) ProviderID() *uuid.UUID       { return b.providerID }
func (b *Booking) Category() ServiceCategory    { return b.category }
func (b *Booking) Requirements() string         { return b.requirements }
func (b *Booking) Address() Address             { return b.address }
func (b *Booking) Location() *Location          { return b.location }
func (b *Booking) EstimatedCost() Money         { return b.estimatedCost }
func (b *Booking) FinalCost() *Money            { return b.finalCost }
func (b *Booking) ScheduledAt() *time.Time      { return b.scheduledAt }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) Version() int32               { return b.version }
func (b *Booking) BroadcastRound() int32        { return b.broadcastRound }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }
func (b *Booking) ConfirmedAt() *time.Time      { return b.confirmedAt }
func (b *Booking) StartedAt() *time.Time        { return b.startedAt }
func (b *Booking) CompletedAt() *time.Time      { return b.completedAt }
func (b *Booking) CancelledAt() *time.Time      { return b.cancelledAt }
func (b *Booking) CancelledBy() *user.Role      { return b.cancelledBy }
func (b *Booking) CancelReason() string         { return b.cancelReason }

func (b *Booking) SetLocation(loc Location) {
	b.location = &loc
}

func (b *Booking) IsAssignedTo(providerID uuid.UUID) bool {
	return b.providerID != nil && *b.providerID == providerID
}

// IsParty reports whether actor may see this booking.
func (b *Booking) IsParty(actor user.Actor) bool {
	switch actor.Role {
	case user.RoleAdmin:
		return true
	case user.RoleCustomer:
		return b.customerID == actor.ID
	case user.RoleProvider:
		return b.IsAssignedTo(actor.ID)
	default:
		return false
	}
}

type TransitionInput struct {
	Target     Status
	Actor      user.Actor
	ProviderID uuid.UUID
	FinalCost  *int64
	Reason     string
	Now        time.Time
}

// Transition returns the booking as it must look after moving to in.Target.
// The receiver is left untouched so its status and version remain available
// as the compare-and-swap guard for the write.
func (b *Booking) Transition(in TransitionInput) (*Booking, error) {
	if err := ValidateTransition(b.status, in.Target); err != nil {
		return nil, err
	}

	next := *b
	next.status = in.Target
	next.version = b.version + 1
	next.updatedAt = in.Now
	now := in.Now

	switch in.Target {
	case StatusConfirmed:
		if in.ProviderID == uuid.Nil {
			return nil, errs.Mark(errs.New("provider id is required to confirm"), errs.ErrDomainValidation)
		}
		pid := in.ProviderID
		next.providerID = &pid
		next.confirmedAt = &now
	case StatusInProgress:
		next.startedAt = &now
	case StatusCompleted:
		final := b.estimatedCost
		if in.FinalCost != nil {
			m, err := NewMoney(*in.FinalCost)
			if err != nil {
				return nil, err
			}
			final = m
		}
		next.finalCost = &final
		next.completedAt = &now
	case StatusCancelled:
		reason := strings.TrimSpace(in.Reason)
		if len([]rune(reason)) > MaxCancelReasonLength {
			return nil, ErrReasonTooLong
		}
		role := in.Actor.Role
		next.cancelledBy = &role
		next.cancelReason = reason
		next.cancelledAt = &now
	}

	return &next, nil
}

// NextBroadcastRound returns the round number for a new fan-out.
func (b *Booking) NextBroadcastRound() int32 {
	return b.broadcastRound + 1
}
