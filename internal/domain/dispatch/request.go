package dispatch

import (
	"time"

	"home-dispatch/internal/pkg/errs"

	"github.com/google/uuid"
)

type RequestStatus string

const (
	RequestPending  RequestStatus = "PENDING"
	RequestAccepted RequestStatus = "ACCEPTED"
	RequestRejected RequestStatus = "REJECTED"
	RequestExpired  RequestStatus = "EXPIRED"
)

func (s RequestStatus) String() string {
	return string(s)
}

func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestPending, RequestAccepted, RequestRejected, RequestExpired:
		return true
	default:
		return false
	}
}

// IsResolved reports whether the offer is immutable history.
func (s RequestStatus) IsResolved() bool {
	return s != RequestPending
}

// Request is one offer of a booking to one candidate provider.
type Request struct {
	id          uuid.UUID
	bookingID   uuid.UUID
	providerID  uuid.UUID
	status      RequestStatus
	round       int32
	createdAt   time.Time
	respondedAt *time.Time
}

// NewRequests builds one PENDING offer per distinct candidate, skipping any
// provider listed in exclude. An empty result is ErrNoCandidates.
func NewRequests(bookingID uuid.UUID, candidates []uuid.UUID, exclude map[uuid.UUID]struct{}, round int32, now time.Time) ([]*Request, error) {
	seen := make(map[uuid.UUID]struct{}, len(candidates))
	out := make([]*Request, 0, len(candidates))
	for _, pid := range candidates {
		if pid == uuid.Nil {
			continue
		}
		if _, dup := seen[pid]; dup {
			continue
		}
		seen[pid] = struct{}{}
		if _, skip := exclude[pid]; skip {
			continue
		}
		out = append(out, &Request{
			id:         uuid.New(),
			bookingID:  bookingID,
			providerID: pid,
			status:     RequestPending,
			round:      round,
			createdAt:  now,
		})
	}
	if len(out) == 0 {
		return nil, errs.Wrapf(errs.ErrNoCandidates, "booking %s", bookingID)
	}
	return out, nil
}

func ReconstructRequest(id, bookingID, providerID uuid.UUID, status RequestStatus, round int32, createdAt time.Time, respondedAt *time.Time) *Request {
	return &Request{
		id:          id,
		bookingID:   bookingID,
		providerID:  providerID,
		status:      status,
		round:       round,
		createdAt:   createdAt,
		respondedAt: respondedAt,
	}
}

func (r *Request) ID() uuid.UUID           { return r.id }
func (r *Request) BookingID() uuid.UUID    { return r.bookingID }
func (r *Request) ProviderID() uuid.UUID   { return r.providerID }
func (r *Request) Status() RequestStatus   { return r.status }
func (r *Request) Round() int32            { return r.round }
func (r *Request) CreatedAt() time.Time    { return r.createdAt }
func (r *Request) RespondedAt() *time.Time { return r.respondedAt }

// ProviderIDs lists the providers of reqs in order.
func ProviderIDs(reqs []*Request) []uuid.UUID {
	ids := make([]uuid.UUID, len(reqs))
	for i, r := range reqs {
		ids[i] = r.providerID
	}
	return ids
}
