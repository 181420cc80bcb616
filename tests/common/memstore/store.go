//go:build unit || e2e

// Package memstore is an in-memory shared.UnitOfWork for usecase tests. A
// Within call holds a global lock over a private copy of the state and
// publishes the copy only when fn succeeds, so concurrent callers serialize
// the way row locks serialize them in PostgreSQL.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"home-dispatch/internal/domain/booking"
	"home-dispatch/internal/domain/dispatch"
	"home-dispatch/internal/domain/otp"
	"home-dispatch/internal/domain/review"
	"home-dispatch/internal/pkg/clock"
	"home-dispatch/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	JobQueued = "queued"
	JobSent   = "sent"
	JobFailed = "failed"
)

// Job is a stored notification job.
type Job struct {
	shared.NotificationJob
	Status    string
	LastError string
	seq       int
}

// ProviderStats is a provider's rating aggregate as Recalc last left it.
type ProviderStats struct {
	TotalReviews  int
	AverageRating float64
	Counts        [review.MaxRating]int
	UpdatedAt     time.Time
}

type idemKey struct {
	key    uuid.UUID
	userID uuid.UUID
}

type state struct {
	bookings  map[uuid.UUID]*booking.Booking
	exhausted map[uuid.UUID]time.Time
	requests  map[uuid.UUID]*dispatch.Request
	reqSeq    map[uuid.UUID]int
	otps      map[uuid.UUID]*otp.Challenge
	events    []booking.LifecycleEvent
	jobs      map[uuid.UUID]Job
	idem      map[idemKey]shared.IdempotencyRecord
	reviews   map[uuid.UUID]*review.Review
	stats     map[uuid.UUID]ProviderStats
	seq       int
}

func newState() *state {
	return &state{
		bookings:  map[uuid.UUID]*booking.Booking{},
		exhausted: map[uuid.UUID]time.Time{},
		requests:  map[uuid.UUID]*dispatch.Request{},
		reqSeq:    map[uuid.UUID]int{},
		otps:      map[uuid.UUID]*otp.Challenge{},
		jobs:      map[uuid.UUID]Job{},
		idem:      map[idemKey]shared.IdempotencyRecord{},
		reviews:   map[uuid.UUID]*review.Review{},
		stats:     map[uuid.UUID]ProviderStats{},
	}
}

// clone copies the maps; stored entities are never mutated in place.
func (s *state) clone() *state {
	c := newState()
	for k, v := range s.bookings {
		c.bookings[k] = v
	}
	for k, v := range s.exhausted {
		c.exhausted[k] = v
	}
	for k, v := range s.requests {
		c.requests[k] = v
	}
	for k, v := range s.reqSeq {
		c.reqSeq[k] = v
	}
	for k, v := range s.otps {
		c.otps[k] = v
	}
	c.events = append(c.events, s.events...)
	for k, v := range s.jobs {
		c.jobs[k] = v
	}
	for k, v := range s.idem {
		c.idem[k] = v
	}
	for k, v := range s.reviews {
		c.reviews[k] = v
	}
	for k, v := range s.stats {
		c.stats[k] = v
	}
	c.seq = s.seq
	return c
}

func (s *state) next() int {
	s.seq++
	return s.seq
}

type Store struct {
	mu    sync.Mutex
	st    *state
	clock clock.Clock

	// FailCommit, when set, is returned by Within after fn succeeded and
	// nothing is committed.
	FailCommit error
}

var _ shared.UnitOfWork = (*Store)(nil)

func New(clk clock.Clock) *Store {
	return &Store{st: newState(), clock: clk}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.st.clone()
	if err := fn(ctx, &memTx{st: work, clock: s.clock}); err != nil {
		return err
	}
	if s.FailCommit != nil {
		return s.FailCommit
	}
	s.st = work
	return nil
}

func (s *Store) WithDB(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(ctx, &memTx{st: s.st, clock: s.clock})
}

func (s *Store) CommandReads() shared.CommandReads {
	return &lockedReads{store: s}
}

// ---- seeding and inspection ----

func (s *Store) PutBooking(b *booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.bookings[b.ID()] = b
}

func (s *Store) PutRequest(r *dispatch.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.requests[r.ID()] = r
	s.st.reqSeq[r.ID()] = s.st.next()
}

func (s *Store) PutOtp(c *otp.Challenge) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.otps[c.BookingID()] = c
}

func (s *Store) PutIdempotency(rec shared.IdempotencyRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.idem[idemKey{key: rec.Key, userID: rec.UserID}] = rec
}

func (s *Store) Booking(id uuid.UUID) *booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.bookings[id]
}

func (s *Store) Bookings() []*booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*booking.Booking, 0, len(s.st.bookings))
	for _, b := range s.st.bookings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt().Before(out[j].CreatedAt()) })
	return out
}

func (s *Store) ExhaustedAt(id uuid.UUID) *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	at, ok := s.st.exhausted[id]
	if !ok {
		return nil
	}
	return &at
}

// Requests lists a booking's requests in insertion order.
func (s *Store) Requests(bookingID uuid.UUID) []*dispatch.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.requestsFor(bookingID)
}

func (s *Store) Otp(bookingID uuid.UUID) *otp.Challenge {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.otps[bookingID]
}

func (s *Store) Events(bookingID uuid.UUID) []booking.LifecycleEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []booking.LifecycleEvent
	for _, e := range s.st.events {
		if e.BookingID == bookingID {
			out = append(out, e)
		}
	}
	return out
}

// Jobs lists notification jobs in insertion order.
func (s *Store) Jobs() []Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Job, 0, len(s.st.jobs))
	for _, j := range s.st.jobs {
		out = append(out, j)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })
	return out
}

func (s *Store) Idempotency(key, userID uuid.UUID) *shared.IdempotencyRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.st.idem[idemKey{key: key, userID: userID}]
	if !ok {
		return nil
	}
	return &rec
}

// Review returns the booking's review, nil when none was stored.
func (s *Store) Review(bookingID uuid.UUID) *review.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.reviews[bookingID]
}

func (s *Store) ProviderStats(providerID uuid.UUID) (ProviderStats, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ps, ok := s.st.stats[providerID]
	return ps, ok
}

func (st *state) requestsFor(bookingID uuid.UUID) []*dispatch.Request {
	var out []*dispatch.Request
	for _, r := range st.requests {
		if r.BookingID() == bookingID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return st.reqSeq[out[i].ID()] < st.reqSeq[out[j].ID()] })
	return out
}

func (st *state) requestFor(bookingID, providerID uuid.UUID) *dispatch.Request {
	for _, r := range st.requests {
		if r.BookingID() == bookingID && r.ProviderID() == providerID {
			return r
		}
	}
	return nil
}
