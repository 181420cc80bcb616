package notifier

import (
	"sync"

	"home-dispatch/internal/usecase/queries"
	"home-dispatch/internal/usecase/shared"

	"github.com/google/uuid"
)

const defaultSubscriberBuffer = 32

type EventKind string

const (
	KindBooking  EventKind = "booking"
	KindRequest  EventKind = "request"
	KindLocation EventKind = "location"
	// KindResync tells the subscriber that events were lost and it must refetch.
	KindResync EventKind = "resync"
)

// ChangeEvent carries the post-write snapshot of one changed row.
type ChangeEvent struct {
	Kind       EventKind              `json:"kind"`
	Op         string                 `json:"op,omitempty"`
	BookingID  uuid.UUID              `json:"booking_id"`
	CustomerID uuid.UUID              `json:"-"`
	ProviderID *uuid.UUID             `json:"-"`
	Booking    *queries.BookingView   `json:"booking,omitempty"`
	Request    *queries.RequestView   `json:"request,omitempty"`
	Location   *shared.LocationUpdate `json:"location,omitempty"`
}

// Filter selects events by booking, customer or provider. Unset fields do not
// constrain; an event matches when every set field matches.
type Filter struct {
	BookingID  *uuid.UUID
	CustomerID *uuid.UUID
	ProviderID *uuid.UUID
}

func (f Filter) Matches(e ChangeEvent) bool {
	if f.BookingID != nil && *f.BookingID != e.BookingID {
		return false
	}
	if f.CustomerID != nil && (e.CustomerID == uuid.Nil || *f.CustomerID != e.CustomerID) {
		return false
	}
	if f.ProviderID != nil && (e.ProviderID == nil || *f.ProviderID != *e.ProviderID) {
		return false
	}
	return true
}

// Hub fans change events out to in-process subscribers. Publishing never
// blocks: a subscriber whose buffer is full loses events and is sent a
// KindResync marker as soon as it has room again.
type Hub struct {
	mu     sync.RWMutex
	subs   map[uint64]*Subscription
	nextID uint64
	buffer int
}

func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = defaultSubscriberBuffer
	}
	return &Hub{subs: make(map[uint64]*Subscription), buffer: buffer}
}

type Subscription struct {
	id     uint64
	filter Filter
	ch     chan ChangeEvent
	hub    *Hub
	once   sync.Once

	mu     sync.Mutex
	lagged bool
}

func (h *Hub) Subscribe(f Filter) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	s := &Subscription{
		id:     h.nextID,
		filter: f,
		ch:     make(chan ChangeEvent, h.buffer),
		hub:    h,
	}
	h.subs[s.id] = s
	return s
}

func (s *Subscription) Events() <-chan ChangeEvent {
	return s.ch
}

func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.mu.Lock()
		delete(s.hub.subs, s.id)
		s.hub.mu.Unlock()
		close(s.ch)
	})
}

func (h *Hub) Publish(e ChangeEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, s := range h.subs {
		if s.filter.Matches(e) {
			s.offer(e)
		}
	}
}

// ResyncAll marks every subscriber as lagged; used after the change feed itself dropped.
func (h *Hub) ResyncAll() {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, s := range h.subs {
		s.mu.Lock()
		s.lagged = true
		s.flushResync()
		s.mu.Unlock()
	}
}

func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

func (s *Subscription) offer(e ChangeEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.flushResync() {
		return
	}
	select {
	case s.ch <- e:
	default:
		s.lagged = true
	}
}

// flushResync reports whether the subscriber is caught up. Callers hold s.mu.
func (s *Subscription) flushResync() bool {
	if !s.lagged {
		return true
	}
	select {
	case s.ch <- ChangeEvent{Kind: KindResync}:
		s.lagged = false
		return true
	default:
		return false
	}
}
