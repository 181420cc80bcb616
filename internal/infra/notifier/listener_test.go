//go:build unit

package notifier_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"home-dispatch/internal/infra"
	"home-dispatch/internal/infra/notifier"
	"home-dispatch/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// feedSession is one scripted LISTEN session: its payloads are delivered in
// order, then it drops with drop or, when drop is nil, stays open.
type feedSession struct {
	payloads []string
	drop     error
}

type fakeFeed struct {
	mu       sync.Mutex
	sessions []feedSession
	opened   int
}

func (f *fakeFeed) Listen(ctx context.Context, ready func(), fn func(string)) error {
	f.mu.Lock()
	var s feedSession
	if len(f.sessions) > 0 {
		s, f.sessions = f.sessions[0], f.sessions[1:]
	}
	f.opened++
	f.mu.Unlock()

	ready()
	for _, p := range s.payloads {
		fn(p)
	}
	if s.drop != nil {
		return s.drop
	}
	<-ctx.Done()
	return ctx.Err()
}

func (f *fakeFeed) Opened() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.opened
}

type fakeSource struct {
	bookings map[uuid.UUID]*queries.BookingView
	requests map[uuid.UUID]*queries.RequestView
	failures map[uuid.UUID]error
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		bookings: map[uuid.UUID]*queries.BookingView{},
		requests: map[uuid.UUID]*queries.RequestView{},
		failures: map[uuid.UUID]error{},
	}
}

func (s *fakeSource) FindByID(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	if err, ok := s.failures[id]; ok {
		return nil, err
	}
	v, ok := s.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", errors.New("no rows"), infra.KindNotFound)
	}
	return v, nil
}

func (s *fakeSource) RequestFor(_ context.Context, bookingID, providerID uuid.UUID) (*queries.RequestView, error) {
	r, ok := s.requests[providerID]
	if !ok || r.BookingID != bookingID {
		return nil, infra.WrapRepoErr("booking request not found", errors.New("no rows"), infra.KindNotFound)
	}
	return r, nil
}

func (s *fakeSource) addBooking(customerID uuid.UUID, providerID *uuid.UUID) *queries.BookingView {
	v := &queries.BookingView{ID: uuid.New(), CustomerID: customerID, ProviderID: providerID, Status: "PENDING"}
	s.bookings[v.ID] = v
	return v
}

func (s *fakeSource) addRequest(bookingID, providerID uuid.UUID) *queries.RequestView {
	r := &queries.RequestView{ID: uuid.New(), BookingID: bookingID, ProviderID: providerID, Status: "PENDING", BroadcastRound: 1}
	s.requests[providerID] = r
	return r
}

func bookingPayload(t *testing.T, v *queries.BookingView) string {
	t.Helper()
	return marshalPayload(t, map[string]any{
		"table": "bookings", "op": "UPDATE", "id": v.ID, "booking_id": v.ID,
		"customer_id": v.CustomerID, "provider_id": v.ProviderID,
	})
}

func requestPayload(t *testing.T, r *queries.RequestView) string {
	t.Helper()
	return marshalPayload(t, map[string]any{
		"table": "booking_requests", "op": "INSERT", "id": r.ID, "booking_id": r.BookingID,
		"provider_id": r.ProviderID,
	})
}

func marshalPayload(t *testing.T, m map[string]any) string {
	t.Helper()
	raw, err := json.Marshal(m)
	require.NoError(t, err)
	return string(raw)
}

func nextEvent(t *testing.T, sub *notifier.Subscription, within time.Duration) notifier.ChangeEvent {
	t.Helper()
	select {
	case e := <-sub.Events():
		return e
	case <-time.After(within):
		t.Fatal("no change event arrived")
		return notifier.ChangeEvent{}
	}
}

func startListener(t *testing.T, feed notifier.Feed, source notifier.SnapshotSource, hub *notifier.Hub) {
	t.Helper()
	l := notifier.NewListener(feed, source, hub, slog.New(slog.NewTextHandler(io.Discard, nil)))
	l.Start()
	t.Cleanup(l.Stop)
}

func TestListener_Routing(t *testing.T) {
	source := newFakeSource()
	customer, provider := uuid.New(), uuid.New()
	pending := source.addBooking(customer, nil)
	offer := source.addRequest(pending.ID, provider)

	hub := notifier.NewHub(8)
	customerSub := hub.Subscribe(notifier.Filter{CustomerID: &customer})
	defer customerSub.Close()
	providerSub := hub.Subscribe(notifier.Filter{ProviderID: &provider})
	defer providerSub.Close()
	bookingSub := hub.Subscribe(notifier.Filter{BookingID: &pending.ID})
	defer bookingSub.Close()

	feed := &fakeFeed{sessions: []feedSession{{payloads: []string{
		requestPayload(t, offer),
		bookingPayload(t, pending),
	}}}}
	startListener(t, feed, source, hub)

	t.Run("offer reaches only the offered provider", func(t *testing.T) {
		e := nextEvent(t, providerSub, time.Second)
		assert.Equal(t, notifier.KindRequest, e.Kind)
		assert.Equal(t, "INSERT", e.Op)
		require.NotNil(t, e.Request)
		assert.Equal(t, offer.ID, e.Request.ID)
		assert.Nil(t, e.Booking)
		assert.Equal(t, uuid.Nil, e.CustomerID)
	})

	t.Run("customer sees the booking and never the offer", func(t *testing.T) {
		e := nextEvent(t, customerSub, time.Second)
		assert.Equal(t, notifier.KindBooking, e.Kind)
		require.NotNil(t, e.Booking)
		assert.Equal(t, pending.ID, e.Booking.ID)
		assert.Nil(t, e.Request)
	})

	t.Run("booking filter sees both in commit order", func(t *testing.T) {
		assert.Equal(t, notifier.KindRequest, nextEvent(t, bookingSub, time.Second).Kind)
		assert.Equal(t, notifier.KindBooking, nextEvent(t, bookingSub, time.Second).Kind)
	})
}

func TestListener_AssignedBookingReachesProvider(t *testing.T) {
	source := newFakeSource()
	customer, provider := uuid.New(), uuid.New()
	confirmed := source.addBooking(customer, &provider)
	confirmed.Status = "CONFIRMED"

	hub := notifier.NewHub(8)
	providerSub := hub.Subscribe(notifier.Filter{ProviderID: &provider})
	defer providerSub.Close()

	startListener(t, &fakeFeed{sessions: []feedSession{{payloads: []string{bookingPayload(t, confirmed)}}}}, source, hub)

	e := nextEvent(t, providerSub, time.Second)
	assert.Equal(t, notifier.KindBooking, e.Kind)
	assert.Equal(t, "CONFIRMED", e.Booking.Status)
	assert.Equal(t, &provider, e.ProviderID)
}

func TestListener_RefetchFailures(t *testing.T) {
	source := newFakeSource()
	customer, provider := uuid.New(), uuid.New()
	gone := source.addBooking(customer, nil)
	delete(source.bookings, gone.ID)
	broken := source.addBooking(customer, nil)
	source.failures[broken.ID] = infra.WrapRepoErr("failed to get booking", errors.New("pool exhausted"))
	brokenOffer := source.addRequest(broken.ID, provider)
	healthy := source.addBooking(customer, nil)

	hub := notifier.NewHub(8)
	customerSub := hub.Subscribe(notifier.Filter{CustomerID: &customer})
	defer customerSub.Close()
	providerSub := hub.Subscribe(notifier.Filter{ProviderID: &provider})
	defer providerSub.Close()

	feed := &fakeFeed{sessions: []feedSession{{payloads: []string{
		"{not json",
		bookingPayload(t, gone),
		bookingPayload(t, broken),
		requestPayload(t, brokenOffer),
		bookingPayload(t, healthy),
	}}}}
	startListener(t, feed, source, hub)

	t.Run("customer gets a resync for its booking only", func(t *testing.T) {
		e := nextEvent(t, customerSub, time.Second)
		assert.Equal(t, notifier.KindResync, e.Kind)
		assert.Equal(t, broken.ID, e.BookingID)

		e = nextEvent(t, customerSub, time.Second)
		assert.Equal(t, notifier.KindBooking, e.Kind, "the failed offer refetch is not routed to the customer")
		assert.Equal(t, healthy.ID, e.BookingID)
	})

	t.Run("provider gets a resync for the failed offer", func(t *testing.T) {
		e := nextEvent(t, providerSub, time.Second)
		assert.Equal(t, notifier.KindResync, e.Kind)
		assert.Equal(t, broken.ID, e.BookingID)
		assert.Nil(t, e.Request)
	})
}

func TestListener_ReconnectSendsResync(t *testing.T) {
	source := newFakeSource()
	customer := uuid.New()
	before := source.addBooking(customer, nil)
	after := source.addBooking(customer, nil)

	hub := notifier.NewHub(8)
	sub := hub.Subscribe(notifier.Filter{CustomerID: &customer})
	defer sub.Close()

	feed := &fakeFeed{sessions: []feedSession{
		{payloads: []string{bookingPayload(t, before)}, drop: errors.New("connection reset by peer")},
		{payloads: []string{bookingPayload(t, after)}},
	}}
	startListener(t, feed, source, hub)

	assert.Equal(t, before.ID, nextEvent(t, sub, time.Second).BookingID)
	// the first retry waits one backoff step
	assert.Equal(t, notifier.KindResync, nextEvent(t, sub, 3*time.Second).Kind)
	assert.Equal(t, after.ID, nextEvent(t, sub, time.Second).BookingID)
	assert.Equal(t, 2, feed.Opened())
}

func TestListener_StopEndsSession(t *testing.T) {
	feed := &fakeFeed{}
	l := notifier.NewListener(feed, newFakeSource(), notifier.NewHub(1), slog.New(slog.NewTextHandler(io.Discard, nil)))
	l.Start()
	require.Eventually(t, func() bool { return feed.Opened() == 1 }, time.Second, 10*time.Millisecond)

	stopped := make(chan struct{})
	go func() {
		l.Stop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("listener did not stop")
	}
	assert.Equal(t, 1, feed.Opened(), "a cancelled session is not reopened")
}
