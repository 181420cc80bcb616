package notifier

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"home-dispatch/internal/infra"
	"home-dispatch/internal/pkg/errs"
	"home-dispatch/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	ChangeChannel = "booking_changes"

	tableBookings        = "bookings"
	tableBookingRequests = "booking_requests"

	reconnectBackoff    = time.Second
	maxReconnectBackoff = 30 * time.Second
)

// SnapshotSource refetches the row a notification points at.
type SnapshotSource interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error)
	RequestFor(ctx context.Context, bookingID, providerID uuid.UUID) (*queries.RequestView, error)
}

type changePayload struct {
	Table      string     `json:"table"`
	Op         string     `json:"op"`
	ID         uuid.UUID  `json:"id"`
	BookingID  uuid.UUID  `json:"booking_id"`
	CustomerID uuid.UUID  `json:"customer_id"`
	ProviderID *uuid.UUID `json:"provider_id"`
}

// Feed is one change-notification session. Listen calls ready once the
// session is live, then hands every payload to fn until ctx ends or the
// session drops.
type Feed interface {
	Listen(ctx context.Context, ready func(), fn func(payload string)) error
}

// PgFeed listens on ChangeChannel over a pooled connection.
type PgFeed struct {
	pool *pgxpool.Pool
}

func NewPgFeed(pool *pgxpool.Pool) *PgFeed {
	return &PgFeed{pool: pool}
}

func (f *PgFeed) Listen(ctx context.Context, ready func(), fn func(payload string)) error {
	conn, err := f.pool.Acquire(ctx)
	if err != nil {
		return errs.Wrap(err, "acquire listener connection")
	}
	defer conn.Release()

	if _, err = conn.Exec(ctx, "LISTEN "+ChangeChannel); err != nil {
		return errs.Wrap(err, "listen")
	}
	ready()

	for {
		n, werr := conn.Conn().WaitForNotification(ctx)
		if werr != nil {
			return errs.Wrap(werr, "wait for notification")
		}
		fn(n.Payload)
	}
}

// Listener turns change payloads into hub events.
type Listener struct {
	feed   Feed
	source SnapshotSource
	hub    *Hub
	logger *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewListener(feed Feed, source SnapshotSource, hub *Hub, logger *slog.Logger) *Listener {
	return &Listener{
		feed:   feed,
		source: source,
		hub:    hub,
		logger: logger.With("component", "change_listener"),
	}
}

func (l *Listener) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		l.run(ctx)
	}()
	l.logger.Info("change listener started", "channel", ChangeChannel)
}

func (l *Listener) Stop() {
	if l.cancel != nil {
		l.cancel()
	}
	l.wg.Wait()
	l.logger.Info("change listener stopped")
}

// run keeps a LISTEN session alive, reconnecting with backoff. Every
// reconnect is followed by a resync since notifications sent meanwhile are lost.
func (l *Listener) run(ctx context.Context) {
	backoff := reconnectBackoff
	first := true
	for ctx.Err() == nil {
		err := l.feed.Listen(ctx, func() {
			if !first {
				l.hub.ResyncAll()
			}
			first = false
			backoff = reconnectBackoff
		}, func(payload string) {
			l.handle(ctx, payload)
		})
		if ctx.Err() != nil {
			return
		}
		l.logger.Warn("change listener disconnected",
			"error", err.Error(),
			"retry_in", backoff.String())
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, maxReconnectBackoff)
	}
}

func (l *Listener) handle(ctx context.Context, raw string) {
	var p changePayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		l.logger.Warn("malformed change payload", "payload", raw, "error", err.Error())
		return
	}

	event, err := l.snapshot(ctx, p)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return
		}
		// subscribers can no longer trust their state for this booking
		l.logger.Warn("failed to refetch changed row",
			"table", p.Table,
			"booking_id", p.BookingID.String(),
			"error", err.Error())
		resync := ChangeEvent{Kind: KindResync, BookingID: p.BookingID, ProviderID: p.ProviderID}
		if p.Table == tableBookings {
			resync.CustomerID = p.CustomerID
		}
		l.hub.Publish(resync)
		return
	}
	l.hub.Publish(event)
}

func (l *Listener) snapshot(ctx context.Context, p changePayload) (ChangeEvent, error) {
	view, err := l.source.FindByID(ctx, p.BookingID)
	if err != nil {
		return ChangeEvent{}, err
	}
	e := ChangeEvent{
		Op:        p.Op,
		BookingID: p.BookingID,
		Booking:   view,
	}

	switch p.Table {
	case tableBookings:
		e.Kind = KindBooking
		e.CustomerID = view.CustomerID
		e.ProviderID = view.ProviderID
	case tableBookingRequests:
		if p.ProviderID == nil {
			return ChangeEvent{}, errs.New("request change without provider id")
		}
		req, rerr := l.source.RequestFor(ctx, p.BookingID, *p.ProviderID)
		if rerr != nil {
			return ChangeEvent{}, rerr
		}
		e.Kind = KindRequest
		e.Request = req
		// offers are private to the offered provider: no customer routing
		e.ProviderID = p.ProviderID
		e.Booking = nil
	default:
		return ChangeEvent{}, errs.Newf("unexpected table %q", p.Table)
	}
	return e, nil
}
