package api

import (
	"io"
	"time"

	"home-dispatch/internal/domain/user"
	"home-dispatch/internal/infra/notifier"
	"home-dispatch/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const streamPingInterval = 25 * time.Second

type StreamHandler struct {
	hub *notifier.Hub
	q   queries.BookingQueries
}

func NewStreamHandler(hub *notifier.Hub, q queries.BookingQueries) *StreamHandler {
	return &StreamHandler{hub: hub, q: q}
}

// @Summary Stream booking changes
// @Description Server-sent events for one booking: status snapshots, request updates and live provider location. A "resync" event means events were dropped and the client must refetch.
// @Tags stream
// @Produce text/event-stream
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} notifier.ChangeEvent
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/events/stream [get]
func (h *StreamHandler) BookingStream(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	// GetByID applies the same visibility rules as the REST read
	detail, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	sub := h.hub.Subscribe(notifier.Filter{BookingID: &id})
	defer sub.Close()

	h.stream(c, sub, detail.BookingView, func(e notifier.ChangeEvent) bool {
		return visibleOnBookingStream(actor, e)
	})
}

// @Summary Stream my changes
// @Description Server-sent events for every booking of the caller: customers follow their bookings, providers their offers and assignments, admins everything
// @Tags stream
// @Produce text/event-stream
// @Security BearerAuth
// @Success 200 {object} notifier.ChangeEvent
// @Router /me/events/stream [get]
func (h *StreamHandler) MyStream(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	var f notifier.Filter
	switch actor.Role {
	case user.RoleCustomer:
		f.CustomerID = &actor.ID
	case user.RoleProvider:
		f.ProviderID = &actor.ID
	}
	sub := h.hub.Subscribe(f)
	defer sub.Close()

	h.stream(c, sub, nil, func(e notifier.ChangeEvent) bool {
		// customers follow bookings, never the offers sent out for them
		return e.Kind != notifier.KindRequest || !actor.IsCustomer()
	})
}

// stream writes an optional initial snapshot, then relays subscription events
// until the client goes away or the subscription closes.
func (h *StreamHandler) stream(c *gin.Context, sub *notifier.Subscription, initial *queries.BookingView, visible func(notifier.ChangeEvent) bool) {
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	if initial != nil {
		c.SSEvent(string(notifier.KindBooking), notifier.ChangeEvent{
			Kind:      notifier.KindBooking,
			Op:        "SNAPSHOT",
			BookingID: initial.ID,
			Booking:   initial,
		})
		c.Writer.Flush()
	}

	ping := time.NewTicker(streamPingInterval)
	defer ping.Stop()
	ctx := c.Request.Context()

	c.Stream(func(io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case <-ping.C:
			c.SSEvent("ping", gin.H{"at": time.Now().UTC()})
			return true
		case e, open := <-sub.Events():
			if !open {
				return false
			}
			if visible(e) {
				c.SSEvent(string(e.Kind), e)
			}
			return true
		}
	})
}

// visibleOnBookingStream keeps offers private to the offered provider and
// positions private from other providers.
func visibleOnBookingStream(actor user.Actor, e notifier.ChangeEvent) bool {
	ownEvent := e.ProviderID != nil && *e.ProviderID == actor.ID
	switch e.Kind {
	case notifier.KindRequest:
		return actor.IsAdmin() || (actor.IsProvider() && ownEvent)
	case notifier.KindLocation:
		return !actor.IsProvider() || ownEvent
	default:
		return true
	}
}
