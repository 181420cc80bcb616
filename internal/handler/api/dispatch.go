package api

import (
	"net/http"

	reqdto "home-dispatch/internal/handler/dto/request"
	resdto "home-dispatch/internal/handler/dto/response"
	"home-dispatch/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type DispatchHandler struct {
	dispatch commands.DispatchCommands
}

func NewDispatchHandler(dispatch commands.DispatchCommands) *DispatchHandler {
	return &DispatchHandler{dispatch: dispatch}
}

// @Summary Accept booking
// @Description Claim a booking offered to the calling provider. Exactly one concurrent accept wins.
// @Tags dispatch
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} queries.BookingView
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/accept [post]
func (h *DispatchHandler) Accept(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.dispatch.AcceptBooking(c.Request.Context(), id, actor.ID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Reject booking
// @Description Decline a booking offered to the calling provider. Repeated calls are no-ops.
// @Tags dispatch
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/reject [post]
func (h *DispatchHandler) Reject(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.dispatch.RejectBooking(c.Request.Context(), id, actor.ID); err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Dispatch booking
// @Description Offer a PENDING booking to fresh candidates from the availability index
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 201 {object} resdto.RequestListResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/bookings/{id}/dispatch [post]
func (h *DispatchHandler) Dispatch(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	reqs, err := h.dispatch.Dispatch(c.Request.Context(), id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRequestList(reqs))
}

// @Summary Broadcast booking
// @Description Offer a PENDING booking to an explicit set of providers
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.BroadcastRequest true "Providers to offer"
// @Success 201 {object} resdto.RequestListResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/bookings/{id}/broadcast [post]
func (h *DispatchHandler) Broadcast(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.BroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	reqs, err := h.dispatch.Broadcast(c.Request.Context(), id, req.ProviderIDs)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRequestList(reqs))
}

// @Summary Sweep expired requests
// @Description Run one expiry and re-broadcast pass immediately
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} commands.SweepResult
// @Failure 503 {object} map[string]string
// @Router /admin/dispatch/sweep [post]
func (h *DispatchHandler) Sweep(c *gin.Context) {
	res, err := h.dispatch.SweepExpired(c.Request.Context())
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
