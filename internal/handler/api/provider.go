package api

import (
	"net/http"

	reqdto "home-dispatch/internal/handler/dto/request"
	resdto "home-dispatch/internal/handler/dto/response"
	"home-dispatch/internal/usecase/commands"
	"home-dispatch/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProviderHandler struct {
	availability commands.AvailabilityCommands
	location     commands.LocationCommands
	q            queries.BookingQueries
}

func NewProviderHandler(availability commands.AvailabilityCommands, location commands.LocationCommands, q queries.BookingQueries) *ProviderHandler {
	return &ProviderHandler{availability: availability, location: location, q: q}
}

// @Summary Go online
// @Description Publish the provider's position and service categories for candidate selection
// @Tags providers
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.AvailabilityRequest true "Availability"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /providers/me/availability [put]
func (h *ProviderHandler) SetAvailability(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	if err := h.availability.GoOnline(c.Request.Context(), actor, req.ToCommand()); err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Go offline
// @Description Remove the provider from candidate selection
// @Tags providers
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 503 {object} map[string]string
// @Router /providers/me/availability [delete]
func (h *ProviderHandler) ClearAvailability(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	if err := h.availability.GoOffline(c.Request.Context(), actor); err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Pending offers
// @Description List PENDING booking requests offered to the calling provider
// @Tags providers
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20, max 100)"
// @Success 200 {object} resdto.OfferListResponse
// @Router /providers/me/requests [get]
func (h *ProviderHandler) Offers(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	offers, err := h.q.ListPendingOffers(c.Request.Context(), actor, queryLimit(c))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOfferList(offers))
}

// @Summary Report location
// @Description Share the assigned provider's live position with the booking's stream subscribers
// @Tags providers
// @Accept json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.LocationRequest true "Position"
// @Success 202 "Accepted"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/location [post]
func (h *ProviderHandler) ReportLocation(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	if err := h.location.ReportLocation(c.Request.Context(), id, actor, *req.Latitude, *req.Longitude); err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}
