package api

import (
	"net/http"

	reqdto "home-dispatch/internal/handler/dto/request"
	resdto "home-dispatch/internal/handler/dto/response"
	"home-dispatch/internal/usecase/commands"
	"home-dispatch/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	uc commands.ReviewCommands
	q  queries.ReviewQueries
}

func NewReviewHandler(uc commands.ReviewCommands, q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{uc: uc, q: q}
}

// @Summary Review a booking
// @Description Rate the provider of a COMPLETED booking; one review per booking
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.ReviewRequest true "Review"
// @Success 201 {object} queries.ReviewView
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/review [post]
func (h *ReviewHandler) Submit(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	view, err := h.uc.SubmitReview(c.Request.Context(), id, actor, req.ToInput())
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Get a booking's review
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} queries.ReviewView
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/review [get]
func (h *ReviewHandler) Get(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByBooking(c.Request.Context(), actor, id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Provider stats
// @Description Completed jobs and rating aggregate of a provider
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path string true "Provider ID"
// @Success 200 {object} queries.ProviderStatsView
// @Router /providers/{id}/stats [get]
func (h *ReviewHandler) ProviderStats(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	stats, err := h.q.ProviderStats(c.Request.Context(), id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Provider reviews
// @Description Reviews of a provider, newest first
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path string true "Provider ID"
// @Param after query string false "Cursor for keyset pagination"
// @Param limit query int false "Max items (default 20, max 100)"
// @Success 200 {object} resdto.ReviewListResponse
// @Failure 400 {object} map[string]string
// @Router /providers/{id}/reviews [get]
func (h *ReviewHandler) ProviderReviews(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	items, next, err := h.q.ListByProvider(c.Request.Context(), id, cursor, queryLimit(c))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewList(items, next))
}
