package api

import (
	"net/http"

	reqdto "home-dispatch/internal/handler/dto/request"
	"home-dispatch/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type LifecycleHandler struct {
	lifecycle commands.LifecycleCommands
	otp       commands.OtpCommands
}

func NewLifecycleHandler(lifecycle commands.LifecycleCommands, otp commands.OtpCommands) *LifecycleHandler {
	return &LifecycleHandler{lifecycle: lifecycle, otp: otp}
}

// @Summary Transition booking status
// @Description Move a booking along its lifecycle. IN_PROGRESS requires the customer's OTP.
// @Tags lifecycle
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.TransitionRequest true "Transition request"
// @Success 200 {object} queries.BookingView
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 423 {object} map[string]string
// @Router /bookings/{id}/status [post]
func (h *LifecycleHandler) Transition(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	cmd, err := req.ToCommand(id, actor)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	view, err := h.lifecycle.Transition(c.Request.Context(), cmd)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Get booking OTP
// @Description Disclose the active start code to the customer, issuing one if none exists
// @Tags lifecycle
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} commands.OtpResult
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/otp [get]
func (h *LifecycleHandler) GetOtp(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	res, err := h.otp.Get(c.Request.Context(), id, actor)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, res)
}

// @Summary Reissue booking OTP
// @Description Replace any unconsumed code with a fresh one; also clears an attempt lock
// @Tags lifecycle
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 201 {object} commands.OtpResult
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/otp [post]
func (h *LifecycleHandler) IssueOtp(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	res, err := h.otp.Issue(c.Request.Context(), id, actor)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusCreated, res)
}
