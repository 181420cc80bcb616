package api

import (
	"log/slog"
	"net/http"

	"home-dispatch/internal/handler/httperr"
	"home-dispatch/internal/pkg/errs"
	"home-dispatch/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// Order matters: the first match wins, so specific sentinels precede the
// broad ErrDomainValidation mark they may also carry.
var errorTable = []errorMapping{
	{errs.ErrNoCandidates, http.StatusUnprocessableEntity, "No candidate providers available"},
	{errs.ErrAlreadyClaimed, http.StatusConflict, "Booking already claimed by another provider"},
	{errs.ErrBookingNoLongerAvailable, http.StatusConflict, "Booking no longer available"},
	{errs.ErrConcurrentModification, http.StatusConflict, "Booking was modified concurrently"},
	{errs.ErrInvalidTransition, http.StatusConflict, "Invalid status transition"},
	{errs.ErrAlreadyReviewed, http.StatusConflict, "Booking already reviewed"},
	{errs.ErrNotReviewable, http.StatusConflict, "Only completed bookings can be reviewed"},
	{errs.ErrIdempotencyConflict, http.StatusConflict, "Idempotency key reused with a different request"},
	{errs.ErrIdempotencyInProgress, http.StatusConflict, "Request with this idempotency key is still in progress"},
	{errs.ErrRequestNotFound, http.StatusNotFound, "Booking request not found"},
	{errs.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{errs.ErrReviewNotFound, http.StatusNotFound, "Review not found"},
	{errs.ErrOtpLocked, http.StatusLocked, "OTP locked after too many failed attempts"},
	{errs.ErrInvalidOtp, http.StatusBadRequest, "Invalid OTP"},
	{errs.ErrForbidden, http.StatusForbidden, "Forbidden"},
	{errs.ErrIdempotencyKeyRequired, http.StatusBadRequest, "Valid Idempotency-Key header required"},
	{queries.ErrInvalidCursor, http.StatusBadRequest, "Invalid cursor"},
	{errs.ErrDomainValidation, http.StatusBadRequest, "Validation failed"},
	{errs.ErrStoreUnavailable, http.StatusServiceUnavailable, "Service temporarily unavailable"},
}

// statusFor resolves err to an HTTP status and public message.
func statusFor(err error) (int, string) {
	for _, m := range errorTable {
		if errs.Is(err, m.target) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

// abortWithDomainError writes the error envelope for a usecase failure.
func abortWithDomainError(c *gin.Context, err error) {
	status, msg := statusFor(err)
	var detail any
	if status == http.StatusBadRequest && errs.Is(err, errs.ErrDomainValidation) {
		detail = gin.H{"reason": err.Error()}
	}
	if status >= http.StatusInternalServerError {
		slog.Error("request failed",
			"path", c.FullPath(),
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 12))
	}
	httperr.AbortWithError(c, status, err, msg, detail)
}

func abortBadRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
}

var errUnauthenticated = errs.New("missing authenticated actor")

func abortUnauthenticated(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
}
