package errs

// Sentinel errors shared by the dispatch and lifecycle layers.
var (
	// Dispatch
	ErrNoCandidates             = New("no candidate providers for booking")
	ErrAlreadyClaimed           = New("booking already claimed by another provider")
	ErrRequestNotFound          = New("booking request not found or no longer pending")
	ErrBookingNoLongerAvailable = New("booking no longer available")

	// Lifecycle
	ErrBookingNotFound        = New("booking not found")
	ErrInvalidTransition      = New("invalid booking status transition")
	ErrConcurrentModification = New("booking was modified concurrently")
	ErrForbidden              = New("actor is not allowed to act on this booking")

	// OTP
	ErrInvalidOtp = New("invalid otp")
	ErrOtpLocked  = New("otp locked after too many failed attempts")

	// Reviews
	ErrNotReviewable   = New("booking is not eligible for review")
	ErrAlreadyReviewed = New("booking already reviewed")
	ErrReviewNotFound  = New("review not found")

	// Idempotency
	ErrIdempotencyKeyRequired = New("idempotency key required")
	ErrIdempotencyInProgress  = New("idempotent request still in progress")
	ErrIdempotencyConflict    = New("idempotency key reused with a different request")

	// Validation
	ErrDomainValidation = New("domain validation error")

	// Transport and store failures; safe to retry with backoff.
	ErrStoreUnavailable = New("store unavailable")
)
