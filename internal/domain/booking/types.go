package booking

import (
	"home-dispatch/internal/pkg/errs"
)

var ErrInvalidStatus = errs.Mark(errs.New("invalid booking status"), errs.ErrDomainValidation)

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusConfirmed  Status = "CONFIRMED"
	StatusEnRoute    Status = "EN_ROUTE"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusEnRoute, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// HasProvider reports whether a booking in this status must carry a provider.
// A booking cancelled before it was claimed has none, so CANCELLED is excluded.
func (s Status) HasProvider() bool {
	switch s {
	case StatusConfirmed, StatusEnRoute, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

// OtpEligible reports whether an OTP challenge may exist for a booking in this status.
func (s Status) OtpEligible() bool {
	return s == StatusConfirmed || s == StatusEnRoute
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentFailed   PaymentStatus = "FAILED"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

func (p PaymentStatus) String() string {
	return string(p)
}

func (p PaymentStatus) IsValid() bool {
	switch p {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		return true
	default:
		return false
	}
}
