package otp

import (
	"crypto/rand"
	"crypto/subtle"
	"math/big"
	"time"

	"github.com/google/uuid"
)

const CodeLength = 6

// Challenge is the shared secret that gates the start of service.
type Challenge struct {
	bookingID      uuid.UUID
	code           string
	createdAt      time.Time
	failedAttempts int32
	consumedAt     *time.Time
}

func NewChallenge(bookingID uuid.UUID, code string, now time.Time) *Challenge {
	return &Challenge{
		bookingID: bookingID,
		code:      code,
		createdAt: now,
	}
}

func ReconstructChallenge(bookingID uuid.UUID, code string, createdAt time.Time, failedAttempts int32, consumedAt *time.Time) *Challenge {
	return &Challenge{
		bookingID:      bookingID,
		code:           code,
		createdAt:      createdAt,
		failedAttempts: failedAttempts,
		consumedAt:     consumedAt,
	}
}

func (c *Challenge) BookingID() uuid.UUID   { return c.bookingID }
func (c *Challenge) Code() string           { return c.code }
func (c *Challenge) CreatedAt() time.Time   { return c.createdAt }
func (c *Challenge) FailedAttempts() int32  { return c.failedAttempts }
func (c *Challenge) ConsumedAt() *time.Time { return c.consumedAt }
func (c *Challenge) IsConsumed() bool       { return c.consumedAt != nil }

// IsLocked reports whether maxAttempts failures have been recorded. A
// non-positive maxAttempts disables locking.
func (c *Challenge) IsLocked(maxAttempts int) bool {
	return maxAttempts > 0 && int(c.failedAttempts) >= maxAttempts
}

// Matches is an exact, constant-time comparison.
func (c *Challenge) Matches(code string) bool {
	return subtle.ConstantTimeCompare([]byte(c.code), []byte(code)) == 1
}

// Generator produces codes; tests substitute a fixed one.
type Generator interface {
	Generate() (string, error)
}

type RandomGenerator struct{}

func NewRandomGenerator() Generator {
	return RandomGenerator{}
}

func (RandomGenerator) Generate() (string, error) {
	buf := make([]byte, CodeLength)
	ten := big.NewInt(10)
	for i := range buf {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", err
		}
		buf[i] = byte('0' + n.Int64())
	}
	return string(buf), nil
}
