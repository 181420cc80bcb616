package queries

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"home-dispatch/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
	CursorVersionV1  = "v1"
)

var ErrInvalidCursor = errs.Mark(errs.New("invalid cursor"), errs.ErrDomainValidation)

type Cursor struct {
	After string `json:"after,omitempty"`
}

// CursorKey is the decoded (created_at, id) keyset position.
type CursorKey struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// Uses microsecond precision to align with PostgreSQL timestamp precision
func EncodeAfterCursor(t time.Time, id uuid.UUID) string {
	raw := CursorVersionV1 + ":" + strconv.FormatInt(t.UnixMicro(), 10) + "-" + id.String()
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func DecodeAfterCursor(cursor string) (*CursorKey, error) {
	if cursor == "" {
		return nil, ErrInvalidCursor
	}
	decoded, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "cursor is not base64url"), ErrInvalidCursor)
	}
	payload, ok := strings.CutPrefix(string(decoded), CursorVersionV1+":")
	if !ok {
		return nil, errs.Mark(errs.New("unknown cursor version"), ErrInvalidCursor)
	}

	micros, rawID, ok := strings.Cut(payload, "-")
	if !ok {
		return nil, errs.Mark(errs.New("expected '<micros>-<uuid>'"), ErrInvalidCursor)
	}
	ts, err := strconv.ParseInt(micros, 10, 64)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "invalid cursor timestamp"), ErrInvalidCursor)
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "invalid cursor id"), ErrInvalidCursor)
	}
	return &CursorKey{CreatedAt: time.UnixMicro(ts).UTC(), ID: id}, nil
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
