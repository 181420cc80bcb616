package api

import (
	"strconv"

	"home-dispatch/internal/domain/user"
	"home-dispatch/internal/handler/middleware"
	"home-dispatch/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const idempotencyKeyHeader = "Idempotency-Key"

// actorOrAbort returns the authenticated caller, writing a 401 when absent.
func actorOrAbort(c *gin.Context) (user.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortUnauthenticated(c)
		return user.Actor{}, false
	}
	return actor, true
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		abortBadRequest(c, err, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

func queryLimit(c *gin.Context) int {
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			return iv
		}
	}
	return 0
}

// idempotencyKey reads the optional Idempotency-Key header; a malformed key is rejected.
func idempotencyKey(c *gin.Context) (*uuid.UUID, error) {
	raw := c.GetHeader(idempotencyKeyHeader)
	if raw == "" {
		return nil, nil
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "idempotency key must be a UUID"), errs.ErrIdempotencyKeyRequired)
	}
	return &key, nil
}
