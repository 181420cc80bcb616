//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"home-dispatch/internal/domain/user"
	"home-dispatch/internal/pkg/config"
	"home-dispatch/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Duration)
	token, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, time.Millisecond)
	token, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}

// Actor is a fresh identity with a signed token.
type Actor struct {
	Actor user.Actor
	Token string
}

func (h *JWTHelper) NewActor(t *testing.T, role user.Role) Actor {
	t.Helper()
	a := user.Actor{ID: uuid.New(), Role: role}
	return Actor{Actor: a, Token: h.GenerateToken(t, a.ID, role)}
}
