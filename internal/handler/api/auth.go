package api

import (
	"net/http"

	resdto "home-dispatch/internal/handler/dto/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes the caller identity carried by the bearer token.
// Tokens are minted by the identity service.
type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// @Summary Get current user
// @Description Get the user id and role of the authenticated caller
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.MeResponse
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resdto.FromActor(actor))
}
