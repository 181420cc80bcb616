package cookie

import (
	"github.com/gin-gonic/gin"
)

// AccessTokenCookieName lets browser EventSource clients, which cannot set
// an Authorization header, authenticate stream requests.
const AccessTokenCookieName = "access_token"

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}
