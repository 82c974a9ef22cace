package middlewares

import (
	"net/http"
	"strings"

	"github.com/chirpmux/chirpmux/model"
	"github.com/chirpmux/chirpmux/service"
	"github.com/gin-gonic/gin"
)

const (
	// ErrorTokenAuthFail is the machine-readable code attached to every 401
	// produced by the auth middleware.
	ErrorTokenAuthFail = 1001

	tokenPrefix  = "Token "
	principalKey = "principal"
)

// TokenAuth resolves the request credential to a principal and stamps it into
// the gin context. It looks for "Authorization: Token <key>" first and falls
// back to a "token" query parameter. Requests without a valid token are
// aborted with 401 before reaching any handler.
func TokenAuth(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := ""
		if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, tokenPrefix) {
			key = strings.TrimPrefix(auth, tokenPrefix)
		}
		if key == "" {
			key = c.Query("token")
		}

		if key == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code": ErrorTokenAuthFail,
				"msg":  "empty auth token",
			})
			return
		}

		user, err := svc.ResolveToken(key)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code": ErrorTokenAuthFail,
				"msg":  err.Error(),
			})
			return
		}

		c.Set(principalKey, user)
		c.Next()
	}
}

// Principal returns the authenticated user stamped by TokenAuth. It must only
// be called from handlers behind the middleware.
func Principal(c *gin.Context) *model.User {
	return c.MustGet(principalKey).(*model.User)
}
