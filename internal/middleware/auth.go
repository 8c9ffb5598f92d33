package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"dancedir/internal/pkg/jwt"
	"dancedir/internal/pkg/response"
)

// TokenBlocklist reports whether a token jti has been revoked.
type TokenBlocklist interface {
	IsTokenBlocked(ctx context.Context, jti string) (bool, error)
}

// Auth validates the bearer token and rejects blocklisted jtis. The user id
// and type land in the gin context.
func Auth(jwtSvc *jwt.Service, blocklist TokenBlocklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			response.Message(c, http.StatusUnauthorized, "missing or invalid Authorization header")
			c.Abort()
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		claims, err := jwtSvc.ValidateToken(tokenStr)
		if err != nil {
			response.Message(c, http.StatusUnauthorized, "invalid token")
			c.Abort()
			return
		}

		blocked, err := blocklist.IsTokenBlocked(c.Request.Context(), claims.ID)
		if err != nil || blocked {
			response.Message(c, http.StatusUnauthorized, "invalid token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_type", claims.UserType)

		c.Next()
	}
}
