package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"swms/internal/service"
)

const userIDContextKey = "userID"

// RequireAuth returns middleware that rejects requests without a valid
// Bearer token and injects the authenticated user id into the context.
func RequireAuth(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization token required"})
			return
		}

		claims, err := authService.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(userIDContextKey, claims.UserID)
		c.Next()
	}
}

// OptionalAuth returns middleware that injects the user id when a valid
// token is present but never rejects the request. Used by routes serving
// both anonymous and signed-in users.
func OptionalAuth(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if claims, err := authService.ValidateToken(token); err == nil {
				c.Set(userIDContextKey, claims.UserID)
			}
		}
		c.Next()
	}
}

// UserIDFromContext returns the authenticated user id, or "" for an
// anonymous request.
func UserIDFromContext(c *gin.Context) string {
	return c.GetString(userIDContextKey)
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
