package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// UserIDHeader carries the caller's identity on every user-scoped request
	UserIDHeader = "X-User-ID"

	userIDKey = "user_id"
)

// RequireUser reads the caller's user ID from the X-User-ID header (or the
// user_id query parameter, for WebSocket clients that cannot set headers)
// and stores it in the context. Requests without a valid UUID are rejected.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(UserIDHeader))
		if raw == "" {
			raw = strings.TrimSpace(c.Query("user_id"))
		}
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing user id"})
			return
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
			return
		}

		c.Set(userIDKey, id.String())
		c.Next()
	}
}

// GetUserID returns the identity set by RequireUser, or "" outside it
func GetUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
