package middleware

import "github.com/gin-gonic/gin"

const (
	userIDHeader  = "X-User-ID"
	userIDKey     = "userID"
	defaultUserID = "system"
)

// UserIdentityMiddleware resolves the acting user from the X-User-ID header.
// Identity is asserted by the upstream gateway; absent a header the caller is
// recorded as "system".
func UserIdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(userIDHeader)
		if userID == "" {
			userID = defaultUserID
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// GetUserIDFromContext returns the acting user ID resolved by
// UserIdentityMiddleware.
func GetUserIDFromContext(c *gin.Context) string {
	if userID, ok := c.Get(userIDKey); ok {
		if s, ok := userID.(string); ok && s != "" {
			return s
		}
	}
	return defaultUserID
}
