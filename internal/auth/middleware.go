package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextEmailKey is where the middleware stores the caller's email.
// Handlers below this layer never look at it: the core services are
// identity-agnostic and the capability check happens here, at the boundary.
const ContextEmailKey = "auth_email"

// RequireSession rejects requests without a valid Bearer session token.
func RequireSession(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		claims, err := ParseSessionToken(secret, raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid session: " + err.Error()})
			return
		}
		c.Set(ContextEmailKey, claims.Email)
		c.Next()
	}
}
