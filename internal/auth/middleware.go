package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	bearerPrefix = "Bearer "

	contextKeyUserID = "user_id"
	contextKeyClaims = "claims"
)

// UserIDFromContext returns the current user ID set by RequireToken.
// Empty if not set.
func UserIDFromContext(c *gin.Context) string {
	v, ok := c.Get(contextKeyUserID)
	if !ok {
		return ""
	}
	id, _ := v.(string)
	return id
}

// ClaimsFromContext returns the verified claims set by RequireToken, or nil.
func ClaimsFromContext(c *gin.Context) *Claims {
	v, ok := c.Get(contextKeyClaims)
	if !ok {
		return nil
	}
	claims, _ := v.(*Claims)
	return claims
}

// RequireToken verifies the Authorization header and puts the caller's
// identity into the request context. The contract distinguishes failure
// kinds: no credential at all is 401, a supplied but bad one is 403.
func RequireToken(tokens *TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if strings.TrimSpace(header) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		raw, found := strings.CutPrefix(header, bearerPrefix)
		if !found {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid or expired token"})
			return
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		claims, err := tokens.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid or expired token"})
			return
		}
		c.Set(contextKeyUserID, claims.UserID)
		c.Set(contextKeyClaims, claims)
		c.Next()
	}
}
