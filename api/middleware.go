package api

import (
	"net/http"
	"strings"

	"github.com/Domenick1991/travelgo/internal/auth"
	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// TokenVerifier validates a raw bearer token and resolves its claims.
type TokenVerifier interface {
	Verify(raw string) (*auth.Claims, error)
}

// AuthRequired rejects requests without a bearer token (401) or with a token
// that fails verification (403), and attaches the resolved claims otherwise.
func AuthRequired(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "authorization required"})
			return
		}

		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "authorization required"})
			return
		}

		claims, err := tokens.Verify(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "invalid or expired token"})
			return
		}

		c.Set(identityKey, claims)
		c.Next()
	}
}

func identityFrom(c *gin.Context) (*auth.Claims, bool) {
	val, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	claims, ok := val.(*auth.Claims)
	return claims, ok
}
