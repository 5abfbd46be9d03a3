package identity

import (
	"net/http"
	"strings"

	"github.com/beka-birhanu/vinom-pathfinder/service"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// ContextOperatorClaims is the key used to store operator claims in the Gin context.
	ContextOperatorClaims = "operatorClaims"
)

// Authorize rejects requests without a valid bearer token and stores the token claims on the context.
func Authorize(ts i.Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Retrieve the access token from the Authorization header.
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatus(http.StatusUnauthorized) // No token found in the header.
			return
		}

		// Split the "Bearer" prefix from the token.
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatus(http.StatusUnauthorized) // Malformed Authorization header.
			return
		}

		claims, err := ts.Decode(parts[1])
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		// Tokens without a usable operator are as good as none.
		if _, err := operatorIDFromClaims(claims); err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set(ContextOperatorClaims, claims)
		c.Next()
	}
}

// OperatorID returns the authenticated operator's ID stored by Authorize.
func OperatorID(c *gin.Context) (uuid.UUID, bool) {
	value, ok := c.Get(ContextOperatorClaims)
	if !ok {
		return uuid.Nil, false
	}
	claims, ok := value.(map[string]interface{})
	if !ok {
		return uuid.Nil, false
	}

	id, err := operatorIDFromClaims(claims)
	return id, err == nil
}

func operatorIDFromClaims(claims map[string]interface{}) (uuid.UUID, error) {
	raw, _ := claims[service.ClaimOperatorID].(string)
	return uuid.Parse(raw)
}
