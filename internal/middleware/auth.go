package middleware

import (
	"net/http"

	"taskboard/internal/modules/auth"
	"taskboard/internal/pkg/token"

	"github.com/gin-gonic/gin"
)

// RequireAuth guards API routes. It performs the edge check only (signature,
// expiry, claim shape) on the accessToken cookie; revocation state is never
// consulted here. Failures return 401 JSON for the client retry pipeline to
// act on.
func RequireAuth(verifier *token.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		accessToken, err := c.Cookie(auth.CookieAccessToken)
		if err != nil || accessToken == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		claims, err := verifier.VerifyAccess(accessToken)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)

		c.Next()
	}
}
