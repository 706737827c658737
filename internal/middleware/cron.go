package middleware

import (
	"crypto/subtle"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// PlatformSignatureHeader is set by the hosting platform's scheduler when it
// invokes the cleanup endpoint.
const PlatformSignatureHeader = "X-Platform-Signature"

// CronAuth protects scheduled maintenance endpoints: either the platform
// signature header is present, or the caller supplies the shared secret as a
// bearer token.
func CronAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader(PlatformSignatureHeader) != "" {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		bearer := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if secret != "" && bearer != "" &&
			subtle.ConstantTimeCompare([]byte(bearer), []byte(secret)) == 1 {
			c.Next()
			return
		}

		log.Printf("cron_auth rejected client_ip=%s", c.ClientIP())
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	}
}
