package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// WebhookSecret rejects webhook calls whose :secret path segment does not match.
// An empty secret disables the check.
func WebhookSecret(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}
		got := c.Param("secret")
		if subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
			GetLoggerFromCtx(c.Request.Context()).Warn("Webhook called with wrong secret")
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		c.Next()
	}
}
