package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"

	"go-peerrank-backend/internal/delivery/http/response"
	"go-peerrank-backend/internal/domain"
	"go-peerrank-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

const AdminKeyHeader = "X-Admin-Key"

// AdminKeyMiddleware guards operator routes with a shared key. An empty
// configured key disables the routes entirely.
func AdminKeyMiddleware(adminKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader(AdminKeyHeader)
		if adminKey == "" || provided == "" ||
			subtle.ConstantTimeCompare([]byte(provided), []byte(adminKey)) != 1 {
			logger.Log.Warn("Admin key rejected",
				"ip", c.ClientIP(),
				"path", c.FullPath(),
				"request_id", c.GetString(string(domain.KeyRequestID)),
			)
			response.Error(c, http.StatusUnauthorized, "Admin key required", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyAdmin), true)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), domain.KeyAdmin, true))
		c.Next()
	}
}
