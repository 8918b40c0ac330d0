package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/session"
)

// RequireAdmin corta la petición con 403 si la sesión no pasó el login
func RequireAdmin(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !sessions.IsAdmin(SessionID(c)) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}
