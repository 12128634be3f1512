package middleware

import (
	"net/http"

	"dormhub/models"
	"dormhub/utils"

	"github.com/gin-gonic/gin"
)

// AdminOnlyMiddleware gates back-office endpoints on the role string of
// the authenticated session. Must run after FirebaseAuthMiddleware.
func AdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := utils.GetSession(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		if session.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}
