package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/stayvista-api/internal/services"
	"github.com/sirupsen/logrus"
)

// RequireRole must run after VerifyToken. It loads the caller's stored
// user and compares its role with role.
func RequireRole(role string, users services.UserService, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := CurrentEmail(c)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access!"})
			return
		}

		user, err := users.FindByEmail(c.Request.Context(), email)
		if err != nil {
			logger.WithFields(logrus.Fields{"path": c.FullPath(), "email": email}).Error(err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify user role"})
			return
		}
		if user == nil || user.Role != role {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access!"})
			return
		}

		c.Next()
	}
}
