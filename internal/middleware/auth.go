package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/stayvista-api/internal/utils"
	"github.com/sirupsen/logrus"
)

const (
	TokenCookie = "token"

	ContextEmail = "userEmail"
	ContextName  = "userName"
)

// VerifyToken rejects requests without a valid token cookie and puts the
// caller's identity on the context for the next handlers.
func VerifyToken(tokens *utils.TokenManager, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(TokenCookie)
		if err != nil || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}

		claims, err := tokens.ValidateJWT(tokenString)
		if err != nil {
			logger.WithFields(logrus.Fields{"path": c.FullPath()}).Debugf("token rejected: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}

		c.Set(ContextEmail, claims.Email)
		c.Set(ContextName, claims.Name)

		c.Next()
	}
}

// CurrentEmail returns the email VerifyToken stored on the context.
func CurrentEmail(c *gin.Context) string {
	return c.GetString(ContextEmail)
}
