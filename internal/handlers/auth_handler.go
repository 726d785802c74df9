package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/stayvista-api/internal/middleware"
	"github.com/sirupsen/logrus"
)

type tokenRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

// IssueToken signs a session token for the posted identity and stores it
// in the auth cookie.
func (h *Handler) IssueToken(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.Tokens.GenerateJWT(req.Email, req.Name)
	if err != nil {
		h.Logger.WithFields(logrus.Fields{"path": "handlers/jwt"}).Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	h.setTokenCookie(c, token, int(h.Tokens.TTL().Seconds()))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) Logout(c *gin.Context) {
	h.setTokenCookie(c, "", -1)
	h.Logger.WithFields(logrus.Fields{"path": "handlers/logout"}).Debug("Logout successful")
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) setTokenCookie(c *gin.Context, value string, maxAge int) {
	if h.Production {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteStrictMode)
	}
	c.SetCookie(middleware.TokenCookie, value, maxAge, "/", "", h.Production, true)
}
