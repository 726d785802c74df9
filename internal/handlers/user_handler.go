package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/stayvista-api/internal/models"
	"github.com/harentsoaR/stayvista-api/internal/services"
)

// SaveUser is called on every login. New users are inserted, a returning
// user asking to become a host only gets the status changed, anyone else
// gets their stored record back.
func (h *Handler) SaveUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()

	existing, err := h.Users.FindByEmail(ctx, user.Email)
	if err != nil {
		h.storeError(c, err, "Failed to load user")
		return
	}

	if existing != nil {
		if user.Status == models.StatusRequested {
			result, err := h.Users.UpdateStatus(ctx, user.Email, user.Status)
			if err != nil {
				h.storeError(c, err, "Failed to update user status")
				return
			}
			c.JSON(http.StatusOK, result)
			return
		}
		c.JSON(http.StatusOK, existing)
		return
	}

	if user.Role == "" {
		user.Role = models.RoleGuest
	}
	if user.Status == "" {
		user.Status = models.StatusVerified
	}
	result, err := h.Users.Upsert(ctx, &user)
	if errors.Is(err, services.ErrUserExists) {
		// another login for the same email inserted first
		existing, err = h.Users.FindByEmail(ctx, user.Email)
		if err != nil {
			h.storeError(c, err, "Failed to load user")
			return
		}
		c.JSON(http.StatusOK, existing)
		return
	}
	if err != nil {
		h.storeError(c, err, "Failed to save user")
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetUser answers with the stored user or null.
func (h *Handler) GetUser(c *gin.Context) {
	email, ok := bindEmail(c)
	if !ok {
		return
	}
	user, err := h.Users.FindByEmail(c.Request.Context(), email)
	if err != nil {
		h.storeError(c, err, "Failed to load user")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) UpdateUser(c *gin.Context) {
	email, ok := bindEmail(c)
	if !ok {
		return
	}
	var req models.UserUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Users.Update(c.Request.Context(), email, req)
	if err != nil {
		h.storeError(c, err, "Failed to update user")
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetUsers lists every user. Admin only.
func (h *Handler) GetUsers(c *gin.Context) {
	users, err := h.Users.FindAll(c.Request.Context())
	if err != nil {
		h.storeError(c, err, "Failed to retrieve users")
		return
	}
	c.JSON(http.StatusOK, users)
}
