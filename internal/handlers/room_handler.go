package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/stayvista-api/internal/models"
)

// GetRooms lists rooms, optionally filtered by ?category=. The web client
// sends the literal "null" when no category is selected.
func (h *Handler) GetRooms(c *gin.Context) {
	category := c.Query("category")
	if category == "null" {
		category = ""
	}

	rooms, err := h.Rooms.FindAll(c.Request.Context(), category)
	if err != nil {
		h.storeError(c, err, "Failed to retrieve rooms")
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetRoom answers with the room or null.
func (h *Handler) GetRoom(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	room, err := h.Rooms.FindByID(c.Request.Context(), id)
	if err != nil {
		h.storeError(c, err, "Failed to retrieve room")
		return
	}
	c.JSON(http.StatusOK, room)
}

func (h *Handler) AddRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Rooms.Create(c.Request.Context(), &room)
	if err != nil {
		h.storeError(c, err, "Failed to create room")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) UpdateRoom(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	var req models.RoomUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Fields()) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	result, err := h.Rooms.Update(c.Request.Context(), id, req)
	if err != nil {
		h.storeError(c, err, "Failed to update room")
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetHostRooms lists the rooms listed by the host in the path.
func (h *Handler) GetHostRooms(c *gin.Context) {
	email, ok := bindEmail(c)
	if !ok {
		return
	}
	rooms, err := h.Rooms.FindByHost(c.Request.Context(), email)
	if err != nil {
		h.storeError(c, err, "Failed to retrieve rooms")
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func (h *Handler) DeleteRoom(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	result, err := h.Rooms.Delete(c.Request.Context(), id)
	if err != nil {
		h.storeError(c, err, "Failed to delete room")
		return
	}
	c.JSON(http.StatusOK, result)
}

type roomStatusRequest struct {
	Status *bool `json:"status" binding:"required"`
}

// UpdateRoomStatus flips the booked flag after checkout or cancellation.
func (h *Handler) UpdateRoomStatus(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	var req roomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be true or false"})
		return
	}

	result, err := h.Rooms.SetBooked(c.Request.Context(), id, *req.Status)
	if err != nil {
		h.storeError(c, err, "Failed to update room status")
		return
	}
	c.JSON(http.StatusOK, result)
}
