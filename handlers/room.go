package handlers

import (
	"errors"
	"net/http"

	"dormhub/models"
	"dormhub/services/room"
	"dormhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RoomHandler exposes the room catalogue endpoints.
type RoomHandler struct {
	Svc    room.RoomService
	Logger *zap.Logger
}

// NewRoomHandler constructs a RoomHandler.
func NewRoomHandler(svc room.RoomService, logger *zap.Logger) *RoomHandler {
	return &RoomHandler{Svc: svc, Logger: logger}
}

func roomError(c *gin.Context, err error) {
	var notFound *room.ErrNotFound
	var invalid *room.ErrInvalidRoom

	switch {
	case errors.As(err, &notFound):
		utils.JSONError(c, http.StatusNotFound, "Room not found", err.Error())
	case errors.As(err, &invalid):
		utils.JSONError(c, http.StatusBadRequest, "Invalid room", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Internal error", err.Error())
	}
}

// ListRooms returns rooms matching the optional branch/type/price filters.
func (h *RoomHandler) ListRooms(c *gin.Context) {
	var filter models.RoomFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter: " + err.Error()})
		return
	}

	rooms, err := h.Svc.List(filter)
	if err != nil {
		h.Logger.Error("Failed to list rooms", zap.Error(err))
		roomError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetRoom returns one room by id.
func (h *RoomHandler) GetRoom(c *gin.Context) {
	r, err := h.Svc.GetByID(c.Param("id"))
	if err != nil {
		roomError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// GetAvailability summarizes bed occupancy, flagging overbooked rooms.
func (h *RoomHandler) GetAvailability(c *gin.Context) {
	var filter models.RoomFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter: " + err.Error()})
		return
	}

	reports, err := h.Svc.Occupancy(filter)
	if err != nil {
		h.Logger.Error("Failed to compute occupancy", zap.Error(err))
		roomError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

// CreateRoom adds a room to the catalogue (admin).
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var r models.Room
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.Svc.Create(&r)
	if err != nil {
		roomError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateRoom modifies a room (admin).
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	var r models.Room
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	r.ID = c.Param("id")

	updated, err := h.Svc.Update(&r)
	if err != nil {
		roomError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteRoom removes a room (admin).
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	if err := h.Svc.Delete(c.Param("id")); err != nil {
		roomError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Room deleted"})
}
