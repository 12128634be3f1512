package handlers

import (
	"net/http"
	"time"

	"dormhub/models"
	"dormhub/services/reservation"
	"dormhub/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler groups the back-office endpoints.
type AdminHandler struct {
	Reservations reservation.ReservationService
	Users        user.UserService
	Logger       *zap.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(resSvc reservation.ReservationService, userSvc user.UserService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Reservations: resSvc, Users: userSvc, Logger: logger}
}

// ListReservations returns reservations filtered by branch/status/tenant.
func (h *AdminHandler) ListReservations(c *gin.Context) {
	var filter models.ReservationFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter: " + err.Error()})
		return
	}

	reservations, err := h.Reservations.ListAll(filter)
	if err != nil {
		h.Logger.Error("Failed to list reservations", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve reservations"})
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// ApproveSchedule approves a requested visit schedule.
func (h *AdminHandler) ApproveSchedule(c *gin.Context) {
	res, err := h.Reservations.ApproveSchedule(c.Request.Context(), c.Param("id"))
	if err != nil {
		reservationError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// RejectSchedule declines a requested visit schedule with a reason.
func (h *AdminHandler) RejectSchedule(c *gin.Context) {
	var req struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	res, err := h.Reservations.RejectSchedule(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		reservationError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// CompleteVisit marks a viewing as completed by staff.
func (h *AdminHandler) CompleteVisit(c *gin.Context) {
	res, err := h.Reservations.CompleteVisit(c.Request.Context(), c.Param("id"))
	if err != nil {
		reservationError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// VerifyPayment confirms the reservation after checking proof of payment.
func (h *AdminHandler) VerifyPayment(c *gin.Context) {
	var req struct {
		FinalMoveInDate *time.Time `json:"final_move_in_date"`
	}
	// Body is optional; the move-in date can be set later.
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
	}

	res, err := h.Reservations.VerifyPayment(c.Request.Context(), c.Param("id"), req.FinalMoveInDate)
	if err != nil {
		reservationError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// CancelReservation cancels any reservation (admin override).
func (h *AdminHandler) CancelReservation(c *gin.Context) {
	if err := h.Reservations.Cancel(c.Request.Context(), c.Param("id"), "", true); err != nil {
		reservationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reservation cancelled"})
}

// ListUsers returns every registered user.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.Users.List()
	if err != nil {
		h.Logger.Error("Failed to list users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// SetUserRole changes a user's role string.
func (h *AdminHandler) SetUserRole(c *gin.Context) {
	var req struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Users.SetRole(c.Param("id"), req.Role); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Role updated"})
}
