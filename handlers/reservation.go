package handlers

import (
	"errors"
	"net/http"
	"time"

	"dormhub/models"
	"dormhub/services/reservation"
	"dormhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReservationHandler exposes the tenant-facing reservation endpoints.
type ReservationHandler struct {
	Svc    reservation.ReservationService
	Logger *zap.Logger
}

// NewReservationHandler constructs a ReservationHandler.
func NewReservationHandler(svc reservation.ReservationService, logger *zap.Logger) *ReservationHandler {
	return &ReservationHandler{Svc: svc, Logger: logger}
}

// reservationError maps service errors to HTTP responses.
func reservationError(c *gin.Context, err error) {
	var notFound *reservation.ErrNotFound
	var forbidden *reservation.ErrForbidden
	var invalid *reservation.ErrInvalidTransition
	var locked *reservation.ErrApplicationLocked

	switch {
	case errors.As(err, &notFound):
		utils.JSONError(c, http.StatusNotFound, "Reservation not found", err.Error())
	case errors.As(err, &forbidden):
		utils.JSONError(c, http.StatusForbidden, "Forbidden", err.Error())
	case errors.As(err, &invalid):
		utils.JSONError(c, http.StatusConflict, "Invalid action", err.Error())
	case errors.As(err, &locked):
		utils.JSONError(c, http.StatusConflict, "Application locked", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Internal error", err.Error())
	}
}

// CreateReservation starts a pending reservation for the signed-in tenant.
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	session, ok := utils.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req reservation.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	res, err := h.Svc.Create(c.Request.Context(), session.UID, req)
	if err != nil {
		h.Logger.Error("Failed to create reservation", zap.Error(err))
		reservationError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// ListMyReservations returns all of the tenant's reservations.
func (h *ReservationHandler) ListMyReservations(c *gin.Context) {
	session, ok := utils.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	reservations, err := h.Svc.ListByTenant(session.UID)
	if err != nil {
		h.Logger.Error("Failed to list reservations", zap.Error(err))
		reservationError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// GetReservation returns one reservation, owner or admin only.
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	session, ok := utils.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	res, err := h.Svc.GetByID(c.Param("id"))
	if err != nil {
		reservationError(c, err)
		return
	}
	if res.TenantID != session.UID && session.Role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetProgress returns the derived tracker view for the tenant. The
// optional "selected" query pins one of multiple active reservations;
// when it is stale the first active reservation is tracked instead.
func (h *ReservationHandler) GetProgress(c *gin.Context) {
	session, ok := utils.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	all, err := h.Svc.ListByTenant(session.UID)
	if err != nil {
		h.Logger.Error("Failed to list reservations for progress", zap.Error(err))
		reservationError(c, err)
		return
	}

	active := reservation.SelectActiveReservations(all)
	tracked := reservation.TrackedReservation(active, c.Query("selected"))
	progress := reservation.ComputeProgress(tracked)

	trackedID := ""
	if tracked != nil {
		trackedID = tracked.ID
	}

	c.JSON(http.StatusOK, gin.H{
		"active":      active,
		"tracked_id":  trackedID,
		"progress":    progress,
		"next_action": reservation.NextAction(tracked),
	})
}

// ScheduleVisit books (or re-books) a viewing.
func (h *ReservationHandler) ScheduleVisit(c *gin.Context) {
	session, ok := utils.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req reservation.ScheduleVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	res, err := h.Svc.ScheduleVisit(c.Request.Context(), c.Param("id"), session.UID, req)
	if err != nil {
		reservationError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// SubmitApplication files or amends the applicant details.
func (h *ReservationHandler) SubmitApplication(c *gin.Context) {
	session, ok := utils.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req reservation.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	res, err := h.Svc.SubmitApplication(c.Request.Context(), c.Param("id"), session.UID, req)
	if err != nil {
		reservationError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// SubmitPayment records the proof-of-payment upload.
func (h *ReservationHandler) SubmitPayment(c *gin.Context) {
	session, ok := utils.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req reservation.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if req.PaymentDate.IsZero() {
		req.PaymentDate = time.Now()
	}

	res, err := h.Svc.SubmitPayment(c.Request.Context(), c.Param("id"), session.UID, req)
	if err != nil {
		reservationError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// CancelReservation cancels the tenant's reservation.
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	session, ok := utils.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.Svc.Cancel(c.Request.Context(), c.Param("id"), session.UID, false); err != nil {
		reservationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reservation cancelled"})
}
