// File: dormhub/handlers/bundle.go
package handlers

import (
	"dormhub/services/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserService user.UserService

	// Room endpoints.
	ListRoomsHandler       gin.HandlerFunc
	GetRoomHandler         gin.HandlerFunc
	GetAvailabilityHandler gin.HandlerFunc
	CreateRoomHandler      gin.HandlerFunc
	UpdateRoomHandler      gin.HandlerFunc
	DeleteRoomHandler      gin.HandlerFunc

	// Reservation endpoints.
	CreateReservationHandler  gin.HandlerFunc
	ListMyReservationsHandler gin.HandlerFunc
	GetReservationHandler     gin.HandlerFunc
	GetProgressHandler        gin.HandlerFunc
	ScheduleVisitHandler      gin.HandlerFunc
	SubmitApplicationHandler  gin.HandlerFunc
	SubmitPaymentHandler      gin.HandlerFunc
	CancelReservationHandler  gin.HandlerFunc

	// Inquiry endpoints.
	SubmitInquiryHandler  gin.HandlerFunc
	ListInquiriesHandler  gin.HandlerFunc
	ResolveInquiryHandler gin.HandlerFunc
	DeleteInquiryHandler  gin.HandlerFunc

	// Profile endpoints.
	GetProfileHandler    gin.HandlerFunc
	UpdateProfileHandler gin.HandlerFunc

	// Storage endpoints.
	UploadPaymentProofHandler gin.HandlerFunc
	UploadRoomPhotoHandler    gin.HandlerFunc

	// Admin endpoints.
	Admin *AdminHandler
}
