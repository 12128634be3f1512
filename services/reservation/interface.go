package reservation

import (
	"context"
	"time"

	"dormhub/models"
)

// CreateRequest starts a reservation from a chosen room.
type CreateRequest struct {
	RoomID string              `json:"room_id" binding:"required"`
	Bed    *models.SelectedBed `json:"bed,omitempty"`
}

// ScheduleVisitRequest books a viewing for a reservation.
type ScheduleVisitRequest struct {
	AgreedToPrivacy bool      `json:"agreed_to_privacy" binding:"required"`
	ViewingType     string    `json:"viewing_type" binding:"required"`
	IsOutOfTown     bool      `json:"is_out_of_town"`
	VisitDate       time.Time `json:"visit_date" binding:"required"`
}

// ApplicationRequest carries the applicant details.
type ApplicationRequest struct {
	FirstName                string `json:"first_name" binding:"required"`
	LastName                 string `json:"last_name" binding:"required"`
	MobileNumber             string `json:"mobile_number" binding:"required"`
	EmergencyContactName     string `json:"emergency_contact_name"`
	EmergencyContactNumber   string `json:"emergency_contact_number"`
	EmergencyContactRelation string `json:"emergency_contact_relation"`
	AddressLine              string `json:"address_line"`
	City                     string `json:"city"`
	Province                 string `json:"province"`
	PostalCode               string `json:"postal_code"`
}

// PaymentRequest carries the proof-of-payment upload result.
type PaymentRequest struct {
	ProofOfPaymentURL string    `json:"proof_of_payment_url" binding:"required"`
	PaymentMethod     string    `json:"payment_method" binding:"required"`
	PaymentDate       time.Time `json:"payment_date"`
}

// ReservationService manages the reservation lifecycle. The progress
// tracker functions in progress.go are deliberately outside this
// interface: they are pure and take already-fetched records.
type ReservationService interface {
	Create(ctx context.Context, tenantID string, req CreateRequest) (*models.Reservation, error)
	GetByID(id string) (*models.Reservation, error)
	ListByTenant(tenantID string) ([]models.Reservation, error)
	ListAll(filter models.ReservationFilter) ([]models.Reservation, error)

	ScheduleVisit(ctx context.Context, id, tenantID string, req ScheduleVisitRequest) (*models.Reservation, error)
	ApproveSchedule(ctx context.Context, id string) (*models.Reservation, error)
	RejectSchedule(ctx context.Context, id, reason string) (*models.Reservation, error)
	CompleteVisit(ctx context.Context, id string) (*models.Reservation, error)
	SubmitApplication(ctx context.Context, id, tenantID string, req ApplicationRequest) (*models.Reservation, error)
	SubmitPayment(ctx context.Context, id, tenantID string, req PaymentRequest) (*models.Reservation, error)
	VerifyPayment(ctx context.Context, id string, moveIn *time.Time) (*models.Reservation, error)
	Cancel(ctx context.Context, id, tenantID string, asAdmin bool) error
}
