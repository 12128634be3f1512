package models

import "time"

// Coarse reservation lifecycle labels. The fine-grained progress view is
// derived from the flag fields below, not stored.
const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
	ReservationCompleted = "completed"
)

// Viewing types for the scheduled visit.
const (
	ViewingInPerson = "inperson"
	ViewingVirtual  = "virtual"
	ViewingNone     = "none"
)

// Payment statuses.
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
)

// SelectedBed records the bed assignment for rooms with per-bed slots.
type SelectedBed struct {
	ID       string `bson:"id" json:"id"`
	Position string `bson:"position" json:"position"`
}

// RoomSummary is the room snapshot embedded in a reservation at creation
// time, so the tracker keeps rendering sensibly if the room is later edited.
type RoomSummary struct {
	ID        string   `bson:"id" json:"id"`
	Name      string   `bson:"name" json:"name"`
	Branch    string   `bson:"branch" json:"branch"`
	Type      string   `bson:"type" json:"type"`
	Price     float64  `bson:"price" json:"price"`
	Capacity  int      `bson:"capacity" json:"capacity"`
	Deposit   float64  `bson:"deposit,omitempty" json:"deposit,omitempty"`
	Amenities []string `bson:"amenities,omitempty" json:"amenities,omitempty"`
}

// Reservation is the tenant's booking record. Flag fields are populated by
// the backend as side effects of pipeline actions and are expected to fill
// in monotonically; the progress derivation tolerates violations.
type Reservation struct {
	ID              string       `bson:"id" json:"id"`
	TenantID        string       `bson:"tenant_id" json:"tenant_id"`
	ReservationCode string       `bson:"reservation_code,omitempty" json:"reservation_code,omitempty"`
	Room            *RoomSummary `bson:"room,omitempty" json:"room,omitempty"`
	SelectedBed     *SelectedBed `bson:"selected_bed,omitempty" json:"selected_bed,omitempty"`
	Status          string       `bson:"status" json:"status"`

	// Visit scheduling.
	AgreedToPrivacy         bool       `bson:"agreed_to_privacy" json:"agreed_to_privacy"`
	ViewingType             string     `bson:"viewing_type,omitempty" json:"viewing_type,omitempty"`
	IsOutOfTown             bool       `bson:"is_out_of_town,omitempty" json:"is_out_of_town,omitempty"`
	VisitDate               *time.Time `bson:"visit_date,omitempty" json:"visit_date,omitempty"`
	ScheduleApproved        bool       `bson:"schedule_approved" json:"schedule_approved"`
	ScheduleRejected        bool       `bson:"schedule_rejected" json:"schedule_rejected"`
	ScheduleRejectionReason string     `bson:"schedule_rejection_reason,omitempty" json:"schedule_rejection_reason,omitempty"`
	ScheduleRejectedAt      *time.Time `bson:"schedule_rejected_at,omitempty" json:"schedule_rejected_at,omitempty"`

	// Visit completion.
	VisitApproved    bool       `bson:"visit_approved" json:"visit_approved"`
	VisitCompletedAt *time.Time `bson:"visit_completed_at,omitempty" json:"visit_completed_at,omitempty"`

	// Application fields; first/last name present marks submission.
	FirstName                string `bson:"first_name,omitempty" json:"first_name,omitempty"`
	LastName                 string `bson:"last_name,omitempty" json:"last_name,omitempty"`
	MobileNumber             string `bson:"mobile_number,omitempty" json:"mobile_number,omitempty"`
	EmergencyContactName     string `bson:"emergency_contact_name,omitempty" json:"emergency_contact_name,omitempty"`
	EmergencyContactNumber   string `bson:"emergency_contact_number,omitempty" json:"emergency_contact_number,omitempty"`
	EmergencyContactRelation string `bson:"emergency_contact_relation,omitempty" json:"emergency_contact_relation,omitempty"`
	AddressLine              string `bson:"address_line,omitempty" json:"address_line,omitempty"`
	City                     string `bson:"city,omitempty" json:"city,omitempty"`
	Province                 string `bson:"province,omitempty" json:"province,omitempty"`
	PostalCode               string `bson:"postal_code,omitempty" json:"postal_code,omitempty"`

	// Payment proof.
	ProofOfPaymentURL string     `bson:"proof_of_payment_url,omitempty" json:"proof_of_payment_url,omitempty"`
	PaymentMethod     string     `bson:"payment_method,omitempty" json:"payment_method,omitempty"`
	PaymentDate       *time.Time `bson:"payment_date,omitempty" json:"payment_date,omitempty"`
	PaymentStatus     string     `bson:"payment_status,omitempty" json:"payment_status,omitempty"`

	// Confirmation.
	FinalMoveInDate *time.Time `bson:"final_move_in_date,omitempty" json:"final_move_in_date,omitempty"`
	ApprovedDate    *time.Time `bson:"approved_date,omitempty" json:"approved_date,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// IsConfirmed reports whether the reservation reached the terminal
// confirmed stage via either the coarse status or a verified payment.
func (r *Reservation) IsConfirmed() bool {
	return r.Status == ReservationConfirmed || r.PaymentStatus == PaymentPaid
}

// IsActive reports whether the reservation is still eligible for tracking.
func (r *Reservation) IsActive() bool {
	return r.Status != ReservationCompleted && r.Status != ReservationCancelled
}

// ApplicationSubmitted reports whether the applicant details were filed.
func (r *Reservation) ApplicationSubmitted() bool {
	return r.FirstName != "" && r.LastName != ""
}

// ReservationFilter narrows admin reservation listings.
type ReservationFilter struct {
	Branch   string `form:"branch" json:"branch"`
	Status   string `form:"status" json:"status"`
	TenantID string `form:"tenant_id" json:"tenant_id"`
}
