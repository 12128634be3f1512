package reservation

import (
	"context"
	"fmt"
	"strings"
	"time"

	reservationRepo "dormhub/database/repository/reservation"
	roomRepo "dormhub/database/repository/room"
	"dormhub/models"
	"dormhub/services/notification"
	"dormhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReminderEnqueuer schedules a visit reminder for future delivery.
// Implemented by the cron package's asynq client.
type ReminderEnqueuer interface {
	EnqueueVisitReminder(reservationID string, processAt time.Time) error
}

// DefaultReservationService is the production ReservationService.
type DefaultReservationService struct {
	Repo      reservationRepo.ReservationRepository
	RoomRepo  roomRepo.RoomRepository
	Notifier  notification.NotificationService
	Reminders ReminderEnqueuer
}

// newReservationCode builds a short human-readable code, e.g. "DH-3F2A9C".
func newReservationCode() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "DH-" + id[:6]
}

// Create starts a pending reservation against a room, optionally with a
// per-bed assignment for rooms that track bed slots.
func (s *DefaultReservationService) Create(ctx context.Context, tenantID string, req CreateRequest) (*models.Reservation, error) {
	room, err := s.RoomRepo.GetByID(req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("failed to load room %s: %w", req.RoomID, err)
	}
	if room == nil {
		return nil, &ErrInvalidTransition{Action: "create reservation", Reason: "room does not exist"}
	}
	if !room.Available {
		return nil, &ErrInvalidTransition{Action: "create reservation", Reason: "room is not available"}
	}

	if req.Bed != nil {
		found := false
		for _, b := range room.Beds {
			if b.ID == req.Bed.ID {
				if b.Occupied {
					return nil, &ErrInvalidTransition{Action: "create reservation", Reason: "selected bed is occupied"}
				}
				req.Bed.Position = b.Position
				found = true
				break
			}
		}
		if !found {
			return nil, &ErrInvalidTransition{Action: "create reservation", Reason: "selected bed does not exist in room"}
		}
	}

	res := &models.Reservation{
		ID:              uuid.New().String(),
		TenantID:        tenantID,
		ReservationCode: newReservationCode(),
		Status:          models.ReservationPending,
		Room: &models.RoomSummary{
			ID:        room.ID,
			Name:      room.Name,
			Branch:    room.Branch,
			Type:      room.Type,
			Price:     room.Price,
			Capacity:  room.Capacity,
			Deposit:   room.Deposit,
			Amenities: room.Amenities,
		},
		SelectedBed: req.Bed,
	}
	if err := s.Repo.Create(res); err != nil {
		return nil, err
	}
	return res, nil
}

// GetByID loads a reservation, returning ErrNotFound for unknown ids.
func (s *DefaultReservationService) GetByID(id string) (*models.Reservation, error) {
	res, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, &ErrNotFound{ID: id}
	}
	return res, nil
}

// ListByTenant returns all of a tenant's reservations, newest first.
func (s *DefaultReservationService) ListByTenant(tenantID string) ([]models.Reservation, error) {
	return s.Repo.GetByTenant(tenantID)
}

// ListAll returns reservations for the back office, optionally filtered.
func (s *DefaultReservationService) ListAll(filter models.ReservationFilter) ([]models.Reservation, error) {
	return s.Repo.GetAll(filter)
}

// getOwned loads a reservation and checks tenant ownership.
func (s *DefaultReservationService) getOwned(id, tenantID string) (*models.Reservation, error) {
	res, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if res.TenantID != tenantID {
		return nil, &ErrForbidden{ID: id}
	}
	return res, nil
}

// ScheduleVisit books (or re-books after a rejection) a room viewing.
func (s *DefaultReservationService) ScheduleVisit(ctx context.Context, id, tenantID string, req ScheduleVisitRequest) (*models.Reservation, error) {
	res, err := s.getOwned(id, tenantID)
	if err != nil {
		return nil, err
	}
	if !res.IsActive() {
		return nil, &ErrInvalidTransition{Action: "schedule visit", Reason: "reservation is " + res.Status}
	}
	if res.Room == nil {
		return nil, &ErrInvalidTransition{Action: "schedule visit", Reason: "no room selected"}
	}
	if !req.AgreedToPrivacy {
		return nil, &ErrInvalidTransition{Action: "schedule visit", Reason: "privacy agreement is required"}
	}
	if req.ViewingType != models.ViewingInPerson && req.ViewingType != models.ViewingVirtual {
		return nil, &ErrInvalidTransition{Action: "schedule visit", Reason: "viewing type must be inperson or virtual"}
	}

	visit := req.VisitDate
	res.AgreedToPrivacy = true
	res.ViewingType = req.ViewingType
	res.IsOutOfTown = req.IsOutOfTown
	res.VisitDate = &visit

	// Rescheduling clears any previous rejection so the tracker leaves
	// the rejected state.
	res.ScheduleApproved = false
	res.ScheduleRejected = false
	res.ScheduleRejectionReason = ""
	res.ScheduleRejectedAt = nil

	if err := s.Repo.Update(res); err != nil {
		return nil, err
	}
	return res, nil
}

// ApproveSchedule marks the requested visit schedule as approved.
func (s *DefaultReservationService) ApproveSchedule(ctx context.Context, id string) (*models.Reservation, error) {
	res, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if res.VisitDate == nil || !res.AgreedToPrivacy {
		return nil, &ErrInvalidTransition{Action: "approve schedule", Reason: "no visit has been scheduled"}
	}

	res.ScheduleApproved = true
	res.ScheduleRejected = false
	res.ScheduleRejectionReason = ""
	res.ScheduleRejectedAt = nil
	if err := s.Repo.Update(res); err != nil {
		return nil, err
	}

	s.notify(ctx, res.TenantID, "Visit Schedule Approved",
		fmt.Sprintf("Your visit to %s on %s has been approved.", RoomName(res), FormatDate(res.VisitDate)),
		map[string]string{"reservation_id": res.ID, "event": "schedule_approved"})

	if s.Reminders != nil && res.VisitDate != nil {
		remindAt := res.VisitDate.Add(-24 * time.Hour)
		if remindAt.After(time.Now()) {
			if err := s.Reminders.EnqueueVisitReminder(res.ID, remindAt); err != nil {
				utils.GetLogger().Warn("failed to enqueue visit reminder",
					zap.String("reservation_id", res.ID), zap.Error(err))
			}
		}
	}
	return res, nil
}

// RejectSchedule declines the requested visit schedule with a reason.
func (s *DefaultReservationService) RejectSchedule(ctx context.Context, id, reason string) (*models.Reservation, error) {
	res, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if res.VisitDate == nil {
		return nil, &ErrInvalidTransition{Action: "reject schedule", Reason: "no visit has been scheduled"}
	}

	now := time.Now()
	res.ScheduleApproved = false
	res.ScheduleRejected = true
	res.ScheduleRejectionReason = reason
	res.ScheduleRejectedAt = &now
	if err := s.Repo.Update(res); err != nil {
		return nil, err
	}

	s.notify(ctx, res.TenantID, "Visit Schedule Rejected",
		"Your requested visit schedule was not approved. Please pick another date.",
		map[string]string{"reservation_id": res.ID, "event": "schedule_rejected"})
	return res, nil
}

// CompleteVisit marks the viewing as done and approved by staff.
func (s *DefaultReservationService) CompleteVisit(ctx context.Context, id string) (*models.Reservation, error) {
	res, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !res.ScheduleApproved || res.ScheduleRejected {
		return nil, &ErrInvalidTransition{Action: "complete visit", Reason: "visit schedule is not approved"}
	}

	now := time.Now()
	res.VisitApproved = true
	res.VisitCompletedAt = &now
	if err := s.Repo.Update(res); err != nil {
		return nil, err
	}

	s.notify(ctx, res.TenantID, "Visit Completed",
		"Your visit is complete. You can now submit your application.",
		map[string]string{"reservation_id": res.ID, "event": "visit_completed"})
	return res, nil
}

// SubmitApplication files (or amends) the applicant details. Amending is
// only allowed in the window before payment submission or confirmation.
func (s *DefaultReservationService) SubmitApplication(ctx context.Context, id, tenantID string, req ApplicationRequest) (*models.Reservation, error) {
	res, err := s.getOwned(id, tenantID)
	if err != nil {
		return nil, err
	}
	if !res.IsActive() {
		return nil, &ErrInvalidTransition{Action: "submit application", Reason: "reservation is " + res.Status}
	}
	if !res.VisitApproved {
		return nil, &ErrInvalidTransition{Action: "submit application", Reason: "visit has not been completed"}
	}
	if res.ProofOfPaymentURL != "" || res.IsConfirmed() {
		return nil, &ErrApplicationLocked{}
	}

	res.FirstName = req.FirstName
	res.LastName = req.LastName
	res.MobileNumber = req.MobileNumber
	res.EmergencyContactName = req.EmergencyContactName
	res.EmergencyContactNumber = req.EmergencyContactNumber
	res.EmergencyContactRelation = req.EmergencyContactRelation
	res.AddressLine = req.AddressLine
	res.City = req.City
	res.Province = req.Province
	res.PostalCode = req.PostalCode

	if err := s.Repo.Update(res); err != nil {
		return nil, err
	}
	return res, nil
}

// SubmitPayment records the proof-of-payment upload.
func (s *DefaultReservationService) SubmitPayment(ctx context.Context, id, tenantID string, req PaymentRequest) (*models.Reservation, error) {
	res, err := s.getOwned(id, tenantID)
	if err != nil {
		return nil, err
	}
	if !res.IsActive() {
		return nil, &ErrInvalidTransition{Action: "submit payment", Reason: "reservation is " + res.Status}
	}
	if !res.ApplicationSubmitted() {
		return nil, &ErrInvalidTransition{Action: "submit payment", Reason: "application has not been submitted"}
	}
	if res.IsConfirmed() {
		return nil, &ErrInvalidTransition{Action: "submit payment", Reason: "reservation is already confirmed"}
	}

	paid := req.PaymentDate
	if paid.IsZero() {
		paid = time.Now()
	}
	res.ProofOfPaymentURL = req.ProofOfPaymentURL
	res.PaymentMethod = req.PaymentMethod
	res.PaymentDate = &paid
	res.PaymentStatus = models.PaymentPending

	if err := s.Repo.Update(res); err != nil {
		return nil, err
	}
	return res, nil
}

// VerifyPayment confirms the reservation after the back office checks the
// proof of payment. The selected bed, if any, is marked occupied; a bed
// update failure is logged but does not roll back the confirmation.
func (s *DefaultReservationService) VerifyPayment(ctx context.Context, id string, moveIn *time.Time) (*models.Reservation, error) {
	res, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if res.ProofOfPaymentURL == "" {
		return nil, &ErrInvalidTransition{Action: "verify payment", Reason: "no proof of payment submitted"}
	}

	now := time.Now()
	res.PaymentStatus = models.PaymentPaid
	res.Status = models.ReservationConfirmed
	res.ApprovedDate = &now
	if moveIn != nil {
		res.FinalMoveInDate = moveIn
	}
	if err := s.Repo.Update(res); err != nil {
		return nil, err
	}

	if res.Room != nil && res.SelectedBed != nil {
		if err := s.RoomRepo.SetBedOccupied(res.Room.ID, res.SelectedBed.ID, true); err != nil {
			utils.GetLogger().Warn("failed to mark bed occupied",
				zap.String("room_id", res.Room.ID), zap.String("bed_id", res.SelectedBed.ID), zap.Error(err))
		}
	}

	s.notify(ctx, res.TenantID, "Reservation Confirmed!",
		fmt.Sprintf("Payment verified. Your reservation %s is confirmed.", res.ReservationCode),
		map[string]string{"reservation_id": res.ID, "event": "confirmed"})
	return res, nil
}

// Cancel sets the reservation status to cancelled and frees the bed.
// Tenants may only cancel their own reservations; admins may cancel any.
func (s *DefaultReservationService) Cancel(ctx context.Context, id, tenantID string, asAdmin bool) error {
	res, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if !asAdmin && res.TenantID != tenantID {
		return &ErrForbidden{ID: id}
	}
	if res.Status == models.ReservationCancelled {
		return nil
	}

	res.Status = models.ReservationCancelled
	if err := s.Repo.Update(res); err != nil {
		return err
	}

	if res.Room != nil && res.SelectedBed != nil {
		if err := s.RoomRepo.SetBedOccupied(res.Room.ID, res.SelectedBed.ID, false); err != nil {
			utils.GetLogger().Warn("failed to release bed",
				zap.String("room_id", res.Room.ID), zap.String("bed_id", res.SelectedBed.ID), zap.Error(err))
		}
	}
	return nil
}

// notify sends a best-effort push; delivery failures are logged, never
// propagated into the reservation mutation result.
func (s *DefaultReservationService) notify(ctx context.Context, tenantID, title, body string, data map[string]string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.SendPush(ctx, tenantID, title, body, data); err != nil {
		utils.GetLogger().Warn("push notification failed",
			zap.String("tenant_id", tenantID), zap.Error(err))
	}
}
