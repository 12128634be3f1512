package reservation

import (
	"time"

	"dormhub/models"
)

// The progress tracker is a pure derivation over an already-fetched
// reservation snapshot: no I/O, no hidden state, safe to recompute on
// every request. The coarse status field is authoritative but coarse;
// the six-stage view below is inferred from the flag fields the backend
// sets as side effects of pipeline actions.

// SelectActiveReservations filters out completed and cancelled
// reservations. Input order is preserved; an empty result is a valid
// first-class state, not an error.
func SelectActiveReservations(all []models.Reservation) []models.Reservation {
	active := make([]models.Reservation, 0, len(all))
	for _, r := range all {
		if r.IsActive() {
			active = append(active, r)
		}
	}
	return active
}

// TrackedReservation resolves which active reservation the tenant is
// tracking. If selectedID is no longer in the active set (e.g. it was
// cancelled), it falls back to the first active reservation. Returns nil
// when there is nothing to track.
func TrackedReservation(active []models.Reservation, selectedID string) *models.Reservation {
	if len(active) == 0 {
		return nil
	}
	if selectedID != "" {
		for i := range active {
			if active[i].ID == selectedID {
				return &active[i]
			}
		}
	}
	return &active[0]
}

// stageDone evaluates the raw completion predicate of a single stage.
// Stage predicates are evaluated independently rather than requiring
// strict prefix-closure; a rejected schedule ungates stage 1 only.
func stageDone(r *models.Reservation, idx int) bool {
	switch models.ProgressSteps[idx] {
	case models.StepRoomSelected:
		return r.Room != nil
	case models.StepVisitScheduled:
		if r.ScheduleRejected {
			return false
		}
		return r.AgreedToPrivacy &&
			(r.ViewingType == models.ViewingInPerson || r.ViewingType == models.ViewingVirtual)
	case models.StepVisitCompleted:
		return r.VisitApproved
	case models.StepApplicationSubmitted:
		return r.ApplicationSubmitted()
	case models.StepPaymentSubmitted:
		return r.ProofOfPaymentURL != ""
	case models.StepConfirmed:
		return r.IsConfirmed()
	}
	return false
}

// ComputeProgress derives the six-stage tracker view for a reservation.
// A nil reservation yields CurrentStepIndex -1 with only the entry step
// rendered as current; the UI routes that step's click to room browsing.
func ComputeProgress(r *models.Reservation) models.DerivedProgress {
	steps := make([]models.StepView, len(models.ProgressSteps))
	for i, tag := range models.ProgressSteps {
		steps[i] = models.StepView{Step: tag, Status: models.StepLocked}
	}

	if r == nil {
		steps[0].Status = models.StepCurrent
		return models.DerivedProgress{CurrentStepIndex: -1, Steps: steps}
	}

	idx := -1
	for i := range models.ProgressSteps {
		if stageDone(r, i) {
			idx = i
		}
	}

	confirmed := r.IsConfirmed()
	paymentSubmitted := r.ProofOfPaymentURL != ""

	// room_selected: the entry point, always reachable.
	if idx >= 0 {
		steps[0].Status = models.StepCompleted
		steps[0].CompletedDate = FormatDate(&r.CreatedAt)
	} else {
		steps[0].Status = models.StepCurrent
	}

	// visit_scheduled
	switch {
	case r.ScheduleRejected:
		steps[1].Status = models.StepRejected
		steps[1].RejectionReason = r.ScheduleRejectionReason
	case idx >= 1 && r.ScheduleApproved:
		steps[1].Status = models.StepCompleted
		steps[1].CompletedDate = FormatDate(r.VisitDate)
	case idx >= 1:
		steps[1].Status = models.StepPendingApproval
	case idx == 0:
		steps[1].Status = models.StepCurrent
	}

	// visit_completed
	switch {
	case idx >= 2:
		steps[2].Status = models.StepCompleted
		steps[2].CompletedDate = FormatDate(r.VisitCompletedAt)
	case idx == 1 && r.ScheduleApproved:
		steps[2].Status = models.StepPendingApproval
	}

	// application_submitted; editable only in the window between
	// submission and payment/confirmation, after which it locks for good.
	switch {
	case idx >= 3:
		steps[3].Status = models.StepCompleted
	case idx == 2:
		steps[3].Status = models.StepCurrent
	}
	steps[3].Editable = idx >= 3 && !paymentSubmitted && !confirmed

	// payment_submitted
	switch {
	case paymentSubmitted && !confirmed:
		steps[4].Status = models.StepPendingApproval
		steps[4].CompletedDate = FormatDate(r.PaymentDate)
	case idx >= 4 && confirmed:
		steps[4].Status = models.StepCompleted
		steps[4].CompletedDate = FormatDate(r.PaymentDate)
	case idx == 3:
		steps[4].Status = models.StepCurrent
	}

	// confirmed
	switch {
	case idx >= 5:
		steps[5].Status = models.StepCompleted
		steps[5].CompletedDate = FormatDate(r.ApprovedDate)
	case paymentSubmitted && !confirmed:
		steps[5].Status = models.StepPendingApproval
	}

	return models.DerivedProgress{CurrentStepIndex: idx, Steps: steps}
}

// NextAction maps the current stage to the recommended tenant action.
func NextAction(r *models.Reservation) models.ProgressAction {
	if r == nil || r.Room == nil {
		return models.ProgressAction{
			Title:       "Find Your Room",
			Description: "Browse available rooms at Gil Puyat and Guadalupe to start a reservation.",
			ButtonText:  "Browse Rooms",
			TargetStep:  models.StepRoomSelected,
		}
	}

	if r.ScheduleRejected {
		return models.ProgressAction{
			Title:       "Visit Schedule Rejected",
			Description: "Your requested visit schedule was not approved. Pick a new date to continue.",
			ButtonText:  "Reschedule Visit",
			TargetStep:  models.StepVisitScheduled,
		}
	}

	progress := ComputeProgress(r)
	switch progress.CurrentStepIndex {
	case 0:
		return models.ProgressAction{
			Title:       "Schedule a Visit",
			Description: "Book an in-person or virtual viewing of " + RoomName(r) + ".",
			ButtonText:  "Schedule Visit",
			TargetStep:  models.StepVisitScheduled,
		}
	case 1:
		if !r.ScheduleApproved {
			return models.ProgressAction{
				Title:       "Awaiting Schedule Approval",
				Description: "We are reviewing your requested visit schedule. You will be notified once it is approved.",
				ButtonText:  "View Schedule",
				TargetStep:  models.StepVisitScheduled,
			}
		}
		return models.ProgressAction{
			Title:       "Complete Your Visit",
			Description: "Your visit on " + FormatDate(r.VisitDate) + " is approved. The visit will be marked complete by staff afterwards.",
			ButtonText:  "View Visit Details",
			TargetStep:  models.StepVisitCompleted,
		}
	case 2:
		return models.ProgressAction{
			Title:       "Submit Your Application",
			Description: "Fill in your applicant details to apply for " + RoomName(r) + ".",
			ButtonText:  "Submit Application",
			TargetStep:  models.StepApplicationSubmitted,
		}
	case 3:
		return models.ProgressAction{
			Title:       "Submit Your Payment",
			Description: "Upload your proof of payment to reserve your spot.",
			ButtonText:  "Submit Payment",
			TargetStep:  models.StepPaymentSubmitted,
		}
	case 4:
		return models.ProgressAction{
			Title:       "Awaiting Payment Verification",
			Description: "We are verifying your proof of payment. Your reservation will be confirmed shortly.",
			ButtonText:  "View Payment",
			TargetStep:  models.StepConfirmed,
		}
	case 5:
		return models.ProgressAction{
			Title:       "Reservation Confirmed!",
			Description: "Your reservation " + r.ReservationCode + " is confirmed. Move-in: " + FormatDate(r.FinalMoveInDate) + ".",
			ButtonText:  "View Details",
			TargetStep:  models.StepConfirmed,
		}
	}

	return models.ProgressAction{
		Title:       "Find Your Room",
		Description: "Browse available rooms to start a reservation.",
		ButtonText:  "Browse Rooms",
		TargetStep:  models.StepRoomSelected,
	}
}

// IsStepClickable decides whether the tenant may interact with a step.
// Completed steps stay inert unless still editable; pending steps open an
// informational notice on the caller side rather than a navigation.
func IsStepClickable(step models.StepView, hasReservation bool) bool {
	if !hasReservation && step.Step != models.StepRoomSelected {
		return false
	}
	switch step.Status {
	case models.StepLocked:
		return false
	case models.StepCompleted:
		return step.Editable
	case models.StepCurrent, models.StepRejected, models.StepPendingApproval:
		return true
	}
	return false
}

// RoomName returns the reserved room's name, degrading to a placeholder
// when the nested room snapshot is missing.
func RoomName(r *models.Reservation) string {
	if r == nil || r.Room == nil || r.Room.Name == "" {
		return "N/A"
	}
	return r.Room.Name
}

// BedLabel returns the selected bed's position/id, or a placeholder when
// the room has no per-bed assignment.
func BedLabel(r *models.Reservation) string {
	if r == nil || r.SelectedBed == nil {
		return "N/A"
	}
	if r.SelectedBed.Position != "" {
		return r.SelectedBed.Position
	}
	return r.SelectedBed.ID
}

// FormatDate renders a date for display, degrading to "TBD" when unset.
func FormatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "TBD"
	}
	return t.Format("January 2, 2006")
}
