package reservation

import (
	"testing"
	"time"

	"dormhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
	return &t
}

// baseReservation returns a reservation with only a room selected.
func baseReservation() *models.Reservation {
	return &models.Reservation{
		ID:              "res-1",
		TenantID:        "tenant-1",
		ReservationCode: "DH-ABC123",
		Status:          models.ReservationPending,
		Room: &models.RoomSummary{
			ID:     "room-1",
			Name:   "Room 101",
			Branch: models.BranchGilPuyat,
			Type:   "quadruple",
			Price:  5500,
		},
		CreatedAt: *date(2025, time.January, 15),
	}
}

func withVisitRequested(r *models.Reservation) *models.Reservation {
	r.AgreedToPrivacy = true
	r.ViewingType = models.ViewingInPerson
	r.VisitDate = date(2025, time.March, 8)
	return r
}

func withScheduleApproved(r *models.Reservation) *models.Reservation {
	r.ScheduleApproved = true
	return r
}

func withVisitCompleted(r *models.Reservation) *models.Reservation {
	r.VisitApproved = true
	r.VisitCompletedAt = date(2025, time.March, 8)
	return r
}

func withApplication(r *models.Reservation) *models.Reservation {
	r.FirstName = "Maria"
	r.LastName = "Santos"
	r.MobileNumber = "09171234567"
	return r
}

func withPayment(r *models.Reservation) *models.Reservation {
	r.ProofOfPaymentURL = "https://cdn.example.com/proof.jpg"
	r.PaymentMethod = "gcash"
	r.PaymentDate = date(2025, time.March, 10)
	r.PaymentStatus = models.PaymentPending
	return r
}

func withConfirmed(r *models.Reservation) *models.Reservation {
	r.PaymentStatus = models.PaymentPaid
	r.Status = models.ReservationConfirmed
	r.ApprovedDate = date(2025, time.March, 12)
	r.FinalMoveInDate = date(2025, time.April, 1)
	return r
}

func TestComputeProgressNoReservation(t *testing.T) {
	p := ComputeProgress(nil)

	require.Len(t, p.Steps, 6)
	assert.Equal(t, -1, p.CurrentStepIndex)
	assert.Equal(t, models.StepRoomSelected, p.CurrentStep())
	assert.Equal(t, models.StepCurrent, p.Steps[0].Status)
	for i := 1; i < 6; i++ {
		assert.Equal(t, models.StepLocked, p.Steps[i].Status, "step %d", i)
	}
}

func TestComputeProgressRoomSelected(t *testing.T) {
	p := ComputeProgress(baseReservation())

	assert.Equal(t, 0, p.CurrentStepIndex)
	assert.Equal(t, models.StepCompleted, p.Steps[0].Status)
	assert.Equal(t, "January 15, 2025", p.Steps[0].CompletedDate)
	assert.Equal(t, models.StepCurrent, p.Steps[1].Status)
	for i := 2; i < 6; i++ {
		assert.Equal(t, models.StepLocked, p.Steps[i].Status, "step %d", i)
	}
}

func TestComputeProgressAwaitingScheduleApproval(t *testing.T) {
	r := withVisitRequested(baseReservation())
	p := ComputeProgress(r)

	assert.Equal(t, 1, p.CurrentStepIndex)
	assert.Equal(t, models.StepPendingApproval, p.Steps[1].Status)
	assert.Equal(t, models.StepLocked, p.Steps[2].Status)

	action := NextAction(r)
	assert.Equal(t, "Awaiting Schedule Approval", action.Title)
	assert.Equal(t, models.StepVisitScheduled, action.TargetStep)
}

func TestComputeProgressScheduleApproved(t *testing.T) {
	r := withScheduleApproved(withVisitRequested(baseReservation()))
	p := ComputeProgress(r)

	assert.Equal(t, 1, p.CurrentStepIndex)
	assert.Equal(t, models.StepCompleted, p.Steps[1].Status)
	assert.Equal(t, "March 8, 2025", p.Steps[1].CompletedDate)
	assert.Equal(t, models.StepPendingApproval, p.Steps[2].Status)

	action := NextAction(r)
	assert.Equal(t, "Complete Your Visit", action.Title)
}

func TestComputeProgressScheduleRejected(t *testing.T) {
	r := withVisitRequested(baseReservation())
	r.ScheduleRejected = true
	r.ScheduleRejectionReason = "No slots available on that date"

	p := ComputeProgress(r)

	// A rejection ungates the scheduling stage only.
	assert.Equal(t, 0, p.CurrentStepIndex)
	assert.Equal(t, models.StepRejected, p.Steps[1].Status)
	assert.Equal(t, "No slots available on that date", p.Steps[1].RejectionReason)
	assert.True(t, IsStepClickable(p.Steps[1], true))

	action := NextAction(r)
	assert.Equal(t, "Visit Schedule Rejected", action.Title)
	assert.Equal(t, "Reschedule Visit", action.ButtonText)
	assert.Equal(t, models.StepVisitScheduled, action.TargetStep)
}

func TestComputeProgressVisitCompleted(t *testing.T) {
	r := withVisitCompleted(withScheduleApproved(withVisitRequested(baseReservation())))
	p := ComputeProgress(r)

	assert.Equal(t, 2, p.CurrentStepIndex)
	assert.Equal(t, models.StepCompleted, p.Steps[2].Status)
	assert.Equal(t, "March 8, 2025", p.Steps[2].CompletedDate)
	assert.Equal(t, models.StepCurrent, p.Steps[3].Status)
	assert.False(t, p.Steps[3].Editable)

	action := NextAction(r)
	assert.Equal(t, "Submit Your Application", action.Title)
}

func TestComputeProgressApplicationSubmitted(t *testing.T) {
	r := withApplication(withVisitCompleted(withScheduleApproved(withVisitRequested(baseReservation()))))
	p := ComputeProgress(r)

	assert.Equal(t, 3, p.CurrentStepIndex)
	assert.Equal(t, models.StepCompleted, p.Steps[3].Status)
	assert.True(t, p.Steps[3].Editable)
	assert.Equal(t, models.StepCurrent, p.Steps[4].Status)

	action := NextAction(r)
	assert.Equal(t, "Submit Your Payment", action.Title)
}

func TestComputeProgressPaymentAwaitingVerification(t *testing.T) {
	r := withPayment(withApplication(withVisitCompleted(withScheduleApproved(withVisitRequested(baseReservation())))))
	p := ComputeProgress(r)

	assert.Equal(t, 4, p.CurrentStepIndex)
	assert.Equal(t, models.StepPendingApproval, p.Steps[4].Status)
	assert.Equal(t, "March 10, 2025", p.Steps[4].CompletedDate)
	assert.Equal(t, models.StepPendingApproval, p.Steps[5].Status)
	assert.False(t, p.Steps[3].Editable)

	action := NextAction(r)
	assert.Equal(t, "Awaiting Payment Verification", action.Title)
}

func TestComputeProgressConfirmed(t *testing.T) {
	r := withConfirmed(withPayment(withApplication(withVisitCompleted(withScheduleApproved(withVisitRequested(baseReservation()))))))
	p := ComputeProgress(r)

	assert.Equal(t, 5, p.CurrentStepIndex)
	for i := 0; i < 6; i++ {
		assert.Equal(t, models.StepCompleted, p.Steps[i].Status, "step %d", i)
	}
	assert.Equal(t, "March 12, 2025", p.Steps[5].CompletedDate)
	assert.False(t, p.Steps[3].Editable)

	action := NextAction(r)
	assert.Equal(t, "Reservation Confirmed!", action.Title)
	assert.Equal(t, "View Details", action.ButtonText)
	assert.Contains(t, action.Description, "DH-ABC123")
	assert.Contains(t, action.Description, "April 1, 2025")
}

// Flags are evaluated independently, so a record whose earlier stages were
// never flagged still lands on the highest satisfied stage.
func TestComputeProgressToleratesSkippedStages(t *testing.T) {
	r := withApplication(baseReservation())
	p := ComputeProgress(r)

	assert.Equal(t, 3, p.CurrentStepIndex)
	assert.Equal(t, models.StepCompleted, p.Steps[3].Status)
}

func TestApplicationEditableWindow(t *testing.T) {
	cases := []struct {
		name      string
		submitted bool
		proof     string
		confirmed bool
		editable  bool
	}{
		{"open window", true, "", false, true},
		{"locked by payment", true, "https://cdn.example.com/proof.jpg", false, false},
		{"locked by confirmation", true, "", true, false},
		{"locked by both", true, "https://cdn.example.com/proof.jpg", true, false},
		{"not yet submitted", false, "", false, false},
		{"not submitted with payment", false, "https://cdn.example.com/proof.jpg", false, false},
		{"not submitted but confirmed", false, "", true, false},
		{"not submitted with both", false, "https://cdn.example.com/proof.jpg", true, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := withVisitCompleted(withScheduleApproved(withVisitRequested(baseReservation())))
			if tc.submitted {
				r = withApplication(r)
			}
			r.ProofOfPaymentURL = tc.proof
			if tc.confirmed {
				r.Status = models.ReservationConfirmed
			}

			p := ComputeProgress(r)
			assert.Equal(t, tc.editable, p.Steps[3].Editable)
		})
	}
}

func TestComputeProgressIsDeterministic(t *testing.T) {
	r := withPayment(withApplication(withVisitCompleted(withScheduleApproved(withVisitRequested(baseReservation())))))

	first := ComputeProgress(r)
	second := ComputeProgress(r)
	assert.Equal(t, first, second)
}

func TestSelectActiveReservations(t *testing.T) {
	all := []models.Reservation{
		{ID: "a", Status: models.ReservationPending},
		{ID: "b", Status: models.ReservationCancelled},
		{ID: "c", Status: models.ReservationConfirmed},
		{ID: "d", Status: models.ReservationCompleted},
	}

	active := SelectActiveReservations(all)
	require.Len(t, active, 2)
	assert.Equal(t, "a", active[0].ID)
	assert.Equal(t, "c", active[1].ID)

	assert.Empty(t, SelectActiveReservations(nil))
}

func TestTrackedReservation(t *testing.T) {
	active := []models.Reservation{
		{ID: "a", Status: models.ReservationPending},
		{ID: "b", Status: models.ReservationPending},
	}

	assert.Nil(t, TrackedReservation(nil, "a"))
	assert.Equal(t, "b", TrackedReservation(active, "b").ID)
	// Unknown selection falls back to the first active reservation.
	assert.Equal(t, "a", TrackedReservation(active, "gone").ID)
	assert.Equal(t, "a", TrackedReservation(active, "").ID)
}

func TestIsStepClickable(t *testing.T) {
	assert.False(t, IsStepClickable(models.StepView{Step: models.StepConfirmed, Status: models.StepLocked}, true))
	assert.False(t, IsStepClickable(models.StepView{Step: models.StepVisitScheduled, Status: models.StepCompleted}, true))
	assert.True(t, IsStepClickable(models.StepView{Step: models.StepApplicationSubmitted, Status: models.StepCompleted, Editable: true}, true))
	assert.True(t, IsStepClickable(models.StepView{Step: models.StepVisitScheduled, Status: models.StepCurrent}, true))
	assert.True(t, IsStepClickable(models.StepView{Step: models.StepVisitScheduled, Status: models.StepRejected}, true))
	assert.True(t, IsStepClickable(models.StepView{Step: models.StepPaymentSubmitted, Status: models.StepPendingApproval}, true))

	// Without a reservation only the entry step reacts.
	assert.True(t, IsStepClickable(models.StepView{Step: models.StepRoomSelected, Status: models.StepCurrent}, false))
	assert.False(t, IsStepClickable(models.StepView{Step: models.StepVisitScheduled, Status: models.StepCurrent}, false))
}

func TestNextActionNoReservation(t *testing.T) {
	action := NextAction(nil)
	assert.Equal(t, "Find Your Room", action.Title)
	assert.Equal(t, "Browse Rooms", action.ButtonText)
	assert.Equal(t, models.StepRoomSelected, action.TargetStep)
}

func TestDisplayHelpers(t *testing.T) {
	assert.Equal(t, "TBD", FormatDate(nil))
	assert.Equal(t, "TBD", FormatDate(&time.Time{}))
	assert.Equal(t, "March 8, 2025", FormatDate(date(2025, time.March, 8)))

	assert.Equal(t, "N/A", RoomName(nil))
	assert.Equal(t, "N/A", RoomName(&models.Reservation{}))
	assert.Equal(t, "Room 101", RoomName(baseReservation()))

	assert.Equal(t, "N/A", BedLabel(&models.Reservation{}))
	assert.Equal(t, "upper", BedLabel(&models.Reservation{SelectedBed: &models.SelectedBed{ID: "bed-1", Position: "upper"}}))
	assert.Equal(t, "bed-1", BedLabel(&models.Reservation{SelectedBed: &models.SelectedBed{ID: "bed-1"}}))
}
