package models

// ProgressStep tags the six pipeline stages of a reservation.
type ProgressStep string

const (
	StepRoomSelected         ProgressStep = "room_selected"
	StepVisitScheduled       ProgressStep = "visit_scheduled"
	StepVisitCompleted       ProgressStep = "visit_completed"
	StepApplicationSubmitted ProgressStep = "application_submitted"
	StepPaymentSubmitted     ProgressStep = "payment_submitted"
	StepConfirmed            ProgressStep = "confirmed"
)

// ProgressSteps is the fixed pipeline order.
var ProgressSteps = [6]ProgressStep{
	StepRoomSelected,
	StepVisitScheduled,
	StepVisitCompleted,
	StepApplicationSubmitted,
	StepPaymentSubmitted,
	StepConfirmed,
}

// StepStatus is the display state of a single pipeline stage.
type StepStatus string

const (
	StepCompleted       StepStatus = "completed"
	StepCurrent         StepStatus = "current"
	StepLocked          StepStatus = "locked"
	StepPendingApproval StepStatus = "pending_approval"
	StepRejected        StepStatus = "rejected"
)

// StepView is the derived view of one stage.
type StepView struct {
	Step            ProgressStep `json:"step"`
	Status          StepStatus   `json:"status"`
	Editable        bool         `json:"editable"`
	RejectionReason string       `json:"rejection_reason,omitempty"`
	CompletedDate   string       `json:"completed_date,omitempty"`
}

// DerivedProgress is the full tracker view, recomputed from a reservation
// snapshot on every request. It has no persistence or identity of its own.
type DerivedProgress struct {
	CurrentStepIndex int        `json:"current_step_index"` // -1 means no reservation yet
	Steps            []StepView `json:"steps"`
}

// CurrentStep returns the tag of the step at CurrentStepIndex, or
// StepRoomSelected when there is no reservation.
func (p DerivedProgress) CurrentStep() ProgressStep {
	if p.CurrentStepIndex < 0 {
		return StepRoomSelected
	}
	return ProgressSteps[p.CurrentStepIndex]
}

// ProgressAction guides the tenant to the next incomplete stage.
type ProgressAction struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	ButtonText  string       `json:"button_text"`
	TargetStep  ProgressStep `json:"target_step"`
}
