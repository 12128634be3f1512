package reservation

import "fmt"

// ErrNotFound signals the reservation does not exist.
type ErrNotFound struct {
	ID string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("reservation %s not found", e.ID)
}

// ErrForbidden signals the caller does not own the reservation.
type ErrForbidden struct {
	ID string
}

func (e *ErrForbidden) Error() string {
	return fmt.Sprintf("reservation %s does not belong to the caller", e.ID)
}

// ErrInvalidTransition signals an action attempted out of pipeline order.
type ErrInvalidTransition struct {
	Action string
	Reason string
}

func (e *ErrInvalidTransition) Error() string {
	return fmt.Sprintf("cannot %s: %s", e.Action, e.Reason)
}

// ErrApplicationLocked signals an application edit outside the editable
// window (after payment submission or confirmation).
type ErrApplicationLocked struct{}

func (e *ErrApplicationLocked) Error() string {
	return "application is locked once payment is submitted or the reservation is confirmed"
}
